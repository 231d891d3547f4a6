// errors.go — the failure model.
//
// Two signal kinds travel through the evaluator, both as panics that are
// recovered at the public API boundary (see interpreter.go):
//
//   - *Error: syntactic or semantic faults detected by the reader, the
//     evaluator or a builtin (bad syntax, arity, bad type, unbound symbol,
//     not applicable, index out of range). These unwind to the REPL frame;
//     user code cannot intercept them.
//   - throwSignal: raised by the throw builtin with an arbitrary payload.
//     Caught by the nearest try*; otherwise surfaced as *Thrown.
//
// Keeping the two as distinct panic payloads replaces the original's global
// last-exception slot and failure-kind flag: try* recovers throwSignal only,
// so the observable contract — throw is catchable, errors are not — holds by
// construction.
package slip

import "fmt"

// Kind classifies evaluator and reader faults.
type Kind int

const (
	BadSyntax Kind = iota
	ArityError
	TypeError
	UnboundSymbol
	NotApplicable
	IndexOutOfRange
)

var kindNames = [...]string{
	BadSyntax:       "bad-syntax",
	ArityError:      "arity-error",
	TypeError:       "type-error",
	UnboundSymbol:   "unbound-symbol",
	NotApplicable:   "not-applicable",
	IndexOutOfRange: "index-out-of-range",
}

func (k Kind) String() string { return kindNames[k] }

// Error is a structured evaluator fault. It satisfies the error interface so
// public entry points can return it directly.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return fmt.Sprintf("%s: %s", e.Kind, e.Msg) }

// Thrown is an uncaught user exception surfaced from a public entry point.
type Thrown struct {
	Payload Datum
}

func (t *Thrown) Error() string {
	return "exception: " + PrintReadable(t.Payload)
}

// throwSignal is the panic payload of the throw builtin.
type throwSignal struct {
	payload Datum
}

// fail raises an evaluator fault of the given kind.
func fail(kind Kind, format string, args ...any) {
	panic(&Error{Kind: kind, Msg: fmt.Sprintf(format, args...)})
}

func failBadSyntax(format string, args ...any) { fail(BadSyntax, format, args...) }

// failArgType raises the standard bad-argument fault for builtin name: the
// i-th (0-based) argument was expected to have the given type.
func failArgType(name string, i int, want Tag, got Datum) {
	fail(TypeError, "%s: bad arg no. %d: expected a %s, but got a %s",
		name, i+1, want.TypeName(), got.Tag.TypeName())
}

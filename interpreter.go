// interpreter.go — the public surface of the slip runtime.
//
// Construction:
//   - NewInterpreter() returns a ready engine: the symbol table is primed,
//     the root environment binds nil/true/false and every builtin, load-file
//     is defined, and the standard prelude is loaded.
//
// Entry points:
//   - ReadEval(src): read the first form of src, evaluate it in the root
//     environment. The REPL calls this once per line.
//   - EvalDatum(form, env): evaluate a pre-read form in a chosen environment
//     (nil means root).
//
// Both recover the engine's panic signals and surface them as Go errors:
// *Error for evaluator/reader faults, *Thrown for uncaught user exceptions.
// Successful runs return a Datum and nil error. Everything below this
// surface (the TCO loop, special forms, quasiquote) lives in eval.go.
package slip

// Version of the interpreter, reported by the version subcommand.
const Version = "0.4.1"

// Interpreter owns a root environment and evaluates forms against it.
type Interpreter struct {
	root *Env
}

// NewInterpreter builds a fully initialised engine with builtins and the
// embedded prelude installed.
func NewInterpreter() *Interpreter {
	ip := &Interpreter{root: NewEnv(nil)}

	ip.root.Put(Intern("nil"), Nil)
	ip.root.Put(Intern("true"), True)
	ip.root.Put(Intern("false"), False)

	registerCoreBuiltins(ip)
	registerListBuiltins(ip)
	registerIOBuiltins(ip)
	registerAtomBuiltins(ip)
	registerReflectBuiltins(ip)
	registerExnBuiltins(ip)

	ip.mustEval(loadFileDef)
	ip.loadPrelude()

	return ip
}

// RootEnv exposes the top-level environment (the eval builtin's target).
func (ip *Interpreter) RootEnv() *Env { return ip.root }

// ReadEval reads the first form in src and evaluates it in the root
// environment. ok is false when src contains no form (blank line, comment).
func (ip *Interpreter) ReadEval(src string) (out Datum, ok bool, err error) {
	form, ok, rerr := ReadStr(src)
	if rerr != nil {
		return Datum{}, false, &Error{Kind: BadSyntax, Msg: rerr.Error()}
	}
	if !ok {
		return Datum{}, false, nil
	}
	out, err = ip.EvalDatum(form, nil)
	return out, err == nil, err
}

// EvalDatum evaluates form in env (root when nil), converting engine
// signals into errors.
func (ip *Interpreter) EvalDatum(form Datum, env *Env) (out Datum, err error) {
	if env == nil {
		env = ip.root
	}
	defer func() {
		if r := recover(); r != nil {
			switch sig := r.(type) {
			case *Error:
				out, err = Datum{}, sig
			case throwSignal:
				out, err = Datum{}, &Thrown{Payload: sig.payload}
			default:
				panic(r)
			}
		}
	}()
	return ip.eval(form, env), nil
}

// register installs a builtin procedure in the root environment.
func (ip *Interpreter) register(name string, argc int, variadic bool, impl BuiltinImpl) {
	sym := Intern(name)
	ip.root.Put(sym, NewBuiltin(sym, argc, variadic, impl))
}

// mustEval evaluates bootstrap source; any failure there is a bug.
func (ip *Interpreter) mustEval(src string) {
	if _, _, err := ip.ReadEval(src); err != nil {
		panic("slip: bootstrap failed: " + err.Error())
	}
}

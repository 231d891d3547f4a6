// types.go — the slip runtime value model.
//
// A Datum is a tagged sum: the Tag selects which Go value lives in Data.
// Variants and their payloads:
//
//	TagNumber    int64
//	TagSymbol    *Symbol (interned; see intern.go)
//	TagString    string
//	TagNil/True/False   no payload (process-wide singletons)
//	TagList      *List
//	TagProc      *Proc
//	TagAtom      *Atom (single mutable slot)
//	TagExn       *Exception
//
// Equality rules (see Equal):
//   - symbols and singletons compare by identity,
//   - numbers, strings, lists and exceptions compare structurally,
//   - procedures compare by identity,
//   - atoms compare by identity of the held datum.
//
// Lists are immutable from the user's view; rest shares the tail of the
// backing slice, which is fine because structural equality is preserved,
// while cons copies into a fresh slice.
package slip

// Tag discriminates the variants of Datum.
type Tag int

const (
	TagNumber Tag = iota
	TagSymbol
	TagString
	TagNil
	TagTrue
	TagFalse
	TagList
	TagProc
	TagAtom
	TagExn
)

var tagNames = [...]string{
	TagNumber: "number",
	TagSymbol: "symbol",
	TagString: "string",
	TagNil:    "nil",
	TagTrue:   "true",
	TagFalse:  "false",
	TagList:   "list",
	TagProc:   "procedure",
	TagAtom:   "atom",
	TagExn:    "exn",
}

// TypeName returns the user-visible name of a tag ("number", "list", ...).
func (t Tag) TypeName() string { return tagNames[t] }

// Datum is the universal runtime value.
type Datum struct {
	Tag  Tag
	Data any
}

// The singletons. Nil, True and False carry no payload; their identity is
// their tag.
var (
	Nil   = Datum{Tag: TagNil}
	True  = Datum{Tag: TagTrue}
	False = Datum{Tag: TagFalse}
)

// Constructors.
func Number(n int64) Datum        { return Datum{Tag: TagNumber, Data: n} }
func String(s string) Datum       { return Datum{Tag: TagString, Data: s} }
func SymbolDatum(s *Symbol) Datum { return Datum{Tag: TagSymbol, Data: s} }

// Bool maps a Go bool to the True/False singletons.
func Bool(b bool) Datum {
	if b {
		return True
	}
	return False
}

// List is an ordered sequence of data with known length.
type List struct {
	Items []Datum
}

// ListOf builds a list datum from the given elements.
func ListOf(items ...Datum) Datum { return Datum{Tag: TagList, Data: &List{Items: items}} }

// ListFrom wraps an existing slice without copying.
func ListFrom(items []Datum) Datum { return Datum{Tag: TagList, Data: &List{Items: items}} }

// AsList returns the *List payload; valid only when d.Tag == TagList.
func (d Datum) AsList() *List { return d.Data.(*List) }

// Len returns the number of elements.
func (l *List) Len() int { return len(l.Items) }

// Empty reports whether the list has no elements.
func (l *List) Empty() bool { return len(l.Items) == 0 }

// Cons returns a new list with d prepended; the original is untouched.
func (l *List) Cons(d Datum) *List {
	items := make([]Datum, 0, len(l.Items)+1)
	items = append(items, d)
	items = append(items, l.Items...)
	return &List{Items: items}
}

// Rest returns the list without its first element, sharing the tail.
// Rest of an empty list is an empty list.
func (l *List) Rest() *List {
	if len(l.Items) == 0 {
		return &List{}
	}
	return &List{Items: l.Items[1:]}
}

// BuiltinImpl is the host implementation of a built-in procedure. Arity has
// been verified by the time it runs. env is the environment of the call site.
type BuiltinImpl func(ip *Interpreter, args []Datum, env *Env) Datum

// Proc is a callable value: either user-defined (Body + captured Env) or a
// built-in (Builtin != nil). Immutable after construction except for Name,
// which is set once when an unnamed procedure is first bound (see Env.Put),
// and Macro, set by defmacro!.
type Proc struct {
	Name     *Symbol   // nil until first bound
	Argc     int       // required parameter count
	Variadic bool      // if set, Argc is a minimum and the last param binds the rest
	Macro    bool      // installed by defmacro!
	Params   []*Symbol // len == Argc, +1 if Variadic
	Body     []Datum   // user procedures; nil for builtins
	Env      *Env      // captured enclosing environment; nil for builtins
	Builtin  BuiltinImpl
}

// ProcDatum wraps a procedure as a value.
func ProcDatum(p *Proc) Datum { return Datum{Tag: TagProc, Data: p} }

// NewBuiltin constructs a named built-in procedure value.
func NewBuiltin(name *Symbol, argc int, variadic bool, impl BuiltinImpl) Datum {
	return ProcDatum(&Proc{Name: name, Argc: argc, Variadic: variadic, Builtin: impl})
}

// IsBuiltin reports whether the procedure is implemented by the host.
func (p *Proc) IsBuiltin() bool { return p.Builtin != nil }

// Named reports whether the procedure has been bound to a name.
func (p *Proc) Named() bool { return p.Name != nil }

// AsProc returns the *Proc payload; valid only when d.Tag == TagProc.
func (d Datum) AsProc() *Proc { return d.Data.(*Proc) }

// Atom is a single mutable slot holding a datum.
type Atom struct {
	Val Datum
}

// AtomDatum wraps a fresh atom holding v.
func AtomDatum(v Datum) Datum { return Datum{Tag: TagAtom, Data: &Atom{Val: v}} }

// AsAtom returns the *Atom payload; valid only when d.Tag == TagAtom.
func (d Datum) AsAtom() *Atom { return d.Data.(*Atom) }

// Exception wraps an arbitrary payload raised by throw and bound by catch*.
type Exception struct {
	Payload Datum
}

// ExnDatum wraps payload into an exception value.
func ExnDatum(payload Datum) Datum { return Datum{Tag: TagExn, Data: &Exception{Payload: payload}} }

// AsExn returns the *Exception payload; valid only when d.Tag == TagExn.
func (d Datum) AsExn() *Exception { return d.Data.(*Exception) }

// Truthy reports the conditional value of d: everything is truthy except the
// nil and false singletons.
func Truthy(d Datum) bool { return d.Tag != TagNil && d.Tag != TagFalse }

// Equal implements the `=` builtin and the language's equality table.
func Equal(a, b Datum) bool {
	if a.Tag != b.Tag {
		return false
	}
	switch a.Tag {
	case TagNil, TagTrue, TagFalse:
		return true
	case TagNumber:
		return a.Data.(int64) == b.Data.(int64)
	case TagString:
		return a.Data.(string) == b.Data.(string)
	case TagSymbol:
		return a.Data.(*Symbol) == b.Data.(*Symbol)
	case TagList:
		la, lb := a.AsList(), b.AsList()
		if len(la.Items) != len(lb.Items) {
			return false
		}
		for i := range la.Items {
			if !Equal(la.Items[i], lb.Items[i]) {
				return false
			}
		}
		return true
	case TagProc:
		return a.Data.(*Proc) == b.Data.(*Proc)
	case TagAtom:
		return sameIdentity(a.AsAtom().Val, b.AsAtom().Val)
	case TagExn:
		return Equal(a.AsExn().Payload, b.AsExn().Payload)
	default:
		return false
	}
}

// sameIdentity compares two data by identity: same tag and the very same
// payload (pointer for heap variants, value for scalars).
func sameIdentity(a, b Datum) bool {
	return a.Tag == b.Tag && a.Data == b.Data
}

package slip

import "testing"

func Test_Equal_Structural(t *testing.T) {
	if !Equal(Number(5), Number(5)) {
		t.Fatal("equal numbers")
	}
	if Equal(Number(5), Number(6)) {
		t.Fatal("distinct numbers")
	}
	if !Equal(String("ab"), String("ab")) {
		t.Fatal("equal strings")
	}
	if Equal(String("ab"), Number(5)) {
		t.Fatal("cross-type equality")
	}
	a := ListOf(Number(1), ListOf(Number(2)), String("x"))
	b := ListOf(Number(1), ListOf(Number(2)), String("x"))
	if !Equal(a, b) {
		t.Fatal("structurally equal lists")
	}
	if Equal(a, ListOf(Number(1))) {
		t.Fatal("different-length lists")
	}
	if !Equal(ExnDatum(String("boom")), ExnDatum(String("boom"))) {
		t.Fatal("exceptions compare by payload")
	}
}

func Test_Equal_Singletons(t *testing.T) {
	if !Equal(Nil, Nil) || !Equal(True, True) || !Equal(False, False) {
		t.Fatal("singleton self-equality")
	}
	if Equal(Nil, False) || Equal(True, False) {
		t.Fatal("singletons are distinct")
	}
}

func Test_Equal_ProcsByIdentity(t *testing.T) {
	p := &Proc{Argc: 0}
	q := &Proc{Argc: 0}
	if !Equal(ProcDatum(p), ProcDatum(p)) {
		t.Fatal("a procedure equals itself")
	}
	if Equal(ProcDatum(p), ProcDatum(q)) {
		t.Fatal("distinct procedures are unequal")
	}
}

func Test_Equal_AtomsByHeldIdentity(t *testing.T) {
	// scalars are their own identity
	if !Equal(AtomDatum(Number(5)), AtomDatum(Number(5))) {
		t.Fatal("atoms holding the same scalar")
	}
	// distinct list objects are not identical even when structurally equal
	if Equal(AtomDatum(ListOf(Number(1))), AtomDatum(ListOf(Number(1)))) {
		t.Fatal("atoms holding distinct list objects")
	}
	shared := ListOf(Number(1))
	if !Equal(AtomDatum(shared), AtomDatum(shared)) {
		t.Fatal("atoms holding the same list object")
	}
}

// = must stay reflexive and symmetric across the variants.
func Test_Equal_ReflexiveSymmetric(t *testing.T) {
	samples := []Datum{
		Number(-3), String(""), SymbolDatum(Intern("s")), Nil, True, False,
		ListOf(), ListOf(Number(1), String("x")),
		AtomDatum(Number(0)), ExnDatum(Nil), ProcDatum(&Proc{}),
	}
	for _, d := range samples {
		if !Equal(d, d) {
			t.Fatalf("not reflexive: %s", PrintReadable(d))
		}
	}
	for _, x := range samples {
		for _, y := range samples {
			if Equal(x, y) != Equal(y, x) {
				t.Fatalf("not symmetric: %s vs %s", PrintReadable(x), PrintReadable(y))
			}
		}
	}
}

func Test_Truthy(t *testing.T) {
	for _, d := range []Datum{Number(0), String(""), True, ListOf()} {
		if !Truthy(d) {
			t.Fatalf("%s should be truthy", PrintReadable(d))
		}
	}
	if Truthy(Nil) || Truthy(False) {
		t.Fatal("nil and false are falsy")
	}
}

func Test_List_ConsRestShareStructure(t *testing.T) {
	base := &List{Items: []Datum{Number(1), Number(2)}}
	consed := base.Cons(Number(0))
	if consed.Len() != 3 || !Equal(consed.Items[0], Number(0)) {
		t.Fatal("cons result")
	}
	if base.Len() != 2 {
		t.Fatal("cons must not mutate the original")
	}
	rest := consed.Rest()
	if !Equal(ListFrom(rest.Items), ListFrom(base.Items)) {
		t.Fatal("rest of cons equals the base list")
	}
}

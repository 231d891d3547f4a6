package slip

import (
	"testing"
)

// --- helpers ---------------------------------------------------------------

func mustEval(t *testing.T, ip *Interpreter, src string) Datum {
	t.Helper()
	v, ok, err := ip.ReadEval(src)
	if err != nil {
		t.Fatalf("eval error for %q: %v", src, err)
	}
	if !ok {
		t.Fatalf("no form in %q", src)
	}
	return v
}

func evalSrc(t *testing.T, src string) Datum {
	t.Helper()
	return mustEval(t, NewInterpreter(), src)
}

func evalErr(t *testing.T, ip *Interpreter, src string) error {
	t.Helper()
	_, _, err := ip.ReadEval(src)
	if err == nil {
		t.Fatalf("want error for %q, got none", src)
	}
	return err
}

func wantNumber(t *testing.T, v Datum, n int64) {
	t.Helper()
	if v.Tag != TagNumber || v.Data.(int64) != n {
		t.Fatalf("want number %d, got %s", n, PrintReadable(v))
	}
}

func wantString(t *testing.T, v Datum, s string) {
	t.Helper()
	if v.Tag != TagString || v.Data.(string) != s {
		t.Fatalf("want string %q, got %s", s, PrintReadable(v))
	}
}

func wantBool(t *testing.T, v Datum, b bool) {
	t.Helper()
	want := False
	if b {
		want = True
	}
	if v.Tag != want.Tag {
		t.Fatalf("want %s, got %s", PrintReadable(want), PrintReadable(v))
	}
}

func wantNil(t *testing.T, v Datum) {
	t.Helper()
	if v.Tag != TagNil {
		t.Fatalf("want nil, got %s", PrintReadable(v))
	}
}

func wantKind(t *testing.T, err error, kind Kind) {
	t.Helper()
	e, ok := err.(*Error)
	if !ok {
		t.Fatalf("want *Error of kind %s, got %T: %v", kind, err, err)
	}
	if e.Kind != kind {
		t.Fatalf("want kind %s, got %s (%v)", kind, e.Kind, err)
	}
}

func wantPrinted(t *testing.T, v Datum, s string) {
	t.Helper()
	if got := PrintReadable(v); got != s {
		t.Fatalf("want %s, got %s", s, got)
	}
}

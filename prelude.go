// prelude.go — startup bootstrap: load-file and the standard prelude.
package slip

import (
	_ "embed"
	"os"
)

// load-file wraps a file's forms in a do so that a file is one read. The
// closing paren sits on its own line in case the file ends with a comment
// without a trailing newline.
const loadFileDef = `(def! load-file
  (lambda (path)
    (eval (read-string (str "(do " (slurp path) "\n)")))
    (println "loaded file" path)
    nil))`

//go:embed lisp/prelude.slp
var preludeSource string

// loadPrelude evaluates the embedded standard prelude in the root env.
func (ip *Interpreter) loadPrelude() {
	ip.mustEval("(do " + preludeSource + "\n)")
}

// LoadPreludeFile evaluates a prelude read from disk (rc-file override) in
// the root environment. The embedded prelude stays loaded: the file's
// definitions are added on top and rebind any names they share with it.
func (ip *Interpreter) LoadPreludeFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	_, _, err = ip.ReadEval("(do " + string(src) + "\n)")
	return err
}

// RunFile evaluates a script file through load-file semantics, binding
// *ARGV* to the remaining command-line arguments first.
func (ip *Interpreter) RunFile(path string, argv []string) error {
	items := make([]Datum, len(argv))
	for i, a := range argv {
		items[i] = String(a)
	}
	ip.root.Put(Intern("*ARGV*"), ListFrom(items))

	call := ListOf(SymbolDatum(Intern("load-file")), String(path))
	_, err := ip.EvalDatum(call, nil)
	return err
}

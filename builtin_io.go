// builtin_io.go — printing and file input.
//
// prn/pr-str render readably (strings escaped); str/println render raw.
// prn and pr-str join with a space, str concatenates without a separator.
package slip

import (
	"fmt"
	"os"
	"strings"
)

func registerIOBuiltins(ip *Interpreter) {
	ip.register("prn", 0, true, func(_ *Interpreter, args []Datum, _ *Env) Datum {
		if len(args) > 0 {
			fmt.Println(joinPrinted(args, true, " "))
		}
		return Nil
	})

	ip.register("pr-str", 0, true, func(_ *Interpreter, args []Datum, _ *Env) Datum {
		return String(joinPrinted(args, true, " "))
	})

	ip.register("str", 0, true, func(_ *Interpreter, args []Datum, _ *Env) Datum {
		return String(joinPrinted(args, false, ""))
	})

	ip.register("println", 0, true, func(_ *Interpreter, args []Datum, _ *Env) Datum {
		if len(args) > 0 {
			fmt.Println(joinPrinted(args, false, " "))
		}
		return Nil
	})

	// slurp failures are user-catchable: a missing file is an environment
	// condition, not an evaluator fault.
	ip.register("slurp", 1, false, func(_ *Interpreter, args []Datum, _ *Env) Datum {
		path := argString("slurp", args, 0)
		contents, err := os.ReadFile(path)
		if err != nil {
			panic(throwSignal{payload: String("slurp: can't read file " + path)})
		}
		return String(string(contents))
	})
}

func joinPrinted(args []Datum, readable bool, sep string) string {
	parts := make([]string, len(args))
	for i, a := range args {
		if readable {
			parts[i] = PrintReadable(a)
		} else {
			parts[i] = PrintRaw(a)
		}
	}
	return strings.Join(parts, sep)
}

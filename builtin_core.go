// builtin_core.go — arithmetic, comparison and core predicates, plus the
// argument-checking helpers shared by every builtin file.
package slip

// ---- argument checking -------------------------------------------------

func argNumber(name string, args []Datum, i int) int64 {
	if args[i].Tag != TagNumber {
		failArgType(name, i, TagNumber, args[i])
	}
	return args[i].Data.(int64)
}

func argString(name string, args []Datum, i int) string {
	if args[i].Tag != TagString {
		failArgType(name, i, TagString, args[i])
	}
	return args[i].Data.(string)
}

func argList(name string, args []Datum, i int) *List {
	if args[i].Tag != TagList {
		failArgType(name, i, TagList, args[i])
	}
	return args[i].AsList()
}

func argProc(name string, args []Datum, i int) *Proc {
	if args[i].Tag != TagProc {
		failArgType(name, i, TagProc, args[i])
	}
	return args[i].AsProc()
}

func argAtom(name string, args []Datum, i int) *Atom {
	if args[i].Tag != TagAtom {
		failArgType(name, i, TagAtom, args[i])
	}
	return args[i].AsAtom()
}

func argExn(name string, args []Datum, i int) *Exception {
	if args[i].Tag != TagExn {
		failArgType(name, i, TagExn, args[i])
	}
	return args[i].AsExn()
}

// ---- registration ------------------------------------------------------

func registerCoreBuiltins(ip *Interpreter) {
	ip.register("+", 2, true, func(_ *Interpreter, args []Datum, _ *Env) Datum {
		acc := argNumber("+", args, 0)
		for i := 1; i < len(args); i++ {
			acc += argNumber("+", args, i)
		}
		return Number(acc)
	})

	ip.register("-", 2, true, func(_ *Interpreter, args []Datum, _ *Env) Datum {
		acc := argNumber("-", args, 0)
		for i := 1; i < len(args); i++ {
			acc -= argNumber("-", args, i)
		}
		return Number(acc)
	})

	ip.register("*", 2, true, func(_ *Interpreter, args []Datum, _ *Env) Datum {
		acc := argNumber("*", args, 0)
		for i := 1; i < len(args); i++ {
			acc *= argNumber("*", args, i)
		}
		return Number(acc)
	})

	ip.register("/", 2, true, func(_ *Interpreter, args []Datum, _ *Env) Datum {
		acc := argNumber("/", args, 0)
		for i := 1; i < len(args); i++ {
			d := argNumber("/", args, i)
			if d == 0 {
				fail(TypeError, "/: division by zero")
			}
			acc /= d
		}
		return Number(acc)
	})

	ip.register("%", 2, false, func(_ *Interpreter, args []Datum, _ *Env) Datum {
		a := argNumber("%", args, 0)
		b := argNumber("%", args, 1)
		if b == 0 {
			fail(TypeError, "%%: division by zero")
		}
		return Number(a % b)
	})

	ip.register("=", 2, false, func(_ *Interpreter, args []Datum, _ *Env) Datum {
		return Bool(Equal(args[0], args[1]))
	})

	ip.register(">", 2, false, func(_ *Interpreter, args []Datum, _ *Env) Datum {
		return Bool(argNumber(">", args, 0) > argNumber(">", args, 1))
	})

	ip.register("even?", 1, false, func(_ *Interpreter, args []Datum, _ *Env) Datum {
		return Bool(argNumber("even?", args, 0)%2 == 0)
	})

	ip.register("number?", 1, false, func(_ *Interpreter, args []Datum, _ *Env) Datum {
		return Bool(args[0].Tag == TagNumber)
	})
}

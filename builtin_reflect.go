// builtin_reflect.go — type predicates, procedure introspection and the
// interpreter-reflection surface (read-string, eval, apply, symbol).
package slip

func registerReflectBuiltins(ip *Interpreter) {
	// (symbol "name") → the interned symbol for name
	ip.register("symbol", 1, false, func(_ *Interpreter, args []Datum, _ *Env) Datum {
		return SymbolDatum(Intern(argString("symbol", args, 0)))
	})

	ip.register("symbol?", 1, false, func(_ *Interpreter, args []Datum, _ *Env) Datum {
		return Bool(args[0].Tag == TagSymbol)
	})

	ip.register("string?", 1, false, func(_ *Interpreter, args []Datum, _ *Env) Datum {
		return Bool(args[0].Tag == TagString)
	})

	ip.register("true?", 1, false, func(_ *Interpreter, args []Datum, _ *Env) Datum {
		return Bool(args[0].Tag == TagTrue)
	})

	ip.register("false?", 1, false, func(_ *Interpreter, args []Datum, _ *Env) Datum {
		return Bool(args[0].Tag == TagFalse)
	})

	ip.register("procedure?", 1, false, func(_ *Interpreter, args []Datum, _ *Env) Datum {
		return Bool(args[0].Tag == TagProc)
	})

	ip.register("macro?", 1, false, func(_ *Interpreter, args []Datum, _ *Env) Datum {
		return Bool(args[0].Tag == TagProc && args[0].AsProc().Macro)
	})

	// (arity p) → (ARGC VARIADIC?)
	ip.register("arity", 1, false, func(_ *Interpreter, args []Datum, _ *Env) Datum {
		p := argProc("arity", args, 0)
		return ListOf(Number(int64(p.Argc)), Bool(p.Variadic))
	})

	ip.register("builtin?", 1, false, func(_ *Interpreter, args []Datum, _ *Env) Datum {
		return Bool(argProc("builtin?", args, 0).IsBuiltin())
	})

	// (type x) → the type name of x as a symbol
	ip.register("type", 1, false, func(_ *Interpreter, args []Datum, _ *Env) Datum {
		return SymbolDatum(Intern(args[0].Tag.TypeName()))
	})

	// (read-string s) → the first form of s, unevaluated
	ip.register("read-string", 1, false, func(_ *Interpreter, args []Datum, _ *Env) Datum {
		form, ok, err := ReadStr(argString("read-string", args, 0))
		if err != nil || !ok {
			failBadSyntax("read-string: could not parse bad syntax")
		}
		return form
	})

	// (eval form) — evaluates in the root environment, never the caller's.
	ip.register("eval", 1, false, func(ip *Interpreter, args []Datum, _ *Env) Datum {
		return ip.eval(args[0], ip.root)
	})

	// (apply f a b (c d)) ≡ (f a b c d): intermediate arguments are consed
	// onto the final argument list.
	ip.register("apply", 2, true, func(ip *Interpreter, args []Datum, env *Env) Datum {
		f := argProc("apply", args, 0)
		last := args[len(args)-1]
		if last.Tag != TagList {
			fail(TypeError, "apply: bad last arg: expected a list")
		}
		interm := args[1 : len(args)-1]
		callArgs := make([]Datum, 0, len(interm)+last.AsList().Len())
		callArgs = append(callArgs, interm...)
		callArgs = append(callArgs, last.AsList().Items...)
		return ip.applyProc(f, callArgs, env)
	})
}

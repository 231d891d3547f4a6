// builtin_atom.go — mutable cells.
package slip

func registerAtomBuiltins(ip *Interpreter) {
	ip.register("atom", 1, false, func(_ *Interpreter, args []Datum, _ *Env) Datum {
		return AtomDatum(args[0])
	})

	ip.register("atom?", 1, false, func(_ *Interpreter, args []Datum, _ *Env) Datum {
		return Bool(args[0].Tag == TagAtom)
	})

	ip.register("deref", 1, false, func(_ *Interpreter, args []Datum, _ *Env) Datum {
		return argAtom("deref", args, 0).Val
	})

	ip.register("atom-set!", 2, false, func(_ *Interpreter, args []Datum, _ *Env) Datum {
		atom := argAtom("atom-set!", args, 0)
		atom.Val = args[1]
		return args[1]
	})

	// (swap! atom f extra...) — replaces the atom's value with
	// (f value extra...) and returns the new value.
	ip.register("swap!", 2, true, func(ip *Interpreter, args []Datum, env *Env) Datum {
		atom := argAtom("swap!", args, 0)
		f := argProc("swap!", args, 1)
		callArgs := make([]Datum, 0, len(args)-1)
		callArgs = append(callArgs, atom.Val)
		callArgs = append(callArgs, args[2:]...)
		out := ip.applyProc(f, callArgs, env)
		atom.Val = out
		return out
	})
}

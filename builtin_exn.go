// builtin_exn.go — the user-level exception surface.
//
// throw raises an arbitrary payload; only try*/catch* intercepts it.
// Evaluator faults travel on a different signal and stay uncatchable.
package slip

func registerExnBuiltins(ip *Interpreter) {
	ip.register("exn", 1, false, func(_ *Interpreter, args []Datum, _ *Env) Datum {
		return ExnDatum(args[0])
	})

	ip.register("exn?", 1, false, func(_ *Interpreter, args []Datum, _ *Env) Datum {
		return Bool(args[0].Tag == TagExn)
	})

	ip.register("exn-datum", 1, false, func(_ *Interpreter, args []Datum, _ *Env) Datum {
		return argExn("exn-datum", args, 0).Payload
	})

	ip.register("throw", 1, false, func(_ *Interpreter, args []Datum, _ *Env) Datum {
		panic(throwSignal{payload: args[0]})
	})
}

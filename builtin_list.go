// builtin_list.go — list construction and access.
package slip

func registerListBuiltins(ip *Interpreter) {
	ip.register("list", 0, true, func(_ *Interpreter, args []Datum, _ *Env) Datum {
		items := make([]Datum, len(args))
		copy(items, args)
		return ListFrom(items)
	})

	ip.register("list?", 1, false, func(_ *Interpreter, args []Datum, _ *Env) Datum {
		return Bool(args[0].Tag == TagList)
	})

	ip.register("empty?", 1, false, func(_ *Interpreter, args []Datum, _ *Env) Datum {
		return Bool(argList("empty?", args, 0).Empty())
	})

	ip.register("list-ref", 2, false, func(_ *Interpreter, args []Datum, _ *Env) Datum {
		return listRef("list-ref", args)
	})

	ip.register("list-rest", 1, false, func(_ *Interpreter, args []Datum, _ *Env) Datum {
		return listRest("list-rest", args)
	})

	// nth and rest are the generic sequence forms of list-ref/list-rest; for
	// now lists are the only sequence type.
	ip.register("nth", 2, false, func(_ *Interpreter, args []Datum, _ *Env) Datum {
		return listRef("nth", args)
	})

	ip.register("rest", 1, false, func(_ *Interpreter, args []Datum, _ *Env) Datum {
		return listRest("rest", args)
	})

	ip.register("cons", 2, false, func(_ *Interpreter, args []Datum, _ *Env) Datum {
		list := argList("cons", args, 1)
		return Datum{Tag: TagList, Data: list.Cons(args[0])}
	})

	ip.register("concat", 0, true, func(_ *Interpreter, args []Datum, _ *Env) Datum {
		total := 0
		for i := range args {
			total += argList("concat", args, i).Len()
		}
		items := make([]Datum, 0, total)
		for i := range args {
			items = append(items, args[i].AsList().Items...)
		}
		return ListFrom(items)
	})

	ip.register("map", 2, false, func(ip *Interpreter, args []Datum, env *Env) Datum {
		mapper := argProc("map", args, 0)
		list := argList("map", args, 1)
		out := make([]Datum, list.Len())
		for i, elt := range list.Items {
			out[i] = ip.applyProc(mapper, []Datum{elt}, env)
		}
		return ListFrom(out)
	})
}

func listRef(name string, args []Datum) Datum {
	list := argList(name, args, 0)
	idx := argNumber(name, args, 1)
	if idx < 0 {
		fail(IndexOutOfRange, "%s: expected non-negative index", name)
	}
	if idx >= int64(list.Len()) {
		fail(IndexOutOfRange, "%s: index too large (%d >= %d)", name, idx, list.Len())
	}
	return list.Items[idx]
}

func listRest(name string, args []Datum) Datum {
	list := argList(name, args, 0)
	if list.Empty() {
		fail(IndexOutOfRange, "%s: received an empty list", name)
	}
	return Datum{Tag: TagList, Data: list.Rest()}
}

package rebcore

// Function is a newtype wrapper over a paramlist Series: the first cell
// is the FUNCTION value, remaining cells are WORD cells naming each
// parameter (no typeset specs; there is no typeset kind in this core),
// link.meta holds an optional metadata context, and a separate
// body-holder singular array stores the dispatcher and body expression
// (spec.md §3.3 "Function (paramlist)").
type Function struct {
	*Series

	bodyHolder *Series
	params     []*Symbol
}

// NewFunction allocates a paramlist for a function taking the given
// parameter names, wired to a native dispatch callback. body is the
// Flap-analogue "body expression" stored at body-holder index 0; it may
// be the zero Cell for a purely native function.
func NewFunction(p *Pool, params []*Symbol, body Cell, dispatch func(args []Cell) (Cell, error)) *Function {
	paramlist := MakeSeries(p, SeriesCells, len(params)+1, SeriesArray)
	fn := &Function{Series: paramlist, params: params}
	_ = paramlist.Append(NewFunctionCell(fn))
	for _, sym := range params {
		_ = paramlist.Append(NewWord(KindWord, sym))
	}

	bodyHolder := MakeSeries(p, SeriesCells, 1, SeriesArray)
	_ = bodyHolder.Append(body)
	bodyHolder.misc.dispatch = dispatch
	bodyHolder.misc.bodyHead = body
	fn.bodyHolder = bodyHolder

	return fn
}

// Params returns the parameter symbols in declaration order.
func (f *Function) Params() []*Symbol { return f.params }

// ParamIndex returns the 1-based paramlist slot for sym, or 0.
func (f *Function) ParamIndex(sym *Symbol) int {
	canon := sym.Canon()
	for i, p := range f.params {
		if p.Canon() == canon {
			return i + 1
		}
	}
	return 0
}

// Dispatch invokes the native dispatcher stored in the body-holder's
// misc slot (spec.md §3.3: "body-holder... stores the dispatcher
// function pointer in its misc"). The evaluator proper is an external
// collaborator (spec.md §1); this is the single hook it needs from the
// core.
func (f *Function) Dispatch(args []Cell) (Cell, error) {
	if f.bodyHolder.misc.dispatch == nil {
		return Cell{}, newCoreErrorKind(ErrBadIndexKind, "function has no dispatcher")
	}
	return f.bodyHolder.misc.dispatch(args)
}

// Body returns the body expression stored at body-holder index 0.
func (f *Function) Body() Cell { return f.bodyHolder.misc.bodyHead }

// SetMeta attaches an optional metadata context (spec.md: "link.meta
// holds an optional metadata context").
func (f *Function) SetMeta(ctx *Context) { f.link.meta = ctx }
func (f *Function) Meta() *Context       { return f.link.meta }

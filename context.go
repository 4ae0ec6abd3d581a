package rebcore

// Context is a newtype wrapper over a varlist Series: the first cell is
// the OBJECT/FRAME value of the context itself, and link.keylist points
// to the parallel array of WORD cells naming each slot, one per slot
// carrying the slot's symbol (spec.md §3.3 "Context (varlist)"). Keys
// are not typeset cells: there is no typeset kind in this core.
type Context struct {
	*Series
	keylist *Array
}

// NewContext allocates an empty object/module context with room for n
// slots (not counting the self cell at index 0).
func NewContext(p *Pool, n int) *Context {
	varlist := MakeSeries(p, SeriesCells, n+1, SeriesArray|SeriesVarlist)
	keylist := NewArray(p, n+1)
	ctx := &Context{Series: varlist, keylist: keylist}
	_ = varlist.Append(NewObject(ctx)) // self cell at index 0
	_ = keylist.Append(NewWord(KindWord, nil))
	varlist.link.keylist = keylist.Series
	return ctx
}

// Keylist returns the parallel array of slot-naming WORD cells.
func (c *Context) Keylist() *Array { return c.keylist }

// AddSlot appends a new named slot holding value, returning its 1-based
// index (spec.md §8 binding scenario: "create context with key \"x\" at
// index 1").
func (c *Context) AddSlot(sym *Symbol, value Cell) (int, error) {
	if err := c.Series.Append(value); err != nil {
		return 0, err
	}
	if err := c.keylist.Series.Append(NewWord(KindWord, sym)); err != nil {
		return 0, err
	}
	return c.Series.Len() - 1, nil
}

// Slot returns the value cell at a 1-based context index.
func (c *Context) Slot(index int) *Cell {
	cells := c.Series.cells
	idx := c.bias + index
	if index <= 0 || idx >= c.bias+c.len {
		return nil
	}
	return &cells[idx]
}

// IndexOf finds the 1-based slot index bound to sym's canon, or 0.
func (c *Context) IndexOf(sym *Symbol) int {
	canon := sym.Canon()
	keys := c.keylist.Cells()
	for i := 1; i < len(keys); i++ {
		if keys[i].WordSymbol() != nil && keys[i].WordSymbol().Canon() == canon {
			return i
		}
	}
	return 0
}

package rebcore

// GC is the stop-the-world mark-sweep collector of spec.md §4.3. It
// traces roots explicitly handed to it (spec.md §5: this core has no
// ambient global state beyond the pool and symbol table, so the host —
// normally the Interpreter — is responsible for registering roots).
type GC struct {
	pool *Pool

	guardedSeries []*Series // PUSH_GUARD_SERIES/DROP_GUARD_SERIES stack
	guardedValues []Cell    // guarded-value stack

	roots []*Series // API handles (alloc_value), see api.go

	cycles int
}

func NewGC(p *Pool) *GC { return &GC{pool: p} }

// GuardSeries pushes s onto the guard stack, protecting it from
// collection until UnguardSeries pops it (spec.md §4.2 guard/unguard,
// §9 "scoped acquisition of a root handle that releases on all exit
// paths").
func (g *GC) GuardSeries(s *Series) { g.guardedSeries = append(g.guardedSeries, s) }

// UnguardSeries pops the most recently guarded series. It is a
// programming error to call this with an empty stack or out of LIFO
// order; the core panics rather than silently desyncing the stack,
// matching the fatal treatment spec.md §7 gives to corrupted core
// invariants.
func (g *GC) UnguardSeries(s *Series) {
	n := len(g.guardedSeries)
	if n == 0 || g.guardedSeries[n-1] != s {
		panic("rebcore: UnguardSeries called out of order")
	}
	g.guardedSeries = g.guardedSeries[:n-1]
}

// GuardValue/UnguardValue are the cell-level counterparts, for a host
// temporary that is a value rather than a series reference.
func (g *GC) GuardValue(c Cell) { g.guardedValues = append(g.guardedValues, c) }
func (g *GC) UnguardValue()     { g.guardedValues = g.guardedValues[:len(g.guardedValues)-1] }

// AddRoot registers a permanent root (a symbol table's interned
// symbols, a module-level context, an API handle from alloc_value).
func (g *GC) AddRoot(s *Series) { g.roots = append(g.roots, s) }

// RemoveRoot unregisters a root previously added with AddRoot (used by
// free_value, see api.go).
func (g *GC) RemoveRoot(s *Series) {
	for i, r := range g.roots {
		if r == s {
			g.roots = append(g.roots[:i], g.roots[i+1:]...)
			return
		}
	}
}

// UnwindGuards drops every guard pushed since checkpoint, the behavior
// spec.md §7 requires of a fail/longjmp unwind ("All guarded series are
// automatically unguarded by the unwind").
func (g *GC) UnwindGuards(seriesCheckpoint, valueCheckpoint int) {
	if seriesCheckpoint < len(g.guardedSeries) {
		g.guardedSeries = g.guardedSeries[:seriesCheckpoint]
	}
	if valueCheckpoint < len(g.guardedValues) {
		g.guardedValues = g.guardedValues[:valueCheckpoint]
	}
}

// Checkpoint returns the current guard-stack depths, for UnwindGuards.
func (g *GC) Checkpoint() (seriesDepth, valueDepth int) {
	return len(g.guardedSeries), len(g.guardedValues)
}

// Collect runs one full mark-sweep cycle (spec.md §4.3 algorithm).
func (g *GC) Collect() {
	g.clearMarks()

	for _, s := range g.guardedSeries {
		g.mark(s)
	}
	for _, c := range g.guardedValues {
		g.markCell(c)
	}
	for _, s := range g.roots {
		g.mark(s)
	}

	g.sweep()
	g.pool.ResetBallast()
	g.cycles++
}

func (g *GC) clearMarks() {
	for _, node := range g.pool.Nodes() {
		if node.series != nil {
			node.series.ClearFlag(SeriesMarked)
		}
	}
}

// mark implements spec.md §4.3 step 2: idempotent on cycles (contexts
// <-> keylists, bodies <-> paramlists, maps <-> hashlists) because it
// returns immediately once MARKED is observed set.
func (g *GC) mark(s *Series) {
	if s == nil || s.IsFreed() {
		return
	}
	if !s.HasFlag(SeriesManaged) {
		return // UNMANAGED: explicitly owned by the host, not swept
	}
	if s.HasFlag(SeriesMarked) {
		return
	}
	s.SetFlag(SeriesMarked)

	switch s.kind {
	case SeriesCells:
		for _, c := range s.cells[s.bias : s.bias+s.len] {
			g.markCell(c)
		}
		if s.HasFlag(SeriesVarlist) {
			g.mark(s.link.keylist)
		}
		if s.link.meta != nil {
			g.mark(s.link.meta.Series)
		}
	case SeriesSymbolKind:
		if s.misc.canon != nil {
			g.mark(s.misc.canon.series)
		}
		if s.link.synonym != nil {
			g.mark(s.link.synonym.series)
		}
	}

	if s.misc.owner != nil {
		g.mark(s.misc.owner) // managed HANDLE: owning singular array
	}
}

func (g *GC) markCell(c Cell) {
	if s := c.Series(); s != nil {
		g.mark(s)
	}
	if sym := c.WordSymbol(); sym != nil {
		g.mark(sym.series)
	}
	if ctx := c.Context(); ctx != nil {
		g.mark(ctx.Series)
	}
	if fn := c.Function(); fn != nil {
		g.mark(fn.Series)
		g.mark(fn.bodyHolder)
	}
	if c.IsBound() {
		if ctx := c.BoundContext(); ctx != nil {
			g.mark(ctx.Series)
		}
		if fr := c.BoundFrame(); fr != nil {
			g.mark(fr.Series)
		}
	}
}

// sweep implements spec.md §4.3 step 3.
func (g *GC) sweep() {
	for _, node := range g.pool.Nodes() {
		s := node.series
		if s == nil || s.IsFreed() {
			continue
		}
		if !s.HasFlag(SeriesManaged) {
			continue
		}
		if s.HasFlag(SeriesMarked) {
			continue
		}
		if s.misc.cleaner != nil {
			var data any
			if s.kind == SeriesCells && s.len > 0 && s.cells[s.bias].Handle() != nil {
				data = s.cells[s.bias].Handle().Data
			}
			s.misc.cleaner(data) // finalizers must not allocate (spec.md §4.3 invariant iii)
		}
		if s.HasFlag(SeriesExternal) {
			// EXTERNAL series: provider owns the data buffer, do not free it.
			node.series = nil
			continue
		}
		g.pool.FreeNode(node)
	}
}

// Cycles reports how many collections have run, for tests/diagnostics.
func (g *GC) Cycles() int { return g.cycles }

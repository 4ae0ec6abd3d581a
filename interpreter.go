package rebcore

// Interpreter bundles the process-global state spec.md §9 calls out as
// the only shared-process state in this core (the heap pools, symbol
// table, and canon-symbol bind-index slots): "package as an
// Interpreter value with explicit init/teardown; all APIs take it as a
// context." One Interpreter is exactly one single-threaded cooperative
// runtime (spec.md §5).
type Interpreter struct {
	Config  Config
	Pool    *Pool
	Symbols *SymbolTable
	GC      *GC

	rootModule *Context
	apiHandles []*APIHandle
}

// NewInterpreter builds a fresh runtime with configuration read from
// the environment (SPEC_FULL.md §2 "Configuration").
func NewInterpreter() *Interpreter {
	return NewInterpreterWithConfig(ConfigFromEnv())
}

// NewInterpreterWithConfig builds a fresh runtime with an explicit
// Config, bypassing environment lookup — used by tests that need
// deterministic tunables.
func NewInterpreterWithConfig(cfg Config) *Interpreter {
	pool := NewPool(cfg)
	symbols := NewSymbolTable(pool)
	gc := NewGC(pool)

	it := &Interpreter{Config: cfg, Pool: pool, Symbols: symbols, GC: gc}
	it.rootModule = NewContext(pool, 0)
	it.rootModule.SetFlag(SeriesManaged)
	gc.AddRoot(it.rootModule.Series)

	for _, sym := range symbols.byExactSpelling {
		gc.AddRoot(sym.series)
	}

	return it
}

// RootModule is the module-level context every top-level binding pass
// ultimately resolves unbound words into (spec.md §4.3 roots: "the
// symbol table and module-level context").
func (it *Interpreter) RootModule() *Context { return it.rootModule }

// MaybeCollect runs a GC cycle if the pool's ballast has crossed the
// configured watermark (spec.md §4.1). Hosts call this at safe points
// (e.g. between top-level evaluations); the core never triggers a
// collection on its own since it has no internal suspension points
// (spec.md §5).
func (it *Interpreter) MaybeCollect() bool {
	if !it.Pool.ShouldCollect() {
		return false
	}
	it.GC.Collect()
	return true
}

// Scan runs the scanner+assembler over src under the interpreter's own
// pool and symbol table (spec.md §4.5, §6.1).
func (it *Interpreter) Scan(src []byte, file string, opts ScanMode) (*Array, error) {
	return Scan(src, file, opts, it.Pool, it.Symbols, it.Config)
}

// AllocValue registers a new API handle rooted at the interpreter level
// (spec.md §6.4), tracked so a later OwnerExited sweep can find it.
func (it *Interpreter) AllocValue(value Cell) *APIHandle {
	h := AllocValue(it.Pool, it.GC, value, nil)
	it.apiHandles = append(it.apiHandles, h)
	return h
}

// FreeValue releases a handle immediately (spec.md §6.4).
func (it *Interpreter) FreeValue(h *APIHandle) {
	FreeValue(it.Pool, it.GC, h)
	for i, existing := range it.apiHandles {
		if existing == h {
			it.apiHandles = append(it.apiHandles[:i], it.apiHandles[i+1:]...)
			return
		}
	}
}

package rebcore

import (
	"hash/fnv"
	"strings"
)

// SymID is a built-in SYM_* identifier, packed into a canon symbol's
// header so STR_SYMBOL is a field load rather than a string compare
// (spec.md §4.4 "Built-ins"). Non-built-in symbols report SymNone.
type SymID uint16

const SymNone SymID = 0

// Symbol is an interned UTF-8 name (spec.md §3.4). Canon forms own the
// circular same-spelling synonym ring via Series.link.synonym; every
// other case variant points back to its canon via Series.misc.canon.
type Symbol struct {
	series *Series // backing byte series holding the spelling (SeriesSymbolKind)
	id     SymID   // built-in identifier, or SymNone

	canon bool
}

func (s *Symbol) String() string { return string(s.series.Bytes()) }
func (s *Symbol) Canon() *Symbol {
	if s.canon {
		return s
	}
	return s.series.misc.canon
}
func (s *Symbol) IsCanon() bool { return s.canon }
func (s *Symbol) ID() SymID     { return s.id }

// Synonyms walks the circular same-canon ring, including s itself.
func (s *Symbol) Synonyms() []*Symbol {
	canon := s.Canon()
	out := []*Symbol{canon}
	cur := canon.series.link.synonym
	for cur != nil && cur != canon {
		out = append(out, cur)
		cur = cur.series.link.synonym
	}
	return out
}

// bindSlot is the two-sided 16-bit index pair spec.md §4.4 packs into
// the canon symbol header. Represented directly as two ints since this
// core does not need the bit-packing the C source used to save space.
type bindSlot struct {
	high int32
	low  int32
}

// SymbolTable is the global (per-Interpreter) intern table of spec.md
// §4.4: a hash table keyed by canon-folded UTF-8 bytes, plus the
// built-in SYM_* registry.
type SymbolTable struct {
	pool *Pool

	// canonByFold maps the case-folded spelling to its canon Symbol.
	canonByFold map[string]*Symbol
	// byExactSpelling maps the exact (unfolded) bytes to whichever
	// Symbol (canon or synonym) was interned for them.
	byExactSpelling map[string]*Symbol

	bindSlots map[*Symbol]*bindSlot

	builtins map[string]SymID
}

// NewSymbolTable builds an empty table and interns the fixed list of
// well-known names (spec.md §4.4 "Built-ins").
func NewSymbolTable(p *Pool) *SymbolTable {
	t := &SymbolTable{
		pool:            p,
		canonByFold:     make(map[string]*Symbol),
		byExactSpelling: make(map[string]*Symbol),
		bindSlots:       make(map[*Symbol]*bindSlot),
		builtins:        make(map[string]SymID),
	}
	for i, name := range builtinSymbolNames {
		t.builtins[name] = SymID(i + 1)
	}
	for _, name := range builtinSymbolNames {
		sym := t.Intern(name)
		sym.id = t.builtins[name]
	}
	return t
}

// canonFold is the case-fold spec.md calls "canon-folded" — Unicode
// lower-casing via strings.ToLower, which covers the Latin word set this
// core targets (full Unicode case folding, beyond simple lower-casing, is
// a host-layer concern, not part of the core per spec.md §1).
func canonFold(s string) string { return strings.ToLower(s) }

// Intern interns bytes, returning the existing Symbol if already known
// or creating a fresh canon/synonym pair otherwise (spec.md §4.4, §8
// "intern(bytes_of(s)) == s" round-trip law).
func (t *SymbolTable) Intern(spelling string) *Symbol {
	if exact, ok := t.byExactSpelling[spelling]; ok {
		return exact
	}

	fold := canonFold(spelling)
	canon, haveCanon := t.canonByFold[fold]

	if !haveCanon {
		canon = t.newSymbol(spelling, true)
		t.canonByFold[fold] = canon
		t.byExactSpelling[spelling] = canon
		return canon
	}

	if canon.String() == spelling {
		// First interned spelling already matches exactly; shouldn't
		// happen since byExactSpelling would have hit, but keep it safe.
		t.byExactSpelling[spelling] = canon
		return canon
	}

	syn := t.newSymbol(spelling, false)
	syn.series.misc.canon = canon
	// splice syn into canon's circular synonym ring
	syn.series.link.synonym = canon.series.link.synonym
	if syn.series.link.synonym == nil {
		syn.series.link.synonym = canon
	}
	canon.series.link.synonym = syn
	t.byExactSpelling[spelling] = syn
	return syn
}

func (t *SymbolTable) newSymbol(spelling string, canon bool) *Symbol {
	s := MakeSeries(t.pool, SeriesSymbolKind, len(spelling), SeriesString)
	_ = s.AppendBytes([]byte(spelling))
	s.SetFlag(SeriesManaged)
	if canon {
		s.SetFlag(SeriesCanon)
	}
	return &Symbol{series: s, canon: canon}
}

// BuiltinID returns the built-in SymID for a canon name, or SymNone.
func (t *SymbolTable) BuiltinID(name string) SymID {
	if id, ok := t.builtins[name]; ok {
		return id
	}
	return SymNone
}

// hashFNV is the one hashing idiom the corpus actually demonstrates
// (xyproto/flapc's FlapHashMap in hashmap.go hashes with hash/fnv); used
// here for Map key hashes (mapval.go), not for the intern table itself
// (Go's built-in map already hashes canonByFold).
func hashFNV(b []byte) uint64 {
	h := fnv.New64a()
	h.Write(b)
	return h.Sum64()
}

// --- Binder (spec.md §4.4 "Binder") ---

// Binder is a per-pass cooperative index-stamping session. Two
// concurrently live Binders may use opposite sides (High) of each
// symbol's slot without colliding, the same trick the source plays with
// a packed 16-bit pair — here plain separate int fields since nothing
// forces 32-bit packing in Go.
type Binder struct {
	table *SymbolTable
	high  bool

	adds    int
	removes int
}

// NewBinder starts a binding pass on one side of the dual-slot index.
func NewBinder(t *SymbolTable, high bool) *Binder {
	return &Binder{table: t, high: high}
}

func (b *Binder) slot(sym *Symbol) *bindSlot {
	canon := sym.Canon()
	s, ok := b.table.bindSlots[canon]
	if !ok {
		s = &bindSlot{}
		b.table.bindSlots[canon] = s
	}
	return s
}

// TryAdd stamps index into sym's side of the bind slot, failing if that
// side is already occupied — "already bound in this pass" (spec.md
// §4.4, §8 binding scenario).
func (b *Binder) TryAdd(sym *Symbol, index int) bool {
	s := b.slot(sym)
	if b.high {
		if s.high != 0 {
			return false
		}
		s.high = int32(index)
	} else {
		if s.low != 0 {
			return false
		}
		s.low = int32(index)
	}
	b.adds++
	return true
}

// TryRemove clears sym's side of the bind slot.
func (b *Binder) TryRemove(sym *Symbol) bool {
	s := b.slot(sym)
	if b.high {
		if s.high == 0 {
			return false
		}
		s.high = 0
	} else {
		if s.low == 0 {
			return false
		}
		s.low = 0
	}
	b.removes++
	return true
}

// Index reads back the current index stamped on this pass's side,
// without mutating anything.
func (b *Binder) Index(sym *Symbol) (int, bool) {
	s := b.slot(sym)
	if b.high {
		if s.high == 0 {
			return 0, false
		}
		return int(s.high), true
	}
	if s.low == 0 {
		return 0, false
	}
	return int(s.low), true
}

// Balanced reports whether every TryAdd this pass has a matching
// TryRemove — debug-build invariant from spec.md §4.4 ("a counter
// ensures every add is matched by a remove; failure to balance is
// fatal"). The core surfaces it as a bool rather than panicking so the
// host decides fatality.
func (b *Binder) Balanced() bool { return b.adds == b.removes }

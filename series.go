package rebcore

// SeriesFlag mirrors the flag set spec.md §3.2 requires at minimum.
type SeriesFlag uint32

const (
	SeriesArray SeriesFlag = 1 << iota
	SeriesString
	SeriesCanon
	SeriesHasDynamic
	SeriesFixedSize
	SeriesPowerOf2
	SeriesExternal
	SeriesAccessible
	SeriesManaged
	SeriesMarked
	SeriesFrozen
	SeriesFileLine
	SeriesVarlist
	SeriesKeylistShared
	SeriesVoidsLegal
)

// SeriesKind selects which concrete element type a Series holds. The C
// source uses one polymorphic layout for every element width; here each
// Series commits to a Kind and the byte/cell buffers are typed
// accordingly (spec.md §9 design note).
type SeriesKind uint8

const (
	SeriesBytes SeriesKind = iota
	SeriesCodepoints
	SeriesCells
	SeriesSymbolKind
)

// link and misc are the two auxiliary pointer slots spec.md §3.2
// describes as flag-interpreted. Here each interpretation is its own
// typed field instead of a raw pointer recast by flag bits.
type link struct {
	fileName string     // ARRAY: source file name
	meta     *Context   // FUNCTION paramlist: optional metadata context
	keylist  *Series    // CONTEXT varlist: parallel keylist array
	hashlist []int32    // MAP: auxiliary integer hash table
	synonym  *Symbol    // SYMBOL: next entry in the circular same-spelling ring
}

type misc struct {
	canon    *Symbol // SYMBOL (non-canon): pointer to the canon form
	owner    *Series // managed HANDLE: the owning singular array
	cleaner  func(data any) // HANDLE: finalizer run at collection
	dispatch func(args []Cell) (Cell, error) // FUNCTION body-holder: native dispatcher
	bodyHead Cell                            // FUNCTION body-holder: body expression at index 0
}

// Series is the variable-width growable buffer every Array, Context,
// Function paramlist, Map, String and Symbol is built from (spec.md
// §3.2). wide is retained even though Go slices are already typed,
// because wide==0 is the pool's "this node is freed" sentinel (spec.md
// §3.2 invariant (i), §8 "wide(n) != 0 iff allocated").
type Series struct {
	kind  SeriesKind
	wide  uint8
	flags SeriesFlag

	len  int
	rest int // capacity in elements
	bias int // leading unused elements, enables O(1) pop-front

	bytes []byte
	cells []Cell

	link link
	misc misc

	node *poolNode // the pool slab node backing this series' header
	gen  uint64    // GC generation stamp; not read or written by gc.go
}

// freedWide is written into a node's wide field when its Series is
// swept, matching spec.md §3.2 invariant (i).
const freedWide = 0

func (s *Series) IsFreed() bool { return s.wide == freedWide }

func (s *Series) Kind() SeriesKind { return s.kind }
func (s *Series) Wide() uint8      { return s.wide }
func (s *Series) Len() int         { return s.len }
func (s *Series) Rest() int        { return s.rest }
func (s *Series) Bias() int        { return s.bias }
func (s *Series) Flags() SeriesFlag { return s.flags }

func (s *Series) HasFlag(f SeriesFlag) bool { return s.flags&f != 0 }
func (s *Series) SetFlag(f SeriesFlag)      { s.flags |= f }
func (s *Series) ClearFlag(f SeriesFlag)    { s.flags &^= f }

// Bytes returns the live byte window [bias, bias+len). Valid for
// SeriesBytes and SeriesSymbolKind (symbol spellings are byte-backed
// too, just under a distinct kind so the pool can size-class them
// separately).
func (s *Series) Bytes() []byte {
	if s.kind != SeriesBytes && s.kind != SeriesSymbolKind {
		panic("rebcore: Bytes() on non-byte series")
	}
	return s.bytes[s.bias : s.bias+s.len]
}

// Cells returns the live cell window [bias, bias+len). Valid only when
// Kind is SeriesCells.
func (s *Series) Cells() []Cell {
	if s.kind != SeriesCells {
		panic("rebcore: Cells() on non-cell series")
	}
	return s.cells[s.bias : s.bias+s.len]
}

// MakeSeries allocates a new Series of the given element width and
// initial capacity (spec.md §4.2 make_series). Arrays get an END
// terminator written at index 0.
func MakeSeries(p *Pool, kind SeriesKind, capacity int, flags SeriesFlag) *Series {
	wide := uint8(1)
	switch kind {
	case SeriesCells:
		wide = 0 // cells are tracked by slice length, wide is nominal here
		flags |= SeriesArray
	case SeriesSymbolKind:
		flags |= SeriesString
	}

	node := p.allocSeriesNode()
	s := &Series{
		kind:  kind,
		wide:  widthFor(kind, wide),
		flags: flags,
		node:  node,
	}
	node.series = s

	if capacity > 0 {
		flags |= SeriesHasDynamic
		s.flags = flags
		if kind == SeriesCells {
			s.cells = make([]Cell, capacity)
		} else {
			s.bytes = make([]byte, capacity)
		}
		s.rest = capacity
	} else {
		// inline content: a 0-capacity array still reports len==0 with
		// an immediate END, per spec.md §8 boundary behavior.
		s.rest = 0
	}

	if kind == SeriesCells {
		s.termArrayLen(0)
	}
	return s
}

func widthFor(kind SeriesKind, fallback uint8) uint8 {
	switch kind {
	case SeriesBytes, SeriesSymbolKind:
		return 1
	case SeriesCodepoints:
		return 4
	case SeriesCells:
		return 1 // nominal; real element storage is s.cells
	}
	return fallback
}

// ErrSeriesFixed is returned by ExpandSeries when FIXED_SIZE is set.
var ErrSeriesFixed = newCoreErrorKind(ErrSeriesFixedKind, "series is fixed-size")

// ExpandSeries grows the series by delta elements at index at, shifting
// any tail content right (spec.md §4.2 expand_series). When the
// existing buffer has enough slack (bias+len+delta <= rest) this grows
// in place; otherwise it reallocates, doubling capacity when
// SeriesPowerOf2 is set.
func (s *Series) ExpandSeries(at, delta int) error {
	if s.HasFlag(SeriesFixedSize) {
		return ErrSeriesFixed
	}
	if delta <= 0 {
		return nil
	}
	if s.bias+s.len+delta <= s.rest {
		s.shiftTailRight(at, delta)
		return nil
	}
	newCap := s.bias + s.len + delta
	if s.HasFlag(SeriesPowerOf2) {
		newCap = nextPowerOf2(newCap)
	}
	s.reallocate(newCap, at, delta)
	return nil
}

// shiftTailRight is only called when the reserved buffer (length rest)
// already has room for delta more live elements, so it shifts within the
// existing slice rather than growing it.
func (s *Series) shiftTailRight(at, delta int) {
	switch s.kind {
	case SeriesCells:
		idx := s.bias + at
		copy(s.cells[idx+delta:s.bias+s.len+delta], s.cells[idx:s.bias+s.len])
		for i := idx; i < idx+delta; i++ {
			s.cells[i] = Cell{}
		}
	default:
		idx := s.bias + at
		copy(s.bytes[idx+delta:s.bias+s.len+delta], s.bytes[idx:s.bias+s.len])
		for i := idx; i < idx+delta; i++ {
			s.bytes[i] = 0
		}
	}
	s.len += delta
	if s.kind == SeriesCells {
		s.termArrayLen(s.len)
	}
}

func (s *Series) reallocate(newCap, at, delta int) {
	switch s.kind {
	case SeriesCells:
		fresh := make([]Cell, newCap)
		copy(fresh, s.cells[s.bias:s.bias+at])
		copy(fresh[at+delta:], s.cells[s.bias+at:s.bias+s.len])
		s.cells = fresh
	default:
		fresh := make([]byte, newCap)
		copy(fresh, s.bytes[s.bias:s.bias+at])
		copy(fresh[at+delta:], s.bytes[s.bias+at:s.bias+s.len])
		s.bytes = fresh
	}
	s.bias = 0
	s.len += delta
	s.rest = newCap
	s.flags |= SeriesHasDynamic
	if s.kind == SeriesCells {
		s.termArrayLen(s.len)
	}
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// PopFront drops the first element in O(1) by advancing bias (spec.md
// §4.2 bias contract, §8 series-bias scenario).
func (s *Series) PopFront() {
	if s.len == 0 {
		return
	}
	s.bias++
	s.len--
}

// ResetBias folds accumulated bias into a real move, reclaiming the
// dead leading space ahead of the next expansion (spec.md §4.2).
func (s *Series) ResetBias() {
	if s.bias == 0 {
		return
	}
	switch s.kind {
	case SeriesCells:
		copy(s.cells, s.cells[s.bias:s.bias+s.len])
	default:
		copy(s.bytes, s.bytes[s.bias:s.bias+s.len])
	}
	s.bias = 0
}

// TermArrayLen sets the array's length and writes an END at position n
// (spec.md §4.2 "Array termination contract").
func (s *Series) termArrayLen(n int) {
	s.len = n
	idx := s.bias + n
	if idx < len(s.cells) {
		s.cells[idx] = NewEnd()
	}
	// When n+1 == rest the end of the backing buffer itself serves as the
	// terminator in the C source; Go slices are already bounds-checked so
	// Cells() simply never exposes index n, giving the same guarantee
	// without needing a sentinel past the allocation.
}

// TermArrayLen is the exported form used by the assembler once a block's
// final length is known.
func (s *Series) TermArrayLen(n int) { s.termArrayLen(n) }

// Append adds a single cell to an array series, expanding if needed.
func (s *Series) Append(c Cell) error {
	if s.HasFlag(SeriesFrozen) {
		return newCoreErrorKind(ErrReadOnlyKind, "cannot append to a frozen array")
	}
	idx := s.len
	if s.bias+s.len+1 > s.rest {
		if err := s.ExpandSeries(s.len, 1); err != nil {
			return err
		}
	} else {
		s.len++
	}
	s.cells[s.bias+idx] = c
	s.termArrayLen(s.len)
	return nil
}

// AppendBytes appends raw bytes to a byte-backed series (string/binary),
// expanding as needed.
func (s *Series) AppendBytes(b []byte) error {
	if s.HasFlag(SeriesFrozen) {
		return newCoreErrorKind(ErrReadOnlyKind, "cannot append to a frozen series")
	}
	if len(b) == 0 {
		return nil
	}
	idx := s.len
	if s.bias+s.len+len(b) > s.rest {
		if err := s.ExpandSeries(s.len, len(b)); err != nil {
			return err
		}
	} else {
		s.len += len(b)
	}
	copy(s.bytes[s.bias+idx:s.bias+idx+len(b)], b)
	return nil
}

// Freeze recursively marks the array (and, when deep, any reachable
// subarrays) FROZEN, after which all mutation APIs fail with ReadOnly
// (spec.md §4.2 freeze).
func (s *Series) Freeze(deep bool) {
	s.flags |= SeriesFrozen
	if !deep || s.kind != SeriesCells {
		return
	}
	for i := range s.cells[s.bias : s.bias+s.len] {
		c := &s.cells[s.bias+i]
		if sub := c.Series(); sub != nil && sub.kind == SeriesCells {
			sub.Freeze(true)
		}
	}
}

func (s *Series) Frozen() bool { return s.HasFlag(SeriesFrozen) }

package rebcore

import "math"

// Kind enumerates the value kinds a Cell can hold (spec.md §3.1).
type Kind uint8

const (
	KindEnd Kind = iota // non-value sentinel, terminates arrays
	KindVoid
	KindBlank
	KindLogic
	KindInteger
	KindDecimal
	KindChar
	KindPair
	KindTime
	KindDate
	KindWord
	KindSetWord
	KindGetWord
	KindLitWord
	KindRefinement
	KindIssue
	KindBlock
	KindGroup
	KindPath
	KindString
	KindBinary
	KindFile
	KindURL
	KindEmail
	KindTag
	KindMap
	KindBitset
	KindObject
	KindFrame
	KindFunction
	KindHandle
	KindEvent
	KindGob
	KindVarargs
)

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown-kind"
}

var kindNames = [...]string{
	KindEnd:        "end",
	KindVoid:       "void",
	KindBlank:      "blank",
	KindLogic:      "logic",
	KindInteger:    "integer",
	KindDecimal:    "decimal",
	KindChar:       "char",
	KindPair:       "pair",
	KindTime:       "time",
	KindDate:       "date",
	KindWord:       "word",
	KindSetWord:    "set-word",
	KindGetWord:    "get-word",
	KindLitWord:    "lit-word",
	KindRefinement: "refinement",
	KindIssue:      "issue",
	KindBlock:      "block",
	KindGroup:      "group",
	KindPath:       "path",
	KindString:     "string",
	KindBinary:     "binary",
	KindFile:       "file",
	KindURL:        "url",
	KindEmail:      "email",
	KindTag:        "tag",
	KindMap:        "map",
	KindBitset:     "bitset",
	KindObject:     "object",
	KindFrame:      "frame",
	KindFunction:   "function",
	KindHandle:     "handle",
	KindEvent:      "event",
	KindGob:        "gob",
	KindVarargs:    "varargs",
}

// CellFlag holds kind-specific and cross-cutting bits packed into the
// header (spec.md §3.1). Only the bits this core actually inspects are
// named; unused bits are free for callers layered on top.
type CellFlag uint32

const (
	FlagNewLineBefore  CellFlag = 1 << iota // scanner: reformatter round-trip marker
	FlagHasTime                             // DATE carries a time-of-day payload
	FlagHasZone                             // DATE carries a valid zone offset
	FlagRelativeBind                        // WORD binding is relative to a frame, not a context
	FlagManaged                             // payload Series is GC-managed
	FlagFileLine                            // cell was constructed with source file/line info attached
)

// Cell is the uniform tagged value every series of ARRAY kind is built
// from (spec.md §3.1). Unlike the C original, header/extra/payload are
// not hand-packed bitfields: Kind, Flags and the binding side of Extra
// are ordinary struct fields, and Payload is a plain Go union encoded as
// two machine words (a pointer-or-int slot and a float64-or-int slot).
// The invariant the source enforces by not letting a partial field write
// clobber a neighboring one is preserved the Go way: Payload is always
// built as a whole by the New* constructors (below and in glue.go),
// never patched field by field by callers.
type Cell struct {
	kind  Kind
	flags CellFlag

	// extra is the WORD binding slot (Context/Frame reference + index) or,
	// for DATE, the packed year/month/day/zone fields. Exactly one
	// interpretation is live, selected by kind — mirrors spec.md's
	// "extra" secondary field.
	extra cellExtra

	// payload is kind-determined. A0/A1 are the generic two-word slots;
	// Series/Index back ANY-SERIES and WORD kinds; Sym backs WORD kinds'
	// spelling.
	a0, a1 uint64
	f0, f1 float64
	ser    *Series
	sym    *Symbol
	obj    *Context
	fn     *Function
	han    *Handle
}

type cellExtra struct {
	binding  *Context // non-nil for a WORD bound into an object/module context
	frame    *Function // non-nil for a WORD bound relatively into a paramlist
	index    int32     // 1-based slot index within binding/frame
	year     int16
	month    int8
	day      int8
	zoneQtrs int8 // signed quarter-hour UTC offset
}

// NewEnd returns the END sentinel cell. Its Kind is disjoint from every
// real value kind (spec.md §3.1 invariant).
func NewEnd() Cell { return Cell{kind: KindEnd} }

func (c *Cell) Kind() Kind        { return c.kind }
func (c *Cell) IsEnd() bool       { return c.kind == KindEnd }
func (c *Cell) Flags() CellFlag   { return c.flags }
func (c *Cell) HasFlag(f CellFlag) bool { return c.flags&f != 0 }
func (c *Cell) SetFlag(f CellFlag)      { c.flags |= f }
func (c *Cell) ClearFlag(f CellFlag)    { c.flags &^= f }

// --- scalar constructors/accessors ---

func NewVoid() Cell  { return Cell{kind: KindVoid} }
func NewBlank() Cell { return Cell{kind: KindBlank} }

func NewLogic(b bool) Cell {
	v := uint64(0)
	if b {
		v = 1
	}
	return Cell{kind: KindLogic, a0: v}
}
func (c *Cell) Logic() bool { return c.a0 != 0 }

func NewInteger(n int64) Cell { return Cell{kind: KindInteger, a0: uint64(n)} }
func (c *Cell) Integer() int64 { return int64(c.a0) }

func NewDecimal(f float64) Cell { return Cell{kind: KindDecimal, f0: f} }
func (c *Cell) Decimal() float64 { return c.f0 }

// MaxCodepoint is the legacy string-representation ceiling spec.md §3.1
// mandates for CHAR! payloads.
const MaxCodepoint = 0xFFFF

// ErrCodepointTooHigh is raised by NewChar and the scanner when a
// codepoint exceeds MaxCodepoint.
func NewChar(r rune) (Cell, error) {
	if r < 0 || r > MaxCodepoint {
		return Cell{}, newCoreErrorKind(ErrCodepointTooHighKind, "codepoint U+%X exceeds U+FFFF", r)
	}
	return Cell{kind: KindChar, a0: uint64(r)}, nil
}
func (c *Cell) Char() rune { return rune(c.a0) }

func NewPair(x, y float32) Cell {
	return Cell{kind: KindPair, f0: float64(math.Float32bits(x)), f1: float64(math.Float32bits(y))}
}
func (c *Cell) Pair() (x, y float32) {
	return math.Float32frombits(uint32(c.f0)), math.Float32frombits(uint32(c.f1))
}

// NewTime stores nanoseconds since midnight (spec.md §4.6).
func NewTime(nanos int64) Cell { return Cell{kind: KindTime, a0: uint64(nanos)} }
func (c *Cell) TimeNanos() int64 { return int64(c.a0) }

// NewDate packs year/month/day and an optional zone/time (spec.md §3.1, §4.6).
func NewDate(year int, month, day int, hasTime bool, nanos int64, hasZone bool, zoneQuarters int8) Cell {
	c := Cell{kind: KindDate}
	c.extra.year = int16(year)
	c.extra.month = int8(month)
	c.extra.day = int8(day)
	c.extra.zoneQtrs = zoneQuarters
	if hasTime {
		c.flags |= FlagHasTime
		c.a0 = uint64(nanos)
	}
	if hasZone {
		c.flags |= FlagHasZone
	}
	return c
}
func (c *Cell) DateParts() (year, month, day int) {
	return int(c.extra.year), int(c.extra.month), int(c.extra.day)
}
func (c *Cell) DateZoneQuarters() int8 { return c.extra.zoneQtrs }

// --- series-backed kinds (ANY-SERIES: BLOCK/STRING/etc, and WORD) ---

func newSeriesCell(k Kind, s *Series, index int) Cell {
	return Cell{kind: k, ser: s, a0: uint64(index)}
}

func (c *Cell) Series() *Series { return c.ser }
func (c *Cell) Index() int      { return int(c.a0) }
func (c *Cell) SetIndex(i int)  { c.a0 = uint64(i) }

func NewBlock(s *Series) Cell  { return newSeriesCell(KindBlock, s, 0) }
func NewGroup(s *Series) Cell  { return newSeriesCell(KindGroup, s, 0) }
func NewPath(s *Series) Cell   { return newSeriesCell(KindPath, s, 0) }
func NewString(s *Series) Cell { return newSeriesCell(KindString, s, 0) }
func NewBinary(s *Series) Cell { return newSeriesCell(KindBinary, s, 0) }
func NewFile(s *Series) Cell   { return newSeriesCell(KindFile, s, 0) }
func NewURL(s *Series) Cell    { return newSeriesCell(KindURL, s, 0) }
func NewEmail(s *Series) Cell  { return newSeriesCell(KindEmail, s, 0) }
func NewTag(s *Series) Cell    { return newSeriesCell(KindTag, s, 0) }

// NewWord builds an unbound word cell of the given kind (one of
// KindWord/KindSetWord/KindGetWord/KindLitWord/KindRefinement/KindIssue).
func NewWord(kind Kind, sym *Symbol) Cell {
	return Cell{kind: kind, sym: sym}
}
func (c *Cell) WordSymbol() *Symbol { return c.sym }

// BindToContext associates a word cell with a slot in an object/module
// context (spec.md §4.4 contract, §8 scenario 4).
func (c *Cell) BindToContext(ctx *Context, index int) {
	c.extra.binding = ctx
	c.extra.frame = nil
	c.extra.index = int32(index)
	c.flags &^= FlagRelativeBind
}

// BindRelative associates a word cell with a slot in a function's
// paramlist, relative to whichever frame instance is active when the
// word is looked up (spec.md §3.1 "has-relative-binding" bit).
func (c *Cell) BindRelative(fn *Function, index int) {
	c.extra.frame = fn
	c.extra.binding = nil
	c.extra.index = int32(index)
	c.flags |= FlagRelativeBind
}

func (c *Cell) IsBound() bool { return c.extra.binding != nil || c.extra.frame != nil }
func (c *Cell) BoundContext() *Context { return c.extra.binding }
func (c *Cell) BoundFrame() *Function  { return c.extra.frame }
func (c *Cell) BindIndex() int         { return int(c.extra.index) }

// --- object-like kinds ---

func NewObject(ctx *Context) Cell { return Cell{kind: KindObject, obj: ctx} }
func NewFrame(ctx *Context) Cell  { return Cell{kind: KindFrame, obj: ctx} }
func (c *Cell) Context() *Context { return c.obj }

func NewFunctionCell(fn *Function) Cell { return Cell{kind: KindFunction, fn: fn} }
func (c *Cell) Function() *Function     { return c.fn }

func NewMapCell(s *Series) Cell { return newSeriesCell(KindMap, s, 0) }

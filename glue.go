package rebcore

// Event is the packed payload of spec.md §4.6 "EVENT": type/flags/win/
// model plus a 32-bit data word and a model-selected eventee union arm.
// TIME/DATE/PAIR payload helpers live on Cell directly (cell.go); EVENT
// and HANDLE get their own small value types here because their
// "eventee"/"owner" arms are richer than a bare scalar.
type Event struct {
	Type  uint8
	Flags uint8
	Win   uint8
	Model uint8
	Data  uint32

	// EventeeSeries is live when Model selects the series arm of the
	// union (spec.md §4.6 "model selects which union arm of eventee is
	// live"); EventeeReq is an opaque host Request the core never
	// interprets, for the Request arm.
	EventeeSeries *Series
	EventeeReq    any
}

func NewEventCell(ev Event) Cell {
	c := Cell{kind: KindEvent, ser: ev.EventeeSeries}
	c.a0 = uint64(ev.Type) | uint64(ev.Flags)<<8 | uint64(ev.Win)<<16 | uint64(ev.Model)<<24
	c.a1 = uint64(ev.Data)
	return c
}

func (c *Cell) Event() Event {
	return Event{
		Type:          uint8(c.a0),
		Flags:         uint8(c.a0 >> 8),
		Win:           uint8(c.a0 >> 16),
		Model:         uint8(c.a0 >> 24),
		Data:          uint32(c.a1),
		EventeeSeries: c.ser,
	}
}

// Handle is the payload of spec.md §4.6 "HANDLE": either a bare
// (code, data) pair living directly in the cell (unmanaged,
// copy-independent), or a singular-array-backed form where code/data
// live in a shared array and an optional cleaner runs at collection.
type Handle struct {
	Code func(data any) (any, error)
	Data any
}

// NewHandleCell builds an unmanaged handle cell: Code/Data are
// copy-independent, living directly in the cell (spec.md §4.6).
func NewHandleCell(h Handle) Cell {
	hh := h
	return Cell{kind: KindHandle, han: &hh}
}

func (c *Cell) Handle() *Handle { return c.han }

// NewManagedHandle allocates a singular array (spec.md §3.3 "Singular
// array") to back a finalizable handle, wiring its cleaner into the
// Series' misc slot so gc.go's sweep step runs it exactly once (spec.md
// §4.3 "Handle (managed): mark owner singular array").
func NewManagedHandle(p *Pool, h Handle, cleaner func(data any)) Cell {
	backing := MakeSeries(p, SeriesCells, 1, SeriesArray)
	backing.SetFlag(SeriesManaged)
	backing.misc.cleaner = cleaner
	hh := h
	cell := Cell{kind: KindHandle, ser: backing, han: &hh}
	_ = backing.Append(cell)
	backing.misc.owner = backing
	return cell
}

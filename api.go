package rebcore

// FileMode flags consumed by a host device layer (spec.md §6.3). The
// core does not implement I/O — it only defines the vocabulary a host
// port/device layer built on top of this core is expected to share.
type FileMode uint16

const (
	FileRead FileMode = 1 << iota
	FileWrite
	FileAppend
	FileSeek
	FileNew
	FileReadOnly
	FileTruncate
	FileReseek
	FileNameMem
	FileDir
)

// MaxPathLen is spec.md §6.3's maximum pathname length.
const MaxPathLen = 1022

// APIHandle is a host-visible "root cell" (spec.md §6.4): a managed
// singular array whose single cell is the value the host holds a
// reference to. Its lifecycle is independent of the interpreter's
// normal lexical scoping — it lives until FreeValue is called, or until
// its owning frame exits.
type APIHandle struct {
	series *Series
	owner  *Series // the innermost frame's varlist at creation time, or nil
}

// AllocValue returns a managed singular array flagged as a root
// (spec.md §6.4 "alloc_value"). owner is the innermost live frame's
// varlist, or nil for "no frame is live" (the EMPTY_ARRAY case in the
// source becomes a plain nil owner here). The handle is rooted
// unconditionally: an owner-less handle stays rooted until FreeValue,
// an owner-scoped one until either FreeValue or OwnerExited.
func AllocValue(p *Pool, gc *GC, value Cell, owner *Series) *APIHandle {
	backing := MakeSeries(p, SeriesCells, 1, SeriesArray)
	backing.SetFlag(SeriesManaged)
	_ = backing.Append(value)
	h := &APIHandle{series: backing, owner: owner}
	gc.AddRoot(backing)
	return h
}

// Value returns the handle's current cell.
func (h *APIHandle) Value() *Cell { return &h.series.cells[h.series.bias] }

// Set overwrites the handle's cell in place.
func (h *APIHandle) Set(c Cell) { h.series.cells[h.series.bias] = c }

// FreeValue releases the handle immediately rather than waiting for its
// owning frame to exit (spec.md §6.4 "free_value(v) releases it
// immediately").
func FreeValue(p *Pool, gc *GC, h *APIHandle) {
	gc.RemoveRoot(h.series)
	p.FreeNode(h.series.node)
}

// OwnerExited releases every API handle owned by the given frame
// varlist — the "otherwise it is collected when its owning frame exits"
// half of spec.md §6.4. Dropping the root here does not free anything
// immediately; it only makes the handle collectable on the next Collect
// if nothing else reaches it, same as any other unrooted series. The
// core does not itself track a frame stack (that belongs to the evaluator, an external
// collaborator per spec.md §1), so it is exposed as a function the host
// invokes explicitly.
func OwnerExited(gc *GC, handles []*APIHandle, exitedOwner *Series) {
	for _, h := range handles {
		if h.owner == exitedOwner {
			gc.RemoveRoot(h.series)
		}
	}
}

// HostHandle is the opaque pointer ABI of spec.md §6.2: Series, Array,
// Context, String all erase to a single opaque type at the host
// boundary. Go already gives hosts a typed *Series/*Array/*Context to
// work with; HostHandle exists only for a C-style FFI boundary that
// wants one uniform erased type, matching spec.md's literal wording.
type HostHandle struct {
	series *Series
}

func EraseToHostHandle(s *Series) HostHandle { return HostHandle{series: s} }
func (h HostHandle) Series() *Series         { return h.series }

// EventABI is the host-visible event struct layout of spec.md §6.2:
// `{header_word, eventee_ptr, type, flags, win, model, data, padding}`.
type EventABI struct {
	HeaderWord uint64
	EventeePtr *Series
	Type       uint8
	Flags      uint8
	Win        uint8
	Model      uint8
	Data       uint32
}

func ToEventABI(ev Event) EventABI {
	return EventABI{
		EventeePtr: ev.EventeeSeries,
		Type:       ev.Type,
		Flags:      ev.Flags,
		Win:        ev.Win,
		Model:      ev.Model,
		Data:       ev.Data,
	}
}

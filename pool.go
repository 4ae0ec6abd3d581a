package rebcore

// poolNode is one fixed-size slot within a pool's segment. In the C
// source a node is raw memory reinterpreted as whatever its pool holds;
// here a node always backs exactly one Series once allocated, and
// series==nil marks it free (spec.md §4.1 free-list node).
type poolNode struct {
	series *Series
}

// sizeClass is one pool: a free list plus the segments it owns.
type sizeClass struct {
	unit     int // nominal element capacity granted per allocation from this class
	segments [][]*poolNode
	free     []*poolNode
}

// Pool is the size-classed slab allocator of spec.md §4.1: 16 "tiny"
// classes stepping by 8 bytes, 4 "small" and 4 "mid" classes at wider
// steps, and a catch-all class for anything larger. Go's GC already
// reclaims the poolNode structs themselves; what this type actually
// provides is the behavior spec.md's testable properties (§8) pin down
// — O(1) free-list push/pop, enumerability of live nodes for GC sweep,
// and a ballast counter that schedules collection.
type Pool struct {
	classes []*sizeClass
	nodes   []*poolNode // every node ever allocated, across all classes; sweep target

	ballast      int
	ballastLimit int // GC signaled once ballast crosses this many bytes (spec.md §4.1: ~3MB)

	cfg Config
}

// NewPool builds the size-class ladder described in spec.md §4.1.
func NewPool(cfg Config) *Pool {
	p := &Pool{cfg: cfg, ballastLimit: cfg.GCBallastBytes}
	// 16 tiny classes, 8 bytes apart.
	for i := 1; i <= 16; i++ {
		p.classes = append(p.classes, &sizeClass{unit: i * 8})
	}
	// 4 small classes, 64 bytes apart, then 4 mid classes, 256 bytes apart.
	base := p.classes[len(p.classes)-1].unit
	for i := 1; i <= 4; i++ {
		p.classes = append(p.classes, &sizeClass{unit: base + i*64})
	}
	base = p.classes[len(p.classes)-1].unit
	for i := 1; i <= 4; i++ {
		p.classes = append(p.classes, &sizeClass{unit: base + i*256})
	}
	// One dedicated class for series nodes and a catch-all class for
	// anything larger still; handles and map hashlists have no class of
	// their own.
	p.classes = append(p.classes,
		&sizeClass{unit: base + 4*256 + 1024}, // series-node class
		&sizeClass{unit: 1 << 20},              // catch-all
	)
	return p
}

func (p *Pool) classFor(size int) *sizeClass {
	for _, c := range p.classes {
		if c.unit >= size {
			return c
		}
	}
	return p.classes[len(p.classes)-1]
}

// allocSeriesNode pops a free node or grows a fresh segment. Never
// returns nil: segment growth is unbounded Go heap allocation, so the
// only failure mode (OutOfMemory, spec.md §6.5) is the Go runtime's own,
// which this layer does not attempt to intercept.
func (p *Pool) allocSeriesNode() *poolNode {
	c := p.classFor(1)
	if len(c.free) == 0 {
		p.growSegment(c)
	}
	n := c.free[len(c.free)-1]
	c.free = c.free[:len(c.free)-1]
	return n
}

func (p *Pool) growSegment(c *sizeClass) {
	seg := make([]*poolNode, p.cfg.PoolSegmentNodes)
	for i := range seg {
		seg[i] = &poolNode{}
		c.free = append(c.free, seg[i])
		p.nodes = append(p.nodes, seg[i])
	}
	c.segments = append(c.segments, seg)
}

// FreeNode pushes a node back onto its class's free list in O(1) and
// marks its series as freed (wide=0, spec.md §3.2 invariant (i)). Safe
// to call exactly once per node: a second call would double-push. The
// callers are the GC sweep, which walks p.nodes once per cycle and skips
// nodes whose series is already nil, and FreeValue (api.go), which frees
// a handle's node once.
func (p *Pool) FreeNode(n *poolNode) {
	if n.series != nil {
		n.series.wide = freedWide
		n.series.bytes = nil
		n.series.cells = nil
	}
	n.series = nil
	c := p.classFor(1)
	c.free = append(c.free, n)
	p.ballast += 64 // nominal per-node credit toward the ballast watermark
}

// ShouldCollect reports whether the accumulated ballast has crossed the
// configured threshold (spec.md §4.1).
func (p *Pool) ShouldCollect() bool { return p.ballast >= p.ballastLimit }

// ResetBallast is called by the GC at the end of a cycle (spec.md §4.3
// step 4).
func (p *Pool) ResetBallast() { p.ballast = 0 }

// Nodes enumerates every node ever handed out, live or free — the
// enumeration primitive spec.md §4.1 requires for GC sweep.
func (p *Pool) Nodes() []*poolNode { return p.nodes }

// LiveCount reports how many nodes currently hold a non-freed series;
// used by tests asserting sweep behavior (spec.md §8 scenario 5).
func (p *Pool) LiveCount() int {
	n := 0
	for _, node := range p.nodes {
		if node.series != nil {
			n++
		}
	}
	return n
}

package rebcore

import env "github.com/xyproto/env/v2"

// Config holds the tunables spec.md leaves as implementation constants
// (ballast threshold §4.1, scan nesting) but which are reasonable to
// make host-overridable. Values are read once, from the environment,
// when a new Interpreter is built (SPEC_FULL.md §2 "Configuration").
type Config struct {
	// GCBallastBytes is the freed-byte watermark that schedules a
	// collection (spec.md §4.1: "when it crosses ~3 MB the GC is
	// signaled").
	GCBallastBytes int

	// PoolSegmentNodes is how many nodes a size class grows by when its
	// free list is exhausted (spec.md §4.1 "allocates a new segment when
	// exhausted").
	PoolSegmentNodes int

	// ScanMaxDepth bounds recursive block/group/path nesting in the
	// scanner's assembler (spec.md §4.5), guarding the native Go call
	// stack the way the original's C call stack was implicitly bounded.
	ScanMaxDepth int
}

const (
	defaultGCBallastBytes   = 3 * 1024 * 1024
	defaultPoolSegmentNodes = 256
	defaultScanMaxDepth     = 1000
)

// DefaultConfig returns spec.md's compiled-in defaults.
func DefaultConfig() Config {
	return Config{
		GCBallastBytes:   defaultGCBallastBytes,
		PoolSegmentNodes: defaultPoolSegmentNodes,
		ScanMaxDepth:     defaultScanMaxDepth,
	}
}

// ConfigFromEnv overlays DefaultConfig with REBCORE_* environment
// variables, following the teacher's own (previously unused)
// github.com/xyproto/env/v2 dependency.
func ConfigFromEnv() Config {
	c := DefaultConfig()
	c.GCBallastBytes = env.Int("REBCORE_GC_BALLAST_BYTES", c.GCBallastBytes)
	c.PoolSegmentNodes = env.Int("REBCORE_POOL_SEGMENT_NODES", c.PoolSegmentNodes)
	c.ScanMaxDepth = env.Int("REBCORE_SCAN_MAX_DEPTH", c.ScanMaxDepth)
	return c
}

package rebcore

import (
	"os"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	if c.GCBallastBytes != defaultGCBallastBytes {
		t.Errorf("GCBallastBytes = %d, want %d", c.GCBallastBytes, defaultGCBallastBytes)
	}
	if c.PoolSegmentNodes != defaultPoolSegmentNodes {
		t.Errorf("PoolSegmentNodes = %d, want %d", c.PoolSegmentNodes, defaultPoolSegmentNodes)
	}
	if c.ScanMaxDepth != defaultScanMaxDepth {
		t.Errorf("ScanMaxDepth = %d, want %d", c.ScanMaxDepth, defaultScanMaxDepth)
	}
}

func TestConfigFromEnvOverlaysDefaults(t *testing.T) {
	os.Setenv("REBCORE_GC_BALLAST_BYTES", "1024")
	os.Setenv("REBCORE_POOL_SEGMENT_NODES", "16")
	defer os.Unsetenv("REBCORE_GC_BALLAST_BYTES")
	defer os.Unsetenv("REBCORE_POOL_SEGMENT_NODES")

	c := ConfigFromEnv()
	if c.GCBallastBytes != 1024 {
		t.Errorf("GCBallastBytes = %d, want 1024", c.GCBallastBytes)
	}
	if c.PoolSegmentNodes != 16 {
		t.Errorf("PoolSegmentNodes = %d, want 16", c.PoolSegmentNodes)
	}
	if c.ScanMaxDepth != defaultScanMaxDepth {
		t.Errorf("ScanMaxDepth = %d, want unchanged default %d", c.ScanMaxDepth, defaultScanMaxDepth)
	}
}

func TestConfigFromEnvFallsBackWhenUnset(t *testing.T) {
	os.Unsetenv("REBCORE_SCAN_MAX_DEPTH")
	c := ConfigFromEnv()
	if c.ScanMaxDepth != defaultScanMaxDepth {
		t.Errorf("ScanMaxDepth = %d, want default %d when unset", c.ScanMaxDepth, defaultScanMaxDepth)
	}
}

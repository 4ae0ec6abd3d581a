package rebcore

import "testing"

func TestPoolAllocFreeRoundTrip(t *testing.T) {
	pool := NewPool(DefaultConfig())
	before := pool.LiveCount()

	s := MakeSeries(pool, SeriesCells, 0, SeriesArray)
	if pool.LiveCount() != before+1 {
		t.Fatalf("LiveCount() after alloc = %d, want %d", pool.LiveCount(), before+1)
	}

	pool.FreeNode(s.node)
	if pool.LiveCount() != before {
		t.Fatalf("LiveCount() after free = %d, want %d", pool.LiveCount(), before)
	}
}

func TestPoolBallastSchedulesCollection(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GCBallastBytes = 128
	pool := NewPool(cfg)

	if pool.ShouldCollect() {
		t.Fatal("fresh pool should not request a collection")
	}

	for i := 0; i < 3; i++ {
		s := MakeSeries(pool, SeriesCells, 0, SeriesArray)
		pool.FreeNode(s.node)
	}
	if !pool.ShouldCollect() {
		t.Fatal("expected ShouldCollect() true once ballast crosses the threshold")
	}

	pool.ResetBallast()
	if pool.ShouldCollect() {
		t.Fatal("expected ShouldCollect() false immediately after ResetBallast")
	}
}

func TestPoolNodesEnumeratesEveryAllocation(t *testing.T) {
	pool := NewPool(DefaultConfig())
	var made []*Series
	for i := 0; i < 10; i++ {
		made = append(made, MakeSeries(pool, SeriesCells, 0, SeriesArray))
	}
	if len(pool.Nodes()) < len(made) {
		t.Fatalf("Nodes() returned %d entries, want at least %d", len(pool.Nodes()), len(made))
	}
}

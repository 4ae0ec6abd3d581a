package rebcore

import "testing"

func TestArrayAtInBounds(t *testing.T) {
	pool := NewPool(DefaultConfig())
	a := NewArray(pool, 0)
	if err := a.Append(NewInteger(1)); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := a.Append(NewInteger(2)); err != nil {
		t.Fatalf("Append: %v", err)
	}

	if got := a.At(0).Integer(); got != 1 {
		t.Fatalf("At(0) = %d, want 1", got)
	}
	if got := a.At(1).Integer(); got != 2 {
		t.Fatalf("At(1) = %d, want 2", got)
	}
}

func TestArrayAtOutOfRangeIsNil(t *testing.T) {
	pool := NewPool(DefaultConfig())
	a := NewArray(pool, 0)
	if a.At(0) != nil {
		t.Fatal("At(0) on an empty array should be nil")
	}
	_ = a.Append(NewInteger(1))
	if a.At(-1) != nil {
		t.Fatal("At(-1) should be nil")
	}
	if a.At(1) != nil {
		t.Fatal("At(len) should be nil")
	}
}

func TestArrayAtRespectsBiasAfterPopFront(t *testing.T) {
	pool := NewPool(DefaultConfig())
	a := NewArray(pool, 0)
	_ = a.Append(NewInteger(10))
	_ = a.Append(NewInteger(20))
	_ = a.Append(NewInteger(30))

	a.PopFront()
	if got := a.Len(); got != 2 {
		t.Fatalf("Len() after PopFront = %d, want 2", got)
	}
	if got := a.At(0).Integer(); got != 20 {
		t.Fatalf("At(0) after PopFront = %d, want 20", got)
	}
	if got := a.At(1).Integer(); got != 30 {
		t.Fatalf("At(1) after PopFront = %d, want 30", got)
	}
}

func TestWrapArrayOnByteSeriesPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("WrapArray on a byte-backed series should panic")
		}
	}()
	pool := NewPool(DefaultConfig())
	s := newByteSeries(pool, []byte("hi"))
	WrapArray(s)
}

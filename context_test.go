package rebcore

import "testing"

func TestContextAddSlotAndIndexOf(t *testing.T) {
	// spec.md §8 binding scenario: create context with key "x" at index 1.
	pool := NewPool(DefaultConfig())
	table := NewSymbolTable(pool)
	ctx := NewContext(pool, 4)

	x := table.Intern("x")
	idx, err := ctx.AddSlot(x, NewInteger(10))
	if err != nil {
		t.Fatalf("AddSlot: %v", err)
	}
	if idx != 1 {
		t.Fatalf("AddSlot index = %d, want 1", idx)
	}

	if got := ctx.IndexOf(x); got != 1 {
		t.Fatalf("IndexOf(x) = %d, want 1", got)
	}

	slot := ctx.Slot(1)
	if slot == nil || slot.Integer() != 10 {
		t.Fatalf("Slot(1) = %v, want integer 10", slot)
	}
}

func TestContextIndexOfUnknownSymbolIsZero(t *testing.T) {
	pool := NewPool(DefaultConfig())
	table := NewSymbolTable(pool)
	ctx := NewContext(pool, 1)

	unknown := table.Intern("unknown")
	if got := ctx.IndexOf(unknown); got != 0 {
		t.Fatalf("IndexOf on an unbound symbol = %d, want 0", got)
	}
}

func TestContextIndexOfMatchesThroughSynonyms(t *testing.T) {
	pool := NewPool(DefaultConfig())
	table := NewSymbolTable(pool)
	ctx := NewContext(pool, 1)

	canon := table.Intern("Color")
	if _, err := ctx.AddSlot(canon, NewInteger(1)); err != nil {
		t.Fatalf("AddSlot: %v", err)
	}

	synonym := table.Intern("COLOR")
	if got := ctx.IndexOf(synonym); got != 1 {
		t.Fatalf("IndexOf(synonym) = %d, want 1 (canon-insensitive lookup)", got)
	}
}

func TestContextSlotOutOfRangeIsNil(t *testing.T) {
	pool := NewPool(DefaultConfig())
	ctx := NewContext(pool, 1)
	if ctx.Slot(0) != nil {
		t.Fatal("Slot(0) should be nil (0 is not a valid 1-based slot index)")
	}
	if ctx.Slot(99) != nil {
		t.Fatal("Slot(99) should be nil when out of range")
	}
}

package rebcore

import "testing"

func TestCellEndIsDisjoint(t *testing.T) {
	e := NewEnd()
	if !e.IsEnd() {
		t.Fatal("NewEnd() should report IsEnd() true")
	}
	for _, c := range []Cell{NewInteger(0), NewVoid(), NewBlank(), NewLogic(true)} {
		if c.IsEnd() {
			t.Fatalf("kind %s should not be IsEnd()", c.Kind())
		}
	}
}

func TestCellScalarRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		c    Cell
		want any
	}{
		{"integer", NewInteger(-42), int64(-42)},
		{"decimal", NewDecimal(3.5), float64(3.5)},
		{"logic-true", NewLogic(true), true},
		{"logic-false", NewLogic(false), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			switch want := tt.want.(type) {
			case int64:
				if got := tt.c.Integer(); got != want {
					t.Errorf("Integer() = %d, want %d", got, want)
				}
			case float64:
				if got := tt.c.Decimal(); got != want {
					t.Errorf("Decimal() = %v, want %v", got, want)
				}
			case bool:
				if got := tt.c.Logic(); got != want {
					t.Errorf("Logic() = %v, want %v", got, want)
				}
			}
		})
	}
}

func TestNewCharRejectsHighCodepoint(t *testing.T) {
	if _, err := NewChar(0x10000); err == nil {
		t.Fatal("expected error for codepoint above U+FFFF")
	} else if kind := err.(*CoreError).Kind; kind != ErrCodepointTooHighKind {
		t.Fatalf("got error kind %s, want CodepointTooHigh", kind)
	}

	c, err := NewChar('A')
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Char() != 'A' {
		t.Fatalf("Char() = %q, want 'A'", c.Char())
	}
}

func TestPairRoundTrip(t *testing.T) {
	c := NewPair(100, 200)
	x, y := c.Pair()
	if x != 100 || y != 200 {
		t.Fatalf("Pair() = (%v, %v), want (100, 200)", x, y)
	}
}

func TestDateFlags(t *testing.T) {
	c := NewDate(2024, 1, 15, true, 3600_000_000_000, true, 4)
	y, m, d := c.DateParts()
	if y != 2024 || m != 1 || d != 15 {
		t.Fatalf("DateParts() = (%d,%d,%d), want (2024,1,15)", y, m, d)
	}
	if !c.HasFlag(FlagHasTime) || !c.HasFlag(FlagHasZone) {
		t.Fatal("expected HasTime and HasZone flags set")
	}
	if c.DateZoneQuarters() != 4 {
		t.Fatalf("DateZoneQuarters() = %d, want 4", c.DateZoneQuarters())
	}
}

func TestWordBinding(t *testing.T) {
	pool := NewPool(DefaultConfig())
	ctx := NewContext(pool, 2)
	sym := &Symbol{}

	w := NewWord(KindWord, sym)
	if w.IsBound() {
		t.Fatal("freshly constructed word should be unbound")
	}

	w.BindToContext(ctx, 1)
	if !w.IsBound() {
		t.Fatal("expected word to report bound after BindToContext")
	}
	if w.BoundContext() != ctx || w.BindIndex() != 1 {
		t.Fatal("BindToContext did not record context/index correctly")
	}
	if w.HasFlag(FlagRelativeBind) {
		t.Fatal("context binding must not set FlagRelativeBind")
	}

	fn := NewFunction(pool, nil, Cell{}, nil)
	w.BindRelative(fn, 3)
	if !w.HasFlag(FlagRelativeBind) {
		t.Fatal("expected FlagRelativeBind after BindRelative")
	}
	if w.BoundFrame() != fn || w.BindIndex() != 3 {
		t.Fatal("BindRelative did not record frame/index correctly")
	}
	if w.BoundContext() != nil {
		t.Fatal("BindRelative must clear the context binding arm")
	}
}

package rebcore

import "testing"

func TestFunctionParamIndex(t *testing.T) {
	pool := NewPool(DefaultConfig())
	table := NewSymbolTable(pool)
	a := table.Intern("a")
	b := table.Intern("b")

	fn := NewFunction(pool, []*Symbol{a, b}, NewBlock(nil), nil)
	if got := fn.ParamIndex(a); got != 1 {
		t.Fatalf("ParamIndex(a) = %d, want 1", got)
	}
	if got := fn.ParamIndex(b); got != 2 {
		t.Fatalf("ParamIndex(b) = %d, want 2", got)
	}
	unknown := table.Intern("c")
	if got := fn.ParamIndex(unknown); got != 0 {
		t.Fatalf("ParamIndex(c) = %d, want 0", got)
	}
}

func TestFunctionDispatch(t *testing.T) {
	pool := NewPool(DefaultConfig())
	table := NewSymbolTable(pool)
	x := table.Intern("x")

	fn := NewFunction(pool, []*Symbol{x}, Cell{}, func(args []Cell) (Cell, error) {
		return NewInteger(args[0].Integer() * 2), nil
	})

	result, err := fn.Dispatch([]Cell{NewInteger(21)})
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if result.Integer() != 42 {
		t.Fatalf("Dispatch result = %d, want 42", result.Integer())
	}
}

func TestFunctionDispatchWithoutDispatcherErrors(t *testing.T) {
	pool := NewPool(DefaultConfig())
	fn := NewFunction(pool, nil, Cell{}, nil)
	if _, err := fn.Dispatch(nil); err == nil {
		t.Fatal("expected an error dispatching a function with no native dispatcher")
	}
}

func TestFunctionMeta(t *testing.T) {
	pool := NewPool(DefaultConfig())
	fn := NewFunction(pool, nil, Cell{}, nil)
	if fn.Meta() != nil {
		t.Fatal("Meta() should be nil by default")
	}
	meta := NewContext(pool, 0)
	fn.SetMeta(meta)
	if fn.Meta() != meta {
		t.Fatal("SetMeta/Meta round trip failed")
	}
}

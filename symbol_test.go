package rebcore

import "testing"

func TestInternRoundTrip(t *testing.T) {
	pool := NewPool(DefaultConfig())
	table := NewSymbolTable(pool)

	sym := table.Intern("foo")
	if sym.String() != "foo" {
		t.Fatalf("Intern(\"foo\").String() = %q, want %q", sym.String(), "foo")
	}
	if again := table.Intern("foo"); again != sym {
		t.Fatal("interning the same spelling twice should return the identical Symbol")
	}
}

func TestInternCanonAndSynonyms(t *testing.T) {
	pool := NewPool(DefaultConfig())
	table := NewSymbolTable(pool)

	canon := table.Intern("Foo")
	if !canon.IsCanon() {
		t.Fatal("first spelling interned for a fold should become canon")
	}

	synonym := table.Intern("FOO")
	if synonym.IsCanon() {
		t.Fatal("a second differently-cased spelling should not become canon")
	}
	if synonym.Canon() != canon {
		t.Fatal("synonym.Canon() should point back to the first-interned spelling")
	}

	syns := canon.Synonyms()
	if len(syns) != 2 {
		t.Fatalf("Synonyms() returned %d entries, want 2", len(syns))
	}
}

func TestBuiltinIDsAreStable(t *testing.T) {
	pool := NewPool(DefaultConfig())
	table := NewSymbolTable(pool)

	if len(builtinSymbolNames) == 0 {
		t.Fatal("expected at least one built-in symbol name")
	}
	name := builtinSymbolNames[0]
	id := table.BuiltinID(name)
	if id == SymNone {
		t.Fatalf("BuiltinID(%q) = SymNone, want a non-zero id", name)
	}
	sym := table.Intern(name)
	if sym.ID() != id {
		t.Fatalf("Intern(%q).ID() = %d, want %d", name, sym.ID(), id)
	}

	if got := table.BuiltinID("not-a-builtin-name"); got != SymNone {
		t.Fatalf("BuiltinID on unknown name = %d, want SymNone", got)
	}
}

func TestBinderTryAddRejectsDoubleBind(t *testing.T) {
	pool := NewPool(DefaultConfig())
	table := NewSymbolTable(pool)
	sym := table.Intern("x")

	binder := NewBinder(table, true)
	if !binder.TryAdd(sym, 1) {
		t.Fatal("first TryAdd should succeed")
	}
	if binder.TryAdd(sym, 2) {
		t.Fatal("second TryAdd on the same pass/symbol should fail")
	}

	index, ok := binder.Index(sym)
	if !ok || index != 1 {
		t.Fatalf("Index() = (%d, %v), want (1, true)", index, ok)
	}
}

func TestBinderHighLowSidesDoNotCollide(t *testing.T) {
	pool := NewPool(DefaultConfig())
	table := NewSymbolTable(pool)
	sym := table.Intern("y")

	high := NewBinder(table, true)
	low := NewBinder(table, false)

	if !high.TryAdd(sym, 10) {
		t.Fatal("high.TryAdd should succeed")
	}
	if !low.TryAdd(sym, 20) {
		t.Fatal("low.TryAdd should succeed on the same symbol via the opposite side")
	}

	if idx, _ := high.Index(sym); idx != 10 {
		t.Fatalf("high.Index() = %d, want 10", idx)
	}
	if idx, _ := low.Index(sym); idx != 20 {
		t.Fatalf("low.Index() = %d, want 20", idx)
	}
}

func TestBinderBalancedTracksAddsAndRemoves(t *testing.T) {
	pool := NewPool(DefaultConfig())
	table := NewSymbolTable(pool)
	a := table.Intern("a")
	b := table.Intern("b")

	binder := NewBinder(table, true)
	binder.TryAdd(a, 1)
	binder.TryAdd(b, 2)
	if binder.Balanced() {
		t.Fatal("Balanced() should be false with pending adds")
	}

	binder.TryRemove(a)
	binder.TryRemove(b)
	if !binder.Balanced() {
		t.Fatal("Balanced() should be true once every add has a matching remove")
	}
}

package rebcore

// builtinSymbolNames is the fixed list of well-known names interned at
// startup so the most frequently tested canon symbols get a SymID
// instead of falling back to pointer comparison (spec.md §4.4
// "Built-ins"). The list is illustrative, not exhaustive — real
// datatype/action names a host adds on top of this core intern the
// ordinary way and simply get SymNone.
var builtinSymbolNames = []string{
	"true", "false", "none", "self", "none!",
	"logic!", "integer!", "decimal!", "char!", "pair!",
	"time!", "date!", "word!", "set-word!", "get-word!",
	"lit-word!", "refinement!", "issue!", "block!", "group!",
	"path!", "string!", "binary!", "file!", "url!",
	"email!", "tag!", "map!", "bitset!", "object!",
	"function!", "handle!", "event!", "error!",
}

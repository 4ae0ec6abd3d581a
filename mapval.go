package rebcore

// Map is a newtype wrapper over an interleaved key/value cell array with
// an auxiliary hash table in link.hashlist (spec.md §3.3 "Map"). Put
// appends to the hash table, but Put and Get find keys by a linear scan
// of the key cells; the hash table is not consulted.
type Map struct {
	*Series
}

// NewMap allocates an empty map.
func NewMap(p *Pool) *Map {
	return &Map{Series: MakeSeries(p, SeriesCells, 0, SeriesArray)}
}

func (m *Map) hashOf(key Cell) int32 {
	switch key.Kind() {
	case KindInteger:
		return int32(key.Integer())
	case KindWord, KindSetWord, KindGetWord, KindLitWord:
		if key.WordSymbol() != nil {
			return int32(hashFNV([]byte(key.WordSymbol().String())))
		}
	case KindString:
		return int32(hashFNV(key.Series().Bytes()))
	}
	return 0
}

// Put inserts or overwrites the value for key, maintaining
// link.hashlist (spec.md §3.3 "Map").
func (m *Map) Put(key, value Cell) error {
	cells := m.Series.Cells()
	for i := 0; i+1 < len(cells); i += 2 {
		if mapKeyEqual(cells[i], key) {
			cells[i+1] = value
			return nil
		}
	}
	if err := m.Series.Append(key); err != nil {
		return err
	}
	if err := m.Series.Append(value); err != nil {
		return err
	}
	idx := int32(len(m.Series.cells))
	m.link.hashlist = append(m.link.hashlist, m.hashOf(key), idx)
	return nil
}

// Get looks up a key's value.
func (m *Map) Get(key Cell) (Cell, bool) {
	cells := m.Series.Cells()
	for i := 0; i+1 < len(cells); i += 2 {
		if mapKeyEqual(cells[i], key) {
			return cells[i+1], true
		}
	}
	return Cell{}, false
}

func mapKeyEqual(a, b Cell) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch a.Kind() {
	case KindInteger:
		return a.Integer() == b.Integer()
	case KindWord, KindSetWord, KindGetWord, KindLitWord:
		return a.WordSymbol() != nil && b.WordSymbol() != nil && a.WordSymbol().Canon() == b.WordSymbol().Canon()
	case KindString:
		return string(a.Series().Bytes()) == string(b.Series().Bytes())
	}
	return false
}

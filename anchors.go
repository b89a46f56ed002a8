package motif

// AnchorTable maps anchor names to the cursor offsets recorded under them, in
// the order they were recorded. Anchors exist only while building; they are
// not part of a Sequence.
type AnchorTable struct {
	offsets map[string][]Ticks
}

// Add records offset under name.
func (t *AnchorTable) Add(name string, offset Ticks) {
	if t.offsets == nil {
		t.offsets = make(map[string][]Ticks)
	}
	t.offsets[name] = append(t.offsets[name], offset)
}

// First returns the earliest offset recorded under name.
func (t AnchorTable) First(name string) (Ticks, bool) {
	return t.Nth(name, 0)
}

// Last returns the latest offset recorded under name.
func (t AnchorTable) Last(name string) (Ticks, bool) {
	return t.Nth(name, t.Count(name)-1)
}

// Nth returns the index'th offset recorded under name.
func (t AnchorTable) Nth(name string, index int) (Ticks, bool) {
	o := t.offsets[name]
	if index < 0 || index >= len(o) {
		return 0, false
	}
	return o[index], true
}

// Count returns how many times name has been recorded.
func (t AnchorTable) Count(name string) int {
	return len(t.offsets[name])
}

// Copy makes a deep copy of the table.
func (t AnchorTable) Copy() AnchorTable {
	if t.offsets == nil {
		return AnchorTable{}
	}
	offsets := make(map[string][]Ticks, len(t.offsets))
	for k, v := range t.offsets {
		o := make([]Ticks, len(v))
		copy(o, v)
		offsets[k] = o
	}
	return AnchorTable{offsets: offsets}
}

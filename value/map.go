package value

// Entry is one key-value pair of a Map.
type Entry struct {
	Key   Value
	Value Value
}

// Map is a Value-to-Value mapping with insertion order preserved. Any
// Value is legal as a key, including structs and nested maps, relying on
// the package's Equal and Hash contracts. Identity is sequence-based:
// re-ordering entries changes equality and ordering. This keeps
// re-serialization deterministic at the cost of "same content" not
// implying equality under permutation.
type Map struct {
	entries []Entry
	index   map[uint64][]int // Hash(key) -> candidate entry positions
}

func (*Map) Kind() Kind { return KindMap }

// NewMap creates an empty map.
func NewMap() *Map {
	return &Map{}
}

// Len returns the number of entries.
func (m *Map) Len() int {
	return len(m.entries)
}

// Insert adds an entry, returning the previous value if an equal key was
// already present. A replaced entry keeps its original position.
func (m *Map) Insert(key, val Value) (prev Value, replaced bool) {
	h := Hash(key)
	for _, i := range m.index[h] {
		if Equal(m.entries[i].Key, key) {
			prev = m.entries[i].Value
			m.entries[i].Value = val
			return prev, true
		}
	}
	if m.index == nil {
		m.index = make(map[uint64][]int)
	}
	m.index[h] = append(m.index[h], len(m.entries))
	m.entries = append(m.entries, Entry{Key: key, Value: val})
	return nil, false
}

// Get returns the value stored under an equal key.
func (m *Map) Get(key Value) (Value, bool) {
	h := Hash(key)
	for _, i := range m.index[h] {
		if Equal(m.entries[i].Key, key) {
			return m.entries[i].Value, true
		}
	}
	return nil, false
}

// Entries returns the entries in insertion order.
// Do not modify the returned slice; it aliases Map internals.
func (m *Map) Entries() []Entry {
	return m.entries
}

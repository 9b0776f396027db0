package value

// Field is one named struct field.
type Field struct {
	Name  string
	Value Value
}

// Struct is a named collection of fields with insertion order preserved.
// Identity is sequence-based: two structs holding the same fields inserted
// in different orders are not equal.
//
// Prototype is the file path of a #prototype directive. It is populated
// only by the parser; the loader clears it while merging, so a tree
// returned from a load always has it empty.
type Struct struct {
	Name      string
	Prototype string
	fields    []Field
	index     map[string]int
}

func (*Struct) Kind() Kind { return KindStruct }

// NewStruct creates an empty struct with the given (possibly empty) name.
func NewStruct(name string) *Struct {
	return &Struct{Name: name}
}

// Len returns the number of fields.
func (s *Struct) Len() int {
	return len(s.fields)
}

// Insert adds a field, returning the previous value if the name was
// already present. A replaced field keeps its original position.
func (s *Struct) Insert(name string, v Value) (prev Value, replaced bool) {
	if i, ok := s.index[name]; ok {
		prev = s.fields[i].Value
		s.fields[i].Value = v
		return prev, true
	}
	if s.index == nil {
		s.index = make(map[string]int)
	}
	s.index[name] = len(s.fields)
	s.fields = append(s.fields, Field{Name: name, Value: v})
	return nil, false
}

// Get returns the value of the named field.
func (s *Struct) Get(name string) (Value, bool) {
	if i, ok := s.index[name]; ok {
		return s.fields[i].Value, true
	}
	return nil, false
}

// Has reports whether the named field is present.
func (s *Struct) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Fields returns the fields in insertion order.
// Do not modify the returned slice; it aliases Struct internals.
func (s *Struct) Fields() []Field {
	return s.fields
}

// At returns the field at position i.
func (s *Struct) At(i int) Field {
	return s.fields[i]
}

// SetValueAt replaces the value of the field at position i.
func (s *Struct) SetValueAt(i int, v Value) {
	s.fields[i].Value = v
}

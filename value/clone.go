package value

import "fmt"

// Clone deep-copies a value tree. The loader clones cached subtrees before
// splicing them into a requesting tree, so resolved results never alias
// each other.
func Clone(v Value) Value {
	switch av := v.(type) {
	case Bool, Char, Number, String, Include, Unit:
		return av
	case Option:
		if av.IsNone() {
			return av
		}
		return Option{Value: Clone(av.Value)}
	case Seq:
		out := make(Seq, len(av))
		for i := range av {
			out[i] = Clone(av[i])
		}
		return out
	case Tuple:
		out := Tuple{Name: av.Name, Elems: make([]Value, len(av.Elems))}
		for i := range av.Elems {
			out.Elems[i] = Clone(av.Elems[i])
		}
		return out
	case *Struct:
		out := NewStruct(av.Name)
		out.Prototype = av.Prototype
		for _, f := range av.fields {
			out.Insert(f.Name, Clone(f.Value))
		}
		return out
	case *Map:
		out := NewMap()
		for _, e := range av.entries {
			out.Insert(Clone(e.Key), Clone(e.Value))
		}
		return out
	}
	panic(fmt.Sprintf("value: unhandled kind %v", v.Kind()))
}

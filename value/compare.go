package value

import (
	"fmt"
	"strings"
)

// Equal reports whether two values are identical under the format's
// equality contract: sequence-based for structs and maps, NaN-reflexive
// for floats. Equal(a, b) holds exactly when Compare(a, b) == 0.
func Equal(a, b Value) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case Bool:
		return av == b.(Bool)
	case Char:
		return av == b.(Char)
	case *Map:
		bv := b.(*Map)
		if len(av.entries) != len(bv.entries) {
			return false
		}
		for i := range av.entries {
			if !Equal(av.entries[i].Key, bv.entries[i].Key) ||
				!Equal(av.entries[i].Value, bv.entries[i].Value) {
				return false
			}
		}
		return true
	case *Struct:
		bv := b.(*Struct)
		if av.Name != bv.Name || av.Prototype != bv.Prototype || len(av.fields) != len(bv.fields) {
			return false
		}
		for i := range av.fields {
			if av.fields[i].Name != bv.fields[i].Name ||
				!Equal(av.fields[i].Value, bv.fields[i].Value) {
				return false
			}
		}
		return true
	case Number:
		return av.equal(b.(Number))
	case Option:
		bv := b.(Option)
		if av.IsNone() || bv.IsNone() {
			return av.IsNone() == bv.IsNone()
		}
		return Equal(av.Value, bv.Value)
	case String:
		return av == b.(String)
	case Seq:
		bv := b.(Seq)
		if len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	case Tuple:
		bv := b.(Tuple)
		if av.Name != bv.Name || len(av.Elems) != len(bv.Elems) {
			return false
		}
		for i := range av.Elems {
			if !Equal(av.Elems[i], bv.Elems[i]) {
				return false
			}
		}
		return true
	case Include:
		return av == b.(Include)
	case Unit:
		return true
	}
	panic(fmt.Sprintf("value: unhandled kind %v", a.Kind()))
}

// Compare totally orders values. Different kinds order by Kind declaration
// order; within a kind the ordering is lexicographic over the variant's
// contents, with the NaN rules of Number applied to floats.
func Compare(a, b Value) int {
	if ka, kb := a.Kind(), b.Kind(); ka != kb {
		if ka < kb {
			return -1
		}
		return 1
	}
	switch av := a.(type) {
	case Bool:
		bv := b.(Bool)
		switch {
		case av == bv:
			return 0
		case !bool(av):
			return -1
		}
		return 1
	case Char:
		return cmpOrdered(av, b.(Char))
	case *Map:
		bv := b.(*Map)
		for i := 0; i < len(av.entries) && i < len(bv.entries); i++ {
			if c := Compare(av.entries[i].Key, bv.entries[i].Key); c != 0 {
				return c
			}
			if c := Compare(av.entries[i].Value, bv.entries[i].Value); c != 0 {
				return c
			}
		}
		return cmpOrdered(len(av.entries), len(bv.entries))
	case *Struct:
		bv := b.(*Struct)
		if c := strings.Compare(av.Name, bv.Name); c != 0 {
			return c
		}
		if c := strings.Compare(av.Prototype, bv.Prototype); c != 0 {
			return c
		}
		for i := 0; i < len(av.fields) && i < len(bv.fields); i++ {
			if c := strings.Compare(av.fields[i].Name, bv.fields[i].Name); c != 0 {
				return c
			}
			if c := Compare(av.fields[i].Value, bv.fields[i].Value); c != 0 {
				return c
			}
		}
		return cmpOrdered(len(av.fields), len(bv.fields))
	case Number:
		return av.compare(b.(Number))
	case Option:
		bv := b.(Option)
		switch {
		case av.IsNone() && bv.IsNone():
			return 0
		case av.IsNone():
			return -1
		case bv.IsNone():
			return 1
		}
		return Compare(av.Value, bv.Value)
	case String:
		return strings.Compare(string(av), string(b.(String)))
	case Seq:
		bv := b.(Seq)
		for i := 0; i < len(av) && i < len(bv); i++ {
			if c := Compare(av[i], bv[i]); c != 0 {
				return c
			}
		}
		return cmpOrdered(len(av), len(bv))
	case Tuple:
		bv := b.(Tuple)
		if c := strings.Compare(av.Name, bv.Name); c != 0 {
			return c
		}
		for i := 0; i < len(av.Elems) && i < len(bv.Elems); i++ {
			if c := Compare(av.Elems[i], bv.Elems[i]); c != 0 {
				return c
			}
		}
		return cmpOrdered(len(av.Elems), len(bv.Elems))
	case Include:
		return strings.Compare(string(av), string(b.(Include)))
	case Unit:
		return 0
	}
	panic(fmt.Sprintf("value: unhandled kind %v", a.Kind()))
}

func cmpOrdered[T ~int | ~int32](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

package value

import (
	"encoding/binary"
	"fmt"
	"hash"
	"hash/fnv"
	"math"
)

// Hash returns a 64-bit hash consistent with Equal: equal values hash
// identically, including the NaN and ±0 float cases and the
// sequence-based struct and map identities.
func Hash(v Value) uint64 {
	h := fnv.New64a()
	hashValue(h, v)
	return h.Sum64()
}

func hashValue(h hash.Hash64, v Value) {
	hashUint64(h, uint64(v.Kind()))
	switch av := v.(type) {
	case Bool:
		if av {
			hashUint64(h, 1)
		} else {
			hashUint64(h, 0)
		}
	case Char:
		hashUint64(h, uint64(av))
	case *Map:
		for i := range av.entries {
			hashValue(h, av.entries[i].Key)
			hashValue(h, av.entries[i].Value)
		}
		hashUint64(h, uint64(len(av.entries)))
	case *Struct:
		hashString(h, av.Name)
		hashString(h, av.Prototype)
		for i := range av.fields {
			hashString(h, av.fields[i].Name)
			hashValue(h, av.fields[i].Value)
		}
		hashUint64(h, uint64(len(av.fields)))
	case Number:
		if f, ok := av.AsFloat(); ok {
			hashUint64(h, 1)
			hashUint64(h, floatHashBits(f))
		} else {
			i, _ := av.AsInt()
			hashUint64(h, 0)
			hashUint64(h, uint64(i))
		}
	case Option:
		if av.IsNone() {
			hashUint64(h, 0)
		} else {
			hashUint64(h, 1)
			hashValue(h, av.Value)
		}
	case String:
		hashString(h, string(av))
	case Seq:
		for i := range av {
			hashValue(h, av[i])
		}
		hashUint64(h, uint64(len(av)))
	case Tuple:
		hashString(h, av.Name)
		for i := range av.Elems {
			hashValue(h, av.Elems[i])
		}
		hashUint64(h, uint64(len(av.Elems)))
	case Include:
		hashString(h, string(av))
	case Unit:
	default:
		panic(fmt.Sprintf("value: unhandled kind %v", v.Kind()))
	}
}

// floatHashBits canonicalizes the cases where distinct bit patterns are
// equal floats: every NaN maps to one pattern, and -0.0 maps to +0.0.
func floatHashBits(f float64) uint64 {
	if math.IsNaN(f) {
		return 0x7ff8000000000000
	}
	if f == 0 {
		return 0
	}
	return math.Float64bits(f)
}

func hashUint64(h hash.Hash64, v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	h.Write(buf[:])
}

func hashString(h hash.Hash64, s string) {
	hashUint64(h, uint64(len(s)))
	h.Write([]byte(s))
}

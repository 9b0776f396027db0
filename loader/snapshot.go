package loader

import (
	"fmt"

	"github.com/cswinter/ron-parser/value"
)

// valueSnapshot is the msgpack-friendly flattening of a resolved value
// tree. Resolved trees contain no Include markers and no prototype
// references, so neither is representable here.
type valueSnapshot struct {
	Kind  uint8
	Flag  bool   // Bool value, Number float tag, Option Some tag
	Int   int64  // Number integer payload, Char code point
	Float float64
	Str   string // String payload, Struct/Tuple name
	Names []string
	Elems []valueSnapshot
}

func snapshotValue(v value.Value) (valueSnapshot, error) {
	switch v := v.(type) {
	case value.Bool:
		return valueSnapshot{Kind: uint8(value.KindBool), Flag: bool(v)}, nil
	case value.Char:
		return valueSnapshot{Kind: uint8(value.KindChar), Int: int64(v)}, nil
	case value.Number:
		if f, ok := v.AsFloat(); ok {
			return valueSnapshot{Kind: uint8(value.KindNumber), Flag: true, Float: f}, nil
		}
		i, _ := v.AsInt()
		return valueSnapshot{Kind: uint8(value.KindNumber), Int: i}, nil
	case value.String:
		return valueSnapshot{Kind: uint8(value.KindString), Str: string(v)}, nil
	case value.Unit:
		return valueSnapshot{Kind: uint8(value.KindUnit)}, nil
	case value.Option:
		snap := valueSnapshot{Kind: uint8(value.KindOption)}
		if !v.IsNone() {
			inner, err := snapshotValue(v.Value)
			if err != nil {
				return valueSnapshot{}, err
			}
			snap.Flag = true
			snap.Elems = []valueSnapshot{inner}
		}
		return snap, nil
	case value.Seq:
		snap := valueSnapshot{Kind: uint8(value.KindSeq)}
		for _, e := range v {
			es, err := snapshotValue(e)
			if err != nil {
				return valueSnapshot{}, err
			}
			snap.Elems = append(snap.Elems, es)
		}
		return snap, nil
	case value.Tuple:
		snap := valueSnapshot{Kind: uint8(value.KindTuple), Str: v.Name}
		for _, e := range v.Elems {
			es, err := snapshotValue(e)
			if err != nil {
				return valueSnapshot{}, err
			}
			snap.Elems = append(snap.Elems, es)
		}
		return snap, nil
	case *value.Map:
		snap := valueSnapshot{Kind: uint8(value.KindMap)}
		for _, e := range v.Entries() {
			ks, err := snapshotValue(e.Key)
			if err != nil {
				return valueSnapshot{}, err
			}
			vs, err := snapshotValue(e.Value)
			if err != nil {
				return valueSnapshot{}, err
			}
			snap.Elems = append(snap.Elems, ks, vs)
		}
		return snap, nil
	case *value.Struct:
		snap := valueSnapshot{Kind: uint8(value.KindStruct), Str: v.Name}
		for _, f := range v.Fields() {
			fs, err := snapshotValue(f.Value)
			if err != nil {
				return valueSnapshot{}, err
			}
			snap.Names = append(snap.Names, f.Name)
			snap.Elems = append(snap.Elems, fs)
		}
		return snap, nil
	default:
		return valueSnapshot{}, fmt.Errorf("value kind %s cannot be cached", v.Kind())
	}
}

func restoreValue(s valueSnapshot) (value.Value, error) {
	switch value.Kind(s.Kind) {
	case value.KindBool:
		return value.Bool(s.Flag), nil
	case value.KindChar:
		return value.Char(s.Int), nil
	case value.KindNumber:
		if s.Flag {
			return value.NewFloat(s.Float), nil
		}
		return value.NewInt(s.Int), nil
	case value.KindString:
		return value.String(s.Str), nil
	case value.KindUnit:
		return value.Unit{}, nil
	case value.KindOption:
		if !s.Flag {
			return value.Option{}, nil
		}
		if len(s.Elems) != 1 {
			return nil, fmt.Errorf("option snapshot has %d elements", len(s.Elems))
		}
		inner, err := restoreValue(s.Elems[0])
		if err != nil {
			return nil, err
		}
		return value.Option{Value: inner}, nil
	case value.KindSeq:
		seq := make(value.Seq, 0, len(s.Elems))
		for _, e := range s.Elems {
			v, err := restoreValue(e)
			if err != nil {
				return nil, err
			}
			seq = append(seq, v)
		}
		return seq, nil
	case value.KindTuple:
		t := value.Tuple{Name: s.Str}
		for _, e := range s.Elems {
			v, err := restoreValue(e)
			if err != nil {
				return nil, err
			}
			t.Elems = append(t.Elems, v)
		}
		return t, nil
	case value.KindMap:
		if len(s.Elems)%2 != 0 {
			return nil, fmt.Errorf("map snapshot has %d elements", len(s.Elems))
		}
		m := value.NewMap()
		for i := 0; i < len(s.Elems); i += 2 {
			k, err := restoreValue(s.Elems[i])
			if err != nil {
				return nil, err
			}
			v, err := restoreValue(s.Elems[i+1])
			if err != nil {
				return nil, err
			}
			m.Insert(k, v)
		}
		return m, nil
	case value.KindStruct:
		if len(s.Names) != len(s.Elems) {
			return nil, fmt.Errorf("struct snapshot has %d names for %d values", len(s.Names), len(s.Elems))
		}
		st := value.NewStruct(s.Str)
		for i, name := range s.Names {
			v, err := restoreValue(s.Elems[i])
			if err != nil {
				return nil, err
			}
			st.Insert(name, v)
		}
		return st, nil
	default:
		return nil, fmt.Errorf("unknown snapshot kind %d", s.Kind)
	}
}

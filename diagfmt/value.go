package diagfmt

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/cswinter/ron-parser/value"
)

const valueIndent = "    "

// FormatValue renders a value tree back to source syntax and returns it
// as a string. Non-empty structs, maps, and sequences are laid out one
// entry per line; everything else stays on one line. The output parses
// back to an equal tree, except for NaN and infinity which have no
// literal syntax.
func FormatValue(v value.Value) string {
	var sb strings.Builder
	writeValue(&sb, v, 0)
	return sb.String()
}

// WriteValue renders a value tree to w with a trailing newline.
func WriteValue(w io.Writer, v value.Value) error {
	_, err := io.WriteString(w, FormatValue(v)+"\n")
	return err
}

func writeValue(sb *strings.Builder, v value.Value, depth int) {
	switch v := v.(type) {
	case value.Bool:
		if v {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	case value.Char:
		sb.WriteString("'" + string(rune(v)) + "'")
	case value.Number:
		sb.WriteString(formatNumber(v))
	case value.String:
		sb.WriteString(quoteString(string(v)))
	case value.Option:
		if v.IsNone() {
			sb.WriteString("None")
		} else {
			writeValue(sb, v.Value, depth)
		}
	case value.Include:
		fmt.Fprintf(sb, "#include(%s)", quoteString(string(v)))
	case value.Unit:
		sb.WriteString("()")
	case value.Tuple:
		sb.WriteString(v.Name)
		sb.WriteByte('(')
		for i, e := range v.Elems {
			if i > 0 {
				sb.WriteString(", ")
			}
			writeValue(sb, e, depth)
		}
		sb.WriteByte(')')
	case value.Seq:
		if len(v) == 0 {
			sb.WriteString("[]")
			return
		}
		sb.WriteString("[\n")
		for _, e := range v {
			indent(sb, depth+1)
			writeValue(sb, e, depth+1)
			sb.WriteString(",\n")
		}
		indent(sb, depth)
		sb.WriteByte(']')
	case *value.Map:
		if v.Len() == 0 {
			sb.WriteString("{}")
			return
		}
		sb.WriteString("{\n")
		for _, e := range v.Entries() {
			indent(sb, depth+1)
			writeValue(sb, e.Key, depth+1)
			sb.WriteString(": ")
			writeValue(sb, e.Value, depth+1)
			sb.WriteString(",\n")
		}
		indent(sb, depth)
		sb.WriteByte('}')
	case *value.Struct:
		sb.WriteString(v.Name)
		if v.Len() == 0 && v.Prototype == "" {
			sb.WriteString("()")
			return
		}
		sb.WriteString("(\n")
		if v.Prototype != "" {
			indent(sb, depth+1)
			fmt.Fprintf(sb, "#prototype(%s),\n", quoteString(v.Prototype))
		}
		for _, f := range v.Fields() {
			indent(sb, depth+1)
			sb.WriteString(f.Name)
			sb.WriteString(": ")
			writeValue(sb, f.Value, depth+1)
			sb.WriteString(",\n")
		}
		indent(sb, depth)
		sb.WriteByte(')')
	default:
		fmt.Fprintf(sb, "<%T>", v)
	}
}

func indent(sb *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		sb.WriteString(valueIndent)
	}
}

// formatNumber keeps the integer/float distinction visible: a float that
// would print like an integer gets a trailing ".0".
func formatNumber(n value.Number) string {
	if i, ok := n.AsInt(); ok {
		return strconv.FormatInt(i, 10)
	}
	f := n.Float64()
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") && !math.IsInf(f, 0) && !math.IsNaN(f) {
		s += ".0"
	}
	return s
}

func quoteString(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch b := s[i]; b {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		case 0:
			sb.WriteString(`\0`)
		default:
			sb.WriteByte(b)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

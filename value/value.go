package value

// Kind discriminates the closed set of Value variants. The declaration
// order is the cross-kind ordering used by Compare.
type Kind uint8

const (
	KindBool Kind = iota
	KindChar
	KindMap
	KindStruct
	KindNumber
	KindOption
	KindString
	KindSeq
	KindTuple
	KindInclude
	KindUnit
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindChar:
		return "char"
	case KindMap:
		return "map"
	case KindStruct:
		return "struct"
	case KindNumber:
		return "number"
	case KindOption:
		return "option"
	case KindString:
		return "string"
	case KindSeq:
		return "seq"
	case KindTuple:
		return "tuple"
	case KindInclude:
		return "include"
	case KindUnit:
		return "unit"
	}
	return "unknown"
}

// Value is the self-describing result type produced by the parser. The
// variant set is closed: Bool, Char, Number, String, Unit, Option, Seq,
// Tuple, *Struct, *Map, and Include. Consumers dispatch with exhaustive
// type switches.
//
// Include is a transient marker: it appears only in parser output and is
// rewritten by the loader; a tree returned from a load never contains one.
type Value interface {
	Kind() Kind
}

type (
	// Bool is a boolean literal.
	Bool bool
	// Char is a single character. No literal form produces it today; it
	// exists so trees built programmatically can round-trip through the
	// equality and ordering contracts.
	Char rune
	// String is a decoded string literal.
	String string
	// Include is the path argument of an #include directive.
	Include string
	// Unit is the empty value, written ().
	Unit struct{}
)

func (Bool) Kind() Kind    { return KindBool }
func (Char) Kind() Kind    { return KindChar }
func (String) Kind() Kind  { return KindString }
func (Include) Kind() Kind { return KindInclude }
func (Unit) Kind() Kind    { return KindUnit }

// Option is an optional value; a nil Value means None.
type Option struct {
	Value Value
}

func (Option) Kind() Kind { return KindOption }

// IsNone reports whether the option holds no value.
func (o Option) IsNone() bool { return o.Value == nil }

// Seq is an ordered list of values.
type Seq []Value

func (Seq) Kind() Kind { return KindSeq }

// Tuple is an ordered group of values with an optional name. An empty Name
// means the tuple is anonymous; the fully anonymous empty tuple () is
// represented as Unit instead, but a named empty tuple like Foo() stays a
// Tuple.
type Tuple struct {
	Name  string
	Elems []Value
}

func (Tuple) Kind() Kind { return KindTuple }

package diag

import (
	"fmt"
)

type Code uint16

const (
	// UnknownCode is the zero value, used when no specific code applies.
	UnknownCode Code = 0

	// Lexical
	LexUnknownChar Code = 1001

	// Syntax
	SynUnexpectedToken  Code = 2001
	SynExpectedValue    Code = 2002
	SynUnclosedStruct   Code = 2003
	SynUnclosedTuple    Code = 2004
	SynUnclosedMap      Code = 2005
	SynUnclosedSeq      Code = 2006
	SynBadNumber        Code = 2007
	SynBadEscape        Code = 2008
	SynUnknownDirective Code = 2009
	SynStrayPrototype   Code = 2010
	SynExpectedEOF      Code = 2011

	// Load / resolution
	LoadPrototypeNotStruct Code = 3001
)

var codeDescription = map[Code]string{
	UnknownCode:            "unknown error",
	LexUnknownChar:         "unexpected character",
	SynUnexpectedToken:     "unexpected token",
	SynExpectedValue:       "expected a value",
	SynUnclosedStruct:      "unclosed struct",
	SynUnclosedTuple:       "unclosed tuple",
	SynUnclosedMap:         "unclosed map",
	SynUnclosedSeq:         "unclosed list",
	SynBadNumber:           "malformed number",
	SynBadEscape:           "unknown escape sequence",
	SynUnknownDirective:    "unknown directive",
	SynStrayPrototype:      "prototype outside struct",
	SynExpectedEOF:         "expected end of input",
	LoadPrototypeNotStruct: "prototype did not resolve to a struct",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("LOAD%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}

package klex

import (
	"strconv"

	"github.com/alecthomas/participle/v2/lexer"
)

// Kind classifies a Token.
type Kind int

const (
	EOF Kind = iota
	Def
	Extern
	Identifier
	Number
	Symbol
)

var kindNames = [...]string{
	EOF:        "EOF",
	Def:        "Def",
	Extern:     "Extern",
	Identifier: "Ident",
	Number:     "Number",
	Symbol:     "Symbol",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// keywords maps reserved identifier spellings to their token kind.
var keywords = map[string]Kind{
	"def":    Def,
	"extern": Extern,
}

// Token is a single lexical unit. Which payload field is meaningful
// depends on Kind: Text for Identifier and Number, Value for Number,
// Char for Symbol.
type Token struct {
	Kind  Kind
	Text  string
	Value float64
	Char  byte
	Pos   lexer.Position

	// Err is set on Number tokens whose text is not a valid float.
	Err error
}

// Is reports whether t is the symbol c.
func (t Token) Is(c byte) bool {
	return t.Kind == Symbol && t.Char == c
}

// Spelling returns the source text of the token.
func (t Token) Spelling() string {
	switch t.Kind {
	case EOF:
		return ""
	case Def:
		return "def"
	case Extern:
		return "extern"
	case Symbol:
		return string(t.Char)
	default:
		return t.Text
	}
}

func (t Token) String() string {
	switch t.Kind {
	case EOF:
		return "EOF"
	case Def, Extern:
		return "keyword " + strconv.Quote(t.Spelling())
	case Identifier:
		return "identifier " + strconv.Quote(t.Text)
	case Number:
		return "number " + t.Text
	case Symbol:
		return "symbol " + strconv.QuoteRune(rune(t.Char))
	}
	return t.Kind.String()
}

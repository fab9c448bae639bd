package klex

import (
	"bytes"
	"io"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Token types reported to participle. EOF uses participle's own value.
const (
	DefType lexer.TokenType = -(iota + 2)
	ExternType
	IdentType
	NumberType
	SymbolType
)

// KaleidoscopeLexer exposes the Tokenizer as a participle lexer, so
// participle grammars can be written on top of the same token stream.
var (
	KaleidoscopeLexer lexer.Definition = &definition{}

	// DefaultDefinition defines properties for the default lexer.
	DefaultDefinition = KaleidoscopeLexer
)

type definition struct{}

func (d *definition) Lex(filename string, r io.Reader) (lexer.Lexer, error) {
	return Lex(filename, r), nil
}

func (d *definition) Symbols() map[string]lexer.TokenType {
	return map[string]lexer.TokenType{
		"EOF":    lexer.EOF,
		"Def":    DefType,
		"Extern": ExternType,
		"Ident":  IdentType,
		"Number": NumberType,
		"Symbol": SymbolType,
	}
}

// participleLexer adapts a Tokenizer to lexer.Lexer.
type participleLexer struct {
	tz *Tokenizer
}

// Lex an io.Reader with a Tokenizer.
//
// Malformed number literals are reported as errors rather than tokens.
func Lex(filename string, r io.Reader) lexer.Lexer {
	return &participleLexer{tz: New(filename, r)}
}

// LexBytes returns a new default lexer over bytes.
func LexBytes(filename string, b []byte) lexer.Lexer {
	return Lex(filename, bytes.NewReader(b))
}

// LexString returns a new default lexer over a string.
func LexString(filename, s string) lexer.Lexer {
	return Lex(filename, strings.NewReader(s))
}

func (l *participleLexer) Next() (lexer.Token, error) {
	tok := l.tz.Next()
	if err := l.tz.Err(); err != nil {
		return lexer.Token{}, participle.Errorf(tok.Pos, "%s", err)
	}
	if tok.Err != nil {
		return lexer.Token{}, participle.Errorf(tok.Pos, "malformed number literal %q", tok.Text)
	}
	return lexer.Token{
		Type:  participleType(tok.Kind),
		Value: tok.Spelling(),
		Pos:   tok.Pos,
	}, nil
}

func participleType(k Kind) lexer.TokenType {
	switch k {
	case Def:
		return DefType
	case Extern:
		return ExternType
	case Identifier:
		return IdentType
	case Number:
		return NumberType
	case Symbol:
		return SymbolType
	}
	return lexer.EOF
}

package parser

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	klex "github.com/vyPal/Kaleidoscope/lib/lexer"
)

// ErrorKind classifies a parse failure. Kinds are errors themselves, so
// errors.Is(err, parser.ExpectedCloseParen) matches any *Error of that
// kind.
type ErrorKind int

const (
	UnexpectedToken ErrorKind = iota + 1
	ExpectedCloseParen
	ExpectedCloseArgList
	ExpectedName
	ExpectedOpenParen
	ExpectedCloseParenInPrototype
	MalformedNumberLiteral
	NestingTooDeep
)

var kindText = map[ErrorKind]string{
	UnexpectedToken:               "unexpected token",
	ExpectedCloseParen:            "expected ')'",
	ExpectedCloseArgList:          "expected ')' or ',' in argument list",
	ExpectedName:                  "expected function name in prototype",
	ExpectedOpenParen:             "expected '(' in prototype",
	ExpectedCloseParenInPrototype: "expected ')' in prototype",
	MalformedNumberLiteral:        "malformed number literal",
	NestingTooDeep:                "expression nested too deeply",
}

func (k ErrorKind) Error() string {
	if s, ok := kindText[k]; ok {
		return s
	}
	return fmt.Sprintf("parse error %d", int(k))
}

// Error is a parse failure at a position. It satisfies participle.Error.
type Error struct {
	Kind ErrorKind
	Pos  lexer.Position
	Tok  klex.Token
	Msg  string
}

var _ participle.Error = (*Error)(nil)

func (e *Error) Error() string {
	if e.Pos.Line == 0 {
		return e.Msg
	}
	return e.Pos.String() + ": " + e.Msg
}

// Message returns the error text without the position.
func (e *Error) Message() string { return e.Msg }

// Position returns where the offending token starts.
func (e *Error) Position() lexer.Position { return e.Pos }

// Unwrap returns the kind of e.
func (e *Error) Unwrap() error { return e.Kind }

func (p *Parser) errorf(kind ErrorKind, format string, args ...interface{}) *Error {
	tok := p.cur.Current()
	return &Error{
		Kind: kind,
		Pos:  tok.Pos,
		Tok:  tok,
		Msg:  fmt.Sprintf(format, args...),
	}
}

func (p *Parser) fail(kind ErrorKind) *Error {
	return p.errorf(kind, "%s, found %s", kind.Error(), p.cur.Current())
}

// ErrorList collects the failures of a multi-statement parse.
type ErrorList []*Error

func (l ErrorList) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].Error()
	}
	var b strings.Builder
	b.WriteString(l[0].Error())
	fmt.Fprintf(&b, " (and %d more errors)", len(l)-1)
	return b.String()
}

// Err returns nil for an empty list and the list otherwise.
func (l ErrorList) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}

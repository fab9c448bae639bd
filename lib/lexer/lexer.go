package klex

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

const eof = -1

// Tokenizer turns a character stream into Tokens. It holds a single
// character of lookahead between calls to Next and nothing else, so a
// Tokenizer must not be shared between parsing sessions.
type Tokenizer struct {
	r   io.ByteReader
	ch  int            // lookahead character, eof at end of stream
	pos lexer.Position // position of ch
	nxt lexer.Position // position of the character after ch
	err error
	buf strings.Builder
}

// New returns a Tokenizer reading from r. Input is not read until the
// first call to Next.
func New(filename string, r io.Reader) *Tokenizer {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Tokenizer{
		r:   br,
		ch:  ' ',
		nxt: lexer.Position{Filename: filename, Line: 1, Column: 1},
	}
}

// NewString returns a Tokenizer over s.
func NewString(filename, s string) *Tokenizer {
	return New(filename, strings.NewReader(s))
}

// Err returns the first read error other than io.EOF. A read error ends
// the stream.
func (t *Tokenizer) Err() error {
	return t.err
}

func (t *Tokenizer) readch() {
	if t.ch == eof {
		return
	}
	t.pos = t.nxt
	b, err := t.r.ReadByte()
	if err != nil {
		if err != io.EOF {
			t.err = err
		}
		t.ch = eof
		return
	}
	t.ch = int(b)
	t.nxt.Offset++
	if b == '\n' {
		t.nxt.Line++
		t.nxt.Column = 1
	} else {
		t.nxt.Column++
	}
}

// Next scans and returns the next token. Once the stream is exhausted
// every call returns an EOF token.
func (t *Tokenizer) Next() Token {
	for {
		for isSpace(t.ch) {
			t.readch()
		}
		start := t.pos

		switch {
		case t.ch == eof:
			return Token{Kind: EOF, Pos: start}
		case isAlpha(t.ch):
			return t.scanIdentifier(start)
		case isNumberPart(t.ch):
			return t.scanNumber(start)
		case t.ch == '#':
			t.skipComment()
			continue
		}

		c := byte(t.ch)
		t.readch()
		return Token{Kind: Symbol, Char: c, Pos: start}
	}
}

func (t *Tokenizer) scanIdentifier(start lexer.Position) Token {
	t.buf.Reset()
	for isAlnum(t.ch) {
		t.buf.WriteByte(byte(t.ch))
		t.readch()
	}
	text := t.buf.String()
	if kind, ok := keywords[text]; ok {
		return Token{Kind: kind, Text: text, Pos: start}
	}
	return Token{Kind: Identifier, Text: text, Pos: start}
}

// scanNumber accepts any run of digits and dots. Runs that do not form
// a float, such as "1.2.3", still produce a Number token with Err set.
func (t *Tokenizer) scanNumber(start lexer.Position) Token {
	t.buf.Reset()
	for isNumberPart(t.ch) {
		t.buf.WriteByte(byte(t.ch))
		t.readch()
	}
	text := t.buf.String()
	tok := Token{Kind: Number, Text: text, Pos: start}
	tok.Value, tok.Err = strconv.ParseFloat(text, 64)
	if tok.Err != nil {
		tok.Value = 0
	}
	return tok
}

func (t *Tokenizer) skipComment() {
	for t.ch != eof && t.ch != '\n' && t.ch != '\r' {
		t.readch()
	}
}

func isSpace(c int) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isAlpha(c int) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isDigit(c int) bool {
	return '0' <= c && c <= '9'
}

func isAlnum(c int) bool {
	return isAlpha(c) || isDigit(c)
}

func isNumberPart(c int) bool {
	return isDigit(c) || c == '.'
}

package parser

import (
	"fmt"
	"sort"

	klex "github.com/vyPal/Kaleidoscope/lib/lexer"
)

// NotAnOperator is the precedence reported for tokens that are not
// binary operators.
const NotAnOperator = -1

// PrecedenceTable maps binary operator symbols to binding strength.
// A table is immutable once built and may be shared between parsers.
// Any operator present in the table is a binary operator, including one
// with precedence 0.
type PrecedenceTable struct {
	ops map[byte]int
}

var defaultPrecedence = &PrecedenceTable{ops: map[byte]int{
	'<': 10,
	'+': 20,
	'-': 20,
	'*': 40,
}}

// DefaultPrecedence returns the standard table: '<' 10, '+' and '-' 20,
// '*' 40.
func DefaultPrecedence() *PrecedenceTable {
	return defaultPrecedence
}

// NewPrecedenceTable builds a table from ops. It rejects negative
// precedences and symbols the grammar reserves for itself.
func NewPrecedenceTable(ops map[byte]int) (*PrecedenceTable, error) {
	t := &PrecedenceTable{ops: make(map[byte]int, len(ops))}
	for op, prec := range ops {
		if err := checkOperator(op, prec); err != nil {
			return nil, err
		}
		t.ops[op] = prec
	}
	return t, nil
}

// With returns a copy of t with op bound to prec.
func (t *PrecedenceTable) With(op byte, prec int) (*PrecedenceTable, error) {
	if err := checkOperator(op, prec); err != nil {
		return nil, err
	}
	n := &PrecedenceTable{ops: make(map[byte]int, len(t.ops)+1)}
	for k, v := range t.ops {
		n.ops[k] = v
	}
	n.ops[op] = prec
	return n, nil
}

func checkOperator(op byte, prec int) error {
	if prec < 0 {
		return fmt.Errorf("operator %q: precedence %d is negative", op, prec)
	}
	if !klex.IsSymbolChar(op) {
		return fmt.Errorf("operator %q: not a symbol character", op)
	}
	switch op {
	case '(', ')', ',', ';':
		return fmt.Errorf("operator %q: reserved by the grammar", op)
	}
	return nil
}

// Of returns the precedence of tok, or NotAnOperator if tok is not a
// symbol in the table.
func (t *PrecedenceTable) Of(tok klex.Token) int {
	if tok.Kind != klex.Symbol {
		return NotAnOperator
	}
	if prec, ok := t.ops[tok.Char]; ok {
		return prec
	}
	return NotAnOperator
}

// Operators returns the operators in the table in byte order.
func (t *PrecedenceTable) Operators() []byte {
	ops := make([]byte, 0, len(t.ops))
	for op := range t.ops {
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i] < ops[j] })
	return ops
}

// Lookup returns the precedence bound to op.
func (t *PrecedenceTable) Lookup(op byte) (int, bool) {
	prec, ok := t.ops[op]
	return prec, ok
}

// Package ast declares the syntax tree produced by the parser.
//
// The node set is closed: Node and Expr can only be implemented by the
// types in this package, so a type switch over them is exhaustive.
package ast

import "github.com/alecthomas/participle/v2/lexer"

// Node is any syntax tree node.
type Node interface {
	Position() lexer.Position
	aNode()
}

// Expr is a node that produces a value.
type Expr interface {
	Node
	anExpr()
}

type (
	// Number is a numeric literal.
	Number struct {
		Pos   lexer.Position
		Value float64
	}

	// Variable is a reference to a name. It is not resolved.
	Variable struct {
		Pos  lexer.Position
		Name string
	}

	// Binary applies Op to LHS and RHS.
	Binary struct {
		Pos lexer.Position
		Op  byte
		LHS Expr
		RHS Expr
	}

	// Call is Callee(Args...).
	Call struct {
		Pos    lexer.Position
		Callee string
		Args   []Expr
	}
)

// Prototype is a function signature: its name and parameter names.
// An extern declaration is a bare Prototype.
type Prototype struct {
	Pos    lexer.Position
	Name   string
	Params []string
}

// Function is a prototype with a body. Top-level expressions are
// wrapped in a Function whose prototype is anonymous.
type Function struct {
	Proto *Prototype
	Body  Expr
}

// IsAnonymous reports whether f wraps a top-level expression.
func (f *Function) IsAnonymous() bool {
	return f.Proto.Name == "" && len(f.Proto.Params) == 0
}

func (n *Number) Position() lexer.Position    { return n.Pos }
func (n *Variable) Position() lexer.Position  { return n.Pos }
func (n *Binary) Position() lexer.Position    { return n.Pos }
func (n *Call) Position() lexer.Position      { return n.Pos }
func (n *Prototype) Position() lexer.Position { return n.Pos }
func (n *Function) Position() lexer.Position  { return n.Proto.Pos }

func (*Number) aNode()    {}
func (*Variable) aNode()  {}
func (*Binary) aNode()    {}
func (*Call) aNode()      {}
func (*Prototype) aNode() {}
func (*Function) aNode()  {}

func (*Number) anExpr()   {}
func (*Variable) anExpr() {}
func (*Binary) anExpr()   {}
func (*Call) anExpr()     {}

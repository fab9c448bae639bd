package parser

import (
	"github.com/vyPal/Kaleidoscope/lib/ast"
	klex "github.com/vyPal/Kaleidoscope/lib/lexer"
)

// ParseExpression parses
//
//	expression := primary { binop primary }
//
// climbing operator precedence from the current token.
func (p *Parser) ParseExpression() (ast.Expr, error) {
	p.prime()
	if p.depth >= p.maxDepth {
		return nil, p.errorf(NestingTooDeep, "expression nested deeper than %d levels", p.maxDepth)
	}
	p.depth++
	defer func() { p.depth-- }()

	lhs, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	return p.parseBinaryRHS(0, lhs)
}

// parseBinaryRHS folds operators binding at least minPrec onto lhs.
// Equal precedence loops (left associative); strictly higher
// precedence on the right recurses.
func (p *Parser) parseBinaryRHS(minPrec int, lhs ast.Expr) (ast.Expr, error) {
	for {
		prec := p.prec.Of(p.Current())
		if prec < minPrec {
			return lhs, nil
		}

		op := p.Current()
		p.Advance() // op

		rhs, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}

		if next := p.prec.Of(p.Current()); next > prec {
			rhs, err = p.parseBinaryRHS(prec+1, rhs)
			if err != nil {
				return nil, err
			}
		}

		lhs = &ast.Binary{Pos: op.Pos, Op: op.Char, LHS: lhs, RHS: rhs}
	}
}

func (p *Parser) parsePrimary() (ast.Expr, error) {
	tok := p.Current()
	switch {
	case tok.Kind == klex.Number:
		return p.parseNumber()
	case tok.Kind == klex.Identifier:
		return p.parseIdentifier()
	case tok.Is('('):
		return p.parseParen()
	}
	return nil, p.errorf(UnexpectedToken, "expected an expression, found %s", tok)
}

func (p *Parser) parseNumber() (ast.Expr, error) {
	tok := p.Current()
	if tok.Err != nil {
		return nil, p.errorf(MalformedNumberLiteral, "malformed number literal %q", tok.Text)
	}
	p.Advance() // value
	return &ast.Number{Pos: tok.Pos, Value: tok.Value}, nil
}

// parseParen parses '(' expression ')'. The parentheses produce no node.
func (p *Parser) parseParen() (ast.Expr, error) {
	p.Advance() // "("
	inner, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	if !p.Current().Is(')') {
		return nil, p.fail(ExpectedCloseParen)
	}
	p.Advance() // ")"
	return inner, nil
}

// parseIdentifier parses a variable reference or a call:
//
//	identifier [ '(' [ expression { ',' expression } ] ')' ]
func (p *Parser) parseIdentifier() (ast.Expr, error) {
	name := p.Current()
	p.Advance() // name

	if !p.Current().Is('(') {
		return &ast.Variable{Pos: name.Pos, Name: name.Text}, nil
	}
	p.Advance() // "("

	var args []ast.Expr
	if !p.Current().Is(')') {
		for {
			arg, err := p.ParseExpression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)

			if p.Current().Is(')') {
				break
			}
			if !p.Current().Is(',') {
				return nil, p.fail(ExpectedCloseArgList)
			}
			p.Advance() // ","
		}
	}
	p.Advance() // ")"

	return &ast.Call{Pos: name.Pos, Callee: name.Text, Args: args}, nil
}

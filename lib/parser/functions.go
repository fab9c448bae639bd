package parser

import (
	"github.com/vyPal/Kaleidoscope/lib/ast"
	klex "github.com/vyPal/Kaleidoscope/lib/lexer"
)

// ParsePrototype parses
//
//	prototype := identifier '(' { identifier } ')'
//
// Parameter names are not checked for duplicates.
func (p *Parser) ParsePrototype() (*ast.Prototype, error) {
	p.prime()
	name := p.Current()
	if name.Kind != klex.Identifier {
		return nil, p.fail(ExpectedName)
	}
	p.Advance() // name

	if !p.Current().Is('(') {
		return nil, p.fail(ExpectedOpenParen)
	}

	var params []string
	for p.Advance().Kind == klex.Identifier {
		params = append(params, p.Current().Text)
	}

	if !p.Current().Is(')') {
		return nil, p.fail(ExpectedCloseParenInPrototype)
	}
	p.Advance() // ")"

	return &ast.Prototype{Pos: name.Pos, Name: name.Text, Params: params}, nil
}

// ParseDefinition parses
//
//	definition := 'def' prototype expression
func (p *Parser) ParseDefinition() (*ast.Function, error) {
	p.prime()
	p.Advance() // "def"
	proto, err := p.ParsePrototype()
	if err != nil {
		return nil, err
	}
	body, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.Function{Proto: proto, Body: body}, nil
}

// ParseExtern parses
//
//	extern := 'extern' prototype
func (p *Parser) ParseExtern() (*ast.Prototype, error) {
	p.prime()
	p.Advance() // "extern"
	return p.ParsePrototype()
}

// ParseTopLevelExpression parses an expression and wraps it in an
// anonymous, parameterless function.
func (p *Parser) ParseTopLevelExpression() (*ast.Function, error) {
	p.prime()
	start := p.Current().Pos
	body, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.Function{Proto: &ast.Prototype{Pos: start}, Body: body}, nil
}

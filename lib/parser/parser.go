package parser

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/vyPal/Kaleidoscope/lib/ast"
	klex "github.com/vyPal/Kaleidoscope/lib/lexer"
)

// DefaultMaxDepth bounds expression nesting (parenthesized groups and
// call arguments), and with it the parser's stack use.
const DefaultMaxDepth = 256

// Parser is one parsing session. It owns its tokenizer and cursor and
// must not be used from more than one goroutine; independent sessions
// may run concurrently and share a PrecedenceTable.
type Parser struct {
	cur      *klex.Cursor
	prec     *PrecedenceTable
	maxDepth int
	depth    int
	primed   bool
}

// Option configures a Parser.
type Option func(*Parser)

// WithPrecedence sets the operator table. The default is
// DefaultPrecedence().
func WithPrecedence(t *PrecedenceTable) Option {
	return func(p *Parser) { p.prec = t }
}

// WithMaxDepth sets the nesting bound. Values below 1 select
// DefaultMaxDepth.
func WithMaxDepth(n int) Option {
	return func(p *Parser) {
		if n < 1 {
			n = DefaultMaxDepth
		}
		p.maxDepth = n
	}
}

// New returns a parser reading from tz.
func New(tz *klex.Tokenizer, opts ...Option) *Parser {
	p := &Parser{
		cur:      klex.NewCursor(tz),
		prec:     DefaultPrecedence(),
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewString returns a parser over src.
func NewString(filename, src string, opts ...Option) *Parser {
	return New(klex.NewString(filename, src), opts...)
}

// Advance moves to the next token and returns it.
func (p *Parser) Advance() klex.Token {
	p.primed = true
	return p.cur.Advance()
}

// Current returns the current token.
func (p *Parser) Current() klex.Token {
	return p.cur.Current()
}

// Precedence returns the table the parser climbs with.
func (p *Parser) Precedence() *PrecedenceTable {
	return p.prec
}

// ReadErr reports an I/O error that ended the input early.
func (p *Parser) ReadErr() error {
	return p.cur.Tokenizer().Err()
}

// prime reads the first token if nothing has been read yet, so the
// Parse methods can be called on a fresh parser.
func (p *Parser) prime() {
	if !p.primed {
		p.Advance()
	}
}

// ParseStatement parses the next top-level construct:
//
//	program := { definition | extern | toplevel_expr | ';' }
//
// It returns *ast.Function for definitions and top-level expressions
// and *ast.Prototype for externs. At end of input it returns io.EOF.
// On failure it skips the offending token so the next call resumes
// after it.
func (p *Parser) ParseStatement() (ast.Node, error) {
	p.prime()
	for p.Current().Is(';') {
		p.Advance()
	}

	var (
		n   ast.Node
		err error
	)
	switch p.Current().Kind {
	case klex.EOF:
		return nil, io.EOF
	case klex.Def:
		n, err = p.ParseDefinition()
	case klex.Extern:
		n, err = p.ParseExtern()
	default:
		n, err = p.ParseTopLevelExpression()
	}
	if err != nil {
		if p.Current().Kind != klex.EOF {
			p.Advance()
		}
		return nil, err
	}
	return n, nil
}

// ParseAll drains the input. It keeps parsing after a failure and
// returns every parsed node together with every error (as an
// ErrorList), or a read error if the input failed.
func (p *Parser) ParseAll() ([]ast.Node, error) {
	var (
		nodes []ast.Node
		errs  ErrorList
	)
	for {
		n, err := p.ParseStatement()
		if err == io.EOF {
			break
		}
		if err != nil {
			var perr *Error
			if !errors.As(err, &perr) {
				return nodes, err
			}
			errs = append(errs, perr)
			continue
		}
		nodes = append(nodes, n)
	}
	if err := p.ReadErr(); err != nil {
		return nodes, errors.Wrap(err, "reading source")
	}
	return nodes, errs.Err()
}

// ParseString parses every statement in src.
func ParseString(filename, src string, opts ...Option) ([]ast.Node, error) {
	return NewString(filename, src, opts...).ParseAll()
}

// ParseFile parses every statement in the named file.
func ParseFile(filename string, opts ...Option) ([]ast.Node, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", filename)
	}
	defer f.Close()

	return New(klex.New(filename, f), opts...).ParseAll()
}

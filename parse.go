package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
	"github.com/vyPal/Kaleidoscope/lib/ast"
	klex "github.com/vyPal/Kaleidoscope/lib/lexer"
	"github.com/vyPal/Kaleidoscope/lib/parser"
	"gopkg.in/yaml.v3"
)

const grammar = `program       := { definition | extern | toplevel_expr | ';' }
definition    := 'def' prototype expression
extern        := 'extern' prototype
prototype     := identifier '(' { identifier } ')'
toplevel_expr := expression
expression    := primary { binop primary }
primary       := number | identifier [ '(' [ expression { ',' expression } ] ')' ] | '(' expression ')'
comment       := '#' { any-char-except-newline }`

func init() {
	commands = append(commands, &cli.Command{
		Name:      "parse",
		Usage:     "Parse a Kaleidoscope file and print its AST",
		Category:  "parse",
		ArgsUsage: "[file]",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   "text",
				Usage:   "Output format: text, json or yaml",
			},
			&cli.IntFlag{
				Name:  "max-depth",
				Usage: "Maximum expression nesting depth",
			},
			&cli.BoolFlag{
				Name: "ebnf",
				Usage: "Print the grammar and operator table. " +
					"Useful for debugging the parser.",
			},
		}, sourceFlags()...),
		Action: parse,
	}, &cli.Command{
		Name:      "tokens",
		Usage:     "Print the token stream of a Kaleidoscope file",
		Category:  "parse",
		ArgsUsage: "[file]",
		Flags: append([]cli.Flag{
			&cli.BoolFlag{
				Name:    "positions",
				Aliases: []string{"p"},
				Usage:   "Prefix each token with its line and column",
			},
		}, sourceFlags()...),
		Action: tokens,
	})
}

func parse(c *cli.Context) error {
	conf, err := loadConfig(c)
	if err != nil {
		return cli.Exit(color.RedString("Error loading config: %s", err), 1)
	}
	opts, err := parserOptions(c, conf)
	if err != nil {
		return cli.Exit(color.RedString("Error: %s", err), 1)
	}

	if c.Bool("ebnf") {
		return printGrammar(c.App.Writer, opts)
	}

	format := c.String("format")
	switch format {
	case "text", "json", "yaml":
	default:
		return cli.Exit(color.RedString("Error: unknown format %q", format), 1)
	}

	name, src, err := openSource(c)
	if err != nil {
		return cli.Exit(color.RedString("Error: %s", err), 1)
	}
	defer src.Close()

	p := parser.New(klex.New(name, src), opts...)

	var nodes []ast.Node
	failed := 0
	for {
		n, err := p.ParseStatement()
		if err == io.EOF {
			break
		}
		if err != nil {
			reportError(c.App.ErrWriter, err)
			failed++
			continue
		}
		log.Printf("parsed %T at %s", n, n.Position())
		nodes = append(nodes, n)
	}
	if err := p.ReadErr(); err != nil {
		return cli.Exit(color.RedString("Error reading %s: %s", name, err), 1)
	}

	if err := writeNodes(c.App.Writer, format, nodes); err != nil {
		return cli.Exit(color.RedString("Error encoding AST: %s", err), 1)
	}

	if failed > 0 {
		return cli.Exit(color.RedString("%d statement(s) failed to parse", failed), 1)
	}
	return nil
}

func writeNodes(w io.Writer, format string, nodes []ast.Node) error {
	if format == "text" {
		for _, n := range nodes {
			if _, err := fmt.Fprintln(w, ast.String(n)); err != nil {
				return err
			}
		}
		return nil
	}

	encoded := make([]*ast.Encoded, len(nodes))
	for i, n := range nodes {
		encoded[i] = ast.Encode(n)
	}

	if format == "json" {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(encoded)
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(encoded); err != nil {
		return err
	}
	return encoder.Close()
}

func printGrammar(w io.Writer, opts []parser.Option) error {
	table := parser.New(klex.NewString("", ""), opts...).Precedence()

	fmt.Fprintln(w, grammar)
	fmt.Fprint(w, "binop         :=")
	for i, op := range table.Operators() {
		if i > 0 {
			fmt.Fprint(w, " |")
		}
		fmt.Fprintf(w, " '%c'", op)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "precedence:")
	for _, op := range table.Operators() {
		prec, _ := table.Lookup(op)
		fmt.Fprintf(w, "  %c  %d\n", op, prec)
	}
	return nil
}

func tokens(c *cli.Context) error {
	if _, err := loadConfig(c); err != nil {
		return cli.Exit(color.RedString("Error loading config: %s", err), 1)
	}

	name, src, err := openSource(c)
	if err != nil {
		return cli.Exit(color.RedString("Error: %s", err), 1)
	}
	defer src.Close()

	w := c.App.Writer
	tz := klex.New(name, src)
	for {
		tok := tz.Next()
		if c.Bool("positions") {
			fmt.Fprintf(w, "%d:%d\t", tok.Pos.Line, tok.Pos.Column)
		}
		fmt.Fprintln(w, describeToken(tok))
		if tok.Kind == klex.EOF {
			break
		}
	}
	if err := tz.Err(); err != nil {
		return cli.Exit(color.RedString("Error reading %s: %s", name, err), 1)
	}
	return nil
}

func describeToken(tok klex.Token) string {
	switch tok.Kind {
	case klex.EOF:
		return "EOF"
	case klex.Def:
		return "keyword: define"
	case klex.Extern:
		return "keyword: extern"
	case klex.Identifier:
		return "identifier: " + tok.Text
	case klex.Number:
		if tok.Err != nil {
			return color.YellowString("malformed number: %s", tok.Text)
		}
		return fmt.Sprintf("number: %f", tok.Value)
	}
	return fmt.Sprintf("unknown: %c", tok.Char)
}

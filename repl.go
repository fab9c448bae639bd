package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
	"github.com/vyPal/Kaleidoscope/lib/ast"
	klex "github.com/vyPal/Kaleidoscope/lib/lexer"
	"github.com/vyPal/Kaleidoscope/lib/parser"
)

func init() {
	commands = append(commands, &cli.Command{
		Name:     "repl",
		Usage:    "Read statements from stdin and report what was parsed",
		Category: "parse",
		Description: "Each statement is parsed as soon as its last token is read, " +
			"so end statements with ';' to see the result right away.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "The path to the config file",
			},
			&cli.BoolFlag{
				Name:    "dump",
				Aliases: []string{"d"},
				Usage:   "Print the AST of every parsed statement",
			},
			&cli.IntFlag{
				Name:  "max-depth",
				Usage: "Maximum expression nesting depth",
			},
		},
		Action: repl,
	})
}

func repl(c *cli.Context) error {
	conf, err := loadConfig(c)
	if err != nil {
		return cli.Exit(color.RedString("Error loading config: %s", err), 1)
	}
	opts, err := parserOptions(c, conf)
	if err != nil {
		return cli.Exit(color.RedString("Error: %s", err), 1)
	}

	w := c.App.Writer
	p := parser.New(klex.New("<stdin>", bufio.NewReader(c.App.Reader)), opts...)

	for {
		fmt.Fprint(w, conf.Prompt)

		n, err := p.ParseStatement()
		if err == io.EOF {
			fmt.Fprintln(w)
			break
		}
		if err != nil {
			reportError(w, err)
			continue
		}

		fmt.Fprintln(w, color.GreenString(describeNode(n)))
		if c.Bool("dump") {
			fmt.Fprintln(w, ast.String(n))
		}
	}

	if err := p.ReadErr(); err != nil {
		return cli.Exit(color.RedString("Error reading stdin: %s", err), 1)
	}
	return nil
}

func describeNode(n ast.Node) string {
	switch n := n.(type) {
	case *ast.Prototype:
		return "Parsed an extern."
	case *ast.Function:
		if n.IsAnonymous() {
			return "Parsed a top-level expression."
		}
		return "Parsed a function definition."
	}
	return "Parsed a statement."
}

package main

import (
	"io"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"github.com/vyPal/Kaleidoscope/lib/parser"
	"github.com/vyPal/Kaleidoscope/lib/project"
)

func sourceFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "input-str",
			Aliases: []string{"s"},
			Usage:   "Read source from a string instead of a file",
		},
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "The path to the config file",
		},
	}
}

// openSource returns the input chosen on the command line: --input-str,
// a file argument, or stdin for "-" or no argument.
func openSource(c *cli.Context) (string, io.ReadCloser, error) {
	if c.IsSet("input-str") {
		return "<string>", io.NopCloser(strings.NewReader(c.String("input-str"))), nil
	}

	filename := c.Args().First()
	if filename == "" || filename == "-" {
		return "<stdin>", io.NopCloser(c.App.Reader), nil
	}

	f, err := os.Open(filename)
	if err != nil {
		return "", nil, errors.Wrapf(err, "opening %s", filename)
	}
	log.Println("reading", filename)
	return filename, f, nil
}

// loadConfig resolves the config file and applies its colour setting.
func loadConfig(c *cli.Context) (project.Config, error) {
	conf, err := project.Resolve(c.String("config"))
	if err != nil {
		return project.Config{}, err
	}
	if !conf.ColorEnabled() {
		color.NoColor = true
	}
	log.Printf("config: prompt=%q maxDepth=%d operators=%d", conf.Prompt, conf.MaxDepth, len(conf.Operators))
	return conf, nil
}

func parserOptions(c *cli.Context, conf project.Config) ([]parser.Option, error) {
	opts, err := conf.ParserOptions()
	if err != nil {
		return nil, err
	}
	if c.IsSet("max-depth") {
		opts = append(opts, parser.WithMaxDepth(c.Int("max-depth")))
	}
	return opts, nil
}

func reportError(w io.Writer, err error) {
	io.WriteString(w, color.RedString("Error: ")+err.Error()+"\n")
}

package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

var commands []*cli.Command

func newApp() *cli.App {
	return &cli.App{
		Name:                   "kaleido",
		Usage:                  "Tokenize and parse Kaleidoscope source",
		EnableBashCompletion:   true,
		UseShortOptionHandling: true,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "Disable coloured diagnostics",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"V"},
				Usage:   "Log what the driver is doing to stderr",
			},
		},
		Before: func(c *cli.Context) error {
			if c.Bool("no-color") {
				color.NoColor = true
			}
			log.SetPrefix("[kaleido] ")
			log.SetFlags(0)
			if c.Bool("verbose") {
				log.SetOutput(c.App.ErrWriter)
			} else {
				log.SetOutput(io.Discard)
			}
			return nil
		},
		Commands: commands,
	}
}

func main() {
	err := newApp().Run(os.Args)
	if err != nil {
		if _, ok := err.(cli.ExitCoder); ok {
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, color.RedString("Error: %s", err))
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"github.com/vyPal/Kaleidoscope/lib/project"
	"github.com/vyPal/Kaleidoscope/util"
)

func init() {
	commands = append(commands, &cli.Command{
		Name:      "init",
		Usage:     "Write a default " + project.FileName + " configuration",
		Category:  "project",
		ArgsUsage: "[dir]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "force",
				Aliases: []string{"f"},
				Usage:   "Overwrite an existing configuration without asking",
			},
			&cli.BoolFlag{
				Name:    "yes",
				Aliases: []string{"y"},
				Usage:   "Accept the default configuration without asking",
			},
		},
		Action: initProject,
	})
}

func initProject(c *cli.Context) error {
	util.SetIO(c.App.Reader, c.App.Writer)
	w := c.App.Writer

	rootDir := c.Args().First()
	if rootDir == "" {
		rootDir = "."
	}

	if _, err := os.Stat(rootDir); os.IsNotExist(err) {
		err := os.MkdirAll(rootDir, 0755)
		if err != nil {
			return cli.Exit(color.RedString("Error creating %s: %s", rootDir, err), 1)
		}

		fmt.Fprintln(w, "Created directory:", rootDir)
	}

	conf := project.Default()
	if !c.Bool("yes") && !util.PromptYN("Use default configuration?", true) {
		conf.Prompt = util.PromptString("REPL prompt", conf.Prompt)
		conf.MaxDepth = util.PromptInt("Maximum expression nesting", conf.MaxDepth)
		if err := conf.Validate(); err != nil {
			return cli.Exit(color.RedString("Error: %s", err), 1)
		}
	}

	path := filepath.Join(rootDir, project.FileName)
	err := conf.Save(path, c.Bool("force"))
	if errors.Is(err, project.ErrKept) {
		fmt.Fprintln(w, color.YellowString("Kept existing %s", path))
		return nil
	}
	if err != nil {
		return cli.Exit(color.RedString("Error saving config: %s", err), 1)
	}

	fmt.Fprintln(w, "Created file:", path)
	return nil
}

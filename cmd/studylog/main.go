package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/studylog/internal/cli"
	"github.com/alexanderramin/studylog/internal/config"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig(config.LoadOptions{})
	if err != nil {
		return err
	}

	app := &cli.App{}

	// The stopwatch and part prompt need a terminal on both ends.
	app.IsInteractive = func() bool {
		return isTerminal(os.Stdin) && isTerminal(os.Stdout)
	}

	return cli.NewRootCmd(app, cfg).Execute()
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

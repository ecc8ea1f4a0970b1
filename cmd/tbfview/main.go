// Tbfview is an interactive terminal tree browser over a decoded TBF
// buffer file: a scrollable field tree on the left, the selected
// field's full value on the right.
//
// Usage:
//
//	tbfview --mode=name file.tbf
//	tbfview --mode=id --dict=tags.yaml file.tbf
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/electrodiux/tbf/lib/tagdict"
	"github.com/electrodiux/tbf/lib/tbf"
	"github.com/electrodiux/tbf/lib/tbfinspect"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "tbfview: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var modeFlag string
	var dictPath string

	flagSet := pflag.NewFlagSet("tbfview", pflag.ContinueOnError)
	flagSet.StringVar(&modeFlag, "mode", "name", "identifier mode the buffer was written with: name or id")
	flagSet.StringVar(&dictPath, "dict", "", "YAML id->name dictionary, for --mode=id buffers (optional)")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}

	if help, _ := flagSet.GetBool("help"); help {
		flagSet.PrintDefaults()
		return nil
	}

	args := flagSet.Args()
	if len(args) != 1 {
		return fmt.Errorf("expected exactly one buffer file argument, got %d", len(args))
	}
	path := args[0]

	var mode tbf.Mode
	switch modeFlag {
	case "name":
		mode = tbf.NameMode
	case "id":
		mode = tbf.IDMode
	default:
		return fmt.Errorf("invalid --mode %q: must be name or id", modeFlag)
	}

	var dict *tagdict.Dict
	if dictPath != "" {
		loaded, err := tagdict.Load(dictPath)
		if err != nil {
			return fmt.Errorf("loading dictionary: %w", err)
		}
		dict = loaded
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	reader := tbf.NewReader(data, mode)
	if !reader.Valid() {
		return fmt.Errorf("%s is not a valid TBF buffer in %s mode", path, modeFlag)
	}

	tree := tbfinspect.Dump(reader.RootObject(), dict)
	program := tea.NewProgram(newModel(path, tree), tea.WithAltScreen())
	_, err = program.Run()
	return err
}

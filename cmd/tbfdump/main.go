// Tbfdump inspects a TBF buffer file and prints its field tree as an
// indented listing or as JSON.
//
// Usage:
//
//	tbfdump --mode=name file.tbf
//	tbfdump --mode=id --dict=tags.yaml --json file.tbf
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/electrodiux/tbf/lib/tagdict"
	"github.com/electrodiux/tbf/lib/tbf"
	"github.com/electrodiux/tbf/lib/tbfinspect"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "tbfdump: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var modeFlag string
	var dictPath string
	var jsonOutput bool

	flagSet := pflag.NewFlagSet("tbfdump", pflag.ContinueOnError)
	flagSet.StringVar(&modeFlag, "mode", "name", "identifier mode the buffer was written with: name or id")
	flagSet.StringVar(&dictPath, "dict", "", "YAML id->name dictionary, for --mode=id buffers (optional)")
	flagSet.BoolVar(&jsonOutput, "json", false, "print as JSON instead of an indented listing")
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

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

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
		logger.Debug("loaded tag dictionary", "path", dictPath, "entries", dict.Len())
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	reader := tbf.NewReader(data, mode)
	if !reader.Valid() {
		return fmt.Errorf("%s is not a valid TBF buffer in %s mode", args[0], modeFlag)
	}

	tree := tbfinspect.Dump(reader.RootObject(), dict)

	if jsonOutput {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(tree)
	}

	printTree(tree, 0)
	return nil
}

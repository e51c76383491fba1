package main

import (
	"fmt"
	"io"
	"os"

	"github.com/KimNorgaard/go-dyml"
)

// inputs returns the files named on the command line, or "-" for stdin.
func inputs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

func readArg(in io.Reader, arg string) ([]byte, error) {
	if arg == "-" {
		return io.ReadAll(in)
	}
	return os.ReadFile(arg)
}

func (cfg *MainConfig) load(in io.Reader, arg string) (*dyml.Document, error) {
	data, err := readArg(in, arg)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", arg, err)
	}
	doc, err := dyml.Parse(data, cfg.parseOpts()...)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", arg, err)
	}
	theLog.Debug("loaded document", "file", arg, "rows", doc.Len(), "managed", doc.Managed())
	return doc, nil
}

func writeSep(w io.Writer, name string) error {
	_, err := fmt.Fprintf(w, "--- %s\n", name)
	return err
}

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/KimNorgaard/go-dyml"
	"github.com/scott-cotton/cli"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	var canon [2]string
	for i, arg := range args {
		data, err := readArg(cc.In, arg)
		if err != nil {
			return fmt.Errorf("error reading %s: %w", arg, err)
		}
		out, err := dyml.Format(data, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		canon[i] = string(out)
	}
	differs, err := writeDiff(cc.Out, canon[0], canon[1], cfg.palette(cc.Out))
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// writeDiff writes a line diff of a and b, prefixing removed lines with
// "-", added lines with "+" and unchanged lines with a space. It reports
// whether a and b differ.
func writeDiff(w io.Writer, a, b string, p *palette) (bool, error) {
	dmp := diffpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)

	differs := false
	for _, d := range diffs {
		prefix, paint := " ", fmt.Sprintf
		switch d.Type {
		case diffpatch.DiffInsert:
			prefix, paint, differs = "+", p.Insert, true
		case diffpatch.DiffDelete:
			prefix, paint, differs = "-", p.Delete, true
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			if _, err := io.WriteString(w, paint("%s", prefix+line)); err != nil {
				return differs, err
			}
		}
	}
	return differs, nil
}

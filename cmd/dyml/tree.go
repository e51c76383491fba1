package main

import (
	"io"
	"strings"

	"github.com/KimNorgaard/go-dyml"
	"github.com/scott-cotton/cli"
)

func tree(cfg *TreeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tree.Parse(cc, args)
	if err != nil {
		cfg.Tree.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	files := inputs(args)
	p := cfg.palette(cc.Out)
	for _, arg := range files {
		doc, err := cfg.load(cc.In, arg)
		if err != nil {
			return err
		}
		if len(files) > 1 {
			if err := writeSep(cc.Out, arg); err != nil {
				return err
			}
		}
		if err := printTree(cc.Out, doc.Root(), 0, p); err != nil {
			return err
		}
	}
	return nil
}

// printTree writes the children of n by walking the hierarchy, two spaces
// per depth, keyless children as their bare value.
func printTree(w io.Writer, n dyml.Node, depth int, p *palette) error {
	for _, c := range n.All() {
		var b strings.Builder
		b.WriteString(strings.Repeat("  ", depth))
		if c.HasKey() {
			b.WriteString(p.Key("%s", c.Key()))
			b.WriteByte(':')
			if c.HasValue() {
				b.WriteByte(' ')
			}
		}
		if c.HasValue() {
			b.WriteString(p.Value("%s", c.Value()))
		}
		b.WriteByte('\n')
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if err := printTree(w, c, depth+1, p); err != nil {
			return err
		}
	}
	return nil
}

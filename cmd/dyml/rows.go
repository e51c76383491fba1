package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/KimNorgaard/go-dyml"
	"github.com/scott-cotton/cli"
)

func rows(cfg *RowsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Rows.Parse(cc, args)
	if err != nil {
		cfg.Rows.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Width < 0 {
		return fmt.Errorf("%w: -w must not be negative", cli.ErrUsage)
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
		if err := printRows(cc.Out, doc, cfg.Width, p); err != nil {
			return err
		}
	}
	return nil
}

// printRows writes one line per row: its index, level, key right aligned
// to width and value.
func printRows(w io.Writer, doc *dyml.Document, width int, p *palette) error {
	for i, r := range doc.Rows() {
		key, val := r.Key, r.Value
		if key == "" {
			key = " "
		}
		if val == "" {
			val = " "
		}
		_, err := fmt.Fprintf(w, "%s lv=%2d %s | %s\n",
			p.Index("%5s", "#"+strconv.Itoa(i)),
			r.Level,
			p.Key("%*s", width, key),
			p.Value("%s", val))
		if err != nil {
			return err
		}
	}
	return nil
}

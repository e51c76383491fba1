package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/KimNorgaard/go-dyml"
	"github.com/scott-cotton/cli"
)

func format(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		cfg.Fmt.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	files := inputs(args)
	for _, arg := range files {
		if cfg.Write && arg == "-" {
			return fmt.Errorf("%w: cannot use -w with standard input", cli.ErrUsage)
		}
		data, err := readArg(cc.In, arg)
		if err != nil {
			return fmt.Errorf("error reading %s: %w", arg, err)
		}
		out, err := dyml.Format(data, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error formatting %s: %w", arg, err)
		}
		if cfg.Write {
			if bytes.Equal(data, out) {
				continue
			}
			theLog.Debug("rewriting", "file", arg, "before", len(data), "after", len(out))
			if err := os.WriteFile(arg, out, 0o644); err != nil {
				return err
			}
			continue
		}
		if len(files) > 1 {
			if err := writeSep(cc.Out, arg); err != nil {
				return err
			}
		}
		if _, err := cc.Out.Write(out); err != nil {
			return err
		}
	}
	return nil
}

package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func toYAML(cfg *YAMLConfig, cc *cli.Context, args []string) error {
	args, err := cfg.YAML.Parse(cc, args)
	if err != nil {
		cfg.YAML.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	for i, arg := range inputs(args) {
		doc, err := cfg.load(cc.In, arg)
		if err != nil {
			return err
		}
		out, err := doc.MarshalYAML()
		if err != nil {
			return fmt.Errorf("error converting %s: %w", arg, err)
		}
		if i > 0 {
			if _, err := cc.Out.Write([]byte("---\n")); err != nil {
				return err
			}
		}
		if _, err := cc.Out.Write(out); err != nil {
			return err
		}
	}
	return nil
}

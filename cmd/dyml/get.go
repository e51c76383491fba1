package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/KimNorgaard/go-dyml"
	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a node path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid path \"\"", cli.ErrUsage)
	}
	p := cfg.palette(cc.Out)
	for _, arg := range inputs(args[1:]) {
		doc, err := cfg.load(cc.In, arg)
		if err != nil {
			return err
		}
		n, err := resolve(doc.Root(), path)
		if err != nil {
			return fmt.Errorf("error querying %s with %s: %w", arg, path, err)
		}
		if err := printNode(cc.Out, n, p); err != nil {
			return err
		}
	}
	return nil
}

// resolve follows a dotted path from n. Each segment names a child key;
// a segment that is not a key but a number selects a child by position.
func resolve(n dyml.Node, path string) (dyml.Node, error) {
	for _, seg := range strings.Split(path, ".") {
		if c := n.Get(seg); c.Valid() {
			n = c
			continue
		}
		i, err := strconv.Atoi(seg)
		if err != nil {
			return dyml.Node{}, fmt.Errorf("%w: %q", dyml.ErrKeyNotFound, seg)
		}
		if n, err = n.Child(i); err != nil {
			return dyml.Node{}, err
		}
	}
	return n, nil
}

// printNode writes a leaf as its value and any other node as a tree.
func printNode(w io.Writer, n dyml.Node, p *palette) error {
	if n.Children() == 0 {
		_, err := fmt.Fprintln(w, p.Value("%s", n.Value()))
		return err
	}
	return printTree(w, n, 0, p)
}

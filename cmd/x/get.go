package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/xmltree-format/xmltree/encode"
	"github.com/xmltree-format/xmltree/ir"
	"github.com/xmltree-format/xmltree/parse"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires a tag path", cli.ErrUsage)
	}
	path := strings.Split(strings.Trim(args[0], "/"), "/")
	files := args[1:]
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		if err := getFile(cfg, cc, path, file); err != nil {
			return err
		}
	}
	return nil
}

func getFile(cfg *GetConfig, cc *cli.Context, path []string, file string) error {
	var (
		f   *os.File
		err error
	)
	if file != "-" {
		f, err = os.Open(file)
		if err != nil {
			return fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
	} else {
		f = os.Stdin
	}
	root, err := parse.ParseReader(f, cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", file, err)
	}
	res, err := lookup(root, path)
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	for _, n := range res {
		if err := encode.Encode(n, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
	}
	return nil
}

// lookup resolves a tag path against the root. The first path element
// names the root itself; the rest select children level by level,
// fanning out over every match.
func lookup(root *ir.Node, path []string) ([]*ir.Node, error) {
	if len(path) == 0 || root.Tag() != path[0] {
		return nil, fmt.Errorf("%w: root is %q", ir.ErrNodeNotFound, root.Tag())
	}
	cur := []*ir.Node{root}
	for _, tag := range path[1:] {
		var next []*ir.Node
		for _, n := range cur {
			kids, err := n.ChildrenByTag(tag)
			if err != nil {
				continue
			}
			next = append(next, kids...)
		}
		if next == nil {
			return nil, fmt.Errorf("%w: no %q under %q", ir.ErrNodeNotFound, tag, strings.Join(path, "/"))
		}
		cur = next
	}
	return cur, nil
}

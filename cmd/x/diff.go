package main

import (
	"fmt"
	"os"

	"github.com/xmltree-format/xmltree/encode"
	"github.com/xmltree-format/xmltree/ir"
	"github.com/xmltree-format/xmltree/parse"

	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"
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
	a, err := diffFile(cfg, args[0])
	if err != nil {
		return err
	}
	b, err := diffFile(cfg, args[1])
	if err != nil {
		return err
	}
	if ir.Equal(a, b) {
		return nil
	}
	if !cfg.Quiet {
		dmp := diffmatchpatch.New()
		diffs := dmp.DiffMain(
			encode.MustString(a, encode.EncodeIndent(cfg.Indent))+"\n",
			encode.MustString(b, encode.EncodeIndent(cfg.Indent))+"\n",
			false)
		if _, err := cc.Out.Write([]byte(dmp.DiffPrettyText(diffs))); err != nil {
			return err
		}
	}
	return cli.ExitCodeErr(1)
}

func diffFile(cfg *DiffConfig, file string) (*ir.Node, error) {
	var (
		f   *os.File
		err error
	)
	if file != "-" {
		f, err = os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
	} else {
		f = os.Stdin
	}
	root, err := parse.ParseReader(f, cfg.parseOpts()...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", file, err)
	}
	return root, nil
}

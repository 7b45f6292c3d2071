package main

import (
	"fmt"
	"io"
	"os"

	"github.com/xmltree-format/xmltree/encode"
	"github.com/xmltree-format/xmltree/parse"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	if cfg.View != nil {
		var err error
		args, err = cfg.View.Parse(cc, args)
		if err != nil {
			return err
		}
	}
	if len(args) == 0 {
		return viewReader(cfg.MainConfig, cc.Out, cc.In)
	}
	return viewFiles(cfg.MainConfig, cc.Out, args)
}

func viewFiles(cfg *MainConfig, w io.Writer, files []string) error {
	for _, file := range files {
		if err := viewFile(cfg, w, file); err != nil {
			return err
		}
	}
	return nil
}

func viewFile(cfg *MainConfig, w io.Writer, file string) error {
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
	if err := viewReader(cfg, w, f); err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	return nil
}

func viewReader(cfg *MainConfig, w io.Writer, r io.Reader) error {
	root, err := parse.ParseReader(r, cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding: %w", err)
	}
	if err := encode.Encode(root, w, cfg.encOpts(w)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}

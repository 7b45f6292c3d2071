package main

import (
	"fmt"

	"github.com/xmltree-format/xmltree/format"

	"github.com/scott-cotton/cli"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: convert requires a format", cli.ErrUsage)
	}
	f, err := format.ParseFormat(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.OutFormat = &f
	if len(args) == 1 {
		return viewReader(cfg.MainConfig, cc.Out, cc.In)
	}
	return viewFiles(cfg.MainConfig, cc.Out, args[1:])
}

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/xmltree-format/xmltree/encode"
	"github.com/xmltree-format/xmltree/format"
	"github.com/xmltree-format/xmltree/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color  bool `cli:"name=color desc='encode with color'"`
	Indent int  `cli:"name=indent desc='spaces per nesting level (default 4)'"`
	Loose  bool `cli:"name=loose desc='non-strict scanning of malformed input'"`

	X bool `cli:"name=x aliases=xml desc='output xml'"`
	J bool `cli:"name=j aliases=json desc='output json'"`
	Y bool `cli:"name=y aliases=yaml desc='output yaml'"`

	OutFormat *format.Format

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	return []parse.ParseOption{
		parse.ParseStrict(!cfg.Loose),
	}
}

func (cfg *MainConfig) outFormat() format.Format {
	var f format.Format
	switch {
	case cfg.X:
		f = format.XMLFormat
	case cfg.J:
		f = format.JSONFormat
	case cfg.Y:
		f = format.YAMLFormat
	}
	if cfg.OutFormat != nil {
		f = *cfg.OutFormat
	}
	return f
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	f := cfg.outFormat()
	res := []encode.EncodeOption{
		encode.EncodeFormat(f),
		encode.EncodeIndent(cfg.Indent),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	file, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(file.Fd()) && f.IsXML() {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Quiet bool `cli:"name=q desc='structural result only, no text diff'"`
	Diff  *cli.Command
}

type ConvertConfig struct {
	*MainConfig

	Convert *cli.Command
}

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/KimNorgaard/go-dyml"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Managed bool `cli:"name=managed desc='copy input into the document instead of borrowing it'"`
	Indent  int  `cli:"name=indent desc='spaces per indentation level (default 2)'"`
	Inline  bool `cli:"name=inline desc='expand [a, b] values into child items'"`
	Flat    bool `cli:"name=flat desc='disable compact sequence folding'"`
	Color   bool `cli:"name=color desc='output with color'"`
	Verbose bool `cli:"name=v desc='log debug records to stderr'"`

	Main *cli.Command
}

func (cfg *MainConfig) parseOpts() []dyml.Option {
	var res []dyml.Option
	if cfg.Managed {
		res = append(res, dyml.Managed())
	}
	if cfg.Indent > 0 {
		res = append(res, dyml.IndentWidth(cfg.Indent))
	}
	if cfg.Inline {
		res = append(res, dyml.InlineArrays())
	}
	if cfg.Flat {
		res = append(res, dyml.CompactSequences(false))
	}
	if cfg.Verbose {
		res = append(res, dyml.WithLogger(theLog))
	}
	return res
}

// palette returns the colors to print with. Without an explicit -color
// option, color is used when w is a terminal.
func (cfg *MainConfig) palette(w io.Writer) *palette {
	if cfg.Color {
		return newPalette(true)
	}
	if cfg.Main != nil {
		for _, opt := range cfg.Main.Opts {
			if opt.Name == "color" && opt.Value != nil {
				return newPalette(false)
			}
		}
	}
	f, ok := w.(*os.File)
	if !ok {
		return newPalette(false)
	}
	return newPalette(isatty.IsTerminal(f.Fd()))
}

type palette struct {
	Index  func(string, ...any) string
	Key    func(string, ...any) string
	Value  func(string, ...any) string
	Insert func(string, ...any) string
	Delete func(string, ...any) string
}

func newPalette(enabled bool) *palette {
	return &palette{
		Index:  colorFunc(enabled, color.FgHiBlack),
		Key:    colorFunc(enabled, color.FgCyan),
		Value:  colorFunc(enabled, color.FgGreen),
		Insert: colorFunc(enabled, color.FgGreen),
		Delete: colorFunc(enabled, color.FgRed),
	}
}

func colorFunc(enabled bool, attrs ...color.Attribute) func(string, ...any) string {
	if !enabled {
		return fmt.Sprintf
	}
	c := color.New(attrs...)
	c.EnableColor()
	return c.SprintfFunc()
}

type RowsConfig struct {
	*MainConfig
	Width int `cli:"name=w desc='width of the key column'"`

	Rows *cli.Command
}

type TreeConfig struct {
	*MainConfig

	Tree *cli.Command
}

type FmtConfig struct {
	*MainConfig
	Write bool `cli:"name=w desc='write the result back to the source files'"`

	Fmt *cli.Command
}

type YAMLConfig struct {
	*MainConfig

	YAML *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

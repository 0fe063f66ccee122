// Command vref2sfm converts a vref-aligned text file into per-book SFM files.
//
// The text file carries one verse per line; line N holds the verse named by
// line N of the vref index (e.g. "GEN 1:1"). Each book is written to its own
// file containing \id, \c and \v markers.
package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/FocuswithJustin/vref2sfm/core/sfm"
	"github.com/FocuswithJustin/vref2sfm/internal/convert"
	"github.com/FocuswithJustin/vref2sfm/internal/logging"
)

const version = "0.1.0"

// CLI defines the command-line interface for vref2sfm.
type CLI struct {
	Input     string `arg:"" help:"Path to VREF-aligned text file (one verse per line, .xz accepted)" type:"path"`
	Vref      string `help:"Path to vref.txt reference file (default: ${default_vref})" default:"${default_vref}" type:"path"`
	OutputDir string `name:"output-dir" required:"" help:"Output directory for SFM files" type:"path"`
	Book      string `help:"Convert only this book (e.g., GEN, MAT)"`
	ProjectID string `name:"project-id" help:"Project ID for output directory and filenames (e.g., MalBT)"`
	Manifest  string `help:"Write a JSON run manifest to this path" type:"path"`
	Normalize string `help:"Unicode normalization applied to verse text" enum:"none,nfc,nfd" default:"none"`

	LogLevel  string `name:"log-level" help:"Log level" enum:"debug,info,warn,error" default:"info"`
	LogFormat string `name:"log-format" help:"Log format" enum:"text,json" default:"text"`

	Version kong.VersionFlag `help:"Print version information"`
}

// Config translates parsed flags into a conversion config.
func (c *CLI) Config() convert.Config {
	return convert.Config{
		InputPath:    c.Input,
		VrefPath:     c.Vref,
		OutputDir:    c.OutputDir,
		Book:         c.Book,
		ProjectID:    c.ProjectID,
		Normalize:    sfm.Normalization(c.Normalize),
		ManifestPath: c.Manifest,
		ToolVersion:  version,
	}
}

// Run configures logging and performs the conversion.
func (c *CLI) Run(ctx context.Context) error {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return err
	}
	format, err := logging.ParseFormat(c.LogFormat)
	if err != nil {
		return err
	}
	logging.InitLogger(level, format)

	_, err = convert.Run(ctx, c.Config())
	return err
}

// defaultVrefPath returns vref.txt in the parent of the executable's
// directory, e.g. skills/vref-to-usfm/vref.txt for skills/vref-to-usfm/bin/vref2sfm.
func defaultVrefPath() string {
	exe, err := os.Executable()
	if err != nil {
		return "vref.txt"
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(filepath.Dir(exe)), "vref.txt")
}

// newParser builds the kong parser for cli.
func newParser(cli *CLI, defaultVref string, options ...kong.Option) (*kong.Kong, error) {
	opts := []kong.Option{
		kong.Name("vref2sfm"),
		kong.Description("Convert VREF-aligned text to SFM/USFM format"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"default_vref": defaultVref,
			"version":      version,
		},
	}
	return kong.New(cli, append(opts, options...)...)
}

func main() {
	var cli CLI
	parser, err := newParser(&cli, defaultVrefPath())
	if err != nil {
		panic(err)
	}

	kctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = cli.Run(ctx)
	stop()
	kctx.FatalIfErrorf(err)
}

// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/ik5/audsynth/audio"
	"github.com/ik5/audsynth/formats/aiff"
	"github.com/ik5/audsynth/formats/mp3"
	"github.com/ik5/audsynth/formats/vorbis"
	"github.com/ik5/audsynth/formats/wav"
	"github.com/ik5/audsynth/internal/cli"
	"github.com/ik5/audsynth/internal/config"
)

var (
	version = "0.0.1"
)

// CLI defines the command-line interface
type CLI struct {
	Version versionFlag `short:"v" help:"Show version information"`

	Effect  EffectCmd  `cmd:"" help:"Render a one-shot sound effect."`
	Music   MusicCmd   `cmd:"" help:"Render a music loop for a mood."`
	List    ListCmd    `cmd:"" help:"List effects and moods."`
	Inspect InspectCmd `cmd:"" help:"Print level statistics of audio files."`
}

type versionFlag bool

// BeforeApply prints the version and exits before any command runs.
func (versionFlag) BeforeApply(app *kong.Kong) error {
	cli.PrintVersion(app.Stdout, version)
	app.Exit(0)
	return nil
}

// newRegistry returns the decoders inspect can read.
func newRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register(wav.Decoder{}, "wav", "wave")
	r.Register(aiff.Decoder{}, "aiff", "aif")
	r.Register(mp3.Decoder{}, "mp3")
	r.Register(vorbis.Decoder{}, "ogg", "oga")
	return r
}

func main() {
	cfg := config.Load()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Level()}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cliArgs := &CLI{}
	kctx := kong.Parse(cliArgs,
		kong.Name("audsynth"),
		kong.Description("Procedural sound effect and music generator"),
		kong.UsageOnError(),
		kong.Vars{
			"version": version,
			"rate":    fmt.Sprint(cfg.SampleRate),
			"out":     cfg.OutputDir,
			"format":  cfg.Format,
		},
		kong.Help(cli.StyledHelpPrinter("Procedural sound effect and music generator")),
		kong.BindTo(ctx, (*context.Context)(nil)),
		kong.Bind(logger, cfg, newRegistry()),
	)

	if err := kctx.Run(); err != nil {
		cli.PrintError(os.Stderr, err.Error())
		os.Exit(1)
	}
}

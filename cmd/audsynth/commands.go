// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/ik5/audsynth"
	"github.com/ik5/audsynth/analysis"
	"github.com/ik5/audsynth/audio"
	"github.com/ik5/audsynth/internal/cli"
	"github.com/ik5/audsynth/internal/config"
	"github.com/ik5/audsynth/synth"
)

// RenderFlags are shared by effect and music.
type RenderFlags struct {
	Rate   uint32 `short:"r" default:"${rate}" help:"Sample rate in Hz"`
	Seed   string `short:"s" placeholder:"N" help:"Noise seed (random when unset)"`
	Name   string `short:"n" help:"Base name of the output file"`
	Out    string `short:"o" type:"path" default:"${out}" help:"Output directory"`
	Format string `short:"f" enum:"wav,aiff" default:"${format}" help:"Container format (wav, aiff)"`
	Stdout bool   `help:"Write the file to standard output"`
}

// seed picks the flag value, then the environment, then fresh entropy.
func (f RenderFlags) seed(cfg config.Config) (uint64, error) {
	if f.Seed != "" {
		n, err := strconv.ParseUint(f.Seed, 0, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid seed %q: %w", f.Seed, err)
		}
		return n, nil
	}
	if cfg.HasSeed {
		return cfg.Seed, nil
	}
	return audsynth.NewSeed(), nil
}

func (f RenderFlags) render(ctx context.Context, logger *slog.Logger, req synth.Request, name string, stdout io.Writer) error {
	logger = logger.With("request", req.String(), "seed", req.Seed(), "format", f.Format)

	if f.Stdout {
		logger.Debug("rendering to stdout")
		return audsynth.Export(ctx, stdout, req, f.Format)
	}

	if f.Name != "" {
		name = f.Name
	}
	if err := os.MkdirAll(f.Out, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	path := filepath.Join(f.Out, audsynth.Filename(name, req, f.Format))

	start := time.Now()
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := audsynth.Export(ctx, out, req, f.Format); err != nil {
		_ = out.Close()
		_ = os.Remove(path)
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}

	logger.Info("rendered", "path", path, "frames", req.Frames(), "elapsed", time.Since(start))
	cli.PrintField(stdout, "Wrote:", path)
	cli.PrintField(stdout, "Seed:", strconv.FormatUint(req.Seed(), 10))
	return nil
}

// EffectCmd renders a sound effect.
type EffectCmd struct {
	Kind     string  `arg:"" help:"Effect kind (see list)"`
	Duration float64 `short:"d" default:"2" help:"Length in seconds"`

	RenderFlags `embed:""`
}

func (c *EffectCmd) Run(ctx context.Context, logger *slog.Logger, cfg config.Config) error {
	kind, err := synth.ParseEffect(c.Kind)
	if err != nil {
		return err
	}
	seed, err := c.seed(cfg)
	if err != nil {
		return err
	}

	req, err := synth.NewEffectRequest(kind, c.Duration, c.Rate, synth.WithSeed(seed))
	if err != nil {
		return err
	}
	return c.render(ctx, logger, req, kind.String(), os.Stdout)
}

// MusicCmd renders a music loop.
type MusicCmd struct {
	Mood     string  `arg:"" help:"Mood (see list)"`
	Duration float64 `short:"d" default:"30" help:"Length in seconds"`
	BPM      uint32  `name:"bpm" short:"b" default:"0" help:"Tempo, 0 for the mood's own"`

	RenderFlags `embed:""`
}

func (c *MusicCmd) Run(ctx context.Context, logger *slog.Logger, cfg config.Config) error {
	mood, err := synth.ParseMood(c.Mood)
	if err != nil {
		return err
	}
	seed, err := c.seed(cfg)
	if err != nil {
		return err
	}

	req, err := synth.NewMusicRequest(mood, c.Duration, c.Rate, c.BPM, synth.WithSeed(seed))
	if err != nil {
		return err
	}
	return c.render(ctx, logger, req, mood.String(), os.Stdout)
}

// ListCmd prints the catalog.
type ListCmd struct{}

func (c *ListCmd) Run() error {
	_, err := io.WriteString(os.Stdout, catalog())
	return err
}

func catalog() string {
	effects := &cli.Table{Headers: []string{"Shape", "Decay"}}
	for _, e := range synth.Effects() {
		p, _ := synth.Resolve(e)
		decay := ""
		if p.Decay > 0 {
			decay = strconv.FormatFloat(p.Decay, 'g', -1, 64)
		}
		effects.Rows = append(effects.Rows, cli.Row{Label: e.String(), Values: []string{p.Shape.String(), decay}})
	}

	moods := &cli.Table{Headers: []string{"Tempo", "Shape", "Root Hz"}}
	for _, m := range synth.Moods() {
		p, _ := synth.Resolve(m)
		moods.Rows = append(moods.Rows, cli.Row{
			Label: m.String(),
			Values: []string{
				strconv.FormatUint(uint64(p.Tempo), 10),
				p.Shape.String(),
				strconv.FormatFloat(p.BaseFreqs[0], 'f', 2, 64),
			},
		})
	}

	return cli.SectionStyle.Render("Effects") + "\n" + effects.String() + "\n" +
		cli.SectionStyle.Render("Moods") + "\n" + moods.String()
}

// InspectCmd prints level statistics of audio files.
type InspectCmd struct {
	Files   []string `arg:"" type:"existingfile" help:"Audio files (wav, aiff, mp3, ogg)"`
	BufSize int      `default:"4096" help:"Frames read per call"`
}

func (c *InspectCmd) Run(logger *slog.Logger, reg *audio.Registry) error {
	var errs []error
	for _, path := range c.Files {
		stats, err := inspect(reg, path, c.BufSize)
		if err != nil {
			logger.Warn("inspect failed", "path", path, "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", path, err))
			continue
		}
		fmt.Fprint(os.Stdout, report(path, stats))
	}
	return errors.Join(errs...)
}

func inspect(reg *audio.Registry, path string, bufSize int) (analysis.Stats, error) {
	dec, err := reg.ForPath(path)
	if err != nil {
		return analysis.Stats{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return analysis.Stats{}, fmt.Errorf("%w", err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return analysis.Stats{}, err
	}
	defer src.Close()

	return analysis.Measure(src, bufSize)
}

func report(path string, stats analysis.Stats) string {
	table := &cli.Table{Headers: []string{"Peak dBFS", "RMS dBFS", "Clipped"}}
	for ch, c := range stats.Channels {
		table.Rows = append(table.Rows, cli.Row{
			Label: fmt.Sprintf("channel %d", ch+1),
			Values: []string{
				strconv.FormatFloat(c.PeakDBFS, 'f', 1, 64),
				strconv.FormatFloat(c.RMSDBFS, 'f', 1, 64),
				strconv.FormatInt(c.Clipped, 10),
			},
		})
	}

	header := fmt.Sprintf("%s\n%s %d Hz, %d frames, %v\n",
		cli.TitleStyle.Render(filepath.Base(path)),
		cli.KeyStyle.Render("Stream:"),
		stats.SampleRate, stats.Frames, stats.Duration)

	out := header + table.String()
	if stats.Clipped() > 0 {
		out += cli.WarnStyle.Render(fmt.Sprintf("%d samples at full scale", stats.Clipped())) + "\n"
	}
	return out + "\n"
}

// SPDX-License-Identifier: EPL-2.0

// Package config loads CLI defaults from the environment.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Config holds the defaults the audsynth command starts from. Flags
// override every field.
type Config struct {
	SampleRate int
	Seed       uint64
	HasSeed    bool // false means a fresh seed per render
	OutputDir  string
	Format     string // wav or aiff
	LogLevel   string
}

// Load reads configuration from environment variables with sane defaults.
func Load() Config {
	seed, hasSeed := envUint64("AUDSYNTH_SEED")

	return Config{
		SampleRate: envInt("AUDSYNTH_SAMPLE_RATE", 44100),
		Seed:       seed,
		HasSeed:    hasSeed,
		OutputDir:  envStr("AUDSYNTH_OUTPUT_DIR", "."),
		Format:     strings.ToLower(envStr("AUDSYNTH_FORMAT", "wav")),
		LogLevel:   envStr("AUDSYNTH_LOG_LEVEL", "info"),
	}
}

// Level maps LogLevel onto slog, falling back to info.
func (c Config) Level() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return l
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func envUint64(key string) (uint64, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	n, err := strconv.ParseUint(v, 0, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

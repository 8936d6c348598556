package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/exp/rand"

	"evict"
	"evict/config"
	"evict/dataset"
)

// session is what every command needs: settings, the datasets to run, a
// seeded source and a logger.
type session struct {
	cfg      config.Config
	datasets []string
	rnd      *rand.Rand
	logger   *zap.Logger
}

func newSession(ctx *cli.Context) (*session, error) {
	cfg := config.Default()
	datasets := []string{config.DatasetStatic, config.DatasetRandom}
	if c := setIn(ctx, configFlag.Name); c != nil {
		loaded, err := config.Load(c.String(configFlag.Name))
		if err != nil {
			return nil, err
		}
		cfg = loaded
		datasets = []string{cfg.Dataset}
	}
	if c := setIn(ctx, datasetFlag.Name); c != nil {
		cfg.Dataset = c.String(datasetFlag.Name)
		datasets = []string{cfg.Dataset}
	}
	if c := setIn(ctx, pagesFlag.Name); c != nil {
		cfg.Pages = c.Int(pagesFlag.Name)
	}
	if c := setIn(ctx, seedFlag.Name); c != nil {
		cfg.Seed = c.Uint64(seedFlag.Name)
	}
	if c := setIn(ctx, logLevelFlag.Name); c != nil {
		cfg.LogLevel = c.String(logLevelFlag.Name)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger.Debug("session ready",
		zap.Strings("datasets", datasets),
		zap.Int("pages", cfg.Pages),
		zap.Uint64("seed", seed),
	)
	return &session{
		cfg:      cfg,
		datasets: datasets,
		rnd:      rand.New(rand.NewSource(seed)),
		logger:   logger,
	}, nil
}

// setIn returns the innermost context on which the flag was given, so a
// flag after the command name wins over the same flag before it.
func setIn(ctx *cli.Context, name string) *cli.Context {
	for _, c := range ctx.Lineage() {
		for _, local := range c.LocalFlagNames() {
			if local == name {
				return c
			}
		}
	}
	return nil
}

func (s *session) pageSet(mode string) (*evict.PageSet, error) {
	switch mode {
	case config.DatasetStatic:
		return dataset.Static()
	case config.DatasetRandom:
		return s.cfg.Generator().Generate(s.rnd, s.cfg.Pages)
	}
	return nil, fmt.Errorf("unknown dataset %q", mode)
}

func newLogger(level string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	cfg := zap.NewProductionConfig()
	if lvl == zapcore.DebugLevel {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}

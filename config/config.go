// Package config loads the tool settings from a .properties file.
//
// Example file:
//
//	dataset = random
//	pages = 8
//	seed = 42
//	load.min = 1
//	load.max = 500
//	reference.min = 501
//	reference.max = 1000
//	log.level = debug
package config

import (
	"fmt"
	"strings"

	"github.com/magiconair/properties"

	"evict/dataset"
)

const (
	DatasetStatic = "static"
	DatasetRandom = "random"
)

type Config struct {
	Dataset string `properties:"dataset,default=static"`
	Pages   int    `properties:"pages,default=4"`
	// Seed 0 means seed from the clock.
	Seed     uint64 `properties:"seed,default=0"`
	LoadMin  int    `properties:"load.min,default=1"`
	LoadMax  int    `properties:"load.max,default=500"`
	RefMin   int    `properties:"reference.min,default=501"`
	RefMax   int    `properties:"reference.max,default=1000"`
	LogLevel string `properties:"log.level,default=info"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	c, err := decode(properties.NewProperties())
	if err != nil {
		// the defaults are constants in the struct tags
		panic(err)
	}
	return c
}

// Load reads and validates a properties file. Missing keys take defaults.
func Load(path string) (Config, error) {
	p, err := properties.LoadFile(path, properties.UTF8)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	return fromProperties(p)
}

// Parse is Load for in-memory content.
func Parse(content string) (Config, error) {
	p, err := properties.LoadString(content)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	return fromProperties(p)
}

func fromProperties(p *properties.Properties) (Config, error) {
	c, err := decode(p)
	if err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return c, nil
}

func decode(p *properties.Properties) (Config, error) {
	var c Config
	err := p.Decode(&c)
	return c, err
}

func (c Config) Validate() error {
	switch c.Dataset {
	case DatasetStatic, DatasetRandom:
	default:
		return fmt.Errorf("dataset must be %q or %q, got %q", DatasetStatic, DatasetRandom, c.Dataset)
	}
	if c.Pages < 1 {
		return fmt.Errorf("pages must be positive, got %d", c.Pages)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return c.Generator().Validate()
}

// Generator returns the random dataset bounds.
func (c Config) Generator() dataset.Generator {
	return dataset.Generator{
		LoadMin: c.LoadMin,
		LoadMax: c.LoadMax,
		RefMin:  c.RefMin,
		RefMax:  c.RefMax,
	}
}

// Package config loads solitaire settings from YAML.
package config

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/signalnine/solitaire/game"
)

type Config struct {
	Variant string `yaml:"variant" json:"variant"`
	// Seed of the shuffle; 0 means use the current time
	Seed    int64        `yaml:"seed" json:"seed"`
	Verbose bool         `yaml:"verbose" json:"verbose"`
	Brawl   BrawlConfig  `yaml:"brawl" json:"brawl"`
	Spider  SpiderConfig `yaml:"spider" json:"spider"`
}

type BrawlConfig struct {
	MaxDeckPasses int `yaml:"max_deck_passes" json:"max_deck_passes"`
}

type SpiderConfig struct {
	Suits int `yaml:"suits" json:"suits"`
}

// Default returns the classic rules for Spider
func Default() *Config {
	c := &Config{Variant: string(game.VariantSpider)}
	c.ApplyDefaults()
	return c
}

func (c *Config) ApplyDefaults() {
	if c.Variant == "" {
		c.Variant = string(game.VariantSpider)
	}
	if c.Brawl.MaxDeckPasses == 0 {
		c.Brawl.MaxDeckPasses = game.DefaultMaxDeckPasses
	}
	if c.Spider.Suits == 0 {
		c.Spider.Suits = game.DefaultSpiderSuits
	}
}

// Validate checks the settings a game would reject at setup
func (c *Config) Validate() error {
	if _, err := game.ParseVariant(c.Variant); err != nil {
		return fmt.Errorf("variant: %w", err)
	}
	if c.Brawl.MaxDeckPasses < 1 {
		return fmt.Errorf("brawl.max_deck_passes must be at least 1, got %d", c.Brawl.MaxDeckPasses)
	}
	switch c.Spider.Suits {
	case 1, 2, 4:
	default:
		return fmt.Errorf("spider.suits must be 1, 2 or 4, got %d", c.Spider.Suits)
	}
	return nil
}

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(b)
}

// Parse decodes YAML, fills defaults and validates the result
func Parse(b []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	c.ApplyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// GameOptions turns the settings into game options. Logs go to w when
// Verbose is set.
func (c *Config) GameOptions(w io.Writer) game.Options {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return game.Options{
		Rand:          rand.New(rand.NewSource(seed)),
		Logger:        log.New(w, "solitaire: ", log.LstdFlags),
		Verbose:       c.Verbose,
		MaxDeckPasses: c.Brawl.MaxDeckPasses,
		SpiderSuits:   c.Spider.Suits,
	}
}

package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	CaseASCII   = "ascii"
	CaseUnicode = "unicode"
	CaseLocale  = "locale"
)

type Config struct {
	Case     string             `yaml:"case"`
	Locale   string             `yaml:"locale"`
	Color    bool               `yaml:"color"`
	Banner   *bool              `yaml:"banner"`
	Pipeline []*TransformConfig `yaml:"pipeline"`
}

type TransformConfig struct {
	Type    string            `yaml:"type"`
	Params  map[string]any    `yaml:"params"`
	Pattern string            `yaml:"pattern"`
	Replace string            `yaml:"replace"`
	Map     map[string]string `yaml:"map"`
}

func Default() *Config {
	return &Config{
		Case:     CaseASCII,
		Pipeline: []*TransformConfig{{Type: "CasePad"}},
	}
}

func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Case == "" {
		c.Case = CaseASCII
	}
	if len(c.Pipeline) == 0 {
		c.Pipeline = Default().Pipeline
	}
}

// ShowBanner reports whether the startup banner is printed. Unset means yes.
func (c *Config) ShowBanner() bool {
	return c.Banner == nil || *c.Banner
}

func (c *Config) Validate() error {
	switch strings.ToLower(c.Case) {
	case CaseASCII, CaseUnicode:
		if c.Locale != "" {
			return fmt.Errorf("invalid config: locale %q requires case %q", c.Locale, CaseLocale)
		}
	case CaseLocale:
		if c.Locale == "" {
			return fmt.Errorf("invalid config: case %q requires a locale", CaseLocale)
		}
	default:
		return fmt.Errorf("invalid config: unknown case %q", c.Case)
	}
	for i, stage := range c.Pipeline {
		if stage == nil || stage.Type == "" {
			return fmt.Errorf("invalid config: pipeline stage %d has no type", i)
		}
	}
	return nil
}

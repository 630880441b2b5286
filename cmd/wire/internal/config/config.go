// Package config loads the optional YAML configuration of the wire CLI.
package config

import (
	"fmt"
	"os"

	"github.com/brickingsoft/wire/codec"
	"github.com/brickingsoft/wire/pkg/bytebuffers"
	"github.com/goccy/go-yaml"
)

// Config is the content of a wire YAML file.
//
//	frame:
//	  width: 4
//	  order: big
//	  signed: false
//	log:
//	  level: info
type Config struct {
	Frame Frame `yaml:"frame"`
	Log   Log   `yaml:"log"`
}

type Frame struct {
	Width  int    `yaml:"width"`
	Order  string `yaml:"order"`
	Signed bool   `yaml:"signed"`
}

type Log struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Frame: Frame{
			Width: 4,
			Order: "big",
		},
		Log: Log{
			Level: "info",
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if _, err := cfg.Frame.LengthField(); err != nil {
		return nil, fmt.Errorf("invalid frame in %s: %w", path, err)
	}
	return cfg, nil
}

// LengthField converts the frame section, rejecting widths outside 1..8.
func (f Frame) LengthField() (field codec.LengthField, err error) {
	if f.Width < 1 || f.Width > 8 {
		err = fmt.Errorf("frame width must be in [1, 8], got %d", f.Width)
		return
	}
	order, err := bytebuffers.ParseEndianness(f.Order)
	if err != nil {
		return
	}
	field = codec.LengthField{
		Width:  f.Width,
		Order:  order,
		Signed: f.Signed,
	}
	return
}

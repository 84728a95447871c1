// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration of an SVG document load.
// It is read from TOML files, with the defaults given by [Default]
// for anything a file does not set.
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config is the configuration of a load.
type Config struct {

	// ViewportWidth is the viewport width used for percentages when the
	// document has neither a viewBox nor an absolute width.
	ViewportWidth float32 `toml:"viewport_width" default:"100"`

	// ViewportHeight is the viewport height used for percentages when the
	// document has neither a viewBox nor an absolute height.
	ViewportHeight float32 `toml:"viewport_height" default:"100"`

	// MaxDepth is the maximum element nesting depth. Deeper
	// documents fail to load.
	MaxDepth int `toml:"max_depth" default:"2192"`

	// MaxHrefChain is the maximum number of gradient href links followed
	// from one gradient. Zero or less means no limit besides the cycle check.
	MaxHrefChain int `toml:"max_href_chain" default:"64"`

	// MaxNodes is the maximum number of nodes in a document, including
	// the clones made for <use> elements. Larger documents fail to load.
	MaxNodes int `toml:"max_nodes" default:"1000000"`

	// LogLevel is the slog level name used by the command line tool:
	// debug, info, warn or error.
	LogLevel string `toml:"log_level" default:"warn"`
}

// Default returns a new configuration with default values.
func Default() *Config {
	c := &Config{}
	c.Defaults()
	return c
}

// Defaults sets the default values.
func (c *Config) Defaults() {
	c.ViewportWidth = 100
	c.ViewportHeight = 100
	c.MaxDepth = 2192
	c.MaxHrefChain = 64
	c.MaxNodes = 1000000
	c.LogLevel = "warn"
}

// WithDefaults returns a copy of the configuration in which the viewport
// size, MaxDepth and MaxNodes take their default values when they are
// zero or negative, and LogLevel when it is empty. MaxHrefChain is kept,
// since zero means no limit.
func (c *Config) WithDefaults() *Config {
	d := Default()
	n := *c
	if n.ViewportWidth <= 0 {
		n.ViewportWidth = d.ViewportWidth
	}
	if n.ViewportHeight <= 0 {
		n.ViewportHeight = d.ViewportHeight
	}
	if n.MaxDepth <= 0 {
		n.MaxDepth = d.MaxDepth
	}
	if n.MaxNodes <= 0 {
		n.MaxNodes = d.MaxNodes
	}
	if n.LogLevel == "" {
		n.LogLevel = d.LogLevel
	}
	return &n
}

// Open reads the configuration from the given TOML file,
// starting from the defaults.
func Open(filename string) (*Config, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	c, err := Read(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", filename, err)
	}
	return c, nil
}

// Read reads the configuration in TOML from the given reader,
// starting from the defaults. Unknown keys are an error.
func Read(r io.Reader) (*Config, error) {
	c := Default()
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(c); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate returns an error for values that cannot be used.
func (c *Config) Validate() error {
	switch {
	case c.ViewportWidth <= 0 || c.ViewportHeight <= 0:
		return fmt.Errorf("viewport must be positive, got %gx%g", c.ViewportWidth, c.ViewportHeight)
	case c.MaxDepth <= 0:
		return fmt.Errorf("max_depth must be positive, got %d", c.MaxDepth)
	case c.MaxNodes <= 0:
		return fmt.Errorf("max_nodes must be positive, got %d", c.MaxNodes)
	}
	return nil
}

// Save writes the configuration to the given TOML file.
func (c *Config) Save(filename string) error {
	b, err := toml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0666)
}

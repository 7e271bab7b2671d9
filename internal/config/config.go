// Package config handles configuration loading and shared data structures.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the root configuration file structure.
type Config struct {
	Attribution string  `yaml:"attribution,omitempty" json:"attribution,omitempty"`
	Layers      []Layer `yaml:"layers" json:"layers"`
	OutputDir   string  `yaml:"output_dir,omitempty" json:"output_dir,omitempty"`
	Color       string  `yaml:"color,omitempty" json:"color,omitempty"`
	RenderSize  int     `yaml:"render_size,omitempty" json:"render_size,omitempty"`
}

// Layer represents a single grid layer to trace.
type Layer struct {
	Properties map[string]interface{} `yaml:"properties,omitempty" json:"properties,omitempty"`

	Name string `yaml:"name" json:"name"`

	// Rows define the occupancy grid, top row first. '#' marks an
	// occupied cell, any other rune an empty one.
	Rows []string `yaml:"rows" json:"rows"`

	Attribution string `yaml:"attribution,omitempty" json:"attribution,omitempty"`
	Color       string `yaml:"color,omitempty" json:"color,omitempty"`
	RenderSize  int    `yaml:"render_size,omitempty" json:"render_size,omitempty"`
	Project     bool   `yaml:"project,omitempty" json:"project,omitempty"` // map grid coords to lon/lat
	Render      bool   `yaml:"render,omitempty" json:"render,omitempty"`   // also write a WebP preview
}

// Load reads and parses the YAML configuration file from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	// Per-layer fallbacks to root values
	for i := range cfg.Layers {
		layer := &cfg.Layers[i]
		if layer.Attribution == "" {
			layer.Attribution = cfg.Attribution
		}
		if layer.Color == "" {
			layer.Color = cfg.Color
		}
		if layer.RenderSize <= 0 {
			layer.RenderSize = cfg.RenderSize
		}
	}

	return &cfg, nil
}

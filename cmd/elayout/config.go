package main

import (
	"fmt"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/emrgncr/elayout/pkg/layout"
)

// config is the TOML layout definition consumed by `elayout render`.
type config struct {
	Axis    string       `koanf:"axis"`    // "vertical" (default) or "horizontal"
	Spacing string       `koanf:"spacing"` // spacing policy, default "pack-center"
	Region  regionConfig `koanf:"region"`
	Items   []itemConfig `koanf:"items"`
}

type regionConfig struct {
	X      int `koanf:"x"`
	Y      int `koanf:"y"`
	Width  int `koanf:"width"`
	Height int `koanf:"height"`
}

type itemConfig struct {
	Name       string `koanf:"name"`
	Constraint string `koanf:"constraint"` // wire-format text; empty = intrinsic default

	// Intrinsic sizes stand in for the host's size queries.
	PreferredWidth  float64 `koanf:"preferred_width"`
	PreferredHeight float64 `koanf:"preferred_height"`
	MinimumWidth    float64 `koanf:"minimum_width"`
	MinimumHeight   float64 `koanf:"minimum_height"`
}

func loadConfig(path string) (config, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return config{}, fmt.Errorf("load %s: %w", path, err)
	}

	cfg := config{Axis: "vertical", Spacing: "pack-center"}
	if err := k.Unmarshal("", &cfg); err != nil {
		return config{}, fmt.Errorf("parse %s: %w", path, err)
	}

	if cfg.Region.Width <= 0 || cfg.Region.Height <= 0 {
		return config{}, fmt.Errorf("%s: region.width and region.height must be positive", path)
	}
	if len(cfg.Items) == 0 {
		return config{}, fmt.Errorf("%s: at least one [[items]] entry is required", path)
	}
	for i, item := range cfg.Items {
		if item.Name == "" {
			return config{}, fmt.Errorf("%s: items[%d] has no name", path, i)
		}
	}
	return cfg, nil
}

func parseAxis(s string) (layout.Axis, error) {
	switch s {
	case "vertical":
		return layout.Vertical, nil
	case "horizontal":
		return layout.Horizontal, nil
	default:
		return 0, fmt.Errorf("unknown axis %q (want vertical or horizontal)", s)
	}
}

func parseSpacing(s string) (layout.Spacing, error) {
	switch s {
	case "space-around":
		return layout.SpaceAround, nil
	case "space-between":
		return layout.SpaceBetween, nil
	case "pack-start":
		return layout.PackStart, nil
	case "pack-center":
		return layout.PackCenter, nil
	case "pack-end":
		return layout.PackEnd, nil
	default:
		return 0, fmt.Errorf("unknown spacing %q", s)
	}
}

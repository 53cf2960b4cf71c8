package renderer

import (
	"errors"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if err := config.Validate(); err != nil {
		t.Fatalf("Expected default config to be valid, got %v", err)
	}
	if config.TileSize != 64 {
		t.Errorf("Expected default tile size 64, got %d", config.TileSize)
	}
	if config.SampleCount != 4 {
		t.Errorf("Expected default sample count 4, got %d", config.SampleCount)
	}
	if config.Backend != "parallel" {
		t.Errorf("Expected default backend parallel, got %s", config.Backend)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name     string
		modify   func(c *Config)
		expected error
	}{
		{"valid", func(c *Config) {}, nil},
		{"zero width", func(c *Config) { c.Width = 0 }, ErrInvalidDimensions},
		{"negative height", func(c *Config) { c.Height = -4 }, ErrInvalidDimensions},
		{"zero samples", func(c *Config) { c.SampleCount = 0 }, ErrInvalidSampleCount},
		{"negative reflection limit", func(c *Config) { c.ReflectionLimit = -1 }, ErrInvalidReflectionLimit},
		{"zero reflection limit", func(c *Config) { c.ReflectionLimit = 0 }, nil},
		{"zero tile size", func(c *Config) { c.TileSize = 0 }, ErrInvalidTileSize},
		{"unknown backend", func(c *Config) { c.Backend = "gpu" }, ErrUnknownBackend},
		{"serial backend", func(c *Config) { c.Backend = "serial" }, nil},
		{"auto workers", func(c *Config) { c.NumWorkers = 0 }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.modify(&config)

			err := config.Validate()
			if tt.expected == nil {
				if err != nil {
					t.Errorf("Expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, err)
			}
		})
	}
}

func TestConfigMerge(t *testing.T) {
	base := DefaultConfig()

	merged := base.Merge(scene.SamplingConfig{Width: 320, Height: 0, SampleCount: 2, ReflectionLimit: 0})

	if merged.Width != 320 {
		t.Errorf("Expected width 320, got %d", merged.Width)
	}
	if merged.Height != base.Height {
		t.Errorf("Expected height to stay %d, got %d", base.Height, merged.Height)
	}
	if merged.SampleCount != 2 {
		t.Errorf("Expected sample count 2, got %d", merged.SampleCount)
	}
	if merged.ReflectionLimit != 0 {
		t.Errorf("Expected reflection limit 0, got %d", merged.ReflectionLimit)
	}
	if merged.Backend != base.Backend || merged.TileSize != base.TileSize {
		t.Errorf("Expected renderer settings to be kept, got %+v", merged)
	}
	if base.Width != 640 {
		t.Errorf("Expected merge to leave the receiver unchanged, got width %d", base.Width)
	}
}

func TestConfigTracingOptions(t *testing.T) {
	sc := scene.NewSphereScene()
	config := DefaultConfig()
	config.SampleCount = 7
	config.ReflectionLimit = 2

	options := config.TracingOptions(sc)
	if options.SampleCount != 7 || options.ReflectionLimit != 2 {
		t.Errorf("Expected 7 samples and limit 2, got %+v", options)
	}
	if options.Scene != sc {
		t.Error("Expected options to reference the scene")
	}
}

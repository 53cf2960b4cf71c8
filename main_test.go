package main

import (
	"errors"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/log"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

func TestMain(m *testing.M) {
	log.SetSink(io.Discard)
	os.Exit(m.Run())
}

func TestRenderCommand(t *testing.T) {
	tests := []struct {
		name      string
		sceneArgs []string
		backend   string
	}{
		{"default scene", []string{"default"}, "parallel"},
		{"sphere scene", []string{"sphere"}, "serial"},
		{"mirrors scene", []string{"mirrors"}, "parallel"},
		{"no scene argument", nil, "serial"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := filepath.Join(t.TempDir(), "frame.png")
			args := []string{"whitted", "render",
				"--width", "16", "--height", "12", "--spp", "2", "--tile-size", "5",
				"--backend", tt.backend, "--out", out}
			args = append(args, tt.sceneArgs...)

			if err := newApp().Run(args); err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			f, err := os.Open(out)
			if err != nil {
				t.Fatalf("Expected output file, got %v", err)
			}
			defer f.Close()

			img, err := png.Decode(f)
			if err != nil {
				t.Fatalf("Expected valid png, got %v", err)
			}
			if img.Bounds().Dx() != 16 || img.Bounds().Dy() != 12 {
				t.Errorf("Expected 16x12 frame, got %v", img.Bounds())
			}
		})
	}
}

func TestRenderCommand_UsesSceneSampling(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frame.png")

	// The sphere scene recommends 320x240
	if err := newApp().Run([]string{"whitted", "render", "--spp", "1", "--out", out, "sphere"}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("Expected output file, got %v", err)
	}
	defer f.Close()

	config, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("Expected valid png, got %v", err)
	}
	if config.Width != 320 || config.Height != 240 {
		t.Errorf("Expected 320x240 frame, got %dx%d", config.Width, config.Height)
	}
}

func TestRenderCommand_Errors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected error
	}{
		{"unknown scene", []string{"nonexistent"}, scene.ErrUnknownScene},
		{"empty scene name", []string{""}, scene.ErrUnknownScene},
		{"zero samples", []string{"--spp", "0", "sphere"}, renderer.ErrInvalidSampleCount},
		{"negative reflections", []string{"--reflections", "-1", "sphere"}, renderer.ErrInvalidReflectionLimit},
		{"zero width", []string{"--width", "0", "sphere"}, renderer.ErrInvalidDimensions},
		{"unknown backend", []string{"--backend", "opencl", "sphere"}, renderer.ErrUnknownBackend},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := filepath.Join(t.TempDir(), "frame.png")
			args := append([]string{"whitted", "render", "--out", out}, tt.args...)

			err := newApp().Run(args)
			if !errors.Is(err, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, err)
			}
			if _, statErr := os.Stat(out); statErr == nil {
				t.Error("Expected no output file on error")
			}
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	defer log.SetLevel(log.Notice)

	tests := []struct {
		name string
		args []string
	}{
		{"version", []string{"whitted", "--version"}},
		{"help", []string{"whitted", "--help"}},
		{"verbose scenes", []string{"whitted", "-v", "scenes"}},
		{"very verbose backends", []string{"whitted", "-vv", "backends"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newApp()
			app.Writer = io.Discard
			if err := app.Run(tt.args); err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestRenderCommand_CameraFlags(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frame.png")
	args := []string{"whitted", "render", "--width", "8", "--height", "6", "--spp", "1",
		"--yaw", "15", "--pitch", "-5", "--dolly", "0.5", "--out", out, "sphere"}

	if err := newApp().Run(args); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("Expected output file, got %v", err)
	}
}

func TestListCommands(t *testing.T) {
	for _, command := range []string{"scenes", "backends"} {
		t.Run(command, func(t *testing.T) {
			if err := newApp().Run([]string{"whitted", "-v", command}); err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
	log.SetLevel(log.Notice)
}

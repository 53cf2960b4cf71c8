package scene

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownScene is returned by Create for IDs that are not registered
var ErrUnknownScene = errors.New("scene: unknown scene")

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	Name        string `json:"name"`        // Display name
	Description string `json:"description"` // Optional description
}

type builtinScene struct {
	info   SceneInfo
	create func() *Scene
}

var builtinScenes = map[string]builtinScene{
	"default": {
		info: SceneInfo{
			ID:          "default",
			Name:        "Default Scene",
			Description: "Two shiny spheres on a checkerboard floor with four colored lights",
		},
		create: NewDefaultScene,
	},
	"sphere": {
		info: SceneInfo{
			ID:          "sphere",
			Name:        "White Sphere",
			Description: "Single matte sphere under one overhead light",
		},
		create: NewSphereScene,
	},
	"mirrors": {
		info: SceneInfo{
			ID:          "mirrors",
			Name:        "Parallel Mirrors",
			Description: "Sphere between two mirrors facing each other",
		},
		create: NewMirrorsScene,
	},
}

// ListScenes returns the built-in scenes sorted by ID
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtinScenes))
	for _, s := range builtinScenes {
		scenes = append(scenes, s.info)
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// Create builds the built-in scene with the given ID
func Create(id string) (*Scene, error) {
	s, ok := builtinScenes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, id)
	}
	return s.create(), nil
}

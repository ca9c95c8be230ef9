package scene

import (
	"fmt"
	"sort"
	"strings"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id"`          // Name used to load the scene
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"`
}

type builtin struct {
	description string
	build       func() *Scene
}

var builtins = map[string]builtin{
	"cornell":    {"Cornell box with a rotated box, a glass sphere and a ceiling light", NewCornellScene},
	"quad-light": {"A single square light over a diffuse floor", NewQuadLightScene},
	"spheres":    {"Spheres and a pyramid on a checkered ground with depth of field", NewSpheresScene},
}

// ListScenes returns the built-in scenes sorted by name
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtins))
	for id, b := range builtins {
		scenes = append(scenes, SceneInfo{
			ID:          id,
			DisplayName: titleCase(id),
			Description: b.description,
		})
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// Load builds the named scene
func Load(name string) (*Scene, error) {
	b, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %s)", name, strings.Join(sceneIDs(), ", "))
	}
	return b.build(), nil
}

func sceneIDs() []string {
	var ids []string
	for _, info := range ListScenes() {
		ids = append(ids, info.ID)
	}
	return ids
}

// titleCase converts an identifier like "quad-light" into "Quad Light"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}

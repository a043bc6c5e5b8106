package scene

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"strings"
)

// ErrUnknownScene is returned when a scene id is not in the catalog
var ErrUnknownScene = errors.New("unknown scene")

// Builder populates a scene. It runs once, single-threaded, before rendering.
type Builder func(random *rand.Rand, opts Options) (*Scene, error)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Optional description
	Group       string `json:"group"`       // Grouping category
}

// SceneGroup represents a group of related scenes
type SceneGroup struct {
	Name   string      `json:"name"`
	Scenes []SceneInfo `json:"scenes"`
}

type catalogEntry struct {
	info  SceneInfo
	build Builder
}

const (
	groupClassic = "Classic Scenes"
	groupDebug   = "Debug Scenes"
)

var catalog = []catalogEntry{
	{SceneInfo{ID: "random-spheres", Description: "Ground sphere covered in small random spheres, plus glass, diffuse and emissive hero spheres", Group: groupClassic}, NewRandomSpheresScene},
	{SceneInfo{ID: "dof-spheres-glass", DisplayName: "Depth of Field Glass", Description: "Three spheres with nested glass shells and a strong depth of field", Group: groupClassic}, NewDOFSpheresGlassScene},
	{SceneInfo{ID: "basic", Description: "Single gray sphere on a ground sphere", Group: groupClassic}, NewBasicScene},
	{SceneInfo{ID: "sphere-grid", Description: "Grid of rainbow-colored metallic spheres", Group: groupClassic}, NewSphereGridScene},
	{SceneInfo{ID: "triangle-mesh", Description: "Rotated box, pyramid and icosahedron meshes on a triangle floor", Group: groupClassic}, NewTriangleMeshScene},
	{SceneInfo{ID: "globe", Description: "Textured sphere lit by a textured light", Group: groupClassic}, NewGlobeScene},
	{SceneInfo{ID: "cornell", Description: "Single triangle colored by which face the camera sees", Group: groupDebug}, NewCornellScene},
}

func init() {
	for i := range catalog {
		if catalog[i].info.DisplayName == "" {
			catalog[i].info.DisplayName = titleCase(catalog[i].info.ID)
		}
	}
}

// ListScenes returns every built-in scene sorted by display name
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, len(catalog))
	for i, entry := range catalog {
		scenes[i] = entry.info
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].DisplayName < scenes[j].DisplayName
	})
	return scenes
}

// ListSceneGroups returns the scenes grouped by category, classic scenes first
func ListSceneGroups() []SceneGroup {
	groupMap := make(map[string][]SceneInfo)
	for _, info := range ListScenes() {
		groupMap[info.Group] = append(groupMap[info.Group], info)
	}

	var groupNames []string
	for groupName := range groupMap {
		if groupName != groupClassic {
			groupNames = append(groupNames, groupName)
		}
	}
	sort.Strings(groupNames)

	var groups []SceneGroup
	if classic, exists := groupMap[groupClassic]; exists {
		groups = append(groups, SceneGroup{Name: groupClassic, Scenes: classic})
	}
	for _, groupName := range groupNames {
		groups = append(groups, SceneGroup{Name: groupName, Scenes: groupMap[groupName]})
	}
	return groups
}

// Lookup returns the builder registered under id
func Lookup(id string) (Builder, SceneInfo, error) {
	for _, entry := range catalog {
		if entry.info.ID == id {
			return entry.build, entry.info, nil
		}
	}
	return nil, SceneInfo{}, fmt.Errorf("%w: %q", ErrUnknownScene, id)
}

// Build looks up id and runs its builder
func Build(id string, random *rand.Rand, opts Options) (*Scene, error) {
	build, _, err := Lookup(id)
	if err != nil {
		return nil, err
	}
	s, err := build(random, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to build scene %q: %w", id, err)
	}
	return s, nil
}

// titleCase converts an id-style string to title case
// e.g., "random-spheres" -> "Random Spheres"
func titleCase(s string) string {
	// Replace hyphens and underscores with spaces
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	// Title case each word
	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}

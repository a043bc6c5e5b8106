package scene

import (
	"errors"
	"math/rand"
	"testing"
)

func TestTitleCase(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"random-spheres", "Random Spheres"},
		{"sphere_grid", "Sphere Grid"},
		{"my-custom-scene", "My Custom Scene"},
		{"simple", "Simple"},
		{"UPPER-case", "Upper Case"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			result := titleCase(tc.input)
			if result != tc.expected {
				t.Errorf("titleCase(%q) = %q, want %q", tc.input, result, tc.expected)
			}
		})
	}
}

func TestListScenes(t *testing.T) {
	scenes := ListScenes()
	if len(scenes) != len(catalog) {
		t.Fatalf("Expected %d scenes, got %d", len(catalog), len(scenes))
	}

	seen := make(map[string]bool)
	for i, info := range scenes {
		if info.DisplayName == "" {
			t.Errorf("Scene %q has no display name", info.ID)
		}
		if seen[info.ID] {
			t.Errorf("Duplicate scene id %q", info.ID)
		}
		seen[info.ID] = true
		if i > 0 && scenes[i-1].DisplayName > info.DisplayName {
			t.Errorf("Scenes not sorted: %q before %q", scenes[i-1].DisplayName, info.DisplayName)
		}
	}

	for _, id := range []string{"random-spheres", "dof-spheres-glass", "cornell"} {
		if !seen[id] {
			t.Errorf("Expected scene %q in catalog", id)
		}
	}
}

func TestListSceneGroups(t *testing.T) {
	groups := ListSceneGroups()
	if len(groups) == 0 {
		t.Fatal("Expected at least one group")
	}
	if groups[0].Name != groupClassic {
		t.Errorf("Expected first group %q, got %q", groupClassic, groups[0].Name)
	}

	total := 0
	for _, group := range groups {
		for _, info := range group.Scenes {
			if info.Group != group.Name {
				t.Errorf("Scene %q in group %q has Group %q", info.ID, group.Name, info.Group)
			}
		}
		total += len(group.Scenes)
	}
	if total != len(catalog) {
		t.Errorf("Expected %d grouped scenes, got %d", len(catalog), total)
	}
}

func TestLookupUnknownScene(t *testing.T) {
	_, _, err := Lookup("no-such-scene")
	if !errors.Is(err, ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}

	_, err = Build("no-such-scene", rand.New(rand.NewSource(1)), Options{})
	if !errors.Is(err, ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene from Build, got %v", err)
	}
}

func TestLookupDisplayName(t *testing.T) {
	_, info, err := Lookup("sphere-grid")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if info.DisplayName != "Sphere Grid" {
		t.Errorf("Expected display name 'Sphere Grid', got %q", info.DisplayName)
	}

	_, info, err = Lookup("dof-spheres-glass")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if info.DisplayName != "Depth of Field Glass" {
		t.Errorf("Expected explicit display name to be kept, got %q", info.DisplayName)
	}
}

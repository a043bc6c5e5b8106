package material

import (
	"errors"
	"testing"

	"github.com/df07/go-scanline-raytracer/pkg/core"
)

func TestRegistry_AddAndGet(t *testing.T) {
	registry := NewRegistry()
	gray := NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	glass := NewDielectric(1.5)

	grayID := registry.Add(gray)
	glassID := registry.Add(glass)

	if grayID != 0 || glassID != 1 {
		t.Errorf("Expected sequential ids 0 and 1, got %d and %d", grayID, glassID)
	}
	if registry.Len() != 2 {
		t.Errorf("Expected 2 materials, got %d", registry.Len())
	}

	got, err := registry.Get(glassID)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got != Material(glass) {
		t.Errorf("Expected glass material, got %T", got)
	}
}

func TestRegistry_UnknownID(t *testing.T) {
	registry := NewRegistry()
	registry.Add(NewLambertian(core.NewVec3(1, 1, 1)))

	for _, id := range []int{-1, 1, 42} {
		if _, err := registry.Get(id); !errors.Is(err, ErrUnknownMaterial) {
			t.Errorf("Get(%d): expected ErrUnknownMaterial, got %v", id, err)
		}
	}
}

func TestRegistry_MustGetPanicsWithError(t *testing.T) {
	registry := NewRegistry()

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrUnknownMaterial) {
			t.Errorf("Expected panic with ErrUnknownMaterial, got %v", r)
		}
	}()
	registry.MustGet(3)
}

func TestRegistry_FrozenRejectsAdd(t *testing.T) {
	registry := NewRegistry()
	registry.Add(NewLambertian(core.NewVec3(1, 1, 1)))
	registry.Freeze()

	if !registry.Frozen() {
		t.Fatal("Expected registry to be frozen")
	}

	defer func() {
		if recover() == nil {
			t.Error("Expected Add on frozen registry to panic")
		}
	}()
	registry.Add(NewDielectric(1.5))
}

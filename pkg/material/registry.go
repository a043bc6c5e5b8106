package material

import (
	"errors"
	"fmt"
)

// ErrUnknownMaterial is returned when a material id is not in the registry
var ErrUnknownMaterial = errors.New("unknown material")

// Registry maps small integer ids to materials. Shapes store the id instead
// of the material. Materials are appended during scene setup; after Freeze
// the registry is read-only and safe to share between workers.
type Registry struct {
	materials []Material
	frozen    bool
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{}
}

// Add appends a material and returns its id. Adding to a frozen registry or
// adding a nil material is a programming error and panics.
func (r *Registry) Add(m Material) int {
	if r.frozen {
		panic("material: Add called on frozen registry")
	}
	if m == nil {
		panic("material: Add called with nil material")
	}
	r.materials = append(r.materials, m)
	return len(r.materials) - 1
}

// Freeze makes the registry read-only
func (r *Registry) Freeze() {
	r.frozen = true
}

// Frozen reports whether Freeze has been called
func (r *Registry) Frozen() bool {
	return r.frozen
}

// Len returns the number of registered materials
func (r *Registry) Len() int {
	return len(r.materials)
}

// Get returns the material for id
func (r *Registry) Get(id int) (Material, error) {
	if id < 0 || id >= len(r.materials) {
		return nil, fmt.Errorf("%w: id %d (registry has %d)", ErrUnknownMaterial, id, len(r.materials))
	}
	return r.materials[id], nil
}

// MustGet returns the material for id and panics if it is not registered.
// Scenes validate their ids before rendering, so a miss here is a bug.
func (r *Registry) MustGet(id int) Material {
	m, err := r.Get(id)
	if err != nil {
		panic(err)
	}
	return m
}

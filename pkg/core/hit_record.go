package core

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point      Vec3    // Point of intersection
	Normal     Vec3    // Unit surface normal, facing against the incoming ray
	T          float64 // Parameter t along the ray
	FrontFace  bool    // Whether ray hit the front face
	MaterialID int     // Handle into the material registry
	U, V       float64 // Surface texture coordinates
}

// SetFaceNormal sets the normal vector and determines front/back face.
// outwardNormal must be unit length.
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

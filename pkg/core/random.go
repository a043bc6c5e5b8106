package core

import (
	"math/rand"
)

// RandomRange returns a uniform float64 in [min, max)
func RandomRange(random *rand.Rand, min, max float64) float64 {
	return min + (max-min)*random.Float64()
}

// RandomVec3 returns a vector with each component uniform in [min, max)
func RandomVec3(random *rand.Rand, min, max float64) Vec3 {
	return NewVec3(
		RandomRange(random, min, max),
		RandomRange(random, min, max),
		RandomRange(random, min, max),
	)
}

// RandomColor returns a color with each channel uniform in [0, 1)
func RandomColor(random *rand.Rand) Vec3 {
	return RandomVec3(random, 0, 1)
}

// RandomInUnitSphere generates a random point strictly inside the unit sphere
func RandomInUnitSphere(random *rand.Rand) Vec3 {
	for {
		// Generate random point in [-1,1]³ cube
		p := RandomVec3(random, -1, 1)
		// Accept if inside unit sphere
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}

// RandomInHemisphere generates a random point inside the unit sphere,
// mirrored into the hemisphere around normal
func RandomInHemisphere(normal Vec3, random *rand.Rand) Vec3 {
	inUnitSphere := RandomInUnitSphere(random)
	if inUnitSphere.Dot(normal) > 0 {
		return inUnitSphere
	}
	return inUnitSphere.Negate()
}

// RandomInUnitDisk generates a random point in a unit disk (for depth of field)
func RandomInUnitDisk(random *rand.Rand) Vec3 {
	for {
		// Generate random point in [-1,1] x [-1,1] square
		p := NewVec3(2*random.Float64()-1, 2*random.Float64()-1, 0)
		// Accept if inside unit disk
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}

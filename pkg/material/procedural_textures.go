package material

import (
	"github.com/df07/go-scanline-raytracer/pkg/core"
)

// NewCheckerboardTexture creates a procedural checkerboard pattern texture
func NewCheckerboardTexture(width, height, checkSize int, color1, color2 core.Vec3) *ImageTexture {
	checkSize = max(1, checkSize)
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			// Alternate colors based on check position
			color := color2
			if (x/checkSize+y/checkSize)%2 == 0 {
				color = color1
			}
			pixels[y*width+x] = color
		}
	}

	return NewImageTexture(width, height, pixels)
}

// NewUVDebugTexture creates a texture showing UV coordinates as colors
// U maps to red channel, V maps to green channel
func NewUVDebugTexture(width, height int) *ImageTexture {
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			u := float64(x) / float64(max(1, width-1))
			v := 1 - float64(y)/float64(max(1, height-1))
			pixels[y*width+x] = core.NewVec3(u, v, 0.0)
		}
	}

	return NewImageTexture(width, height, pixels)
}

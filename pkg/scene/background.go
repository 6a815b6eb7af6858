package scene

import (
	"image"
	"math"

	"github.com/tiwylli/PBR-Engine-sub000/pkg/core"
)

// Background supplies radiance for rays that escape the scene
type Background interface {
	Evaluate(direction core.Vec3) core.Vec3
}

// UniformBackground is a constant environment color
type UniformBackground struct {
	Color core.Vec3
}

// NewUniformBackground creates a constant background
func NewUniformBackground(color core.Vec3) *UniformBackground {
	return &UniformBackground{Color: color}
}

// Evaluate returns the constant color
func (b *UniformBackground) Evaluate(direction core.Vec3) core.Vec3 {
	return b.Color
}

// GradientBackground blends between a bottom and top color by the
// vertical component of the ray direction
type GradientBackground struct {
	Top    core.Vec3
	Bottom core.Vec3
}

// NewGradientBackground creates a vertical gradient background
func NewGradientBackground(top, bottom core.Vec3) *GradientBackground {
	return &GradientBackground{Top: top, Bottom: bottom}
}

// Evaluate blends bottom to top over the direction's y component
func (b *GradientBackground) Evaluate(direction core.Vec3) core.Vec3 {
	unit := direction.Normalize()
	t := 0.5 * (unit.Y + 1.0)
	return b.Bottom.Multiply(1.0 - t).Add(b.Top.Multiply(t))
}

// EquirectBackground looks radiance up in a lat-long environment map
// with bilinear filtering
type EquirectBackground struct {
	width  int
	height int
	pixels []core.Vec3 // Row-major, top row first
}

// NewEquirectBackground creates an environment map from raw pixels
func NewEquirectBackground(width, height int, pixels []core.Vec3) *EquirectBackground {
	return &EquirectBackground{width: width, height: height, pixels: pixels}
}

// NewEquirectFromImage converts a decoded LDR image into an
// environment map (no gamma handling; inputs are treated as linear)
func NewEquirectFromImage(img image.Image) *EquirectBackground {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]core.Vec3, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			pixels[y*w+x] = core.NewVec3(
				float64(r)/0xffff,
				float64(g)/0xffff,
				float64(b)/0xffff,
			)
		}
	}
	return NewEquirectBackground(w, h, pixels)
}

// Evaluate maps the direction to spherical coordinates and performs a
// bilinear lookup
func (b *EquirectBackground) Evaluate(direction core.Vec3) core.Vec3 {
	unit := direction.Normalize()

	u := (math.Atan2(unit.Z, unit.X) + math.Pi) / (2 * math.Pi)
	v := math.Acos(max(-1.0, min(1.0, unit.Y))) / math.Pi

	fx := u*float64(b.width) - 0.5
	fy := v*float64(b.height) - 0.5
	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tx := fx - float64(x0)
	ty := fy - float64(y0)

	c00 := b.texel(x0, y0)
	c10 := b.texel(x0+1, y0)
	c01 := b.texel(x0, y0+1)
	c11 := b.texel(x0+1, y0+1)

	top := c00.Lerp(c10, tx)
	bottom := c01.Lerp(c11, tx)
	return top.Lerp(bottom, ty)
}

// texel fetches a pixel with horizontal wrap and vertical clamp
func (b *EquirectBackground) texel(x, y int) core.Vec3 {
	x = ((x % b.width) + b.width) % b.width
	if y < 0 {
		y = 0
	}
	if y >= b.height {
		y = b.height - 1
	}
	return b.pixels[y*b.width+x]
}

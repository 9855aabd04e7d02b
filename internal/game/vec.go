package game

import "math"

// Vec is a screen-space position.
type Vec struct {
	X, Y float64
}

// Clamp keeps a footprint-sized sprite at p fully on a width×height screen.
// Clamping an in-bounds position returns it unchanged.
func Clamp(p Vec, width, height, footprint float64) Vec {
	return Vec{
		X: math.Max(0, math.Min(p.X, width-footprint)),
		Y: math.Max(0, math.Min(p.Y, height-footprint)),
	}
}

// Near reports whether a and b are within r of each other on both axes
// (square, not circular, proximity).
func Near(a, b Vec, r float64) bool {
	return math.Abs(a.X-b.X) <= r && math.Abs(a.Y-b.Y) <= r
}

// RandomPoint returns an integer-valued point in [0,width]×[0,height],
// both bounds inclusive. It is not clamped to any sprite footprint.
func RandomPoint(rng Rand, width, height float64) Vec {
	return Vec{
		X: float64(rng.Intn(int(width) + 1)),
		Y: float64(rng.Intn(int(height) + 1)),
	}
}

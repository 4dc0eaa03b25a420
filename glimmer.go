package glimmer

import (
	"image/color"
	"math"
)

// Steps is the number of simulation sub-steps per unit of time. A firefly
// with speed v advances its phase by v/Steps each sub-step.
const Steps = 480

// Vec2 is a 2D vector used for positions, offsets, sizes, and directions
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Mul returns v scaled by k.
func (v Vec2) Mul(k float64) Vec2 { return Vec2{v.X * k, v.Y * k} }

// Div returns v scaled by 1/k.
func (v Vec2) Div(k float64) Vec2 { return Vec2{v.X / k, v.Y / k} }

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

// Det returns the 2D cross product (determinant) of v and o. Its sign
// tells which side of v the vector o lies on.
func (v Vec2) Det(o Vec2) float64 { return v.X*o.Y - v.Y*o.X }

// Rot returns v rotated by a radians.
func (v Vec2) Rot(a float64) Vec2 {
	sin, cos := math.Sincos(a)
	return Vec2{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos}
}

// Norm returns the Euclidean length of v.
func (v Vec2) Norm() float64 { return math.Hypot(v.X, v.Y) }

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// Scaled returns the color with all four components multiplied by k, the
// premultiplied fade used for glow falloff.
func (c Color) Scaled(k float64) Color {
	return Color{c.R * k, c.G * k, c.B * k, c.A * k}
}

// Lightened returns the color pulled halfway toward white, used as the
// selection highlight.
func (c Color) Lightened() Color {
	return Color{1 - (1-c.R)/2, 1 - (1-c.G)/2, 1 - (1-c.B)/2, c.A}
}

func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

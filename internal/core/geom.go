// Package core provides fundamental types and utilities for the road simulation.
// It contains no external dependencies (especially no Bubble Tea) to keep the
// simulation logic pure and testable.
package core

import (
	"errors"
	"math"
)

// ErrWrapDomain is the panic value of Wrap when the modulus is not positive.
var ErrWrapDomain = errors.New("core: wrap modulus must be positive")

// Vector is a 2D point or velocity in field pixels.
type Vector struct {
	X, Y float64
}

// Size is a width/height pair in field pixels.
type Size struct {
	Width, Height float64
}

// Add returns the component-wise sum of two vectors.
func Add(a, b Vector) Vector {
	return Vector{X: a.X + b.X, Y: a.Y + b.Y}
}

// Wrap returns n modulo m folded into [0, m), even for negative n.
// Panics with ErrWrapDomain if m <= 0.
func Wrap(n, m float64) float64 {
	if !(m > 0) {
		panic(ErrWrapDomain)
	}
	return math.Mod(math.Mod(n, m)+m, m)
}

// Rect represents an axis-aligned rectangle in field pixels.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Centered returns the rectangle of the given size centered at c.
func Centered(c Vector, s Size) Rect {
	return Rect{X: c.X - s.Width/2, Y: c.Y - s.Height/2, W: s.Width, H: s.Height}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

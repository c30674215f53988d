package geometry

import "math"

// Point represents a position in location coordinates, in metres.
type Point struct {
	X float64 // X coordinate of the point.
	Y float64 // Y coordinate of the point.
}

// Vector represents a direction in location coordinates.
type Vector struct {
	X float64 // X component of the direction.
	Y float64 // Y component of the direction.
}

// Translated returns the point shifted by (dX, dY).
func (p Point) Translated(dX, dY float64) Point {
	return Point{X: p.X + dX, Y: p.Y + dY}
}

// IsFinite reports whether neither coordinate is NaN or infinite.
func (p Point) IsFinite() bool {
	return isFinite(p.X) && isFinite(p.Y)
}

// IsZero reports whether both components are zero.
func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// IsFinite reports whether neither component is NaN or infinite.
func (v Vector) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

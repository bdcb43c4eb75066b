package orbitmap

import (
	"math"

	"github.com/gonum/floats"
)

const (
	deg2rad = math.Pi / 180
)

// Vector is a position in the inertial frame centered on the reference body, in km.
type Vector [3]float64

// Norm returns the Euclidean norm of the vector.
func (v Vector) Norm() float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// Equals returns whether both vectors are within tol of each other on every axis.
func (v Vector) Equals(o Vector, tol float64) bool {
	return floats.EqualApprox(v[:], o[:], tol)
}

// Deg2rad converts degrees to radians, and enforced only positive numbers.
func Deg2rad(a float64) float64 {
	if a < 0 {
		a += 360
	}
	return math.Mod(a*deg2rad, 2*math.Pi)
}

// Rad2deg converts radians to degrees, and enforced only positive numbers.
func Rad2deg(a float64) float64 {
	if a < 0 {
		a += 2 * math.Pi
	}
	return math.Mod(a/deg2rad, 360)
}

// linspace returns n evenly spaced values over [0, span], or [0, span) when
// endpoint is false.
func linspace(span float64, n int, endpoint bool) []float64 {
	if !endpoint {
		// Drop the endpoint of one more step.
		return floats.Span(make([]float64, n+1), 0, span)[:n]
	}
	if n == 1 {
		return []float64{0}
	}
	return floats.Span(make([]float64, n), 0, span)
}

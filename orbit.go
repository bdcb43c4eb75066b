package orbitmap

import (
	"fmt"
	"math"
)

// Elements defines a closed orbit via its classical orbital elements.
// The distance unit is that of a (km with the default catalog) and angles are in radians.
type Elements struct {
	a, e, i, Ω, ω, ν float64
}

// NewElementsFromOE creates the elements after checking they describe an ellipse.
// WARNING: Angles must be in degrees not radian.
func NewElementsFromOE(a, e, i, Ω, ω, ν float64) (Elements, error) {
	for _, angle := range []struct {
		name string
		val  float64
	}{{"inclination", i}, {"RAAN", Ω}, {"argument of periapsis", ω}, {"true anomaly", ν}} {
		if math.IsNaN(angle.val) || math.IsInf(angle.val, 0) {
			return Elements{}, invalid(angle.name, angle.val, "must be finite")
		}
	}
	el := Elements{a, e, Deg2rad(i), Deg2rad(Ω), Deg2rad(ω), Deg2rad(ν)}
	if err := el.Validate(); err != nil {
		return Elements{}, err
	}
	return el, nil
}

// Validate returns an *InvalidInputError if the elements do not describe a closed ellipse.
func (el Elements) Validate() error {
	switch {
	case math.IsNaN(el.a) || math.IsInf(el.a, 0):
		return invalid("semi-major axis", el.a, "must be finite")
	case el.a <= 0:
		return invalid("semi-major axis", el.a, "must be positive")
	case math.IsNaN(el.e) || el.e < 0 || el.e >= 1:
		return invalid("eccentricity", el.e, "must be in [0, 1)")
	}
	for _, angle := range []float64{el.i, el.Ω, el.ω, el.ν} {
		if math.IsNaN(angle) || math.IsInf(angle, 0) {
			return invalid("angle", angle, "must be finite")
		}
	}
	return nil
}

// Elements returns the six orbital elements, angles in radians.
func (el Elements) Elements() (a, e, i, Ω, ω, ν float64) {
	return el.a, el.e, el.i, el.Ω, el.ω, el.ν
}

// SemiParameter returns the semi parameter p.
func (el Elements) SemiParameter() float64 {
	return el.a * (1 - el.e*el.e)
}

// Apoapsis returns the apoapsis radius.
func (el Elements) Apoapsis() float64 {
	return el.a * (1 + el.e)
}

// Periapsis returns the periapsis radius.
func (el Elements) Periapsis() float64 {
	return el.a * (1 - el.e)
}

// Radius returns the orbit radius at true anomaly ν.
func (el Elements) Radius(ν float64) float64 {
	return el.a * (1 - el.e*el.e) / (1 + el.e*math.Cos(ν))
}

// Perifocal returns the position at true anomaly ν in the perifocal (PQW) frame.
func (el Elements) Perifocal(ν float64) Vector {
	r := el.Radius(ν)
	return Vector{r * math.Cos(ν), r * math.Sin(ν), 0}
}

// Rotation returns the perifocal to inertial rotation of these elements.
func (el Elements) Rotation() Matrix33 {
	return PQW2ECI(el.i, el.ω, el.Ω)
}

// Position returns the inertial position at true anomaly ν.
// Prefer ComputeGeometry when many points are needed, since it builds the rotation once.
func (el Elements) Position(ν float64) Vector {
	return el.Rotation().MulVec(el.Perifocal(ν))
}

// Velocity returns the inertial velocity at true anomaly ν around a body of
// gravitational parameter μ.
func (el Elements) Velocity(ν, μ float64) Vector {
	return el.Rotation().MulVec(el.perifocalVelocity(ν, μ))
}

func (el Elements) perifocalVelocity(ν, μ float64) Vector {
	sinν, cosν := math.Sincos(ν)
	k := math.Sqrt(μ / el.SemiParameter())
	return Vector{-k * sinν, k * (el.e + cosν), 0}
}

// String implements the stringer interface (hence the value receiver)
func (el Elements) String() string {
	return fmt.Sprintf("a=%.1f e=%.4f i=%.3f Ω=%.3f ω=%.3f ν=%.3f", el.a, el.e, Rad2deg(el.i), Rad2deg(el.Ω), Rad2deg(el.ω), Rad2deg(el.ν))
}

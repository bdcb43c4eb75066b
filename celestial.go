package orbitmap

import (
	"sort"
)

const (
	// AU is one astronomical unit in kilometers.
	AU = 1.49597870700e8
	// noAtmosphere flags a body whose atmosphere is not modeled.
	noAtmosphere = -1
)

// CelestialBody defines the reference body an orbit is mapped around.
// All distances are in kilometers.
type CelestialBody struct {
	Name        string
	Radius      float64
	Mass        float64 // kg
	SunDistance float64 // Mean distance from the Sun
	μ           float64
	atmosphere  float64 // Thickness above Radius, or noAtmosphere
}

// GM returns μ (which is unexported because it's a lowercase letter)
func (c CelestialBody) GM() float64 {
	return c.μ
}

// Atmosphere returns the atmosphere thickness and whether one is modeled at all.
func (c CelestialBody) Atmosphere() (float64, bool) {
	if c.atmosphere == noAtmosphere {
		return 0, false
	}
	return c.atmosphere, true
}

// AtmosphereRadius returns the radius of the top of the atmosphere, which is
// the body radius when no atmosphere is modeled.
func (c CelestialBody) AtmosphereRadius() float64 {
	t, ok := c.Atmosphere()
	if !ok {
		return c.Radius
	}
	return c.Radius + t
}

// HelioDistanceAU returns the mean heliocentric distance in AU.
func (c CelestialBody) HelioDistanceAU() float64 {
	return c.SunDistance / AU
}

// String implements the Stringer interface.
func (c CelestialBody) String() string {
	return c.Name + " body"
}

// Catalog resolves body names. Lookup never fails: an unknown name returns
// the default body and true, so the caller can report the substitution.
type Catalog interface {
	Lookup(name string) (body CelestialBody, fallback bool)
}

// BodyCatalog is a read-only table of bodies with a default entry.
type BodyCatalog struct {
	bodies   map[string]CelestialBody
	fallback CelestialBody
}

// NewBodyCatalog returns a catalog of the provided bodies. The fallback body
// is always part of the catalog.
func NewBodyCatalog(fallback CelestialBody, bodies ...CelestialBody) *BodyCatalog {
	c := BodyCatalog{bodies: make(map[string]CelestialBody, len(bodies)+1), fallback: fallback}
	c.bodies[fallback.Name] = fallback
	for _, b := range bodies {
		c.bodies[b.Name] = b
	}
	return &c
}

// Lookup returns the body matching name exactly (case sensitive).
func (c *BodyCatalog) Lookup(name string) (CelestialBody, bool) {
	if b, ok := c.bodies[name]; ok {
		return b, false
	}
	return c.fallback, true
}

// Default returns the body used for unknown names.
func (c *BodyCatalog) Default() CelestialBody {
	return c.fallback
}

// Names returns the sorted list of known body names.
func (c *BodyCatalog) Names() []string {
	names := make([]string, 0, len(c.bodies))
	for name := range c.bodies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

/* Definitions */

// Mercury has no air to speak of.
var Mercury = CelestialBody{"Mercury", 2439.7, 3.3011e23, 57909227, 22031.868551, noAtmosphere}

// Venus is poisonous.
var Venus = CelestialBody{"Venus", 6051.8, 4.8675e24, 108208000, 3.24858599e5, 250}

// Earth is home.
var Earth = CelestialBody{"Earth", 6371, 5.972e24, 149600000, 398600.4418, 100}

// Mars is the vacation place.
var Mars = CelestialBody{"Mars", 3389.5, 6.4171e23, 227939100, 42828.375816, 50}

// Jupiter is big.
var Jupiter = CelestialBody{"Jupiter", 69911, 1.8982e27, 778340821, 126686511, 500}

// Saturn floats and that's really cool.
var Saturn = CelestialBody{"Saturn", 58232, 5.6834e26, 1426666420, 37931207.8, 300}

// Moon shares Earth's distance to the Sun.
var Moon = CelestialBody{"Moon", 1737.4, 7.34767309e22, 149600000, 4902.800066, noAtmosphere}

// Titan is the only moon with a thick atmosphere.
var Titan = CelestialBody{"Titan", 2575, 1.3452e23, 1426666420, 8978.14, 200}

// Io is a Galilean moon.
var Io = CelestialBody{"Io", 1821.6, 8.9319e22, 778340821, 3660.0, noAtmosphere}

// Europa is a Galilean moon.
var Europa = CelestialBody{"Europa", 1560.8, 4.799e22, 778340821, 3200.0, noAtmosphere}

// Ganymede is a Galilean moon, and the largest moon around.
var Ganymede = CelestialBody{"Ganymede", 2634.1, 1.4819e23, 778340821, 9810.0, noAtmosphere}

// Callisto is a Galilean moon.
var Callisto = CelestialBody{"Callisto", 2410.3, 1.0759e23, 778340821, 7030.0, noAtmosphere}

// Rhea orbits Saturn.
var Rhea = CelestialBody{"Rhea", 763.8, 2.3065e21, 1426666420, 153.94, noAtmosphere}

// DefaultCatalog contains all the bodies above and falls back to Earth.
var DefaultCatalog = NewBodyCatalog(Earth, Mercury, Venus, Mars, Jupiter, Saturn, Moon, Titan, Io, Europa, Ganymede, Callisto, Rhea)

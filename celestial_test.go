package orbitmap

import (
	"sort"
	"testing"

	"github.com/gonum/floats"
)

func TestCatalogLookup(t *testing.T) {
	for _, exp := range []CelestialBody{Mercury, Venus, Earth, Mars, Jupiter, Saturn, Moon, Titan, Io, Europa, Ganymede, Callisto, Rhea} {
		b, fallback := DefaultCatalog.Lookup(exp.Name)
		if fallback {
			t.Fatalf("%s should be in the catalog", exp)
		}
		if b != exp {
			t.Fatalf("looked up %s, got %s", exp, b)
		}
	}
	names := DefaultCatalog.Names()
	if len(names) != 13 || !sort.StringsAreSorted(names) {
		t.Fatalf("unexpected names %v", names)
	}
}

func TestCatalogFallback(t *testing.T) {
	for _, name := range []string{"Pluto", "earth", "", "EARTH", " Earth"} {
		b, fallback := DefaultCatalog.Lookup(name)
		if !fallback {
			t.Fatalf("%q should not be found", name)
		}
		if b != Earth {
			t.Fatalf("%q fell back to %s instead of Earth", name, b)
		}
	}
	custom := NewBodyCatalog(Mars, Moon)
	if b, fallback := custom.Lookup("Titan"); !fallback || b != Mars {
		t.Fatal("custom catalog should fall back to Mars")
	}
	if b, fallback := custom.Lookup("Mars"); fallback || b != Mars {
		t.Fatal("the default body must be part of the catalog")
	}
	if custom.Default() != Mars {
		t.Fatal("incorrect default")
	}
}

func TestCelestialBody(t *testing.T) {
	if Earth.GM() != 398600.4418 || Earth.Radius != 6371 {
		t.Fatal("incorrect Earth constants")
	}
	if atm, ok := Earth.Atmosphere(); !ok || atm != 100 {
		t.Fatalf("incorrect Earth atmosphere %f (%v)", atm, ok)
	}
	if Earth.AtmosphereRadius() != 6471 {
		t.Fatalf("incorrect Earth atmosphere radius %f", Earth.AtmosphereRadius())
	}
	for _, b := range []CelestialBody{Mercury, Moon, Io, Europa, Ganymede, Callisto, Rhea} {
		if _, ok := b.Atmosphere(); ok {
			t.Fatalf("%s should not have an atmosphere", b)
		}
		if b.AtmosphereRadius() != b.Radius {
			t.Fatalf("%s atmosphere radius should be its radius", b)
		}
	}
	for _, b := range []CelestialBody{Venus, Earth, Mars, Jupiter, Saturn, Titan} {
		if _, ok := b.Atmosphere(); !ok {
			t.Fatalf("%s should have an atmosphere", b)
		}
	}
	if !floats.EqualWithinAbs(Earth.HelioDistanceAU(), 1, 1e-3) {
		t.Fatalf("Earth is %f AU from the Sun", Earth.HelioDistanceAU())
	}
	if Earth.String() != "Earth body" {
		t.Fatal("incorrect string")
	}
}

package orbitmap

import (
	"fmt"
	"math"
	"time"
)

const (
	// DefaultSampleCount is the number of labeled points along the orbit.
	DefaultSampleCount = 20
	// DefaultPathPoints is the number of points of the dense path used to draw the ellipse.
	DefaultPathPoints = 1000
	// plotMargin scales the semi-major axis into the plot half-width.
	plotMargin = 1.5
	// julianYear is in seconds.
	julianYear = 365.25 * 86400
	// maxDurationSeconds is the longest period a time.Duration holds.
	maxDurationSeconds = float64(math.MaxInt64) / float64(time.Second)
)

// SamplePoint is one of the evenly spaced (in true anomaly) points on the orbit.
type SamplePoint struct {
	Index    int // Starts at 1
	Anomaly  float64
	Position Vector
}

// Geometry is the inertial description of an orbit: the dense path, the
// samples and the object, all rotated by the same matrix.
type Geometry struct {
	Path     []Vector
	Samples  []SamplePoint
	Object   Vector
	Rotation Matrix33
}

// ComputeGeometry maps the elements to the inertial frame.
// Samples are at ν_k = 2πk/samples and the path spans [0, 2π] in pathPoints steps.
// Either the full geometry is returned or an *InvalidInputError.
func ComputeGeometry(el Elements, samples, pathPoints int) (Geometry, error) {
	if err := el.Validate(); err != nil {
		return Geometry{}, err
	}
	if samples <= 0 {
		return Geometry{}, invalid("sample count", float64(samples), "must be positive")
	}
	if pathPoints < 2 {
		return Geometry{}, invalid("path points", float64(pathPoints), "must be at least 2")
	}
	rot := el.Rotation()
	g := Geometry{
		Path:     make([]Vector, pathPoints),
		Samples:  make([]SamplePoint, samples),
		Rotation: rot,
	}
	for k, ν := range linspace(2*math.Pi, pathPoints, true) {
		g.Path[k] = rot.MulVec(el.Perifocal(ν))
	}
	for k, ν := range linspace(2*math.Pi, samples, false) {
		g.Samples[k] = SamplePoint{Index: k + 1, Anomaly: ν, Position: rot.MulVec(el.Perifocal(ν))}
	}
	g.Object = rot.MulVec(el.Perifocal(el.ν))
	return g, nil
}

// Containment classifies the object with respect to the atmosphere of the body.
type Containment uint8

const (
	// NoAtmosphere means the body has no modeled atmosphere, so the object is outside.
	NoAtmosphere Containment = iota
	// InsideAtmosphere means the object is at most at the top of the atmosphere.
	InsideAtmosphere
	// OutsideAtmosphere means the object is above the atmosphere.
	OutsideAtmosphere
)

// Inside returns whether the object is within the atmosphere.
func (c Containment) Inside() bool {
	return c == InsideAtmosphere
}

func (c Containment) String() string {
	switch c {
	case InsideAtmosphere:
		return "inside"
	case OutsideAtmosphere:
		return "outside"
	default:
		return "no atmosphere"
	}
}

// Contain classifies a distance from the center of the body. The boundary is inside.
func Contain(b CelestialBody, distance float64) Containment {
	if _, ok := b.Atmosphere(); !ok {
		return NoAtmosphere
	}
	if distance <= b.AtmosphereRadius() {
		return InsideAtmosphere
	}
	return OutsideAtmosphere
}

// OrbitMap is everything computed for one run.
type OrbitMap struct {
	Geometry
	Elements    Elements
	Body        CelestialBody
	Fallback    bool // Body is the catalog default because the requested name is unknown
	Requested   string
	Containment Containment
	Distance    float64 // Object distance from the center of Body
	Velocity    Vector  // Object velocity, km/s
}

// Altitude returns the object altitude above the mean radius of the body.
func (m OrbitMap) Altitude() float64 {
	return m.Distance - m.Body.Radius
}

// Speed returns the object speed from the vis-viva equation.
func (m OrbitMap) Speed() float64 {
	return math.Sqrt(m.Body.GM() * (2/m.Distance - 1/m.Elements.a))
}

// Period returns the orbital period in seconds.
// It is a float since orbits longer than about 292 years overflow a time.Duration.
func (m OrbitMap) Period() float64 {
	return 2 * math.Pi * math.Sqrt(math.Pow(m.Elements.a, 3)/m.Body.GM())
}

// FormatPeriod returns a period in seconds as a duration when it fits, or in years.
func FormatPeriod(seconds float64) string {
	if seconds < maxDurationSeconds {
		return time.Duration(seconds * float64(time.Second)).Round(time.Millisecond).String()
	}
	return fmt.Sprintf("%.2f years", seconds/julianYear)
}

// PlotExtent returns the half-width of a cube which comfortably holds the orbit.
func (m OrbitMap) PlotExtent() float64 {
	return plotMargin * m.Elements.a
}

func (m OrbitMap) String() string {
	return fmt.Sprintf("%s around %s: object at %.2f km (%s)", m.Elements, m.Body.Name, m.Distance, m.Containment)
}

// Engine maps orbits around the bodies of its catalog.
type Engine struct {
	Catalog    Catalog
	PathPoints int
}

// NewEngine returns an engine using the provided catalog, or DefaultCatalog if nil.
func NewEngine(c Catalog) *Engine {
	if c == nil {
		c = DefaultCatalog
	}
	return &Engine{Catalog: c, PathPoints: DefaultPathPoints}
}

// Map computes the orbit map of the elements around the named body.
// An unknown body name is not an error: the catalog default is used and Fallback is set.
func (e *Engine) Map(el Elements, body string, samples int) (*OrbitMap, error) {
	pathPoints := e.PathPoints
	if pathPoints == 0 {
		pathPoints = DefaultPathPoints
	}
	g, err := ComputeGeometry(el, samples, pathPoints)
	if err != nil {
		return nil, err
	}
	b, fallback := e.Catalog.Lookup(body)
	m := OrbitMap{Geometry: g, Elements: el, Body: b, Fallback: fallback, Requested: body}
	m.Distance = g.Object.Norm()
	m.Containment = Contain(b, m.Distance)
	m.Velocity = g.Rotation.MulVec(el.perifocalVelocity(el.ν, b.GM()))
	return &m, nil
}

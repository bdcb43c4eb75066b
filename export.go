package orbitmap

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"gopkg.in/yaml.v3"
)

// WriteReport writes the human readable summary of an orbit map.
func WriteReport(w io.Writer, m *OrbitMap) error {
	ew := errWriter{w: w}
	if m.Fallback {
		ew.printf("Unknown body %q, defaulting to %s.\n", m.Requested, m.Body.Name)
	} else {
		ew.printf("Using %s with gravitational parameter mu = %v km^3/s^2\n", m.Body.Name, m.Body.GM())
		ew.printf("%s is %.3f AU from the Sun\n", m.Body.Name, m.Body.HelioDistanceAU())
	}
	ew.printf("%d points on the orbital path evenly spaced\n", len(m.Samples))
	for _, pt := range m.Samples {
		ew.printf("point %d: X = %.2f km, Y = %.2f km, Z = %.2f km\n", pt.Index, pt.Position[0], pt.Position[1], pt.Position[2])
	}
	ew.printf("Object Position: X = %.2f km, Y = %.2f km, Z = %.2f km\n", m.Object[0], m.Object[1], m.Object[2])
	if m.Containment.Inside() {
		ew.printf("Object is inside the atmosphere of %s.\n", m.Body.Name)
	} else {
		ew.printf("Object is outside the atmosphere of %s.\n", m.Body.Name)
	}
	ew.printf("Altitude: %.2f km, speed: %.4f km/s, period: %s\n", m.Altitude(), m.Speed(), FormatPeriod(m.Period()))
	return ew.err
}

// errWriter keeps the first write error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 6, 64)
}

// WriteCSV writes the samples, the object and the dense path as CSV records
// <kind>,<index>,<x>,<y>,<z> (in km), after a commented header.
func WriteCSV(w io.Writer, m *OrbitMap, created time.Time) error {
	a, e, i, Ω, ω, ν := m.Elements.Elements()
	if _, err := fmt.Fprintf(w, `# Creation date (UTC): %s (JD %.6f)
# Orbit around %s: a=%f e=%f i=%f Omega=%f omega=%f nu=%f. All angles are in degrees.
# Position in km
`, created.UTC(), julian.TimeToJD(created), m.Body.Name, a, e, Rad2deg(i), Rad2deg(Ω), Rad2deg(ω), Rad2deg(ν)); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	record := func(kind string, idx int, v Vector) []string {
		return []string{kind, strconv.Itoa(idx), formatFloat(v[0]), formatFloat(v[1]), formatFloat(v[2])}
	}
	if err := cw.Write([]string{"kind", "index", "x", "y", "z"}); err != nil {
		return err
	}
	for _, pt := range m.Samples {
		if err := cw.Write(record("sample", pt.Index, pt.Position)); err != nil {
			return err
		}
	}
	if err := cw.Write(record("object", 0, m.Object)); err != nil {
		return err
	}
	for k, pt := range m.Path {
		if err := cw.Write(record("path", k, pt)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportedMap is the serialized form of an OrbitMap. Angles are in degrees.
type ExportedMap struct {
	Created     string           `yaml:"created"`
	JD          float64          `yaml:"jd"`
	Body        ExportedBody     `yaml:"body"`
	Fallback    bool             `yaml:"fallback"`
	Elements    ExportedElements `yaml:"elements"`
	Samples     []ExportedPoint  `yaml:"samples"`
	Object      ExportedPoint    `yaml:"object"`
	Containment string           `yaml:"containment"`
	Distance    float64          `yaml:"distance"`
	Altitude    float64          `yaml:"altitude"`
	Speed       float64          `yaml:"speed"`
	Period      float64          `yaml:"period"` // seconds
	PlotExtent  float64          `yaml:"plotExtent"`
	Path        [][3]float64     `yaml:"path,flow"`
}

// ExportedBody definition.
type ExportedBody struct {
	Name        string   `yaml:"name"`
	Mu          float64  `yaml:"mu"`
	Radius      float64  `yaml:"radius"`
	Atmosphere  *float64 `yaml:"atmosphere,omitempty"`
	SunDistance float64  `yaml:"sunDistanceAU"`
}

// ExportedElements definition.
type ExportedElements struct {
	A       float64 `yaml:"a"`
	E       float64 `yaml:"e"`
	I       float64 `yaml:"i"`
	RAAN    float64 `yaml:"raan"`
	ArgPeri float64 `yaml:"argp"`
	Nu      float64 `yaml:"nu"`
}

// ExportedPoint definition.
type ExportedPoint struct {
	Label string  `yaml:"label"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Z     float64 `yaml:"z"`
}

// NewExportedMap converts the orbit map for serialization.
func NewExportedMap(m *OrbitMap, created time.Time) ExportedMap {
	a, e, i, Ω, ω, ν := m.Elements.Elements()
	exp := ExportedMap{
		Created:     created.UTC().Format(time.RFC3339),
		JD:          julian.TimeToJD(created),
		Body:        ExportedBody{Name: m.Body.Name, Mu: m.Body.GM(), Radius: m.Body.Radius, SunDistance: m.Body.HelioDistanceAU()},
		Fallback:    m.Fallback,
		Elements:    ExportedElements{a, e, Rad2deg(i), Rad2deg(Ω), Rad2deg(ω), Rad2deg(ν)},
		Samples:     make([]ExportedPoint, len(m.Samples)),
		Object:      ExportedPoint{"Object", m.Object[0], m.Object[1], m.Object[2]},
		Containment: m.Containment.String(),
		Distance:    m.Distance,
		Altitude:    m.Altitude(),
		Speed:       m.Speed(),
		Period:      m.Period(),
		PlotExtent:  m.PlotExtent(),
		Path:        make([][3]float64, len(m.Path)),
	}
	if t, ok := m.Body.Atmosphere(); ok {
		exp.Body.Atmosphere = &t
	}
	for k, pt := range m.Samples {
		exp.Samples[k] = ExportedPoint{strconv.Itoa(pt.Index), pt.Position[0], pt.Position[1], pt.Position[2]}
	}
	for k, pt := range m.Path {
		exp.Path[k] = pt
	}
	return exp
}

// WriteYAML writes the orbit map as a YAML document.
func WriteYAML(w io.Writer, m *OrbitMap, created time.Time) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewExportedMap(m, created)); err != nil {
		return err
	}
	return enc.Close()
}

package orbitmap

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// ScenarioEnvPrefix prefixes the environment variables overriding a scenario,
// e.g. ORBITMAP_ELEMENTS_A.
const ScenarioEnvPrefix = "ORBITMAP"

// Scenario is one orbit mapping run. Angles are in degrees.
type Scenario struct {
	Body       string
	A, E       float64
	I          float64
	RAAN       float64
	ArgPeri    float64
	Nu         float64
	Samples    int
	PathPoints int
	Output     OutputConfig
	Verbose    bool
}

// OutputConfig configures the files written after a run.
type OutputConfig struct {
	Dir    string
	Prefix string
	CSV    bool
	YAML   bool
}

// IsUseless returns whether this config doesn't actually write anything.
func (c OutputConfig) IsUseless() bool {
	return !c.CSV && !c.YAML
}

// Path returns the output path for the provided extension.
func (c OutputConfig) Path(ext string) string {
	return filepath.Join(c.Dir, fmt.Sprintf("%s.%s", c.Prefix, ext))
}

// DefaultScenario returns the scenario used when nothing is configured.
func DefaultScenario() Scenario {
	return Scenario{
		Body:       Earth.Name,
		Samples:    DefaultSampleCount,
		PathPoints: DefaultPathPoints,
		Output:     OutputConfig{Dir: "./", Prefix: "orbit"},
	}
}

// Elements returns the validated orbital elements of this scenario.
func (s Scenario) Elements() (Elements, error) {
	return NewElementsFromOE(s.A, s.E, s.I, s.RAAN, s.ArgPeri, s.Nu)
}

// Engine returns an engine for this scenario on the provided catalog.
func (s Scenario) Engine(c Catalog) *Engine {
	e := NewEngine(c)
	if s.PathPoints != 0 {
		e.PathPoints = s.PathPoints
	}
	return e
}

func (s Scenario) String() string {
	return fmt.Sprintf("%s: a=%.1f e=%.4f i=%.3f Ω=%.3f ω=%.3f ν=%.3f (%d samples)", s.Body, s.A, s.E, s.I, s.RAAN, s.ArgPeri, s.Nu, s.Samples)
}

func newScenarioViper() *viper.Viper {
	v := viper.New()
	def := DefaultScenario()
	v.SetDefault("body", def.Body)
	v.SetDefault("samples", def.Samples)
	v.SetDefault("path_points", def.PathPoints)
	v.SetDefault("output.dir", def.Output.Dir)
	v.SetDefault("output.prefix", def.Output.Prefix)
	v.SetDefault("output.csv", false)
	v.SetDefault("output.yaml", false)
	v.SetDefault("verbose", false)
	for _, key := range []string{"a", "e", "i", "raan", "argp", "nu"} {
		v.SetDefault("elements."+key, 0.0)
	}
	v.SetEnvPrefix(ScenarioEnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// LoadScenario reads a scenario file (TOML, YAML or JSON, from its extension).
// Environment variables prefixed with ScenarioEnvPrefix take precedence.
// An empty path only reads the defaults and the environment.
func LoadScenario(path string) (Scenario, error) {
	v := newScenarioViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Scenario{}, fmt.Errorf("could not read scenario %s: %w", path, err)
		}
	}
	s := Scenario{
		Body: v.GetString("body"),
		Output: OutputConfig{
			Dir:    v.GetString("output.dir"),
			Prefix: v.GetString("output.prefix"),
			CSV:    v.GetBool("output.csv"),
			YAML:   v.GetBool("output.yaml"),
		},
		Verbose: v.GetBool("verbose"),
	}
	for _, num := range []struct {
		key, field string
		dst        *float64
	}{
		{"elements.a", "semi-major axis", &s.A},
		{"elements.e", "eccentricity", &s.E},
		{"elements.i", "inclination", &s.I},
		{"elements.raan", "RAAN", &s.RAAN},
		{"elements.argp", "argument of periapsis", &s.ArgPeri},
		{"elements.nu", "true anomaly", &s.Nu},
	} {
		val, err := cast.ToFloat64E(v.Get(num.key))
		if err != nil {
			return s, notANumber(num.field, v.Get(num.key))
		}
		*num.dst = val
	}
	var err error
	if s.Samples, err = cast.ToIntE(v.Get("samples")); err != nil {
		return s, notANumber("samples", v.Get("samples"))
	}
	if s.PathPoints, err = cast.ToIntE(v.Get("path_points")); err != nil {
		return s, notANumber("path points", v.Get("path_points"))
	}
	if s.Samples <= 0 {
		return s, invalid("samples", float64(s.Samples), "must be positive")
	}
	return s, nil
}

// notANumber reports a scenario value which viper would otherwise silently read as zero.
func notANumber(field string, raw interface{}) error {
	return invalid(field, math.NaN(), fmt.Sprintf("%q is not a number", fmt.Sprint(raw)))
}

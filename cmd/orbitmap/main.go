package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ChristopherRabotin/orbitmap"
	"github.com/gonum/matrix/mat64"
)

const defaultScenario = "~~unset~~"

var (
	scenario   string
	body       string
	a, e       float64
	i, raan    float64
	argp, nu   float64
	samples    int
	outputdir  string
	exportCSV  bool
	exportYAML bool
	ultraDebug bool
)

func init() {
	flag.StringVar(&scenario, "scenario", defaultScenario, "scenario file (TOML, YAML or JSON)")
	flag.StringVar(&body, "body", "", "central body (e.g. Earth, Moon, Titan)")
	flag.Float64Var(&a, "a", 0, "semi-major axis (km)")
	flag.Float64Var(&e, "e", 0, "eccentricity in [0, 1)")
	flag.Float64Var(&i, "i", 0, "inclination (degrees)")
	flag.Float64Var(&raan, "raan", 0, "right ascension of the ascending node (degrees)")
	flag.Float64Var(&argp, "argp", 0, "argument of periapsis (degrees)")
	flag.Float64Var(&nu, "nu", 0, "true anomaly of the object (degrees)")
	flag.IntVar(&samples, "samples", 0, "number of evenly spaced points (default 20)")
	flag.StringVar(&outputdir, "outdir", "", "output directory for exported files")
	flag.BoolVar(&exportCSV, "csv", false, "export the orbit as CSV")
	flag.BoolVar(&exportYAML, "yaml", false, "export the orbit as YAML")
	flag.BoolVar(&ultraDebug, "debug", false, "debug everything (really verbose)")
}

func main() {
	flag.Parse()
	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	var sc orbitmap.Scenario
	var err error
	switch {
	case scenario != defaultScenario:
		sc, err = orbitmap.LoadScenario(scenario)
		if err != nil {
			log.Fatalf("[error] %s", err)
		}
	case set["a"]:
		sc, err = orbitmap.LoadScenario("")
		if err != nil {
			log.Fatalf("[error] %s", err)
		}
	default:
		sc = orbitmap.DefaultScenario()
		if err = promptScenario(bufio.NewReader(os.Stdin), os.Stdout, orbitmap.DefaultCatalog, set, &sc); err != nil {
			log.Fatalf("[error] %s", err)
		}
	}
	applyFlags(&sc, set)
	if sc.Verbose || ultraDebug {
		log.Printf("[conf] %s", sc)
		log.Printf("[conf] output: %s (csv=%v yaml=%v)", sc.Output.Dir, sc.Output.CSV, sc.Output.YAML)
	}

	el, err := sc.Elements()
	if err != nil {
		log.Fatalf("[error] %s", err)
	}
	m, err := sc.Engine(orbitmap.DefaultCatalog).Map(el, sc.Body, sc.Samples)
	if err != nil {
		log.Fatalf("[error] %s", err)
	}
	if m.Fallback {
		log.Printf("[warning] unknown body %q, defaulting to %s", sc.Body, m.Body.Name)
	}
	if ultraDebug {
		log.Printf("[info] PQW to inertial rotation:\n%v", mat64.Formatted(m.Rotation.Dense()))
	}
	if err := orbitmap.WriteReport(os.Stdout, m); err != nil {
		log.Fatalf("[error] %s", err)
	}
	if sc.Output.IsUseless() {
		return
	}
	if err := export(sc.Output, m, time.Now()); err != nil {
		log.Fatalf("[error] %s", err)
	}
}

// applyFlags overrides the scenario with the flags set on the command line.
func applyFlags(sc *orbitmap.Scenario, set map[string]bool) {
	if set["body"] {
		sc.Body = body
	}
	if set["a"] {
		sc.A = a
	}
	if set["e"] {
		sc.E = e
	}
	if set["i"] {
		sc.I = i
	}
	if set["raan"] {
		sc.RAAN = raan
	}
	if set["argp"] {
		sc.ArgPeri = argp
	}
	if set["nu"] {
		sc.Nu = nu
	}
	if set["samples"] {
		sc.Samples = samples
	}
	if set["outdir"] {
		sc.Output.Dir = outputdir
	}
	if set["csv"] {
		sc.Output.CSV = exportCSV
	}
	if set["yaml"] {
		sc.Output.YAML = exportYAML
	}
}

func export(conf orbitmap.OutputConfig, m *orbitmap.OrbitMap, now time.Time) error {
	write := func(ext string, fn func(*os.File) error) error {
		f, err := os.Create(conf.Path(ext))
		if err != nil {
			return err
		}
		defer f.Close()
		log.Printf("[info] saving file to %s", f.Name())
		if err := fn(f); err != nil {
			return fmt.Errorf("could not write %s: %w", f.Name(), err)
		}
		return f.Close()
	}
	if conf.CSV {
		if err := write("csv", func(f *os.File) error { return orbitmap.WriteCSV(f, m, now) }); err != nil {
			return err
		}
	}
	if conf.YAML {
		if err := write("yaml", func(f *os.File) error { return orbitmap.WriteYAML(f, m, now) }); err != nil {
			return err
		}
	}
	return nil
}

package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/ChristopherRabotin/orbitmap"
)

// promptScenario asks for the body and the elements, one per line.
// Values already set on the command line (flag name in preset) are not asked for.
func promptScenario(r *bufio.Reader, w io.Writer, c *orbitmap.BodyCatalog, preset map[string]bool, sc *orbitmap.Scenario) error {
	if !preset["body"] {
		prompt := fmt.Sprintf("Enter the central body (%s; default %s): ", strings.Join(c.Names(), ", "), c.Default().Name)
		name, err := readLine(r, w, prompt)
		if err != nil {
			return err
		}
		if name != "" {
			sc.Body = name
		}
	}
	for _, q := range []struct {
		flag, prompt, field string
		dst                 *float64
	}{
		{"a", "Enter semi-major axis (km): ", "semi-major axis", &sc.A},
		{"e", "Enter eccentricity (0 to 1): ", "eccentricity", &sc.E},
		{"i", "Enter Inclination (degrees): ", "inclination", &sc.I},
		{"raan", "Enter right ascension of ascending node (degrees): ", "RAAN", &sc.RAAN},
		{"argp", "Enter argument of periapsis (degrees): ", "argument of periapsis", &sc.ArgPeri},
		{"nu", "Enter true anomaly of the object (degrees): ", "true anomaly", &sc.Nu},
	} {
		if preset[q.flag] {
			continue
		}
		line, err := readLine(r, w, q.prompt)
		if err != nil {
			return err
		}
		val, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return &orbitmap.InvalidInputError{Field: q.field, Value: math.NaN(), Reason: fmt.Sprintf("%q is not a number", line)}
		}
		*q.dst = val
	}
	return nil
}

func readLine(r *bufio.Reader, w io.Writer, prompt string) (string, error) {
	if _, err := io.WriteString(w, prompt); err != nil {
		return "", err
	}
	line, err := r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("could not read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

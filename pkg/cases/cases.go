// Package cases loads named segment pairs with their expected
// classification and checks them against an Intersector.
package cases

import (
	"fmt"
	"os"

	"github.com/cfoust/segint/pkg/geom"
	"github.com/cfoust/segint/pkg/intersect"

	"gopkg.in/yaml.v3"
)

type rawCase struct {
	Name   string         `yaml:"name"`
	A      [2][3]float64  `yaml:"a"`
	B      [2][3]float64  `yaml:"b"`
	Expect intersect.Kind `yaml:"expect"`
	Point  *[3]float64    `yaml:"point"`
}

type Case struct {
	Name   string
	A, B   geom.Segment
	Expect intersect.Kind
	// Only checked when set.
	Point *geom.Vector
}

func toSegment(tol geom.Tolerance, points [2][3]float64) (geom.Segment, error) {
	return tol.NewSegment(geom.FromArray(points[0]), geom.FromArray(points[1]))
}

// Parse decodes a YAML list of cases. Segments are validated with tol.
func Parse(tol geom.Tolerance, data []byte) ([]Case, error) {
	var raw []rawCase
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	cases := make([]Case, 0, len(raw))
	for i, item := range raw {
		name := item.Name
		if name == "" {
			name = fmt.Sprintf("#%d", i+1)
		}

		a, err := toSegment(tol, item.A)
		if err != nil {
			return nil, fmt.Errorf("case %s: segment a: %w", name, err)
		}

		b, err := toSegment(tol, item.B)
		if err != nil {
			return nil, fmt.Errorf("case %s: segment b: %w", name, err)
		}

		c := Case{
			Name:   name,
			A:      a,
			B:      b,
			Expect: item.Expect,
		}

		if item.Point != nil {
			if item.Expect != intersect.KindIntersection {
				return nil, fmt.Errorf(
					"case %s: a point is only meaningful for %s",
					name,
					intersect.KindIntersection,
				)
			}
			point := geom.FromArray(*item.Point)
			c.Point = &point
		}

		cases = append(cases, c)
	}

	return cases, nil
}

func Load(tol geom.Tolerance, path string) ([]Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cases, err := Parse(tol, data)
	if err != nil {
		return nil, fmt.Errorf("could not load cases from %s: %w", path, err)
	}
	return cases, nil
}

type Outcome struct {
	Case   Case
	Result intersect.Result
	Err    error
}

func (o Outcome) Passed() bool {
	return o.Err == nil
}

// Run classifies every case. Expected points are compared with
// pointTolerance, which is usually looser than the classifier's.
func Run(in intersect.Intersector, pointTolerance geom.Tolerance, cases []Case) []Outcome {
	outcomes := make([]Outcome, 0, len(cases))
	for _, c := range cases {
		outcome := Outcome{Case: c}

		result, err := in.Intersection(c.A, c.B)
		outcome.Result = result

		switch {
		case err != nil:
			outcome.Err = err
		case result.Kind != c.Expect:
			outcome.Err = fmt.Errorf("expected %s, got %s", c.Expect, result.Kind)
		case c.Point != nil && !pointTolerance.Equal(*c.Point, result.Point.Value):
			outcome.Err = fmt.Errorf("expected point %v, got %v", *c.Point, result.Point.Value)
		}

		outcomes = append(outcomes, outcome)
	}
	return outcomes
}

package config

import (
	"github.com/cfoust/segint/pkg/geom"
)

type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
	FormatCBOR OutputFormat = "cbor"
)

type Output struct {
	Format    OutputFormat
	Precision int
}

type Config struct {
	Tolerance float64
	Output    Output
}

func (c *Config) GetTolerance() (geom.Tolerance, error) {
	tol := geom.Tolerance(c.Tolerance)
	if err := tol.Validate(); err != nil {
		return 0, err
	}
	return tol, nil
}

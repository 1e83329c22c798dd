package config

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	J "cuelang.org/go/encoding/json"
	"cuelang.org/go/encoding/yaml"
)

//go:embed schema.cue
var schemaFile string

//go:embed default.yaml
var DEFAULT []byte

// defaultSource names the embedded default configuration in errors.
const defaultSource = "<default>"

var (
	ErrMissingFile       = errors.New("segint config file does not exist")
	ErrUnsupportedFormat = errors.New("segint config must be .json, .yaml or .yml")
)

// buildSource turns the contents of one configuration source into a CUE
// value. The extension of name picks the decoder.
func buildSource(ctx *cue.Context, name string, data []byte) (cue.Value, error) {
	switch filepath.Ext(name) {
	case ".json":
		expr, err := J.Extract(name, data)
		if err != nil {
			return cue.Value{}, err
		}
		value := ctx.BuildExpr(expr)
		return value, value.Err()
	// The embedded default has no extension and is YAML.
	case ".yaml", ".yml", "":
		file, err := yaml.Extract(name, data)
		if err != nil {
			return cue.Value{}, err
		}
		value := ctx.BuildFile(file)
		return value, value.Err()
	}

	return cue.Value{}, ErrUnsupportedFormat
}

func readSource(ctx *cue.Context, path string) (cue.Value, error) {
	switch filepath.Ext(path) {
	case ".json", ".yaml", ".yml":
	default:
		return cue.Value{}, ErrUnsupportedFormat
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cue.Value{}, ErrMissingFile
	}
	if err != nil {
		return cue.Value{}, err
	}

	return buildSource(ctx, path, data)
}

// unify merges one source into the classifier settings accumulated so
// far. Validation happens after every source so that a bad tolerance or
// output format is reported against the file that introduced it.
func unify(settings cue.Value, source cue.Value, name string) (cue.Value, error) {
	settings = settings.Unify(source)
	if err := settings.Err(); err != nil {
		return settings, fmt.Errorf("segint config %s conflicts with earlier settings: %w", name, err)
	}

	if err := settings.Validate(); err != nil {
		return settings, fmt.Errorf("segint config %s is not valid: %w", name, err)
	}

	return settings, nil
}

// Process reads the provided configuration files in order and unifies them
// with the classifier settings schema. Values not set by any file take the
// schema's defaults, which match DEFAULT. The resulting tolerance is
// checked with GetTolerance before the Config is returned.
func Process(configPaths []string) (*Config, error) {
	ctx := cuecontext.New()

	settings := ctx.CompileString(schemaFile)
	if err := settings.Err(); err != nil {
		return nil, fmt.Errorf("segint config schema: %w", err)
	}

	if len(configPaths) == 0 {
		value, err := buildSource(ctx, defaultSource, DEFAULT)
		if err != nil {
			return nil, fmt.Errorf("segint config %s: %w", defaultSource, err)
		}

		settings, err = unify(settings, value, defaultSource)
		if err != nil {
			return nil, err
		}
	}

	for _, path := range configPaths {
		value, err := readSource(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("could not read segint config %s: %w", path, err)
		}

		settings, err = unify(settings, value, path)
		if err != nil {
			return nil, err
		}
	}

	data, err := settings.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("could not aggregate segint config: %w", err)
	}

	config := Config{}
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	if _, err := config.GetTolerance(); err != nil {
		return nil, fmt.Errorf("segint config tolerance: %w", err)
	}

	return &config, nil
}

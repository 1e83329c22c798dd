package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cfoust/segint/pkg/cases"
	"github.com/cfoust/segint/pkg/config"
	"github.com/cfoust/segint/pkg/geom"
	"github.com/cfoust/segint/pkg/intersect"
	"github.com/cfoust/segint/pkg/report"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var CLI struct {
	Debug   bool                `help:"Whether to enable debug logging."`
	Configs []string            `name:"configs" help:"Configuration files, merged in order." env:"SEGINT_CONFIG"`
	Format  config.OutputFormat `help:"Override the configured output format (text, json, yaml or cbor)."`

	Classify struct {
		Points []string `arg:"" help:"Four points x,y,z: the first segment runs from the first to the second, the other from the third to the fourth. Put -- before negative coordinates."`
	} `cmd:"" help:"Classify how two segments intersect."`

	Check struct {
		Cases string `arg:"" help:"YAML file of cases with their expected classification." type:"existingfile"`
	} `cmd:"" help:"Check a file of segment pairs against their expected classification."`

	Config struct {
	} `cmd:"" help:"Write the default configuration to standard output."`
}

func writeError(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}

func parsePoint(value string) (geom.Vector, error) {
	parts := strings.Split(value, ",")
	if len(parts) != 3 {
		return geom.Vector{}, fmt.Errorf("point %q must have three comma-separated components", value)
	}

	var components [3]float64
	for i, part := range parts {
		component, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return geom.Vector{}, fmt.Errorf("point %q: %w", value, err)
		}
		components[i] = component
	}
	return geom.FromArray(components), nil
}

func parseSegments(tol geom.Tolerance, values []string) (geom.Segment, geom.Segment, error) {
	if len(values) != 4 {
		return geom.Segment{}, geom.Segment{}, fmt.Errorf("expected 4 points, got %d", len(values))
	}

	var points [4]geom.Vector
	for i, value := range values {
		point, err := parsePoint(value)
		if err != nil {
			return geom.Segment{}, geom.Segment{}, err
		}
		points[i] = point
	}

	a, err := tol.NewSegment(points[0], points[1])
	if err != nil {
		return geom.Segment{}, geom.Segment{}, fmt.Errorf("first segment: %w", err)
	}

	b, err := tol.NewSegment(points[2], points[3])
	if err != nil {
		return geom.Segment{}, geom.Segment{}, fmt.Errorf("second segment: %w", err)
	}

	return a, b, nil
}

func classifyCommand(cfg *config.Config, in intersect.Intersector, points []string) error {
	a, b, err := parseSegments(in.Tolerance, points)
	if err != nil {
		return err
	}

	result, err := in.Intersection(a, b)
	if err != nil {
		return err
	}

	return report.Encode(
		os.Stdout,
		cfg.Output.Format,
		cfg.Output.Precision,
		[]report.Record{report.NewRecord("", a, b, result)},
	)
}

func checkCommand(cfg *config.Config, in intersect.Intersector, path string) error {
	loaded, err := cases.Load(in.Tolerance, path)
	if err != nil {
		return err
	}

	// Expected points in case files are written by hand.
	pointTolerance := geom.Tolerance(1e-9)
	if in.Tolerance > pointTolerance {
		pointTolerance = in.Tolerance
	}

	outcomes := cases.Run(in, pointTolerance, loaded)

	records := make([]report.Record, 0, len(outcomes))
	failed := 0
	for _, outcome := range outcomes {
		records = append(records, report.NewRecord(outcome.Case.Name, outcome.Case.A, outcome.Case.B, outcome.Result))
		if !outcome.Passed() {
			failed++
			log.Error().Err(outcome.Err).Msgf("case %s failed", outcome.Case.Name)
		}
	}

	err = report.Encode(os.Stdout, cfg.Output.Format, cfg.Output.Precision, records)
	if err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d cases failed", failed, len(outcomes))
	}

	log.Info().Msgf("all %d cases passed", len(outcomes))
	return nil
}

func main() {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	log.Logger = log.Output(consoleWriter)

	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	ctx := kong.Parse(&CLI,
		kong.Name("segint"),
		kong.Description("classify the intersection of two segments in 3-D space"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	if CLI.Debug {
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
		log.Warn().Msg("debug logging enabled")
	}

	if ctx.Command() == "config" {
		os.Stdout.Write(config.DEFAULT)
		return
	}

	cfg, err := config.Process(CLI.Configs)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load segint configuration")
	}

	if CLI.Format != "" {
		cfg.Output.Format = CLI.Format
	}

	tol, err := cfg.GetTolerance()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid tolerance")
	}

	in := intersect.New(tol).WithLogger(log.Logger)

	switch ctx.Command() {
	case "classify <points>":
		err = classifyCommand(cfg, in, CLI.Classify.Points)
	case "check <cases>":
		err = checkCommand(cfg, in, CLI.Check.Cases)
	}

	if err != nil {
		writeError(err)
	}
}

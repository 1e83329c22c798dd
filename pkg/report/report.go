// Package report turns classification results into records that can be
// written as text, JSON, YAML or CBOR.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cfoust/segint/pkg/config"
	"github.com/cfoust/segint/pkg/geom"
	"github.com/cfoust/segint/pkg/intersect"

	"github.com/fxamacker/cbor/v2"
	opt "github.com/repeale/fp-go/option"
	"gopkg.in/yaml.v3"
)

type Record struct {
	Name  string        `json:"name,omitempty" yaml:"name,omitempty" cbor:"name,omitempty"`
	A     [2][3]float64 `json:"a" yaml:"a,flow" cbor:"a"`
	B     [2][3]float64 `json:"b" yaml:"b,flow" cbor:"b"`
	Kind  string        `json:"kind" yaml:"kind" cbor:"kind"`
	Point *[3]float64   `json:"point,omitempty" yaml:"point,omitempty,flow" cbor:"point,omitempty"`
}

func segmentArray(s geom.Segment) [2][3]float64 {
	return [2][3]float64{s.Start().Array(), s.End().Array()}
}

func NewRecord(name string, a, b geom.Segment, result intersect.Result) Record {
	record := Record{
		Name: name,
		A:    segmentArray(a),
		B:    segmentArray(b),
		Kind: result.Kind.String(),
	}

	if result.HasPoint() {
		point := result.Point.Value.Array()
		record.Point = &point
	}

	return record
}

// Result converts the record back into a classification result.
func (r Record) Result() (intersect.Result, error) {
	kind, err := intersect.ParseKind(r.Kind)
	if err != nil {
		return intersect.Result{Kind: intersect.KindNoIntersection, Point: opt.None[geom.Vector]()}, err
	}

	result := intersect.Result{
		Kind:  kind,
		Point: opt.None[geom.Vector](),
	}
	if r.Point != nil {
		result.Point = opt.Some(geom.FromArray(*r.Point))
	}
	return result, nil
}

func formatFloat(value float64, precision int) string {
	return strconv.FormatFloat(value, 'g', precision, 64)
}

func formatPoint(point [3]float64, precision int) string {
	parts := make([]string, 0, len(point))
	for _, value := range point {
		parts = append(parts, formatFloat(value, precision))
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func formatSegment(segment [2][3]float64, precision int) string {
	return formatPoint(segment[0], precision) + "-" + formatPoint(segment[1], precision)
}

func writeText(w io.Writer, records []Record, precision int) error {
	for _, record := range records {
		line := record.Kind
		if record.Point != nil {
			line += " " + formatPoint(*record.Point, precision)
		}

		if record.Name != "" {
			line = fmt.Sprintf(
				"%s: %s %s %s",
				record.Name,
				formatSegment(record.A, precision),
				formatSegment(record.B, precision),
				line,
			)
		}

		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// Encode writes records to w in the given format. Precision only applies
// to text output.
func Encode(w io.Writer, format config.OutputFormat, precision int, records []Record) error {
	switch format {
	case config.FormatText, "":
		return writeText(w, records, precision)
	case config.FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(records)
	case config.FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(records); err != nil {
			return err
		}
		return encoder.Close()
	case config.FormatCBOR:
		return cbor.NewEncoder(w).Encode(records)
	}
	return fmt.Errorf("unsupported output format %q", format)
}

// Decode reads records written by Encode. Text output cannot be decoded.
func Decode(r io.Reader, format config.OutputFormat) ([]Record, error) {
	var records []Record

	var err error
	switch format {
	case config.FormatJSON:
		err = json.NewDecoder(r).Decode(&records)
	case config.FormatYAML:
		err = yaml.NewDecoder(r).Decode(&records)
	case config.FormatCBOR:
		err = cbor.NewDecoder(r).Decode(&records)
	default:
		return nil, fmt.Errorf("cannot decode format %q", format)
	}

	if err != nil {
		return nil, err
	}
	return records, nil
}

package report

import (
	"bytes"
	"testing"

	"github.com/cfoust/segint/pkg/config"
	"github.com/cfoust/segint/pkg/geom"
	"github.com/cfoust/segint/pkg/intersect"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func records(t *testing.T) []Record {
	a := geom.MustSegment(geom.NewVector(0, 0, 0), geom.NewVector(4, 4, 0))
	b := geom.MustSegment(geom.NewVector(0, 4, 0), geom.NewVector(4, 0, 0))
	c := geom.MustSegment(geom.NewVector(0, 1, 0), geom.NewVector(4, 5, 0))

	crossing, err := intersect.Intersection(a, b)
	require.NoError(t, err)
	parallel, err := intersect.Intersection(a, c)
	require.NoError(t, err)

	return []Record{
		NewRecord("crossing", a, b, crossing),
		NewRecord("", a, c, parallel),
	}
}

func TestText(t *testing.T) {
	var buffer bytes.Buffer
	err := Encode(&buffer, config.FormatText, 6, records(t))
	require.NoError(t, err)

	assert.Equal(t,
		"crossing: (0, 0, 0)-(4, 4, 0) (0, 4, 0)-(4, 0, 0) INTERSECTION (2, 2, 0)\nPARALLEL\n",
		buffer.String(),
	)
}

func TestTextPrecision(t *testing.T) {
	a := geom.MustSegment(geom.NewVector(0, 0, 0), geom.NewVector(3, 0, 0))
	b := geom.MustSegment(geom.NewVector(1.0/3, -1, 0), geom.NewVector(1.0/3, 1, 0))
	result, err := intersect.Intersection(a, b)
	require.NoError(t, err)

	var buffer bytes.Buffer
	err = Encode(&buffer, config.FormatText, 3, []Record{NewRecord("", a, b, result)})
	require.NoError(t, err)
	assert.Equal(t, "INTERSECTION (0.333, 0, 0)\n", buffer.String())
}

func TestRoundTrip(t *testing.T) {
	before := records(t)

	for _, format := range []config.OutputFormat{
		config.FormatJSON,
		config.FormatYAML,
		config.FormatCBOR,
	} {
		var buffer bytes.Buffer
		require.NoError(t, Encode(&buffer, format, 6, before), format)

		after, err := Decode(&buffer, format)
		require.NoError(t, err, format)
		assert.Equal(t, before, after, "%s should yield same records", format)
	}
}

func TestRecordResult(t *testing.T) {
	for _, record := range records(t) {
		result, err := record.Result()
		require.NoError(t, err)
		assert.Equal(t, record.Kind, result.Kind.String())
		assert.Equal(t, record.Point != nil, result.HasPoint())
	}

	result, err := Record{Kind: "MAYBE", Point: &[3]float64{1, 2, 3}}.Result()
	assert.Error(t, err)
	assert.NotEqual(t, intersect.KindIntersection, result.Kind)
	assert.False(t, result.HasPoint())
}

func TestUnsupportedFormat(t *testing.T) {
	var buffer bytes.Buffer
	assert.Error(t, Encode(&buffer, "xml", 6, nil))

	_, err := Decode(&buffer, config.FormatText)
	assert.Error(t, err)
}

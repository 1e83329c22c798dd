package main

import (
	"testing"

	"github.com/cfoust/segint/pkg/config"
	"github.com/cfoust/segint/pkg/geom"
	"github.com/cfoust/segint/pkg/intersect"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePoint(t *testing.T) {
	point, err := parsePoint("1, -2.5,3e2")
	require.NoError(t, err)
	assert.Equal(t, geom.NewVector(1, -2.5, 300), point)

	_, err = parsePoint("1,2")
	assert.Error(t, err)

	_, err = parsePoint("1,2,z")
	assert.Error(t, err)
}

func TestParseSegments(t *testing.T) {
	a, b, err := parseSegments(geom.Default, []string{"0,0,0", "4,4,0", "0,4,0", "4,0,0"})
	require.NoError(t, err)
	assert.Equal(t, geom.NewVector(4, 4, 0), a.End())
	assert.Equal(t, geom.NewVector(0, 4, 0), b.Start())

	_, _, err = parseSegments(geom.Default, []string{"0,0,0", "1,1,1"})
	assert.Error(t, err)

	_, _, err = parseSegments(geom.Default, []string{"0,0,0", "0,0,0", "0,4,0", "4,0,0"})
	assert.ErrorIs(t, err, geom.ErrDegenerateSegment)
}

func TestCheckScenarios(t *testing.T) {
	cfg, err := config.Process([]string{})
	require.NoError(t, err)

	in := intersect.New(geom.Default)
	assert.NoError(t, checkCommand(cfg, in, "testdata/scenarios.yaml"))
	assert.NoError(t, classifyCommand(cfg, in, []string{"0,0,0", "4,4,0", "0,4,0", "4,0,0"}))
}

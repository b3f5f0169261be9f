package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/osuushi/fillmesh"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoRings = `0 0
1 0
1 1
0 1

0 0 1
2 0 1
1 2 1
`

func TestReadRings(t *testing.T) {
	rings, err := readRings(strings.NewReader(twoRings))
	require.NoError(t, err)
	require.Len(t, rings, 2)
	assert.Len(t, rings[0], 4)
	assert.Equal(t, fillmesh.Vector{X: 1, Y: 1}, rings[0][2])
	assert.Equal(t, []fillmesh.Vector{{X: 0, Y: 0, Z: 1}, {X: 2, Y: 0, Z: 1}, {X: 1, Y: 2, Z: 1}}, rings[1])
}

func TestReadRings_Errors(t *testing.T) {
	_, err := readRings(strings.NewReader("0 0\n1\n"))
	assert.EqualError(t, err, "line 2: expected 2 or 3 coordinates, got 1")

	_, err = readRings(strings.NewReader("0 0\n1 x\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2: coordinate 2")

	rings, err := readRings(strings.NewReader("\n\n"))
	require.NoError(t, err)
	assert.Empty(t, rings)
}

// Bool flags without a default keep their value between parses.
func parseFlags(t *testing.T, args ...string) {
	*noMerge = false
	*validate = false
	_, err := app.Parse(args)
	require.NoError(t, err)
}

func squareResults(t *testing.T) []result {
	rings, err := readRings(strings.NewReader(twoRings))
	require.NoError(t, err)
	polygon, err := processRing(rings[0], fillmesh.CounterClockwise, fillmesh.Simple)
	require.NoError(t, err)
	return []result{{Ring: 0, Polygon: polygon}}
}

func TestProcessRing(t *testing.T) {
	rings, err := readRings(strings.NewReader(twoRings))
	require.NoError(t, err)

	parseFlags(t, "--no-merge", "--validate")
	polygon, err := processRing(rings[0], fillmesh.CounterClockwise, fillmesh.Quality)
	require.NoError(t, err)
	assert.Equal(t, 2, polygon.Len())

	parseFlags(t, "--validate")
	polygon, err = processRing(rings[0], fillmesh.CounterClockwise, fillmesh.Quality)
	require.NoError(t, err)
	assert.Equal(t, 1, polygon.Len())

	_, err = processRing(rings[0], fillmesh.Clockwise, fillmesh.Quality)
	assert.True(t, errors.Is(err, fillmesh.ErrTriangulationFailed))
}

func TestProcess_SkipsFailures(t *testing.T) {
	parseFlags(t)
	rings := [][]fillmesh.Vector{
		{{X: 0, Y: 0}, {X: 1, Y: 0}},
		{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}},
	}
	results := process(rings)
	require.Len(t, results, 1)
	assert.Equal(t, 1, results[0].Ring)
}

func TestWriteText(t *testing.T) {
	parseFlags(t, "--no-merge")
	var buf bytes.Buffer
	require.NoError(t, writeText(&buf, squareResults(t)))
	assert.Equal(t, "ring 0: 2 areas\n  area 0: [1 3 0]\n  area 1: [2 3 1]\n", buf.String())
}

func TestToFeatureCollection(t *testing.T) {
	parseFlags(t)
	fc := toFeatureCollection(squareResults(t))
	require.Len(t, fc.Features, 1)

	feature := fc.Features[0]
	polygon, ok := feature.Geometry.(orb.Polygon)
	require.True(t, ok)
	require.Len(t, polygon, 1)
	ring := polygon[0]
	assert.Len(t, ring, 5)
	assert.True(t, ring.Closed())
	assert.Equal(t, orb.CCW, ring.Orientation())

	assert.Equal(t, 0, feature.Properties["ring"])
	assert.Equal(t, 2, feature.Properties["area"])
	assert.Equal(t, 4, feature.Properties["sides"])
	assert.Equal(t, 0.0, feature.Properties["height"])

	var buf bytes.Buffer
	require.NoError(t, writeGeoJSON(&buf, squareResults(t)))
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "FeatureCollection", decoded["type"])
}

func TestWriteDump(t *testing.T) {
	parseFlags(t, "--no-merge")
	var buf bytes.Buffer
	require.NoError(t, writeDump(&buf, squareResults(t)))
	assert.Contains(t, buf.String(), "Vertices:")
	assert.Contains(t, buf.String(), "Vertices: {1, 3, 0}")
}

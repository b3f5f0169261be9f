package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/osuushi/fillmesh"
	"github.com/pkg/errors"
)

// Read rings from newline separated points in the form "x y" or "x y z", with
// each ring separated by an extra newline. Z is the height and defaults to 0.
func readRings(in io.Reader) ([][]fillmesh.Vector, error) {
	rings := [][]fillmesh.Vector{}
	scanner := bufio.NewScanner(in)
	points := []fillmesh.Vector{}
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())

		// If it's empty, and we collected any points, this is the end of the ring
		if line == "" {
			if len(points) > 0 {
				rings = append(rings, points)
				points = []fillmesh.Vector{}
			}
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading input")
	}

	// Handle trailing ring if any
	if len(points) > 0 {
		rings = append(rings, points)
	}
	return rings, nil
}

func parsePoint(line string) (fillmesh.Vector, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 && len(parts) != 3 {
		return fillmesh.Vector{}, errors.Errorf("expected 2 or 3 coordinates, got %d", len(parts))
	}
	var coordinates [3]float64
	for i, part := range parts {
		value, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return fillmesh.Vector{}, errors.Wrapf(err, "coordinate %d", i+1)
		}
		coordinates[i] = value
	}
	return fillmesh.Vector{X: coordinates[0], Y: coordinates[1], Z: coordinates[2]}, nil
}

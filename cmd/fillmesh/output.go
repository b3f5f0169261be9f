package main

import (
	"fmt"
	"io"

	"github.com/kr/pretty"
	"github.com/osuushi/fillmesh"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

type result struct {
	Ring    int
	Polygon *fillmesh.Polygon
}

func writeText(w io.Writer, results []result) error {
	for _, r := range results {
		if _, err := fmt.Fprintf(w, "ring %d: %d areas\n", r.Ring, r.Polygon.Len()); err != nil {
			return err
		}
		for _, area := range r.Polygon.Areas() {
			if _, err := fmt.Fprintf(w, "  area %d: %v\n", area.Index, area.Vertices()); err != nil {
				return err
			}
		}
	}
	return nil
}

// One feature per area, with the loop closed as GeoJSON requires.
func toFeatureCollection(results []result) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, r := range results {
		for _, area := range r.Polygon.Areas() {
			positions := area.Positions()
			ring := make(orb.Ring, 0, len(positions)+1)
			for _, p := range positions {
				ring = append(ring, orb.Point{p.X, p.Y})
			}
			ring = append(ring, ring[0])

			feature := geojson.NewFeature(orb.Polygon{ring})
			feature.Properties["ring"] = r.Ring
			feature.Properties["area"] = area.Index
			feature.Properties["sides"] = len(area.Sides)
			feature.Properties["height"] = area.Height()
			fc.Append(feature)
		}
	}
	return fc
}

func writeGeoJSON(w io.Writer, results []result) error {
	data, err := toFeatureCollection(results).MarshalJSON()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

type areaDump struct {
	Ring     int
	Index    int
	Vertices []int
	Min, Max fillmesh.Vector
}

func writeDump(w io.Writer, results []result) error {
	var dumps []areaDump
	for _, r := range results {
		for _, area := range r.Polygon.Areas() {
			dumps = append(dumps, areaDump{
				Ring:     r.Ring,
				Index:    area.Index,
				Vertices: area.Vertices(),
				Min:      area.Min(),
				Max:      area.Max(),
			})
		}
	}
	_, err := pretty.Fprintf(w, "%# v\n", dumps)
	return err
}

package main

import (
	"fmt"
	"log/slog"
	"os"

	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/fillmesh"
	"github.com/osuushi/fillmesh/advanced"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app = kingpin.New("fillmesh", "Triangulate rings read from stdin and merge the triangles into larger areas.\n\n"+
		"Input is one point per line, \"x y\" or \"x y z\" where z is the height, with rings separated by a blank line.")

	winding   = app.Flag("winding", "Winding of the input rings.").Default("ccw").Enum("ccw", "cw")
	strategy  = app.Flag("strategy", "Ear selection strategy.").Default("quality").Enum("quality", "simple")
	maxCount  = app.Flag("max-count", "Maximum number of sides of a merged area.").Default("8").Int()
	maxDeltaH = app.Flag("max-delta-h", "Maximum height difference between merged areas.").Default("0.5").Float64()
	noMerge   = app.Flag("no-merge", "Keep the raw triangles.").Bool()
	format    = app.Flag("format", "Output format.").Default("text").Enum("text", "geojson", "dump")
	pngPath   = app.Flag("png", "Also draw the areas into this PNG file.").String()
	scale     = app.Flag("scale", "Pixels per unit in the PNG.").Default("50").Float64()
	showImage = app.Flag("imgcat", "Print the PNG to the terminal (iTerm).").Bool()
	validate  = app.Flag("validate", "Check the region graph invariants after merging.").Bool()
	verbose   = app.Flag("verbose", "Log merges and warnings to stderr.").Short('v').Bool()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))
	if *verbose {
		fillmesh.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	rings, err := readRings(os.Stdin)
	app.FatalIfError(err, "")

	results := process(rings)

	switch *format {
	case "geojson":
		err = writeGeoJSON(os.Stdout, results)
	case "dump":
		err = writeDump(os.Stdout, results)
	default:
		err = writeText(os.Stdout, results)
	}
	app.FatalIfError(err, "writing output")

	if *pngPath != "" {
		polygons := make([]*fillmesh.Polygon, len(results))
		for i, r := range results {
			polygons[i] = r.Polygon
		}
		err = advanced.DrawPolygons(polygons, *scale).SavePNG(*pngPath)
		app.FatalIfError(err, "writing %s", *pngPath)
		if *showImage {
			imgcat.CatFile(*pngPath, os.Stdout)
		}
	}
}

// Rings that fail are reported and skipped; the rest still get output.
func process(rings [][]fillmesh.Vector) []result {
	w := fillmesh.CounterClockwise
	if *winding == "cw" {
		w = fillmesh.Clockwise
	}
	s := fillmesh.Quality
	if *strategy == "simple" {
		s = fillmesh.Simple
	}

	var results []result
	for i, ring := range rings {
		polygon, err := processRing(ring, w, s)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ring %d: %v\n", i, err)
			continue
		}
		results = append(results, result{Ring: i, Polygon: polygon})
	}
	return results
}

func processRing(ring []fillmesh.Vector, w fillmesh.Winding, s fillmesh.Strategy) (*fillmesh.Polygon, error) {
	triangles, err := fillmesh.TriangulateList(advanced.ProjectXY(ring), w, s)
	if err != nil {
		return nil, err
	}
	polygon, err := fillmesh.NewPolygonFromTriangles(ring, triangles)
	if err != nil {
		return nil, err
	}
	if !*noMerge {
		polygon.Arrange(*maxCount, *maxDeltaH)
	}
	if *validate {
		if err := polygon.Validate(); err != nil {
			return nil, err
		}
	}
	return polygon, nil
}

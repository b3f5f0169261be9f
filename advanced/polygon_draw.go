package advanced

import (
	"math"

	"github.com/fogleman/gg"
)

// Padding around the drawing, in pixels
const drawPadding = 20

// Render polygons seen from above: each area filled in its own shade and
// outlined, on a black background. Scale is pixels per unit.
func DrawPolygons(polygons []*Polygon, scale float64) *gg.Context {
	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, polygon := range polygons {
		for _, area := range polygon.areas {
			for _, p := range area.Positions() {
				minX = math.Min(minX, p.X)
				minY = math.Min(minY, p.Y)
				maxX = math.Max(maxX, p.X)
				maxY = math.Max(maxY, p.Y)
			}
		}
	}
	if math.IsInf(minX, 0) {
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	c.SetLineWidth(1)
	shade := 0
	for _, polygon := range polygons {
		for _, area := range polygon.areas {
			positions := area.Positions()
			c.MoveTo(positions[0].X, positions[0].Y)
			for _, p := range positions[1:] {
				c.LineTo(p.X, p.Y)
			}
			c.ClosePath()
			r, g, b := areaColor(shade)
			c.SetRGB(r, g, b)
			c.FillPreserve()
			c.SetRGB(0, 1, 1)
			c.Stroke()
			shade++
		}
	}
	return c
}

func (p *Polygon) Draw(scale float64) *gg.Context {
	return DrawPolygons([]*Polygon{p}, scale)
}

func (p *Polygon) DrawPNG(path string, scale float64) error {
	return p.Draw(scale).SavePNG(path)
}

// Step around the hue circle by the golden angle so neighbors in the area
// list get clearly different colors.
func areaColor(i int) (r, g, b float64) {
	hue := math.Mod(float64(i)*137.508, 360) / 60
	x := 1 - math.Abs(math.Mod(hue, 2)-1)
	const chroma, base = 0.6, 0.2
	switch int(hue) {
	case 0:
		r, g, b = chroma, chroma*x, 0
	case 1:
		r, g, b = chroma*x, chroma, 0
	case 2:
		r, g, b = 0, chroma, chroma*x
	case 3:
		r, g, b = 0, chroma*x, chroma
	case 4:
		r, g, b = chroma*x, 0, chroma
	default:
		r, g, b = chroma, 0, chroma*x
	}
	return r + base, g + base, b + base
}

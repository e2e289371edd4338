package render

import (
	"fmt"
	"math"

	svg "github.com/ajstarks/svgo"
)

const (
	glyphScale = 100
	gradURL    = "url(#letterGrad)"
)

// glyph is everything a recipe needs to paint one letter.
type glyph struct {
	base      skeleton
	strokes   skeleton
	center    Point
	width     float64
	primary   string
	secondary string
}

func newGlyph(base skeleton, center Point, width float64, primary, secondary string) glyph {
	return glyph{
		base:      base,
		strokes:   base.place(center, glyphScale),
		center:    center,
		width:     width,
		primary:   primary,
		secondary: secondary,
	}
}

type recipe func(c *svg.SVG, g glyph)

// recipes is the set of painting styles a skeleton can be rendered in.
var recipes = map[string]recipe{
	"outline":   drawOutline,
	"sharp":     drawSharp,
	"connected": drawConnected,
	"pixel":     drawPixel,
	"circuit":   drawCircuit,
	"rounded":   drawRounded,
	"soft":      drawSoft,
	"heartbeat": drawHeartbeat,
	"embrace":   drawEmbrace,
	"flowing":   drawFlowing,
	"leafy":     drawLeafy,
	"sketch":    drawSketch,
	"serif":     drawSerif,
	"script":    drawScript,
	"thin":      drawThin,
	"ornate":    drawOrnate,
	"solid":     drawSolid,
	"pillar":    drawPillar,
	"monogram":  drawMonogram,
	"blocks":    drawBlocks,
	"dynamic":   drawDynamic,
	"italic":    drawItalic,
	"layered":   drawLayered,
	"dotted":    drawDotted,
}

// variantRecipes maps the variant names used by industry pools onto recipes.
// Names that share a recipe never appear in the same pool.
var variantRecipes = map[string]string{
	"clean":         "outline",
	"modern":        "layered",
	"simple":        "thin",
	"professional":  "solid",
	"sharp":         "sharp",
	"connected":     "connected",
	"pixelated":     "pixel",
	"circuit-lines": "circuit",
	"solid":         "solid",
	"pillar":        "pillar",
	"monogram":      "monogram",
	"structured":    "blocks",
	"rounded":       "rounded",
	"soft":          "soft",
	"heartbeat":     "heartbeat",
	"embrace":       "embrace",
	"flowing":       "flowing",
	"leafy":         "leafy",
	"natural":       "sketch",
	"elegant":       "serif",
	"script":        "script",
	"thin":          "thin",
	"ornate":        "ornate",
	"bold":          "solid",
	"dynamic":       "dynamic",
	"angular":       "blocks",
	"playful":       "dotted",
	"friendly":      "soft",
	"layered":       "layered",
	"geometric":     "blocks",
	"blocky":        "pixel",
	"classic":       "serif",
	"open":          "thin",
	"italic":        "italic",
}

// RecipeFor returns the recipe a variant name is painted with. Unknown
// names use the outline recipe.
func RecipeFor(variant string) string {
	if r, ok := variantRecipes[variant]; ok {
		return r
	}
	return "outline"
}

func strokeAttrs(color string, width float64, linecap, linejoin string) []string {
	return []string{
		`fill="none"`,
		`stroke="` + color + `"`,
		`stroke-width="` + num(width) + `"`,
		`stroke-linecap="` + linecap + `"`,
		`stroke-linejoin="` + linejoin + `"`,
	}
}

func with(attrs []string, extra ...string) []string {
	return append(attrs, extra...)
}

func ri(v float64) int { return int(math.Round(v)) }

func dot(c *svg.SVG, p Point, r float64, attrs ...string) {
	c.Circle(ri(p.X), ri(p.Y), ri(r), attrs...)
}

func skew(c *svg.SVG, center Point, deg float64) {
	c.Group(fmt.Sprintf(`transform="translate(%s %s) skewX(%s) translate(%s %s)"`,
		num(center.X), num(center.Y), num(deg), num(-center.X), num(-center.Y)))
}

// vertices returns the corner points of line strokes and a handful of
// evenly spaced points on curved ones.
func (sk skeleton) vertices() []Point {
	var out []Point
	for _, s := range sk {
		n := len(s.pts)
		switch {
		case n == 0:
		case s.closed:
			out = append(out, s.pts[0], s.pts[n/4], s.pts[n/2], s.pts[3*n/4])
		case s.curve:
			out = append(out, s.pts[0], s.pts[n/2], s.pts[n-1])
		default:
			out = append(out, s.pts...)
		}
	}
	return out
}

func drawOutline(c *svg.SVG, g glyph) {
	c.Path(g.strokes.pathData(false), strokeAttrs(gradURL, g.width, "round", "round")...)
}

func drawSharp(c *svg.SVG, g glyph) {
	c.Path(g.strokes.pathData(false), strokeAttrs(gradURL, g.width, "square", "miter")...)
	ends := g.strokes.endpoints()
	if len(ends) == 0 {
		return
	}
	e := ends[0]
	tip := add(e.at, mul(e.dir, g.width*1.1))
	side := mul(perp(e.dir), g.width*0.55)
	base := add(e.at, mul(e.dir, g.width*0.5))
	c.Path("M"+points([]Point{add(base, side), tip, sub(base, side)})+" Z", `fill="`+g.secondary+`"`)
}

func drawConnected(c *svg.SVG, g glyph) {
	c.Path(g.strokes.pathData(false), strokeAttrs(gradURL, g.width*0.6, "round", "round")...)
	for _, p := range g.strokes.vertices() {
		dot(c, p, g.width*0.42, `fill="`+g.secondary+`"`, `stroke="#ffffff"`, `stroke-width="3"`)
	}
}

func drawPixel(c *svg.SVG, g glyph) {
	const cell = 20.0
	type key struct{ x, y int }
	seen := map[key]bool{}
	var order []key
	half := g.width / 2
	for _, s := range g.strokes {
		for _, p := range s.sample(cell / 2) {
			x0, x1 := int(math.Floor((p.X-half)/cell)), int(math.Floor((p.X+half-1)/cell))
			y0, y1 := int(math.Floor((p.Y-half)/cell)), int(math.Floor((p.Y+half-1)/cell))
			for x := x0; x <= x1; x++ {
				for y := y0; y <= y1; y++ {
					k := key{x, y}
					if !seen[k] {
						seen[k] = true
						order = append(order, k)
					}
				}
			}
		}
	}
	c.Group(`fill="` + gradURL + `"`)
	for _, k := range order {
		c.Rect(k.x*int(cell)+1, k.y*int(cell)+1, int(cell)-2, int(cell)-2)
	}
	c.Gend()
}

func drawCircuit(c *svg.SVG, g glyph) {
	d := g.strokes.pathData(false)
	c.Path(d, strokeAttrs(g.primary, g.width*0.35, "butt", "miter")...)
	c.Path(d, strokeAttrs(g.secondary, g.width*0.1, "butt", "miter")...)
	pad := g.width * 0.7
	for _, e := range g.strokes.endpoints() {
		c.Rect(ri(e.at.X-pad/2), ri(e.at.Y-pad/2), ri(pad), ri(pad),
			`fill="`+g.secondary+`"`, `stroke="`+g.primary+`"`, `stroke-width="3"`)
	}
}

func drawRounded(c *svg.SVG, g glyph) {
	d := g.strokes.pathData(false)
	c.Path(d, strokeAttrs(gradURL, g.width*1.1, "round", "round")...)
	c.Path(d, with(strokeAttrs("#ffffff", g.width*0.22, "round", "round"), `stroke-opacity="0.35"`)...)
}

func drawSoft(c *svg.SVG, g glyph) {
	d := g.strokes.pathData(true)
	c.Path(d, with(strokeAttrs(g.secondary, g.width*1.8, "round", "round"), `stroke-opacity="0.22"`)...)
	c.Path(d, strokeAttrs(gradURL, g.width*0.85, "round", "round")...)
}

func drawHeartbeat(c *svg.SVG, g glyph) {
	drawOutline(c, g)
	cx, cy := g.center.X, g.center.Y
	pulse := []Point{
		{cx - 125, cy}, {cx - 60, cy}, {cx - 45, cy - 35}, {cx - 25, cy + 40},
		{cx - 8, cy - 70}, {cx + 10, cy + 25}, {cx + 25, cy}, {cx + 125, cy},
	}
	d := "M" + points(pulse)
	c.Path(d, strokeAttrs("#ffffff", 13, "round", "round")...)
	c.Path(d, strokeAttrs(g.secondary, 7, "round", "round")...)
}

func drawEmbrace(c *svg.SVG, g glyph) {
	drawOutline(c, g)
	cx, cy := g.center.X, g.center.Y
	d := fmt.Sprintf("M%s %s Q%s %s %s %s", num(cx-115), num(cy+60), num(cx), num(cy+175), num(cx+115), num(cy+60))
	c.Path(d, with(strokeAttrs(g.secondary, g.width*0.3, "round", "round"), `stroke-opacity="0.85"`)...)
}

func drawFlowing(c *svg.SVG, g glyph) {
	c.Path(g.strokes.pathData(true), strokeAttrs(gradURL, g.width, "round", "round")...)
}

func leaf(at, dir Point, size float64) string {
	tip := add(at, mul(dir, size))
	mid := add(at, mul(dir, size/2))
	side := mul(perp(dir), size*0.4)
	c1, c2 := add(mid, side), sub(mid, side)
	return fmt.Sprintf("M%s %s Q%s %s %s %s Q%s %s %s %s Z",
		num(at.X), num(at.Y), num(c1.X), num(c1.Y), num(tip.X), num(tip.Y),
		num(c2.X), num(c2.Y), num(at.X), num(at.Y))
}

func drawLeafy(c *svg.SVG, g glyph) {
	c.Path(g.strokes.pathData(true), strokeAttrs(gradURL, g.width*0.9, "round", "round")...)
	for _, e := range g.strokes.endpoints() {
		c.Path(leaf(e.at, e.dir, 34), `fill="`+g.secondary+`"`, `fill-opacity="0.9"`)
	}
}

func drawSketch(c *svg.SVG, g glyph) {
	c.Path(g.strokes.offset(Point{X: 2.5, Y: -2}).pathData(true),
		with(strokeAttrs(g.primary, g.width*0.45, "round", "round"), `stroke-opacity="0.8"`)...)
	c.Path(g.strokes.offset(Point{X: -2, Y: 2.5}).pathData(true),
		with(strokeAttrs(g.secondary, g.width*0.3, "round", "round"), `stroke-opacity="0.8"`)...)
}

func serifTicks(c *svg.SVG, g glyph) {
	for _, e := range g.strokes.endpoints() {
		side := mul(perp(e.dir), g.width*0.75)
		a, b := add(e.at, side), sub(e.at, side)
		c.Path("M"+points([]Point{a, b}), strokeAttrs(g.primary, g.width*0.35, "butt", "miter")...)
	}
}

func drawSerif(c *svg.SVG, g glyph) {
	c.Path(g.strokes.pathData(false), strokeAttrs(gradURL, g.width, "butt", "miter")...)
	serifTicks(c, g)
}

func drawScript(c *svg.SVG, g glyph) {
	cx, cy := g.center.X, g.center.Y
	skew(c, g.center, -12)
	c.Path(g.strokes.pathData(true), strokeAttrs(gradURL, g.width*0.7, "round", "round")...)
	c.Gend()
	d := fmt.Sprintf("M%s %s C%s %s %s %s %s %s", num(cx-110), num(cy+120), num(cx-40), num(cy+95), num(cx+40), num(cy+145), num(cx+115), num(cy+110))
	c.Path(d, strokeAttrs(g.secondary, 5, "round", "round")...)
}

func drawThin(c *svg.SVG, g glyph) {
	c.Path(g.strokes.offset(Point{X: 6, Y: 6}).pathData(false),
		with(strokeAttrs(g.secondary, 2, "round", "round"), `stroke-opacity="0.6"`)...)
	c.Path(g.strokes.pathData(false), strokeAttrs(gradURL, g.width*0.3, "round", "round")...)
}

func drawOrnate(c *svg.SVG, g glyph) {
	drawSerif(c, g)
	for _, e := range g.strokes.endpoints() {
		at := add(e.at, mul(e.dir, g.width*0.5+12))
		s := 9.0
		diamond := []Point{{at.X, at.Y - s}, {at.X + s, at.Y}, {at.X, at.Y + s}, {at.X - s, at.Y}}
		c.Path("M"+points(diamond)+" Z", `fill="`+g.secondary+`"`)
	}
}

func drawSolid(c *svg.SVG, g glyph) {
	d := g.strokes.pathData(false)
	c.Path(d, strokeAttrs(gradURL, g.width, "square", "miter")...)
	c.Path(d, strokeAttrs(g.secondary, g.width*0.3, "square", "miter")...)
}

func drawPillar(c *svg.SVG, g glyph) {
	c.Path(g.strokes.pathData(false), strokeAttrs(gradURL, g.width, "butt", "miter")...)
	lo, hi := g.strokes.bounds()
	plate := g.width * 0.45
	x := ri(lo.X - 18)
	w := ri(hi.X-lo.X) + 36
	c.Rect(x, ri(lo.Y-g.width*0.75), w, ri(plate), `fill="`+g.secondary+`"`)
	c.Rect(x, ri(hi.Y+g.width*0.3), w, ri(plate), `fill="`+g.secondary+`"`)
}

func drawMonogram(c *svg.SVG, g glyph) {
	dot(c, g.center, 125, `fill="none"`, `stroke="`+g.secondary+`"`, `stroke-width="6"`)
	dot(c, g.center, 113, `fill="none"`, `stroke="`+g.primary+`"`, `stroke-width="2"`, `stroke-opacity="0.5"`)
	small := g.base.place(g.center, glyphScale*0.72)
	c.Path(small.pathData(false), strokeAttrs(gradURL, g.width*0.8, "round", "round")...)
}

func drawBlocks(c *svg.SVG, g glyph) {
	half := g.width / 2
	i := 0
	for _, s := range g.strokes {
		if s.curve {
			c.Path(s.pathData(false), strokeAttrs(gradURL, g.width, "butt", "bevel")...)
			continue
		}
		for j := 1; j < len(s.pts); j++ {
			a, b := s.pts[j-1], s.pts[j]
			dir := unit(sub(b, a))
			a, b = sub(a, mul(dir, half*0.5)), add(b, mul(dir, half*0.5))
			side := mul(perp(dir), half)
			quad := []Point{add(a, side), add(b, side), sub(b, side), sub(a, side)}
			fill := g.primary
			if i%2 == 1 {
				fill = g.secondary
			}
			c.Path("M"+points(quad)+" Z", `fill="`+fill+`"`, `fill-opacity="0.95"`)
			i++
		}
	}
}

func drawDynamic(c *svg.SVG, g glyph) {
	cx, cy := g.center.X, g.center.Y
	skew(c, g.center, -14)
	c.Path(g.strokes.pathData(false), strokeAttrs(gradURL, g.width, "round", "miter")...)
	c.Gend()
	for _, l := range [][2]Point{
		{{cx - 150, cy - 30}, {cx - 105, cy - 30}},
		{{cx - 165, cy}, {cx - 110, cy}},
		{{cx - 150, cy + 30}, {cx - 105, cy + 30}},
	} {
		c.Path("M"+points(l[:]), strokeAttrs(g.secondary, 6, "round", "round")...)
	}
}

func drawItalic(c *svg.SVG, g glyph) {
	skew(c, g.center, -14)
	drawOutline(c, g)
	c.Gend()
}

func drawLayered(c *svg.SVG, g glyph) {
	c.Path(g.strokes.offset(Point{X: 9, Y: 9}).pathData(false),
		with(strokeAttrs(g.secondary, g.width, "round", "round"), `stroke-opacity="0.55"`)...)
	c.Path(g.strokes.pathData(false), strokeAttrs(gradURL, g.width*0.8, "round", "round")...)
}

func drawDotted(c *svg.SVG, g glyph) {
	i := 0
	for _, s := range g.strokes {
		for _, p := range s.sample(g.width * 0.95) {
			fill := g.primary
			if i%3 == 2 {
				fill = g.secondary
			}
			dot(c, p, g.width*0.42, `fill="`+fill+`"`)
			i++
		}
	}
}

package render

import (
	"bytes"
	"fmt"
	"math"

	svg "github.com/ajstarks/svgo"
)

// Motifs are centred decorationOffset from the glyph centre and stay within
// motifReach of that point, so they span 130 to 180 px either side.
const (
	decorationOffset = 155
	motifReach       = 25
)

type decoration func(c *svg.SVG, at Point, primary, secondary string, mirror float64)

// decorations are drawn twice, once on each flank of the glyph.
var decorations = map[string]struct {
	opacity string
	draw    decoration
}{
	"hexagon":   {"0.25", drawHexagon},
	"shield":    {"0.2", drawShield},
	"cross":     {"0.2", drawCross},
	"leaf":      {"0.3", drawLeafMotif},
	"flourish":  {"0.25", drawFlourish},
	"lightning": {"0.3", drawLightning},
	"star":      {"0.15", drawStar},
}

// AddIndustryDecoration returns the ornament fragment for a decoration name,
// or an empty string when the name is not known.
func AddIndustryDecoration(center Point, name, primary, secondary string) string {
	d, ok := decorations[name]
	if !ok {
		return ""
	}
	primary, secondary = attr(primary), attr(secondary)

	var buf bytes.Buffer
	c := svg.New(&buf)
	c.Group(`class="decoration decoration-`+name+`"`, `opacity="`+d.opacity+`"`)
	d.draw(c, Point{X: center.X - decorationOffset, Y: center.Y}, primary, secondary, -1)
	d.draw(c, Point{X: center.X + decorationOffset, Y: center.Y}, primary, secondary, 1)
	c.Gend()
	return buf.String()
}

func regular(at Point, r float64, n int, rot float64) []Point {
	pts := make([]Point, n)
	for i := range pts {
		a := (rot + 360*float64(i)/float64(n)) * math.Pi / 180
		pts[i] = Point{X: at.X + r*math.Cos(a), Y: at.Y + r*math.Sin(a)}
	}
	return pts
}

func drawHexagon(c *svg.SVG, at Point, primary, secondary string, _ float64) {
	c.Path("M"+points(regular(at, 20, 6, 30))+" Z", `fill="`+primary+`"`)
	c.Path("M"+points(regular(Point{X: at.X, Y: at.Y - 44}, 12, 6, 30))+" Z",
		`fill="none"`, `stroke="`+secondary+`"`, `stroke-width="3"`)
	c.Path("M"+points(regular(Point{X: at.X, Y: at.Y + 44}, 12, 6, 30))+" Z",
		`fill="none"`, `stroke="`+secondary+`"`, `stroke-width="3"`)
}

func drawShield(c *svg.SVG, at Point, primary, secondary string, _ float64) {
	x, y := at.X, at.Y
	d := fmt.Sprintf("M%s %s L%s %s L%s %s Q%s %s %s %s Q%s %s %s %s L%s %s Z",
		num(x), num(y-30), num(x+20), num(y-22), num(x+20), num(y), num(x+20), num(y+20), num(x), num(y+32),
		num(x-20), num(y+20), num(x-20), num(y), num(x-20), num(y-22))
	c.Path(d, `fill="`+primary+`"`, `stroke="`+secondary+`"`, `stroke-width="2"`)
}

func drawCross(c *svg.SVG, at Point, primary, secondary string, _ float64) {
	x, y := ri(at.X), ri(at.Y)
	c.Rect(x-7, y-22, 14, 44, `fill="`+primary+`"`, `rx="3"`)
	c.Rect(x-22, y-7, 44, 14, `fill="`+primary+`"`, `rx="3"`)
	c.Circle(x, y-48, 6, `fill="`+secondary+`"`)
	c.Circle(x, y+48, 6, `fill="`+secondary+`"`)
}

func drawLeafMotif(c *svg.SVG, at Point, primary, secondary string, mirror float64) {
	c.Path(leaf(Point{X: at.X, Y: at.Y + 24}, unit(Point{X: 0.35 * mirror, Y: -1}), 44), `fill="`+primary+`"`)
	c.Path(leaf(Point{X: at.X, Y: at.Y + 24}, unit(Point{X: -0.8 * mirror, Y: -0.5}), 28), `fill="`+secondary+`"`)
}

func drawFlourish(c *svg.SVG, at Point, primary, secondary string, mirror float64) {
	x, y := at.X, at.Y
	m := mirror
	d := fmt.Sprintf("M%s %s C%s %s %s %s %s %s S%s %s %s %s",
		num(x-20*m), num(y-40), num(x+15*m), num(y-35), num(x+15*m), num(y-5), num(x), num(y),
		num(x-15*m), num(y+35), num(x+20*m), num(y+40))
	c.Path(d, `fill="none"`, `stroke="`+primary+`"`, `stroke-width="4"`, `stroke-linecap="round"`)
	c.Circle(ri(x-20*m), ri(y-40), 5, `fill="`+secondary+`"`)
	c.Circle(ri(x+20*m), ri(y+40), 5, `fill="`+secondary+`"`)
}

func drawLightning(c *svg.SVG, at Point, primary, secondary string, _ float64) {
	x, y := at.X, at.Y
	bolt := []Point{{x + 6, y - 40}, {x - 14, y + 4}, {x - 1, y + 4}, {x - 8, y + 40}, {x + 14, y - 6}, {x + 1, y - 6}}
	c.Path("M"+points(bolt)+" Z", `fill="`+primary+`"`, `stroke="`+secondary+`"`, `stroke-width="2"`)
}

func drawStar(c *svg.SVG, at Point, primary, secondary string, _ float64) {
	outer := regular(at, 24, 5, -90)
	inner := regular(at, 10, 5, -54)
	star := make([]Point, 0, 10)
	for i := range outer {
		star = append(star, outer[i], inner[i])
	}
	c.Path("M"+points(star)+" Z", `fill="`+primary+`"`)
	c.Path("M"+points(regular(Point{X: at.X, Y: at.Y - 48}, 9, 5, -90))+" Z", `fill="`+secondary+`"`)
}

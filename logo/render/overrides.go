package render

import (
	"fmt"

	svg "github.com/ajstarks/svgo"
)

// override swaps the skeleton of a letter for industries with a matching
// pattern and may add an ornament on top of whichever recipe is used.
type override struct {
	shape skeleton
	extra func(c *svg.SVG, g glyph)
}

type overrideKey struct {
	letter  rune
	pattern string
}

var overrides = map[overrideKey]override{
	{'A', "circuit"}: {
		shape: skeleton{
			line(pt(-0.75, 1), pt(-0.75, -0.3), pt(-0.3, -1), pt(0.3, -1), pt(0.75, -0.3), pt(0.75, 1)),
			line(pt(-0.75, 0.2), pt(0.75, 0.2)),
			line(pt(0, 0.2), pt(0, 0.65)),
		},
		extra: func(c *svg.SVG, g glyph) {
			p := add(g.center, Point{X: 0, Y: 0.65 * glyphScale})
			dot(c, p, g.width*0.3, `fill="#ffffff"`, `stroke="`+g.secondary+`"`, `stroke-width="4"`)
		},
	},
	{'C', "caring"}: {
		shape: skeleton{arc(0.75, 1, 45, 315, 14)},
		extra: func(c *svg.SVG, g glyph) {
			cx, cy := g.center.X+8, g.center.Y+4
			d := fmt.Sprintf("M%s %s C%s %s %s %s %s %s C%s %s %s %s %s %s Z",
				num(cx), num(cy+22),
				num(cx-34), num(cy), num(cx-18), num(cy-30), num(cx), num(cy-14),
				num(cx+18), num(cy-30), num(cx+34), num(cy), num(cx), num(cy+22))
			c.Path(d, `fill="`+g.secondary+`"`)
		},
	},
	{'L', "organic"}: {
		shape: skeleton{
			curve(pt(-0.5, -1), pt(-0.55, 0.2), pt(-0.45, 0.8), pt(0, 1), pt(0.65, 0.95)),
		},
		extra: func(c *svg.SVG, g glyph) {
			top := add(g.center, Point{X: -0.5 * glyphScale, Y: -glyphScale})
			c.Path(leaf(top, unit(Point{X: 0.8, Y: -0.6}), 46), `fill="`+g.secondary+`"`)
		},
	},
	{'S', "elegant"}: {
		shape: skeleton{
			curve(pt(0.45, -0.95), pt(0.6, -0.8), pt(0.3, -1), pt(-0.3, -1), pt(-0.6, -0.65), pt(-0.4, -0.15),
				pt(0.4, 0.15), pt(0.65, 0.6), pt(0.3, 1), pt(-0.3, 1), pt(-0.6, 0.8), pt(-0.45, 0.95)),
		},
		extra: func(c *svg.SVG, g glyph) {
			for _, y := range []float64{-1.2, 1.2} {
				dot(c, add(g.center, Point{X: 0, Y: y * glyphScale * 0.95}), 5, `fill="`+g.secondary+`"`)
			}
		},
	},
}

func overrideFor(letter rune, pattern string) (override, bool) {
	o, ok := overrides[overrideKey{letter, pattern}]
	return o, ok
}

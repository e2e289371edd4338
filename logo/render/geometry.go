package render

import (
	"math"
	"strconv"
	"strings"
)

// Point is a coordinate in canvas space.
type Point struct {
	X float64
	Y float64
}

// stroke is one pen movement of a glyph skeleton. Coordinates are on a unit
// grid where x spans roughly -0.85..0.85 and y spans -1 (cap) to 1 (baseline).
type stroke struct {
	pts    []Point
	curve  bool
	closed bool
}

type skeleton []stroke

func line(pts ...Point) stroke  { return stroke{pts: pts} }
func curve(pts ...Point) stroke { return stroke{pts: pts, curve: true} }

func pt(x, y float64) Point { return Point{X: x, Y: y} }

// arc samples an elliptical arc on the unit grid. Angles are in degrees,
// measured clockwise from +x as SVG does.
func arc(rx, ry, from, to float64, n int) stroke {
	pts := make([]Point, 0, n+1)
	for i := 0; i <= n; i++ {
		a := (from + (to-from)*float64(i)/float64(n)) * math.Pi / 180
		pts = append(pts, Point{X: rx * math.Cos(a), Y: ry * math.Sin(a)})
	}
	return stroke{pts: pts, curve: true}
}

func ellipse(rx, ry float64) stroke {
	s := arc(rx, ry, 0, 360, 16)
	s.pts = s.pts[:len(s.pts)-1]
	s.closed = true
	return s
}

// place maps a skeleton from the unit grid onto the canvas.
func (sk skeleton) place(center Point, scale float64) skeleton {
	out := make(skeleton, len(sk))
	for i, s := range sk {
		pts := make([]Point, len(s.pts))
		for j, p := range s.pts {
			pts[j] = Point{X: center.X + p.X*scale, Y: center.Y + p.Y*scale}
		}
		out[i] = stroke{pts: pts, curve: s.curve, closed: s.closed}
	}
	return out
}

func (sk skeleton) bounds() (minPt, maxPt Point) {
	minPt = Point{X: math.Inf(1), Y: math.Inf(1)}
	maxPt = Point{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, s := range sk {
		for _, p := range s.pts {
			minPt.X = math.Min(minPt.X, p.X)
			minPt.Y = math.Min(minPt.Y, p.Y)
			maxPt.X = math.Max(maxPt.X, p.X)
			maxPt.Y = math.Max(maxPt.Y, p.Y)
		}
	}
	return minPt, maxPt
}

// endpoints returns the open ends of every stroke with the direction of
// travel at that end.
func (sk skeleton) endpoints() []endpoint {
	var out []endpoint
	for _, s := range sk {
		if s.closed || len(s.pts) < 2 {
			continue
		}
		n := len(s.pts)
		out = append(out,
			endpoint{at: s.pts[0], dir: unit(sub(s.pts[0], s.pts[1]))},
			endpoint{at: s.pts[n-1], dir: unit(sub(s.pts[n-1], s.pts[n-2]))},
		)
	}
	return out
}

type endpoint struct {
	at  Point
	dir Point
}

func sub(a, b Point) Point { return Point{X: a.X - b.X, Y: a.Y - b.Y} }
func add(a, b Point) Point { return Point{X: a.X + b.X, Y: a.Y + b.Y} }
func mul(a Point, k float64) Point {
	return Point{X: a.X * k, Y: a.Y * k}
}

func unit(p Point) Point {
	l := math.Hypot(p.X, p.Y)
	if l == 0 {
		return Point{X: 1}
	}
	return Point{X: p.X / l, Y: p.Y / l}
}

func perp(p Point) Point { return Point{X: -p.Y, Y: p.X} }

// sample walks a stroke and returns points spaced step apart.
func (s stroke) sample(step float64) []Point {
	pts := s.pts
	if s.closed && len(pts) > 0 {
		pts = append(append([]Point(nil), pts...), pts[0])
	}
	if len(pts) == 0 {
		return nil
	}
	out := []Point{pts[0]}
	carry := 0.0
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		seg := math.Hypot(b.X-a.X, b.Y-a.Y)
		d := step - carry
		for d <= seg {
			t := d / seg
			out = append(out, Point{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t})
			d += step
		}
		carry = seg - (d - step)
	}
	if !s.closed {
		last := pts[len(pts)-1]
		if tail := out[len(out)-1]; math.Hypot(last.X-tail.X, last.Y-tail.Y) > step/3 {
			out = append(out, last)
		}
	}
	return out
}

// pathData renders a stroke as SVG path data. Curved strokes are smoothed
// with a Catmull-Rom spline converted to cubic segments.
func (s stroke) pathData(smooth bool) string {
	if len(s.pts) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("M" + num(s.pts[0].X) + " " + num(s.pts[0].Y))
	if !(smooth || s.curve) || len(s.pts) < 3 {
		for _, p := range s.pts[1:] {
			b.WriteString(" L" + num(p.X) + " " + num(p.Y))
		}
		if s.closed {
			b.WriteString(" Z")
		}
		return b.String()
	}

	pts := s.pts
	n := len(pts)
	at := func(i int) Point {
		if s.closed {
			return pts[((i%n)+n)%n]
		}
		if i < 0 {
			return pts[0]
		}
		if i >= n {
			return pts[n-1]
		}
		return pts[i]
	}
	segs := n - 1
	if s.closed {
		segs = n
	}
	for i := 0; i < segs; i++ {
		p0, p1, p2, p3 := at(i-1), at(i), at(i+1), at(i+2)
		c1 := add(p1, mul(sub(p2, p0), 1.0/6))
		c2 := sub(p2, mul(sub(p3, p1), 1.0/6))
		b.WriteString(" C" + num(c1.X) + " " + num(c1.Y) + " " + num(c2.X) + " " + num(c2.Y) + " " + num(p2.X) + " " + num(p2.Y))
	}
	if s.closed {
		b.WriteString(" Z")
	}
	return b.String()
}

func (sk skeleton) pathData(smooth bool) string {
	parts := make([]string, 0, len(sk))
	for _, s := range sk {
		parts = append(parts, s.pathData(smooth))
	}
	return strings.Join(parts, " ")
}

func (sk skeleton) offset(d Point) skeleton {
	out := make(skeleton, len(sk))
	for i, s := range sk {
		pts := make([]Point, len(s.pts))
		for j, p := range s.pts {
			pts[j] = add(p, d)
		}
		out[i] = stroke{pts: pts, curve: s.curve, closed: s.closed}
	}
	return out
}

func num(v float64) string {
	return strconv.FormatFloat(math.Round(v*10)/10, 'f', -1, 64)
}

func points(pts []Point) string {
	parts := make([]string, len(pts))
	for i, p := range pts {
		parts[i] = num(p.X) + "," + num(p.Y)
	}
	return strings.Join(parts, " ")
}

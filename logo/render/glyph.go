package render

import (
	"bytes"
	"html"
	"strings"

	svg "github.com/ajstarks/svgo"

	"logo-backend/logo/industry"
)

// GenerateLetterShape renders one letter in one variant as an SVG fragment.
// Letters outside A-Z get a circle-in-circle glyph.
func GenerateLetterShape(letter rune, center Point, primary, secondary string, cfg industry.Config, variant string) string {
	var buf bytes.Buffer
	c := svg.New(&buf)

	primary, secondary = attr(primary), attr(secondary)
	width := StrokeWidth(variant)

	base, ok := skeletonFor(letter)
	if !ok {
		fallbackGlyph(c, center, width, secondary)
		return buf.String()
	}

	ov, hasOverride := overrideFor(letter, cfg.Pattern)
	if hasOverride {
		base = ov.shape
	}

	name := RecipeFor(variant)
	groupAttrs := []string{
		`class="glyph glyph-` + string(letter) + ` variant-` + attr(variant) + ` recipe-` + name + `"`,
		`filter="url(#shadow)"`,
	}
	if hasOverride {
		groupAttrs = append(groupAttrs, `data-pattern="`+attr(cfg.Pattern)+`"`)
	}

	g := newGlyph(base, center, width, primary, secondary)
	c.Group(groupAttrs...)
	recipes[name](c, g)
	if hasOverride && ov.extra != nil {
		ov.extra(c, g)
	}
	c.Gend()
	return buf.String()
}

func fallbackGlyph(c *svg.SVG, center Point, width float64, secondary string) {
	c.Group(`class="glyph glyph-fallback"`, `filter="url(#shadow)"`)
	dot(c, center, 95, strokeAttrs(gradURL, width, "round", "round")...)
	dot(c, center, 38, `fill="`+secondary+`"`)
	c.Gend()
}

// attr makes caller text safe to place inside a double-quoted attribute.
// Invalid UTF-8 becomes U+FFFD and runes XML cannot carry are dropped.
func attr(s string) string {
	s = strings.Map(func(r rune) rune {
		if isXMLChar(r) {
			return r
		}
		return -1
	}, strings.ToValidUTF8(s, "\uFFFD"))
	return html.EscapeString(s)
}

func isXMLChar(r rune) bool {
	switch {
	case r == 0x09, r == 0x0A, r == 0x0D:
		return true
	case r >= 0x20 && r <= 0xD7FF:
		return true
	case r >= 0xE000 && r <= 0xFFFD:
		return true
	default:
		return r >= 0x10000 && r <= 0x10FFFF
	}
}

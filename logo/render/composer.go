package render

import (
	"bytes"
	"io"
	"math/rand/v2"
	"strconv"
	"strings"
	"unicode/utf8"

	svg "github.com/ajstarks/svgo"

	"logo-backend/logo/industry"
	"logo-backend/logo/model"
)

// Canvas geometry shared by every generated document.
const (
	CanvasSize = 500
	imageSize  = 90
	imageX     = CanvasSize - imageSize - 25
	imageY     = 25
)

// Center is the glyph anchor on the canvas.
var Center = Point{X: CanvasSize / 2, Y: CanvasSize / 2}

// Result is one generation: the variant names used and the matching documents.
type Result struct {
	Industry industry.Config
	Variants []string
	SVGs     []string
}

// Generator composes logo documents. The zero value is ready to use.
type Generator struct {
	// Pick returns an index in [0, n) when a variant pool needs padding.
	// Nil uses math/rand.
	Pick func(n int) int
	// NamespaceIDs suffixes gradient, filter and clip ids with the output
	// index so the documents can share one page.
	NamespaceIDs bool
}

// GenerateLogoSVG returns the four logo documents for input.
func GenerateLogoSVG(input model.LogoInput) []string {
	return Generator{}.Generate(input)
}

// Generate classifies the input industry and renders four documents.
func (g Generator) Generate(input model.LogoInput) []string {
	return g.Compose(input, industry.Classify(input.Industry)).SVGs
}

// GenerateWithConfig renders four documents with an explicit industry config.
func (g Generator) GenerateWithConfig(input model.LogoInput, cfg industry.Config) []string {
	return g.Compose(input, cfg).SVGs
}

// Compose renders four documents and reports which variants were used.
// input.Style is carried on the input but does not influence the output.
func (g Generator) Compose(input model.LogoInput, cfg industry.Config) Result {
	pick := g.Pick
	if pick == nil {
		pick = rand.IntN
	}
	variants := SelectStyles(cfg.StyleVariations, pick)
	letter := input.FirstLetter()

	out := make([]string, len(variants))
	for i, v := range variants {
		doc := composeOne(input, cfg, letter, v, i)
		if g.NamespaceIDs {
			doc = NamespaceIDs(doc, strconv.Itoa(i))
		}
		out[i] = doc
	}
	return Result{Industry: cfg, Variants: variants, SVGs: out}
}

func composeOne(input model.LogoInput, cfg industry.Config, letter rune, variant string, index int) string {
	primary, secondary := attr(input.ColorPrimary), attr(input.ColorSecondary)
	hasImage := input.HasImage()
	imgTop := imageY + index*5

	var buf bytes.Buffer
	c := svg.New(&buf)
	c.Startview(CanvasSize, CanvasSize, 0, 0, CanvasSize, CanvasSize)

	c.Def()
	c.Style("text/css", fontCSS(cfg)...)
	c.LinearGradient("letterGrad", 0, 0, 100, 100, []svg.Offcolor{
		{Offset: 0, Color: primary, Opacity: 1},
		{Offset: 100, Color: secondary, Opacity: 1},
	})
	c.LinearGradient("bgGrad", 0, 0, 0, 100, []svg.Offcolor{
		{Offset: 0, Color: primary, Opacity: 0.06},
		{Offset: 100, Color: secondary, Opacity: 0.16},
	})
	c.Filter("shadow", `x="-20%"`, `y="-20%"`, `width="140%"`, `height="140%"`)
	c.FeGaussianBlur(svg.Filterspec{In: "SourceAlpha", Result: "blur"}, 4, 4)
	c.FeOffset(svg.Filterspec{In: "blur", Result: "offsetBlur"}, 3, 4)
	c.FeMerge([]string{"offsetBlur", "SourceGraphic"})
	c.Fend()
	if hasImage {
		c.ClipPath(`id="imageClip"`)
		c.Circle(imageX+imageSize/2, imgTop+imageSize/2, imageSize/2)
		c.ClipEnd()
	}
	c.DefEnd()

	c.Rect(0, 0, CanvasSize, CanvasSize, `fill="url(#bgGrad)"`)
	io.WriteString(c.Writer, AddIndustryDecoration(Center, cfg.Decoration, input.ColorPrimary, input.ColorSecondary))
	io.WriteString(c.Writer, GenerateLetterShape(letter, Center, input.ColorPrimary, input.ColorSecondary, cfg, variant))

	nameY := 430
	if input.HasTagline() {
		nameY = 420
	}
	c.Text(CanvasSize/2, nameY, strings.ToUpper(input.CompanyName),
		`class="company-name"`,
		`text-anchor="middle"`,
		`font-family="`+attr(cfg.Font)+`"`,
		`font-weight="`+attr(cfg.FontWeight)+`"`,
		`letter-spacing="`+attr(cfg.LetterSpacing)+`"`,
		`font-size="`+strconv.Itoa(nameFontSize(input.CompanyName))+`"`,
		`fill="`+primary+`"`,
	)
	if input.HasTagline() {
		c.Text(CanvasSize/2, 455, strings.TrimSpace(input.Tagline),
			`class="tagline"`,
			`text-anchor="middle"`,
			`font-family="`+attr(cfg.Font)+`"`,
			`font-size="18"`,
			`fill="`+secondary+`"`,
			`fill-opacity="0.85"`,
		)
	}
	if hasImage {
		c.Image(imageX, imgTop, imageSize, imageSize, attr(input.ImageBase64),
			`clip-path="url(#imageClip)"`,
			`preserveAspectRatio="xMidYMid slice"`,
		)
	}
	c.End()
	return buf.String()
}

func fontCSS(cfg industry.Config) []string {
	var rules []string
	if cfg.FontImport != "" {
		rules = append(rules, "@import url('https://fonts.googleapis.com/css2?family="+cfg.FontImport+"&display=swap');")
	}
	return append(rules, "text { font-kerning: normal; }")
}

func nameFontSize(name string) int {
	switch n := utf8.RuneCountInString(name); {
	case n <= 10:
		return 40
	case n <= 16:
		return 32
	case n <= 24:
		return 26
	default:
		return 20
	}
}

var namespacedIDs = []string{"letterGrad", "bgGrad", "shadow", "imageClip"}

// NamespaceIDs rewrites the fixed document ids and their url() references
// inside tags to carry suffix, so several documents can be inlined into one
// page. Text content is left as written.
func NamespaceIDs(doc, suffix string) string {
	if suffix == "" {
		return doc
	}
	suffix = attr(suffix)
	pairs := make([]string, 0, len(namespacedIDs)*4)
	for _, id := range namespacedIDs {
		pairs = append(pairs,
			`id="`+id+`"`, `id="`+id+`-`+suffix+`"`,
			`url(#`+id+`)`, `url(#`+id+`-`+suffix+`)`,
		)
	}
	r := strings.NewReplacer(pairs...)

	// Only markup inside tags is rewritten. Text content is escaped on the
	// way in, so a raw '<' always opens a tag.
	var b strings.Builder
	b.Grow(len(doc) + 64)
	for {
		start := strings.IndexByte(doc, '<')
		if start < 0 {
			break
		}
		end := strings.IndexByte(doc[start:], '>')
		if end < 0 {
			break
		}
		end += start + 1
		b.WriteString(doc[:start])
		b.WriteString(r.Replace(doc[start:end]))
		doc = doc[end:]
	}
	b.WriteString(doc)
	return b.String()
}

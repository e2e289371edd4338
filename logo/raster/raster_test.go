package raster

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logo-backend/logo/model"
	"logo-backend/logo/render"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func TestToPNGRendersGeneratedLogo(t *testing.T) {
	docs := render.GenerateLogoSVG(model.LogoInput{
		CompanyName:    "Zenith",
		Tagline:        "Reach Higher",
		Industry:       "technology startup",
		ColorPrimary:   "#4f46e5",
		ColorSecondary: "#06b6d4",
	})

	out, err := ToPNG([]byte(docs[0]), 128)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(out, pngMagic))

	img, err := png.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 128, img.Bounds().Dx())
	assert.Equal(t, 128, img.Bounds().Dy())
}

func TestToPNGClampsSize(t *testing.T) {
	doc := []byte(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10"><rect x="0" y="0" width="10" height="10" fill="#ff0000"/></svg>`)

	out, err := ToPNG(doc, 0)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, DefaultSize, img.Bounds().Dx())

	r, _, _, a := img.At(DefaultSize/2, DefaultSize/2).RGBA()
	assert.NotZero(t, a)
	assert.NotZero(t, r)
}

func TestToPNGRejectsGarbage(t *testing.T) {
	_, err := ToPNG([]byte("not svg at all <<<"), 64)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidSVG)
}

func pngDataURI(t *testing.T, w, h int) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestNormalizeImageShrinksLargeImages(t *testing.T) {
	out, err := NormalizeImage(pngDataURI(t, 300, 200), 100)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "data:image/png;base64,"))

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(out, "data:image/png;base64,"))
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, 100, img.Bounds().Dx())
	assert.LessOrEqual(t, img.Bounds().Dy(), 100)
}

func TestNormalizeImageKeepsSmallImages(t *testing.T) {
	out, err := NormalizeImage(pngDataURI(t, 40, 30), 100)
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(out, "data:image/png;base64,"))
	require.NoError(t, err)
	cfg, err := png.DecodeConfig(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.Width)
	assert.Equal(t, 30, cfg.Height)
}

func TestNormalizeImageRejectsBadInput(t *testing.T) {
	cases := []string{
		"",
		"https://example.com/logo.png",
		"data:text/plain;base64,aGVsbG8=",
		"data:image/png,rawbytes",
		"data:image/png;base64,!!!",
		"data:image/png;base64,aGVsbG8=",
	}
	for _, in := range cases {
		_, err := NormalizeImage(in, 100)
		assert.ErrorIs(t, err, ErrInvalidDataURI, in)
	}
}

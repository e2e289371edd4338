package cli

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"logo-backend/internal/shared/util"
	"logo-backend/logo/model"
	"logo-backend/logo/raster"
	"logo-backend/logo/render"
)

type writeOptions struct {
	OutDir     string
	PNG        bool
	Size       int
	Namespace  bool
	MaxImagePx int
}

// writeSet renders input and writes <stem>-<n>.svg (and .png) files.
// It returns the written paths.
func writeSet(input model.LogoInput, opts writeOptions) ([]string, error) {
	if input.HasImage() {
		img, err := raster.NormalizeImage(input.ImageBase64, opts.MaxImagePx)
		if err != nil {
			return nil, fmt.Errorf("image for %q: %w", input.CompanyName, err)
		}
		input.ImageBase64 = img
	}

	stem, err := util.SanitizeFileName(input.CompanyName)
	if err != nil {
		stem = "logo"
	}
	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir: %w", err)
	}

	docs := render.Generator{NamespaceIDs: opts.Namespace}.Generate(input)
	var paths []string
	for i, doc := range docs {
		base := filepath.Join(opts.OutDir, fmt.Sprintf("%s-%d", stem, i+1))
		if err := os.WriteFile(base+".svg", []byte(doc), 0o644); err != nil {
			return nil, fmt.Errorf("write svg: %w", err)
		}
		paths = append(paths, base+".svg")

		if !opts.PNG {
			continue
		}
		png, err := raster.ToPNG([]byte(doc), opts.Size)
		if err != nil {
			return nil, fmt.Errorf("rasterize %s: %w", base, err)
		}
		if err := os.WriteFile(base+".png", png, 0o644); err != nil {
			return nil, fmt.Errorf("write png: %w", err)
		}
		paths = append(paths, base+".png")
	}
	return paths, nil
}

// imageDataURI reads an image file into a base64 data URI.
func imageDataURI(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	mime := http.DetectContentType(b)
	if !strings.HasPrefix(mime, "image/") {
		return "", fmt.Errorf("%s is not an image (%s)", path, mime)
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(b), nil
}

package logos

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"logo-backend/internal/shared/cache"
	"logo-backend/internal/shared/metrics"
	"logo-backend/internal/shared/storage/object"
	"logo-backend/internal/shared/telemetry"
	"logo-backend/internal/shared/util"
	"logo-backend/logo/industry"
	"logo-backend/logo/model"
	"logo-backend/logo/raster"
	"logo-backend/logo/render"
)

const defaultCacheTTL = 24 * time.Hour

// Service contains business logic for logo sets.
type Service struct {
	Repo      Repo
	Store     object.ObjectStore // optional; PNGs are not kept without it
	Cache     cache.Cache        // optional
	Generator render.Generator

	CacheTTL       time.Duration
	MaxImagePx     int
	PNGDefaultSize int
	Now            func() time.Time
}

// Preview renders four documents without saving them. Results are cached by
// input hash since the industry pools always yield the same variants.
func (s *Service) Preview(ctx context.Context, input model.LogoInput) (Preview, error) {
	key := "preview:" + inputHash(input)
	if p, ok := s.cachedPreview(ctx, key); ok {
		metrics.IncPreview(true)
		return p, nil
	}

	prepared, err := s.prepare(input)
	if err != nil {
		return Preview{}, err
	}
	res := s.compose(prepared)
	p := Preview{Industry: res.Industry.Name, Variants: res.Variants, SVGs: res.SVGs}
	metrics.IncPreview(false)

	if payload, err := json.Marshal(p); err == nil {
		if err := s.cache().Set(ctx, key, payload, s.cacheTTL()); err != nil {
			telemetry.Warn("logos.cache_set_failed", map[string]any{"error": err})
		}
	}
	return p, nil
}

// Generate renders and stores a new logo set for userID.
func (s *Service) Generate(ctx context.Context, userID string, input model.LogoInput) (LogoSet, error) {
	if strings.TrimSpace(userID) == "" {
		return LogoSet{}, fmt.Errorf("%w: user id required", ErrInvalidInput)
	}
	prepared, err := s.prepare(input)
	if err != nil {
		return LogoSet{}, err
	}
	res := s.compose(prepared)

	set := LogoSet{
		ID:             uuid.NewString(),
		UserID:         userID,
		CompanyName:    prepared.CompanyName,
		Tagline:        prepared.Tagline,
		Industry:       prepared.Industry,
		IndustryName:   res.Industry.Name,
		ColorPrimary:   prepared.ColorPrimary,
		ColorSecondary: prepared.ColorSecondary,
		Style:          string(prepared.Style),
		HasImage:       prepared.HasImage(),
		Variants:       res.Variants,
		SVGs:           res.SVGs,
		CreatedAt:      s.now().UTC(),
	}
	if err := s.Repo.Create(ctx, set); err != nil {
		return LogoSet{}, fmt.Errorf("create logo set: %w", err)
	}
	metrics.IncGenerated(set.IndustryName)
	telemetry.Info("logos.generated", map[string]any{
		"logo_id":  set.ID,
		"user_id":  userID,
		"industry": set.IndustryName,
		"variants": strings.Join(set.Variants, ","),
	})
	return set, nil
}

func (s *Service) Get(ctx context.Context, userID, id string) (LogoSet, error) {
	if userID == "" || id == "" {
		return LogoSet{}, ErrNotFound
	}
	return s.Repo.GetByID(ctx, userID, id)
}

func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]LogoSet, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id required", ErrInvalidInput)
	}
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}

// Delete removes the set and any PNGs rendered from it.
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	if userID == "" || id == "" {
		return ErrNotFound
	}
	if err := s.Repo.Delete(ctx, userID, id); err != nil {
		return err
	}
	if s.Store != nil {
		if err := s.Store.Delete(ctx, object.LogoPrefix(userID, id)); err != nil {
			telemetry.Warn("logos.artifact_cleanup_failed", map[string]any{"logo_id": id, "error": err})
		}
	}
	return nil
}

// SVG returns one variant of a stored set. With namespace set, the document's
// ids are suffixed with the index so several variants can share a page.
func (s *Service) SVG(ctx context.Context, userID, id string, index int, namespace bool) (LogoSet, string, error) {
	set, err := s.Get(ctx, userID, id)
	if err != nil {
		return LogoSet{}, "", err
	}
	if index < 0 || index >= len(set.SVGs) {
		return LogoSet{}, "", ErrVariantOutOfRange
	}
	doc := set.SVGs[index]
	if namespace {
		doc = render.NamespaceIDs(doc, strconv.Itoa(index))
	}
	return set, doc, nil
}

// RenderPNG rasterizes one variant. Rendered files are kept in the object
// store and served from there on later calls.
func (s *Service) RenderPNG(ctx context.Context, userID, id string, index, size int) (LogoSet, []byte, error) {
	set, doc, err := s.SVG(ctx, userID, id, index, false)
	if err != nil {
		return LogoSet{}, nil, err
	}
	size = s.pngSize(size)
	key := object.PNGKey(userID, id, index, size)

	if s.Store != nil {
		if b, err := s.readStored(ctx, key); err == nil {
			return set, b, nil
		} else if !errors.Is(err, object.ErrNotFound) {
			telemetry.Warn("logos.png_read_failed", map[string]any{"key": key, "error": err})
		}
	}

	png, err := raster.ToPNG([]byte(doc), size)
	metrics.IncPNG(err == nil)
	if err != nil {
		return LogoSet{}, nil, fmt.Errorf("render png: %w", err)
	}

	if s.Store != nil {
		if _, err := s.Store.SaveWithKey(ctx, key, "image/png", bytes.NewReader(png)); err != nil {
			telemetry.Warn("logos.png_save_failed", map[string]any{"key": key, "error": err})
		}
	}
	return set, png, nil
}

func (s *Service) prepare(input model.LogoInput) (model.LogoInput, error) {
	input.CompanyName = strings.TrimSpace(input.CompanyName)
	input.Industry = strings.TrimSpace(input.Industry)
	input.ColorPrimary = strings.TrimSpace(input.ColorPrimary)
	input.ColorSecondary = strings.TrimSpace(input.ColorSecondary)
	input.Style = model.ParseStyle(string(input.Style))
	if input.CompanyName == "" {
		return model.LogoInput{}, fmt.Errorf("%w: companyName is required", ErrInvalidInput)
	}
	if input.HasImage() {
		img, err := raster.NormalizeImage(input.ImageBase64, s.MaxImagePx)
		if err != nil {
			return model.LogoInput{}, fmt.Errorf("%w: imageBase64: %v", ErrInvalidInput, err)
		}
		input.ImageBase64 = img
	}
	return input, nil
}

func (s *Service) compose(input model.LogoInput) render.Result {
	start := time.Now()
	defer metrics.ObserveRender(start)
	return s.Generator.Compose(input, industry.Classify(input.Industry))
}

func (s *Service) cachedPreview(ctx context.Context, key string) (Preview, bool) {
	b, ok, err := s.cache().Get(ctx, key)
	if err != nil {
		telemetry.Warn("logos.cache_get_failed", map[string]any{"error": err})
		return Preview{}, false
	}
	if !ok {
		return Preview{}, false
	}
	var p Preview
	if err := json.Unmarshal(b, &p); err != nil {
		return Preview{}, false
	}
	return p, true
}

func (s *Service) readStored(ctx context.Context, key string) ([]byte, error) {
	rc, err := s.Store.Open(ctx, key)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

func (s *Service) pngSize(size int) int {
	if size <= 0 {
		size = s.PNGDefaultSize
	}
	if size <= 0 {
		size = raster.DefaultSize
	}
	if size > raster.MaxSize {
		size = raster.MaxSize
	}
	return size
}

func (s *Service) cache() cache.Cache {
	if s.Cache == nil {
		return cache.Nop{}
	}
	return s.Cache
}

func (s *Service) cacheTTL() time.Duration {
	if s.CacheTTL <= 0 {
		return defaultCacheTTL
	}
	return s.CacheTTL
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func inputHash(in model.LogoInput) string {
	return util.HashParts(
		strings.TrimSpace(in.CompanyName),
		in.Tagline,
		strings.TrimSpace(in.Industry),
		strings.TrimSpace(in.ColorPrimary),
		strings.TrimSpace(in.ColorSecondary),
		util.HashParts(in.ImageBase64),
	)
}

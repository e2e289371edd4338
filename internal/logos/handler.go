package logos

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"logo-backend/internal/shared/server/middleware"
	"logo-backend/internal/shared/server/respond"
	"logo-backend/internal/shared/util"
	"logo-backend/logo/industry"
)

const maxBodySize = 3 << 20 // 3MB, room for a 2MB image as base64

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches logo routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/industries", h.industries)
	rg.POST("/logos/preview", h.preview)
	rg.POST("/logos", h.create)
	rg.GET("/logos", h.list)
	rg.GET("/logos/:id", h.get)
	rg.DELETE("/logos/:id", h.delete)
	rg.GET("/logos/:id/variants/:index/svg", h.svg)
	rg.GET("/logos/:id/variants/:index/png", h.png)
}

func (h *Handler) industries(c *gin.Context) {
	all := industry.All()
	resp := make([]IndustryResponse, 0, len(all))
	for _, cfg := range all {
		resp = append(resp, toIndustryResponse(cfg))
	}
	respond.OK(c, resp)
}

func (h *Handler) preview(c *gin.Context) {
	req, ok := bindLogoRequest(c)
	if !ok {
		return
	}
	p, err := h.Svc.Preview(c.Request.Context(), req.toInput())
	if err != nil {
		h.fail(c, err, "failed to render preview")
		return
	}
	respond.OK(c, p)
}

func (h *Handler) create(c *gin.Context) {
	req, ok := bindLogoRequest(c)
	if !ok {
		return
	}
	set, err := h.Svc.Generate(c.Request.Context(), middleware.UserIDFromContext(c), req.toInput())
	if err != nil {
		h.fail(c, err, "failed to create logo set")
		return
	}
	c.Set(middleware.LogoIDKey, set.ID)
	respond.JSON(c, http.StatusCreated, toResponse(set, true))
}

func (h *Handler) list(c *gin.Context) {
	if middleware.IsGuest(c) {
		respond.Error(c, http.StatusUnauthorized, "login_required", "Login required to view history", nil)
		return
	}

	limit := DefaultListLimit
	offset := 0
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit < 0 {
		limit = 0
	}
	if limit > 50 {
		limit = 50
	}
	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = 0
	}

	sets, err := h.Svc.List(c.Request.Context(), middleware.UserIDFromContext(c), limit, offset)
	if err != nil {
		h.fail(c, err, "failed to list logo sets")
		return
	}
	resp := make([]LogoSetResponse, 0, len(sets))
	for _, set := range sets {
		resp = append(resp, toResponse(set, false))
	}
	respond.OK(c, resp)
}

func (h *Handler) get(c *gin.Context) {
	id := c.Param("id")
	c.Set(middleware.LogoIDKey, id)
	set, err := h.Svc.Get(c.Request.Context(), middleware.UserIDFromContext(c), id)
	if err != nil {
		h.fail(c, err, "failed to load logo set")
		return
	}
	respond.OK(c, toResponse(set, true))
}

func (h *Handler) delete(c *gin.Context) {
	id := c.Param("id")
	c.Set(middleware.LogoIDKey, id)
	if err := h.Svc.Delete(c.Request.Context(), middleware.UserIDFromContext(c), id); err != nil {
		h.fail(c, err, "failed to delete logo set")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) svg(c *gin.Context) {
	id := c.Param("id")
	c.Set(middleware.LogoIDKey, id)
	index, ok := variantIndex(c)
	if !ok {
		return
	}
	namespace := c.Query("namespace") == "1" || c.Query("namespace") == "true"

	set, doc, err := h.Svc.SVG(c.Request.Context(), middleware.UserIDFromContext(c), id, index, namespace)
	if err != nil {
		h.fail(c, err, "failed to load logo")
		return
	}
	c.Header("Content-Disposition", disposition(set, index, "svg"))
	c.Data(http.StatusOK, "image/svg+xml; charset=utf-8", []byte(doc))
}

func (h *Handler) png(c *gin.Context) {
	id := c.Param("id")
	c.Set(middleware.LogoIDKey, id)
	index, ok := variantIndex(c)
	if !ok {
		return
	}
	size := 0
	if v := c.Query("size"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			respond.Error(c, http.StatusBadRequest, "validation_error", "size must be a positive integer", nil)
			return
		}
		size = parsed
	}

	set, png, err := h.Svc.RenderPNG(c.Request.Context(), middleware.UserIDFromContext(c), id, index, size)
	if err != nil {
		h.fail(c, err, "failed to render png")
		return
	}
	c.Header("Content-Disposition", disposition(set, index, "png"))
	c.Data(http.StatusOK, "image/png", png)
}

func (h *Handler) fail(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "logo set not found", nil)
	case errors.Is(err, ErrVariantOutOfRange):
		respond.Error(c, http.StatusNotFound, "not_found", "variant not found", nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", message, nil)
	}
}

func bindLogoRequest(c *gin.Context) (logoRequest, bool) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodySize)
	var req logoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", gin.H{"reason": err.Error()})
		return logoRequest{}, false
	}
	return req, true
}

func variantIndex(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "variant index must be an integer", nil)
		return 0, false
	}
	return index, true
}

func disposition(set LogoSet, index int, ext string) string {
	stem, err := util.SanitizeFileName(set.CompanyName)
	if err != nil {
		stem = "logo"
	}
	return fmt.Sprintf(`inline; filename="%s-%d.%s"`, stem, index+1, ext)
}

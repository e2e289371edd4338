package logos

import (
	"time"

	"logo-backend/logo/industry"
	"logo-backend/logo/model"
)

// logoRequest is the body of preview and create calls. imageBase64 is capped
// at the data URI length of a 2 MiB image.
type logoRequest struct {
	CompanyName    string `json:"companyName" binding:"required,max=80"`
	Tagline        string `json:"tagline" binding:"max=120"`
	Industry       string `json:"industry" binding:"max=80"`
	ColorPrimary   string `json:"colorPrimary" binding:"max=64"`
	ColorSecondary string `json:"colorSecondary" binding:"max=64"`
	Style          string `json:"style" binding:"max=32"`
	ImageBase64    string `json:"imageBase64" binding:"max=2796300"`
}

func (r logoRequest) toInput() model.LogoInput {
	return model.LogoInput{
		CompanyName:    r.CompanyName,
		Tagline:        r.Tagline,
		Industry:       r.Industry,
		ColorPrimary:   r.ColorPrimary,
		ColorSecondary: r.ColorSecondary,
		Style:          model.Style(r.Style),
		ImageBase64:    r.ImageBase64,
	}
}

// LogoSetResponse is the outward-facing representation of a logo set.
type LogoSetResponse struct {
	ID             string    `json:"id"`
	CompanyName    string    `json:"companyName"`
	Tagline        string    `json:"tagline,omitempty"`
	Industry       string    `json:"industry"`
	IndustryName   string    `json:"industryName"`
	ColorPrimary   string    `json:"colorPrimary"`
	ColorSecondary string    `json:"colorSecondary"`
	Style          string    `json:"style,omitempty"`
	HasImage       bool      `json:"hasImage"`
	Variants       []string  `json:"variants"`
	SVGs           []string  `json:"svgs,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

func toResponse(set LogoSet, withSVGs bool) LogoSetResponse {
	resp := LogoSetResponse{
		ID:             set.ID,
		CompanyName:    set.CompanyName,
		Tagline:        set.Tagline,
		Industry:       set.Industry,
		IndustryName:   set.IndustryName,
		ColorPrimary:   set.ColorPrimary,
		ColorSecondary: set.ColorSecondary,
		Style:          set.Style,
		HasImage:       set.HasImage,
		Variants:       set.Variants,
		CreatedAt:      set.CreatedAt,
	}
	if withSVGs {
		resp.SVGs = set.SVGs
	}
	return resp
}

// IndustryResponse describes one industry group.
type IndustryResponse struct {
	Name            string   `json:"name"`
	Keywords        []string `json:"keywords"`
	Pattern         string   `json:"pattern"`
	Font            string   `json:"font"`
	Decoration      string   `json:"decoration"`
	StyleVariations []string `json:"styleVariations"`
}

func toIndustryResponse(cfg industry.Config) IndustryResponse {
	keywords := industry.Keywords(cfg.Name)
	if keywords == nil {
		keywords = []string{}
	}
	return IndustryResponse{
		Name:            cfg.Name,
		Keywords:        keywords,
		Pattern:         cfg.Pattern,
		Font:            cfg.Font,
		Decoration:      cfg.Decoration,
		StyleVariations: cfg.StyleVariations,
	}
}

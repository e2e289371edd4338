package logos

import (
	"time"

	"logo-backend/logo/model"
)

// LogoSet is one persisted generation: the input that produced it and the
// four documents it produced.
type LogoSet struct {
	ID             string
	UserID         string
	CompanyName    string
	Tagline        string
	Industry       string // as typed by the caller
	IndustryName   string // classified group
	ColorPrimary   string
	ColorSecondary string
	Style          string
	HasImage       bool
	Variants       []string
	SVGs           []string
	CreatedAt      time.Time
}

// Preview is an unsaved generation.
type Preview struct {
	Industry string   `json:"industry"`
	Variants []string `json:"variants"`
	SVGs     []string `json:"svgs"`
}

// Input rebuilds the generator input recorded on the set. The embedded
// image is not stored, so it is always empty.
func (s LogoSet) Input() model.LogoInput {
	return model.LogoInput{
		CompanyName:    s.CompanyName,
		Tagline:        s.Tagline,
		Industry:       s.Industry,
		ColorPrimary:   s.ColorPrimary,
		ColorSecondary: s.ColorSecondary,
		Style:          model.Style(s.Style),
	}
}

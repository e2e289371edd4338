package model

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Style is the caller's stylistic preference for a logo. It is accepted and
// persisted but the composer selects variants from the industry pool instead.
type Style string

const (
	StyleMinimal   Style = "minimal"
	StyleModern    Style = "modern"
	StyleCorporate Style = "corporate"
	StyleCreative  Style = "creative"
	StyleFlowing   Style = "flowing"
	StyleGeometric Style = "geometric"
	StyleElegant   Style = "elegant"
	StyleBold      Style = "bold"
	StyleRandom    Style = "random"
)

var knownStyles = map[Style]struct{}{
	StyleMinimal:   {},
	StyleModern:    {},
	StyleCorporate: {},
	StyleCreative:  {},
	StyleFlowing:   {},
	StyleGeometric: {},
	StyleElegant:   {},
	StyleBold:      {},
	StyleRandom:    {},
}

// ParseStyle maps raw text onto a known Style. Unknown values yield "".
func ParseStyle(raw string) Style {
	s := Style(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := knownStyles[s]; ok {
		return s
	}
	return ""
}

// DefaultLetter is used when the company name is empty.
const DefaultLetter = 'A'

// LogoInput is the caller-supplied description of a logo request.
type LogoInput struct {
	CompanyName    string `json:"companyName"`
	Tagline        string `json:"tagline"`
	Industry       string `json:"industry"`
	ColorPrimary   string `json:"colorPrimary"`
	ColorSecondary string `json:"colorSecondary"`
	Style          Style  `json:"style,omitempty"`
	ImageBase64    string `json:"imageBase64,omitempty"`
}

// FirstLetter returns the upper-cased first rune of the company name.
func (in LogoInput) FirstLetter() rune {
	if in.CompanyName == "" {
		return DefaultLetter
	}
	r, _ := utf8.DecodeRuneInString(in.CompanyName)
	return unicode.ToUpper(r)
}

// HasTagline reports whether the tagline should be rendered.
func (in LogoInput) HasTagline() bool {
	return strings.TrimSpace(in.Tagline) != ""
}

// HasImage reports whether an embedded image was supplied.
func (in LogoInput) HasImage() bool {
	return in.ImageBase64 != ""
}

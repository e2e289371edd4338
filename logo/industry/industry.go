package industry

import "strings"

// Config describes the typography, ornament and variant pool used for one
// industry family.
type Config struct {
	Name            string   `json:"name"`
	Pattern         string   `json:"pattern"`
	Icon            string   `json:"icon"`
	Font            string   `json:"font"`
	FontImport      string   `json:"fontImport,omitempty"`
	FontWeight      string   `json:"fontWeight"`
	LetterSpacing   string   `json:"letterSpacing"`
	Decoration      string   `json:"decoration"`
	StyleVariations []string `json:"styleVariations"`
}

type keywordGroup struct {
	keywords []string
	config   Config
}

// groups is checked in order; the first group with a matching keyword wins.
var groups = []keywordGroup{
	{
		keywords: []string{"tech", "software", "digital", "it", "ai"},
		config: Config{
			Name:            "technology",
			Pattern:         "circuit",
			Icon:            "chip",
			Font:            "Inter, system-ui, -apple-system, sans-serif",
			FontImport:      "Inter:wght@400;700",
			FontWeight:      "700",
			LetterSpacing:   "2px",
			Decoration:      "hexagon",
			StyleVariations: []string{"sharp", "connected", "pixelated", "circuit-lines"},
		},
	},
	{
		keywords: []string{"finance", "bank", "invest", "accounting", "insurance"},
		config: Config{
			Name:            "finance",
			Pattern:         "stable",
			Icon:            "pillar",
			Font:            "Merriweather, Georgia, serif",
			FontImport:      "Merriweather:wght@400;700",
			FontWeight:      "700",
			LetterSpacing:   "1px",
			Decoration:      "shield",
			StyleVariations: []string{"solid", "pillar", "monogram", "structured"},
		},
	},
	{
		keywords: []string{"health", "medical", "clinic", "care", "pharma", "hospital", "dental"},
		config: Config{
			Name:            "healthcare",
			Pattern:         "caring",
			Icon:            "cross",
			Font:            "Nunito, Segoe UI, sans-serif",
			FontImport:      "Nunito:wght@400;600",
			FontWeight:      "600",
			LetterSpacing:   "1px",
			Decoration:      "cross",
			StyleVariations: []string{"rounded", "soft", "heartbeat", "embrace"},
		},
	},
	{
		keywords: []string{"eco", "green", "environment", "sustain", "organic", "nature", "garden", "farm"},
		config: Config{
			Name:            "environment",
			Pattern:         "organic",
			Icon:            "leaf",
			Font:            "Quicksand, Trebuchet MS, sans-serif",
			FontImport:      "Quicksand:wght@400;600",
			FontWeight:      "600",
			LetterSpacing:   "1.5px",
			Decoration:      "leaf",
			StyleVariations: []string{"flowing", "leafy", "rounded", "natural"},
		},
	},
	{
		keywords: []string{"fashion", "beauty", "cosmetic", "boutique", "luxury", "jewel", "salon"},
		config: Config{
			Name:            "fashion",
			Pattern:         "elegant",
			Icon:            "diamond",
			Font:            "Playfair Display, Didot, serif",
			FontImport:      "Playfair+Display:wght@400;700",
			FontWeight:      "400",
			LetterSpacing:   "4px",
			Decoration:      "flourish",
			StyleVariations: []string{"elegant", "script", "thin", "ornate"},
		},
	},
	{
		keywords: []string{"energy", "power", "electric", "solar", "fuel", "battery"},
		config: Config{
			Name:            "energy",
			Pattern:         "dynamic",
			Icon:            "bolt",
			Font:            "Rajdhani, Arial Narrow, sans-serif",
			FontImport:      "Rajdhani:wght@500;700",
			FontWeight:      "700",
			LetterSpacing:   "2px",
			Decoration:      "lightning",
			StyleVariations: []string{"bold", "sharp", "dynamic", "angular"},
		},
	},
	{
		keywords: []string{"food", "restaurant", "cafe", "coffee", "bakery", "kitchen", "catering"},
		config: Config{
			Name:            "food",
			Pattern:         "warm",
			Icon:            "bowl",
			Font:            "Poppins, Verdana, sans-serif",
			FontImport:      "Poppins:wght@400;700",
			FontWeight:      "700",
			LetterSpacing:   "1px",
			Decoration:      "star",
			StyleVariations: []string{"rounded", "playful", "friendly", "bold"},
		},
	},
	{
		keywords: []string{"design", "creative", "art", "studio", "agency", "media", "photo"},
		config: Config{
			Name:            "creative",
			Pattern:         "artistic",
			Icon:            "palette",
			Font:            "Montserrat, Futura, sans-serif",
			FontImport:      "Montserrat:wght@400;800",
			FontWeight:      "800",
			LetterSpacing:   "3px",
			Decoration:      "star",
			StyleVariations: []string{"layered", "geometric", "flowing", "playful"},
		},
	},
	{
		keywords: []string{"construct", "build", "architect", "engineer", "real estate", "property"},
		config: Config{
			Name:            "construction",
			Pattern:         "structural",
			Icon:            "beam",
			Font:            "Oswald, Impact, sans-serif",
			FontImport:      "Oswald:wght@500;700",
			FontWeight:      "700",
			LetterSpacing:   "2px",
			Decoration:      "shield",
			StyleVariations: []string{"geometric", "blocky", "pillar", "bold"},
		},
	},
	{
		keywords: []string{"educat", "school", "academy", "learn", "university", "tutor"},
		config: Config{
			Name:            "education",
			Pattern:         "scholarly",
			Icon:            "book",
			Font:            "Lora, Cambria, serif",
			FontImport:      "Lora:wght@400;700",
			FontWeight:      "700",
			LetterSpacing:   "1px",
			Decoration:      "star",
			StyleVariations: []string{"classic", "open", "structured", "friendly"},
		},
	},
	{
		keywords: []string{"sport", "fitness", "gym", "athlet", "yoga", "outdoor"},
		config: Config{
			Name:            "sports",
			Pattern:         "motion",
			Icon:            "flame",
			Font:            "Barlow Condensed, Arial Narrow, sans-serif",
			FontImport:      "Barlow+Condensed:ital,wght@1,700",
			FontWeight:      "700",
			LetterSpacing:   "2px",
			Decoration:      "lightning",
			StyleVariations: []string{"bold", "dynamic", "italic", "sharp"},
		},
	},
	{
		keywords: []string{"law", "legal", "attorney", "consult", "advisor"},
		config: Config{
			Name:            "legal",
			Pattern:         "authority",
			Icon:            "scale",
			Font:            "Cormorant Garamond, Garamond, serif",
			FontImport:      "Cormorant+Garamond:wght@500;700",
			FontWeight:      "700",
			LetterSpacing:   "2px",
			Decoration:      "shield",
			StyleVariations: []string{"classic", "monogram", "solid", "pillar"},
		},
	},
	{
		keywords: []string{"travel", "hotel", "tour", "hospitality", "resort", "airline"},
		config: Config{
			Name:            "travel",
			Pattern:         "journey",
			Icon:            "compass",
			Font:            "Raleway, Helvetica Neue, sans-serif",
			FontImport:      "Raleway:wght@400;700",
			FontWeight:      "600",
			LetterSpacing:   "3px",
			Decoration:      "flourish",
			StyleVariations: []string{"flowing", "open", "rounded", "elegant"},
		},
	},
}

var defaultConfig = Config{
	Name:            "general",
	Pattern:         "balanced",
	Icon:            "circle",
	Font:            "Arial, Helvetica, sans-serif",
	FontWeight:      "600",
	LetterSpacing:   "1px",
	Decoration:      "circle",
	StyleVariations: []string{"clean", "modern", "simple", "professional"},
}

// Classify maps free-text industry onto a Config. Keyword groups are tested
// by case-insensitive substring in declaration order; unmatched text yields
// the default config.
func Classify(industry string) Config {
	lower := strings.ToLower(industry)
	for _, g := range groups {
		for _, kw := range g.keywords {
			if strings.Contains(lower, kw) {
				return g.config.clone()
			}
		}
	}
	return Default()
}

// Default returns the fallback config used for unmatched industries.
func Default() Config {
	return defaultConfig.clone()
}

// All returns every configured industry followed by the default.
func All() []Config {
	out := make([]Config, 0, len(groups)+1)
	for _, g := range groups {
		out = append(out, g.config.clone())
	}
	return append(out, Default())
}

// Keywords returns the match keywords for a named industry, or nil.
func Keywords(name string) []string {
	for _, g := range groups {
		if g.config.Name == name {
			return append([]string(nil), g.keywords...)
		}
	}
	return nil
}

func (c Config) clone() Config {
	c.StyleVariations = append([]string(nil), c.StyleVariations...)
	return c
}

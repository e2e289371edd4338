package model

import "testing"

func TestFirstLetter(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want rune
	}{
		{name: "empty defaults to A", in: "", want: 'A'},
		{name: "lowercase is upper-cased", in: "zenith", want: 'Z'},
		{name: "digit passes through", in: "123 Corp", want: '1'},
		{name: "multibyte rune", in: "日本デザイン", want: '日'},
		{name: "leading space", in: " Acme", want: ' '},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LogoInput{CompanyName: tt.in}.FirstLetter()
			if got != tt.want {
				t.Fatalf("FirstLetter(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseStyle(t *testing.T) {
	if got := ParseStyle(" Bold "); got != StyleBold {
		t.Fatalf("expected bold, got %q", got)
	}
	if got := ParseStyle("brutalist"); got != "" {
		t.Fatalf("expected empty style for unknown value, got %q", got)
	}
}

func TestHasTaglineTrimsWhitespace(t *testing.T) {
	if (LogoInput{Tagline: "   "}).HasTagline() {
		t.Fatalf("whitespace tagline must not render")
	}
	if !(LogoInput{Tagline: "Reach Higher"}).HasTagline() {
		t.Fatalf("expected tagline to render")
	}
}

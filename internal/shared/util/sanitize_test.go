package util

import "testing"

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "Zenith Labs", want: "zenith-labs"},
		{in: "  ../../etc/passwd ", want: "etc-passwd"},
		{in: "A&B  Partners, LLC", want: "a-b-partners-llc"},
		{in: "Café Noir", want: "caf-noir"},
		{in: "---", wantErr: true},
		{in: "", wantErr: true},
		{in: "日本", wantErr: true},
	}
	for _, tt := range tests {
		got, err := SanitizeFileName(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("SanitizeFileName(%q) expected error, got %q", tt.in, got)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Fatalf("SanitizeFileName(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}
}

func TestSanitizeFileNameTruncates(t *testing.T) {
	long := ""
	for i := 0; i < 100; i++ {
		long += "a"
	}
	got, err := SanitizeFileName(long)
	if err != nil || len(got) != maxFileNameLen {
		t.Fatalf("expected %d chars, got %d (%v)", maxFileNameLen, len(got), err)
	}
}

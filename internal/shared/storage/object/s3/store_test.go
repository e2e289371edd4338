package s3

import "testing"

func TestApplyPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prefix string
		key    string
		want   string
	}{
		{name: "no prefix", prefix: "", key: "logos/u/variant-0_512.png", want: "logos/u/variant-0_512.png"},
		{name: "simple prefix", prefix: "root", key: "logos/u/variant-0_512.png", want: "root/logos/u/variant-0_512.png"},
		{name: "prefix trailing slash", prefix: "root/", key: "logos/u/variant-0_512.png", want: "root/logos/u/variant-0_512.png"},
		{name: "prefix and key slashes", prefix: "/root/", key: "/logos/u/variant-0_512.png", want: "root/logos/u/variant-0_512.png"},
		{name: "nested prefix", prefix: "root/sub", key: "logos/u/variant-0_512.png", want: "root/sub/logos/u/variant-0_512.png"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := applyPrefix(tt.prefix, tt.key); got != tt.want {
				t.Fatalf("applyPrefix(%q, %q) = %q, want %q", tt.prefix, tt.key, got, tt.want)
			}
		})
	}
}

func TestChunk(t *testing.T) {
	t.Parallel()

	items := make([]int, 2501)
	got := chunk(items, 1000)
	if len(got) != 3 || len(got[0]) != 1000 || len(got[2]) != 501 {
		t.Fatalf("unexpected batches: %d", len(got))
	}
	if len(chunk([]int{}, 1000)) != 0 {
		t.Fatalf("expected no batches for empty input")
	}
}

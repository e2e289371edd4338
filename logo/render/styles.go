package render

import "logo-backend/logo/industry"

// VariantCount is the number of documents produced per generation.
const VariantCount = 4

// SelectStyles picks exactly VariantCount variant names from pool. Pools with
// enough entries are taken in declared order; shorter pools are padded with
// pick(len(pool)), which must return an index in [0, n).
func SelectStyles(pool []string, pick func(n int) int) []string {
	if len(pool) == 0 {
		pool = industry.Default().StyleVariations
	}
	if len(pool) >= VariantCount {
		return append([]string(nil), pool[:VariantCount]...)
	}
	out := append(make([]string, 0, VariantCount), pool...)
	for len(out) < VariantCount {
		i := pick(len(pool))
		if i < 0 || i >= len(pool) {
			i = 0
		}
		out = append(out, pool[i])
	}
	return out
}

// StrokeWidth is the base pen width for a variant name.
func StrokeWidth(variant string) float64 {
	switch variant {
	case "bold":
		return 45
	case "elegant":
		return 28
	case "flowing":
		return 32
	case "geometric":
		return 40
	default:
		return 38
	}
}

package render

// letters holds the stroke skeleton for each capital letter. Geometry is
// data only; recipes decide how the strokes are painted.
var letters = map[rune]skeleton{
	'A': {
		line(pt(-0.8, 1), pt(0, -1), pt(0.8, 1)),
		line(pt(-0.45, 0.3), pt(0.45, 0.3)),
	},
	'B': {
		line(pt(-0.6, -1), pt(-0.6, 1)),
		curve(pt(-0.6, -1), pt(0.25, -1), pt(0.6, -0.72), pt(0.6, -0.28), pt(0.25, 0), pt(-0.6, 0)),
		curve(pt(-0.6, 0), pt(0.35, 0), pt(0.7, 0.3), pt(0.7, 0.7), pt(0.35, 1), pt(-0.6, 1)),
	},
	'C': {
		arc(0.75, 1, 40, 320, 14),
	},
	'D': {
		line(pt(-0.6, -1), pt(-0.6, 1)),
		curve(pt(-0.6, -1), pt(0.1, -1), pt(0.7, -0.5), pt(0.7, 0.5), pt(0.1, 1), pt(-0.6, 1)),
	},
	'E': {
		line(pt(0.6, -1), pt(-0.6, -1), pt(-0.6, 1), pt(0.6, 1)),
		line(pt(-0.6, 0), pt(0.4, 0)),
	},
	'F': {
		line(pt(0.6, -1), pt(-0.6, -1), pt(-0.6, 1)),
		line(pt(-0.6, 0), pt(0.4, 0)),
	},
	'G': {
		arc(0.75, 1, 30, 320, 14),
		line(pt(0.05, 0.05), pt(0.72, 0.05), pt(0.72, 0.6)),
	},
	'H': {
		line(pt(-0.7, -1), pt(-0.7, 1)),
		line(pt(0.7, -1), pt(0.7, 1)),
		line(pt(-0.7, 0), pt(0.7, 0)),
	},
	'I': {
		line(pt(0, -1), pt(0, 1)),
		line(pt(-0.45, -1), pt(0.45, -1)),
		line(pt(-0.45, 1), pt(0.45, 1)),
	},
	'J': {
		line(pt(-0.2, -1), pt(0.6, -1)),
		curve(pt(0.4, -1), pt(0.4, 0.5), pt(0.2, 0.95), pt(-0.2, 1), pt(-0.55, 0.75), pt(-0.6, 0.45)),
	},
	'K': {
		line(pt(-0.6, -1), pt(-0.6, 1)),
		line(pt(0.65, -1), pt(-0.6, 0.15)),
		line(pt(-0.2, -0.22), pt(0.7, 1)),
	},
	'L': {
		line(pt(-0.55, -1), pt(-0.55, 1), pt(0.65, 1)),
	},
	'M': {
		line(pt(-0.8, 1), pt(-0.8, -1), pt(0, 0.3), pt(0.8, -1), pt(0.8, 1)),
	},
	'N': {
		line(pt(-0.7, 1), pt(-0.7, -1), pt(0.7, 1), pt(0.7, -1)),
	},
	'O': {
		ellipse(0.78, 1),
	},
	'P': {
		line(pt(-0.6, 1), pt(-0.6, -1)),
		curve(pt(-0.6, -1), pt(0.25, -1), pt(0.65, -0.7), pt(0.65, -0.25), pt(0.25, 0.05), pt(-0.6, 0.05)),
	},
	'Q': {
		ellipse(0.78, 1),
		line(pt(0.2, 0.45), pt(0.8, 1.05)),
	},
	'R': {
		line(pt(-0.6, 1), pt(-0.6, -1)),
		curve(pt(-0.6, -1), pt(0.25, -1), pt(0.65, -0.7), pt(0.65, -0.25), pt(0.25, 0.05), pt(-0.6, 0.05)),
		line(pt(0, 0.05), pt(0.7, 1)),
	},
	'S': {
		curve(pt(0.6, -0.75), pt(0.3, -1), pt(-0.3, -1), pt(-0.6, -0.65), pt(-0.4, -0.15),
			pt(0.4, 0.15), pt(0.65, 0.6), pt(0.3, 1), pt(-0.3, 1), pt(-0.65, 0.75)),
	},
	'T': {
		line(pt(-0.75, -1), pt(0.75, -1)),
		line(pt(0, -1), pt(0, 1)),
	},
	'U': {
		curve(pt(-0.65, -1), pt(-0.65, 0.4), pt(-0.35, 0.95), pt(0.35, 0.95), pt(0.65, 0.4), pt(0.65, -1)),
	},
	'V': {
		line(pt(-0.75, -1), pt(0, 1), pt(0.75, -1)),
	},
	'W': {
		line(pt(-0.85, -1), pt(-0.45, 1), pt(0, -0.2), pt(0.45, 1), pt(0.85, -1)),
	},
	'X': {
		line(pt(-0.7, -1), pt(0.7, 1)),
		line(pt(0.7, -1), pt(-0.7, 1)),
	},
	'Y': {
		line(pt(-0.7, -1), pt(0, 0)),
		line(pt(0.7, -1), pt(0, 0), pt(0, 1)),
	},
	'Z': {
		line(pt(-0.7, -1), pt(0.7, -1), pt(-0.7, 1), pt(0.7, 1)),
	},
}

// skeletonFor returns the skeleton for an upper-case letter.
func skeletonFor(letter rune) (skeleton, bool) {
	sk, ok := letters[letter]
	return sk, ok
}

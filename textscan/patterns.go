package textscan

import "regexp"

// Numeral patterns match a run of digits with interior commas or decimal
// points, or a lone digit. Interior punctuation must sit between digits,
// so sentence-final periods and commas stay out of the match.
var (
	odiaNumeralPattern  = regexp.MustCompile(`[୦-୯][୦-୯,.]*[୦-୯]|[୦-୯]`)
	asciiNumeralPattern = regexp.MustCompile(`[0-9][0-9,.]*[0-9]|[0-9]`)
)

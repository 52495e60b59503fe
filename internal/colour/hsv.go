package colour

import "math"

// rgbToHSV converts RGB channel values (each 0-1) to HSV colour space.
// Returns hue (0-360), saturation (0-1), value (0-1).
func rgbToHSV(r, g, b float64) (h, s, v float64) {
	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	v = maxVal

	if maxVal == 0 {
		return 0, 0, 0
	}
	s = delta / maxVal

	if delta == 0 {
		return 0, s, v
	}

	switch maxVal {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	case b:
		h = (r-g)/delta + 4
	}

	h *= 60
	return h, s, v
}

// Package colour provides colour sampling types and the colour naming
// rules used to label sprite frames.
package colour

import "fmt"

// RGB represents a colour in 8-bit RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// Sample is an averaged colour with float64 channel means on the 0-255
// scale. Channel means are kept unrounded so classification thresholds
// see the true average.
type Sample struct {
	R float64
	G float64
	B float64
}

// RGB rounds the sample down to an 8-bit RGB value for display.
func (s Sample) RGB() RGB {
	return RGB{R: clampChannel(s.R), G: clampChannel(s.G), B: clampChannel(s.B)}
}

// IsBlack reports whether all channel means are exactly zero, which is
// the defined fallback for regions with no opaque pixels.
func (s Sample) IsBlack() bool {
	return s.R == 0 && s.G == 0 && s.B == 0
}

func clampChannel(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

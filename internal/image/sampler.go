package image

import (
	"image"
	"image/color"

	"github.com/ineffably/moxijs/internal/colour"
)

// AverageOpaque calculates the mean colour of the pixels in a region
// whose alpha channel is greater than zero. Channel means are computed
// on straight (non-premultiplied) values so translucent pixels keep
// their stored colour. A region with no opaque pixels averages to
// black. The returned rectangle is the region actually sampled.
func AverageOpaque(img image.Image, rect image.Rectangle) (colour.Sample, image.Rectangle) {
	// Out-of-bounds rects are clamped rather than rejected; a frame
	// record pointing past the sheet still gets a defined colour.
	clamped := rect.Intersect(img.Bounds())

	var totalR, totalG, totalB float64
	var count int

	for y := clamped.Min.Y; y < clamped.Max.Y; y++ {
		for x := clamped.Min.X; x < clamped.Max.X; x++ {
			px := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if px.A == 0 {
				continue
			}
			totalR += float64(px.R)
			totalG += float64(px.G)
			totalB += float64(px.B)
			count++
		}
	}

	if count == 0 {
		return colour.Sample{}, clamped
	}

	return colour.Sample{
		R: totalR / float64(count),
		G: totalG / float64(count),
		B: totalB / float64(count),
	}, clamped
}

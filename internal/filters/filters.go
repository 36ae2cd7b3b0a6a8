// Filters perform per-pixel color operations on a bitmap
package filters

import (
	"github.com/ibrahimkhan1214/image-converter/internal/bmp"
	"github.com/ibrahimkhan1214/image-converter/internal/utils"
)

// Inverts (negates) the bitmap image in-place. Each channel is complemented
// on its own, so applying Invert twice restores the original.
func Invert(b *bmp.Bitmap) {
	for i := range b.Pixels {
		p := &b.Pixels[i]
		p.R = 255 - p.R
		p.G = 255 - p.G
		p.B = 255 - p.B
	}
}

// Negative returns an inverted copy of b, leaving b untouched.
func Negative(b *bmp.Bitmap) *bmp.Bitmap {
	dup := b.Clone()
	Invert(dup)
	return dup
}

// CollapsedNegative reproduces the output of the old converter: the three
// complemented channels are summed, clamped to a byte and written to R, G
// and B alike. The result is gray, not a color negative.
func CollapsedNegative(b *bmp.Bitmap) {
	for i := range b.Pixels {
		p := &b.Pixels[i]
		v := utils.ClampByte((255 - int(p.R)) + (255 - int(p.G)) + (255 - int(p.B)))
		p.R, p.G, p.B = v, v, v
	}
}

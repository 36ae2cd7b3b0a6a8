// Package verify cross-checks written bitmaps with golang.org/x/image/bmp,
// a decoder that shares no code with ours.
package verify

import (
	"fmt"
	"image"
	"os"

	"golang.org/x/image/bmp"

	ourbmp "github.com/ibrahimkhan1214/image-converter/internal/bmp"
)

// File decodes the bitmap at path and compares it pixel by pixel with want.
func File(path string, want *ourbmp.Bitmap) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("verify: open %s: %w", path, err)
	}
	defer f.Close()

	img, err := bmp.Decode(f)
	if err != nil {
		return fmt.Errorf("verify: decode %s: %w", path, err)
	}
	return Image(img, want)
}

// Image compares a decoded image with the grid of want. x/image/bmp yields
// rows top to bottom, so row 0 of the grid is the last line of img.
func Image(img image.Image, want *ourbmp.Bitmap) error {
	bounds := img.Bounds()
	if bounds.Dx() != want.Width() || bounds.Dy() != want.Height() {
		return fmt.Errorf("verify: size %dx%d, want %dx%d", bounds.Dx(), bounds.Dy(), want.Width(), want.Height())
	}

	for row := 0; row < want.Height(); row++ {
		y := bounds.Max.Y - row - 1
		for col, p := range want.Row(row) {
			r, g, b, _ := img.At(bounds.Min.X+col, y).RGBA()
			got := ourbmp.Pixel{R: byte(r >> 8), G: byte(g >> 8), B: byte(b >> 8)}
			if got != p {
				return fmt.Errorf("verify: pixel (row %d, col %d) = %+v, want %+v", row, col, got, p)
			}
		}
	}
	return nil
}

package bmp_test

import (
	"bytes"
	"image"
	"testing"

	xbmp "golang.org/x/image/bmp"

	"github.com/ibrahimkhan1214/image-converter/internal/bmp"
)

// Files written by Encode must read back identically with x/image/bmp, and
// files written by x/image/bmp must decode to the same picture.
func TestInteropWithXImage(t *testing.T) {
	for _, size := range [][2]int{{1, 1}, {2, 3}, {4, 2}, {7, 5}} {
		width, height := size[0], size[1]

		bitmap, err := bmp.CreateBitmap(width, height)
		if err != nil {
			t.Fatal(err)
		}
		for i := range bitmap.Pixels {
			bitmap.Pixels[i] = bmp.Pixel{B: byte(i * 11), G: byte(i*5 + 100), R: byte(i * 29)}
		}

		var ours bytes.Buffer
		if err := bmp.Encode(&ours, bitmap); err != nil {
			t.Fatal(err)
		}
		img, err := xbmp.Decode(bytes.NewReader(ours.Bytes()))
		if err != nil {
			t.Fatalf("%dx%d: x/image decode: %v", width, height, err)
		}
		assertSameImage(t, img, bitmap.Image())

		var theirs bytes.Buffer
		if err := xbmp.Encode(&theirs, bitmap.Image()); err != nil {
			t.Fatal(err)
		}
		decoded, err := bmp.Decode(&theirs)
		if err != nil {
			t.Fatalf("%dx%d: decode x/image output: %v", width, height, err)
		}
		assertSameImage(t, decoded.Image(), bitmap.Image())
	}
}

func assertSameImage(t *testing.T, got image.Image, want *image.RGBA) {
	t.Helper()
	if got.Bounds() != want.Bounds() {
		t.Fatalf("bounds = %v, want %v", got.Bounds(), want.Bounds())
	}
	b := want.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			gr, gg, gb, _ := got.At(x, y).RGBA()
			wr, wg, wb, _ := want.At(x, y).RGBA()
			if gr != wr || gg != wg || gb != wb {
				t.Fatalf("(%d,%d) = %v, want %v", x, y, got.At(x, y), want.At(x, y))
			}
		}
	}
}

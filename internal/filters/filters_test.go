package filters

import (
	"testing"

	"github.com/ibrahimkhan1214/image-converter/internal/bmp"
)

func newBitmap(t *testing.T, pixels ...bmp.Pixel) *bmp.Bitmap {
	t.Helper()
	b, err := bmp.CreateBitmap(len(pixels), 1)
	if err != nil {
		t.Fatal(err)
	}
	copy(b.Pixels, pixels)
	return b
}

func TestInvertChannelsIndependently(t *testing.T) {
	b := newBitmap(t, bmp.Pixel{R: 10, G: 200, B: 0})
	Invert(b)

	want := bmp.Pixel{R: 245, G: 55, B: 255}
	if got := b.At(0, 0); got != want {
		t.Errorf("Invert = %+v, want %+v", got, want)
	}
}

func TestInvertIsInvolution(t *testing.T) {
	pixels := make([]bmp.Pixel, 256)
	for v := range pixels {
		pixels[v] = bmp.Pixel{R: byte(v), G: byte(255 - v), B: byte(v * 7)}
	}
	b := newBitmap(t, pixels...)

	Invert(b)
	for v, p := range b.Pixels {
		if p.R != 255-byte(v) {
			t.Fatalf("R(%d) = %d", v, p.R)
		}
	}
	Invert(b)
	for v, p := range b.Pixels {
		if p != pixels[v] {
			t.Fatalf("pixel %d = %+v, want %+v", v, p, pixels[v])
		}
	}
}

func TestNegativeLeavesInputUntouched(t *testing.T) {
	in := newBitmap(t, bmp.Pixel{R: 1, G: 2, B: 3}, bmp.Pixel{R: 250})
	out := Negative(in)

	if in.At(0, 0) != (bmp.Pixel{R: 1, G: 2, B: 3}) {
		t.Errorf("input changed: %+v", in.At(0, 0))
	}
	if got := out.At(0, 1); got != (bmp.Pixel{R: 5, G: 255, B: 255}) {
		t.Errorf("Negative = %+v", got)
	}
	if out.BIHeader != in.BIHeader || out.BFHeader != in.BFHeader {
		t.Errorf("headers differ")
	}
}

func TestCollapsedNegative(t *testing.T) {
	tests := []struct {
		in   bmp.Pixel
		want byte
	}{
		{bmp.Pixel{R: 10, G: 200, B: 0}, 255}, // 245+55+255 clamps
		{bmp.Pixel{R: 250, G: 250, B: 250}, 15},
		{bmp.Pixel{R: 255, G: 255, B: 255}, 0},
		{bmp.Pixel{R: 200, G: 200, B: 200}, 165},
	}
	for _, tt := range tests {
		b := newBitmap(t, tt.in)
		CollapsedNegative(b)
		want := bmp.Pixel{R: tt.want, G: tt.want, B: tt.want}
		if got := b.At(0, 0); got != want {
			t.Errorf("CollapsedNegative(%+v) = %+v, want %+v", tt.in, got, want)
		}
	}
}

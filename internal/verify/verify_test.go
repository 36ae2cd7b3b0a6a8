package verify

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/ibrahimkhan1214/image-converter/internal/bmp"
	"github.com/ibrahimkhan1214/image-converter/internal/filters"
)

func writtenBitmap(t *testing.T) (string, *bmp.Bitmap) {
	t.Helper()
	b, err := bmp.CreateBitmap(3, 2)
	if err != nil {
		t.Fatal(err)
	}
	b.Set(0, 0, bmp.Pixel{R: 255})
	b.Set(1, 2, bmp.Pixel{G: 128, B: 7})
	filters.Invert(b)

	path := filepath.Join(t.TempDir(), "out.bmp")
	if err := bmp.WriteFile(path, b); err != nil {
		t.Fatal(err)
	}
	return path, b
}

func TestFileMatches(t *testing.T) {
	path, b := writtenBitmap(t)
	if err := File(path, b); err != nil {
		t.Errorf("File: %v", err)
	}
}

func TestFileDetectsMismatch(t *testing.T) {
	path, b := writtenBitmap(t)

	changed := b.Clone()
	changed.Set(1, 2, bmp.Pixel{})
	if err := File(path, changed); err == nil || !strings.Contains(err.Error(), "row 1, col 2") {
		t.Errorf("File = %v, want pixel mismatch at row 1, col 2", err)
	}

	bigger, err := bmp.CreateBitmap(3, 3)
	if err != nil {
		t.Fatal(err)
	}
	if err := File(path, bigger); err == nil || !strings.Contains(err.Error(), "size") {
		t.Errorf("File = %v, want size mismatch", err)
	}
}

func TestFileMissing(t *testing.T) {
	b, err := bmp.CreateBitmap(1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if err := File(filepath.Join(t.TempDir(), "nope.bmp"), b); err == nil {
		t.Error("File succeeded on a missing file")
	}
}

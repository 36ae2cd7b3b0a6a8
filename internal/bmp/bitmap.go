// bmp package implements a reader and writer for uncompressed 24-bit bitmaps.
package bmp

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"os"

	"github.com/ibrahimkhan1214/image-converter/internal/utils"
)

type Pixel struct {
	B, G, R byte
}

// Bitmap is a decoded 24-bit bitmap: both headers exactly as read, plus the
// pixel grid. Pixels holds Height rows of Width pixels, row 0 being the
// bottom scanline (the first one on disk).
type Bitmap struct {
	Filename string
	BFHeader BitmapFileHeader
	BIHeader BitmapInfoHeader
	Pixels   []Pixel
}

func (b *Bitmap) Width() int  { return int(b.BIHeader.Width) }
func (b *Bitmap) Height() int { return int(b.BIHeader.Height) }

// Row returns the pixels of a row (0 = bottom). The slice aliases the grid.
func (b *Bitmap) Row(row int) []Pixel {
	w := b.Width()
	return b.Pixels[row*w : (row+1)*w]
}

// At returns the pixel at (row, col), row 0 being the bottom scanline.
func (b *Bitmap) At(row, col int) Pixel {
	return b.Pixels[row*b.Width()+col]
}

func (b *Bitmap) Set(row, col int, p Pixel) {
	b.Pixels[row*b.Width()+col] = p
}

// Creates and returns a blank bitmap image (24 bit uncompressed)
func CreateBitmap(width, height int) (*Bitmap, error) {
	if err := CheckDimensions(int32(width), int32(height)); err != nil {
		return nil, err
	}

	sizeImage := uint32(Stride(width) * height)

	return &Bitmap{
		BFHeader: BitmapFileHeader{Type: Signature, OffBits: HeadersSize, Size: HeadersSize + sizeImage},
		BIHeader: BitmapInfoHeader{
			Size:      InfoHeaderSize,
			Width:     int32(width),
			Height:    int32(height),
			Planes:    1,
			BitCount:  BitsPerPixel,
			SizeImage: sizeImage,
		},
		Pixels: make([]Pixel, width*height),
	}, nil
}

// Decode reads a whole bitmap from r. Headers are validated before any
// pixel memory is allocated.
func Decode(r io.Reader) (*Bitmap, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &IOError{Op: "read", Err: err}
	}
	return decode(data)
}

func decode(data []byte) (*Bitmap, error) {
	size := int64(len(data))

	// Read File Header
	if size < FileHeaderSize {
		return nil, &TruncatedInputError{Section: "file header", Want: FileHeaderSize, Got: size}
	}
	var bfHeader BitmapFileHeader
	if err := binary.Read(bytes.NewReader(data[:FileHeaderSize]), binary.LittleEndian, &bfHeader); err != nil {
		return nil, err
	}
	if err := CheckSignature(bfHeader.Type); err != nil {
		return nil, err
	}

	// The info header announces its own size; only the 40-byte one is read
	if size < FileHeaderSize+4 {
		return nil, &TruncatedInputError{Section: "info header", Want: InfoHeaderSize, Got: size - FileHeaderSize}
	}
	if err := CheckHeaderSize(binary.LittleEndian.Uint32(data[FileHeaderSize:])); err != nil {
		return nil, err
	}
	if size < HeadersSize {
		return nil, &TruncatedInputError{Section: "info header", Want: InfoHeaderSize, Got: size - FileHeaderSize}
	}
	var biHeader BitmapInfoHeader
	if err := binary.Read(bytes.NewReader(data[FileHeaderSize:HeadersSize]), binary.LittleEndian, &biHeader); err != nil {
		return nil, err
	}

	if err := biHeader.Validate(); err != nil {
		return nil, err
	}
	if err := CheckOffset(bfHeader.OffBits); err != nil {
		return nil, err
	}

	width := int(biHeader.Width)
	height := int(biHeader.Height)
	stride := int64(Stride(width))
	offset := int64(bfHeader.OffBits)

	// Anything between the headers and OffBits is skipped unread.
	// Compare row counts rather than byte totals so huge headers can't overflow.
	available := max(size-offset, 0)
	if available/stride < int64(height) {
		return nil, &TruncatedInputError{Section: "pixel array", Want: pixelArraySize(stride, int64(height)), Got: available}
	}

	bitmap := &Bitmap{BFHeader: bfHeader, BIHeader: biHeader, Pixels: make([]Pixel, width*height)}

	// Disk rows are bottom-up, which is also the grid's row order
	for row := 0; row < height; row++ {
		start := offset + int64(row)*stride
		rowBytes := data[start : start+int64(width*BytesPerPixel)] // padding excluded

		if err := binary.Read(bytes.NewReader(rowBytes), binary.LittleEndian, bitmap.Row(row)); err != nil {
			return nil, fmt.Errorf("decoding row %d: %w", row, err)
		}
	}

	return bitmap, nil
}

// pixelArraySize is stride*height, saturated at math.MaxInt64.
func pixelArraySize(stride, height int64) int64 {
	if height > math.MaxInt64/stride {
		return math.MaxInt64
	}
	return stride * height
}

// ReadHeaders reads only the two headers of a bitmap file, without
// validating them, so they can be shown even for files Decode rejects.
// The result has no pixels.
func ReadHeaders(filename string) (*Bitmap, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, &IOError{Op: "open", Path: filename, Err: err}
	}
	defer file.Close()

	buf := make([]byte, HeadersSize)
	n, err := io.ReadFull(file, buf)
	switch {
	case errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF):
		return nil, &TruncatedInputError{Section: "headers", Want: HeadersSize, Got: int64(n)}
	case err != nil:
		return nil, &IOError{Op: "read", Path: filename, Err: err}
	}

	bitmap := &Bitmap{Filename: filename}
	r := bytes.NewReader(buf)
	if err := binary.Read(r, binary.LittleEndian, &bitmap.BFHeader); err != nil {
		return nil, err
	}
	if err := binary.Read(r, binary.LittleEndian, &bitmap.BIHeader); err != nil {
		return nil, err
	}
	return bitmap, nil
}

// Reads a Bitmap file
func ReadFile(filename string) (*Bitmap, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, &IOError{Op: "open", Path: filename, Err: err}
	}
	defer file.Close()

	bitmap, err := Decode(file)
	if err != nil {
		var ioErr *IOError
		if errors.As(err, &ioErr) {
			ioErr.Path = filename
		}
		return nil, err
	}
	bitmap.Filename = filename

	return bitmap, nil
}

// Encode writes b to w: both headers verbatim, zero filler up to OffBits,
// then the rows bottom-up with freshly zeroed padding.
func Encode(w io.Writer, b *Bitmap) error {
	width, height := b.Width(), b.Height()
	if err := CheckDimensions(b.BIHeader.Width, b.BIHeader.Height); err != nil {
		return err
	}
	if len(b.Pixels) != width*height {
		return &FormatError{Reason: fmt.Sprintf("pixel grid holds %d pixels, headers describe %dx%d", len(b.Pixels), width, height)}
	}
	if err := CheckOffset(b.BFHeader.OffBits); err != nil {
		return err
	}

	// Create a buffer (to reduce syscalls)
	bw := bufio.NewWriter(w)

	if err := binary.Write(bw, binary.LittleEndian, &b.BFHeader); err != nil {
		return &IOError{Op: "write", Err: err}
	}
	if err := binary.Write(bw, binary.LittleEndian, &b.BIHeader); err != nil {
		return &IOError{Op: "write", Err: err}
	}
	if gap := int(b.BFHeader.OffBits) - HeadersSize; gap > 0 {
		if _, err := bw.Write(make([]byte, gap)); err != nil {
			return &IOError{Op: "write", Err: err}
		}
	}

	paddingBytes := make([]byte, Padding(width))
	for row := 0; row < height; row++ {
		if err := binary.Write(bw, binary.LittleEndian, b.Row(row)); err != nil {
			return &IOError{Op: "write", Err: err}
		}
		if _, err := bw.Write(paddingBytes); err != nil {
			return &IOError{Op: "write", Err: err}
		}
	}

	if err := bw.Flush(); err != nil {
		return &IOError{Op: "flush", Err: err}
	}
	return nil
}

// Saves the bitmap image onto local disk. A partially written file is left
// in place on failure.
func WriteFile(filename string, b *Bitmap) (err error) {
	file, err := os.Create(filename)
	if err != nil {
		return &IOError{Op: "create", Path: filename, Err: err}
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = &IOError{Op: "close", Path: filename, Err: cerr}
		}
	}()

	if err := Encode(file, b); err != nil {
		var ioErr *IOError
		if errors.As(err, &ioErr) {
			ioErr.Path = filename
		}
		return err
	}
	return nil
}

// Clone returns a deep copy of the bitmap
func (b *Bitmap) Clone() *Bitmap {
	dup := *b
	dup.Pixels = make([]Pixel, len(b.Pixels))
	copy(dup.Pixels, b.Pixels)
	return &dup
}

// Image converts the grid to an image.RGBA (top row first, as displayed).
func (b *Bitmap) Image() *image.RGBA {
	width, height := b.Width(), b.Height()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for row := 0; row < height; row++ {
		y := height - row - 1
		for col, p := range b.Row(row) {
			img.SetRGBA(col, y, color.RGBA{R: p.R, G: p.G, B: p.B, A: 0xff})
		}
	}
	return img
}

// Print the bitmap in terminal, top row first. Use for small images only
func (b *Bitmap) PrintBitmap(w io.Writer) {
	for row := b.Height() - 1; row >= 0; row-- {
		for _, pixel := range b.Row(row) {
			fmt.Fprint(w, utils.ColoredBlock("  ", int(pixel.R), int(pixel.G), int(pixel.B)))
		}
		fmt.Fprintln(w)
	}
}

// Print the header fields of the bitmap (in human-readable format)
func (b *Bitmap) PrintMetadata(w io.Writer) {
	fmt.Fprintf(w, "Filename: \t%v\n", b.Filename)
	fmt.Fprintf(w, "Signature: \t%s\n", b.BFHeader.Type[:])
	fmt.Fprintf(w, "Filesize: \t%v bytes\n", b.BFHeader.Size)
	fmt.Fprintf(w, "PixelOffset: \t%v bytes\n", b.BFHeader.OffBits)
	fmt.Fprintf(w, "HeaderSize: \t%v bytes\n", b.BIHeader.Size)
	fmt.Fprintf(w, "Width: \t\t%v px\n", b.BIHeader.Width)
	fmt.Fprintf(w, "Height: \t%v px\n", b.BIHeader.Height)
	fmt.Fprintf(w, "Planes: \t%v\n", b.BIHeader.Planes)
	fmt.Fprintf(w, "BitCount: \t%vbits\n", b.BIHeader.BitCount)
	fmt.Fprintf(w, "Compression: \t%v\n", b.BIHeader.Compression)
	fmt.Fprintf(w, "ImageSize: \t%v bytes\n", b.BIHeader.SizeImage)

	// Row layout only means something for headers we can decode
	if CheckBitCount(b.BIHeader.BitCount) == nil && CheckDimensions(b.BIHeader.Width, b.BIHeader.Height) == nil {
		fmt.Fprintf(w, "Stride: \t%v bytes\n", Stride(b.Width()))
		fmt.Fprintf(w, "Padding: \t%v bytes\n", Padding(b.Width()))
	}
}

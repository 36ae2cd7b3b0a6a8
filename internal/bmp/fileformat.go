// BMP-specific structs, sizes and the row layout
package bmp

const (
	FileHeaderSize = 14 // Bytes in BitmapFileHeader
	InfoHeaderSize = 40 // Bytes in BitmapInfoHeader (the only variant we read)
	HeadersSize    = FileHeaderSize + InfoHeaderSize

	BitsPerPixel  = 24
	BytesPerPixel = BitsPerPixel / 8
)

// Signature is the file type marker every bitmap starts with ("BM").
var Signature = [2]byte{'B', 'M'}

// The BitmapFileHeader structure contains information about the type, size,
// and layout of a file that contains a DIB [device-independent bitmap].
// https://learn.microsoft.com/en-us/windows/win32/api/wingdi/ns-wingdi-bitmapfileheader
type BitmapFileHeader struct {
	Type      [2]byte // The file type: must be 0x4d42 (ASCII string "BM").
	Size      uint32  // The size, in bytes, of the bitmap file.
	Reserved1 uint16  // Reserved; carried through untouched.
	Reserved2 uint16  // Reserved; carried through untouched.
	OffBits   uint32  // Bitmap File Offset (In bytes) to Pixel Arrays
}

// The BitmapInfoHeader structure contains information about the
// dimensions and color format of DIB [device-independent bitmap].
// The trailing four fields are never interpreted, only written back.
type BitmapInfoHeader struct {
	Size            uint32 // The number of bytes required by the structure.
	Width           int32  // The width of the bitmap, in pixels.
	Height          int32  // The height of the bitmap, in pixels (positive: bottom-up)
	Planes          uint16 // The number of planes for the target device.
	BitCount        uint16 // The number of bits-per-pixel.
	Compression     uint32 // The type of compression
	SizeImage       uint32 // The size of the image (in bytes). Advisory.
	XPixelsPerM     int32  // The horizontal resolution, in pixels-per-meter.
	YPixelsPerM     int32  // The vertical resolution, in pixels-per-meter.
	ColorsUsed      uint32 // Number of color indexes that are actually used by bitmap.
	ColorsImportant uint32 // Number of color indexes required for displaying the bitmap.
}

// Stride returns the on-disk size of one row (incl. padding) for a 24-bit
// bitmap of the given width. Rows are padded to a multiple of 4 bytes.
func Stride(width int) int {
	return ((width*BitsPerPixel + 31) / 32) * 4
}

// Padding returns the number of zero bytes trailing each row on disk.
func Padding(width int) int {
	return Stride(width) - width*BytesPerPixel
}

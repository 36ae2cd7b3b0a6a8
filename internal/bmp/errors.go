package bmp

import "fmt"

// FormatError reports input that is not a bitmap at all (or whose headers
// contradict each other).
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return "bmp: invalid format: " + e.Reason
}

// UnsupportedFormatError reports a well-formed bitmap that uses a header
// variant, bit depth, compression or plane count this codec does not read.
type UnsupportedFormatError struct {
	Field string
	Want  uint32
	Got   uint32
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("bmp: unsupported %s: got %d, only %d is supported", e.Field, e.Got, e.Want)
}

// InvalidDimensionError reports a width or height that is zero or negative.
type InvalidDimensionError struct {
	Width  int32
	Height int32
}

func (e *InvalidDimensionError) Error() string {
	return fmt.Sprintf("bmp: invalid dimensions %dx%d: width and height must be greater than 0", e.Width, e.Height)
}

// TruncatedInputError reports that the input ended before Section was
// complete.
type TruncatedInputError struct {
	Section string
	Want    int64
	Got     int64
}

func (e *TruncatedInputError) Error() string {
	return fmt.Sprintf("bmp: truncated %s: want %d bytes, got %d", e.Section, e.Want, e.Got)
}

// IOError wraps a failure of the underlying storage (open, read, write,
// flush or close).
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("bmp: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("bmp: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

package bmp

// Each check below inspects a single header field and never rewrites it.
// They are defined for every input value, zero and negatives included.

func CheckSignature(sig [2]byte) error {
	if sig != Signature {
		return &FormatError{Reason: "bad signature"}
	}
	return nil
}

func CheckHeaderSize(size uint32) error {
	if size != InfoHeaderSize {
		return &UnsupportedFormatError{Field: "info header size", Want: InfoHeaderSize, Got: size}
	}
	return nil
}

func CheckBitCount(bits uint16) error {
	if bits != BitsPerPixel {
		return &UnsupportedFormatError{Field: "bits per pixel", Want: BitsPerPixel, Got: uint32(bits)}
	}
	return nil
}

func CheckCompression(compression uint32) error {
	if compression != 0 {
		return &UnsupportedFormatError{Field: "compression", Want: 0, Got: compression}
	}
	return nil
}

func CheckPlanes(planes uint16) error {
	if planes != 1 {
		return &UnsupportedFormatError{Field: "color planes", Want: 1, Got: uint32(planes)}
	}
	return nil
}

// CheckDimensions rejects zero and negative sizes. A negative height would
// mean top-down storage, which is not supported either.
func CheckDimensions(width, height int32) error {
	if width <= 0 || height <= 0 {
		return &InvalidDimensionError{Width: width, Height: height}
	}
	return nil
}

// CheckOffset rejects a pixel array that would start inside the headers.
func CheckOffset(offset uint32) error {
	if offset < HeadersSize {
		return &FormatError{Reason: "pixel offset points inside the headers"}
	}
	return nil
}

// Validate runs every info header check in decode order and returns the
// first rejection.
func (h *BitmapInfoHeader) Validate() error {
	checks := []func() error{
		func() error { return CheckHeaderSize(h.Size) },
		func() error { return CheckBitCount(h.BitCount) },
		func() error { return CheckCompression(h.Compression) },
		func() error { return CheckPlanes(h.Planes) },
		func() error { return CheckDimensions(h.Width, h.Height) },
	}
	for _, check := range checks {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}

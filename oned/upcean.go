package oned

import (
	"fmt"

	zxingrender "github.com/ericlevine/zxingrender"
	"github.com/ericlevine/zxingrender/bitutil"
)

// UPC/EAN guard patterns.
var (
	upceanStartEndPattern = []int{1, 1, 1}
	upceanMiddlePattern   = []int{1, 1, 1, 1, 1}
)

// lPatterns holds the "odd" (L) digit encodings; G encodings are the same
// widths reversed.
var lPatterns = [10][]int{
	{3, 2, 1, 1}, // 0
	{2, 2, 2, 1}, // 1
	{2, 1, 2, 2}, // 2
	{1, 4, 1, 1}, // 3
	{1, 1, 3, 2}, // 4
	{1, 2, 3, 1}, // 5
	{1, 1, 1, 4}, // 6
	{1, 3, 1, 2}, // 7
	{1, 2, 1, 3}, // 8
	{3, 1, 1, 2}, // 9
}

// ean13FirstDigitEncodings gives, per implied first digit, which of the six
// left-hand digits use G rather than L encoding (bit 5 = first digit).
var ean13FirstDigitEncodings = [10]int{
	0x00, 0x0B, 0x0D, 0x0E, 0x13, 0x19, 0x1C, 0x15, 0x16, 0x1A,
}

const (
	ean13CodeWidth = 3 + 7*6 + 5 + 7*6 + 3 // 95
	ean8CodeWidth  = 3 + 7*4 + 5 + 7*4 + 3 // 67
)

func gPattern(digit int) []int {
	l := lPatterns[digit]
	g := make([]int, len(l))
	for i, w := range l {
		g[len(l)-1-i] = w
	}
	return g
}

// completeUPCEAN validates digits and appends the check digit when contents
// is one short of the full length. A supplied check digit must be correct.
func completeUPCEAN(contents string, withoutCheck int) (string, error) {
	if err := checkNumeric(contents); err != nil {
		return "", err
	}
	switch len(contents) {
	case withoutCheck:
		return ChecksumDigitModulo10(contents)
	case withoutCheck + 1:
		if !CheckStandardUPCEANChecksum(contents) {
			return "", fmt.Errorf("contents %q do not pass checksum: %w", contents, zxingrender.ErrFormat)
		}
		return contents, nil
	default:
		return "", fmt.Errorf("requested contents should be %d or %d digits long, but got %d: %w",
			withoutCheck, withoutCheck+1, len(contents), zxingrender.ErrInvalidArgument)
	}
}

// EAN13Writer encodes EAN-13 barcodes.
type EAN13Writer struct{}

// NewEAN13Writer creates a new EAN-13 writer.
func NewEAN13Writer() *EAN13Writer {
	return &EAN13Writer{}
}

// Encode encodes the given contents into an EAN-13 barcode BitMatrix.
func (w *EAN13Writer) Encode(contents string, format zxingrender.Format, width, height int, opts *zxingrender.EncodeOptions) (*bitutil.BitMatrix, error) {
	if format != zxingrender.FormatEAN13 {
		return nil, fmt.Errorf("can only encode EAN_13, but got %s: %w", format, zxingrender.ErrWriter)
	}
	code, err := w.EncodeContents(contents)
	if err != nil {
		return nil, err
	}
	return RenderCode(code, width, height, opts.MarginOr(DefaultMargin)), nil
}

// EncodeContents encodes 12 or 13 digits into the 95-module EAN-13 pattern.
func (w *EAN13Writer) EncodeContents(contents string) ([]bool, error) {
	contents, err := completeUPCEAN(contents, 12)
	if err != nil {
		return nil, err
	}

	parities := ean13FirstDigitEncodings[contents[0]-'0']
	result := make([]bool, ean13CodeWidth)
	pos := appendPattern(result, 0, upceanStartEndPattern, true)
	for i := 1; i <= 6; i++ {
		digit := int(contents[i] - '0')
		pattern := lPatterns[digit]
		if (parities>>(6-i))&1 == 1 {
			pattern = gPattern(digit)
		}
		pos += appendPattern(result, pos, pattern, false)
	}
	pos += appendPattern(result, pos, upceanMiddlePattern, false)
	for i := 7; i <= 12; i++ {
		pos += appendPattern(result, pos, lPatterns[contents[i]-'0'], true)
	}
	appendPattern(result, pos, upceanStartEndPattern, true)
	return result, nil
}

// EAN8Writer encodes EAN-8 barcodes.
type EAN8Writer struct{}

// NewEAN8Writer creates a new EAN-8 writer.
func NewEAN8Writer() *EAN8Writer {
	return &EAN8Writer{}
}

// Encode encodes the given contents into an EAN-8 barcode BitMatrix.
func (w *EAN8Writer) Encode(contents string, format zxingrender.Format, width, height int, opts *zxingrender.EncodeOptions) (*bitutil.BitMatrix, error) {
	if format != zxingrender.FormatEAN8 {
		return nil, fmt.Errorf("can only encode EAN_8, but got %s: %w", format, zxingrender.ErrWriter)
	}
	code, err := w.EncodeContents(contents)
	if err != nil {
		return nil, err
	}
	return RenderCode(code, width, height, opts.MarginOr(DefaultMargin)), nil
}

// EncodeContents encodes 7 or 8 digits into the 67-module EAN-8 pattern.
func (w *EAN8Writer) EncodeContents(contents string) ([]bool, error) {
	contents, err := completeUPCEAN(contents, 7)
	if err != nil {
		return nil, err
	}

	result := make([]bool, ean8CodeWidth)
	pos := appendPattern(result, 0, upceanStartEndPattern, true)
	for i := 0; i <= 3; i++ {
		pos += appendPattern(result, pos, lPatterns[contents[i]-'0'], false)
	}
	pos += appendPattern(result, pos, upceanMiddlePattern, false)
	for i := 4; i <= 7; i++ {
		pos += appendPattern(result, pos, lPatterns[contents[i]-'0'], true)
	}
	appendPattern(result, pos, upceanStartEndPattern, true)
	return result, nil
}

// UPCAWriter encodes UPC-A barcodes as EAN-13 with an implied leading zero.
type UPCAWriter struct {
	ean13 *EAN13Writer
}

// NewUPCAWriter creates a new UPC-A writer.
func NewUPCAWriter() *UPCAWriter {
	return &UPCAWriter{ean13: NewEAN13Writer()}
}

// Encode encodes the given contents into a UPC-A barcode BitMatrix.
func (w *UPCAWriter) Encode(contents string, format zxingrender.Format, width, height int, opts *zxingrender.EncodeOptions) (*bitutil.BitMatrix, error) {
	if format != zxingrender.FormatUPCA {
		return nil, fmt.Errorf("can only encode UPC_A, but got %s: %w", format, zxingrender.ErrWriter)
	}
	return w.ean13.Encode("0"+contents, zxingrender.FormatEAN13, width, height, opts)
}

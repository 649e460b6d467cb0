package render

import (
	"fmt"

	zxingrender "github.com/ericlevine/zxingrender"
	"github.com/ericlevine/zxingrender/oned"
)

// CaptionRows is the height, in pixels, of the strip left blank at the
// bottom of a bitmap whose barcode carries a caption. A captioned matrix
// must be taller than CaptionRows; Render rejects shorter ones with
// ErrInvalidArgument instead of returning an all-blank bitmap.
const CaptionRows = 16

const captionGap = "   "

// Caption is the human-readable text shown beneath a linear barcode.
type Caption struct {
	Show         bool
	ReservedRows int
	Text         string
}

// HasCaption reports whether a barcode of the given format and content is
// rendered with a caption strip.
func HasCaption(format zxingrender.Format, content string) bool {
	if content == "" {
		return false
	}
	switch format {
	case zxingrender.FormatCode39, zxingrender.FormatCode128, zxingrender.FormatEAN13,
		zxingrender.FormatEAN8, zxingrender.FormatCodabar, zxingrender.FormatITF,
		zxingrender.FormatUPCA:
		return true
	}
	return false
}

// FormatCaption computes the caption for content encoded as format.
//
// EAN-8 takes 7 or 8 digits and EAN-13 takes 12 or 13; the short form gets
// its check digit appended. The digits are then split into the groups
// printed under the bars. Other captioned formats show content unchanged.
func FormatCaption(format zxingrender.Format, content string) (Caption, error) {
	if !HasCaption(format, content) {
		return Caption{}, nil
	}
	text := content
	var err error
	switch format {
	case zxingrender.FormatEAN8:
		text, err = completeDigits(format, content, 8)
		if err != nil {
			return Caption{}, err
		}
		text = insertGap(text, 4)
	case zxingrender.FormatEAN13:
		text, err = completeDigits(format, content, 13)
		if err != nil {
			return Caption{}, err
		}
		// Higher index first so the second split is not shifted.
		text = insertGap(text, 7)
		text = insertGap(text, 1)
	}
	return Caption{Show: true, ReservedRows: CaptionRows, Text: text}, nil
}

// completeDigits checks that content is full or one short of full length and
// appends the check digit in the latter case. An existing check digit is
// shown as given.
func completeDigits(format zxingrender.Format, content string, full int) (string, error) {
	switch len(content) {
	case full - 1:
		s, err := oned.ChecksumDigitModulo10(content)
		if err != nil {
			return "", fmt.Errorf("%s caption: %w", format, err)
		}
		return s, nil
	case full:
		for i := 0; i < len(content); i++ {
			if content[i] < '0' || content[i] > '9' {
				return "", fmt.Errorf("%s caption: non-digit character %q: %w", format, content[i], zxingrender.ErrInvalidArgument)
			}
		}
		return content, nil
	default:
		return "", fmt.Errorf("%s caption: want %d or %d digits, got %d: %w",
			format, full-1, full, len(content), zxingrender.ErrInvalidArgument)
	}
}

func insertGap(s string, i int) string {
	return s[:i] + captionGap + s[i:]
}

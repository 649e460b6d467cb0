package zxingrender

import "github.com/ericlevine/zxingrender/bitutil"

// EncodeOptions configures barcode encoding behavior.
type EncodeOptions struct {
	// Margin specifies the margin (quiet zone) in modules around the barcode.
	// Nil selects the format's default.
	Margin *int

	// ErrorCorrection specifies the QR error correction level: "L", "M",
	// "Q" or "H". Empty means "L".
	ErrorCorrection string
}

// MarginOr returns the configured margin, or def when none is set.
func (o *EncodeOptions) MarginOr(def int) int {
	if o == nil || o.Margin == nil || *o.Margin < 0 {
		return def
	}
	return *o.Margin
}

// Writer encodes data into a barcode.
type Writer interface {
	// Encode encodes the given contents into a barcode.
	Encode(contents string, format Format, width, height int, opts *EncodeOptions) (*bitutil.BitMatrix, error)
}

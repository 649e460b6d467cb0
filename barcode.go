// Package zxingrender encodes barcodes into bit matrices and describes the
// formats the render package knows how to caption.
package zxingrender

import (
	"fmt"
	"strings"
)

// Format represents a barcode format.
type Format int

const (
	FormatQRCode Format = iota
	FormatPDF417
	FormatCode128
	FormatCode39
	FormatCode93
	FormatEAN13
	FormatEAN8
	FormatUPCA
	FormatUPCE
	FormatITF
	FormatCodabar
	FormatDataMatrix
	FormatAztec
)

var formatNames = [...]string{
	FormatQRCode:     "QR_CODE",
	FormatPDF417:     "PDF_417",
	FormatCode128:    "CODE_128",
	FormatCode39:     "CODE_39",
	FormatCode93:     "CODE_93",
	FormatEAN13:      "EAN_13",
	FormatEAN8:       "EAN_8",
	FormatUPCA:       "UPC_A",
	FormatUPCE:       "UPC_E",
	FormatITF:        "ITF",
	FormatCodabar:    "CODABAR",
	FormatDataMatrix: "DATA_MATRIX",
	FormatAztec:      "AZTEC",
}

// String returns the name of the barcode format.
func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return "UNKNOWN"
	}
	return formatNames[f]
}

// OneDimensional reports whether f is a linear (bar/space) symbology.
func (f Format) OneDimensional() bool {
	switch f {
	case FormatCode128, FormatCode39, FormatCode93, FormatEAN13, FormatEAN8,
		FormatUPCA, FormatUPCE, FormatITF, FormatCodabar:
		return true
	}
	return false
}

// ParseFormat looks up a format by name. Matching ignores case and accepts
// '-' in place of '_', so "ean-13" and "EAN_13" are equivalent.
func ParseFormat(name string) (Format, error) {
	key := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(name), "-", "_"))
	for f, n := range formatNames {
		if n == key {
			return Format(f), nil
		}
	}
	return 0, fmt.Errorf("unknown barcode format %q: %w", name, ErrInvalidArgument)
}

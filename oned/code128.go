package oned

import (
	"fmt"

	zxingrender "github.com/ericlevine/zxingrender"
	"github.com/ericlevine/zxingrender/bitutil"
)

// Escape runes that stand for the Code 128 function characters in input.
const (
	Code128EscapeFNC1 = 'ñ'
	Code128EscapeFNC2 = 'ò'
	Code128EscapeFNC3 = 'ó'
	Code128EscapeFNC4 = 'ô'
)

// Symbol values. CODE A/B/C double as the switch characters; FNC4 shares
// the value of the code set it appears in.
const (
	code128FNC3   = 96
	code128FNC2   = 97
	code128CodeC  = 99
	code128CodeB  = 100
	code128CodeA  = 101
	code128FNC4B  = 100
	code128FNC4A  = 101
	code128FNC1   = 102
	code128StartA = 103
	code128StartB = 104
	code128StartC = 105
	code128Stop   = 106

	code128MaxLength = 80
)

// code128Patterns holds the bar/space widths of every symbol value.
var code128Patterns = [107][]int{
	{2, 1, 2, 2, 2, 2}, // 0
	{2, 2, 2, 1, 2, 2},
	{2, 2, 2, 2, 2, 1},
	{1, 2, 1, 2, 2, 3},
	{1, 2, 1, 3, 2, 2},
	{1, 3, 1, 2, 2, 2}, // 5
	{1, 2, 2, 2, 1, 3},
	{1, 2, 2, 3, 1, 2},
	{1, 3, 2, 2, 1, 2},
	{2, 2, 1, 2, 1, 3},
	{2, 2, 1, 3, 1, 2}, // 10
	{2, 3, 1, 2, 1, 2},
	{1, 1, 2, 2, 3, 2},
	{1, 2, 2, 1, 3, 2},
	{1, 2, 2, 2, 3, 1},
	{1, 1, 3, 2, 2, 2}, // 15
	{1, 2, 3, 1, 2, 2},
	{1, 2, 3, 2, 2, 1},
	{2, 2, 3, 2, 1, 1},
	{2, 2, 1, 1, 3, 2},
	{2, 2, 1, 2, 3, 1}, // 20
	{2, 1, 3, 2, 1, 2},
	{2, 2, 3, 1, 1, 2},
	{3, 1, 2, 1, 3, 1},
	{3, 1, 1, 2, 2, 2},
	{3, 2, 1, 1, 2, 2}, // 25
	{3, 2, 1, 2, 2, 1},
	{3, 1, 2, 2, 1, 2},
	{3, 2, 2, 1, 1, 2},
	{3, 2, 2, 2, 1, 1},
	{2, 1, 2, 1, 2, 3}, // 30
	{2, 1, 2, 3, 2, 1},
	{2, 3, 2, 1, 2, 1},
	{1, 1, 1, 3, 2, 3},
	{1, 3, 1, 1, 2, 3},
	{1, 3, 1, 3, 2, 1}, // 35
	{1, 1, 2, 3, 1, 3},
	{1, 3, 2, 1, 1, 3},
	{1, 3, 2, 3, 1, 1},
	{2, 1, 1, 3, 1, 3},
	{2, 3, 1, 1, 1, 3}, // 40
	{2, 3, 1, 3, 1, 1},
	{1, 1, 2, 1, 3, 3},
	{1, 1, 2, 3, 3, 1},
	{1, 3, 2, 1, 3, 1},
	{1, 1, 3, 1, 2, 3}, // 45
	{1, 1, 3, 3, 2, 1},
	{1, 3, 3, 1, 2, 1},
	{3, 1, 3, 1, 2, 1},
	{2, 1, 1, 3, 3, 1},
	{2, 3, 1, 1, 3, 1}, // 50
	{2, 1, 3, 1, 1, 3},
	{2, 1, 3, 3, 1, 1},
	{2, 1, 3, 1, 3, 1},
	{3, 1, 1, 1, 2, 3},
	{3, 1, 1, 3, 2, 1}, // 55
	{3, 3, 1, 1, 2, 1},
	{3, 1, 2, 1, 1, 3},
	{3, 1, 2, 3, 1, 1},
	{3, 3, 2, 1, 1, 1},
	{3, 1, 4, 1, 1, 1}, // 60
	{2, 2, 1, 4, 1, 1},
	{4, 3, 1, 1, 1, 1},
	{1, 1, 1, 2, 2, 4},
	{1, 1, 1, 4, 2, 2},
	{1, 2, 1, 1, 2, 4}, // 65
	{1, 2, 1, 4, 2, 1},
	{1, 4, 1, 1, 2, 2},
	{1, 4, 1, 2, 2, 1},
	{1, 1, 2, 2, 1, 4},
	{1, 1, 2, 4, 1, 2}, // 70
	{1, 2, 2, 1, 1, 4},
	{1, 2, 2, 4, 1, 1},
	{1, 4, 2, 1, 1, 2},
	{1, 4, 2, 2, 1, 1},
	{2, 4, 1, 2, 1, 1}, // 75
	{2, 2, 1, 1, 1, 4},
	{4, 1, 3, 1, 1, 1},
	{2, 4, 1, 1, 1, 2},
	{1, 3, 4, 1, 1, 1},
	{1, 1, 1, 2, 4, 2}, // 80
	{1, 2, 1, 1, 4, 2},
	{1, 2, 1, 2, 4, 1},
	{1, 1, 4, 2, 1, 2},
	{1, 2, 4, 1, 1, 2},
	{1, 2, 4, 2, 1, 1}, // 85
	{4, 1, 1, 2, 1, 2},
	{4, 2, 1, 1, 1, 2},
	{4, 2, 1, 2, 1, 1},
	{2, 1, 2, 1, 4, 1},
	{2, 1, 4, 1, 2, 1}, // 90
	{4, 1, 2, 1, 2, 1},
	{1, 1, 1, 1, 4, 3},
	{1, 1, 1, 3, 4, 1},
	{1, 3, 1, 1, 4, 1},
	{1, 1, 4, 1, 1, 3}, // 95
	{1, 1, 4, 3, 1, 1},
	{4, 1, 1, 1, 1, 3},
	{4, 1, 1, 3, 1, 1},
	{1, 1, 3, 1, 4, 1},
	{1, 1, 4, 1, 3, 1}, // 100
	{3, 1, 1, 1, 4, 1},
	{4, 1, 1, 1, 3, 1},
	{2, 1, 1, 4, 1, 2}, // START_A
	{2, 1, 1, 2, 1, 4}, // START_B
	{2, 1, 1, 2, 3, 2}, // START_C
	{2, 3, 3, 1, 1, 1, 2}, // STOP
}

// Code128Writer encodes Code 128 barcodes, switching between code sets A, B
// and C to keep the symbol short.
type Code128Writer struct{}

// NewCode128Writer creates a new Code 128 writer.
func NewCode128Writer() *Code128Writer {
	return &Code128Writer{}
}

// Encode encodes the given contents into a Code 128 barcode BitMatrix.
func (w *Code128Writer) Encode(contents string, format zxingrender.Format, width, height int, opts *zxingrender.EncodeOptions) (*bitutil.BitMatrix, error) {
	if format != zxingrender.FormatCode128 {
		return nil, fmt.Errorf("can only encode CODE_128, but got %s: %w", format, zxingrender.ErrWriter)
	}
	code, err := w.EncodeContents(contents)
	if err != nil {
		return nil, err
	}
	return RenderCode(code, width, height, opts.MarginOr(DefaultMargin)), nil
}

// EncodeContents encodes ASCII contents, plus the FNC escape runes, into
// start symbol, data, modulo-103 check symbol and stop pattern.
func (w *Code128Writer) EncodeContents(contents string) ([]bool, error) {
	value := []rune(contents)
	if len(value) == 0 || len(value) > code128MaxLength {
		return nil, fmt.Errorf("CODE_128 contents should be 1 to %d characters, got %d: %w",
			code128MaxLength, len(value), zxingrender.ErrInvalidArgument)
	}
	for _, c := range value {
		if c > 127 && (c < Code128EscapeFNC1 || c > Code128EscapeFNC4) {
			return nil, fmt.Errorf("CODE_128 cannot encode %q: %w", c, zxingrender.ErrInvalidArgument)
		}
	}

	var symbols []int
	codeSet := 0
	for position := 0; position < len(value); {
		next := chooseCode128(value, position, codeSet)
		if next != codeSet {
			switch {
			case codeSet != 0:
				symbols = append(symbols, next)
			case next == code128CodeA:
				symbols = append(symbols, code128StartA)
			case next == code128CodeB:
				symbols = append(symbols, code128StartB)
			default:
				symbols = append(symbols, code128StartC)
			}
			codeSet = next
			continue
		}

		c := value[position]
		position++
		switch {
		case c == Code128EscapeFNC1:
			symbols = append(symbols, code128FNC1)
		case c == Code128EscapeFNC2:
			symbols = append(symbols, code128FNC2)
		case c == Code128EscapeFNC3:
			symbols = append(symbols, code128FNC3)
		case c == Code128EscapeFNC4 && codeSet == code128CodeA:
			symbols = append(symbols, code128FNC4A)
		case c == Code128EscapeFNC4:
			symbols = append(symbols, code128FNC4B)
		case codeSet == code128CodeC:
			// chooseCode128 only stays in C while two digits follow.
			symbols = append(symbols, int(c-'0')*10+int(value[position]-'0'))
			position++
		case codeSet == code128CodeA && c < ' ':
			symbols = append(symbols, int(c)+'`'-' ')
		default:
			symbols = append(symbols, int(c)-' ')
		}
	}

	// The start symbol and the first data symbol both weigh 1.
	checkSum := symbols[0]
	for i, s := range symbols[1:] {
		checkSum += s * (i + 1)
	}
	symbols = append(symbols, checkSum%103, code128Stop)

	total := 0
	for _, s := range symbols {
		total += patternWidth(code128Patterns[s])
	}
	result := make([]bool, total)
	pos := 0
	for _, s := range symbols {
		pos += appendPattern(result, pos, code128Patterns[s], true)
	}
	return result, nil
}

type code128Lookahead int

const (
	code128Uncodable code128Lookahead = iota
	code128OneDigit
	code128TwoDigits
	code128FNC1Found
)

func isDigitRune(c rune) bool { return c >= '0' && c <= '9' }

func code128Peek(value []rune, start int) code128Lookahead {
	if start >= len(value) {
		return code128Uncodable
	}
	if value[start] == Code128EscapeFNC1 {
		return code128FNC1Found
	}
	if !isDigitRune(value[start]) {
		return code128Uncodable
	}
	if start+1 >= len(value) || !isDigitRune(value[start+1]) {
		return code128OneDigit
	}
	return code128TwoDigits
}

// chooseCode128 picks the code set for the symbol at start given the set in
// use (0 before the start symbol).
func chooseCode128(value []rune, start, oldCode int) int {
	lookahead := code128Peek(value, start)
	switch lookahead {
	case code128OneDigit:
		if oldCode == code128CodeA {
			return code128CodeA
		}
		return code128CodeB
	case code128Uncodable:
		if start < len(value) {
			c := value[start]
			if c < ' ' || (oldCode == code128CodeA && (c < '`' || (c >= Code128EscapeFNC1 && c <= Code128EscapeFNC4))) {
				return code128CodeA
			}
		}
		return code128CodeB
	}

	// Two digits or FNC1 ahead.
	if oldCode == code128CodeA && lookahead == code128FNC1Found {
		return code128CodeA
	}
	switch oldCode {
	case code128CodeC:
		return code128CodeC
	case code128CodeB:
		if lookahead == code128FNC1Found {
			return code128CodeB
		}
		// Switching to C only pays off for at least four digits.
		switch code128Peek(value, start+2) {
		case code128Uncodable, code128OneDigit:
			return code128CodeB
		case code128FNC1Found:
			if code128Peek(value, start+3) == code128TwoDigits {
				return code128CodeC
			}
			return code128CodeB
		}
		index := start + 4
		for code128Peek(value, index) == code128TwoDigits {
			index += 2
		}
		if code128Peek(value, index) == code128OneDigit {
			return code128CodeB
		}
		return code128CodeC
	}

	if lookahead == code128FNC1Found {
		lookahead = code128Peek(value, start+1)
	}
	if lookahead == code128TwoDigits {
		return code128CodeC
	}
	return code128CodeB
}

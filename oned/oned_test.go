package oned

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	zxingrender "github.com/ericlevine/zxingrender"
)

func intPtr(v int) *int { return &v }

// bars renders a pattern as '1'/'0' for readable comparisons.
func bars(code []bool) string {
	var sb strings.Builder
	for _, b := range code {
		if b {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

func TestChecksumDigitModulo10(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"400638133393", "4006381333931"},
		{"9638507", "96385074"},
		{"03600029145", "036000291452"},
		{"0", "00"},
		{"1", "17"},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ChecksumDigitModulo10(tc.in)
			if err != nil {
				t.Fatalf("ChecksumDigitModulo10: %v", err)
			}
			if got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestChecksumDigitModulo10SelfConsistent(t *testing.T) {
	for _, prefix := range []string{"1234567", "000000000000", "999999999999", "5901234123", "73513537"} {
		full, err := ChecksumDigitModulo10(prefix)
		if err != nil {
			t.Fatalf("%q: %v", prefix, err)
		}
		sum := 0
		for i := len(full) - 1; i >= 0; i-- {
			weight := 1
			if (len(full)-1-i)%2 == 1 {
				weight = 3
			}
			sum += weight * int(full[i]-'0')
		}
		if sum%10 != 0 {
			t.Errorf("%q: weighted sum %d not divisible by 10", full, sum)
		}
		if !CheckStandardUPCEANChecksum(full) {
			t.Errorf("CheckStandardUPCEANChecksum(%q) = false", full)
		}
	}
}

func TestChecksumDigitModulo10Invalid(t *testing.T) {
	for _, in := range []string{"", "12a4", " 123", "１２３"} {
		if _, err := ChecksumDigitModulo10(in); !errors.Is(err, zxingrender.ErrInvalidArgument) {
			t.Errorf("ChecksumDigitModulo10(%q) err = %v, want ErrInvalidArgument", in, err)
		}
	}
}

func TestCheckStandardUPCEANChecksum(t *testing.T) {
	if !CheckStandardUPCEANChecksum("4006381333931") {
		t.Error("valid EAN-13 rejected")
	}
	for _, bad := range []string{"4006381333932", "1", "", "40063813339x1"} {
		if CheckStandardUPCEANChecksum(bad) {
			t.Errorf("%q accepted", bad)
		}
	}
}

func TestEAN13EncodeContents(t *testing.T) {
	w := NewEAN13Writer()
	short, err := w.EncodeContents("400638133393")
	if err != nil {
		t.Fatal(err)
	}
	full, err := w.EncodeContents("4006381333931")
	if err != nil {
		t.Fatal(err)
	}
	if len(full) != ean13CodeWidth {
		t.Fatalf("len = %d, want %d", len(full), ean13CodeWidth)
	}
	if diff := cmp.Diff(bars(full), bars(short)); diff != "" {
		t.Errorf("check digit not appended (-full +short):\n%s", diff)
	}
	s := bars(full)
	if !strings.HasPrefix(s, "101") || !strings.HasSuffix(s, "101") || s[45:50] != "01010" {
		t.Errorf("guard patterns wrong: %s", s)
	}
}

func TestEAN8EncodeContents(t *testing.T) {
	code, err := NewEAN8Writer().EncodeContents("96385074")
	if err != nil {
		t.Fatal(err)
	}
	s := bars(code)
	if len(s) != ean8CodeWidth {
		t.Fatalf("len = %d, want %d", len(s), ean8CodeWidth)
	}
	// Start guard, then L-encoded 9 (3,1,1,2 starting with a space).
	if s[:10] != "1010001011" {
		t.Errorf("prefix = %s", s[:10])
	}
	if s[31:36] != "01010" || !strings.HasSuffix(s, "101") {
		t.Errorf("guard patterns wrong: %s", s)
	}
}

func TestUPCEANWriterValidation(t *testing.T) {
	tests := []struct {
		name     string
		encode   func(string) ([]bool, error)
		contents string
		want     error
	}{
		{"ean13 bad checksum", NewEAN13Writer().EncodeContents, "4006381333932", zxingrender.ErrFormat},
		{"ean13 too short", NewEAN13Writer().EncodeContents, "40063", zxingrender.ErrInvalidArgument},
		{"ean13 letters", NewEAN13Writer().EncodeContents, "40063813339A", zxingrender.ErrInvalidArgument},
		{"ean8 too long", NewEAN8Writer().EncodeContents, "963850744", zxingrender.ErrInvalidArgument},
		{"itf odd", NewITFWriter().EncodeContents, "123", zxingrender.ErrInvalidArgument},
		{"itf empty", NewITFWriter().EncodeContents, "", zxingrender.ErrInvalidArgument},
		{"itf letters", NewITFWriter().EncodeContents, "12AB", zxingrender.ErrInvalidArgument},
		{"code39 empty", NewCode39Writer().EncodeContents, "", zxingrender.ErrInvalidArgument},
		{"code39 non-ascii", NewCode39Writer().EncodeContents, "é", zxingrender.ErrInvalidArgument},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := tc.encode(tc.contents); !errors.Is(err, tc.want) {
				t.Errorf("err = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestITFEncodeContents(t *testing.T) {
	code, err := NewITFWriter().EncodeContents("00")
	if err != nil {
		t.Fatal(err)
	}
	// Start 1010, pair "00" interleaved (bars 1,1,3,3,1 / spaces 1,1,3,3,1), end 11101.
	want := "1010" + "1010111000111000" + "10" + "11101"
	if got := bars(code); got != want {
		t.Errorf("got  %s\nwant %s", got, want)
	}
}

func TestCode39EncodeContents(t *testing.T) {
	w := NewCode39Writer()
	code, err := w.EncodeContents("A")
	if err != nil {
		t.Fatal(err)
	}
	if len(code) != 3*13-1 {
		t.Fatalf("len = %d, want %d", len(code), 3*13-1)
	}
	// '*' is n w n n W n W n n with a leading bar.
	if got := bars(code[:12]); got != "100101101101" {
		t.Errorf("start character = %s", got)
	}
	lower, err := w.EncodeContents("a")
	if err != nil {
		t.Fatal(err)
	}
	plusA, err := w.EncodeContents("+A")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(bars(plusA), bars(lower)); diff != "" {
		t.Errorf("lower case should use the +A shift pair (-want +got):\n%s", diff)
	}
}

// code128Bars renders a symbol sequence with the pattern table.
func code128Bars(symbols ...int) string {
	total := 0
	for _, s := range symbols {
		total += patternWidth(code128Patterns[s])
	}
	code := make([]bool, total)
	pos := 0
	for _, s := range symbols {
		pos += appendPattern(code, pos, code128Patterns[s], true)
	}
	return bars(code)
}

func TestCode128Symbols(t *testing.T) {
	tests := []struct {
		contents string
		symbols  []int
	}{
		// Digit pairs go through code set C.
		{"1234", []int{code128StartC, 12, 34, 82, code128Stop}},
		{"A", []int{code128StartB, 33, 34, code128Stop}},
		// Two digits after text stay in B; four switch to C.
		{"A12", []int{code128StartB, 33, 17, 18, 19, code128Stop}},
		{"A1234", []int{code128StartB, 33, code128CodeC, 12, 34, 95, code128Stop}},
		{"\x01", []int{code128StartA, 65, 65, code128Stop}},
		{"ñ12", []int{code128StartC, code128FNC1, 12, 25, code128Stop}},
	}
	w := NewCode128Writer()
	for _, tc := range tests {
		t.Run(tc.contents, func(t *testing.T) {
			code, err := w.EncodeContents(tc.contents)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(code128Bars(tc.symbols...), bars(code)); diff != "" {
				t.Errorf("bars mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCode128Guards(t *testing.T) {
	code, err := NewCode128Writer().EncodeContents("Hello")
	if err != nil {
		t.Fatal(err)
	}
	got := bars(code)
	if !strings.HasPrefix(got, "11010010000") {
		t.Errorf("should open with START_B, got %s", got[:11])
	}
	if !strings.HasSuffix(got, "1100011101011") {
		t.Errorf("should close with STOP, got %s", got[len(got)-13:])
	}
	// start + 5 data + check = 7 symbols of 11 modules, stop is 13.
	if len(code) != 7*11+13 {
		t.Errorf("width = %d, want %d", len(code), 7*11+13)
	}
}

func TestCode128Invalid(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{"empty", ""},
		{"non ascii", "é"},
		{"too long", strings.Repeat("x", code128MaxLength+1)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewCode128Writer().EncodeContents(tc.contents)
			if !errors.Is(err, zxingrender.ErrInvalidArgument) {
				t.Errorf("err = %v, want ErrInvalidArgument", err)
			}
		})
	}
}

func TestCodabarEncode(t *testing.T) {
	w := NewCodabarWriter()
	code, err := w.EncodeContents("A40156B")
	if err != nil {
		t.Fatal(err)
	}
	// Guards A and B carry three wide elements, the digits two; six gaps.
	if len(code) != 10+5*9+10+6 {
		t.Fatalf("width = %d, want 71", len(code))
	}
	if got := bars(code[:11]); got != "10110010010" {
		t.Errorf("start guard = %s", got)
	}

	alt, err := w.EncodeContents("t40156n")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(bars(code), bars(alt)); diff != "" {
		t.Errorf("alternate guards should map to A/B (-want +got):\n%s", diff)
	}

	bare, err := w.EncodeContents("40156")
	if err != nil {
		t.Fatal(err)
	}
	framed, err := w.EncodeContents("A40156A")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(bars(framed), bars(bare)); diff != "" {
		t.Errorf("unguarded contents should get A at both ends (-want +got):\n%s", diff)
	}
}

func TestCodabarInvalid(t *testing.T) {
	tests := []struct {
		contents string
		want     error
	}{
		{"", zxingrender.ErrInvalidArgument},
		{"A40156", zxingrender.ErrFormat},
		{"40156D", zxingrender.ErrFormat},
		{"40x56", zxingrender.ErrInvalidArgument},
		{"A40A56B", zxingrender.ErrInvalidArgument},
		{strings.Repeat("1", codabarMaxLength), zxingrender.ErrInvalidArgument},
	}
	for _, tc := range tests {
		t.Run(tc.contents, func(t *testing.T) {
			_, err := NewCodabarWriter().EncodeContents(tc.contents)
			if !errors.Is(err, tc.want) {
				t.Errorf("err = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestWriterFormatValidation(t *testing.T) {
	writers := map[string]zxingrender.Writer{
		"ean13":   NewEAN13Writer(),
		"ean8":    NewEAN8Writer(),
		"upca":    NewUPCAWriter(),
		"itf":     NewITFWriter(),
		"code39":  NewCode39Writer(),
		"code128": NewCode128Writer(),
		"codabar": NewCodabarWriter(),
	}
	for name, w := range writers {
		t.Run(name, func(t *testing.T) {
			_, err := w.Encode("12345670", zxingrender.FormatQRCode, 100, 50, nil)
			if !errors.Is(err, zxingrender.ErrWriter) {
				t.Errorf("err = %v, want ErrWriter", err)
			}
		})
	}
}

func TestUPCADelegatesToEAN13(t *testing.T) {
	upca, err := NewUPCAWriter().Encode("03600029145", zxingrender.FormatUPCA, 0, 10, nil)
	if err != nil {
		t.Fatal(err)
	}
	ean, err := NewEAN13Writer().Encode("003600029145", zxingrender.FormatEAN13, 0, 10, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !upca.Equals(ean) {
		t.Error("UPC-A should render as EAN-13 with a leading zero")
	}
}

func TestRenderCode(t *testing.T) {
	code := []bool{true, false, true}
	m := RenderCode(code, 0, 0, 2)
	if m.Width() != 7 || m.Height() != 1 {
		t.Fatalf("size = %dx%d, want 7x1", m.Width(), m.Height())
	}
	if got := m.StringWithChars("1", "0"); got != "0010100\n" {
		t.Errorf("got %q", got)
	}

	// 3 modules + 2*1 margin = 5; 16 px gives multiple 3 and padding 3.
	m = RenderCode(code, 16, 2, 1)
	want := "0001110001110000\n0001110001110000\n"
	if got := m.StringWithChars("1", "0"); got != want {
		t.Errorf("got\n%swant\n%s", got, want)
	}
}

func TestEncodeHonorsMargin(t *testing.T) {
	m, err := NewEAN8Writer().Encode("96385074", zxingrender.FormatEAN8, 0, 5, &zxingrender.EncodeOptions{Margin: intPtr(0)})
	if err != nil {
		t.Fatal(err)
	}
	if m.Width() != ean8CodeWidth || !m.Get(0, 0) || !m.Get(ean8CodeWidth-1, 4) {
		t.Errorf("zero margin should start and end on a bar, width %d", m.Width())
	}
	m, err = NewEAN8Writer().Encode("96385074", zxingrender.FormatEAN8, 0, 5, nil)
	if err != nil {
		t.Fatal(err)
	}
	if m.Width() != ean8CodeWidth+2*DefaultMargin {
		t.Errorf("width = %d, want %d", m.Width(), ean8CodeWidth+2*DefaultMargin)
	}
}

package zxingrender_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	zxingrender "github.com/ericlevine/zxingrender"
	"github.com/ericlevine/zxingrender/render"

	// Import format packages to trigger init() registration.
	_ "github.com/ericlevine/zxingrender/oned"
	_ "github.com/ericlevine/zxingrender/qrcode"
)

func encodeAndRender(t *testing.T, content string, format zxingrender.Format, width, height int) *render.Bitmap {
	t.Helper()

	matrix, err := zxingrender.Encode(content, format, width, height, nil)
	if err != nil {
		t.Fatalf("encode %s %q: %v", format, content, err)
	}
	bmp, err := render.NewRenderer().Render(matrix, format, content)
	if err != nil {
		t.Fatalf("render %s %q: %v", format, content, err)
	}
	if bmp.Width != matrix.Width() || bmp.Height != matrix.Height() {
		t.Fatalf("bitmap %dx%d, matrix %dx%d", bmp.Width, bmp.Height, matrix.Width(), matrix.Height())
	}
	return bmp
}

func TestIntegrationCaptions(t *testing.T) {
	tests := []struct {
		name    string
		format  zxingrender.Format
		content string
		want    render.Caption
	}{
		{"EAN13", zxingrender.FormatEAN13, "400638133393",
			render.Caption{Show: true, ReservedRows: render.CaptionRows, Text: "4   006381   333931"}},
		{"EAN8", zxingrender.FormatEAN8, "96385074",
			render.Caption{Show: true, ReservedRows: render.CaptionRows, Text: "9638   5074"}},
		{"UPCA", zxingrender.FormatUPCA, "03600029145",
			render.Caption{Show: true, ReservedRows: render.CaptionRows, Text: "03600029145"}},
		{"ITF", zxingrender.FormatITF, "12345678",
			render.Caption{Show: true, ReservedRows: render.CaptionRows, Text: "12345678"}},
		{"Code39", zxingrender.FormatCode39, "HELLO",
			render.Caption{Show: true, ReservedRows: render.CaptionRows, Text: "HELLO"}},
		{"Code128", zxingrender.FormatCode128, "A40156B",
			render.Caption{Show: true, ReservedRows: render.CaptionRows, Text: "A40156B"}},
		{"Codabar", zxingrender.FormatCodabar, "A40156B",
			render.Caption{Show: true, ReservedRows: render.CaptionRows, Text: "A40156B"}},
		{"QRCode", zxingrender.FormatQRCode, "Hello, World!", render.Caption{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			bmp := encodeAndRender(t, tc.content, tc.format, 200, 100)
			if diff := cmp.Diff(tc.want, bmp.Caption); diff != "" {
				t.Errorf("caption mismatch (-want +got):\n%s", diff)
			}
			for y := bmp.Height - tc.want.ReservedRows; y < bmp.Height; y++ {
				for x := 0; x < bmp.Width; x++ {
					if p := bmp.Pix[bmp.Offset(x, y)]; p != 0 {
						t.Fatalf("reserved pixel (%d,%d) = %#08x", x, y, p)
					}
				}
			}
		})
	}
}

func TestIntegrationBarsMatchMatrix(t *testing.T) {
	matrix, err := zxingrender.Encode("4006381333931", zxingrender.FormatEAN13, 230, 60, nil)
	if err != nil {
		t.Fatal(err)
	}
	r := render.NewRenderer()
	bmp, err := r.Render(matrix, zxingrender.FormatEAN13, "4006381333931")
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < bmp.Height-render.CaptionRows; y++ {
		for x := 0; x < bmp.Width; x++ {
			want := r.Background
			if matrix.Get(x, y) {
				want = r.Foreground
			}
			if got := bmp.NRGBAAt(x, y); got != want {
				t.Fatalf("(%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestEncodeUnregisteredFormat(t *testing.T) {
	_, err := zxingrender.Encode("x", zxingrender.FormatAztec, 10, 10, nil)
	if !errors.Is(err, zxingrender.ErrWriter) {
		t.Errorf("err = %v, want ErrWriter", err)
	}
}

func TestRegisteredFormats(t *testing.T) {
	want := []zxingrender.Format{
		zxingrender.FormatQRCode,
		zxingrender.FormatCode128,
		zxingrender.FormatCode39,
		zxingrender.FormatEAN13,
		zxingrender.FormatEAN8,
		zxingrender.FormatUPCA,
		zxingrender.FormatITF,
		zxingrender.FormatCodabar,
	}
	if diff := cmp.Diff(want, zxingrender.RegisteredFormats()); diff != "" {
		t.Errorf("registered formats (-want +got):\n%s", diff)
	}
}

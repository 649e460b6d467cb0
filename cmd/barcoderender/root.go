package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	zxingrender "github.com/ericlevine/zxingrender"
	"github.com/ericlevine/zxingrender/render"

	// Register all format writers.
	_ "github.com/ericlevine/zxingrender/oned"
	_ "github.com/ericlevine/zxingrender/qrcode"
)

type options struct {
	format     string
	width      int
	height     int
	margin     int
	ecLevel    string
	foreground string
	background string
	scale      int
	out        string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "barcoderender [flags] <content>",
		Short: "Render a barcode to a PNG or BMP image",
		Long: "Encode content in the chosen format, rasterize the bit matrix and write it as an image.\n" +
			"For linear formats the bottom rows are left blank and the caption text is printed on stdout.",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.New(io.Discard, "barcoderender: ", 0)
			if opts.verbose {
				logger.SetOutput(cmd.ErrOrStderr())
			}
			if !cmd.Flags().Changed("margin") {
				opts.margin = -1
			}
			return run(opts, args[0], cmd.OutOrStdout(), logger)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&opts.format, "format", "f", "QR_CODE", "barcode format, e.g. EAN_13, CODE_128, CODABAR, QR_CODE")
	f.IntVarP(&opts.width, "width", "W", 0, "minimum width in pixels (0 = smallest that fits)")
	f.IntVarP(&opts.height, "height", "H", 0, "minimum height in pixels (0 = smallest that fits)")
	f.IntVar(&opts.margin, "margin", 0, "quiet zone in modules (default depends on format)")
	f.StringVar(&opts.ecLevel, "ec", "", "QR error correction level: L, M, Q or H")
	f.StringVar(&opts.foreground, "fg", "#000000", "foreground color, #RRGGBB or #AARRGGBB")
	f.StringVar(&opts.background, "bg", "#FFFFFF", "background color, #RRGGBB or #AARRGGBB")
	f.IntVar(&opts.scale, "scale", 1, "integer upscaling factor applied to the rendered bitmap")
	f.StringVarP(&opts.out, "out", "o", "barcode.png", "output file; the extension selects .png or .bmp")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log progress to stderr")
	return cmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "barcoderender: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options, content string, stdout io.Writer, logger *log.Logger) error {
	format, err := zxingrender.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	if opts.scale < 1 {
		return fmt.Errorf("scale must be at least 1, got %d: %w", opts.scale, zxingrender.ErrInvalidArgument)
	}
	r := render.NewRenderer()
	if r.Foreground, err = render.ParseColor(opts.foreground); err != nil {
		return err
	}
	if r.Background, err = render.ParseColor(opts.background); err != nil {
		return err
	}

	encodeOpts := &zxingrender.EncodeOptions{ErrorCorrection: opts.ecLevel}
	if opts.margin >= 0 {
		encodeOpts.Margin = &opts.margin
	}
	height := opts.height
	if render.HasCaption(format, content) && height <= render.CaptionRows {
		// Leave at least one module row above the caption strip.
		height = 2 * render.CaptionRows
	}
	matrix, err := zxingrender.Encode(content, format, opts.width, height, encodeOpts)
	if err != nil {
		return err
	}
	logger.Printf("encoded %s as %dx%d matrix", format, matrix.Width(), matrix.Height())

	bmp, err := r.Render(matrix, format, content)
	if err != nil {
		return err
	}
	if err := writeImage(opts.out, bmp, opts.scale); err != nil {
		return err
	}
	logger.Printf("wrote %s (scale %d)", opts.out, opts.scale)

	if bmp.Caption.Show {
		_, err = fmt.Fprintln(stdout, bmp.Caption.Text)
	}
	return err
}

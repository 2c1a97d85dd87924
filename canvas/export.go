package canvas

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"strings"

	"github.com/chai2010/webp"
	"github.com/jung-kurt/gofpdf"
	"golang.org/x/image/draw"
)

type Format string

const (
	PNG  Format = "png"
	JPEG Format = "jpeg"
	WEBP Format = "webp"
	PDF  Format = "pdf"
)

// Formats lists every export format in toolbar order.
var Formats = []Format{PNG, JPEG, WEBP, PDF}

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case PNG, JPEG, WEBP, PDF:
		return f, nil
	case "jpg":
		return JPEG, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// EncodeOptions carries per format quality settings.
type EncodeOptions struct {
	JPEGQuality int
	WEBPQuality int
}

func DefaultEncodeOptions() EncodeOptions {
	return EncodeOptions{JPEGQuality: 92, WEBPQuality: 80}
}

// Export writes the current surface in format f.
func (c *Canvas) Export(w io.Writer, f Format, opts EncodeOptions) error {
	if c.img == nil {
		return ErrNoSurface
	}
	return Encode(w, c.img, f, opts)
}

func Encode(w io.Writer, img image.Image, f Format, opts EncodeOptions) error {
	switch f {
	case PNG:
		return png.Encode(w, img)
	case JPEG:
		return jpeg.Encode(w, flatten(img), &jpeg.Options{Quality: quality(opts.JPEGQuality, 92)})
	case WEBP:
		return webp.Encode(w, img, &webp.Options{Quality: float32(quality(opts.WEBPQuality, 80))})
	case PDF:
		return encodePDF(w, img)
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
}

func quality(q, fallback int) int {
	if q < 1 || q > 100 {
		return fallback
	}
	return q
}

// flatten composites img over the background. JPEG has no alpha channel, so
// erased pixels would otherwise come out black.
func flatten(img image.Image) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Over)
	return out
}

// encodePDF embeds the flattened raster as a PNG on a single page of the
// same size, in points.
func encodePDF(w io.Writer, img image.Image) error {
	b := img.Bounds()
	width, height := float64(b.Dx()), float64(b.Dy())

	var raster bytes.Buffer
	if err := png.Encode(&raster, flatten(img)); err != nil {
		return fmt.Errorf("can't encode page raster: %w", err)
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: width, Ht: height},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("canvas", opts, &raster)
	pdf.ImageOptions("canvas", 0, 0, width, height, false, opts, 0, "")

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("can't write pdf: %w", err)
	}
	return nil
}

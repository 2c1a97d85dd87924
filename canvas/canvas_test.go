package canvas

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/chai2010/webp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var red = color.RGBA{R: 0xff, A: 0xff}

func TestNew(t *testing.T) {
	c := New(64, 32)

	w, h := c.Size()
	require.Equal(t, 64, w)
	require.Equal(t, 32, h)

	// Then: the surface starts blank with the default tool
	assert.Equal(t, Background, c.Image().RGBAAt(10, 10))
	assert.Equal(t, DefaultToolState(), c.ToolState())
	assert.Equal(t, ToolState{Tool: Brush, Color: color.RGBA{A: 0xff}, Width: 5}, c.ToolState())
}

func TestCanvas_Stroke(t *testing.T) {
	c := New(100, 100)
	c.SetColor(red)
	c.SetWidth(6)

	// When: a horizontal stroke is drawn
	c.BeginStroke(Point{X: 20, Y: 50})
	c.ContinueStroke(Point{X: 80, Y: 50})
	c.EndStroke()

	img := c.Image()

	// Then: the line and its round caps are painted
	assert.Equal(t, red, img.RGBAAt(50, 50))
	assert.Equal(t, red, img.RGBAAt(20, 50))
	assert.Equal(t, red, img.RGBAAt(81, 50))

	// Then: pixels beyond the half width are untouched
	assert.Equal(t, Background, img.RGBAAt(50, 56))
	assert.Equal(t, Background, img.RGBAAt(10, 50))
}

func TestCanvas_ContinueWithoutBegin(t *testing.T) {
	c := New(40, 40)
	before := c.Version()

	c.ContinueStroke(Point{X: 10, Y: 10})

	assert.Equal(t, before, c.Version())
	assert.Equal(t, Background, c.Image().RGBAAt(10, 10))
}

func TestCanvas_EndStroke(t *testing.T) {
	c := New(40, 40)

	c.BeginStroke(Point{X: 5, Y: 5})
	c.EndStroke()
	c.ContinueStroke(Point{X: 30, Y: 30})

	// Then: nothing is drawn after the stroke is closed
	assert.False(t, c.Drawing())
	assert.Equal(t, Background, c.Image().RGBAAt(20, 20))
}

func TestCanvas_Eraser(t *testing.T) {
	c := New(60, 60)
	c.SetWidth(10)

	// Given: a painted horizontal band
	c.BeginStroke(Point{X: 0, Y: 30})
	c.ContinueStroke(Point{X: 60, Y: 30})
	c.EndStroke()
	require.Equal(t, color.RGBA{A: 0xff}, c.Image().RGBAAt(30, 30))

	// When: the eraser crosses it
	c.SetTool(Eraser)
	c.BeginStroke(Point{X: 30, Y: 0})
	c.ContinueStroke(Point{X: 30, Y: 60})
	c.EndStroke()

	// Then: erased pixels are transparent, not background colored
	assert.Equal(t, color.RGBA{}, c.Image().RGBAAt(30, 30))
	assert.Equal(t, color.RGBA{}, c.Image().RGBAAt(30, 5))
	assert.Equal(t, color.RGBA{A: 0xff}, c.Image().RGBAAt(5, 30))
}

func TestCanvas_Pixels(t *testing.T) {
	c := New(4, 2)
	img := c.Image()

	// Given: an opaque, a half covered and a cleared pixel
	img.SetRGBA(0, 0, red)
	img.SetRGBA(1, 0, color.RGBA{R: 0x40, G: 0x20, A: 0x80})
	img.SetRGBA(2, 0, color.RGBA{})

	px := c.Pixels(nil)
	require.Len(t, px, 8)

	// Then: colors come back with straight alpha
	assert.Equal(t, red, px[0])
	assert.Equal(t, color.RGBA{R: 0x7f, G: 0x3f, A: 0x80}, px[1])
	assert.Equal(t, color.RGBA{}, px[2])
	assert.Equal(t, Background, px[4+3])

	// Then: a large enough buffer is reused
	again := c.Pixels(px)
	assert.Same(t, &px[0], &again[0])

	c.Resize(0, 0)
	assert.Empty(t, c.Pixels(px))
}

func TestCanvas_SetColorSelectsBrush(t *testing.T) {
	c := New(10, 10)
	c.SetTool(Eraser)

	c.SetColor(Palette[3])

	assert.Equal(t, Brush, c.ToolState().Tool)
	assert.Equal(t, Palette[3], c.ToolState().Color)
}

func TestClampWidth(t *testing.T) {
	assert.Equal(t, MinWidth, ClampWidth(-3))
	assert.Equal(t, MinWidth, ClampWidth(0))
	assert.Equal(t, 17, ClampWidth(17))
	assert.Equal(t, MaxWidth, ClampWidth(99))
}

func TestCanvas_Clear(t *testing.T) {
	c := New(30, 30)
	c.BeginStroke(Point{X: 0, Y: 0})
	c.ContinueStroke(Point{X: 30, Y: 30})

	c.Clear()

	for _, p := range []image.Point{{0, 0}, {15, 15}, {29, 29}} {
		assert.Equal(t, Background, c.Image().RGBAAt(p.X, p.Y))
	}
}

func TestCanvas_Resize(t *testing.T) {
	c := New(30, 30)
	c.BeginStroke(Point{X: 0, Y: 15})
	c.ContinueStroke(Point{X: 30, Y: 15})

	// When: the container changes size
	c.Resize(50, 20)

	// Then: the surface is new and blank
	w, h := c.Size()
	assert.Equal(t, 50, w)
	assert.Equal(t, 20, h)
	assert.Equal(t, Background, c.Image().RGBAAt(15, 15))
	assert.False(t, c.Drawing())
}

func TestCanvas_NoSurface(t *testing.T) {
	c := New(0, 0)
	require.Nil(t, c.Image())

	// Then: every operation is a harmless no-op
	c.BeginStroke(Point{X: 1, Y: 1})
	c.ContinueStroke(Point{X: 2, Y: 2})
	c.EndStroke()
	c.Clear()

	var buf bytes.Buffer
	assert.ErrorIs(t, c.Export(&buf, PNG, DefaultEncodeOptions()), ErrNoSurface)
	assert.Zero(t, buf.Len())
}

func TestCanvas_StrokeOffSurface(t *testing.T) {
	c := New(20, 20)
	c.SetWidth(50)

	// Then: strokes partly or fully outside the surface do not panic
	c.BeginStroke(Point{X: -100, Y: -100})
	c.ContinueStroke(Point{X: -80, Y: -90})
	c.ContinueStroke(Point{X: 10, Y: 10})
	c.ContinueStroke(Point{X: 500, Y: 10})

	assert.Equal(t, color.RGBA{A: 0xff}, c.Image().RGBAAt(10, 10))
}

func TestCanvas_Export(t *testing.T) {
	c := New(40, 30)
	c.SetWidth(8)
	c.SetTool(Eraser)
	c.BeginStroke(Point{X: 0, Y: 15})
	c.ContinueStroke(Point{X: 40, Y: 15})
	opts := DefaultEncodeOptions()

	t.Run("PNG", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, c.Export(&buf, PNG, opts))

		img, err := png.Decode(&buf)
		require.NoError(t, err)
		assert.Equal(t, image.Rect(0, 0, 40, 30), img.Bounds())

		_, _, _, a := img.At(20, 15).RGBA()
		assert.Zero(t, a)
	})

	t.Run("JPEG", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, c.Export(&buf, JPEG, opts))

		img, err := jpeg.Decode(&buf)
		require.NoError(t, err)

		// Then: erased pixels are flattened to white
		r, g, b, _ := img.At(20, 15).RGBA()
		assert.Greater(t, r>>8, uint32(240))
		assert.Greater(t, g>>8, uint32(240))
		assert.Greater(t, b>>8, uint32(240))
	})

	t.Run("WEBP", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, c.Export(&buf, WEBP, opts))

		cfg, err := webp.DecodeConfig(&buf)
		require.NoError(t, err)
		assert.Equal(t, 40, cfg.Width)
		assert.Equal(t, 30, cfg.Height)
	})

	t.Run("PDF", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, c.Export(&buf, PDF, opts))
		assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	})

	t.Run("Unsupported", func(t *testing.T) {
		var buf bytes.Buffer
		assert.ErrorIs(t, c.Export(&buf, Format("gif"), opts), ErrUnsupportedFormat)
	})
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"png": PNG, "JPEG": JPEG, "jpg": JPEG, "webp": WEBP, "pdf": PDF} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := ParseFormat("bmp")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestDownloader(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	d := Downloader{Dir: dir, Options: DefaultEncodeOptions()}
	c := New(16, 16)

	// When: the same format is downloaded three times
	var paths []string
	for i := 0; i < 3; i++ {
		path, err := d.Download(c, PNG)
		require.NoError(t, err)
		paths = append(paths, path)
	}

	// Then: each download gets its own name
	assert.Equal(t, []string{
		filepath.Join(dir, "canvas.png"),
		filepath.Join(dir, "canvas (1).png"),
		filepath.Join(dir, "canvas (2).png"),
	}, paths)

	path, err := d.Download(c, JPEG)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "canvas.jpeg"), path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestDownloader_Errors(t *testing.T) {
	d := Downloader{Dir: t.TempDir()}

	_, err := d.Download(New(0, 0), PNG)
	assert.ErrorIs(t, err, ErrNoSurface)

	_, err = d.Download(New(4, 4), Format("tiff"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	entries, err := os.ReadDir(d.Dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

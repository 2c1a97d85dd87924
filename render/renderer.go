package render

import (
	"image/color"
	"math"

	"canvas-arcade/canvas"
	"canvas-arcade/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const roundSegments = 8

var clearColor = rl.Color{R: 0x1a, G: 0x2a, B: 0x6c, A: 0xff}

// surfaceTexture mirrors one canvas on the GPU.
type surfaceTexture struct {
	texture rl.Texture2D
	version uint64
}

// Renderer paints ui scenes with raylib. It must be used from the thread
// that opened the window.
type Renderer struct {
	textures map[*canvas.Canvas]*surfaceTexture
	pixels   []color.RGBA
}

func NewRenderer() *Renderer {
	return &Renderer{
		textures: make(map[*canvas.Canvas]*surfaceTexture),
	}
}

func (r *Renderer) Draw(scene ui.Scene) {
	rl.BeginDrawing()
	rl.ClearBackground(clearColor)

	for _, item := range scene.Items {
		switch p := item.(type) {
		case ui.FillRect:
			rl.DrawRectangleRec(rect(p.Rect), rgba(p.Color))
		case ui.RoundRect:
			rl.DrawRectangleRounded(rect(p.Rect), roundness(p.Rect, p.Radius), roundSegments, rgba(p.Color))
		case ui.Line:
			rl.DrawLineEx(vec(p.X1, p.Y1), vec(p.X2, p.Y2), float32(p.Width), rgba(p.Color))
		case ui.Circle:
			rl.DrawCircleV(vec(p.X, p.Y), float32(p.R), rgba(p.Color))
		case ui.Text:
			r.drawText(p)
		case ui.Raster:
			r.drawRaster(p)
		}
	}

	rl.EndDrawing()
}

func (r *Renderer) drawText(t ui.Text) {
	size := int32(t.Size)
	x := int32(math.Round(t.X))
	if t.Align == ui.AlignCenter {
		x -= rl.MeasureText(t.Text, size) / 2
	}
	rl.DrawText(t.Text, x, int32(math.Round(t.Y)), size, rgba(t.Color))
}

func (r *Renderer) drawRaster(p ui.Raster) {
	if p.Canvas == nil {
		return
	}
	w, h := p.Canvas.Size()
	if w == 0 || h == 0 {
		return
	}

	tex := r.texture(p.Canvas, w, h)
	if tex.version != p.Canvas.Version() {
		r.pixels = p.Canvas.Pixels(r.pixels)
		rl.UpdateTexture(tex.texture, r.pixels)
		tex.version = p.Canvas.Version()
	}

	src := rl.Rectangle{Width: float32(w), Height: float32(h)}
	rl.DrawTexturePro(tex.texture, src, rect(p.Rect), rl.Vector2{}, 0, rl.White)
}

// texture returns the GPU copy of c, recreating it when the surface size no
// longer matches.
func (r *Renderer) texture(c *canvas.Canvas, w, h int) *surfaceTexture {
	tex, ok := r.textures[c]
	if ok && int(tex.texture.Width) == w && int(tex.texture.Height) == h {
		return tex
	}
	if ok {
		rl.UnloadTexture(tex.texture)
	}

	img := rl.GenImageColor(w, h, rl.Blank)
	tex = &surfaceTexture{
		texture: rl.LoadTextureFromImage(img),
		// forces an upload on first use
		version: c.Version() - 1,
	}
	rl.UnloadImage(img)

	r.textures[c] = tex
	return tex
}

// Close releases every texture. The window must still be open.
func (r *Renderer) Close() {
	for c, tex := range r.textures {
		rl.UnloadTexture(tex.texture)
		delete(r.textures, c)
	}
}

func rect(r ui.Rect) rl.Rectangle {
	return rl.Rectangle{X: float32(r.X), Y: float32(r.Y), Width: float32(r.W), Height: float32(r.H)}
}

func vec(x, y float64) rl.Vector2 {
	return rl.Vector2{X: float32(x), Y: float32(y)}
}

func rgba(c color.NRGBA) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

// roundness converts a corner radius to raylib's fraction of the short side.
func roundness(r ui.Rect, radius float64) float32 {
	short := min(r.W, r.H)
	if short <= 0 {
		return 0
	}
	return float32(min(2*radius/short, 1))
}

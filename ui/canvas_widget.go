package ui

import (
	"fmt"
	"image/color"
	"log/slog"
	"math"
	"path/filepath"
	"strings"

	"canvas-arcade/canvas"
	"canvas-arcade/scheduler"
)

var (
	sidebarColor   = rgb(0x2c3e50)
	toolbarText    = rgb(0xecf0f1)
	toolButton     = rgb(0x34495e)
	toolActive     = rgb(0x3498db)
	sliderTrack    = rgb(0x7f8c8d)
	sliderKnob     = rgb(0xecf0f1)
	swatchBorder   = rgb(0x95a5a6)
	swatchSelected = rgb(0xf39c12)

	// shows through erased pixels
	surfaceBackdrop = rgb(0xffffff)
)

const (
	canvasHeader  = 48
	sidebarWidth  = 220
	sidebarMargin = 16
	swatchSize    = 36
)

// CanvasWidget is the drawing page: a tool sidebar next to a surface that
// fills the rest of the widget.
type CanvasWidget struct {
	canvas     *canvas.Canvas
	downloader canvas.Downloader
	logger     *slog.Logger

	subs subscriptions

	bounds      Rect
	surface     Rect
	sidebar     Rect
	showSidebar bool

	buttons []Button
	slider  Rect
	sliding bool
	status  string

	scene Scene
	dirty bool
}

func NewCanvasWidget(downloader canvas.Downloader, brushWidth int, logger *slog.Logger) *CanvasWidget {
	c := canvas.New(0, 0)
	if brushWidth > 0 {
		c.SetWidth(brushWidth)
	}
	return &CanvasWidget{
		canvas:      c,
		downloader:  downloader,
		logger:      logger.With(slog.String("widget", "canvas")),
		showSidebar: true,
		dirty:       true,
	}
}

func (w *CanvasWidget) Canvas() *canvas.Canvas {
	return w.canvas
}

func (w *CanvasWidget) Mount(host *Host, _ *scheduler.Scheduler) {
	w.subs.listen(host, PointerDown, w.onDown)
	w.subs.listen(host, PointerMove, w.onMove)
	w.subs.listen(host, PointerUp, w.onUp)
	w.subs.listen(host, PointerLeave, w.onUp)
	w.subs.listen(host, TouchStart, w.onDown)
	w.subs.listen(host, TouchMove, w.onMove)
	w.subs.listen(host, TouchEnd, w.onUp)
	w.dirty = true
}

func (w *CanvasWidget) Unmount() {
	w.subs.release()
	w.canvas.EndStroke()
	w.sliding = false
}

// Layout places the sidebar and the surface. A change of surface size
// reinitializes the canvas, dropping what was drawn.
func (w *CanvasWidget) Layout(bounds Rect) {
	w.bounds = bounds

	body := Rect{X: bounds.X, Y: bounds.Y + canvasHeader, W: bounds.W, H: math.Max(bounds.H-canvasHeader, 0)}
	w.sidebar = Rect{}
	if w.showSidebar {
		w.sidebar = Rect{X: body.X, Y: body.Y, W: math.Min(sidebarWidth, body.W), H: body.H}
	}
	w.surface = Rect{X: body.X + w.sidebar.W, Y: body.Y, W: body.W - w.sidebar.W, H: body.H}
	w.surface.W, w.surface.H = math.Floor(math.Max(w.surface.W, 0)), math.Floor(w.surface.H)

	width, height := int(w.surface.W), int(w.surface.H)
	if cw, ch := w.canvas.Size(); cw != width || ch != height {
		w.canvas.Resize(width, height)
		w.logger.Debug("surface resized", slog.Int("width", width), slog.Int("height", height))
	}
	w.dirty = true
}

func (w *CanvasWidget) Scene() Scene {
	if w.dirty {
		w.rebuild()
		w.dirty = false
	}
	return w.scene
}

func (w *CanvasWidget) local(x, y float64) canvas.Point {
	return canvas.Point{X: x - w.surface.X, Y: y - w.surface.Y}
}

func (w *CanvasWidget) onDown(ev Event) {
	if hit(w.buttons, ev.X, ev.Y) {
		w.dirty = true
		return
	}
	if w.showSidebar && w.slider.Inset(-8).Contains(ev.X, ev.Y) {
		w.sliding = true
		w.slide(ev.X)
		return
	}
	if w.surface.Contains(ev.X, ev.Y) {
		w.canvas.BeginStroke(w.local(ev.X, ev.Y))
	}
}

func (w *CanvasWidget) onMove(ev Event) {
	if w.sliding {
		w.slide(ev.X)
		return
	}
	if !w.canvas.Drawing() {
		return
	}
	if !w.surface.Contains(ev.X, ev.Y) {
		w.canvas.EndStroke()
		return
	}
	w.canvas.ContinueStroke(w.local(ev.X, ev.Y))
}

func (w *CanvasWidget) onUp(Event) {
	w.sliding = false
	w.canvas.EndStroke()
}

func (w *CanvasWidget) slide(x float64) {
	if w.slider.W <= 0 {
		return
	}
	t := math.Min(math.Max((x-w.slider.X)/w.slider.W, 0), 1)
	w.canvas.SetWidth(canvas.MinWidth + int(math.Round(t*float64(canvas.MaxWidth-canvas.MinWidth))))
	w.dirty = true
}

func (w *CanvasWidget) toggleSidebar() {
	w.showSidebar = !w.showSidebar
	w.Layout(w.bounds)
}

func (w *CanvasWidget) export(f canvas.Format) {
	path, err := w.downloader.Download(w.canvas, f)
	if err != nil {
		w.logger.Warn("export failed", slog.String("format", string(f)), slog.String("error", err.Error()))
		w.status = "Export failed"
		return
	}
	w.logger.Info("canvas exported", slog.String("path", path))
	w.status = "Saved " + filepath.Base(path)
}

func (w *CanvasWidget) rebuild() {
	s := Scene{}
	w.buttons = w.buttons[:0]

	header := Rect{X: w.bounds.X, Y: w.bounds.Y, W: w.bounds.W, H: canvasHeader}
	s.Add(
		FillRect{Rect: header, Color: sidebarColor},
		Text{X: header.X + 100, Y: header.Y + 14, Size: 20, Text: "AI Canvas", Color: toolbarText},
	)
	w.buttons = append(w.buttons, Button{
		Rect:   Rect{X: header.X + 12, Y: header.Y + 8, W: 72, H: 32},
		Label:  "Menu",
		Active: w.showSidebar,
		Action: w.toggleSidebar,
	})

	s.Add(
		FillRect{Rect: w.surface, Color: surfaceBackdrop},
		Raster{Rect: w.surface, Canvas: w.canvas},
	)

	w.slider = Rect{}
	if w.showSidebar {
		w.toolbar(&s)
	}

	for _, b := range w.buttons {
		if b.Label != "" {
			b.draw(&s, toolButton, toolActive, toolbarText)
		}
	}

	w.scene = s
}

func (w *CanvasWidget) toolbar(s *Scene) {
	sb := w.sidebar
	s.Add(FillRect{Rect: sb, Color: sidebarColor})

	x := sb.X + sidebarMargin
	inner := sb.W - 2*sidebarMargin
	y := sb.Y + sidebarMargin
	ts := w.canvas.ToolState()

	heading := func(text string) {
		s.Add(Text{X: x, Y: y, Size: 18, Text: text, Color: toolbarText})
		y += 28
	}

	heading("Tools")
	bw := (inner - 2*8) / 3
	w.buttons = append(w.buttons,
		Button{Rect: Rect{X: x, Y: y, W: bw, H: 30}, Label: "Brush", Active: ts.Tool == canvas.Brush,
			Action: func() { w.canvas.SetTool(canvas.Brush) }},
		Button{Rect: Rect{X: x + bw + 8, Y: y, W: bw, H: 30}, Label: "Eraser", Active: ts.Tool == canvas.Eraser,
			Action: func() { w.canvas.SetTool(canvas.Eraser) }},
		Button{Rect: Rect{X: x + 2*(bw+8), Y: y, W: bw, H: 30}, Label: "Clear",
			Action: func() { w.canvas.Clear() }},
	)
	y += 48

	heading("Brush Size")
	w.slider = Rect{X: x, Y: y + 8, W: inner - 56, H: 4}
	t := float64(ts.Width-canvas.MinWidth) / float64(canvas.MaxWidth-canvas.MinWidth)
	s.Add(
		FillRect{Rect: w.slider, Color: sliderTrack},
		Circle{X: w.slider.X + t*w.slider.W, Y: w.slider.Y + w.slider.H/2, R: 8, Color: sliderKnob},
		Text{X: w.slider.X + w.slider.W + 12, Y: y, Size: 16, Text: fmt.Sprintf("%dpx", ts.Width), Color: toolbarText},
	)
	y += 40

	heading("Colors")
	perRow := max(int((inner+8)/(swatchSize+8)), 1)
	for i, c := range canvas.Palette {
		r := Rect{
			X: x + float64(i%perRow)*(swatchSize+8),
			Y: y + float64(i/perRow)*(swatchSize+8),
			W: swatchSize,
			H: swatchSize,
		}
		border := swatchBorder
		if ts.Tool == canvas.Brush && ts.Color == c {
			border = swatchSelected
		}
		s.Add(
			FillRect{Rect: r.Inset(-2), Color: border},
			FillRect{Rect: r, Color: color.NRGBA(c)},
		)

		w.buttons = append(w.buttons, Button{Rect: r, Action: func() { w.canvas.SetColor(c) }})
	}
	rows := (len(canvas.Palette) + perRow - 1) / perRow
	y += float64(rows)*(swatchSize+8) + 12

	heading("Export")
	ew := (inner - 8) / 2
	for i, f := range canvas.Formats {
		w.buttons = append(w.buttons, Button{
			Rect:   Rect{X: x + float64(i%2)*(ew+8), Y: y + float64(i/2)*38, W: ew, H: 30},
			Label:  formatLabel(f),
			Action: func() { w.export(f) },
		})
	}
	y += float64((len(canvas.Formats)+1)/2)*38 + 12

	if w.status != "" {
		s.Add(Text{X: x, Y: y, Size: 14, Text: w.status, Color: toolbarText})
	}
}

func formatLabel(f canvas.Format) string {
	if f == canvas.WEBP {
		return "WebP"
	}
	return strings.ToUpper(string(f))
}

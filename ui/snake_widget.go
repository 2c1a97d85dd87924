package ui

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"canvas-arcade/game"
	"canvas-arcade/game/types"
	"canvas-arcade/scheduler"
)

var (
	pageBackground = rgb(0x1a2a6c)
	panelColor     = rgba(0x000000, 0xb3)
	overlayColor   = rgba(0x000000, 0xb3)
	textColor      = rgb(0xffffff)
	buttonColor    = rgb(0x4caf50)
	buttonActive   = rgb(0xff9800)
)

const (
	headerHeight = 56
	footerHeight = 76
	boardPadding = 12
)

var snakeKeys = map[Key]game.Key{
	KeyUp:    game.KeyUp,
	KeyDown:  game.KeyDown,
	KeyLeft:  game.KeyLeft,
	KeyRight: game.KeyRight,
	KeySpace: game.KeyPause,
	KeyEnter: game.KeyStart,
	KeyR:     game.KeyReset,
}

// SnakeWidget hosts a Game: it steps it once per frame, rebuilds its scene on
// a fixed redraw interval and turns window input into game commands.
type SnakeWidget struct {
	game           *game.Game
	ctx            context.Context
	logger         *slog.Logger
	redrawInterval time.Duration

	sched  *scheduler.Scheduler
	subs   subscriptions
	frame  scheduler.Handle
	redraw scheduler.Handle

	bounds  Rect
	buttons []Button
	scene   Scene

	touching       bool
	touchX, touchY float64
}

func NewSnakeWidget(ctx context.Context, g *game.Game, redrawInterval time.Duration, logger *slog.Logger) *SnakeWidget {
	if redrawInterval <= 0 {
		redrawInterval = 100 * time.Millisecond
	}
	return &SnakeWidget{
		game:           g,
		ctx:            ctx,
		logger:         logger.With(slog.String("widget", "snake")),
		redrawInterval: redrawInterval,
	}
}

func (w *SnakeWidget) Game() *game.Game {
	return w.game
}

func (w *SnakeWidget) Mount(host *Host, sched *scheduler.Scheduler) {
	w.sched = sched

	w.subs.listen(host, KeyDown, w.onKey)
	w.subs.listen(host, PointerDown, w.onPointerDown)
	w.subs.listen(host, TouchStart, w.onTouchStart)
	w.subs.listen(host, TouchEnd, w.onTouchEnd)

	w.frame = sched.RequestFrame(w.onFrame)
	w.redraw = sched.Every(w.redrawInterval, w.rebuild)
	w.rebuild(sched.Now())

	w.logger.Debug("mounted", slog.String("game_id", w.game.ID))
}

// Unmount releases every listener and scheduled callback. A running game is
// paused and keeps its state for the next mount.
func (w *SnakeWidget) Unmount() {
	if w.game.State == types.Running {
		w.game.TogglePause()
	}
	w.subs.release()
	w.frame.Cancel()
	w.redraw.Cancel()
	w.touching = false
	w.sched = nil
	w.logger.Debug("unmounted")
}

func (w *SnakeWidget) Layout(bounds Rect) {
	w.bounds = bounds
	if w.sched != nil {
		w.rebuild(w.sched.Now())
	}
}

func (w *SnakeWidget) Scene() Scene {
	return w.scene
}

func (w *SnakeWidget) onFrame(now time.Time) {
	w.game.Step(w.ctx, now)
	w.frame = w.sched.RequestFrame(w.onFrame)
}

func (w *SnakeWidget) onKey(ev Event) {
	key, ok := snakeKeys[ev.Key]
	if !ok {
		return
	}
	if w.game.HandleKey(key) {
		w.refresh()
	}
}

func (w *SnakeWidget) onPointerDown(ev Event) {
	if hit(w.buttons, ev.X, ev.Y) {
		w.refresh()
	}
}

func (w *SnakeWidget) onTouchStart(ev Event) {
	w.touching = true
	w.touchX, w.touchY = ev.X, ev.Y
}

func (w *SnakeWidget) onTouchEnd(ev Event) {
	if !w.touching {
		return
	}
	w.touching = false

	dx, dy := ev.X-w.touchX, ev.Y-w.touchY
	if dx == 0 && dy == 0 {
		w.onPointerDown(ev)
		return
	}
	if w.game.Swipe(dx, dy) {
		w.refresh()
	}
}

func (w *SnakeWidget) refresh() {
	if w.sched != nil {
		w.rebuild(w.sched.Now())
	}
}

func (w *SnakeWidget) rebuild(now time.Time) {
	snap := w.game.Snapshot()
	b := w.bounds

	s := Scene{}
	s.Add(FillRect{Rect: b, Color: pageBackground})

	header := Rect{X: b.X, Y: b.Y, W: b.W, H: headerHeight}
	s.Add(
		FillRect{Rect: header, Color: panelColor},
		Text{X: header.X + 20, Y: header.Y + 18, Size: 20, Text: fmt.Sprintf("Score: %d", snap.Score), Color: textColor},
		Text{X: header.X + 170, Y: header.Y + 18, Size: 20, Text: fmt.Sprintf("High Score: %d", snap.HighScore), Color: textColor},
	)

	area := Rect{X: b.X, Y: b.Y + headerHeight, W: b.W, H: b.H - headerHeight - footerHeight}
	board := boardRect(area.Inset(boardPadding))
	drawBoard(&s, snap, board, now)

	w.buttons = w.buttons[:0]
	w.headerButtons(header, snap.State)
	w.overlay(&s, board, snap)

	footer := Rect{X: b.X, Y: b.Y + b.H - footerHeight, W: b.W, H: footerHeight}
	s.Add(FillRect{Rect: footer, Color: panelColor})
	for i, line := range []string{
		"Controls: WASD or Arrow Keys",
		"Mobile: Swipe to change direction",
		"Space: Pause/Resume",
	} {
		s.Add(Text{X: footer.X + footer.W/2, Y: footer.Y + 8 + float64(i)*22, Size: 16, Text: line, Color: textColor, Align: AlignCenter})
	}

	for _, btn := range w.buttons {
		btn.draw(&s, buttonColor, buttonActive, textColor)
	}

	w.scene = s
}

func (w *SnakeWidget) headerButtons(header Rect, state types.State) {
	const width, height, gap = 120, 36, 10
	y := header.Y + (header.H-height)/2
	right := header.X + header.W - 20

	if state == types.Idle {
		w.buttons = append(w.buttons, Button{
			Rect:   Rect{X: right - width, Y: y, W: width, H: height},
			Label:  "Start Game",
			Action: func() { w.game.Start() },
		})
		return
	}

	label := "Pause"
	if state == types.Paused {
		label = "Resume"
	}
	w.buttons = append(w.buttons,
		Button{
			Rect:   Rect{X: right - 2*width - gap, Y: y, W: width, H: height},
			Label:  label,
			Active: state == types.Paused,
			Action: func() { w.game.TogglePause() },
		},
		Button{
			Rect:   Rect{X: right - width, Y: y, W: width, H: height},
			Label:  "Reset",
			Action: func() { w.game.Reset() },
		},
	)
}

func (w *SnakeWidget) overlay(s *Scene, board Rect, snap game.Snapshot) {
	var (
		title  string
		lines  []string
		label  string
		action func()
	)

	switch snap.State {
	case types.Ended:
		title = "Game Over!"
		lines = []string{fmt.Sprintf("Your score: %d", snap.Score)}
		label, action = "Play Again", func() { w.game.Reset() }
	case types.Idle:
		title = "Snake Game"
		lines = []string{"Use WASD or Arrow Keys to control the snake", "Swipe on mobile devices to control"}
		label, action = "Start Game", func() { w.game.Start() }
	case types.Paused:
		title = "Game Paused"
		label, action = "Resume", func() { w.game.TogglePause() }
	default:
		return
	}

	cx, cy := board.Center()
	s.Add(
		FillRect{Rect: board, Color: overlayColor},
		Text{X: cx, Y: cy - 80, Size: 32, Text: title, Color: textColor, Align: AlignCenter},
	)
	for i, line := range lines {
		s.Add(Text{X: cx, Y: cy - 36 + float64(i)*24, Size: 16, Text: line, Color: textColor, Align: AlignCenter})
	}

	const width, height = 140, 40
	w.buttons = append(w.buttons, Button{
		Rect:   Rect{X: cx - width/2, Y: cy + 24, W: width, H: height},
		Label:  label,
		Action: action,
	})
}

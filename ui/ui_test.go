package ui

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"canvas-arcade/canvas"
	"canvas-arcade/game"
	"canvas-arcade/scheduler"
	"canvas-arcade/storage"

	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fixture struct {
	host  *Host
	clock *scheduler.ManualClock
	sched *scheduler.Scheduler
}

func newFixture(width, height int) *fixture {
	clock := scheduler.NewManualClock(epoch)
	return &fixture{
		host:  NewHost(width, height),
		clock: clock,
		sched: scheduler.New(clock),
	}
}

func newSnakeWidget(t *testing.T) *SnakeWidget {
	t.Helper()

	opts := game.DefaultOptions()
	opts.Seed = 3
	g := game.NewGame(context.Background(), opts, storage.NewMemoryStore(), testLogger())
	return NewSnakeWidget(context.Background(), g, 100*time.Millisecond, testLogger())
}

func newCanvasWidget(t *testing.T) *CanvasWidget {
	t.Helper()

	return NewCanvasWidget(canvas.Downloader{Dir: t.TempDir(), Options: canvas.DefaultEncodeOptions()}, 0, testLogger())
}

func findButton(t *testing.T, buttons []Button, label string) Button {
	t.Helper()

	for _, b := range buttons {
		if b.Label == label {
			return b
		}
	}
	require.Failf(t, "button not found", "no button labelled %q", label)
	return Button{}
}

func click(host *Host, b Button) {
	x, y := b.Rect.Center()
	host.Dispatch(Event{Kind: PointerDown, X: x, Y: y})
	host.Dispatch(Event{Kind: PointerUp, X: x, Y: y})
}

func texts(s Scene) []string {
	var out []string
	for _, item := range s.Items {
		if txt, ok := item.(Text); ok {
			out = append(out, txt.Text)
		}
	}
	return out
}

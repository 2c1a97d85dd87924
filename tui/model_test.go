package tui

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"canvas-arcade/game"
	"canvas-arcade/game/types"
	"canvas-arcade/storage"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newModel(t *testing.T) Model {
	t.Helper()

	opts := game.DefaultOptions()
	opts.Seed = 7
	g := game.NewGame(context.Background(), opts, storage.NewMemoryStore(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	return New(context.Background(), g)
}

func apply(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	got, ok := next.(Model)
	require.True(t, ok, "Update returned %T, want Model", next)
	return got, cmd
}

func press(t *testing.T, m Model, k string) (Model, tea.Cmd) {
	t.Helper()
	switch k {
	case "enter":
		return apply(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	case " ":
		return apply(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	case "up":
		return apply(t, m, tea.KeyMsg{Type: tea.KeyUp})
	}
	return apply(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
}

func TestModel_Init(t *testing.T) {
	m := newModel(t)
	assert.NotNil(t, m.Init())
}

func TestModel_PlayFlow(t *testing.T) {
	m := newModel(t)

	// Given: an idle game
	assert.Contains(t, m.View(), "Press Enter to start")

	// When: Enter starts it
	m, _ = press(t, m, "enter")
	require.Equal(t, types.Running, m.Game().State)

	// When: ticks arrive one interval apart
	m, cmd := apply(t, m, tickMsg(epoch))
	assert.NotNil(t, cmd)
	m, _ = apply(t, m, tickMsg(epoch.Add(150*time.Millisecond)))

	// Then: the snake moved one cell right
	assert.Equal(t, types.Point{X: 11, Y: 10}, m.Game().Snake.GetHead())

	// When: steering up and pausing
	m, _ = press(t, m, "up")
	assert.Equal(t, types.Up, m.Game().Snake.Direction)
	m, _ = press(t, m, " ")
	assert.Equal(t, types.Paused, m.Game().State)
	assert.Contains(t, m.View(), "Game Paused")

	// Then: ticks do not move a paused game
	m, _ = apply(t, m, tickMsg(epoch.Add(time.Second)))
	assert.Equal(t, types.Point{X: 11, Y: 10}, m.Game().Snake.GetHead())

	// When: reset
	m, _ = press(t, m, "r")
	assert.Equal(t, types.Idle, m.Game().State)
	assert.Equal(t, []types.Point{{X: 10, Y: 10}}, m.Game().Snake.Body)
}

func TestModel_WasdSteering(t *testing.T) {
	m := newModel(t)
	m, _ = press(t, m, "enter")

	m, _ = press(t, m, "s")
	assert.Equal(t, types.Down, m.Game().Snake.Direction)

	// Then: reversing onto the current axis is ignored
	m, _ = press(t, m, "a")
	assert.Equal(t, types.Down, m.Game().Snake.Direction)
}

func TestModel_GameOverView(t *testing.T) {
	m := newModel(t)
	m, _ = press(t, m, "enter")

	// When: the snake runs into the right wall
	for i := 0; i < 10; i++ {
		m.Game().Advance(context.Background())
	}
	require.Equal(t, types.Ended, m.Game().State)

	assert.Contains(t, m.View(), "Game Over! Your score: 0")

	// When: Enter plays again
	m, _ = press(t, m, "enter")
	assert.Equal(t, types.Running, m.Game().State)
}

func TestModel_QuitPausesRunningGame(t *testing.T) {
	m := newModel(t)
	m, _ = press(t, m, "enter")

	m, cmd := press(t, m, "q")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, types.Paused, m.Game().State)
}

func TestModel_ViewBoard(t *testing.T) {
	m := newModel(t)
	m, _ = apply(t, m, tea.WindowSizeMsg{Width: 80, Height: 40})

	view := m.View()
	assert.Contains(t, view, "Snake Game")
	assert.Contains(t, view, "Score: 0   High Score: 0")
	assert.Contains(t, view, headCell)
	assert.Contains(t, view, foodCell)
	assert.Contains(t, view, "Controls: WASD or Arrow Keys")
}

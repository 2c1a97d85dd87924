package tui

import (
	"context"
	"errors"
	"time"

	"canvas-arcade/game"
	"canvas-arcade/game/types"

	tea "github.com/charmbracelet/bubbletea"
)

// tickRate is how often the game gets a chance to step. Actual moves are
// still gated by the game's interval.
const tickRate = 20 * time.Millisecond

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(tickRate, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

var keys = map[string]game.Key{
	"up":    game.KeyUp,
	"w":     game.KeyUp,
	"k":     game.KeyUp,
	"down":  game.KeyDown,
	"s":     game.KeyDown,
	"j":     game.KeyDown,
	"left":  game.KeyLeft,
	"a":     game.KeyLeft,
	"h":     game.KeyLeft,
	"right": game.KeyRight,
	"d":     game.KeyRight,
	"l":     game.KeyRight,
	" ":     game.KeyPause,
	"p":     game.KeyPause,
	"enter": game.KeyStart,
	"r":     game.KeyReset,
}

// Model runs a snake game in the terminal.
type Model struct {
	ctx  context.Context
	game *game.Game

	width  int
	height int
}

func New(ctx context.Context, g *game.Game) Model {
	return Model{ctx: ctx, game: g}
}

func (m Model) Game() *game.Game {
	return m.game
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.game.Step(m.ctx, time.Time(msg))
		return m, tick()
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			if m.game.State == types.Running {
				m.game.TogglePause()
			}
			return m, tea.Quit
		}
		if key, ok := keys[msg.String()]; ok {
			m.game.HandleKey(key)
		}
		return m, nil
	}
	return m, nil
}

// Run blocks until the player quits or ctx is cancelled.
func Run(ctx context.Context, g *game.Game) error {
	_, err := tea.NewProgram(New(ctx, g), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

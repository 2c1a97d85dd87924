package tui

import (
	"fmt"
	"strings"

	"canvas-arcade/game"
	"canvas-arcade/game/types"

	"github.com/charmbracelet/lipgloss"
)

const (
	colorHead   lipgloss.Color = "#4caf50"
	colorBody   lipgloss.Color = "#8bc34a"
	colorFood   lipgloss.Color = "#ff5252"
	colorGrid   lipgloss.Color = "#45475a"
	colorText   lipgloss.Color = "#cdd6f4"
	colorSubtle lipgloss.Color = "#7f849c"
	colorAccent lipgloss.Color = "#f9e2af"
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	scoreStyle  = lipgloss.NewStyle().Foreground(colorText)
	hintStyle   = lipgloss.NewStyle().Foreground(colorSubtle)
	boardStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorSubtle)
	headStyle   = lipgloss.NewStyle().Foreground(colorHead)
	bodyStyle   = lipgloss.NewStyle().Foreground(colorBody)
	foodStyle   = lipgloss.NewStyle().Foreground(colorFood)
	emptyStyle  = lipgloss.NewStyle().Foreground(colorGrid)
	statusStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
)

// Cells are two columns wide so the board looks square.
const (
	headCell  = "██"
	bodyCell  = "▓▓"
	foodCell  = "()"
	emptyCell = " ·"
)

func (m Model) View() string {
	snap := m.game.Snapshot()

	var b strings.Builder
	b.WriteString(titleStyle.Render("Snake Game"))
	b.WriteString("\n")
	b.WriteString(scoreStyle.Render(fmt.Sprintf("Score: %d   High Score: %d", snap.Score, snap.HighScore)))
	b.WriteString("\n")
	b.WriteString(boardStyle.Render(board(snap)))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(status(snap)))
	b.WriteString("\n\n")
	b.WriteString(hintStyle.Render("Controls: WASD or Arrow Keys"))
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("Space: Pause/Resume   Enter: Start   R: Reset   Q: Quit"))

	view := b.String()
	if m.width > 0 && m.height > 0 {
		view = lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, view)
	}
	return view
}

func board(snap game.Snapshot) string {
	cells := make(map[types.Point]string, len(snap.Body)+1)
	if snap.HasFood {
		cells[snap.Food] = foodStyle.Render(foodCell)
	}
	for i := len(snap.Body) - 1; i >= 0; i-- {
		if i == 0 {
			cells[snap.Body[i]] = headStyle.Render(headCell)
		} else {
			cells[snap.Body[i]] = bodyStyle.Render(bodyCell)
		}
	}

	empty := emptyStyle.Render(emptyCell)
	rows := make([]string, snap.Grid.Height)
	for y := range rows {
		var row strings.Builder
		for x := 0; x < snap.Grid.Width; x++ {
			if cell, ok := cells[types.Point{X: x, Y: y}]; ok {
				row.WriteString(cell)
			} else {
				row.WriteString(empty)
			}
		}
		rows[y] = row.String()
	}
	return strings.Join(rows, "\n")
}

func status(snap game.Snapshot) string {
	switch snap.State {
	case types.Idle:
		return "Press Enter to start"
	case types.Paused:
		return "Game Paused"
	case types.Ended:
		return fmt.Sprintf("Game Over! Your score: %d  (Enter to play again)", snap.Score)
	default:
		return ""
	}
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nmorales/sintown/engine/state"
)

// renderStatusBar produces a full-width inverted status line showing the
// current room, bankroll, score, and turn count.
func (m Model) renderStatusBar() string {
	s := m.engine.State

	roomName := "????"
	if room, ok := m.defs.Rooms[s.CurrentRoom]; ok {
		roomName = room.Name
	}

	left := fmt.Sprintf(" %s", roomName)
	right := fmt.Sprintf("$%d00 | SCORE %d/%d | T:%d ",
		s.Money, s.Score, state.MaxScore, s.TurnCount)

	// Squeeze the carried count in when it fits.
	if n := len(s.Inventory); n > 0 {
		candidate := fmt.Sprintf("CARRYING %d | %s", n, right)
		if lipgloss.Width(left)+lipgloss.Width(candidate)+2 < m.width {
			right = candidate
		}
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return styleStatusBar.Width(m.width).Render(bar)
}

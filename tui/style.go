package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nmorales/sintown/types"
)

// Styles used throughout the TUI. The palette leans on bright terminal
// colors to match the arcade-era mood of the game.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	styleInputPrompt = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	stylePlayerInput = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleNormal = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	styleTitle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("213")).
			Bold(true)

	styleDesc = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	styleList = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleSystem = lipgloss.NewStyle().
			Foreground(lipgloss.Color("228"))

	styleError = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))

	styleDeath = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	styleWin = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true)
)

// renderStyled applies the lipgloss style matching an output event style.
func renderStyled(text string, style types.Style) string {
	switch style {
	case types.StyleTitle:
		return styleTitle.Render(text)
	case types.StyleDesc:
		return styleDesc.Render(text)
	case types.StyleList:
		return styleList.Render(text)
	case types.StyleEcho:
		return stylePlayerInput.Render(text)
	case types.StyleSystem:
		return styleSystem.Render(text)
	case types.StyleError:
		return styleError.Render(text)
	case types.StyleDeath:
		return styleDeath.Render(text)
	case types.StyleWin:
		return styleWin.Render(text)
	default:
		return styleNormal.Render(text)
	}
}

// styledPlayerInput renders the echoed player input with a "> " prefix.
func styledPlayerInput(input string) string {
	return stylePlayerInput.Render("> " + input)
}

// styledSystemMsg renders a front-end message in brackets.
func styledSystemMsg(text string) string {
	return styleSystem.Render("[" + text + "]")
}

// Package tui provides the Bubble Tea terminal UI for the game: a
// scrollback viewport, a status bar, and an input line with history.
package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nmorales/sintown/engine"
	"github.com/nmorales/sintown/engine/save"
	"github.com/nmorales/sintown/engine/state"
	"github.com/nmorales/sintown/types"
)

// rawLine stores an unstyled output line with its classification,
// so we can re-wrap and re-style when the terminal is resized.
type rawLine struct {
	text     string
	style    types.Style
	isInput  bool // echoed player input
	isSystem bool // front-end message (saves, errors)
}

// Model is the Bubble Tea model for the game TUI.
type Model struct {
	engine *engine.Engine
	defs   *state.Defs

	viewport viewport.Model
	input    textinput.Model
	history  *history

	rawLines []rawLine // accumulated narrative (unstyled, for re-wrapping)

	width      int
	height     int
	ready      bool
	quitting   bool
	namingSave bool // next input line is a save slot name
	saveDir    string
}

// New creates a TUI model wired to the given engine.
func New(eng *engine.Engine, defs *state.Defs) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Focus()
	ti.CharLimit = 256
	ti.PromptStyle = styleInputPrompt

	home, _ := os.UserHomeDir()
	return Model{
		engine:  eng,
		defs:    defs,
		input:   ti,
		history: newHistory(100),
		saveDir: filepath.Join(home, ".sintown", "saves"),
	}
}

// Run starts the Bubble Tea program.
func Run(eng *engine.Engine, defs *state.Defs) error {
	m := New(eng, defs)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

// Init returns the initial command producing the title banner and the
// starting room.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.initialOutput())
}

// gameOutputMsg carries engine output into the Update loop.
type gameOutputMsg struct {
	input  string // echoed player input (empty for intro)
	events []types.OutputEvent
	system []string // front-end messages
}

func (m Model) initialOutput() tea.Cmd {
	return func() tea.Msg {
		return gameOutputMsg{events: m.engine.Intro()}
	}
}

// Update handles messages (key presses, window resize, game output).
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		vpHeight := m.height - 2 // 1 status bar + 1 input line
		if vpHeight < 1 {
			vpHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(m.width, vpHeight)
			m.viewport.KeyMap = viewportKeyMap()
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = vpHeight
		}

		m.refreshViewport()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			return m.handleEnter()

		case "up":
			if prev, ok := m.history.Older(); ok {
				m.input.SetValue(prev)
				m.input.CursorEnd()
			}
			return m, nil

		case "down":
			if next, ok := m.history.Newer(); ok {
				m.input.SetValue(next)
				m.input.CursorEnd()
			} else {
				m.input.SetValue("")
				m.history.Reset()
			}
			return m, nil

		case "pgup", "pgdown":
			var vpCmd tea.Cmd
			m.viewport, vpCmd = m.viewport.Update(msg)
			return m, vpCmd
		}

	case gameOutputMsg:
		m = m.appendOutput(msg)
	}

	var inputCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)
	cmds = append(cmds, inputCmd)

	return m, tea.Batch(cmds...)
}

// handleEnter processes the submitted input line.
func (m Model) handleEnter() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")

	if input == "" {
		return m, nil
	}

	if m.namingSave {
		m.namingSave = false
		m.input.Prompt = "> "
		m = m.appendOutput(gameOutputMsg{system: m.writeSave(input)})
		return m, nil
	}

	m.history.Add(input)
	m.history.Reset()

	// Meta-commands.
	if strings.HasPrefix(input, "/") {
		output, quit := m.handleMeta(input)
		m = m.appendOutput(gameOutputMsg{input: input, system: output})
		if quit {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	result := m.engine.Step(input)
	m = m.appendOutput(gameOutputMsg{input: input, events: result.Events})

	switch {
	case result.QuitRequested:
		m.quitting = true
		return m, tea.Quit
	case result.Won:
		// Leave the ending on screen; any key after that is a normal turn,
		// and /quit still works.
	case result.SaveRequested:
		m.namingSave = true
		m.input.Prompt = "save as: "
		m = m.appendOutput(gameOutputMsg{system: []string{"ENTER A NAME FOR THE SAVE."}})
	}

	// Answers to pending questions get the question-mark prompt.
	if m.engine.Prompting() {
		m.input.Prompt = "?? "
	} else if !m.namingSave {
		m.input.Prompt = "> "
	}

	return m, nil
}

// appendOutput adds lines to the narrative and refreshes the viewport.
func (m Model) appendOutput(msg gameOutputMsg) Model {
	if msg.input != "" {
		m.rawLines = append(m.rawLines, rawLine{text: "> " + msg.input, isInput: true})
	}
	for _, ev := range msg.events {
		m.rawLines = append(m.rawLines, rawLine{text: ev.Text, style: ev.Style})
	}
	for _, line := range msg.system {
		m.rawLines = append(m.rawLines, rawLine{text: line, isSystem: true})
	}

	// Blank line separator between turns.
	m.rawLines = append(m.rawLines, rawLine{})

	m.refreshViewport()

	return m
}

// refreshViewport re-wraps and re-styles all raw lines at the current
// width and updates the viewport content.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}

	width := m.width
	if width < 10 {
		width = 10
	}

	var styled []string
	for _, rl := range m.rawLines {
		if rl.text == "" {
			styled = append(styled, "")
			continue
		}

		wrapped := wordWrap(rl.text, width)

		switch {
		case rl.isInput:
			styled = append(styled, stylePlayerInput.Render(wrapped))
		case rl.isSystem:
			styled = append(styled, styledSystemMsg(wrapped))
		default:
			styled = append(styled, renderStyled(wrapped, rl.style))
		}
	}

	m.viewport.SetContent(strings.Join(styled, "\n"))
	m.viewport.GotoBottom()
}

// wordWrap wraps text to fit within the given width, breaking at word
// boundaries.
func wordWrap(text string, width int) string {
	if width <= 0 || len(text) <= width {
		return text
	}

	var result strings.Builder
	words := strings.Fields(text)
	lineLen := 0

	for i, word := range words {
		wLen := len(word)

		if i == 0 {
			result.WriteString(word)
			lineLen = wLen
			continue
		}

		if lineLen+1+wLen > width {
			result.WriteString("\n")
			result.WriteString(word)
			lineLen = wLen
		} else {
			result.WriteString(" ")
			result.WriteString(word)
			lineLen += 1 + wLen
		}
	}

	return result.String()
}

// View renders the full TUI layout: viewport + status bar + input.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	return m.viewport.View() + "\n" + m.renderStatusBar() + "\n" + m.input.View()
}

// handleMeta dispatches meta-commands. Returns output lines and quit flag.
func (m *Model) handleMeta(input string) ([]string, bool) {
	parts := strings.Fields(input)
	cmd := parts[0]
	var arg string
	if len(parts) > 1 {
		arg = parts[1]
	}

	switch cmd {
	case "/quit", "/exit":
		return []string{"SEE YOU LATER!"}, true

	case "/save":
		return m.writeSave(arg), false

	case "/load":
		return m.cmdLoad(arg), false

	case "/help":
		return m.cmdHelp(), false

	default:
		return []string{fmt.Sprintf("UNKNOWN COMMAND: %s. TYPE /help FOR THE LIST.", cmd)}, false
	}
}

// writeSave serializes the game to a named slot under the save dir.
func (m *Model) writeSave(name string) []string {
	name = sanitizeSlot(name)
	if name == "" {
		name = "quicksave"
	}

	data, err := save.Save(m.engine.State, m.defs)
	if err != nil {
		return []string{fmt.Sprintf("SAVE FAILED: %v", err)}
	}
	if err := os.MkdirAll(m.saveDir, 0o755); err != nil {
		return []string{fmt.Sprintf("SAVE FAILED: %v", err)}
	}
	path := filepath.Join(m.saveDir, name+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return []string{fmt.Sprintf("SAVE FAILED: %v", err)}
	}
	return []string{fmt.Sprintf("SAVED AS %q.", name)}
}

func (m *Model) cmdLoad(name string) []string {
	name = sanitizeSlot(name)
	if name == "" {
		name = "quicksave"
	}

	path := filepath.Join(m.saveDir, name+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		return []string{fmt.Sprintf("LOAD FAILED: %v", err)}
	}

	sd, warning, err := save.Load(data)
	if err != nil {
		return []string{fmt.Sprintf("LOAD FAILED: %v", err)}
	}

	var output []string
	if warning != "" {
		output = append(output, warning)
	}
	save.Apply(m.engine.State, sd)
	m.engine.RestoreRNG(m.engine.State.RNGSeed, m.engine.State.RNGPosition)
	m.engine.ResetModes()
	output = append(output, fmt.Sprintf("LOADED %q (TURN %d).", name, m.engine.State.TurnCount))
	return output
}

// sanitizeSlot reduces a slot name to something safe for a filename.
func sanitizeSlot(name string) string {
	name = strings.TrimSpace(strings.ToLower(name))
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (m *Model) cmdHelp() []string {
	return []string{
		"System:",
		"  /save [name]  — save the game (default: quicksave)",
		"  /load [name]  — load a save (default: quicksave)",
		"  /quit         — exit",
		"  /help         — show this help",
		"",
		"Game commands are VERB NOUN: TAKE NEWSPAPER, OPEN DESK, BUY BEER.",
		"Directions: NORTH/SOUTH/EAST/WEST/UP/DOWN or N/S/E/W/U/D.",
		"Also: LOOK, PUSH, USE, CLIMB, SEDUCE, MARRY, CALL, ANSWER, DANCE,",
		"JUMP, TV ON/OFF, WATER ON/OFF, PLAY SLOTS, PLAY 21, HAIL TAXI,",
		"SCORE, INVENTORY, SAVE, QUIT.",
		"",
		"Navigation: PgUp/PgDn to scroll, Up/Down for command history",
	}
}

// viewportKeyMap returns a viewport keymap with Up/Down disabled
// (those drive input history instead).
func viewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		Up:           key.NewBinding(key.WithDisabled()),
		Down:         key.NewBinding(key.WithDisabled()),
	}
}

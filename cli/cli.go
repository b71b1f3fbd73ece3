// Package cli provides plain-terminal I/O for the game: a prompt loop,
// style-free output rendering, and save/load dispatch. It is the mode used
// for script playback and for terminals where the TUI is unwelcome.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nmorales/sintown/engine"
	"github.com/nmorales/sintown/engine/save"
	"github.com/nmorales/sintown/engine/state"
	"github.com/nmorales/sintown/types"
)

// CLI handles terminal interaction with the player.
type CLI struct {
	Engine    *engine.Engine
	Defs      *state.Defs
	In        io.Reader
	Out       io.Writer
	SaveDir   string
	Trace     bool
	EchoInput bool // echo each input line after the prompt (for script playback)
	NoDelay   bool // skip output pacing (for script playback and tests)
}

// New creates a CLI wired to the given engine.
func New(eng *engine.Engine, defs *state.Defs) *CLI {
	home, _ := os.UserHomeDir()
	return &CLI{
		Engine:  eng,
		Defs:    defs,
		In:      os.Stdin,
		Out:     os.Stdout,
		SaveDir: filepath.Join(home, ".sintown", "saves"),
	}
}

// Run starts the game loop. It shows the intro, then loops:
// prompt, input, step, output.
func (c *CLI) Run() {
	c.printEvents(c.Engine.Intro())

	scanner := bufio.NewScanner(c.In)
	for {
		c.prompt()
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		// Skip comment lines (for script files).
		if strings.HasPrefix(input, "#") {
			continue
		}
		if c.EchoInput {
			c.printLine(input)
		}

		result := c.Engine.Step(input)
		c.printEvents(result.Events)

		if c.Trace {
			c.printTrace()
		}

		switch {
		case result.QuitRequested:
			c.printSystem("SEE YOU LATER!")
			return
		case result.SaveRequested:
			c.saveGame(scanner)
		case result.Won:
			return
		}
	}
}

// prompt prints the input marker. Pending questions (password, taxi,
// casino bets) use a different marker than normal commands.
func (c *CLI) prompt() {
	if c.Engine.Prompting() {
		c.print("?? ")
		return
	}
	c.print("> ")
}

// saveGame asks for a slot name, writes the save file, and returns to
// the game loop.
func (c *CLI) saveGame(scanner *bufio.Scanner) {
	c.printSystem("SAVE UNDER WHAT NAME?")
	c.prompt()
	if !scanner.Scan() {
		return
	}
	name := sanitizeSlot(scanner.Text())
	if name == "" {
		name = "quicksave"
	}

	data, err := save.Save(c.Engine.State, c.Defs)
	if err != nil {
		c.printSystem(fmt.Sprintf("SAVE FAILED: %v", err))
		return
	}
	if err := os.MkdirAll(c.SaveDir, 0o755); err != nil {
		c.printSystem(fmt.Sprintf("SAVE FAILED: %v", err))
		return
	}
	path := filepath.Join(c.SaveDir, name+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		c.printSystem(fmt.Sprintf("SAVE FAILED: %v", err))
		return
	}
	c.printSystem(fmt.Sprintf("SAVED AS %q.", name))
}

// LoadGame restores a saved game by slot name. The caller may invoke it
// before Run to resume a previous session.
func (c *CLI) LoadGame(name string) error {
	name = sanitizeSlot(name)
	if name == "" {
		name = "quicksave"
	}
	path := filepath.Join(c.SaveDir, name+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	sd, warning, err := save.Load(data)
	if err != nil {
		return err
	}
	if warning != "" {
		c.printSystem(warning)
	}
	save.Apply(c.Engine.State, sd)
	c.Engine.RestoreRNG(c.Engine.State.RNGSeed, c.Engine.State.RNGPosition)
	c.Engine.ResetModes()
	c.printSystem(fmt.Sprintf("LOADED %q (TURN %d).", name, c.Engine.State.TurnCount))
	return nil
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

func (c *CLI) printTrace() {
	s := c.Engine.State
	c.printSystem(fmt.Sprintf("[trace] room=%d money=%d score=%d turn=%d",
		s.CurrentRoom, s.Money, s.Score, s.TurnCount))
	c.printSystem(fmt.Sprintf("[trace] inventory=%v", s.Inventory))
	if len(s.Flags) > 0 {
		c.printSystem(fmt.Sprintf("[trace] flags=%v", s.Flags))
	}
}

// printEvents renders output events as plain lines, honoring reveal delays.
func (c *CLI) printEvents(events []types.OutputEvent) {
	for _, ev := range events {
		c.printLine(ev.Text)
		if ev.DelayMs > 0 && !c.NoDelay {
			time.Sleep(time.Duration(ev.DelayMs) * time.Millisecond)
		}
	}
}

func (c *CLI) printLine(text string) {
	fmt.Fprintln(c.Out, text)
}

func (c *CLI) print(text string) {
	fmt.Fprint(c.Out, text)
}

func (c *CLI) printSystem(text string) {
	fmt.Fprintf(c.Out, "[%s]\n", text)
}

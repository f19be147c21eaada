// pkg/render/terminal_input.go
package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-spacewarriors/pkg/engine"
)

// DefaultHoldFrames is how long a key counts as held after its last press
// or auto-repeat event.
const DefaultHoldFrames = 8

type heldKey int

const (
	heldLeft heldKey = iota
	heldRight
	heldThrust
	heldReverse
	heldCount
)

// TerminalInput turns tcell key events into per-frame controls. Terminals
// report presses and auto-repeats but never releases, so a movement key
// stays held for a few frames after its last event. Fire and restart are
// delivered once per press.
type TerminalInput struct {
	screen     tcell.Screen
	holdFrames int
	held       [heldCount]int
	fire       bool
	restart    bool
	quit       bool
}

// NewTerminalInput reads events from screen. holdFrames <= 0 uses
// DefaultHoldFrames.
func NewTerminalInput(screen tcell.Screen, holdFrames int) *TerminalInput {
	if holdFrames <= 0 {
		holdFrames = DefaultHoldFrames
	}
	return &TerminalInput{screen: screen, holdFrames: holdFrames}
}

// Poll implements engine.InputSource. It drains pending events without
// blocking and returns the controls for the next frame.
func (in *TerminalInput) Poll() engine.Controls {
	for in.screen.HasPendingEvent() {
		in.HandleEvent(in.screen.PollEvent())
	}

	c := engine.Controls{
		TurnLeft:  in.held[heldLeft] > 0,
		TurnRight: in.held[heldRight] > 0,
		Thrust:    in.held[heldThrust] > 0,
		Reverse:   in.held[heldReverse] > 0,
		Fire:      in.fire,
		Restart:   in.restart,
		Quit:      in.quit,
	}
	for i := range in.held {
		if in.held[i] > 0 {
			in.held[i]--
		}
	}
	in.fire, in.restart = false, false
	return c
}

// HandleEvent applies one tcell event.
func (in *TerminalInput) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		in.handleKey(ev)
	case *tcell.EventResize:
		in.screen.Sync()
	case nil:
		// PollEvent returns nil once the screen is finalised.
		in.quit = true
	}
}

func (in *TerminalInput) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		in.quit = true
	case tcell.KeyLeft:
		in.hold(heldLeft)
	case tcell.KeyRight:
		in.hold(heldRight)
	case tcell.KeyUp:
		in.hold(heldThrust)
	case tcell.KeyDown:
		in.hold(heldReverse)
	case tcell.KeyRune:
		in.handleRune(ev.Rune())
	}
}

func (in *TerminalInput) handleRune(r rune) {
	switch r {
	case 'a', 'A':
		in.hold(heldLeft)
	case 'd', 'D':
		in.hold(heldRight)
	case 'w', 'W':
		in.hold(heldThrust)
	case 's', 'S':
		in.hold(heldReverse)
	case ' ':
		in.fire = true
	case 'r', 'R':
		in.restart = true
	case 'q', 'Q':
		in.quit = true
	}
}

// hold marks a movement key as held. Opposite directions cancel, matching
// a player letting go of one key to press the other.
func (in *TerminalInput) hold(k heldKey) {
	in.held[k] = in.holdFrames
	switch k {
	case heldLeft:
		in.held[heldRight] = 0
	case heldRight:
		in.held[heldLeft] = 0
	case heldThrust:
		in.held[heldReverse] = 0
	case heldReverse:
		in.held[heldThrust] = 0
	}
}

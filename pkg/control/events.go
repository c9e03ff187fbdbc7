package control

import (
	"fmt"

	"github.com/go-drift/easel/pkg/graphics"
)

// InputEvent is the closed set of input variants a host can deliver to a
// control.
type InputEvent interface {
	isInputEvent()
}

// PointerPhase identifies the stage of a pointer interaction.
type PointerPhase int

const (
	PointerPhaseDown  PointerPhase = iota // Button or touch pressed
	PointerPhaseUp                        // Button or touch released
	PointerPhaseClick                     // Press and release within the control
	PointerPhaseMove                      // Pointer moved
)

// String returns a human-readable representation of the pointer phase.
func (p PointerPhase) String() string {
	switch p {
	case PointerPhaseDown:
		return "down"
	case PointerPhaseUp:
		return "up"
	case PointerPhaseClick:
		return "click"
	case PointerPhaseMove:
		return "move"
	default:
		return fmt.Sprintf("PointerPhase(%d)", int(p))
	}
}

// PointerButton identifies which button drove a pointer event.
type PointerButton int

const (
	ButtonPrimary   PointerButton = iota // Left mouse button / touch
	ButtonSecondary                      // Right mouse button
)

// PointerEvent carries a pointer interaction in surface coordinates.
type PointerEvent struct {
	Phase    PointerPhase
	Position graphics.Offset
	Button   PointerButton
}

func (PointerEvent) isInputEvent() {}

// KeyEvent carries a key press. Rune is the typed character, if any;
// Name identifies non-character keys ("enter", "escape", "left").
type KeyEvent struct {
	Rune rune
	Name string
}

func (KeyEvent) isInputEvent() {}

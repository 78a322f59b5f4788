package pinwheel

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// --- Bindings ---

// KeyBindings maps keyboard keys to menu actions.
type KeyBindings struct {
	Confirm          ebiten.Key
	Cancel           ebiten.Key
	Toggle           ebiten.Key
	Clockwise        ebiten.Key
	CounterClockwise ebiten.Key
}

// DefaultKeyBindings returns the standard keyboard layout: Enter confirms,
// Escape cancels, Space toggles, and the horizontal arrows step the
// highlight.
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Confirm:          ebiten.KeyEnter,
		Cancel:           ebiten.KeyEscape,
		Toggle:           ebiten.KeySpace,
		Clockwise:        ebiten.KeyArrowRight,
		CounterClockwise: ebiten.KeyArrowLeft,
	}
}

// PadBindings maps standard-layout gamepad buttons to menu actions. The
// left stick always drives selection and the right stick repositioning.
type PadBindings struct {
	Confirm ebiten.StandardGamepadButton
	Cancel  ebiten.StandardGamepadButton
	Toggle  ebiten.StandardGamepadButton
	DPadCW  ebiten.StandardGamepadButton
	DPadCCW ebiten.StandardGamepadButton
}

// DefaultPadBindings returns the standard controller layout: A confirms,
// B cancels, Start toggles, and the horizontal D-pad steps the highlight.
func DefaultPadBindings() PadBindings {
	return PadBindings{
		Confirm: ebiten.StandardGamepadButtonRightBottom,
		Cancel:  ebiten.StandardGamepadButtonRightRight,
		Toggle:  ebiten.StandardGamepadButtonCenterRight,
		DPadCW:  ebiten.StandardGamepadButtonLeftRight,
		DPadCCW: ebiten.StandardGamepadButtonLeftLeft,
	}
}

// --- Sampler ---

// InputSampler polls Ebitengine input once per frame and feeds the menu:
// mouse motion and clicks, edge-triggered key presses, and one fixed-rate
// ControllerFrame from the first standard-layout gamepad. Construct it with
// NewInputSampler and call Sample from the game's Update, after which the
// menu's own Update advances queued and transitional work.
//
// The sampler does its own edge detection for keys and the mouse button;
// controller buttons are delivered as level state and edge-triggered inside
// the menu.
type InputSampler struct {
	menu *Menu
	keys KeyBindings
	pads PadBindings

	prevKeys  [5]bool
	mouseDown bool
	lastX     int
	lastY     int
	hasCursor bool

	gamepadIDs []ebiten.GamepadID
}

// key slot indices for prevKeys.
const (
	keySlotConfirm = iota
	keySlotCancel
	keySlotToggle
	keySlotCW
	keySlotCCW
)

// NewInputSampler returns a sampler with the default bindings.
func NewInputSampler(menu *Menu) *InputSampler {
	return &InputSampler{
		menu: menu,
		keys: DefaultKeyBindings(),
		pads: DefaultPadBindings(),
	}
}

// SetKeyBindings replaces the keyboard bindings.
func (s *InputSampler) SetKeyBindings(b KeyBindings) { s.keys = b }

// SetPadBindings replaces the gamepad bindings.
func (s *InputSampler) SetPadBindings(b PadBindings) { s.pads = b }

// Sample reads the current input state and applies it to the menu. Call
// exactly once per Update tick.
func (s *InputSampler) Sample() {
	s.sampleMouse()
	s.sampleKeyboard()
	s.sampleGamepad()
}

func (s *InputSampler) sampleMouse() {
	mx, my := ebiten.CursorPosition()
	if !s.hasCursor || mx != s.lastX || my != s.lastY {
		s.hasCursor = true
		s.lastX = mx
		s.lastY = my
		s.menu.PointerMoved(Vec2{X: float64(mx), Y: float64(my)})
	}

	down := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	if s.mouseDown && !down {
		// Click fires on release, at the release position.
		s.menu.PointerClicked(Vec2{X: float64(mx), Y: float64(my)})
	}
	s.mouseDown = down
}

func (s *InputSampler) sampleKeyboard() {
	s.keyEdge(keySlotConfirm, s.keys.Confirm, s.menu.Confirm)
	s.keyEdge(keySlotCancel, s.keys.Cancel, s.menu.Cancel)
	s.keyEdge(keySlotToggle, s.keys.Toggle, s.menu.Toggle)
	s.keyEdge(keySlotCW, s.keys.Clockwise, func() { s.menu.Navigate(true) })
	s.keyEdge(keySlotCCW, s.keys.CounterClockwise, func() { s.menu.Navigate(false) })
}

// keyEdge fires fn only on the released-to-pressed transition, so a held
// key never repeats its action.
func (s *InputSampler) keyEdge(slot int, key ebiten.Key, fn func()) {
	down := ebiten.IsKeyPressed(key)
	if down && !s.prevKeys[slot] {
		fn()
	}
	s.prevKeys[slot] = down
}

func (s *InputSampler) sampleGamepad() {
	s.gamepadIDs = ebiten.AppendGamepadIDs(s.gamepadIDs[:0])

	for _, id := range s.gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		// Ebitengine reports stick Y positive-down; ControllerFrame uses
		// positive-up, so the vertical axes flip sign here.
		frame := ControllerFrame{
			AxisX: ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal),
			AxisY: -ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical),
			MoveX: ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal),
			MoveY: -ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical),
		}
		frame.Buttons[ButtonConfirm] = ebiten.IsStandardGamepadButtonPressed(id, s.pads.Confirm)
		frame.Buttons[ButtonCancel] = ebiten.IsStandardGamepadButtonPressed(id, s.pads.Cancel)
		frame.Buttons[ButtonToggle] = ebiten.IsStandardGamepadButtonPressed(id, s.pads.Toggle)
		frame.Buttons[ButtonNavCW] = ebiten.IsStandardGamepadButtonPressed(id, s.pads.DPadCW)
		frame.Buttons[ButtonNavCCW] = ebiten.IsStandardGamepadButtonPressed(id, s.pads.DPadCCW)

		s.menu.ApplyControllerFrame(frame)
		return
	}
}

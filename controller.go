package pinwheel

// Button identifies a named digital control in a ControllerFrame.
type Button uint8

const (
	ButtonConfirm Button = iota // confirm the highlighted item
	ButtonCancel                // dismiss the menu (or exit a sub-mode)
	ButtonToggle                // open when closed, close when open
	ButtonNavCW                 // step the highlight one slice clockwise
	ButtonNavCCW                // step the highlight one slice counter-clockwise
	buttonCount
)

// ControllerFrame is one fixed-rate sample of controller state. Axis values
// range over [-1, 1] with positive Y meaning the stick is pushed up (the
// selection math inverts the sign to match screen space). AxisX/AxisY drive
// selection; MoveX/MoveY are the secondary stick that repositions the menu
// window without touching the selection.
//
// Frames carry level state, not edges. The Menu compares each frame against
// the previous one and reacts to a button only on its rising edge, so a held
// button never repeats its action.
type ControllerFrame struct {
	AxisX, AxisY float64
	MoveX, MoveY float64
	Buttons      [buttonCount]bool
}

// Pressed reports the level state of b in this frame.
func (f ControllerFrame) Pressed(b Button) bool {
	return f.Buttons[b]
}

// pressedEdge reports whether b transitioned from released to pressed
// between prev and this frame.
func (f ControllerFrame) pressedEdge(prev ControllerFrame, b Button) bool {
	return f.Buttons[b] && !prev.Buttons[b]
}

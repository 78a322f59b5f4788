package pinwheel

// syntheticEvent represents a single injected input event. Events are
// consumed one per Update call, so a scripted sequence observes the same
// frame boundaries as real input.
type syntheticEvent struct {
	kind      syntheticKind
	pos       Vec2
	clockwise bool
}

type syntheticKind uint8

const (
	synthMove syntheticKind = iota
	synthClick
	synthNavigate
	synthConfirm
	synthCancel
	synthToggle
)

// InjectPointerMove queues a pointer motion sample at (x, y). The event is
// consumed on the next Update call.
func (m *Menu) InjectPointerMove(x, y float64) {
	m.injectQueue = append(m.injectQueue, syntheticEvent{kind: synthMove, pos: Vec2{X: x, Y: y}})
}

// InjectClick queues a click at (x, y).
func (m *Menu) InjectClick(x, y float64) {
	m.injectQueue = append(m.injectQueue, syntheticEvent{kind: synthClick, pos: Vec2{X: x, Y: y}})
}

// InjectNavigate queues one discrete navigation step.
func (m *Menu) InjectNavigate(clockwise bool) {
	m.injectQueue = append(m.injectQueue, syntheticEvent{kind: synthNavigate, clockwise: clockwise})
}

// InjectConfirm queues a confirm press.
func (m *Menu) InjectConfirm() {
	m.injectQueue = append(m.injectQueue, syntheticEvent{kind: synthConfirm})
}

// InjectCancel queues a cancel press.
func (m *Menu) InjectCancel() {
	m.injectQueue = append(m.injectQueue, syntheticEvent{kind: synthCancel})
}

// InjectToggle queues a toggle press.
func (m *Menu) InjectToggle() {
	m.injectQueue = append(m.injectQueue, syntheticEvent{kind: synthToggle})
}

// drainInjected pops one queued event and applies it through the same entry
// points real input uses.
func (m *Menu) drainInjected() {
	if len(m.injectQueue) == 0 {
		return
	}
	evt := m.injectQueue[0]
	copy(m.injectQueue, m.injectQueue[1:])
	m.injectQueue = m.injectQueue[:len(m.injectQueue)-1]

	switch evt.kind {
	case synthMove:
		m.PointerMoved(evt.pos)
	case synthClick:
		m.PointerClicked(evt.pos)
	case synthNavigate:
		m.Navigate(evt.clockwise)
	case synthConfirm:
		m.Confirm()
	case synthCancel:
		m.Cancel()
	case synthToggle:
		m.Toggle()
	}
}

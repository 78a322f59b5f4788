package pinwheel

import (
	"fmt"
	"math"

	"github.com/tanema/gween/ease"
)

const defaultRepositionSpeed = 8.0 // pixels per frame at full deflection

// Config describes a Menu. Zero values get defaults where noted; invalid
// geometry is rejected by NewMenu so it can never surface mid-interaction.
type Config struct {
	// Items is the base item list. May be empty; an empty layout has no
	// selectable slices and only Toggle/Cancel do anything.
	Items []Item

	// Radius is the outer radius of the menu in pixels. Required, > 0.
	Radius float64

	// CenterRadius is the inner dead circle where the pointer selects
	// nothing. Must satisfy 0 <= CenterRadius < Radius.
	CenterRadius float64

	// Deadzone is the analog stick deadzone on a [-1, 1] axis range.
	// Zero means DefaultDeadzone; negative is a configuration error.
	Deadzone float64

	// Position is the initial center of the menu in screen coordinates.
	Position Vec2

	// ClickThrough makes clicks outside the menu pass through to whatever
	// is underneath instead of dismissing the menu.
	ClickThrough bool

	// RepositionSpeed scales the secondary stick into a per-frame window
	// translation, in pixels at full deflection. Zero means the default.
	RepositionSpeed float64

	// CloseDuration is the length of the close transition in seconds.
	// Zero closes immediately.
	CloseDuration float32

	// Easing shapes the close transition. Nil means ease.Linear.
	Easing ease.TweenFunc

	// Collaborators. All optional; nil disables the corresponding behavior.
	Executor Executor
	Tasks    TaskProvider
	Overlay  Overlay

	// OnExecuteError receives failures from fire-and-forget execution.
	// Called on the executor goroutine, not the update context.
	OnExecuteError func(command string, err error)
}

// Menu is the radial selection widget: it owns the interaction state and the
// currently highlighted slice, fuses pointer, discrete-step, and controller
// input, and routes confirmed items to their actions.
//
// All state mutation must happen on a single goroutine, normally the game's
// Update loop. Input arriving on other goroutines has to be marshaled onto
// that context first; the per-tick operations themselves never block.
type Menu struct {
	cfg       Config
	deadzone  float64
	repoSpeed float64

	center      Vec2
	items       []Item // active list: cfg.Items, or the task list in sub-mode
	slices      []Slice
	state       State
	highlighted int

	clickThrough bool
	prevFrame    ControllerFrame
	pending      *pendingSelection
	closing      transition
	handlers     handlerRegistry
	injectQueue  []syntheticEvent
}

// NewMenu validates cfg and returns a closed menu.
func NewMenu(cfg Config) (*Menu, error) {
	if cfg.Radius <= 0 {
		return nil, fmt.Errorf("menu config: radius must be positive, got %v", cfg.Radius)
	}
	if cfg.CenterRadius < 0 || cfg.CenterRadius >= cfg.Radius {
		return nil, fmt.Errorf("menu config: center radius %v must be in [0, %v)", cfg.CenterRadius, cfg.Radius)
	}
	if cfg.Deadzone < 0 {
		return nil, fmt.Errorf("menu config: deadzone must not be negative, got %v", cfg.Deadzone)
	}

	m := &Menu{
		cfg:          cfg,
		deadzone:     cfg.Deadzone,
		repoSpeed:    cfg.RepositionSpeed,
		center:       cfg.Position,
		items:        cfg.Items,
		state:        StateClosed,
		highlighted:  NoSelection,
		clickThrough: cfg.ClickThrough,
	}
	if m.deadzone == 0 {
		m.deadzone = DefaultDeadzone
	}
	if m.repoSpeed == 0 {
		m.repoSpeed = defaultRepositionSpeed
	}
	m.layout()
	return m, nil
}

// --- Accessors ---

// State returns the current interaction state.
func (m *Menu) State() State { return m.state }

// Highlighted returns the currently highlighted slice index, or NoSelection.
func (m *Menu) Highlighted() int { return m.highlighted }

// Items returns the active item list: the base items, or the task list while
// the sub-mode is active. The returned slice is read-only.
func (m *Menu) Items() []Item { return m.items }

// Slices returns the current layout. The returned slices are immutable;
// layout changes replace the whole array.
func (m *Menu) Slices() []Slice { return m.slices }

// Center returns the menu's center position in screen coordinates.
func (m *Menu) Center() Vec2 { return m.center }

// Radius returns the outer radius.
func (m *Menu) Radius() float64 { return m.cfg.Radius }

// CenterRadius returns the inner dead-circle radius.
func (m *Menu) CenterRadius() float64 { return m.cfg.CenterRadius }

// CloseProgress reports the close transition's progress in [0, 1]. Only
// meaningful while the state is StateClosing.
func (m *Menu) CloseProgress() float64 { return float64(m.closing.progress) }

// --- Lifecycle ---

// Open shows the menu at its current position with nothing highlighted.
// No-op unless the menu is closed.
func (m *Menu) Open() {
	if m.state != StateClosed {
		return
	}
	m.open()
}

// OpenAt moves the menu to pos and opens it.
func (m *Menu) OpenAt(pos Vec2) {
	if m.state != StateClosed {
		return
	}
	m.center = pos
	m.open()
}

func (m *Menu) open() {
	m.state = StateOpen
	m.items = m.cfg.Items
	m.highlighted = NoSelection
	m.closing.reset()
	m.layout()
	if m.cfg.Overlay != nil {
		m.cfg.Overlay.OpenAt(m.center)
		m.cfg.Overlay.SetClickThrough(m.clickThrough)
	}
	m.fireOpen()
}

// Toggle opens a closed menu, or dismisses an open one (sub-mode included).
// No-op while the close transition is running.
func (m *Menu) Toggle() {
	switch m.state {
	case StateClosed:
		m.open()
	case StateOpen, StateSubMode:
		m.beginDismiss()
	}
}

// Cancel dismisses the menu without a selection. In the sub-mode it steps
// back to the base item list instead of closing. No-op when already closed
// or closing.
func (m *Menu) Cancel() {
	switch m.state {
	case StateOpen:
		m.beginDismiss()
	case StateSubMode:
		m.exitSubMode()
	}
}

// Close unconditionally resets the menu to Closed, discarding any sub-mode
// state and skipping the close transition. Safe to call at any time; an
// awaiting return-only caller receives a dismissal.
func (m *Menu) Close() {
	if m.state == StateClosed {
		return
	}
	if m.state != StateClosing {
		m.fireDismiss()
	}
	m.resolvePending(SelectionOutcome{Selected: false, Index: NoSelection})
	m.finishClose()
}

// Update advances per-tick work: one queued synthetic event and the close
// transition. Call once per frame from the update loop.
func (m *Menu) Update(dt float32) {
	m.drainInjected()
	if m.closing.update(dt) {
		m.finishClose()
	}
}

func (m *Menu) beginDismiss() {
	m.fireDismiss()
	m.resolvePending(SelectionOutcome{Selected: false, Index: NoSelection})
	m.beginClose()
}

func (m *Menu) beginClose() {
	m.state = StateClosing
	if !m.closing.start(m.cfg.CloseDuration, m.cfg.Easing) {
		m.finishClose()
	}
}

func (m *Menu) finishClose() {
	m.state = StateClosed
	m.items = m.cfg.Items
	m.highlighted = NoSelection
	m.closing.reset()
	m.layout()
	if m.cfg.Overlay != nil {
		m.cfg.Overlay.Hide()
	}
}

// --- Input entry points ---

// PointerMoved recomputes the highlight from a pointer position. The last
// sample wins; there is no debouncing.
func (m *Menu) PointerMoved(pos Vec2) {
	if !m.interactive() {
		return
	}
	m.setHighlight(SliceAtPoint(pos, m.center, m.cfg.CenterRadius, m.cfg.Radius, m.slices))
}

// PointerClicked handles a click released at pos. Inside the menu it
// confirms whatever slice the click landed on (center clicks select nothing
// and are a no-op). Outside the menu it dismisses, unless click-through is
// enabled.
func (m *Menu) PointerClicked(pos Vec2) {
	if !m.interactive() {
		return
	}
	if IsInsideMenu(pos, m.center, m.cfg.Radius) {
		m.setHighlight(SliceAtPoint(pos, m.center, m.cfg.CenterRadius, m.cfg.Radius, m.slices))
		m.Confirm()
		return
	}
	if !m.clickThrough {
		m.beginDismiss()
	}
}

// Navigate steps the highlight one slice clockwise or counter-clockwise.
// Callers deliver pre-debounced, edge-triggered steps: one call per press.
func (m *Menu) Navigate(clockwise bool) {
	if !m.interactive() {
		return
	}
	n := len(m.items)
	if clockwise {
		m.setHighlight(NextSliceClockwise(m.highlighted, n))
	} else {
		m.setHighlight(NextSliceCounterClockwise(m.highlighted, n))
	}
}

// Confirm acts on the highlighted item. A confirm with nothing highlighted
// is a no-op, not an error; the menu stays open.
func (m *Menu) Confirm() {
	if !m.interactive() {
		return
	}
	if m.highlighted == NoSelection || m.highlighted >= len(m.items) {
		return
	}
	index := m.highlighted
	item := m.items[index]
	m.fireConfirm(index, item)
	if m.dispatch(index, item) {
		m.beginClose()
	}
}

// ApplyControllerFrame consumes one fixed-rate controller sample. Buttons
// are edge-triggered against the previous frame, so a held button fires its
// action exactly once. The selection stick resolves to a slice every frame;
// inside the deadzone the previous highlight is kept, not cleared. The
// secondary stick repositions the menu without touching the selection.
func (m *Menu) ApplyControllerFrame(f ControllerFrame) {
	prev := m.prevFrame
	m.prevFrame = f

	if f.pressedEdge(prev, ButtonToggle) {
		m.Toggle()
		return
	}
	if !m.interactive() {
		return
	}
	if f.pressedEdge(prev, ButtonCancel) {
		m.Cancel()
		return
	}

	if f.pressedEdge(prev, ButtonNavCW) {
		m.Navigate(true)
	}
	if f.pressedEdge(prev, ButtonNavCCW) {
		m.Navigate(false)
	}

	if idx := SliceFromStick(f.AxisX, f.AxisY, m.deadzone, m.slices); idx != NoSelection {
		m.setHighlight(idx)
	}

	m.applyReposition(f.MoveX, f.MoveY)

	if f.pressedEdge(prev, ButtonConfirm) {
		m.Confirm()
	}
}

// SetClickThrough updates whether clicks outside the menu dismiss it, and
// forwards the flag to the overlay host.
func (m *Menu) SetClickThrough(enabled bool) {
	m.clickThrough = enabled
	if m.cfg.Overlay != nil {
		m.cfg.Overlay.SetClickThrough(enabled)
	}
}

// SetItems replaces the base item list. The layout is rebuilt and, outside
// the sub-mode, the highlight resets so it can never point at a stale index.
func (m *Menu) SetItems(items []Item) {
	m.cfg.Items = items
	if m.state == StateSubMode {
		return
	}
	m.items = items
	m.layout()
	m.setHighlight(NoSelection)
}

// --- Internals ---

// interactive reports whether the menu currently accepts selection input.
func (m *Menu) interactive() bool {
	return m.state == StateOpen || m.state == StateSubMode
}

func (m *Menu) setHighlight(index int) {
	if index == m.highlighted {
		return
	}
	m.highlighted = index
	m.fireHighlight(index)
}

func (m *Menu) layout() {
	m.slices = LayoutSlices(len(m.items), m.cfg.Radius, m.center)
}

// applyReposition turns the secondary stick into a window translation.
// Orthogonal to selection: the highlight is untouched. Stick Y is inverted
// into screen space so pushing up moves the menu up.
func (m *Menu) applyReposition(x, y float64) {
	if math.Sqrt(x*x+y*y) < m.deadzone {
		return
	}
	delta := Vec2{X: x * m.repoSpeed, Y: -y * m.repoSpeed}
	m.center.X += delta.X
	m.center.Y += delta.Y
	m.layout()
	if m.cfg.Overlay != nil {
		m.cfg.Overlay.MoveBy(delta)
	}
}

func (m *Menu) enterSubMode() {
	m.state = StateSubMode
	m.items = m.cfg.Tasks.Tasks()
	m.layout()
	m.setHighlight(NoSelection)
}

func (m *Menu) exitSubMode() {
	m.state = StateOpen
	m.items = m.cfg.Items
	m.layout()
	// Reset rather than restore the pre-sub-mode highlight.
	m.setHighlight(NoSelection)
}

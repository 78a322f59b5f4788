package pinwheel

// ActionKind is the closed set of things a confirmed item can do. Internally
// handled kinds are resolved by the menu itself and never reach the Executor.
type ActionKind uint8

const (
	ActionNone       ActionKind = iota // inert item; confirming it just closes the menu
	ActionRun                          // forward Command to the Executor
	ActionTaskSwitch                   // internally handled: browse the TaskProvider's list
)

// Action describes what confirming an item does. Command is an opaque
// descriptor interpreted by the Executor; the menu never parses it.
type Action struct {
	Kind    ActionKind
	Command string
}

// Item is one selectable entry in the radial layout. The menu only needs
// Label for presentation and Action for confirm dispatch; everything else
// about an item lives with the menu provider.
type Item struct {
	Label  string
	Action Action
}

// --- Boundary contracts ---

// Executor runs confirmed action commands. Implementations live outside the
// widget (process launching, keystroke synthesis, scripting); the menu calls
// Execute on its own goroutine and does not wait for the result.
type Executor interface {
	Execute(command string) error
}

// TaskProvider supplies the dynamic item list shown by the task-switching
// sub-mode, e.g. currently running windows or processes. Called at sub-mode
// entry; the returned slice is not retained beyond that session.
type TaskProvider interface {
	Tasks() []Item
}

// Overlay is the window host the menu drives. All calls happen on the
// menu's update context.
type Overlay interface {
	OpenAt(pos Vec2)
	Hide()
	MoveBy(delta Vec2)
	SetClickThrough(enabled bool)
}

// --- Action routing ---

// dispatch routes a confirmed item: internally handled kinds stay inside the
// menu, everything else is resolved against the pending return-only request
// or handed to the Executor. Reports whether the menu should begin closing.
func (m *Menu) dispatch(index int, item Item) bool {
	switch item.Action.Kind {
	case ActionTaskSwitch:
		// Task switching only nests one level: confirming a task-switch item
		// while already browsing tasks is treated as inert.
		if m.state == StateOpen && m.cfg.Tasks != nil {
			m.enterSubMode()
			return false
		}
		return true

	case ActionRun:
		if m.resolvePending(SelectionOutcome{Selected: true, Index: index, Item: item}) {
			// Return-only interaction: the caller owns the outcome and the
			// executor is suppressed entirely.
			return true
		}
		m.execute(item.Action.Command)
		return true

	default:
		m.resolvePending(SelectionOutcome{Selected: true, Index: index, Item: item})
		return true
	}
}

// execute fires the command at the Executor without waiting for the result.
// Failures are reported through the optional OnExecuteError callback.
func (m *Menu) execute(command string) {
	exec := m.cfg.Executor
	if exec == nil {
		return
	}
	onErr := m.cfg.OnExecuteError
	go func() {
		if err := exec.Execute(command); err != nil && onErr != nil {
			onErr(command, err)
		}
	}()
}

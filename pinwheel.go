package pinwheel

// Vec2 is a 2D point or offset in screen coordinates. The coordinate system
// has its origin at the top-left, with Y increasing downward.
type Vec2 struct {
	X, Y float64
}

// NoSelection marks the absence of a highlighted slice index.
const NoSelection = -1

// State identifies the interaction state of a Menu.
type State uint8

const (
	StateClosed  State = iota // menu is hidden; only Toggle/Open react
	StateOpen                 // menu is visible and navigable
	StateSubMode              // menu is open, browsing a dynamically supplied list
	StateClosing              // close transition in progress; input is ignored
)

// String returns the state name for debugging output.
func (s State) String() string {
	switch s {
	case StateClosed:
		return "Closed"
	case StateOpen:
		return "Open"
	case StateSubMode:
		return "SubMode"
	case StateClosing:
		return "Closing"
	default:
		return "Unknown"
	}
}

// EventType identifies a kind of menu transition event.
type EventType uint8

const (
	EventOpen      EventType = iota // fires when the menu opens
	EventHighlight                  // fires when the highlighted slice changes
	EventConfirm                    // fires when an item is confirmed
	EventDismiss                    // fires when the menu is dismissed without a selection
)

// HitKind classifies where a point landed relative to the menu geometry.
type HitKind uint8

const (
	HitOutside HitKind = iota // beyond the outer radius, or no slice matched
	HitCenter                 // inside the inner dead circle
	HitSlice                  // inside one angular slice; see HitResult.Index
)

// HitResult is the outcome of a single hit test. Index is only meaningful
// when Kind is HitSlice; otherwise it is NoSelection.
type HitResult struct {
	Kind  HitKind
	Index int
}

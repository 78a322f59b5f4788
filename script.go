package pinwheel

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in an interaction script.
type scriptStep struct {
	Action    string  `json:"action"`
	X         float64 `json:"x,omitempty"`
	Y         float64 `json:"y,omitempty"`
	Clockwise bool    `json:"clockwise,omitempty"`
	Frames    int     `json:"frames,omitempty"`
}

// interactionScript is the top-level JSON structure for a script.
type interactionScript struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner sequences injected menu input across frames for automated
// interaction testing. Supported actions: "toggle", "move", "click",
// "navigate" (with "clockwise"), "confirm", "cancel", and "wait" (with
// "frames"). Attach to a Menu and call Step once per Update tick.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON interaction script.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var script interactionScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse interaction script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse interaction script: no steps")
	}
	for _, st := range script.Steps {
		switch st.Action {
		case "toggle", "move", "click", "navigate", "confirm", "cancel", "wait":
		default:
			return nil, fmt.Errorf("parse interaction script: unknown action %q", st.Action)
		}
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

// Done reports whether all steps have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Step advances the runner by one frame, queuing at most one event on the
// menu. Call before Menu.Update each frame.
func (r *ScriptRunner) Step(m *Menu) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(m.injectQueue) > 0 {
		return
	}
	// Count down wait frames.
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "toggle":
		m.InjectToggle()
	case "move":
		m.InjectPointerMove(st.X, st.Y)
	case "click":
		m.InjectClick(st.X, st.Y)
	case "navigate":
		m.InjectNavigate(st.Clockwise)
	case "confirm":
		m.InjectConfirm()
	case "cancel":
		m.InjectCancel()
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(m.injectQueue) == 0 {
		r.done = true
	}
}

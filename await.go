package pinwheel

// SelectionOutcome is the result of one open/close cycle in return-only
// mode: either the confirmed item or a dismissal.
type SelectionOutcome struct {
	Selected bool
	Index    int
	Item     Item
}

// pendingSelection is a single-shot result slot for a return-only
// interaction. The channel is buffered so resolving never blocks, which
// makes it safe for the awaiting caller to walk away without receiving.
type pendingSelection struct {
	ch       chan SelectionOutcome
	resolved bool
}

func newPendingSelection() *pendingSelection {
	return &pendingSelection{ch: make(chan SelectionOutcome, 1)}
}

// resolve delivers the outcome exactly once; later calls are ignored.
func (p *pendingSelection) resolve(outcome SelectionOutcome) {
	if p.resolved {
		return
	}
	p.resolved = true
	p.ch <- outcome
}

// OpenForResult opens the menu in return-only mode: instead of dispatching
// the confirmed item to the Executor, the outcome of this open/close cycle
// is delivered exactly once on the returned channel. Dismissing the menu
// delivers a non-selected outcome. If the menu is already open, the existing
// interaction is dismissed first so the new caller gets a fresh cycle.
//
// The channel is buffered; dropping it without receiving is safe.
func (m *Menu) OpenForResult() <-chan SelectionOutcome {
	if m.state != StateClosed {
		m.Close()
	}
	m.pending = newPendingSelection()
	m.open()
	return m.pending.ch
}

// resolvePending resolves the active return-only request, if any, and
// reports whether one was active. The slot is cleared so a later cycle
// cannot resolve a stale channel.
func (m *Menu) resolvePending(outcome SelectionOutcome) bool {
	if m.pending == nil {
		return false
	}
	m.pending.resolve(outcome)
	m.pending = nil
	return true
}

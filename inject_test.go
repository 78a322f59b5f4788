package pinwheel

import "testing"

func TestInjectOnePerUpdate(t *testing.T) {
	m := newTestMenu(t, baseConfig())

	m.InjectToggle()
	m.InjectNavigate(true)

	if m.State() != StateClosed {
		t.Fatal("injected events applied before Update")
	}

	m.Update(0)
	if m.State() != StateOpen {
		t.Fatalf("after first Update state = %v, want Open", m.State())
	}
	if m.Highlighted() != NoSelection {
		t.Fatal("navigate applied on the same frame as toggle")
	}

	m.Update(0)
	if m.Highlighted() != 0 {
		t.Errorf("after second Update highlight = %d, want 0", m.Highlighted())
	}
}

func TestInjectFullInteraction(t *testing.T) {
	exec := newCaptureExecutor()
	cfg := baseConfig()
	cfg.Executor = exec
	m := newTestMenu(t, cfg)

	m.InjectToggle()
	m.InjectPointerMove(240, 240) // slice 1: browser
	m.InjectConfirm()

	for i := 0; i < 3; i++ {
		m.Update(0)
	}

	if cmd := exec.wait(t); cmd != "run:browser" {
		t.Errorf("executed %q, want run:browser", cmd)
	}
	if m.State() != StateClosed {
		t.Errorf("state = %v, want Closed", m.State())
	}
}

func TestInjectCancelAfterClose(t *testing.T) {
	m := newTestMenu(t, baseConfig())

	m.InjectToggle()
	m.InjectClick(240, 160) // slice 0: closes the menu (no executor wired)
	m.InjectCancel()        // arrives after the menu already closed: no-op

	for i := 0; i < 3; i++ {
		m.Update(0)
	}

	if m.State() != StateClosed {
		t.Errorf("state = %v, want Closed", m.State())
	}
}

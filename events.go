package pinwheel

// --- Handler registry ---

type openHandler struct {
	id uint32
	fn func()
}

type highlightHandler struct {
	id uint32
	fn func(index int)
}

type confirmHandler struct {
	id uint32
	fn func(index int, item Item)
}

type dismissHandler struct {
	id uint32
	fn func()
}

type handlerRegistry struct {
	open      []openHandler
	highlight []highlightHandler
	confirm   []confirmHandler
	dismiss   []dismissHandler
	nextID    uint32
}

// CallbackHandle allows removing a registered menu callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
// The entry is removed from the slice to avoid nil iteration waste.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventOpen:
		h.reg.open = removeOpenHandler(h.reg.open, h.id)
	case EventHighlight:
		h.reg.highlight = removeHighlightHandler(h.reg.highlight, h.id)
	case EventConfirm:
		h.reg.confirm = removeConfirmHandler(h.reg.confirm, h.id)
	case EventDismiss:
		h.reg.dismiss = removeDismissHandler(h.reg.dismiss, h.id)
	}
}

func removeOpenHandler(s []openHandler, id uint32) []openHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = openHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func removeHighlightHandler(s []highlightHandler, id uint32) []highlightHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = highlightHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func removeConfirmHandler(s []confirmHandler, id uint32) []confirmHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = confirmHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func removeDismissHandler(s []dismissHandler, id uint32) []dismissHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = dismissHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

// --- Registration ---

// OnOpen registers a callback fired when the menu opens.
func (m *Menu) OnOpen(fn func()) CallbackHandle {
	m.handlers.nextID++
	id := m.handlers.nextID
	m.handlers.open = append(m.handlers.open, openHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &m.handlers, event: EventOpen}
}

// OnHighlight registers a callback fired whenever the highlighted slice
// changes, including changes to NoSelection.
func (m *Menu) OnHighlight(fn func(index int)) CallbackHandle {
	m.handlers.nextID++
	id := m.handlers.nextID
	m.handlers.highlight = append(m.handlers.highlight, highlightHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &m.handlers, event: EventHighlight}
}

// OnConfirm registers a callback fired when an item is confirmed, before
// action dispatch.
func (m *Menu) OnConfirm(fn func(index int, item Item)) CallbackHandle {
	m.handlers.nextID++
	id := m.handlers.nextID
	m.handlers.confirm = append(m.handlers.confirm, confirmHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &m.handlers, event: EventConfirm}
}

// OnDismiss registers a callback fired when the menu is dismissed without a
// selection.
func (m *Menu) OnDismiss(fn func()) CallbackHandle {
	m.handlers.nextID++
	id := m.handlers.nextID
	m.handlers.dismiss = append(m.handlers.dismiss, dismissHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &m.handlers, event: EventDismiss}
}

// --- Dispatch ---

func (m *Menu) fireOpen() {
	for _, h := range m.handlers.open {
		h.fn()
	}
}

func (m *Menu) fireHighlight(index int) {
	for _, h := range m.handlers.highlight {
		h.fn(index)
	}
}

func (m *Menu) fireConfirm(index int, item Item) {
	for _, h := range m.handlers.confirm {
		h.fn(index, item)
	}
}

func (m *Menu) fireDismiss() {
	for _, h := range m.handlers.dismiss {
		h.fn()
	}
}

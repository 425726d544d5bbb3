package vdom

// event creates an EventHandler with the given name and handler.
// The name is prefixed with "on" (e.g., "click" becomes "onclick").
func event(name string, handler any) EventHandler {
	return EventHandler{Event: "on" + name, Handler: handler}
}

// On attaches a handler for an arbitrary event type.
func On(name string, handler any) EventHandler { return event(name, handler) }

func OnClick(handler any) EventHandler   { return event("click", handler) }
func OnInput(handler any) EventHandler   { return event("input", handler) }
func OnChange(handler any) EventHandler  { return event("change", handler) }
func OnSubmit(handler any) EventHandler  { return event("submit", handler) }
func OnKeyDown(handler any) EventHandler { return event("keydown", handler) }
func OnFocus(handler any) EventHandler   { return event("focus", handler) }
func OnBlur(handler any) EventHandler    { return event("blur", handler) }

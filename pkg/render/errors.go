package render

import (
	"errors"
	"fmt"
)

// ErrRenderLoop is returned when re-renders nest deeper than the root's
// limit, typically an effect that sets state on every run.
var ErrRenderLoop = errors.New("render: too many nested renders")

// ErrUnmounted is returned by Render on a root that has been unmounted.
var ErrUnmounted = errors.New("render: root unmounted")

// Phase names the part of a cycle an error came from.
type Phase string

const (
	PhaseRender Phase = "render"
	PhaseEffect Phase = "effect"
)

// RenderError wraps a panic raised by a render function or an effect.
type RenderError struct {
	Component string
	Phase     Phase
	Panic     any
	Stack     []byte
}

// Error returns the error message.
func (e *RenderError) Error() string {
	name := e.Component
	if name == "" {
		name = "root"
	}
	return fmt.Sprintf("render: panic during %s in %s: %v", e.Phase, name, e.Panic)
}

// Unwrap returns the panic value when it is an error.
func (e *RenderError) Unwrap() error {
	err, _ := e.Panic.(error)
	return err
}

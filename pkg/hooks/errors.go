package hooks

import "errors"

// ErrHookOrder reports a hook call that does not match the slot recorded
// for its position on an earlier render.
var ErrHookOrder = errors.New("hooks: hook order changed between renders")

// ErrSetDuringRender is reported when a state setter is called while the
// tree is being materialized. The value is committed but no re-render is
// triggered.
var ErrSetDuringRender = errors.New("hooks: state set during render")

// ErrDisposed is reported when a setter is called after the store has been
// disposed.
var ErrDisposed = errors.New("hooks: store disposed")

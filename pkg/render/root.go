package render

import (
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/samplecafe/cafe/pkg/dom"
	"github.com/samplecafe/cafe/pkg/hooks"
	"github.com/samplecafe/cafe/pkg/vdom"
)

// DefaultMaxNestedRenders bounds re-renders triggered from inside a cycle.
const DefaultMaxNestedRenders = 50

// Options configures a Root.
type Options struct {
	// OnError receives errors from re-renders triggered by state setters
	// and hook misuse reported by the store. Defaults to logging.
	OnError func(error)

	// MaxNestedRenders limits how deeply cycles may nest when effects set
	// state. Defaults to DefaultMaxNestedRenders.
	MaxNestedRenders int

	// Observer is notified around every cycle.
	Observer Observer

	// Logger defaults to slog.Default with component=render.
	Logger *slog.Logger

	// StrictHooks enables hook order validation.
	StrictHooks bool
}

// Option configures a Root.
type Option func(*Options)

// WithErrorHandler sets Options.OnError.
func WithErrorHandler(fn func(error)) Option {
	return func(o *Options) { o.OnError = fn }
}

// WithMaxNestedRenders sets Options.MaxNestedRenders.
func WithMaxNestedRenders(n int) Option {
	return func(o *Options) { o.MaxNestedRenders = n }
}

// WithObserver sets Options.Observer.
func WithObserver(obs Observer) Option {
	return func(o *Options) { o.Observer = obs }
}

// WithLogger sets Options.Logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithStrictHooks sets Options.StrictHooks.
func WithStrictHooks() Option {
	return func(o *Options) { o.StrictHooks = true }
}

// Root binds a top-level element to a container node.
type Root struct {
	container *dom.Node
	store     *hooks.Store
	top       *vdom.VNode
	opts      Options
	logger    *slog.Logger

	depth     int
	cycles    uint64
	unmounted bool
}

// CreateRoot creates a root that renders into container.
func CreateRoot(container *dom.Node, opts ...Option) *Root {
	r := &Root{container: container}
	for _, opt := range opts {
		opt(&r.opts)
	}
	if r.opts.MaxNestedRenders <= 0 {
		r.opts.MaxNestedRenders = DefaultMaxNestedRenders
	}
	r.logger = r.opts.Logger
	if r.logger == nil {
		r.logger = slog.Default().With("component", "render")
	}
	if r.opts.OnError == nil {
		r.opts.OnError = func(err error) {
			r.logger.Error("render failed", "error", err)
		}
	}

	storeOpts := []hooks.Option{
		hooks.WithRerender(r.rerender),
		hooks.WithErrorHandler(r.opts.OnError),
	}
	if r.opts.StrictHooks {
		storeOpts = append(storeOpts, hooks.StrictOrder())
	}
	r.store = hooks.NewStore(storeOpts...)
	return r
}

// Container returns the node the root renders into.
func (r *Root) Container() *dom.Node {
	return r.container
}

// Store returns the root's hook store.
func (r *Root) Store() *hooks.Store {
	return r.store
}

// Cycles returns the number of completed or attempted render cycles.
func (r *Root) Cycles() uint64 {
	return r.cycles
}

// Render makes top the root's element and runs one cycle: materialize,
// replace the container's children, then flush effects. Hook state is kept
// when Render is called again with a new element.
func (r *Root) Render(top *vdom.VNode) error {
	if r.unmounted {
		return ErrUnmounted
	}
	r.top = top
	return r.cycle()
}

// Rerender runs a cycle for the current element.
func (r *Root) Rerender() error {
	if r.unmounted {
		return ErrUnmounted
	}
	return r.cycle()
}

// Unmount runs every outstanding effect cleanup and empties the container.
// Setters called afterwards are reported as hooks.ErrDisposed.
func (r *Root) Unmount() {
	if r.unmounted {
		return
	}
	r.unmounted = true
	r.top = nil
	r.store.Dispose()
	r.container.ReplaceChildren()
}

// rerender is the store's trigger for state changes.
func (r *Root) rerender() {
	if r.unmounted || r.top == nil {
		return
	}
	if err := r.cycle(); err != nil {
		r.opts.OnError(err)
	}
}

func (r *Root) cycle() (err error) {
	if r.depth >= r.opts.MaxNestedRenders {
		return fmt.Errorf("%w: limit %d", ErrRenderLoop, r.opts.MaxNestedRenders)
	}
	nested := r.depth
	r.depth++
	defer func() { r.depth-- }()
	r.cycles++

	info := CycleInfo{Nested: nested}
	var done func(CycleInfo)
	if r.opts.Observer != nil {
		done = r.opts.Observer.BeginCycle(nested)
	}
	start := time.Now()
	defer func() {
		info.Duration = time.Since(start)
		info.Err = err
		if done != nil {
			done(info)
		}
	}()

	c := r.store.Begin()
	m := &materializer{cycle: c}
	tree, err := m.run(r.top)
	info.Nodes = m.nodes
	if endErr := c.End(); err == nil {
		err = endErr
	}
	if err != nil {
		return err
	}

	if err := r.container.ReplaceChildren(tree); err != nil {
		return fmt.Errorf("render: attach: %w", err)
	}

	info.Effects, err = flush(c)
	return err
}

func flush(c *hooks.Cycle) (ran int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &RenderError{
				Phase: PhaseEffect,
				Panic: r,
				Stack: debug.Stack(),
			}
		}
	}()
	return c.Flush(), nil
}

// RenderToString mounts top in a detached container, renders one cycle,
// serializes the container's content and unmounts.
func RenderToString(top *vdom.VNode, opts ...Option) (string, error) {
	container := dom.MustElement("div")
	root := CreateRoot(container, opts...)
	defer root.Unmount()

	if err := root.Render(top); err != nil {
		return "", err
	}
	return container.InnerHTML(), nil
}

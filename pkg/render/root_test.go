package render

import (
	"bytes"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/samplecafe/cafe/pkg/dom"
	"github.com/samplecafe/cafe/pkg/hooks"
	"github.com/samplecafe/cafe/pkg/vdom"
)

type shape struct {
	Type     dom.NodeType
	Tag      string
	Data     string
	Attrs    []dom.Attr
	Children []shape
}

func shapeOf(n *dom.Node) shape {
	s := shape{Type: n.Type, Tag: n.Tag, Data: n.Data, Attrs: n.Attributes()}
	for _, c := range n.Children() {
		s.Children = append(s.Children, shapeOf(c))
	}
	return s
}

func newRoot(t *testing.T, opts ...Option) (*Root, *[]error) {
	t.Helper()
	var errs []error
	opts = append([]Option{WithErrorHandler(func(err error) { errs = append(errs, err) })}, opts...)
	return CreateRoot(dom.MustElement("div"), opts...), &errs
}

func TestRootStateScenario(t *testing.T) {
	root, errs := newRoot(t)

	var setCount hooks.Setter[int]
	effectRuns := 0
	counter := func(c *hooks.Cycle, props vdom.Props) *vdom.VNode {
		count, set := hooks.UseState(c, 0)
		setCount = set
		hooks.UseEffect(c, func() hooks.Cleanup {
			effectRuns++
			return nil
		}, hooks.Deps{count})
		return vdom.Span(count)
	}

	if err := root.Render(vdom.Component(counter, nil)); err != nil {
		t.Fatal(err)
	}
	if effectRuns != 1 || root.Container().TextContent() != "0" {
		t.Fatalf("initial: runs=%d text=%q", effectRuns, root.Container().TextContent())
	}

	setCount.Set(5)

	if got := root.Container().TextContent(); got != "5" {
		t.Errorf("text = %q, want 5", got)
	}
	if effectRuns != 2 {
		t.Errorf("effect ran %d times after set, want exactly once more", effectRuns-1)
	}

	// same value: no cycle
	before := root.Cycles()
	setCount.Set(5)
	if root.Cycles() != before {
		t.Error("setting an equal value re-rendered")
	}
	if len(*errs) != 0 {
		t.Errorf("unexpected errors: %v", *errs)
	}
}

func TestRootEffectCleanupBeforeNextRun(t *testing.T) {
	root, _ := newRoot(t)
	var log []string

	view := func(x int) *vdom.VNode {
		return vdom.Component(func(c *hooks.Cycle, props vdom.Props) *vdom.VNode {
			hooks.UseEffect(c, func() hooks.Cleanup {
				log = append(log, "run", props.String("x"))
				return func() { log = append(log, "cleanup", props.String("x")) }
			}, hooks.Deps{x})
			return nil
		}, vdom.Props{"x": strconv.Itoa(x)})
	}

	root.Render(view(1))
	root.Render(view(2))
	root.Unmount()

	want := []string{"run", "1", "cleanup", "1", "run", "2", "cleanup", "2"}
	if diff := cmp.Diff(want, log); diff != "" {
		t.Errorf("log (-want +got):\n%s", diff)
	}
}

func TestRootIdempotentRerender(t *testing.T) {
	root, _ := newRoot(t)
	page := func(c *hooks.Cycle, props vdom.Props) *vdom.VNode {
		open, _ := hooks.UseState(c, false)
		items := hooks.UseMemo(c, func() []string { return []string{"Espresso", "Latte"} }, hooks.Deps{})
		return vdom.Div(
			vdom.Class("menu"),
			vdom.Props{"aria-expanded": open, "style": vdom.Styles{"marginTop": "1rem"}},
			vdom.Ul(vdom.Range(items, func(s string, i int) *vdom.VNode { return vdom.Li(vdom.Key(i), s) })),
			vdom.Button(vdom.OnClick(func() {}), "Toggle"),
		)
	}

	if err := root.Render(vdom.Component(page, nil)); err != nil {
		t.Fatal(err)
	}
	first := shapeOf(root.Container())
	if err := root.Rerender(); err != nil {
		t.Fatal(err)
	}
	second := shapeOf(root.Container())

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("re-render changed the tree (-first +second):\n%s", diff)
	}
}

func TestRootEffectsSeeAttachedTree(t *testing.T) {
	root, _ := newRoot(t)
	var seen string
	app := func(c *hooks.Cycle, props vdom.Props) *vdom.VNode {
		hooks.UseEffect(c, func() hooks.Cleanup {
			seen = root.Container().TextContent()
			return nil
		}, nil)
		return vdom.P("ready")
	}
	root.Render(vdom.Component(app, nil))
	if seen != "ready" {
		t.Errorf("effect saw %q, want attached content", seen)
	}
}

func TestRootEventTriggersRerender(t *testing.T) {
	root, _ := newRoot(t)
	toggle := func(c *hooks.Cycle, props vdom.Props) *vdom.VNode {
		open, setOpen := hooks.UseState(c, false)
		label := "closed"
		if open {
			label = "open"
		}
		return vdom.Button(vdom.OnClick(func() { setOpen.Update(func(v bool) bool { return !v }) }), label)
	}
	root.Render(vdom.Component(toggle, nil))

	btn := root.Container().FirstChild()
	btn.Dispatch(dom.NewEvent("click"))

	if got := root.Container().TextContent(); got != "open" {
		t.Errorf("text = %q, want open", got)
	}
	// the old button is detached; the new one carries a fresh listener
	if btn.Parent() != nil {
		t.Error("previous tree still attached")
	}
	root.Container().FirstChild().Dispatch(dom.NewEvent("click"))
	if got := root.Container().TextContent(); got != "closed" {
		t.Errorf("text = %q, want closed", got)
	}
}

func TestRootRenderErrorKeepsPreviousTree(t *testing.T) {
	root, _ := newRoot(t)
	root.Render(vdom.P("stable"))

	err := root.Render(vdom.Component(explode, nil))
	var re *RenderError
	if !errors.As(err, &re) {
		t.Fatalf("err = %v, want *RenderError", err)
	}
	if got := root.Container().TextContent(); got != "stable" {
		t.Errorf("container = %q, want previous content", got)
	}
}

func TestRootEffectPanic(t *testing.T) {
	root, _ := newRoot(t)
	app := func(c *hooks.Cycle, props vdom.Props) *vdom.VNode {
		hooks.UseEffect(c, func() hooks.Cleanup { panic("effect failed") }, hooks.Deps{})
		return nil
	}
	err := root.Render(vdom.Component(app, nil))
	var re *RenderError
	if !errors.As(err, &re) || re.Phase != PhaseEffect {
		t.Errorf("err = %v, want effect RenderError", err)
	}
}

func TestRootRenderLoop(t *testing.T) {
	root, errs := newRoot(t, WithMaxNestedRenders(5))
	app := func(c *hooks.Cycle, props vdom.Props) *vdom.VNode {
		n, set := hooks.UseState(c, 0)
		hooks.UseEffect(c, func() hooks.Cleanup {
			set.Set(n + 1)
			return nil
		}, nil)
		return vdom.Span(n)
	}

	if err := root.Render(vdom.Component(app, nil)); err != nil {
		t.Fatalf("Render() = %v", err)
	}
	if len(*errs) != 1 || !errors.Is((*errs)[0], ErrRenderLoop) {
		t.Fatalf("errors = %v, want one ErrRenderLoop", *errs)
	}
	if root.Cycles() != 5 {
		t.Errorf("cycles = %d, want 5", root.Cycles())
	}
}

func TestRootSetDuringRenderReported(t *testing.T) {
	root, errs := newRoot(t)
	app := func(c *hooks.Cycle, props vdom.Props) *vdom.VNode {
		n, set := hooks.UseState(c, 0)
		set.Set(n + 1)
		return vdom.Span(n)
	}
	root.Render(vdom.Component(app, nil))
	if len(*errs) != 1 || !errors.Is((*errs)[0], hooks.ErrSetDuringRender) {
		t.Errorf("errors = %v", *errs)
	}
	if root.Cycles() != 1 {
		t.Errorf("cycles = %d, want 1", root.Cycles())
	}
}

func TestRootUnmount(t *testing.T) {
	root, errs := newRoot(t)
	cleaned := false
	var set hooks.Setter[int]
	app := func(c *hooks.Cycle, props vdom.Props) *vdom.VNode {
		_, set = hooks.UseState(c, 0)
		hooks.UseEffect(c, func() hooks.Cleanup {
			return func() { cleaned = true }
		}, hooks.Deps{})
		return vdom.P("x")
	}
	root.Render(vdom.Component(app, nil))
	root.Unmount()

	if !cleaned {
		t.Error("cleanup did not run")
	}
	if len(root.Container().Children()) != 0 {
		t.Error("container not emptied")
	}
	set.Set(1)
	if len(*errs) != 1 || !errors.Is((*errs)[0], hooks.ErrDisposed) {
		t.Errorf("errors = %v, want ErrDisposed", *errs)
	}
	if err := root.Render(vdom.P("y")); !errors.Is(err, ErrUnmounted) {
		t.Errorf("Render after Unmount = %v", err)
	}
}

func TestRootStrictHooks(t *testing.T) {
	root, _ := newRoot(t, WithStrictHooks())
	var flip hooks.Setter[bool]
	app := func(c *hooks.Cycle, props vdom.Props) *vdom.VNode {
		on, set := hooks.UseState(c, false)
		flip = set
		if !on {
			hooks.UseRef(c, 0)
		}
		return nil
	}
	root.Render(vdom.Component(app, nil))
	flip.Set(true)

	if err := root.Rerender(); !errors.Is(err, hooks.ErrHookOrder) {
		t.Errorf("Rerender() = %v, want ErrHookOrder", err)
	}
}

func TestObserver(t *testing.T) {
	var infos []CycleInfo
	var order []string
	obs := Observers(
		ObserverFunc(func(nested int) func(CycleInfo) {
			order = append(order, "a-begin")
			return func(info CycleInfo) {
				order = append(order, "a-end")
				infos = append(infos, info)
			}
		}),
		nil,
		ObserverFunc(func(nested int) func(CycleInfo) {
			order = append(order, "b-begin")
			return func(CycleInfo) { order = append(order, "b-end") }
		}),
	)
	root, _ := newRoot(t, WithObserver(obs))
	app := func(c *hooks.Cycle, props vdom.Props) *vdom.VNode {
		hooks.UseEffect(c, func() hooks.Cleanup { return nil }, hooks.Deps{})
		return vdom.Div(vdom.P("a"), "b")
	}
	root.Render(vdom.Component(app, nil))

	if strings.Join(order, ",") != "a-begin,b-begin,b-end,a-end" {
		t.Errorf("order = %v", order)
	}
	if len(infos) != 1 {
		t.Fatalf("infos = %d", len(infos))
	}
	if infos[0].Nodes != 4 || infos[0].Effects != 1 || infos[0].Err != nil {
		t.Errorf("info = %+v, want 4 nodes and 1 effect", infos[0])
	}
}

func TestLogObserver(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	root, _ := newRoot(t, WithObserver(LogObserver(logger)))

	if err := root.Render(vdom.Div(vdom.P("a"))); err != nil {
		t.Fatal(err)
	}
	if out := buf.String(); !strings.Contains(out, `level=DEBUG msg="render cycle"`) || !strings.Contains(out, "nodes=3") {
		t.Errorf("success log = %s", out)
	}

	buf.Reset()
	root.Render(vdom.Component(explode, nil))
	if out := buf.String(); !strings.Contains(out, `level=WARN msg="render cycle failed"`) {
		t.Errorf("failure log = %s", out)
	}
}

func TestRenderToString(t *testing.T) {
	html, err := RenderToString(vdom.CreateElement(vdom.Tag("div"), vdom.Props{"className": "x"}, "hello"))
	if err != nil {
		t.Fatal(err)
	}
	if html != `<div class="x">hello</div>` {
		t.Errorf("html = %s", html)
	}
}

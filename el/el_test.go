package el

import (
	"reflect"
	"testing"

	"github.com/samplecafe/cafe/pkg/dom"
	"github.com/samplecafe/cafe/pkg/vdom"
)

func TestElementConstructorsMatchVDOM(t *testing.T) {
	args := []any{
		vdom.ID("root"),
		vdom.Class("one", "two"),
		vdom.Hidden(),
		"hello",
		vdom.Span("child"),
	}

	got := Div(args...)
	want := vdom.Div(args...)

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Div() mismatch:\n got: %#v\nwant: %#v", got, want)
	}
}

func TestCoreSurface(t *testing.T) {
	var renders int
	var setter Setter[string]
	greeting := func(c *Cycle, props Props) *VNode {
		renders++
		name, set := UseState(c, "guest")
		setter = set
		upper := UseMemo(c, func() string { return "Hello, " + name }, Deps{name})
		ref := UseRef(c, 0)
		ref.Set(ref.Current() + 1)
		UseEffect(c, func() Cleanup { return nil }, Deps{})
		return CreateElement(Tag("p"), Props{"className": "greet"}, upper)
	}

	container := dom.MustElement("main")
	root := CreateRoot(container)
	if err := root.Render(Component(greeting, nil)); err != nil {
		t.Fatal(err)
	}
	setter.Set("Mika")

	if got := container.InnerHTML(); got != `<p class="greet">Hello, Mika</p>` {
		t.Errorf("InnerHTML() = %s", got)
	}
	if renders != 2 {
		t.Errorf("renders = %d, want 2", renders)
	}
}

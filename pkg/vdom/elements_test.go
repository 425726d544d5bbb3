package vdom

import (
	"testing"
)

func TestElementDSL(t *testing.T) {
	t.Run("basic element", func(t *testing.T) {
		node := Div()
		if node.Kind != KindElement || node.Tag != "div" {
			t.Errorf("got %v %q, want Element div", node.Kind, node.Tag)
		}
	})

	t.Run("attributes", func(t *testing.T) {
		node := Div(Class("card"), ID("main"), nil)
		if node.Props["class"] != "card" {
			t.Errorf("class = %v, want card", node.Props["class"])
		}
		if node.Props["id"] != "main" {
			t.Errorf("id = %v, want main", node.Props["id"])
		}
	})

	t.Run("repeated class accumulates", func(t *testing.T) {
		node := Div(Class("a"), ClassIf(true, "b"), ClassIf(false, "c"))
		if node.Props["class"] != "a b" {
			t.Errorf("class = %v, want %q", node.Props["class"], "a b")
		}
	})

	t.Run("attr slice and props", func(t *testing.T) {
		node := A([]Attr{Href("/"), Target("_blank")}, Props{"rel": "noopener"})
		for k, want := range map[string]string{"href": "/", "target": "_blank", "rel": "noopener"} {
			if node.Props[k] != want {
				t.Errorf("%s = %v, want %s", k, node.Props[k], want)
			}
		}
	})

	t.Run("event handler", func(t *testing.T) {
		node := Button(OnClick(func() {}), "Go")
		if node.Props["onclick"] == nil {
			t.Error("onclick not set")
		}
		if len(node.Children) != 1 || node.Children[0].Text != "Go" {
			t.Errorf("children = %+v", node.Children)
		}
	})

	t.Run("nested children", func(t *testing.T) {
		node := Ul(Range([]string{"x", "y"}, func(s string, i int) *VNode {
			return Li(Key(i), s)
		}))
		if len(node.Children) != 2 {
			t.Fatalf("Children len = %d, want 2", len(node.Children))
		}
		if node.Children[1].Key != "1" {
			t.Errorf("Key = %q, want 1", node.Children[1].Key)
		}
	})

	t.Run("custom element", func(t *testing.T) {
		if CustomElement("cafe-map").Tag != "cafe-map" {
			t.Error("custom tag not kept")
		}
	})
}

func TestClasses(t *testing.T) {
	a := Classes("base", []string{"", "x"}, map[string]bool{"open": true, "closed": false, "b": true})
	if a.Value != "base x b open" {
		t.Errorf("Classes() = %q", a.Value)
	}
}

func TestHelpers(t *testing.T) {
	if If(false, Div()) != nil || If(true, Div()) == nil {
		t.Error("If")
	}
	if Unless(true, Div()) != nil {
		t.Error("Unless")
	}
	if IfElse(false, Div(), Span()).Tag != "span" {
		t.Error("IfElse")
	}
	called := false
	When(false, func() *VNode { called = true; return nil })
	if called {
		t.Error("When evaluated a false branch")
	}
	if Either(nil, P()).Tag != "p" {
		t.Error("Either")
	}
	if Nothing() != nil {
		t.Error("Nothing")
	}
	if Textf("%d items", 3).Text != "3 items" {
		t.Error("Textf")
	}
	if Raw("<b>").Kind != KindRaw || Empty().Kind != KindEmpty {
		t.Error("Raw/Empty kinds")
	}
	frag := Fragment("a", nil, Text("b"))
	if frag.Kind != KindFragment || len(frag.Children) != 2 {
		t.Errorf("Fragment = %+v", frag)
	}
}

func TestAriaBooleans(t *testing.T) {
	if AriaExpanded(true).Value != "true" || AriaHidden(false).Value != "false" {
		t.Error("aria booleans should be the strings true/false")
	}
}

package live

import (
	"sort"

	"github.com/samplecafe/cafe/pkg/dom"
)

// Message is an event sent by the client.
type Message struct {
	Path   []int             `json:"path"`
	Type   string            `json:"type"`
	Value  string            `json:"value,omitempty"`
	Fields map[string]string `json:"fields,omitempty"`
}

// Reply is sent after mounting and after any event that changed the page.
type Reply struct {
	HTML      string    `json:"html,omitempty"`
	Title     string    `json:"title,omitempty"`
	Listeners []Binding `json:"listeners,omitempty"`
	Error     string    `json:"error,omitempty"`
}

// Binding lists the event types an element listens for.
type Binding struct {
	Path  []int    `json:"path"`
	Types []string `json:"types"`
}

// ForwardedTypes are the event types the client forwards. Other types are
// dropped by the server and counted as "other".
var ForwardedTypes = map[string]bool{
	"click":  true,
	"input":  true,
	"change": true,
	"submit": true,
}

// Bindings returns the listening elements under container in document
// order. The container itself is not included.
func Bindings(container *dom.Node) []Binding {
	var out []Binding
	container.Walk(func(n *dom.Node) bool {
		if n == container || n.Type != dom.ElementNode {
			return true
		}
		var types []string
		for _, t := range n.EventTypes() {
			if ForwardedTypes[t] {
				types = append(types, t)
			}
		}
		if len(types) == 0 {
			return true
		}
		sort.Strings(types)
		if path, ok := dom.ElementPath(container, n); ok {
			out = append(out, Binding{Path: path, Types: types})
		}
		return true
	})
	return out
}

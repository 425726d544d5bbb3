package live_test

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	. "github.com/samplecafe/cafe/el"
	"github.com/samplecafe/cafe/pkg/dom"
	"github.com/samplecafe/cafe/pkg/live"
	"github.com/samplecafe/cafe/pkg/middleware"
	"github.com/samplecafe/cafe/pkg/render"
)

func counter(c *Cycle, props Props) *VNode {
	n, setN := UseState(c, 0)
	name, setName := UseState(c, "")
	return Div(
		Button(OnClick(func() { setN.Update(func(p int) int { return p + 1 }) }), Textf("count %d", n)),
		Input(Name("name"), OnInput(func(v string) { setName.Set(v) })),
		P(Textf("hello %s", name)),
	)
}

func mountCounter(r *http.Request, setTitle func(string)) (*VNode, error) {
	setTitle("Counter " + r.URL.Query().Get("path"))
	return Component(counter, nil), nil
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func dial(t *testing.T, h http.Handler, query string) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/?" + query
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func read(t *testing.T, conn *websocket.Conn) live.Reply {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var reply live.Reply
	if err := conn.ReadJSON(&reply); err != nil {
		t.Fatalf("read reply: %v", err)
	}
	return reply
}

func send(t *testing.T, conn *websocket.Conn, msg live.Message) {
	t.Helper()
	if err := conn.WriteJSON(msg); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestSessionRoundTrip(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := middleware.NewMetrics(middleware.WithRegistry(reg))
	conn := dial(t, live.NewHandler(mountCounter, live.Config{}, discard(), metrics), "path=/menu")

	first := read(t, conn)
	if !strings.Contains(first.HTML, "count 0") {
		t.Fatalf("initial html = %q", first.HTML)
	}
	if first.Title != "Counter /menu" {
		t.Errorf("title = %q", first.Title)
	}
	wantBindings := []live.Binding{
		{Path: []int{0, 0}, Types: []string{"click"}},
		{Path: []int{0, 1}, Types: []string{"input"}},
	}
	if diff := cmp.Diff(wantBindings, first.Listeners); diff != "" {
		t.Errorf("listeners (-want +got):\n%s", diff)
	}

	send(t, conn, live.Message{Path: []int{0, 0}, Type: "click"})
	if got := read(t, conn); !strings.Contains(got.HTML, "count 1") {
		t.Errorf("after click html = %q", got.HTML)
	}

	send(t, conn, live.Message{Path: []int{0, 1}, Type: "input", Value: "Ann"})
	if got := read(t, conn); !strings.Contains(got.HTML, "hello Ann") {
		t.Errorf("after input html = %q", got.HTML)
	}

	// Neither of these produces a reply; the click after them does.
	send(t, conn, live.Message{Path: []int{0, 2}, Type: "click"})
	send(t, conn, live.Message{Path: []int{0, 0}, Type: "keydown"})
	send(t, conn, live.Message{Path: []int{0, 0}, Type: "click"})
	if got := read(t, conn); !strings.Contains(got.HTML, "count 2") {
		t.Errorf("after second click html = %q", got.HTML)
	}

	n, err := testutil.GatherAndCount(reg, "cafe_live_events_total")
	if err != nil {
		t.Fatal(err)
	}
	// click, input, other
	if n != 3 {
		t.Errorf("live event series = %d, want 3", n)
	}
}

func TestSessionStalePath(t *testing.T) {
	conn := dial(t, live.NewHandler(mountCounter, live.Config{}, discard(), nil), "path=/")
	read(t, conn)

	send(t, conn, live.Message{Path: []int{0, 9}, Type: "click"})
	got := read(t, conn)
	if got.Error != live.ErrStalePath.Error() {
		t.Errorf("error = %q, want %q", got.Error, live.ErrStalePath.Error())
	}
	if !strings.Contains(got.HTML, "count 0") {
		t.Errorf("resync html = %q", got.HTML)
	}
}

func TestSessionInvalidMessage(t *testing.T) {
	conn := dial(t, live.NewHandler(mountCounter, live.Config{}, discard(), nil), "path=/")
	read(t, conn)

	if err := conn.WriteMessage(websocket.TextMessage, []byte("{")); err != nil {
		t.Fatal(err)
	}
	if got := read(t, conn); got.Error != "invalid message" {
		t.Errorf("error = %q", got.Error)
	}
}

func TestSessionMountError(t *testing.T) {
	mount := func(*http.Request, func(string)) (*VNode, error) {
		return nil, errors.New("no such page")
	}
	conn := dial(t, live.NewHandler(mount, live.Config{}, discard(), nil), "path=/x")
	if got := read(t, conn); got.Error != "no such page" {
		t.Errorf("error = %q", got.Error)
	}
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, _, err := conn.ReadMessage()
	if !websocket.IsCloseError(err, websocket.CloseInternalServerErr) {
		t.Errorf("read after mount error = %v, want close 1011", err)
	}
}

func TestSessionObservers(t *testing.T) {
	cycles := make(chan render.CycleInfo, 8)
	obs := render.ObserverFunc(func(int) func(render.CycleInfo) {
		return func(info render.CycleInfo) { cycles <- info }
	})
	config := live.Config{
		RequestObservers: func(*http.Request) []render.Observer { return []render.Observer{obs} },
	}
	conn := dial(t, live.NewHandler(mountCounter, config, discard(), nil), "path=/")
	read(t, conn)

	select {
	case info := <-cycles:
		if info.Err != nil || info.Nodes == 0 {
			t.Errorf("first cycle = %+v", info)
		}
	default:
		t.Error("observer not called for the mount render")
	}
}

func TestSameOriginCheck(t *testing.T) {
	tests := []struct {
		name   string
		origin string
		want   bool
	}{
		{"no origin", "", true},
		{"same host", "http://cafe.example:8080", true},
		{"other host", "http://evil.example", false},
		{"other port", "http://cafe.example:9090", false},
		{"garbage", "://", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "http://cafe.example:8080/live", nil)
			if tt.origin != "" {
				r.Header.Set("Origin", tt.origin)
			}
			if got := live.SameOriginCheck(r); got != tt.want {
				t.Errorf("SameOriginCheck(%q) = %v, want %v", tt.origin, got, tt.want)
			}
		})
	}
}

func TestCrossOriginRejected(t *testing.T) {
	srv := httptest.NewServer(live.NewHandler(mountCounter, live.Config{}, discard(), nil))
	defer srv.Close()

	header := http.Header{"Origin": []string{"http://evil.example"}}
	_, resp, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), header)
	if err == nil {
		t.Fatal("dial succeeded from another origin")
	}
	if resp == nil || resp.StatusCode != http.StatusForbidden {
		t.Errorf("response = %v, want 403", resp)
	}
}

func TestBindingsSkipsUnforwardedTypes(t *testing.T) {
	container := dom.MustElement("div")
	outer := dom.MustElement("form")
	outer.AddEventListener("submit", func(*dom.Event) {})
	outer.AddEventListener("keydown", func(*dom.Event) {})
	inner := dom.MustElement("span")
	inner.AddEventListener("mouseover", func(*dom.Event) {})
	outer.AppendChild(inner)
	container.AppendChild(outer)
	container.AddEventListener("click", func(*dom.Event) {})

	want := []live.Binding{{Path: []int{0}, Types: []string{"submit"}}}
	if diff := cmp.Diff(want, live.Bindings(container)); diff != "" {
		t.Errorf("Bindings (-want +got):\n%s", diff)
	}
}

func TestClientScript(t *testing.T) {
	rec := httptest.NewRecorder()
	live.ClientScript().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, live.ClientScriptPath, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/javascript") {
		t.Errorf("content type = %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "new WebSocket") {
		t.Error("script body missing websocket client")
	}
}

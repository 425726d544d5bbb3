package live

import (
	"bytes"
	_ "embed"
	"net/http"
	"time"
)

//go:embed client.js
var clientJS []byte

// ClientScriptPath is where the server mounts ClientScript.
const ClientScriptPath = "/static/live.js"

// ClientScript serves the browser half of the protocol. The script reads
// data-root and data-endpoint from its own tag.
func ClientScript() http.Handler {
	modified := time.Now()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
		w.Header().Set("Cache-Control", "public, max-age=3600")
		http.ServeContent(w, r, "live.js", modified, bytes.NewReader(clientJS))
	})
}

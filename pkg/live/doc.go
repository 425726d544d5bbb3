// Package live keeps a server-side render root per browser tab and drives
// it from DOM events sent over a websocket.
//
// The page is first served as plain HTML. The client script then opens
// /live?path=<page path>. The server mounts the same page in a fresh
// render.Root and replies with its markup and the elements that have
// listeners. From then on the client forwards matching events:
//
//	{"path":[0,2,1],"type":"click","value":""}
//
// path is the element-child index path from the mount container (see
// dom.ElementPath). The session dispatches a dom.Event at that element.
// When the dispatch re-rendered the root or changed the document title,
// the reply carries the new state:
//
//	{"html":"...","title":"...","listeners":[{"path":[0,2],"types":["click"]}]}
//
// Each connection is served by the goroutine net/http runs the handler
// on. That goroutine is the only one that touches the root, so no locking
// is needed. A second goroutine only writes websocket pings.
package live

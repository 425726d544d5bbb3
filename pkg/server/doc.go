// Package server is the café's HTTP front: public pages rendered per
// request, the JSON API, the admin console, uploads, live sessions and
// the metrics endpoint, all on one chi router.
//
// # Public pages
//
// Every page request gets a fresh render.Root. The App element is rendered
// once, its effects run (which reports the document title), and the
// container is written inside pages.Document:
//
//	GET /gallery -> render App{path: "/gallery"} -> 200 text/html
//
// Paths that are not canonical are redirected first. Unknown paths render
// the not found page with status 404.
//
// # Admin console
//
// Admin pages need a session cookie from session.Manager. Requests without
// one are redirected to the login form. Every POST carries the session's
// CSRF token in the csrf_token field. Forms use post/redirect/get and
// report their outcome as a flash message on the next page.
package server

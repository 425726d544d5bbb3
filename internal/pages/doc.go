// Package pages holds the site's components.
//
// Every page is a RenderFunc fed through props; nothing here reads the
// content store directly. Site and the Admin* input types build the top
// element for a request, and Document wraps the rendered container in the
// HTML shell.
package pages

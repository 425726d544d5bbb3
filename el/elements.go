package el

import "github.com/samplecafe/cafe/pkg/vdom"

// Element constructors.

func Html(args ...any) *VNode                      { return vdom.Html(args...) }
func Head(args ...any) *VNode                      { return vdom.Head(args...) }
func Body(args ...any) *VNode                      { return vdom.Body(args...) }
func Title(args ...any) *VNode                     { return vdom.Title(args...) }
func Meta(args ...any) *VNode                      { return vdom.Meta(args...) }
func Link(args ...any) *VNode                      { return vdom.Link(args...) }
func Header(args ...any) *VNode                    { return vdom.Header(args...) }
func Footer(args ...any) *VNode                    { return vdom.Footer(args...) }
func Main(args ...any) *VNode                      { return vdom.Main(args...) }
func Nav(args ...any) *VNode                       { return vdom.Nav(args...) }
func Section(args ...any) *VNode                   { return vdom.Section(args...) }
func Article(args ...any) *VNode                   { return vdom.Article(args...) }
func Aside(args ...any) *VNode                     { return vdom.Aside(args...) }
func Address(args ...any) *VNode                   { return vdom.Address(args...) }
func H1(args ...any) *VNode                        { return vdom.H1(args...) }
func H2(args ...any) *VNode                        { return vdom.H2(args...) }
func H3(args ...any) *VNode                        { return vdom.H3(args...) }
func H4(args ...any) *VNode                        { return vdom.H4(args...) }
func Div(args ...any) *VNode                       { return vdom.Div(args...) }
func P(args ...any) *VNode                         { return vdom.P(args...) }
func Span(args ...any) *VNode                      { return vdom.Span(args...) }
func Pre(args ...any) *VNode                       { return vdom.Pre(args...) }
func Blockquote(args ...any) *VNode                { return vdom.Blockquote(args...) }
func Ul(args ...any) *VNode                        { return vdom.Ul(args...) }
func Ol(args ...any) *VNode                        { return vdom.Ol(args...) }
func Li(args ...any) *VNode                        { return vdom.Li(args...) }
func Dl(args ...any) *VNode                        { return vdom.Dl(args...) }
func Dt(args ...any) *VNode                        { return vdom.Dt(args...) }
func Dd(args ...any) *VNode                        { return vdom.Dd(args...) }
func Hr(args ...any) *VNode                        { return vdom.Hr(args...) }
func Figure(args ...any) *VNode                    { return vdom.Figure(args...) }
func Figcaption(args ...any) *VNode                { return vdom.Figcaption(args...) }
func A(args ...any) *VNode                         { return vdom.A(args...) }
func Strong(args ...any) *VNode                    { return vdom.Strong(args...) }
func Em(args ...any) *VNode                        { return vdom.Em(args...) }
func B(args ...any) *VNode                         { return vdom.B(args...) }
func I(args ...any) *VNode                         { return vdom.I(args...) }
func Small(args ...any) *VNode                     { return vdom.Small(args...) }
func Code(args ...any) *VNode                      { return vdom.Code(args...) }
func Time_(args ...any) *VNode                     { return vdom.Time_(args...) }
func Br(args ...any) *VNode                        { return vdom.Br(args...) }
func Form(args ...any) *VNode                      { return vdom.Form(args...) }
func Input(args ...any) *VNode                     { return vdom.Input(args...) }
func Textarea(args ...any) *VNode                  { return vdom.Textarea(args...) }
func Select(args ...any) *VNode                    { return vdom.Select(args...) }
func Option(args ...any) *VNode                    { return vdom.Option(args...) }
func Button(args ...any) *VNode                    { return vdom.Button(args...) }
func Label(args ...any) *VNode                     { return vdom.Label(args...) }
func Fieldset(args ...any) *VNode                  { return vdom.Fieldset(args...) }
func Legend(args ...any) *VNode                    { return vdom.Legend(args...) }
func Table(args ...any) *VNode                     { return vdom.Table(args...) }
func Thead(args ...any) *VNode                     { return vdom.Thead(args...) }
func Tbody(args ...any) *VNode                     { return vdom.Tbody(args...) }
func Tr(args ...any) *VNode                        { return vdom.Tr(args...) }
func Th(args ...any) *VNode                        { return vdom.Th(args...) }
func Td(args ...any) *VNode                        { return vdom.Td(args...) }
func Img(args ...any) *VNode                       { return vdom.Img(args...) }
func Picture(args ...any) *VNode                   { return vdom.Picture(args...) }
func Source(args ...any) *VNode                    { return vdom.Source(args...) }
func Iframe(args ...any) *VNode                    { return vdom.Iframe(args...) }
func Svg(args ...any) *VNode                       { return vdom.Svg(args...) }
func Details(args ...any) *VNode                   { return vdom.Details(args...) }
func Summary(args ...any) *VNode                   { return vdom.Summary(args...) }
func Dialog(args ...any) *VNode                    { return vdom.Dialog(args...) }
func Script(args ...any) *VNode                    { return vdom.Script(args...) }
func Noscript(args ...any) *VNode                  { return vdom.Noscript(args...) }
func Style(args ...any) *VNode                     { return vdom.Style(args...) }
func CustomElement(tag string, args ...any) *VNode { return vdom.CustomElement(tag, args...) }

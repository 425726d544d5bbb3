package el

import "github.com/samplecafe/cafe/pkg/vdom"

// Attribute helpers.

func ID(id string) Attr                         { return vdom.ID(id) }
func Class(classes ...string) Attr              { return vdom.Class(classes...) }
func StyleAttr(style string) Attr               { return vdom.StyleAttr(style) }
func StyleMap(s Styles) Attr                    { return vdom.StyleMap(s) }
func Data(key, value string) Attr               { return vdom.Data(key, value) }
func InnerHTML(html string) Attr                { return vdom.InnerHTML(html) }
func Role(role string) Attr                     { return vdom.Role(role) }
func AriaLabel(label string) Attr               { return vdom.AriaLabel(label) }
func AriaHidden(hidden bool) Attr               { return vdom.AriaHidden(hidden) }
func AriaExpanded(expanded bool) Attr           { return vdom.AriaExpanded(expanded) }
func AriaControls(id string) Attr               { return vdom.AriaControls(id) }
func AriaCurrent(value string) Attr             { return vdom.AriaCurrent(value) }
func AriaLive(mode string) Attr                 { return vdom.AriaLive(mode) }
func AriaModal(modal bool) Attr                 { return vdom.AriaModal(modal) }
func TitleAttr(title string) Attr               { return vdom.TitleAttr(title) }
func Lang(lang string) Attr                     { return vdom.Lang(lang) }
func TabIndex(index int) Attr                   { return vdom.TabIndex(index) }
func Hidden() Attr                              { return vdom.Hidden() }
func Loading(mode string) Attr                  { return vdom.Loading(mode) }
func ReferrerPolicy(policy string) Attr         { return vdom.ReferrerPolicy(policy) }
func Allowfullscreen() Attr                     { return vdom.Allowfullscreen() }
func Charset(charset string) Attr               { return vdom.Charset(charset) }
func Content(content string) Attr               { return vdom.Content(content) }
func Datetime(value string) Attr                { return vdom.Datetime(value) }
func Autocomplete(value string) Attr            { return vdom.Autocomplete(value) }
func Placeholder(text string) Attr              { return vdom.Placeholder(text) }
func Accept(types string) Attr                  { return vdom.Accept(types) }
func Enctype(enctype string) Attr               { return vdom.Enctype(enctype) }
func Rows(n int) Attr                           { return vdom.Rows(n) }
func Width(w int) Attr                          { return vdom.Width(w) }
func Height(h int) Attr                         { return vdom.Height(h) }
func Href(url string) Attr                      { return vdom.Href(url) }
func Target(target string) Attr                 { return vdom.Target(target) }
func Rel(rel string) Attr                       { return vdom.Rel(rel) }
func Name(name string) Attr                     { return vdom.Name(name) }
func Value(value string) Attr                   { return vdom.Value(value) }
func Type(t string) Attr                        { return vdom.Type(t) }
func Action(url string) Attr                    { return vdom.Action(url) }
func Method(method string) Attr                 { return vdom.Method(method) }
func For(id string) Attr                        { return vdom.For(id) }
func Min(value string) Attr                     { return vdom.Min(value) }
func Disabled() Attr                            { return vdom.Disabled() }
func Required() Attr                            { return vdom.Required() }
func Checked() Attr                             { return vdom.Checked() }
func Selected() Attr                            { return vdom.Selected() }
func Autofocus() Attr                           { return vdom.Autofocus() }
func Src(url string) Attr                       { return vdom.Src(url) }
func Alt(text string) Attr                      { return vdom.Alt(text) }
func Defer_() Attr                              { return vdom.Defer_() }
func ClassIf(condition bool, class string) Attr { return vdom.ClassIf(condition, class) }
func AttrIf(condition bool, a Attr) Attr        { return vdom.AttrIf(condition, a) }
func Classes(classes ...any) Attr               { return vdom.Classes(classes...) }

package el

import "github.com/samplecafe/cafe/pkg/vdom"

// Event handler helpers.

func On(name string, handler any) EventHandler { return vdom.On(name, handler) }
func OnClick(handler any) EventHandler         { return vdom.OnClick(handler) }
func OnInput(handler any) EventHandler         { return vdom.OnInput(handler) }
func OnChange(handler any) EventHandler        { return vdom.OnChange(handler) }
func OnSubmit(handler any) EventHandler        { return vdom.OnSubmit(handler) }
func OnKeyDown(handler any) EventHandler       { return vdom.OnKeyDown(handler) }
func OnFocus(handler any) EventHandler         { return vdom.OnFocus(handler) }
func OnBlur(handler any) EventHandler          { return vdom.OnBlur(handler) }

package vdom

import (
	"runtime"
	"strings"
)

func runtimeName(pc uintptr) string {
	f := runtime.FuncForPC(pc)
	if f == nil {
		return "component"
	}
	name := f.Name()
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}

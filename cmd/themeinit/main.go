//go:build js && wasm

// Command themeinit is the page initializer compiled to WebAssembly.
//
//	GOOS=js GOARCH=wasm go build -o static/main.wasm ./cmd/themeinit
//
// Load it after Bootstrap's bundle and wasm_exec.js.
package main

import (
	"github.com/vango-dev/themekit/pkg/jsdom"
	"github.com/vango-dev/themekit/pkg/pageinit"
)

func main() {
	pageinit.Init(jsdom.Document(), jsdom.LocalStorage(), jsdom.BootstrapToast)

	// Click handlers are Go callbacks; the runtime must outlive main.
	select {}
}

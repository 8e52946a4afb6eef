// Package preview serves a development page for trying the page initializer
// in a real browser.
//
// The page carries the theme toggle button and one toast per configured
// message, and loads main.wasm (built from cmd/themeinit) together with the
// Go runtime's wasm_exec.js from the static directory:
//
//	GOOS=js GOARCH=wasm go build -o static/main.wasm ./cmd/themeinit
//	cp "$(go env GOROOT)/lib/wasm/wasm_exec.js" static/
//	themekit serve --dir static --toast "Saved:success"
//
// This is tooling only. The initializer itself has no server component.
package preview

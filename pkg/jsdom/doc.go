// Package jsdom implements the pkg/dom interfaces over the browser's
// JavaScript globals via syscall/js.
//
// It only builds for GOOS=js GOARCH=wasm.
//
//	pageinit.Init(jsdom.Document(), jsdom.LocalStorage(), jsdom.BootstrapToast)
//
// Storage access can throw in the browser (disabled cookies, sandboxed
// iframes). Those exceptions are recovered here and reported as an empty
// store, so a page without storage still gets its toggle and toasts.
package jsdom

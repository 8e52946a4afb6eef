// Package domtest provides in-memory implementations of the pkg/dom
// interfaces for tests that run without a browser.
//
// # Quick Start
//
//	page := domtest.NewDocument(
//	    domtest.El("html", nil,
//	        domtest.El("button", domtest.Attrs{"id": "themeToggle"}),
//	        domtest.El("div", domtest.Attrs{"class": "toast show"}),
//	    ),
//	)
//	storage := domtest.NewStorage()
//	toasts := &domtest.ToastRecorder{}
//
//	pageinit.Init(page, storage, toasts.Factory)
//
//	page.MustByID("themeToggle").Click()
//	v, _ := storage.GetItem("theme") // "dark"
//
// None of the types are safe for concurrent use; browser code is
// single-threaded and so are the tests that use these fakes.
package domtest

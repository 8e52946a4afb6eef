// Package toast activates the notification widgets already present in a page.
//
// Toast markup is rendered by the server (one element per flashed message,
// each carrying the marker class). This package does not render or time
// toasts itself. It hands each marked element to a widget toolkit through a
// Factory and asks the resulting widget to show.
//
// # Toolkit Integration
//
// The toolkit is injected, so any library with a construct-then-show shape
// fits. In the browser, pkg/jsdom provides a Factory backed by Bootstrap:
//
//	new bootstrap.Toast(el, { delay: 4500 }).show()
//
// # Usage
//
//	shown := toast.Activate(doc.ElementsByClass(toast.MarkerClass), jsdom.BootstrapToast, toast.Config{
//	    Delay: toast.DefaultDelay,
//	})
//
// # Testing
//
// Tests substitute a recording Factory (see pkg/domtest) and assert on the
// number of widgets built and shown.
package toast

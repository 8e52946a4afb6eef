// Package dom defines the small slice of the browser document model that
// themekit touches.
//
// The interfaces are implemented by pkg/jsdom for a real page and by
// pkg/domtest for tests. Nothing here depends on syscall/js, so the rest of
// the module builds and tests on any platform.
package dom

// Element is a single node in the document.
type Element interface {
	// GetAttribute returns the attribute value and whether it is set.
	GetAttribute(name string) (string, bool)

	// SetAttribute sets or replaces the attribute value.
	SetAttribute(name, value string)

	// OnClick registers fn to run on every click of the element.
	OnClick(fn func())
}

// Document is the page being initialized.
type Document interface {
	// Root returns the document element (<html>).
	Root() Element

	// ElementByID returns the element with the given id, if any.
	ElementByID(id string) (Element, bool)

	// ElementsByClass returns all elements carrying class, in document order.
	ElementsByClass(class string) []Element
}

// Storage is an origin-scoped key/value store such as localStorage.
type Storage interface {
	GetItem(key string) (string, bool)
	SetItem(key, value string)
}

// Package theme manages the persisted light/dark preference.
//
// The preference lives in two places that are kept in lockstep: an attribute
// on the document root, which drives the styling, and a single key in
// browser-local storage, which survives reloads.
//
//	store := theme.StorageStore{Storage: storage, Key: theme.DefaultKey}
//	target := theme.RootTarget{Element: doc.Root(), Name: theme.DefaultAttribute}
//
//	theme.Restore(store, target)        // on page load
//	next := theme.Toggle(store, target) // on each click
package theme

import "github.com/vango-dev/themekit/pkg/dom"

// Theme is a display mode.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

const (
	// DefaultKey is the storage key holding the preference.
	DefaultKey = "theme"

	// DefaultAttribute is the root attribute read by the stylesheet.
	DefaultAttribute = "data-bs-theme"
)

// Opposite returns Light for Dark and Dark for anything else, including the
// empty value of an unset attribute.
func (t Theme) Opposite() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// String returns the attribute/storage representation.
func (t Theme) String() string {
	return string(t)
}

// Store persists the preference.
type Store interface {
	Get() (string, bool)
	Set(value string)
}

// Target is where the active theme is applied.
type Target interface {
	GetAttribute() (string, bool)
	SetAttribute(value string)
}

// StorageStore adapts a dom.Storage and a fixed key to Store.
// A nil Storage reads as empty and drops writes.
type StorageStore struct {
	Storage dom.Storage
	Key     string
}

// Get implements Store.
func (s StorageStore) Get() (string, bool) {
	if s.Storage == nil {
		return "", false
	}
	return s.Storage.GetItem(s.Key)
}

// Set implements Store.
func (s StorageStore) Set(value string) {
	if s.Storage == nil {
		return
	}
	s.Storage.SetItem(s.Key, value)
}

// RootTarget adapts a dom.Element and a fixed attribute name to Target.
type RootTarget struct {
	Element dom.Element
	Name    string
}

// GetAttribute implements Target.
func (r RootTarget) GetAttribute() (string, bool) {
	return r.Element.GetAttribute(r.Name)
}

// SetAttribute implements Target.
func (r RootTarget) SetAttribute(value string) {
	r.Element.SetAttribute(r.Name, value)
}

// Restore applies the stored preference to target and returns it.
// An absent or empty stored value leaves target untouched and returns false.
// The stored value is applied verbatim, without validation.
func Restore(store Store, target Target) (string, bool) {
	saved, ok := store.Get()
	if !ok || saved == "" {
		return "", false
	}
	target.SetAttribute(saved)
	return saved, true
}

// Toggle flips the theme currently applied to target, then persists the new
// value. It is the only path that writes the preference.
func Toggle(store Store, target Target) Theme {
	current, _ := target.GetAttribute()
	next := Theme(current).Opposite()
	target.SetAttribute(next.String())
	store.Set(next.String())
	return next
}

// Bind registers Toggle as the click handler of control.
// onToggle, if non-nil, is called with the new theme after each toggle.
func Bind(control dom.Element, store Store, target Target, onToggle func(Theme)) {
	control.OnClick(func() {
		next := Toggle(store, target)
		if onToggle != nil {
			onToggle(next)
		}
	})
}

package domtest

import (
	"strings"

	"github.com/vango-dev/themekit/pkg/dom"
	"github.com/vango-dev/themekit/pkg/toast"
)

// =============================================================================
// Elements
// =============================================================================

// Attrs is an attribute set used when building nodes.
type Attrs map[string]string

// Node is an in-memory element.
type Node struct {
	Tag      string
	Attrs    Attrs
	Children []*Node

	clicks []func()
}

var _ dom.Element = (*Node)(nil)

// El creates a node. A nil attrs map is allowed.
func El(tag string, attrs Attrs, children ...*Node) *Node {
	n := &Node{Tag: tag, Attrs: Attrs{}}
	for k, v := range attrs {
		n.Attrs[k] = v
	}
	for _, c := range children {
		if c != nil {
			n.Children = append(n.Children, c)
		}
	}
	return n
}

// GetAttribute implements dom.Element.
func (n *Node) GetAttribute(name string) (string, bool) {
	v, ok := n.Attrs[name]
	return v, ok
}

// SetAttribute implements dom.Element.
func (n *Node) SetAttribute(name, value string) {
	if n.Attrs == nil {
		n.Attrs = Attrs{}
	}
	n.Attrs[name] = value
}

// HasClass reports whether the class attribute lists class.
func (n *Node) HasClass(class string) bool {
	for _, c := range strings.Fields(n.Attrs["class"]) {
		if c == class {
			return true
		}
	}
	return false
}

// OnClick implements dom.Element.
func (n *Node) OnClick(fn func()) {
	n.clicks = append(n.clicks, fn)
}

// Click runs every registered click handler in registration order.
func (n *Node) Click() {
	for _, fn := range n.clicks {
		fn()
	}
}

// ClickHandlers returns the number of registered click handlers.
func (n *Node) ClickHandlers() int {
	return len(n.clicks)
}

// walk visits n and its descendants in document (pre-)order until visit
// returns false.
func (n *Node) walk(visit func(*Node) bool) bool {
	if !visit(n) {
		return false
	}
	for _, c := range n.Children {
		if !c.walk(visit) {
			return false
		}
	}
	return true
}

// =============================================================================
// Document
// =============================================================================

// Document is an in-memory page rooted at an <html> node.
type Document struct {
	root *Node
}

var _ dom.Document = (*Document)(nil)

// NewDocument wraps root. A nil root becomes an empty <html> element.
func NewDocument(root *Node) *Document {
	if root == nil {
		root = El("html", nil)
	}
	return &Document{root: root}
}

// Root implements dom.Document.
func (d *Document) Root() dom.Element {
	return d.root
}

// RootNode returns the root as a *Node.
func (d *Document) RootNode() *Node {
	return d.root
}

// ElementByID implements dom.Document.
func (d *Document) ElementByID(id string) (dom.Element, bool) {
	n := d.ByID(id)
	if n == nil {
		return nil, false
	}
	return n, true
}

// ByID returns the first node with the given id, or nil.
func (d *Document) ByID(id string) *Node {
	var found *Node
	d.root.walk(func(n *Node) bool {
		if v, ok := n.Attrs["id"]; ok && v == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// MustByID is ByID that panics when the id is missing.
func (d *Document) MustByID(id string) *Node {
	n := d.ByID(id)
	if n == nil {
		panic("domtest: no element with id " + id)
	}
	return n
}

// ElementsByClass implements dom.Document.
func (d *Document) ElementsByClass(class string) []dom.Element {
	var out []dom.Element
	d.root.walk(func(n *Node) bool {
		if n.HasClass(class) {
			out = append(out, n)
		}
		return true
	})
	return out
}

// =============================================================================
// Storage
// =============================================================================

// Storage is an in-memory dom.Storage.
type Storage struct {
	items  map[string]string
	writes int
}

var _ dom.Storage = (*Storage)(nil)

// NewStorage returns a storage pre-populated with the given key/value pairs.
func NewStorage(seed ...string) *Storage {
	s := &Storage{items: make(map[string]string)}
	for i := 0; i+1 < len(seed); i += 2 {
		s.items[seed[i]] = seed[i+1]
	}
	return s
}

// GetItem implements dom.Storage. A nil *Storage reads as empty.
func (s *Storage) GetItem(key string) (string, bool) {
	if s == nil {
		return "", false
	}
	v, ok := s.items[key]
	return v, ok
}

// SetItem implements dom.Storage. A nil *Storage drops the write, like a
// page whose storage is blocked.
func (s *Storage) SetItem(key, value string) {
	if s == nil {
		return
	}
	if s.items == nil {
		s.items = make(map[string]string)
	}
	s.items[key] = value
	s.writes++
}

// Writes returns the number of SetItem calls.
func (s *Storage) Writes() int {
	if s == nil {
		return 0
	}
	return s.writes
}

// Len returns the number of stored keys.
func (s *Storage) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// =============================================================================
// Toasts
// =============================================================================

// RecordedToast is a widget built by a ToastRecorder.
type RecordedToast struct {
	Element dom.Element
	Config  toast.Config
	Shows   int
}

// Show implements toast.Widget.
func (r *RecordedToast) Show() {
	r.Shows++
}

// ToastRecorder records every widget its Factory builds.
type ToastRecorder struct {
	Built []*RecordedToast

	// Skip, if set, makes Factory return nil for matching elements.
	Skip func(el dom.Element) bool
}

// Factory implements toast.Factory.
func (r *ToastRecorder) Factory(el dom.Element, cfg toast.Config) toast.Widget {
	if r.Skip != nil && r.Skip(el) {
		return nil
	}
	w := &RecordedToast{Element: el, Config: cfg}
	r.Built = append(r.Built, w)
	return w
}

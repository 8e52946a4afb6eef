package domtest

import "testing"

func TestElementByID(t *testing.T) {
	btn := El("button", Attrs{"id": "themeToggle"})
	doc := NewDocument(El("html", nil, El("body", nil, El("nav", nil, btn))))

	el, ok := doc.ElementByID("themeToggle")
	if !ok || el != btn {
		t.Fatalf("ElementByID: got (%v, %v), want the button", el, ok)
	}
	if _, ok := doc.ElementByID("missing"); ok {
		t.Error("ElementByID should miss unknown ids")
	}
}

func TestElementByIDFirstMatch(t *testing.T) {
	a := El("span", Attrs{"id": "dup"})
	b := El("span", Attrs{"id": "dup"})
	doc := NewDocument(El("html", nil, a, b))

	if doc.ByID("dup") != a {
		t.Error("ByID should return the first match in document order")
	}
}

func TestHasClass(t *testing.T) {
	n := El("div", Attrs{"class": "  toast  text-bg-success "})

	if !n.HasClass("toast") || !n.HasClass("text-bg-success") {
		t.Error("HasClass should match whitespace-separated classes")
	}
	if n.HasClass("toas") || n.HasClass("") {
		t.Error("HasClass should not match partial or empty names")
	}
}

func TestNilRoot(t *testing.T) {
	doc := NewDocument(nil)

	if doc.RootNode().Tag != "html" {
		t.Errorf("root tag: got %q, want html", doc.RootNode().Tag)
	}
	if got := doc.ElementsByClass("toast"); len(got) != 0 {
		t.Errorf("ElementsByClass: got %d, want 0", len(got))
	}
}

func TestMustByIDPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustByID should panic on a missing id")
		}
	}()
	NewDocument(nil).MustByID("nope")
}

func TestStorage(t *testing.T) {
	s := NewStorage("theme", "dark", "odd")

	if v, ok := s.GetItem("theme"); !ok || v != "dark" {
		t.Errorf("GetItem: got (%q, %v), want (dark, true)", v, ok)
	}
	if s.Len() != 1 {
		t.Errorf("unpaired seed should be ignored, Len got %d", s.Len())
	}

	s.SetItem("theme", "light")
	s.SetItem("theme", "dark")
	if s.Writes() != 2 || s.Len() != 1 {
		t.Errorf("Writes/Len: got %d/%d, want 2/1", s.Writes(), s.Len())
	}
}

func TestSetAttributeOnZeroNode(t *testing.T) {
	var n Node
	n.SetAttribute("data-bs-theme", "dark")

	if v, ok := n.GetAttribute("data-bs-theme"); !ok || v != "dark" {
		t.Errorf("GetAttribute: got (%q, %v), want (dark, true)", v, ok)
	}
}

func TestZeroStorage(t *testing.T) {
	var s Storage
	s.SetItem("theme", "dark")

	if v, ok := s.GetItem("theme"); !ok || v != "dark" {
		t.Errorf("GetItem: got (%q, %v), want (dark, true)", v, ok)
	}
	if s.Writes() != 1 {
		t.Errorf("Writes: got %d, want 1", s.Writes())
	}
}

func TestNilStorage(t *testing.T) {
	var s *Storage
	s.SetItem("theme", "dark")

	if _, ok := s.GetItem("theme"); ok {
		t.Error("nil storage should read as empty")
	}
	if s.Writes() != 0 || s.Len() != 0 {
		t.Errorf("Writes/Len: got %d/%d, want 0/0", s.Writes(), s.Len())
	}
}

//go:build js && wasm

// Run with:
//
//	GOOS=js GOARCH=wasm go test -exec="$(go env GOROOT)/lib/wasm/go_js_wasm_exec" ./pkg/jsdom
package jsdom

import (
	"syscall/js"
	"testing"

	"github.com/vango-dev/themekit/pkg/pageinit"
	"github.com/vango-dev/themekit/pkg/toast"
)

// eval runs a JS function body and returns its result.
func eval(t *testing.T, body string) js.Value {
	t.Helper()
	return js.Global().Get("Function").New(body).Invoke()
}

// fakePage installs a minimal document on globalThis. Elements are plain
// objects that remember their attributes and click listeners.
func fakePage(t *testing.T) {
	t.Helper()
	eval(t, `
		const mk = (tag, attrs, classes) => {
			const el = {
				tag,
				attrs: Object.assign({}, attrs),
				classes: classes || [],
				listeners: [],
				hasAttribute(n) { return Object.prototype.hasOwnProperty.call(this.attrs, n); },
				getAttribute(n) { return this.hasAttribute(n) ? this.attrs[n] : null; },
				setAttribute(n, v) { this.attrs[n] = String(v); },
				addEventListener(ev, fn) { if (ev === "click") this.listeners.push(fn); },
				click() { this.listeners.forEach((fn) => fn({})); },
			};
			return el;
		};
		const root = mk("html", {}, []);
		const elements = [
			mk("button", { id: "themeToggle" }, ["btn"]),
			mk("div", { id: "t1" }, ["toast", "show"]),
			mk("div", { id: "other" }, ["toaster"]),
			mk("div", { id: "t2" }, ["toast"]),
			mk("div", { id: "t3" }, ["fade", "toast"]),
		];
		globalThis.document = {
			documentElement: root,
			getElementById(id) { return elements.find((e) => e.attrs.id === id) || null; },
			getElementsByClassName(c) { return elements.filter((e) => e.classes.includes(c)); },
		};
	`)
	t.Cleanup(func() { eval(t, `delete globalThis.document;`) })
}

// setStorage replaces globalThis.localStorage with the given property
// descriptor source.
func setStorage(t *testing.T, descriptor string) {
	t.Helper()
	eval(t, `Object.defineProperty(globalThis, "localStorage", Object.assign({ configurable: true }, `+descriptor+`));`)
	t.Cleanup(func() { eval(t, `delete globalThis.localStorage;`) })
}

const workingStorage = `{ value: (() => {
	const items = {};
	return {
		items,
		getItem(k) { return Object.prototype.hasOwnProperty.call(items, k) ? items[k] : null; },
		setItem(k, v) { items[k] = String(v); },
	};
})() }`

func rootAttr(t *testing.T) js.Value {
	t.Helper()
	return js.Global().Get("document").Get("documentElement").Call("getAttribute", "data-bs-theme")
}

func TestLocalStorageRoundTrip(t *testing.T) {
	setStorage(t, workingStorage)

	s := LocalStorage()
	if s == nil {
		t.Fatal("LocalStorage returned nil for working storage")
	}
	if _, ok := s.GetItem("theme"); ok {
		t.Error("missing key should read as absent")
	}

	s.SetItem("theme", "dark")
	if v, ok := s.GetItem("theme"); !ok || v != "dark" {
		t.Errorf("GetItem: got (%q, %v), want (dark, true)", v, ok)
	}
}

func TestLocalStorageThrowingGetter(t *testing.T) {
	setStorage(t, `{ get() { throw new Error("SecurityError: storage is disabled"); } }`)

	if s := LocalStorage(); s != nil {
		t.Errorf("LocalStorage: got %v, want nil when the getter throws", s)
	}
}

func TestLocalStorageUndefined(t *testing.T) {
	setStorage(t, `{ value: undefined }`)

	if s := LocalStorage(); s != nil {
		t.Errorf("LocalStorage: got %v, want nil", s)
	}
}

func TestLocalStorageThrowingMethods(t *testing.T) {
	setStorage(t, `{ value: {
		getItem() { throw new Error("QuotaExceededError"); },
		setItem() { throw new Error("QuotaExceededError"); },
	} }`)

	s := LocalStorage()
	if s == nil {
		t.Fatal("LocalStorage returned nil, want a wrapper")
	}
	if v, ok := s.GetItem("theme"); ok || v != "" {
		t.Errorf("GetItem: got (%q, %v), want (\"\", false)", v, ok)
	}
	// Must not panic.
	s.SetItem("theme", "dark")
}

func TestDocument(t *testing.T) {
	fakePage(t)
	doc := Document()

	if _, ok := doc.ElementByID("missing"); ok {
		t.Error("ElementByID should miss unknown ids")
	}
	btn, ok := doc.ElementByID("themeToggle")
	if !ok {
		t.Fatal("ElementByID(themeToggle) not found")
	}
	if v, ok := btn.GetAttribute("id"); !ok || v != "themeToggle" {
		t.Errorf("GetAttribute(id): got (%q, %v)", v, ok)
	}
	if _, ok := btn.GetAttribute("data-x"); ok {
		t.Error("unset attribute should report absent")
	}

	var ids []string
	for _, el := range doc.ElementsByClass(toast.MarkerClass) {
		id, _ := el.GetAttribute("id")
		ids = append(ids, id)
	}
	if len(ids) != 3 || ids[0] != "t1" || ids[1] != "t2" || ids[2] != "t3" {
		t.Errorf("ElementsByClass order: got %v, want [t1 t2 t3]", ids)
	}

	root := doc.Root()
	root.SetAttribute("data-bs-theme", "dark")
	if got := rootAttr(t).String(); got != "dark" {
		t.Errorf("root attribute: got %q, want dark", got)
	}
}

func TestOnClick(t *testing.T) {
	fakePage(t)
	btn, _ := Document().ElementByID("themeToggle")

	clicks := 0
	btn.OnClick(func() { clicks++ })

	raw, ok := Value(btn)
	if !ok {
		t.Fatal("Value: element not from jsdom")
	}
	raw.Call("click")
	raw.Call("click")

	if clicks != 2 {
		t.Errorf("clicks: got %d, want 2", clicks)
	}
}

func TestBootstrapToastMissing(t *testing.T) {
	fakePage(t)
	el, _ := Document().ElementByID("t1")
	eval(t, `delete globalThis.bootstrap;`)

	if w := BootstrapToast(el, toast.Config{Delay: toast.DefaultDelay}); w != nil {
		t.Errorf("BootstrapToast: got %v, want nil without bootstrap", w)
	}

	eval(t, `globalThis.bootstrap = {};`)
	t.Cleanup(func() { eval(t, `delete globalThis.bootstrap;`) })

	if w := BootstrapToast(el, toast.Config{Delay: toast.DefaultDelay}); w != nil {
		t.Errorf("BootstrapToast: got %v, want nil without bootstrap.Toast", w)
	}
}

func TestBootstrapToast(t *testing.T) {
	fakePage(t)
	eval(t, `
		globalThis.__toasts = [];
		globalThis.bootstrap = {
			Toast: function (el, opts) {
				this.el = el;
				this.delay = opts.delay;
				this.shows = 0;
				this.show = () => { this.shows++; };
				globalThis.__toasts.push(this);
			},
		};
	`)
	t.Cleanup(func() { eval(t, `delete globalThis.bootstrap; delete globalThis.__toasts;`) })

	doc := Document()
	shown := toast.Activate(doc.ElementsByClass(toast.MarkerClass), BootstrapToast, toast.Config{Delay: toast.DefaultDelay})
	if shown != 3 {
		t.Fatalf("shown: got %d, want 3", shown)
	}

	built := js.Global().Get("__toasts")
	if built.Length() != 3 {
		t.Fatalf("constructed: got %d, want 3", built.Length())
	}
	for i := 0; i < built.Length(); i++ {
		tw := built.Index(i)
		if d := tw.Get("delay").Int(); d != 4500 {
			t.Errorf("toast %d delay: got %d, want 4500", i, d)
		}
		if n := tw.Get("shows").Int(); n != 1 {
			t.Errorf("toast %d shows: got %d, want 1", i, n)
		}
	}
	if id := built.Index(1).Get("el").Get("attrs").Get("id").String(); id != "t2" {
		t.Errorf("second toast element: got %q, want t2", id)
	}
}

func TestInitWithBlockedStorage(t *testing.T) {
	fakePage(t)
	setStorage(t, `{ value: {
		getItem() { throw new Error("SecurityError"); },
		setItem() { throw new Error("SecurityError"); },
	} }`)
	eval(t, `delete globalThis.bootstrap;`)

	pageinit.Init(Document(), LocalStorage(), BootstrapToast)

	if v := rootAttr(t); !v.IsNull() {
		t.Errorf("root attribute before click: got %v, want unset", v)
	}

	js.Global().Get("document").Call("getElementById", "themeToggle").Call("click")

	if got := rootAttr(t).String(); got != "dark" {
		t.Errorf("root attribute after click: got %q, want dark", got)
	}
}

//go:build js && wasm

package jsdom

import (
	"fmt"
	"log/slog"
	"syscall/js"

	"github.com/vango-dev/themekit/pkg/dom"
	"github.com/vango-dev/themekit/pkg/toast"
)

// =============================================================================
// Elements
// =============================================================================

type element struct {
	v js.Value

	// funcs keeps registered callbacks reachable for the page lifetime.
	funcs []js.Func
}

var (
	_ dom.Element  = (*element)(nil)
	_ dom.Document = (*document)(nil)
	_ dom.Storage  = (*storage)(nil)
	_ toast.Widget = bootstrapToast{}
)

func wrap(v js.Value) *element {
	return &element{v: v}
}

func (e *element) GetAttribute(name string) (string, bool) {
	if !e.v.Call("hasAttribute", name).Bool() {
		return "", false
	}
	return e.v.Call("getAttribute", name).String(), true
}

func (e *element) SetAttribute(name, value string) {
	e.v.Call("setAttribute", name, value)
}

func (e *element) OnClick(fn func()) {
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		fn()
		return nil
	})
	e.funcs = append(e.funcs, cb)
	e.v.Call("addEventListener", "click", cb)
}

// Value returns the underlying JS element.
func Value(el dom.Element) (js.Value, bool) {
	e, ok := el.(*element)
	if !ok {
		return js.Undefined(), false
	}
	return e.v, true
}

// =============================================================================
// Document
// =============================================================================

type document struct {
	v js.Value
}

// Document returns the page's document.
func Document() dom.Document {
	return &document{v: js.Global().Get("document")}
}

func (d *document) Root() dom.Element {
	return wrap(d.v.Get("documentElement"))
}

func (d *document) ElementByID(id string) (dom.Element, bool) {
	v := d.v.Call("getElementById", id)
	if v.IsNull() || v.IsUndefined() {
		return nil, false
	}
	return wrap(v), true
}

func (d *document) ElementsByClass(class string) []dom.Element {
	list := d.v.Call("getElementsByClassName", class)
	n := list.Length()
	out := make([]dom.Element, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, wrap(list.Index(i)))
	}
	return out
}

// =============================================================================
// Storage
// =============================================================================

type storage struct {
	v      js.Value
	logger *slog.Logger
}

// LocalStorage returns window.localStorage, or nil when the page has no
// accessible storage.
func LocalStorage() dom.Storage {
	logger := slog.Default()

	// The localStorage getter itself throws when storage is blocked. Value.Get
	// does not catch that, Call does.
	v, err := try(func() js.Value {
		return js.Global().Get("Reflect").Call("get", js.Global(), "localStorage")
	})
	if err != nil {
		logger.Debug("localStorage unavailable", "error", err)
		return nil
	}
	if v.IsNull() || v.IsUndefined() {
		return nil
	}
	return &storage{v: v, logger: logger}
}

func (s *storage) GetItem(key string) (string, bool) {
	v, err := try(func() js.Value { return s.v.Call("getItem", key) })
	if err != nil {
		s.logger.Debug("localStorage read failed", "key", key, "error", err)
		return "", false
	}
	if v.IsNull() || v.IsUndefined() {
		return "", false
	}
	return v.String(), true
}

func (s *storage) SetItem(key, value string) {
	_, err := try(func() js.Value { return s.v.Call("setItem", key, value) })
	if err != nil {
		s.logger.Debug("localStorage write failed", "key", key, "error", err)
	}
}

// try runs fn and converts a thrown JS exception into an error.
func try(fn func() js.Value) (v js.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			if jsErr, ok := r.(js.Error); ok {
				err = jsErr
				return
			}
			err = fmt.Errorf("jsdom: %v", r)
		}
	}()
	return fn(), nil
}

// =============================================================================
// Toasts
// =============================================================================

type bootstrapToast struct {
	v js.Value
}

func (t bootstrapToast) Show() {
	t.v.Call("show")
}

// BootstrapToast is a toast.Factory backed by bootstrap.Toast. It returns nil
// when Bootstrap's JS bundle is not loaded.
func BootstrapToast(el dom.Element, cfg toast.Config) toast.Widget {
	target, ok := Value(el)
	if !ok {
		return nil
	}

	bs := js.Global().Get("bootstrap")
	if bs.IsUndefined() || bs.IsNull() {
		return nil
	}
	ctor := bs.Get("Toast")
	if ctor.IsUndefined() || ctor.IsNull() {
		return nil
	}

	opts := js.Global().Get("Object").New()
	opts.Set("delay", cfg.DelayMillis())

	return bootstrapToast{v: ctor.New(target, opts)}
}

// Package pageinit is the one-shot page initializer: it restores the theme
// preference, binds the theme toggle and shows the page's toasts.
//
// Everything the initializer touches is injected, so the same code runs
// against the real browser (pkg/jsdom) and against in-memory fakes
// (pkg/domtest):
//
//	pageinit.Init(jsdom.Document(), jsdom.LocalStorage(), jsdom.BootstrapToast)
package pageinit

import (
	"github.com/vango-dev/themekit/pkg/dom"
	"github.com/vango-dev/themekit/pkg/theme"
	"github.com/vango-dev/themekit/pkg/toast"
)

// Init runs the initializer once against doc.
//
// A nil storage behaves as empty storage that drops writes. A missing toggle
// control or a nil factory disables the respective feature. Init never fails.
func Init(doc dom.Document, storage dom.Storage, newToast toast.Factory, opts ...Option) {
	cfg := buildConfig(opts)
	log := cfg.Logger

	store := theme.StorageStore{Storage: storage, Key: cfg.StorageKey}
	target := theme.RootTarget{Element: doc.Root(), Name: cfg.Attribute}

	if saved, ok := theme.Restore(store, target); ok {
		log.Debug("theme restored", "theme", saved)
	}

	if control, ok := doc.ElementByID(cfg.ToggleID); ok {
		theme.Bind(control, store, target, func(next theme.Theme) {
			log.Debug("theme toggled", "theme", next.String())
		})
		log.Debug("theme toggle bound", "id", cfg.ToggleID)
	}

	shown := toast.Activate(doc.ElementsByClass(cfg.ToastClass), newToast, toast.Config{
		Delay: cfg.ToastDelay,
	})
	if shown > 0 {
		log.Debug("toasts shown", "count", shown)
	}
}

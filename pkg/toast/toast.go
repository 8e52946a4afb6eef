package toast

import (
	"time"

	"github.com/vango-dev/themekit/pkg/dom"
)

// MarkerClass is the class that identifies toast elements.
const MarkerClass = "toast"

// DefaultDelay is how long a toast stays visible before auto-hiding.
const DefaultDelay = 4500 * time.Millisecond

// Config is passed to the toolkit for every widget.
type Config struct {
	// Delay is the auto-hide timeout. The toolkit owns the timer.
	Delay time.Duration
}

// DelayMillis returns Delay as whole milliseconds, the unit toolkits expect.
func (c Config) DelayMillis() int64 {
	return c.Delay.Milliseconds()
}

// Widget is a constructed, not yet visible notification.
type Widget interface {
	Show()
}

// Factory builds a widget for el. It may return nil when the toolkit cannot
// handle the element; Activate skips such elements.
type Factory func(el dom.Element, cfg Config) Widget

// Activate builds and shows one widget per element, in order, and returns the
// number shown. Elements are independent: a nil widget for one does not stop
// the rest. A nil factory shows nothing.
func Activate(elements []dom.Element, factory Factory, cfg Config) int {
	if factory == nil {
		return 0
	}

	shown := 0
	for _, el := range elements {
		w := factory(el, cfg)
		if w == nil {
			continue
		}
		w.Show()
		shown++
	}
	return shown
}

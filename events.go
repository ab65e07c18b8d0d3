package colorpick

import (
	"sync/atomic"

	"github.com/gogpu/gpucontext"
)

// Subscription is a registration on a pointer event source.
//
// gpucontext sources have no way to remove a callback, so the registered
// callback stays installed but forwards events only while the subscription
// is open. Closing is immediate: no event is delivered after Close returns
// on the delivering goroutine.
type Subscription struct {
	open atomic.Bool
}

// Subscribe registers fn on src and returns the open subscription.
//
// Example:
//
//	sub := colorpick.Subscribe(app.EventSource().(gpucontext.PointerEventSource), ctrl.HandlePointer)
//	defer sub.Close()
func Subscribe(src gpucontext.PointerEventSource, fn func(gpucontext.PointerEvent)) *Subscription {
	s := &Subscription{}
	s.open.Store(true)
	src.OnPointer(func(ev gpucontext.PointerEvent) {
		if s.open.Load() {
			fn(ev)
		}
	})
	return s
}

// Active reports whether the subscription still forwards events.
func (s *Subscription) Active() bool {
	return s.open.Load()
}

// Close stops forwarding events. Close is idempotent.
func (s *Subscription) Close() error {
	s.open.Store(false)
	return nil
}

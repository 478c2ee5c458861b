package events

import (
	"context"
	"errors"
	"sync"
)

// EventHandler handles a published event.
type EventHandler func(context.Context, Event) error

// Dispatcher allows event publication and subscription.
type Dispatcher interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(handler EventHandler) (unsubscribe func())
	Len() int
}

type subscription struct {
	id      uint64
	handler EventHandler
}

// inMemoryDispatcher is a synchronous dispatcher notifying in registration order.
type inMemoryDispatcher struct {
	mu     sync.RWMutex
	nextID uint64
	subs   []subscription
}

// NewInMemoryDispatcher creates a dispatcher instance.
func NewInMemoryDispatcher() Dispatcher {
	return &inMemoryDispatcher{}
}

// Publish invokes every handler registered at call time. Handlers may
// subscribe or unsubscribe while running; that affects later publishes only.
func (d *inMemoryDispatcher) Publish(ctx context.Context, event Event) error {
	d.mu.RLock()
	handlers := make([]EventHandler, 0, len(d.subs))
	for _, s := range d.subs {
		handlers = append(handlers, s.handler)
	}
	d.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		// continue processing other handlers despite errors
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Subscribe registers a handler and returns a func that removes it. Calling
// the returned func more than once is a no-op.
func (d *inMemoryDispatcher) Subscribe(handler EventHandler) func() {
	d.mu.Lock()
	d.nextID++
	id := d.nextID
	d.subs = append(d.subs, subscription{id: id, handler: handler})
	d.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { d.remove(id) })
	}
}

func (d *inMemoryDispatcher) remove(id uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, s := range d.subs {
		if s.id == id {
			d.subs = append(d.subs[:i:i], d.subs[i+1:]...)
			return
		}
	}
}

// Len returns the number of active subscriptions.
func (d *inMemoryDispatcher) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.subs)
}

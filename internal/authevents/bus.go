// Package authevents decouples "a request came back 401" from "the app must
// log the user out". The API client publishes here instead of importing the
// session store directly, which keeps the client testable standalone and
// avoids an import cycle.
package authevents

import (
	"log/slog"
	"sort"
	"sync"
)

// Listener is invoked once per unauthorized broadcast.
type Listener func()

// Bus fans an unauthorized signal out to every registered listener.
// Delivery is synchronous and in registration order; a panicking listener is
// recovered and logged so it cannot block the others.
type Bus struct {
	mu        sync.Mutex
	nextID    int
	listeners map[int]Listener
}

// NewBus creates an empty bus. Most callers share the process-wide Default
// bus; constructing one directly is for tests and dependency injection.
func NewBus() *Bus {
	return &Bus{listeners: make(map[int]Listener)}
}

// SubscribeUnauthorized registers a listener and returns its unsubscribe
// function. A nil listener is ignored and yields a no-op unsubscribe.
func (b *Bus) SubscribeUnauthorized(fn Listener) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}

	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.listeners[id] = fn
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.listeners, id)
		b.mu.Unlock()
	}
}

// EmitUnauthorized invokes every registered listener exactly once.
func (b *Bus) EmitUnauthorized() {
	b.mu.Lock()
	ids := make([]int, 0, len(b.listeners))
	for id := range b.listeners {
		ids = append(ids, id)
	}
	sort.Ints(ids) // registration order
	fns := make([]Listener, 0, len(ids))
	for _, id := range ids {
		fns = append(fns, b.listeners[id])
	}
	b.mu.Unlock()

	for _, fn := range fns {
		safeInvoke(fn)
	}
}

// safeInvoke shields the broadcast loop from a misbehaving listener.
func safeInvoke(fn Listener) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Unauthorized listener failed", "panic", r)
		}
	}()
	fn()
}

// defaultBus carries the process-wide singleton semantics of the original
// client: lifecycle is the app lifetime, no teardown beyond process exit.
var defaultBus = NewBus()

// Default returns the process-wide bus.
func Default() *Bus { return defaultBus }

// SubscribeUnauthorized registers a listener on the default bus.
func SubscribeUnauthorized(fn Listener) (unsubscribe func()) {
	return defaultBus.SubscribeUnauthorized(fn)
}

// EmitUnauthorized broadcasts on the default bus.
func EmitUnauthorized() {
	defaultBus.EmitUnauthorized()
}

package events

import (
	"fmt"
	"sync"
)

// Bus is a synchronous event bus for UI services.
// Handlers run on the publishing goroutine, in subscription order.
type Bus struct {
	mu        sync.RWMutex
	listeners map[string][]func(interface{})
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		listeners: make(map[string][]func(interface{})),
	}
}

// Subscribe registers a listener for an event type
func (b *Bus) Subscribe(eventType string, handler func(interface{})) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners[eventType] = append(b.listeners[eventType], handler)
}

// Publish sends an event to all listeners
func (b *Bus) Publish(event interface{}) {
	eventType := getEventType(event)

	// Copy so handlers may subscribe or publish without deadlocking.
	b.mu.RLock()
	handlers := make([]func(interface{}), len(b.listeners[eventType]))
	copy(handlers, b.listeners[eventType])
	b.mu.RUnlock()

	for _, handler := range handlers {
		handler(event)
	}
}

// TypeOf returns the event type name that Publish uses for events of type E.
func TypeOf[E any]() string {
	var zero E
	return getEventType(zero)
}

// On subscribes a typed handler for events of type E.
func On[E any](bus EventBus, handler func(E)) {
	bus.Subscribe(TypeOf[E](), func(event interface{}) {
		if e, ok := event.(E); ok {
			handler(e)
		}
	})
}

// getEventType extracts the type name from an event
func getEventType(event interface{}) string {
	return fmt.Sprintf("%T", event)
}

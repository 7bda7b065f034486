package core

// Events is a per-type queue of messages exchanged between systems inside a
// single tick. Writers Send, the consuming system Drain-s once per tick, so
// every message is observed exactly once and in send order.
type Events[T any] struct {
	items []T
}

// Send appends a message to the queue.
func (e *Events[T]) Send(msg T) {
	e.items = append(e.items, msg)
}

// Drain returns all pending messages and empties the queue.
func (e *Events[T]) Drain() []T {
	if len(e.items) == 0 {
		return nil
	}
	out := e.items
	e.items = nil
	return out
}

// Len returns the number of pending messages.
func (e *Events[T]) Len() int {
	return len(e.items)
}

// Clear drops all pending messages.
func (e *Events[T]) Clear() {
	e.items = nil
}

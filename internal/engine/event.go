package engine

// EventWithArg is a multi-cast event carrying one argument. Listeners run
// synchronously in subscription order on the caller's goroutine.
type EventWithArg[T any] struct {
	listeners []func(T)
}

// AddListener subscribes callback. A nil callback is ignored.
func (e *EventWithArg[T]) AddListener(callback func(T)) {
	if callback == nil {
		return
	}
	e.listeners = append(e.listeners, callback)
}

func (e *EventWithArg[T]) Invoke(arg T) {
	for _, listener := range e.listeners {
		listener(arg)
	}
}

func (e *EventWithArg[T]) ListenerCount() int {
	return len(e.listeners)
}

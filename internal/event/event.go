// internal/event/event.go
package event

// EventType names a game event.
type EventType string

// Event is one notification with an optional payload.
type Event struct {
	Type EventType
	Data interface{} // payload, see types.go for what each type carries
}

// Listener receives dispatched events.
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher delivers events synchronously, in subscription order.
// It is not safe for concurrent use; the game serializes access to it.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe appends listener to the subscribers of eventType.
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Unsubscribe removes the first registration of listener.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	if listeners, exists := d.listeners[eventType]; exists {
		for i, l := range listeners {
			if l == listener {
				d.listeners[eventType] = append(listeners[:i:i], listeners[i+1:]...)
				break
			}
		}
	}
}

func (d *Dispatcher) Dispatch(event Event) {
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
}

// HasListeners reports whether anyone is subscribed to eventType.
func (d *Dispatcher) HasListeners(eventType EventType) bool {
	return len(d.listeners[eventType]) > 0
}

package event

// EventQueue is an append-only per-tick event list
// Producers push during the update pass; the owner consumes after the tick completes
// Single goroutine, no locking
type EventQueue struct {
	events []GameEvent
	frame  int64
}

func NewEventQueue() *EventQueue {
	return &EventQueue{events: make([]GameEvent, 0, 32)}
}

// SetFrame stamps subsequently pushed events with frame
func (eq *EventQueue) SetFrame(frame int64) {
	eq.frame = frame
}

// Frame returns the current stamp
func (eq *EventQueue) Frame() int64 {
	return eq.frame
}

// Push appends an event stamped with the current frame
func (eq *EventQueue) Push(t EventType, payload any) {
	eq.events = append(eq.events, GameEvent{Type: t, Payload: payload, Frame: eq.frame})
}

// PushEvent appends a pre-built event unchanged
func (eq *EventQueue) PushEvent(ev GameEvent) {
	eq.events = append(eq.events, ev)
}

// Consume returns pending events in FIFO order and empties the queue
func (eq *EventQueue) Consume() []GameEvent {
	if len(eq.events) == 0 {
		return nil
	}
	out := eq.events
	eq.events = make([]GameEvent, 0, cap(out))
	return out
}

// Peek returns pending events without consuming them
func (eq *EventQueue) Peek() []GameEvent {
	return eq.events
}

// Len returns pending event count
func (eq *EventQueue) Len() int {
	return len(eq.events)
}

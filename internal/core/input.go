package core

// Key is a semantic game key, abstracted from the physical key that produced it.
// Frontends map their own key codes onto these.
type Key int

const (
	KeyNone Key = iota
	KeyUp       // Up arrow - hold to move the cannon up
	KeyDown     // Down arrow - hold to move the cannon down
	KeyFire     // Space - one bullet per press
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyFire:
		return "Fire"
	default:
		return "Unknown"
	}
}

// EventKind distinguishes the input events a frontend can queue.
type EventKind int

const (
	EventKeyDown EventKind = iota
	EventKeyUp
	EventQuit // Window close or quit key
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventKeyDown:
		return "KeyDown"
	case EventKeyUp:
		return "KeyUp"
	case EventQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Event is a single queued input event. Key is meaningful only for key events.
type Event struct {
	Kind EventKind
	Key  Key
}

// KeyDownEvent returns a key-press event for k.
func KeyDownEvent(k Key) Event {
	return Event{Kind: EventKeyDown, Key: k}
}

// KeyUpEvent returns a key-release event for k.
func KeyUpEvent(k Key) Event {
	return Event{Kind: EventKeyUp, Key: k}
}

// QuitEvent returns a quit request.
func QuitEvent() Event {
	return Event{Kind: EventQuit}
}

// EventQueue collects events between ticks. The frontend pushes as input
// arrives and the game loop drains once per tick.
type EventQueue struct {
	events []Event
}

// Push appends an event to the queue.
func (q *EventQueue) Push(e Event) {
	q.events = append(q.events, e)
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	return len(q.events)
}

// Drain returns all queued events in arrival order and empties the queue.
// It never blocks; an empty queue yields nil.
func (q *EventQueue) Drain() []Event {
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = nil
	return out
}

// HeldKeys records which movement keys are currently held down.
type HeldKeys struct {
	Up   bool
	Down bool
}

// Apply updates the held state from one event. A key-down for Up or Down sets
// that flag; any key-up clears both.
func (h *HeldKeys) Apply(e Event) {
	switch e.Kind {
	case EventKeyDown:
		switch e.Key {
		case KeyUp:
			h.Up = true
		case KeyDown:
			h.Down = true
		}
	case EventKeyUp:
		h.Up = false
		h.Down = false
	}
}

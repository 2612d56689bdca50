package input

import "sync"

// Key represents a keyboard key.
type Key int32

// Only defining keys used by this game
//
// These are our own values, drivers map their key codes onto them so
// that the core doesn't import a windowing library.
const (
	KeyUnknown Key = iota
	Key1
	Key2
	KeySpace
	KeyEscape
)

func (key Key) String() string {
	switch key {
	case Key1:
		return "1"
	case Key2:
		return "2"
	case KeySpace:
		return "space"
	case KeyEscape:
		return "escape"
	}
	return "unknown"
}

// EventKind is the type of a discrete input event
type EventKind uint8

const (
	// EventQuit is a request to close the window
	EventQuit EventKind = iota + 1
	EventKeyDown
)

type Event struct {
	Kind EventKind
	// Key is set for EventKeyDown
	Key Key
}

func Quit() Event {
	return Event{Kind: EventQuit}
}

func KeyDown(key Key) Event {
	return Event{Kind: EventKeyDown, Key: key}
}

// Source hands out pending input events one at a time
type Source interface {
	// Poll returns the next event, or false if there are none pending.
	Poll() (Event, bool)
}

// Queue is a Source fed by hand. It is used by the headless driver and
// tests, and is safe for concurrent use.
type Queue struct {
	mu     sync.Mutex
	events []Event
}

var _ Source = new(Queue)

// Push appends events to the end of the queue.
func (queue *Queue) Push(events ...Event) {
	queue.mu.Lock()
	queue.events = append(queue.events, events...)
	queue.mu.Unlock()
}

func (queue *Queue) Poll() (Event, bool) {
	queue.mu.Lock()
	defer queue.mu.Unlock()
	if len(queue.events) == 0 {
		return Event{}, false
	}
	ev := queue.events[0]
	queue.events = queue.events[1:]
	return ev, true
}

// Len is the number of pending events.
func (queue *Queue) Len() int {
	queue.mu.Lock()
	defer queue.mu.Unlock()
	return len(queue.events)
}

// Package eventbus provides a typed publish/subscribe event bus for
// cross-component communication within dispatch.
package eventbus

import (
	"context"
	"sync"
)

// Event names a bus event.
type Event string

// All bus events. Keep list sorted A-Z.
const (
	EventCaseOpened  Event = "case.opened"
	EventTodoCreated Event = "todo.created"
	EventTodoDeleted Event = "todo.deleted"
	EventTodoEdited  Event = "todo.edited"
	EventTodoToggled Event = "todo.toggled"
	EventTUIStarted  Event = "tui.started"
	EventTUIStopped  Event = "tui.stopped"
)

type envelope struct {
	event   Event
	payload any
}

// EventBus is a buffered, drop-on-full pub/sub bus. Publishing never blocks
// the UI thread; when the buffer is full the event is dropped and the OnDrop
// hooks fire.
type EventBus struct {
	ch    chan envelope
	hooks hooks

	mu   sync.RWMutex
	subs map[Event][]func(any)
}

// New creates an EventBus with the given buffer size.
func New(buffer int) *EventBus {
	if buffer <= 0 {
		buffer = 64
	}
	return &EventBus{
		ch:   make(chan envelope, buffer),
		subs: make(map[Event][]func(any)),
	}
}

// Start runs the dispatch loop until ctx is cancelled. Subscriber panics are
// recovered and reported through OnPanic hooks.
func (bus *EventBus) Start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case env := <-bus.ch:
			bus.dispatch(env)
		}
	}
}

func (bus *EventBus) dispatch(env envelope) {
	bus.mu.RLock()
	subs := make([]func(any), len(bus.subs[env.event]))
	copy(subs, bus.subs[env.event])
	bus.mu.RUnlock()

	for _, fn := range subs {
		bus.safeCall(env, fn)
	}
}

func (bus *EventBus) safeCall(env envelope, fn func(any)) {
	defer func() {
		if r := recover(); r != nil {
			bus.runOnPanic(env.event, env.payload, r)
		}
	}()
	fn(env.payload)
}

// subscribe registers a raw handler. Used by the typed Subscribe* helpers.
func (bus *EventBus) subscribe(event Event, fn func(any)) {
	bus.mu.Lock()
	bus.subs[event] = append(bus.subs[event], fn)
	bus.mu.Unlock()
	bus.runOnSubscribe(event)
}

// send enqueues an event and fires hooks. Used by the typed Publish* methods.
func (bus *EventBus) send(event Event, payload any) {
	select {
	case bus.ch <- envelope{event: event, payload: payload}:
		bus.runOnPublish(event, payload)
	default:
		bus.runOnDrop(event, payload)
	}
}

package eventbus

import (
	"github.com/careops/dispatch/internal/core/casefile"
	"github.com/careops/dispatch/internal/core/todo"
)

// TodoCreatedPayload is emitted when a new to-do item is created.
type TodoCreatedPayload struct {
	Item *todo.Item
}

// TodoToggledPayload is emitted when an item's status flips.
type TodoToggledPayload struct {
	Item *todo.Item
}

// TodoEditedPayload is emitted when an item's content changes.
type TodoEditedPayload struct {
	Item *todo.Item
}

// TodoDeletedPayload is emitted when an item is removed.
type TodoDeletedPayload struct {
	ItemID string
}

// CaseOpenedPayload is emitted when a case's detail panel opens.
type CaseOpenedPayload struct {
	Case *casefile.Case
}

// TUIStartedPayload is emitted when the TUI starts.
type TUIStartedPayload struct{}

// TUIStoppedPayload is emitted when the TUI stops.
type TUIStoppedPayload struct{}

// PublishTodoCreated publishes a todo.created event.
func (bus *EventBus) PublishTodoCreated(p TodoCreatedPayload) { bus.send(EventTodoCreated, p) }

// SubscribeTodoCreated registers a handler for todo.created events.
func (bus *EventBus) SubscribeTodoCreated(fn func(TodoCreatedPayload)) {
	bus.subscribe(EventTodoCreated, func(v any) { fn(v.(TodoCreatedPayload)) })
}

// PublishTodoToggled publishes a todo.toggled event.
func (bus *EventBus) PublishTodoToggled(p TodoToggledPayload) { bus.send(EventTodoToggled, p) }

// SubscribeTodoToggled registers a handler for todo.toggled events.
func (bus *EventBus) SubscribeTodoToggled(fn func(TodoToggledPayload)) {
	bus.subscribe(EventTodoToggled, func(v any) { fn(v.(TodoToggledPayload)) })
}

// PublishTodoEdited publishes a todo.edited event.
func (bus *EventBus) PublishTodoEdited(p TodoEditedPayload) { bus.send(EventTodoEdited, p) }

// SubscribeTodoEdited registers a handler for todo.edited events.
func (bus *EventBus) SubscribeTodoEdited(fn func(TodoEditedPayload)) {
	bus.subscribe(EventTodoEdited, func(v any) { fn(v.(TodoEditedPayload)) })
}

// PublishTodoDeleted publishes a todo.deleted event.
func (bus *EventBus) PublishTodoDeleted(p TodoDeletedPayload) { bus.send(EventTodoDeleted, p) }

// SubscribeTodoDeleted registers a handler for todo.deleted events.
func (bus *EventBus) SubscribeTodoDeleted(fn func(TodoDeletedPayload)) {
	bus.subscribe(EventTodoDeleted, func(v any) { fn(v.(TodoDeletedPayload)) })
}

// PublishCaseOpened publishes a case.opened event.
func (bus *EventBus) PublishCaseOpened(p CaseOpenedPayload) { bus.send(EventCaseOpened, p) }

// SubscribeCaseOpened registers a handler for case.opened events.
func (bus *EventBus) SubscribeCaseOpened(fn func(CaseOpenedPayload)) {
	bus.subscribe(EventCaseOpened, func(v any) { fn(v.(CaseOpenedPayload)) })
}

// PublishTUIStarted publishes a tui.started event.
func (bus *EventBus) PublishTUIStarted(p TUIStartedPayload) { bus.send(EventTUIStarted, p) }

// PublishTUIStopped publishes a tui.stopped event.
func (bus *EventBus) PublishTUIStopped(p TUIStoppedPayload) { bus.send(EventTUIStopped, p) }

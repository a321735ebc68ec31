package shared

import "context"

// EventHandler reacts to domain events. EventTypes narrows delivery to the
// listed types; an empty slice subscribes the handler to everything.
type EventHandler interface {
	Handle(ctx context.Context, event DomainEvent) error
	EventTypes() []string
}

// EventPublisher is the write side of the bus. Application services depend
// on this interface only, so tests can pass a nil bus or a fake.
type EventPublisher interface {
	Publish(ctx context.Context, events ...DomainEvent) error
}

// EventBus adds subscription management and lifecycle control on top of
// publishing. Handlers registered through Subscribe run asynchronously
// between Start and Stop.
type EventBus interface {
	EventPublisher
	Subscribe(handler EventHandler, eventTypes ...string)
	Unsubscribe(handler EventHandler)
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}

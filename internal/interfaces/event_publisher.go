package interfaces

// EventPublisher pushes domain events to an external feed.
type EventPublisher interface {
	Publish(topic string, event any) error
	Close() error
}

package pubsub

import (
	"context"
)

// Topics carried on the application bus. These are console-internal events;
// nothing here crosses the wire to the backend.
const (
	// TopicSessionSignedIn fires after a login or register succeeds.
	TopicSessionSignedIn = "session.signed_in"
	// TopicSessionCleared fires when the session store wipes its state,
	// whether from an explicit logout or an unauthorized broadcast.
	TopicSessionCleared = "session.cleared"
	// TopicToast carries transient user-facing notifications.
	TopicToast = "notify.toast"
)

// Message is the structure passed between components on the bus.
// It is intentionally simple to act as a wrapper for raw data.
type Message struct {
	// Topic identifies the channel the message belongs to (e.g., "session.cleared").
	Topic string
	// UserID identifies the user the event concerns, when known.
	UserID string
	// Payload contains the raw message data (usually JSON).
	Payload []byte
	// Metadata can contain arbitrary key-value pairs for context.
	Metadata map[string]string
}

// Handler defines the function signature for processing a received message.
type Handler func(ctx context.Context, msg Message) error

// Publisher defines the contract for sending messages to the Pub/Sub system.
type Publisher interface {
	Publish(ctx context.Context, msg Message) error
	Close() error
}

// Subscriber defines the contract for receiving messages from the Pub/Sub system.
type Subscriber interface {
	// Subscribe starts listening to the given topic, processing messages
	// with the handler. The subscription runs until the context is canceled.
	Subscribe(ctx context.Context, topic string, handler Handler) error
	Close() error
}

// Package events carries order lifecycle notifications from the order service
// to whoever is interested in them.
//
// The order service emits an OrderEvent after every successful state change.
// Handlers are registered on an InMemoryEventEmitter at startup; the server
// always registers a LogHandler and, when brokers are configured, the Kafka
// publisher from internal/platform/kafka.
//
// Emitting is best effort: the order state change has already been committed
// when the event is emitted, so handler failures are logged, not rolled back.
package events

// ABOUTME: AlertSink interface and basic implementations for alert delivery
// ABOUTME: Provides no-op and log-backed sinks; transport lives behind Sink
package alerts

import (
	"context"
	"encoding/json"
	"log"

	"github.com/harper/vectorguard/internal/models"
)

// Sink is the sole extension point toward a real delivery channel
// (chat-ops, pager, email). Implementations must be safe for concurrent use.
type Sink interface {
	Notify(ctx context.Context, payload models.AlertPayload) error
}

// NoopSink discards every alert. Useful for tests and one-shot CLI runs.
type NoopSink struct{}

// Notify implements Sink
func (NoopSink) Notify(ctx context.Context, payload models.AlertPayload) error {
	return nil
}

// LogSink writes alerts as JSON lines through the standard logger
type LogSink struct{}

// Notify implements Sink
func (LogSink) Notify(ctx context.Context, payload models.AlertPayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	log.Printf("ALERT %s", data)
	return nil
}

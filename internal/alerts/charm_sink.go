// ABOUTME: Charm KV backed alert sink for a cloud-synced alert journal
// ABOUTME: Persists alert payloads under the alert: prefix and reads them back
package alerts

import (
	"context"
	"sort"

	"github.com/harper/vectorguard/internal/charm"
	"github.com/harper/vectorguard/internal/models"
)

// KV is the slice of the charm client the sink needs
type KV interface {
	SetJSON(key string, value interface{}) error
	GetJSON(key string, dest interface{}) error
	ListKeys(prefix string) ([]string, error)
}

// CharmSink journals alert payloads to Charm KV so alerts survive the
// process and sync across machines
type CharmSink struct {
	kv KV
}

// NewCharmSink creates a sink backed by the given KV store
func NewCharmSink(kv KV) *CharmSink {
	return &CharmSink{kv: kv}
}

// Notify implements Sink by writing the payload under its alert key
func (s *CharmSink) Notify(ctx context.Context, payload models.AlertPayload) error {
	return s.kv.SetJSON(charm.AlertKey(payload.AlertID), payload)
}

// ListRecent returns up to limit journaled alerts, newest first.
// Unreadable entries are skipped rather than failing the whole listing.
func (s *CharmSink) ListRecent(limit int) ([]models.AlertPayload, error) {
	keys, err := s.kv.ListKeys(charm.AlertPrefix)
	if err != nil {
		return nil, err
	}

	alerts := make([]models.AlertPayload, 0, len(keys))
	for _, key := range keys {
		var payload models.AlertPayload
		if err := s.kv.GetJSON(key, &payload); err != nil {
			continue
		}
		alerts = append(alerts, payload)
	}

	sort.Slice(alerts, func(i, j int) bool {
		return alerts[i].Timestamp.After(alerts[j].Timestamp)
	})

	if limit > 0 && len(alerts) > limit {
		alerts = alerts[:limit]
	}
	return alerts, nil
}

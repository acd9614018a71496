package refresh

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hllops/pluginkit/internal/store"
	"github.com/hllops/pluginkit/internal/webhook"
)

// Manager keeps a single remote message per (server, webhook) pair
// up to date: each persistent publish edits the previously sent
// message in place when a record of it exists, and only creates a new
// one when it does not. Stale records whose remote message was
// deleted externally are purged so the next cycle starts fresh.
//
// One publisher per key is assumed; the store transaction makes the
// lookup-then-mutate sequence atomic for that store but provides no
// cross-process locking.
type Manager struct {
	store     store.Store
	transport webhook.Transport
	kind      string
}

func NewManager(st store.Store, t webhook.Transport) *Manager {
	return &Manager{
		store:     st,
		transport: t,
		kind:      store.DefaultMessageKind,
	}
}

// Publish sends msg through the webhook. With persistent=false the
// message is sent as a brand-new one and the store is never touched.
// With persistent=true the stored record for (serverID, webhook URL)
// decides between editing in place and creating fresh.
//
// Remote failures never surface as errors: not-found and unclassified
// failures purge the record, transient ones are logged and left for
// the caller's next cycle. The returned id is nil whenever no live
// remote message is known after the call. A non-nil error only
// reports store or transaction faults.
func (m *Manager) Publish(ctx context.Context, serverID int, msg webhook.Message, persistent bool) (*int64, error) {
	if !persistent {
		if _, err := m.transport.Send(ctx, msg); err != nil {
			slog.Warn("one-off webhook send failed", "error", err)
		}
		return nil, nil
	}

	var remoteID *int64
	err := m.store.InTx(ctx, func(tx store.Tx) error {
		rec, err := tx.Fetch(ctx, serverID, m.transport.URL())
		if err != nil {
			return err
		}
		if rec != nil {
			remoteID, err = m.refreshExisting(ctx, tx, *rec, msg)
			return err
		}
		remoteID, err = m.createFresh(ctx, tx, serverID, msg)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("publish self-refreshing message: %w", err)
	}
	return remoteID, nil
}

func (m *Manager) refreshExisting(ctx context.Context, tx store.Tx, rec store.MessageRecord, msg webhook.Message) (*int64, error) {
	err := m.transport.Edit(ctx, rec.RemoteMessageID, msg)
	if err == nil {
		return &rec.RemoteMessageID, nil
	}
	switch webhook.KindOf(err) {
	case webhook.FailureNotFound:
		slog.Error("recorded message no longer exists, deleting record",
			"message_id", rec.RemoteMessageID, "server_id", rec.ServerID)
		return nil, tx.Delete(ctx, rec.ServerID, rec.WebhookURL)
	case webhook.FailureTransient:
		slog.Warn("temporary failure editing message, will retry next cycle",
			"message_id", rec.RemoteMessageID, "error", err)
		return nil, nil
	default:
		slog.Error("unable to edit message, deleting record",
			"message_id", rec.RemoteMessageID, "error", err)
		return nil, tx.Delete(ctx, rec.ServerID, rec.WebhookURL)
	}
}

func (m *Manager) createFresh(ctx context.Context, tx store.Tx, serverID int, msg webhook.Message) (*int64, error) {
	id, err := m.transport.Send(ctx, msg)
	if err != nil {
		if webhook.KindOf(err) == webhook.FailureTransient {
			slog.Warn("temporary failure sending message, will retry next cycle", "error", err)
			return nil, nil
		}
		slog.Error("unable to send message", "error", err)
		// Make sure no stale record survives an unclassified failure.
		return nil, tx.Delete(ctx, serverID, m.transport.URL())
	}
	rec := store.MessageRecord{
		ServerID:        serverID,
		MessageKind:     m.kind,
		RemoteMessageID: id,
		WebhookURL:      m.transport.URL(),
	}
	if err := tx.Insert(ctx, rec); err != nil {
		return nil, err
	}
	slog.Info("created new self-refreshing message", "message_id", id, "server_id", serverID)
	return &id, nil
}

package refresh

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/hllops/pluginkit/internal/store"
	"github.com/hllops/pluginkit/internal/webhook"
)

type mockStore struct {
	records   map[string]store.MessageRecord
	fetchErr  error
	commits   int
	rollbacks int
}

func newMockStore() *mockStore {
	return &mockStore{records: make(map[string]store.MessageRecord)}
}

func (s *mockStore) key(serverID int, webhookURL string) string {
	return fmt.Sprintf("%d|%s", serverID, webhookURL)
}

func (s *mockStore) InTx(_ context.Context, fn func(store.Tx) error) error {
	staged := make(map[string]store.MessageRecord, len(s.records))
	for k, v := range s.records {
		staged[k] = v
	}
	if err := fn(&mockTx{store: s, staged: staged}); err != nil {
		s.rollbacks++
		return err
	}
	s.records = staged
	s.commits++
	return nil
}

type mockTx struct {
	store  *mockStore
	staged map[string]store.MessageRecord
}

func (t *mockTx) Fetch(_ context.Context, serverID int, webhookURL string) (*store.MessageRecord, error) {
	if t.store.fetchErr != nil {
		return nil, t.store.fetchErr
	}
	rec, ok := t.staged[t.store.key(serverID, webhookURL)]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (t *mockTx) Insert(_ context.Context, rec store.MessageRecord) error {
	t.staged[t.store.key(rec.ServerID, rec.WebhookURL)] = rec
	return nil
}

func (t *mockTx) Delete(_ context.Context, serverID int, webhookURL string) error {
	delete(t.staged, t.store.key(serverID, webhookURL))
	return nil
}

type mockTransport struct {
	url       string
	nextID    int64
	sendErr   error
	editErr   error
	sendCalls int
	editCalls []int64
}

func (t *mockTransport) Send(_ context.Context, _ webhook.Message) (int64, error) {
	t.sendCalls++
	if t.sendErr != nil {
		return 0, t.sendErr
	}
	t.nextID++
	return t.nextID, nil
}

func (t *mockTransport) Edit(_ context.Context, messageID int64, _ webhook.Message) error {
	t.editCalls = append(t.editCalls, messageID)
	return t.editErr
}

func (t *mockTransport) URL() string {
	return t.url
}

const testServerID = 1

func newTestManager() (*Manager, *mockStore, *mockTransport) {
	st := newMockStore()
	tr := &mockTransport{url: "https://discord.com/api/webhooks/1/tok", nextID: 100}
	return NewManager(st, tr), st, tr
}

func seedRecord(st *mockStore, tr *mockTransport, messageID int64) {
	st.records[st.key(testServerID, tr.url)] = store.MessageRecord{
		ServerID:        testServerID,
		MessageKind:     store.DefaultMessageKind,
		RemoteMessageID: messageID,
		WebhookURL:      tr.url,
	}
}

func TestPublish_NonPersistentSkipsStore(t *testing.T) {
	m, st, tr := newTestManager()

	id, err := m.Publish(context.Background(), testServerID, webhook.Message{Content: "hi"}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != nil {
		t.Fatalf("expected nil id, got %d", *id)
	}
	if tr.sendCalls != 1 {
		t.Fatalf("expected 1 send, got %d", tr.sendCalls)
	}
	if st.commits != 0 || st.rollbacks != 0 || len(st.records) != 0 {
		t.Fatalf("store was touched: commits=%d rollbacks=%d records=%d", st.commits, st.rollbacks, len(st.records))
	}
}

func TestPublish_SecondCallEditsInsteadOfCreating(t *testing.T) {
	m, st, tr := newTestManager()

	first, err := m.Publish(context.Background(), testServerID, webhook.Message{Content: "a"}, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first == nil || *first != 101 {
		t.Fatalf("unexpected first id: %v", first)
	}
	if len(st.records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(st.records))
	}

	second, err := m.Publish(context.Background(), testServerID, webhook.Message{Content: "b"}, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second == nil || *second != 101 {
		t.Fatalf("unexpected second id: %v", second)
	}
	if tr.sendCalls != 1 {
		t.Fatalf("expected exactly one send, got %d", tr.sendCalls)
	}
	if len(tr.editCalls) != 1 || tr.editCalls[0] != 101 {
		t.Fatalf("expected one edit of message 101, got %v", tr.editCalls)
	}
	if len(st.records) != 1 {
		t.Fatalf("expected exactly one record, got %d", len(st.records))
	}
	if st.commits != 2 {
		t.Fatalf("expected 2 commits, got %d", st.commits)
	}
}

func TestPublish_NotFoundPurgesRecordThenRecreates(t *testing.T) {
	m, st, tr := newTestManager()
	seedRecord(st, tr, 55)
	tr.editErr = &webhook.Error{Kind: webhook.FailureNotFound, Err: errors.New("unknown message")}

	id, err := m.Publish(context.Background(), testServerID, webhook.Message{}, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != nil {
		t.Fatalf("expected nil id after purge, got %d", *id)
	}
	if len(st.records) != 0 {
		t.Fatalf("stale record not purged")
	}

	tr.editErr = nil
	id, err = m.Publish(context.Background(), testServerID, webhook.Message{}, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id == nil || *id != 101 {
		t.Fatalf("expected fresh message 101, got %v", id)
	}
	if len(st.records) != 1 {
		t.Fatalf("expected recreated record, got %d", len(st.records))
	}
}

func TestPublish_TransientEditKeepsRecord(t *testing.T) {
	m, st, tr := newTestManager()
	seedRecord(st, tr, 55)
	tr.editErr = &webhook.Error{Kind: webhook.FailureTransient, Err: errors.New("gateway timeout")}

	id, err := m.Publish(context.Background(), testServerID, webhook.Message{}, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != nil {
		t.Fatalf("expected nil id, got %d", *id)
	}
	rec, ok := st.records[st.key(testServerID, tr.url)]
	if !ok || rec.RemoteMessageID != 55 {
		t.Fatalf("record was not kept: %+v", st.records)
	}
	if tr.sendCalls != 0 {
		t.Fatalf("no new message should be sent on transient failure")
	}
}

func TestPublish_UnclassifiedEditPurgesRecord(t *testing.T) {
	m, st, tr := newTestManager()
	seedRecord(st, tr, 55)
	tr.editErr = errors.New("missing permissions")

	id, err := m.Publish(context.Background(), testServerID, webhook.Message{}, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != nil {
		t.Fatalf("expected nil id, got %d", *id)
	}
	if len(st.records) != 0 {
		t.Fatalf("record should be purged on unclassified failure")
	}
}

func TestPublish_TransientSendLeavesNoRecord(t *testing.T) {
	m, st, tr := newTestManager()
	tr.sendErr = &webhook.Error{Kind: webhook.FailureTransient, Err: errors.New("connection reset")}

	id, err := m.Publish(context.Background(), testServerID, webhook.Message{}, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != nil {
		t.Fatalf("expected nil id, got %d", *id)
	}
	if len(st.records) != 0 {
		t.Fatalf("no record should be written on send failure")
	}
}

func TestPublish_StoreFailureRollsBack(t *testing.T) {
	m, st, tr := newTestManager()
	st.fetchErr = errors.New("connection closed")

	if _, err := m.Publish(context.Background(), testServerID, webhook.Message{}, true); err == nil {
		t.Fatal("expected store error to propagate")
	}
	if st.rollbacks != 1 || st.commits != 0 {
		t.Fatalf("expected rollback, got commits=%d rollbacks=%d", st.commits, st.rollbacks)
	}
	if tr.sendCalls != 0 && len(tr.editCalls) != 0 {
		t.Fatalf("no remote call should happen when the store fails")
	}
}

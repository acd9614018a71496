package publisher

import (
	"context"
	"errors"
	"testing"

	"github.com/hllops/pluginkit/internal/config"
	"github.com/hllops/pluginkit/internal/rcon"
	"github.com/hllops/pluginkit/internal/refresh"
	"github.com/hllops/pluginkit/internal/schedule"
	"github.com/hllops/pluginkit/internal/store"
	"github.com/hllops/pluginkit/internal/teamview"
	"github.com/hllops/pluginkit/internal/webhook"
)

type memStore struct {
	rec *store.MessageRecord
}

func (s *memStore) InTx(_ context.Context, fn func(store.Tx) error) error {
	return fn(s)
}

func (s *memStore) Fetch(_ context.Context, serverID int, webhookURL string) (*store.MessageRecord, error) {
	if s.rec != nil && s.rec.ServerID == serverID && s.rec.WebhookURL == webhookURL {
		rec := *s.rec
		return &rec, nil
	}
	return nil, nil
}

func (s *memStore) Insert(_ context.Context, rec store.MessageRecord) error {
	s.rec = &rec
	return nil
}

func (s *memStore) Delete(_ context.Context, _ int, _ string) error {
	s.rec = nil
	return nil
}

type stubTransport struct {
	sends int
	edits int
}

func (t *stubTransport) Send(context.Context, webhook.Message) (int64, error) {
	t.sends++
	return 99, nil
}

func (t *stubTransport) Edit(context.Context, int64, webhook.Message) error {
	t.edits++
	return nil
}

func (t *stubTransport) URL() string {
	return "https://discord.com/api/webhooks/1/tok"
}

type stubRCON struct {
	tv  teamview.TeamView
	err error
}

func (c *stubRCON) TeamView(context.Context) (teamview.TeamView, error) {
	return c.tv, c.err
}

func (c *stubRCON) VIPRecords(context.Context) ([]rcon.VIPRecord, error) {
	return nil, nil
}

func (c *stubRCON) RecentLogs(context.Context, rcon.LogFilter) ([]rcon.LogEntry, error) {
	return nil, nil
}

func newPublishingManager(rc rcon.Client, tr *stubTransport) *Manager {
	var sched schedule.Schedule
	for i := range sched {
		sched[i] = schedule.AllDay()
	}
	cfg := &config.Config{
		ServerID:           1,
		ServerName:         "Test Server",
		RefreshIntervalSec: 1,
		Schedule:           sched,
	}
	refresher := refresh.NewManager(&memStore{}, tr)
	return NewManager(cfg, rc, refresher, &stubResolver{})
}

func TestPublishOnce_RefreshesInPlace(t *testing.T) {
	tr := &stubTransport{}
	rc := &stubRCON{tv: teamview.TeamView{
		teamview.TeamAllies: {Count: 5},
		teamview.TeamAxis:   {Count: 5},
	}}
	m := newPublishingManager(rc, tr)

	m.publishOnce(context.Background())
	m.publishOnce(context.Background())

	if tr.sends != 1 {
		t.Fatalf("expected exactly one send, got %d", tr.sends)
	}
	if tr.edits != 1 {
		t.Fatalf("expected second cycle to edit, got %d edits", tr.edits)
	}
}

func TestPublishOnce_RCONFailureStillPublishes(t *testing.T) {
	tr := &stubTransport{}
	rc := &stubRCON{err: errors.New("rcon unreachable")}
	m := newPublishingManager(rc, tr)

	m.publishOnce(context.Background())

	if tr.sends != 1 {
		t.Fatalf("unavailable view should still be published, got %d sends", tr.sends)
	}
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	tr := &stubTransport{}
	rc := &stubRCON{tv: teamview.TeamView{}}
	m := newPublishingManager(rc, tr)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := m.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

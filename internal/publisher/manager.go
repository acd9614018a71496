package publisher

import (
	"context"
	"log/slog"
	"time"

	"github.com/hllops/pluginkit/internal/config"
	"github.com/hllops/pluginkit/internal/profile"
	"github.com/hllops/pluginkit/internal/rcon"
	"github.com/hllops/pluginkit/internal/refresh"
	"github.com/hllops/pluginkit/internal/schedule"
	"github.com/hllops/pluginkit/internal/teamview"
)

// Manager drives the live server-status message: inside the activity
// schedule it publishes a fresh snapshot through the self-refreshing
// message every refresh interval, outside it sleeps until the next
// window opens.
type Manager struct {
	cfg       *config.Config
	rcon      rcon.Client
	refresher *refresh.Manager
	profiles  profile.Resolver
}

func NewManager(cfg *config.Config, rc rcon.Client, refresher *refresh.Manager, profiles profile.Resolver) *Manager {
	return &Manager{
		cfg:       cfg,
		rcon:      rc,
		refresher: refresher,
		profiles:  profiles,
	}
}

// Run publishes until ctx is canceled. Remote failures never stop the
// loop; the only returned error is ctx.Err().
func (m *Manager) Run(ctx context.Context) error {
	for {
		wait := schedule.SecondsUntilNextWindow(m.cfg.Schedule, time.Now())
		if wait > 0 {
			slog.Info("outside activity window", "sleep_secs", wait)
			if err := sleepCtx(ctx, time.Duration(wait)*time.Second); err != nil {
				return err
			}
			continue
		}
		m.publishOnce(ctx)
		if err := sleepCtx(ctx, time.Duration(m.cfg.RefreshIntervalSec)*time.Second); err != nil {
			return err
		}
	}
}

func (m *Manager) publishOnce(ctx context.Context) {
	view := teamview.FetchAndFlatten(ctx, m.rcon)
	msg := m.buildLiveMessage(ctx, view)
	id, err := m.refresher.Publish(ctx, m.cfg.ServerID, msg, true)
	if err != nil {
		slog.Error("live message publish failed", "error", err)
		return
	}
	if id == nil {
		slog.Warn("no live message after publish, retrying next cycle")
		return
	}
	slog.Debug("live message refreshed", "message_id", *id, "players", len(view.AllPlayers))
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

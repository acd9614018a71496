package rcon

import (
	"context"
	"errors"
	"time"

	"github.com/hllops/pluginkit/internal/teamview"
)

// VIPRecord is one entry of the server's VIP list. A nil Expiration
// means the VIP never expires.
type VIPRecord struct {
	PlayerID   string
	Expiration *time.Time
}

// LogFilter narrows a recent-logs query to specific actions.
type LogFilter struct {
	Actions     []string
	ExactAction bool
}

type LogEntry struct {
	Action      string
	Message     string
	TimestampMS int64
}

// Client is the management API of the running game server. All calls
// are synchronous with a bounded timeout and are not retried here;
// retry is the caller's cadence.
type Client interface {
	TeamView(ctx context.Context) (teamview.TeamView, error)
	VIPRecords(ctx context.Context) ([]VIPRecord, error)
	RecentLogs(ctx context.Context, filter LogFilter) ([]LogEntry, error)
}

const matchStartAction = "MATCH START"

var ErrNoMatchStart = errors.New("no match start entry in recent logs")

// VIPExpiresWithin reports whether the player has no VIP at all or a
// VIP expiring in less than the given duration. A VIP without an
// expiration never expires and reports false.
func VIPExpiresWithin(ctx context.Context, c Client, playerID string, within time.Duration) (bool, error) {
	records, err := c.VIPRecords(ctx)
	if err != nil {
		return false, err
	}
	deadline := time.Now().UTC().Add(within)
	for _, rec := range records {
		if rec.PlayerID != playerID {
			continue
		}
		if rec.Expiration == nil {
			return false, nil
		}
		return rec.Expiration.Before(deadline), nil
	}
	// Player not in the VIP list at all.
	return true, nil
}

// MatchElapsed returns how long the current match has been running,
// measured from the newest MATCH START log entry.
func MatchElapsed(ctx context.Context, c Client) (time.Duration, error) {
	logs, err := c.RecentLogs(ctx, LogFilter{Actions: []string{matchStartAction}, ExactAction: true})
	if err != nil {
		return 0, err
	}
	if len(logs) == 0 {
		return 0, ErrNoMatchStart
	}
	start := time.UnixMilli(logs[0].TimestampMS)
	return time.Since(start), nil
}

package store

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

var migrationStatements = []string{
	`CREATE TABLE IF NOT EXISTS stats_messages (
		server_number INTEGER NOT NULL,
		message_type TEXT NOT NULL DEFAULT 'live',
		message_id BIGINT NOT NULL,
		webhook TEXT NOT NULL,
		PRIMARY KEY (server_number, message_type, message_id, webhook)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_stats_messages_key ON stats_messages (server_number, webhook)`,
}

func RunMigration(ctx context.Context, pool *pgxpool.Pool) error {
	for _, s := range migrationStatements {
		stmt := strings.TrimSpace(s)
		if stmt == "" {
			continue
		}
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

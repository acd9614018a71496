package store

import (
	"context"
	"errors"

	"github.com/hllops/pluginkit/internal/store"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) store.Store {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) InTx(ctx context.Context, fn func(store.Tx) error) error {
	return pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		return fn(&postgresTx{tx: tx})
	})
}

type postgresTx struct {
	tx pgx.Tx
}

func (t *postgresTx) Fetch(ctx context.Context, serverID int, webhookURL string) (*store.MessageRecord, error) {
	row := t.tx.QueryRow(ctx,
		`SELECT server_number, message_type, message_id, webhook
		 FROM stats_messages WHERE server_number = $1 AND webhook = $2
		 LIMIT 1`,
		serverID, webhookURL)
	var rec store.MessageRecord
	err := row.Scan(&rec.ServerID, &rec.MessageKind, &rec.RemoteMessageID, &rec.WebhookURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (t *postgresTx) Insert(ctx context.Context, rec store.MessageRecord) error {
	kind := rec.MessageKind
	if kind == "" {
		kind = store.DefaultMessageKind
	}
	_, err := t.tx.Exec(ctx,
		`INSERT INTO stats_messages (server_number, message_type, message_id, webhook)
		 VALUES ($1, $2, $3, $4)`,
		rec.ServerID, kind, rec.RemoteMessageID, rec.WebhookURL)
	return err
}

func (t *postgresTx) Delete(ctx context.Context, serverID int, webhookURL string) error {
	_, err := t.tx.Exec(ctx,
		`DELETE FROM stats_messages WHERE server_number = $1 AND webhook = $2`,
		serverID, webhookURL)
	return err
}

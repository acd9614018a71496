package store

import "context"

// DefaultMessageKind tags the periodically refreshed live message.
const DefaultMessageKind = "live"

// MessageRecord binds one externally-sent message to the server and
// webhook it was published for. The remote message id never changes
// once the record exists; a record is deleted when the remote message
// is confirmed gone or superseded.
type MessageRecord struct {
	ServerID        int
	MessageKind     string
	RemoteMessageID int64
	WebhookURL      string
}

// Tx is the set of record operations available inside one transaction.
type Tx interface {
	// Fetch returns the record for (serverID, webhookURL), or nil
	// when none exists.
	Fetch(ctx context.Context, serverID int, webhookURL string) (*MessageRecord, error)
	Insert(ctx context.Context, rec MessageRecord) error
	// Delete removes the record for (serverID, webhookURL) if present.
	Delete(ctx context.Context, serverID int, webhookURL string) error
}

// Store runs record operations inside a scoped transaction: fn's
// error rolls back, a nil return commits, and the transaction is
// released on every path.
type Store interface {
	InTx(ctx context.Context, fn func(Tx) error) error
}

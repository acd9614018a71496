package webhook

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// Message is the content of one webhook message.
type Message struct {
	Content string
	Embeds  []*discordgo.MessageEmbed
}

// FailureKind classifies a failed Send or Edit so that callers can
// decide whether to purge their record, keep it for a retry, or give
// up, without matching on transport-specific error types.
type FailureKind int

const (
	// FailureTransient covers network faults, rate limits and server
	// errors; the remote message may well still exist.
	FailureTransient FailureKind = iota
	// FailureNotFound means the remote message is confirmed gone.
	FailureNotFound
	// FailureOther is any remaining, unclassified failure.
	FailureOther
)

func (k FailureKind) String() string {
	switch k {
	case FailureTransient:
		return "transient"
	case FailureNotFound:
		return "not found"
	default:
		return "other"
	}
}

type Error struct {
	Kind FailureKind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("webhook failure (%s): %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf extracts the failure kind from a transport error. Errors
// that do not carry a kind are treated as unclassified.
func KindOf(err error) FailureKind {
	var werr *Error
	if errors.As(err, &werr) {
		return werr.Kind
	}
	return FailureOther
}

// Transport sends and edits messages on one webhook endpoint. Errors
// returned by Send and Edit carry a FailureKind.
type Transport interface {
	Send(ctx context.Context, msg Message) (int64, error)
	Edit(ctx context.Context, messageID int64, msg Message) error
	URL() string
}

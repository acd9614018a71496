package webhook

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/hllops/pluginkit/internal/webhook"
)

// DiscordTransport executes and edits messages on one Discord webhook.
// Webhook requests authenticate through the token embedded in the URL,
// so the underlying session carries no bot token.
type DiscordTransport struct {
	session    *discordgo.Session
	webhookURL string
	id         string
	token      string
}

func NewDiscordTransport(webhookURL string) (webhook.Transport, error) {
	id, token, err := parseWebhookURL(webhookURL)
	if err != nil {
		return nil, err
	}
	s, err := discordgo.New("")
	if err != nil {
		return nil, err
	}
	return &DiscordTransport{
		session:    s,
		webhookURL: webhookURL,
		id:         id,
		token:      token,
	}, nil
}

func (t *DiscordTransport) URL() string {
	return t.webhookURL
}

func (t *DiscordTransport) Send(ctx context.Context, msg webhook.Message) (int64, error) {
	m, err := t.session.WebhookExecute(t.id, t.token, true, &discordgo.WebhookParams{
		Content: msg.Content,
		Embeds:  msg.Embeds,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return 0, classify(err)
	}
	id, err := strconv.ParseInt(m.ID, 10, 64)
	if err != nil {
		return 0, &webhook.Error{
			Kind: webhook.FailureOther,
			Err:  fmt.Errorf("unparsable message id %q: %w", m.ID, err),
		}
	}
	return id, nil
}

func (t *DiscordTransport) Edit(ctx context.Context, messageID int64, msg webhook.Message) error {
	_, err := t.session.WebhookMessageEdit(t.id, t.token, strconv.FormatInt(messageID, 10), &discordgo.WebhookEdit{
		Content: &msg.Content,
		Embeds:  &msg.Embeds,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return classify(err)
	}
	return nil
}

// parseWebhookURL splits a https://discord.com/api/webhooks/<id>/<token>
// URL into its id and token.
func parseWebhookURL(webhookURL string) (id, token string, err error) {
	u, err := url.Parse(webhookURL)
	if err != nil {
		return "", "", fmt.Errorf("invalid webhook url: %w", err)
	}
	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i, seg := range segments {
		if seg == "webhooks" && i+2 < len(segments) {
			return segments[i+1], segments[i+2], nil
		}
	}
	return "", "", fmt.Errorf("webhook url %q has no webhooks/<id>/<token> path", webhookURL)
}

func classify(err error) *webhook.Error {
	var rest *discordgo.RESTError
	if errors.As(err, &rest) {
		status := 0
		if rest.Response != nil {
			status = rest.Response.StatusCode
		}
		switch {
		case status == http.StatusNotFound:
			return &webhook.Error{Kind: webhook.FailureNotFound, Err: err}
		case status == http.StatusTooManyRequests || status >= http.StatusInternalServerError:
			return &webhook.Error{Kind: webhook.FailureTransient, Err: err}
		default:
			return &webhook.Error{Kind: webhook.FailureOther, Err: err}
		}
	}
	// No REST response at all means the request never completed.
	return &webhook.Error{Kind: webhook.FailureTransient, Err: err}
}

package rcon

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hllops/pluginkit/internal/rcon"
	"github.com/hllops/pluginkit/internal/teamview"
)

const requestTimeout = 10 * time.Second

// HTTPClient talks to the management tool's HTTP API with a bearer
// token. Requests carry a fixed timeout and are never retried here.
type HTTPClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewHTTPClient(baseURL, apiKey string) rcon.Client {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: requestTimeout},
	}
}

// apiEnvelope is the response wrapper every API endpoint uses.
type apiEnvelope struct {
	Result json.RawMessage `json:"result"`
	Failed bool            `json:"failed"`
	Error  *string         `json:"error"`
}

func (c *HTTPClient) get(ctx context.Context, path string, query url.Values, result any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s returned status %d", path, resp.StatusCode)
	}

	var envelope apiEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("%s: malformed response: %w", path, err)
	}
	if envelope.Failed {
		msg := "command failed"
		if envelope.Error != nil {
			msg = *envelope.Error
		}
		return fmt.Errorf("%s: %s", path, msg)
	}
	if err := json.Unmarshal(envelope.Result, result); err != nil {
		return fmt.Errorf("%s: malformed result: %w", path, err)
	}
	return nil
}

func (c *HTTPClient) TeamView(ctx context.Context) (teamview.TeamView, error) {
	var tv teamview.TeamView
	if err := c.get(ctx, "/api/get_team_view", nil, &tv); err != nil {
		return nil, err
	}
	return tv, nil
}

type vipEntry struct {
	PlayerID      string  `json:"player_id"`
	Name          string  `json:"name"`
	VIPExpiration *string `json:"vip_expiration"`
}

func (c *HTTPClient) VIPRecords(ctx context.Context) ([]rcon.VIPRecord, error) {
	var entries []vipEntry
	if err := c.get(ctx, "/api/get_vip_ids", nil, &entries); err != nil {
		return nil, err
	}
	records := make([]rcon.VIPRecord, 0, len(entries))
	for _, e := range entries {
		rec := rcon.VIPRecord{PlayerID: e.PlayerID}
		if e.VIPExpiration != nil {
			expiration, err := time.Parse(time.RFC3339, *e.VIPExpiration)
			if err != nil {
				return nil, fmt.Errorf("vip expiration %q for %s: %w", *e.VIPExpiration, e.PlayerID, err)
			}
			rec.Expiration = &expiration
		}
		records = append(records, rec)
	}
	return records, nil
}

type recentLogs struct {
	Logs []struct {
		Action      string `json:"action"`
		Message     string `json:"message"`
		TimestampMS int64  `json:"timestamp_ms"`
	} `json:"logs"`
}

func (c *HTTPClient) RecentLogs(ctx context.Context, filter rcon.LogFilter) ([]rcon.LogEntry, error) {
	query := url.Values{}
	for _, action := range filter.Actions {
		query.Add("filter_action", action)
	}
	if filter.ExactAction {
		query.Set("exact_action", "true")
	}

	var parsed recentLogs
	if err := c.get(ctx, "/api/get_recent_logs", query, &parsed); err != nil {
		return nil, err
	}
	entries := make([]rcon.LogEntry, 0, len(parsed.Logs))
	for _, l := range parsed.Logs {
		entries = append(entries, rcon.LogEntry{
			Action:      l.Action,
			Message:     l.Message,
			TimestampMS: l.TimestampMS,
		})
	}
	return entries, nil
}

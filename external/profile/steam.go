package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/hllops/pluginkit/internal/profile"
)

const (
	defaultSummaryEndpoint = "https://api.steampowered.com/ISteamUser/GetPlayerSummaries/v0002/"
	lookupTimeout          = 10 * time.Second
)

type SteamResolver struct {
	apiKey   string
	size     profile.AvatarSize
	endpoint string
	client   *http.Client
}

func NewSteamResolver(apiKey string) profile.Resolver {
	return &SteamResolver{
		apiKey:   apiKey,
		size:     profile.AvatarMedium,
		endpoint: defaultSummaryEndpoint,
		client:   &http.Client{Timeout: lookupTimeout},
	}
}

type playerSummary struct {
	Avatar       string `json:"avatar"`
	AvatarMedium string `json:"avatarmedium"`
	AvatarFull   string `json:"avatarfull"`
}

type summaryResponse struct {
	Response struct {
		Players []playerSummary `json:"players"`
	} `json:"response"`
}

// AvatarURL resolves the avatar for a Steam player through the player
// summary API. Game Pass players get the fixed Game Pass image without
// any remote call, and every lookup failure degrades to the default
// Steam image instead of surfacing an error.
func (r *SteamResolver) AvatarURL(ctx context.Context, playerID string) string {
	if profile.Classify(playerID) != profile.IDSteam {
		return profile.DefaultGamePassAvatarURL
	}
	if r.apiKey == "" {
		return profile.DefaultSteamAvatarURL
	}
	avatar, err := r.lookup(ctx, playerID)
	if err != nil {
		slog.Debug("steam avatar lookup failed", "player_id", playerID, "error", err)
		return profile.DefaultSteamAvatarURL
	}
	return avatar
}

func (r *SteamResolver) lookup(ctx context.Context, playerID string) (string, error) {
	query := url.Values{}
	query.Set("key", r.apiKey)
	query.Set("steamids", playerID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return "", err
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("player summary API returned status %d", resp.StatusCode)
	}

	var parsed summaryResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("malformed player summary response: %w", err)
	}
	if len(parsed.Response.Players) == 0 {
		return "", fmt.Errorf("no player summary for id %s", playerID)
	}
	avatar := parsed.Response.Players[0].avatarForSize(r.size)
	if avatar == "" {
		return "", fmt.Errorf("player summary has no %s field", r.size)
	}
	return avatar, nil
}

func (p playerSummary) avatarForSize(size profile.AvatarSize) string {
	switch size {
	case profile.AvatarSmall:
		return p.Avatar
	case profile.AvatarFull:
		return p.AvatarFull
	default:
		return p.AvatarMedium
	}
}

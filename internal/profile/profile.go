package profile

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Steam identifiers (steamID64) are always 17 digits; Game Pass
// identifiers issued by the game server are longer opaque strings.
const steamIDLength = 17

type IDKind int

const (
	IDUnrecognized IDKind = iota
	IDSteam
	IDGamePass
)

func (k IDKind) String() string {
	switch k {
	case IDSteam:
		return "steam"
	case IDGamePass:
		return "gamepass"
	default:
		return "unrecognized"
	}
}

// Classify determines the identity provider behind a player id.
func Classify(playerID string) IDKind {
	switch {
	case len(playerID) == steamIDLength:
		return IDSteam
	case len(playerID) > steamIDLength:
		return IDGamePass
	default:
		return IDUnrecognized
	}
}

const (
	steamProfileBaseURL    = "https://steamcommunity.com/profiles/"
	gamePassProfileBaseURL = "https://xboxgamertag.com/search/"

	// DefaultSteamAvatarURL is returned when a Steam avatar lookup is
	// not possible or fails.
	DefaultSteamAvatarURL = "https://steamcdn-a.akamaihd.net/steamcommunity/public/images/avatars/b5/b5bd56c1aa4644a474a2e4972be27ef9e82e517e_medium.jpg"
	// DefaultGamePassAvatarURL is the fixed avatar for Game Pass
	// players, who have no queryable avatar.
	DefaultGamePassAvatarURL = "https://sc.filehippo.net/images/t_app-logo-l,f_auto,dpr_auto/p/2cf512ee-a9da-11e8-8bdc-02420a000abe/3169937124/xbox-game-pass-logo"
)

var ErrUnrecognizedPlayerID = errors.New("unrecognized player id format")

// ExternalProfileURL builds the public profile page URL for a player.
// Steam profiles are addressed by id, Game Pass profiles by player
// name with spaces replaced by hyphens.
func ExternalProfileURL(playerID, playerName string) (string, error) {
	switch Classify(playerID) {
	case IDSteam:
		return steamProfileBaseURL + playerID, nil
	case IDGamePass:
		return gamePassProfileBaseURL + strings.ReplaceAll(playerName, " ", "-"), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnrecognizedPlayerID, playerID)
	}
}

// AvatarSize selects one of the three avatar variants exposed by the
// Steam player summary API.
type AvatarSize string

const (
	AvatarSmall  AvatarSize = "avatar"       // 32x32
	AvatarMedium AvatarSize = "avatarmedium" // 64x64
	AvatarFull   AvatarSize = "avatarfull"   // 184x184
)

// Resolver resolves a player id to an avatar image URL. Lookups never
// fail: implementations fall back to the provider default image on
// any error.
type Resolver interface {
	AvatarURL(ctx context.Context, playerID string) string
}

package teamview

import "context"

// Team and squad names as reported by the game server.
const (
	TeamAllies = "allies"
	TeamAxis   = "axis"

	SquadTypeInfantry = "infantry"
	SquadTypeRecon    = "recon"
	SquadTypeArmor    = "armor"
)

// teamOrder fixes the iteration order over the snapshot.
var teamOrder = [2]string{TeamAllies, TeamAxis}

type Player struct {
	Name     string `json:"name"`
	PlayerID string `json:"player_id"`
	Team     string `json:"team"`
	Unit     string `json:"unit_name"`
	Role     string `json:"role"`
	Level    int    `json:"level"`
	Kills    int    `json:"kills"`
	Deaths   int    `json:"deaths"`
	Combat   int    `json:"combat"`
	Offense  int    `json:"offense"`
	Defense  int    `json:"defense"`
	Support  int    `json:"support"`
	IsVIP    bool   `json:"is_vip"`
}

type Squad struct {
	Type      string   `json:"type"`
	Players   []Player `json:"players"`
	HasLeader bool     `json:"has_leader"`
	Kills     int      `json:"kills"`
	Deaths    int      `json:"deaths"`
	Combat    int      `json:"combat"`
	Offense   int      `json:"offense"`
	Defense   int      `json:"defense"`
	Support   int      `json:"support"`
}

type Team struct {
	Commander *Player          `json:"commander"`
	Squads    map[string]Squad `json:"squads"`
	Count     int              `json:"count"`
	VIPCount  int              `json:"vip_count"`
	Kills     int              `json:"kills"`
	Deaths    int              `json:"deaths"`
	Combat    int              `json:"combat"`
	Offense   int              `json:"offense"`
	Defense   int              `json:"defense"`
	Support   int              `json:"support"`
}

// TeamView is the nested status snapshot returned by the game server,
// keyed by team name.
type TeamView map[string]Team

// SquadSummary is a squad stripped of its player list and tagged with
// the team it belongs to.
type SquadSummary struct {
	Team      string
	Type      string
	HasLeader bool
	Kills     int
	Deaths    int
	Combat    int
	Offense   int
	Defense   int
	Support   int
}

func (s Squad) summary(team string) SquadSummary {
	return SquadSummary{
		Team:      team,
		Type:      s.Type,
		HasLeader: s.HasLeader,
		Kills:     s.Kills,
		Deaths:    s.Deaths,
		Combat:    s.Combat,
		Offense:   s.Offense,
		Defense:   s.Defense,
		Support:   s.Support,
	}
}

// NamedSquad pairs a squad summary with its squad name.
type NamedSquad struct {
	Name  string
	Squad SquadSummary
}

// TeamSummary is a team's aggregate fields without its squads and
// commander.
type TeamSummary struct {
	Name     string
	Count    int
	VIPCount int
	Kills    int
	Deaths   int
	Combat   int
	Offense  int
	Defense  int
	Support  int
}

func (t Team) summary(name string) TeamSummary {
	return TeamSummary{
		Name:     name,
		Count:    t.Count,
		VIPCount: t.VIPCount,
		Kills:    t.Kills,
		Deaths:   t.Deaths,
		Combat:   t.Combat,
		Offense:  t.Offense,
		Defense:  t.Defense,
		Support:  t.Support,
	}
}

// FlattenedView reshapes the snapshot into flat per-category lists.
// It is recomputed on every call and never persisted. An all-empty
// view means "data unavailable", not "nobody online".
type FlattenedView struct {
	Teams           []TeamSummary
	AllPlayers      []Player
	Commanders      []Player
	InfantryPlayers []Player
	ArmorPlayers    []Player
	InfantrySquads  []NamedSquad
	ArmorSquads     []NamedSquad
}

// Source is the part of the game server client the flattener needs.
type Source interface {
	TeamView(ctx context.Context) (TeamView, error)
}

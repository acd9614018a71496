package teamview

import (
	"context"
	"log/slog"
	"sort"
)

// Flatten walks the allies and axis branches of the snapshot and
// gathers players, commanders and squads into per-category lists.
// Infantry and recon squads land in the infantry bucket, armor squads
// in the armor bucket; squads of any other type are not reported.
// Only two categories exist in the output.
func Flatten(tv TeamView) FlattenedView {
	var view FlattenedView

	for _, teamName := range teamOrder {
		team, ok := tv[teamName]
		if !ok {
			continue
		}

		if team.Commander != nil {
			view.AllPlayers = append(view.AllPlayers, *team.Commander)
			view.Commanders = append(view.Commanders, *team.Commander)
		}

		for _, squadName := range sortedSquadNames(team.Squads) {
			squad := team.Squads[squadName]
			named := NamedSquad{Name: squadName, Squad: squad.summary(teamName)}

			switch squad.Type {
			case SquadTypeInfantry, SquadTypeRecon:
				view.AllPlayers = append(view.AllPlayers, squad.Players...)
				view.InfantryPlayers = append(view.InfantryPlayers, squad.Players...)
				view.InfantrySquads = append(view.InfantrySquads, named)
			case SquadTypeArmor:
				view.AllPlayers = append(view.AllPlayers, squad.Players...)
				view.ArmorPlayers = append(view.ArmorPlayers, squad.Players...)
				view.ArmorSquads = append(view.ArmorSquads, named)
			}
		}

		view.Teams = append(view.Teams, team.summary(teamName))
	}

	return view
}

// FetchAndFlatten queries the snapshot and flattens it. A failed
// query logs at error level and yields the all-empty view; callers
// must treat that as "unavailable", never as an empty server.
func FetchAndFlatten(ctx context.Context, src Source) FlattenedView {
	tv, err := src.TeamView(ctx)
	if err != nil {
		slog.Error("team view query failed", "error", err)
		return FlattenedView{}
	}
	return Flatten(tv)
}

func sortedSquadNames(squads map[string]Squad) []string {
	names := make([]string, 0, len(squads))
	for name := range squads {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

package publisher

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/hllops/pluginkit/internal/format"
	"github.com/hllops/pluginkit/internal/profile"
	"github.com/hllops/pluginkit/internal/teamview"
	"github.com/hllops/pluginkit/internal/webhook"
)

const (
	embedAuthorIconURL = "https://styles.redditmedia.com/t5_3ejz4/styles/communityIcon_x51js3a1fr0b1.png"
	// Server seat capacity used to scale the embed color.
	maxPlayers = 100
)

func (m *Manager) buildLiveMessage(ctx context.Context, view teamview.FlattenedView) webhook.Message {
	embed := &discordgo.MessageEmbed{
		Author: &discordgo.MessageEmbedAuthor{
			Name:    m.cfg.ServerName,
			URL:     m.cfg.ServerWebsiteURL,
			IconURL: embedAuthorIconURL,
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if m.cfg.ClanURL != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: m.cfg.ClanURL}
	}

	// An all-empty view means the server data could not be queried,
	// not that nobody is online.
	if len(view.Teams) == 0 {
		embed.Title = "Server status"
		embed.Description = "Server data unavailable."
		embed.Color = neutralColor()
		return webhook.Message{Embeds: []*discordgo.MessageEmbed{embed}}
	}

	embed.Title = fmt.Sprintf("%d players online", len(view.AllPlayers))
	embed.Color = embedColor(len(view.AllPlayers))
	embed.Fields = statusFields(view)

	if len(view.Commanders) > 0 {
		cdr := view.Commanders[0]
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{
			URL: m.profiles.AvatarURL(ctx, cdr.PlayerID),
		}
		if url, err := profile.ExternalProfileURL(cdr.PlayerID, cdr.Name); err == nil {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name:  "Commander",
				Value: fmt.Sprintf("[%s](%s)", cdr.Name, url),
			})
		}
	}

	return webhook.Message{Embeds: []*discordgo.MessageEmbed{embed}}
}

func statusFields(view teamview.FlattenedView) []*discordgo.MessageEmbedField {
	var alliesCount, axisCount int
	for _, team := range view.Teams {
		switch team.Name {
		case teamview.TeamAllies:
			alliesCount = team.Count
		case teamview.TeamAxis:
			axisCount = team.Count
		}
	}
	allies, axis := format.BoldHighest(alliesCount, axisCount)

	return []*discordgo.MessageEmbedField{
		{Name: "Allies", Value: allies, Inline: true},
		{Name: "Axis", Value: axis, Inline: true},
		{Name: "Commanders", Value: strconv.Itoa(len(view.Commanders)), Inline: true},
		{
			Name:   "Infantry",
			Value:  fmt.Sprintf("%d players / %d squads", len(view.InfantryPlayers), len(view.InfantrySquads)),
			Inline: true,
		},
		{
			Name:   "Armor",
			Value:  fmt.Sprintf("%d players / %d squads", len(view.ArmorPlayers), len(view.ArmorSquads)),
			Inline: true,
		},
	}
}

// embedColor ramps from green (empty server) to red (full server).
func embedColor(players int) int {
	c, err := strconv.ParseInt(format.GreenToRed(float64(players), 0, maxPlayers), 16, 32)
	if err != nil {
		return 0
	}
	return int(c)
}

func neutralColor() int {
	c, _ := strconv.ParseInt(format.GreenToRed(0, 0, 0), 16, 32)
	return int(c)
}

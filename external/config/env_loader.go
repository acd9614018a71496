package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	internalconfig "github.com/hllops/pluginkit/internal/config"
	"github.com/hllops/pluginkit/internal/schedule"
)

type envConfig struct {
	Env                string `env:"ENV" envDefault:"production"`
	ServerID           int    `env:"SERVER_ID,required"`
	DatabaseURL        string `env:"DATABASE_URL,required"`
	WebhookURL         string `env:"DISCORD_WEBHOOK_URL,required"`
	CRCONBaseURL       string `env:"CRCON_BASE_URL,required"`
	CRCONAPIKey        string `env:"CRCON_API_KEY,required"`
	SteamAPIKey        string `env:"STEAM_API_KEY"`
	ClanURL            string `env:"CLAN_URL"`
	ServerWebsiteURL   string `env:"SERVER_WEBSITE_URL"`
	ServerName         string `env:"SERVER_NAME" envDefault:"HLL server"`
	RefreshIntervalSec int    `env:"REFRESH_INTERVAL_SEC" envDefault:"60"`
	ScheduleMonday     string `env:"SCHEDULE_MONDAY" envDefault:"0:00-23:59"`
	ScheduleTuesday    string `env:"SCHEDULE_TUESDAY" envDefault:"0:00-23:59"`
	ScheduleWednesday  string `env:"SCHEDULE_WEDNESDAY" envDefault:"0:00-23:59"`
	ScheduleThursday   string `env:"SCHEDULE_THURSDAY" envDefault:"0:00-23:59"`
	ScheduleFriday     string `env:"SCHEDULE_FRIDAY" envDefault:"0:00-23:59"`
	ScheduleSaturday   string `env:"SCHEDULE_SATURDAY" envDefault:"0:00-23:59"`
	ScheduleSunday     string `env:"SCHEDULE_SUNDAY" envDefault:"0:00-23:59"`
}

func Load() (*internalconfig.Config, error) {
	var raw envConfig
	if err := env.Parse(&raw); err != nil {
		return nil, fmt.Errorf("environment variables are invalid or missing: %w", err)
	}

	sched, err := parseSchedule(raw)
	if err != nil {
		return nil, err
	}

	cfg := &internalconfig.Config{
		Env:                raw.Env,
		ServerID:           raw.ServerID,
		DatabaseURL:        raw.DatabaseURL,
		WebhookURL:         raw.WebhookURL,
		CRCONBaseURL:       raw.CRCONBaseURL,
		CRCONAPIKey:        raw.CRCONAPIKey,
		SteamAPIKey:        raw.SteamAPIKey,
		ClanURL:            raw.ClanURL,
		ServerWebsiteURL:   raw.ServerWebsiteURL,
		ServerName:         raw.ServerName,
		RefreshIntervalSec: raw.RefreshIntervalSec,
		Schedule:           sched,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parseSchedule(raw envConfig) (schedule.Schedule, error) {
	var sched schedule.Schedule
	days := [7]struct {
		name  string
		value string
	}{
		{name: "SCHEDULE_MONDAY", value: raw.ScheduleMonday},
		{name: "SCHEDULE_TUESDAY", value: raw.ScheduleTuesday},
		{name: "SCHEDULE_WEDNESDAY", value: raw.ScheduleWednesday},
		{name: "SCHEDULE_THURSDAY", value: raw.ScheduleThursday},
		{name: "SCHEDULE_FRIDAY", value: raw.ScheduleFriday},
		{name: "SCHEDULE_SATURDAY", value: raw.ScheduleSaturday},
		{name: "SCHEDULE_SUNDAY", value: raw.ScheduleSunday},
	}
	for i, day := range days {
		w, err := schedule.ParseWindow(day.value)
		if err != nil {
			return sched, fmt.Errorf("%s: %w", day.name, err)
		}
		sched[i] = w
	}
	return sched, nil
}

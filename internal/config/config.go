package config

import (
	"fmt"

	"github.com/hllops/pluginkit/internal/schedule"
)

type Config struct {
	Env          string
	ServerID     int
	DatabaseURL  string
	WebhookURL   string
	CRCONBaseURL string
	CRCONAPIKey  string
	// SteamAPIKey is optional; without it avatar lookups degrade to
	// the default images.
	SteamAPIKey string
	// ClanURL and ServerWebsiteURL decorate published embeds. Both
	// are optional and default to empty.
	ClanURL            string
	ServerWebsiteURL   string
	ServerName         string
	RefreshIntervalSec int
	Schedule           schedule.Schedule
}

func (c *Config) Validate() error {
	for _, req := range c.requiredFieldChecks() {
		if req.value == "" {
			return fmt.Errorf("%s is required", req.name)
		}
	}
	if c.ServerID <= 0 {
		return fmt.Errorf("SERVER_ID must be positive, got %d", c.ServerID)
	}
	if c.RefreshIntervalSec <= 0 {
		return fmt.Errorf("REFRESH_INTERVAL_SEC must be positive, got %d", c.RefreshIntervalSec)
	}
	if err := c.Schedule.Validate(); err != nil {
		return fmt.Errorf("schedule is invalid: %w", err)
	}
	return nil
}

type requiredEnvField struct {
	name  string
	value string
}

func (c *Config) requiredFieldChecks() []requiredEnvField {
	return []requiredEnvField{
		{name: "DATABASE_URL", value: c.DatabaseURL},
		{name: "DISCORD_WEBHOOK_URL", value: c.WebhookURL},
		{name: "CRCON_BASE_URL", value: c.CRCONBaseURL},
		{name: "CRCON_API_KEY", value: c.CRCONAPIKey},
	}
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

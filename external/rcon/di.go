package rcon

import (
	"github.com/hllops/pluginkit/internal/config"
	"github.com/hllops/pluginkit/internal/rcon"
	"github.com/samber/do/v2"
)

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (rcon.Client, error) {
		c := do.MustInvoke[*config.Config](i)
		return NewHTTPClient(c.CRCONBaseURL, c.CRCONAPIKey), nil
	})
}

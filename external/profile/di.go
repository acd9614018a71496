package profile

import (
	"github.com/hllops/pluginkit/internal/config"
	"github.com/hllops/pluginkit/internal/profile"
	"github.com/samber/do/v2"
)

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (profile.Resolver, error) {
		c := do.MustInvoke[*config.Config](i)
		return NewSteamResolver(c.SteamAPIKey), nil
	})
}

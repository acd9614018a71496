package publisher

import (
	"github.com/hllops/pluginkit/internal/config"
	"github.com/hllops/pluginkit/internal/profile"
	"github.com/hllops/pluginkit/internal/rcon"
	"github.com/hllops/pluginkit/internal/refresh"
	"github.com/samber/do/v2"
)

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (*Manager, error) {
		cfg := do.MustInvoke[*config.Config](i)
		rc := do.MustInvoke[rcon.Client](i)
		refresher := do.MustInvoke[*refresh.Manager](i)
		profiles := do.MustInvoke[profile.Resolver](i)
		return NewManager(cfg, rc, refresher, profiles), nil
	})
}

package webhook

import (
	"github.com/hllops/pluginkit/internal/config"
	"github.com/hllops/pluginkit/internal/webhook"
	"github.com/samber/do/v2"
)

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (webhook.Transport, error) {
		c := do.MustInvoke[*config.Config](i)
		return NewDiscordTransport(c.WebhookURL)
	})
}

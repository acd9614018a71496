package refresh

import (
	"github.com/hllops/pluginkit/internal/store"
	"github.com/hllops/pluginkit/internal/webhook"
	"github.com/samber/do/v2"
)

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (*Manager, error) {
		st := do.MustInvoke[store.Store](i)
		t := do.MustInvoke[webhook.Transport](i)
		return NewManager(st, t), nil
	})
}

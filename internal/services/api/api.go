// Package api composes the HTTP API from its modules
package api

import (
	"salesboard/internal/platform/config"
	"salesboard/internal/platform/logger"
	phttp "salesboard/internal/platform/net/http"
	"salesboard/internal/platform/store"

	"salesboard/internal/modkit"
	"salesboard/internal/modkit/httpkit"
	"salesboard/internal/modkit/module"
	"salesboard/internal/modkit/swaggerkit"

	dashmod "salesboard/internal/services/api/dashboard/module"
	metamod "salesboard/internal/services/api/meta/module"
	perfmod "salesboard/internal/services/api/performance/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Data           modkit.Snapshots
	Logger         *logger.Logger
	Stack          httpkit.StackOptions
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts every API module onto r under /api/v1
func Mount(r phttp.Router, opt Options) {
	deps := modkit.Deps{
		Cfg:   opt.Config,
		Store: opt.Store,
		Data:  opt.Data,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	} else {
		deps.Log = *logger.Named("api")
	}

	// dashboard owns filtering and lends its Slicer to performance
	dashboard := dashmod.New(deps)
	slicer := module.MustPortsOf[dashmod.Ports](dashboard).Slicer
	performance := perfmod.New(deps, modkit.WithPorts(perfmod.Ports{Slicer: slicer}))

	mods := []module.Module{
		metamod.New(deps),
		dashboard,
		performance,
	}

	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	httpkit.MountAPIV1(r, httpkit.CommonStack(opt.Stack), func(api httpkit.Router) {
		for _, m := range mods {
			module.Register(m.Name(), m.Ports())
			m.MountRoutes(api)
		}
	})
	deps.Log.Info().Strs("modules", module.Names()).Msg("api mounted")
}

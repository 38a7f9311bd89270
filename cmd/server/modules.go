package main

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/ops-console/internal/config"
	"github.com/JaimeStill/ops-console/pkg/middleware"
	"github.com/JaimeStill/ops-console/pkg/module"
	"github.com/JaimeStill/ops-console/web/app"
)

type Modules struct {
	App *module.Module
}

func NewModules(cfg *config.Config) (*Modules, error) {
	appModule, err := app.NewModule(cfg.App.BasePath)
	if err != nil {
		return nil, err
	}

	return &Modules{
		App: appModule,
	}, nil
}

func (m *Modules) Mount(router *module.Router) {
	router.Mount(m.App)
}

// buildHandler mounts the modules and native routes on a root router and
// wraps it in request logging. Redirects from module middleware are logged
// with the rest.
func buildHandler(modules *Modules, rd readiness, logger *slog.Logger) http.Handler {
	router := module.NewRouter()
	registerRoutes(router, rd)
	modules.Mount(router)
	return middleware.Logger(logger)(router)
}

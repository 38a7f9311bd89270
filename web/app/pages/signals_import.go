package pages

import (
	"github.com/JaimeStill/ops-console/pkg/routes"
	"github.com/JaimeStill/ops-console/web/app/components"
)

var signalsImport = routes.MustEntry("/signals/import", components.SignalImport)

package pages

import (
	"github.com/JaimeStill/ops-console/pkg/routes"
	"github.com/JaimeStill/ops-console/web/app/components"
)

var signalsExport = routes.MustEntry("/signals/export", components.SignalExport)

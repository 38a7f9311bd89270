package pages

import (
	"github.com/JaimeStill/ops-console/pkg/routes"
	"github.com/JaimeStill/ops-console/web/app/components"
)

var signalsViewer = routes.MustEntry("/signals/viewer", components.SignalViewer)

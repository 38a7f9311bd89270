package pages

import (
	"github.com/JaimeStill/ops-console/pkg/routes"
	"github.com/JaimeStill/ops-console/web/app/components"
)

var maintenance = routes.MustEntry("/maintenance/", components.Maintenance)

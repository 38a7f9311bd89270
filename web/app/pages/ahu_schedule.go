package pages

import (
	"github.com/JaimeStill/ops-console/pkg/routes"
	"github.com/JaimeStill/ops-console/web/app/components"
)

var ahuSchedule = routes.MustEntry("/ahu-schedule/", components.ComfortSchedule)

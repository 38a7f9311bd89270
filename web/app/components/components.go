// Package components declares the console's page components. Each component
// is rendered server-side as a shell that mounts the named client component.
package components

import "github.com/JaimeStill/ops-console/pkg/web"

const bundle = "app"

var (
	ComfortSchedule = web.Component{
		Name:     "ComfortSchedule",
		Template: "comfort-schedule.html",
		Title:    "AHU Comfort Schedule",
		Bundle:   bundle,
	}

	Maintenance = web.Component{
		Name:     "Maintenance",
		Template: "maintenance.html",
		Title:    "Maintenance",
		Bundle:   bundle,
	}

	SignalExport = web.Component{
		Name:     "SignalExport",
		Template: "signal-export.html",
		Title:    "Signal Export",
		Bundle:   bundle,
	}

	SignalImport = web.Component{
		Name:     "SignalImport",
		Template: "signal-import.html",
		Title:    "Signal Import",
		Bundle:   bundle,
	}

	SignalViewer = web.Component{
		Name:     "SignalViewer",
		Template: "signal-viewer.html",
		Title:    "Signal Viewer",
		Bundle:   bundle,
	}

	NotFound = web.Component{
		Name:     "NotFound",
		Template: "404.html",
		Title:    "Not Found",
		Bundle:   bundle,
	}
)

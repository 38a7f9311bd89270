// Package pages declares the console's routes, one file per page.
package pages

import "github.com/JaimeStill/ops-console/pkg/routes"

// Table aggregates the declared pages into a route table.
func Table() (*routes.Table, error) {
	return routes.NewTable(
		ahuSchedule,
		maintenance,
		signalsExport,
		signalsImport,
		signalsViewer,
	)
}

package service

import (
	"go.uber.org/fx"
)

// Module provides the dashboard service dependency to the fx container
var Module = fx.Options(
	fx.Provide(NewDashboardService),
)

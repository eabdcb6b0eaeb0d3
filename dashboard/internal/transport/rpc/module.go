package rpc

import "go.uber.org/fx"

// Module provides the Connect service implementation
var Module = fx.Options(
	fx.Provide(NewDashboardServer),
)

package app

import (
	"go.uber.org/fx"

	"github.com/williamhogman/kubedash/dashboard/internal/config"
	"github.com/williamhogman/kubedash/dashboard/internal/export"
	"github.com/williamhogman/kubedash/dashboard/internal/logging"
	"github.com/williamhogman/kubedash/dashboard/internal/records"
	"github.com/williamhogman/kubedash/dashboard/internal/service"
	"github.com/williamhogman/kubedash/dashboard/internal/transport"
	"github.com/williamhogman/kubedash/dashboard/internal/view"
)

// Dashboard wires the dashboard service without any transport. It expects
// a *config.Config and a *zap.Logger from the surrounding app.
var Dashboard = fx.Options(
	records.Module,
	view.Module,
	export.Module,
	service.Module,
)

// Everything is the full server
var Everything = fx.Options(
	config.Module,
	logging.Module,
	Dashboard,
	transport.Module,
	fx.Invoke(config.LogConfig),
)

package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/williamhogman/kubedash/dashboard/internal/config"
	"github.com/williamhogman/kubedash/dashboard/internal/service"
)

func TestDashboardGraph(t *testing.T) {
	var svc *service.DashboardService
	app := fxtest.New(t,
		config.Module,
		fx.Provide(func() *zap.Logger { return zaptest.NewLogger(t) }),
		Dashboard,
		fx.Populate(&svc),
	)
	app.RequireStart()
	defer app.RequireStop()

	require.NotNil(t, svc)
	assert.Equal(t, 12, svc.Summary().Workloads)
}

func TestEverythingGraph(t *testing.T) {
	require.NoError(t, fx.ValidateApp(Everything))
}

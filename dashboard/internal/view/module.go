package view

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/williamhogman/kubedash/dashboard/internal/config"
	"github.com/williamhogman/kubedash/dashboard/internal/records"
)

// ProvideController builds the controller from the view settings
func ProvideController(cfg *config.Config, store records.Store, logger *zap.Logger) (*Controller, error) {
	ordering, err := ParseQuantityOrdering(cfg.View.QuantityOrdering)
	if err != nil {
		return nil, err
	}
	logger.Named("view").Info("View controller ready",
		zap.String("quantityOrdering", string(ordering)),
		zap.Int("pageSize", PageSize),
	)
	return NewController(store, WithQuantityOrdering(ordering)), nil
}

// Module provides the view controller to the fx container
var Module = fx.Options(
	fx.Provide(ProvideController),
)

package records

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// ProvideStore creates the record store from the built-in dataset
func ProvideStore(logger *zap.Logger) (Store, error) {
	store, err := NewMemoryStore(SampleWorkloads(), SampleServer())
	if err != nil {
		return nil, err
	}

	logger.Named("records").Info("Loaded static dataset",
		zap.Int("workloads", store.Len()),
		zap.String("server", store.Server().Name))

	return store, nil
}

// Module provides the record store to the fx container
var Module = fx.Options(
	fx.Provide(ProvideStore),
)

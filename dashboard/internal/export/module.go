package export

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/williamhogman/kubedash/dashboard/internal/config"
)

// ProvideWriter creates the snapshot writer from the export settings
func ProvideWriter(cfg *config.Config, logger *zap.Logger) (*Writer, error) {
	format, err := ParseFormat(cfg.Export.Format)
	if err != nil {
		return nil, err
	}
	return NewWriter(cfg.Export.Dir, cfg.Export.BaseName, format, cfg.Export.Timestamp, logger), nil
}

// Module provides the export writer to the fx container
var Module = fx.Options(
	fx.Provide(ProvideWriter),
)

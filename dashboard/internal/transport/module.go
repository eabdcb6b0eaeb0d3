package transport

import (
	"go.uber.org/fx"

	transporthttp "github.com/williamhogman/kubedash/dashboard/internal/transport/http"
	"github.com/williamhogman/kubedash/dashboard/internal/transport/rpc"
)

// Module exports all transport modules
var Module = fx.Options(
	rpc.Module,
	transporthttp.Module,
)

package main

import (
	"go.uber.org/fx"

	"github.com/williamhogman/kubedash/dashboard/internal/app"
)

func main() {
	fx.New(app.Everything).Run()
}

package settings

import (
	"go.uber.org/fx"

	"github.com/billcraft/billcraft/internal/settings/repository"
	"github.com/billcraft/billcraft/internal/settings/service"
)

var Module = fx.Module("settings.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)

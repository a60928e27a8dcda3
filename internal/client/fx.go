package client

import (
	"go.uber.org/fx"

	"github.com/billcraft/billcraft/internal/client/repository"
	"github.com/billcraft/billcraft/internal/client/service"
)

var Module = fx.Module("client.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)

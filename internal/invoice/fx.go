package invoice

import (
	"go.uber.org/fx"

	"github.com/billcraft/billcraft/internal/invoice/repository"
	"github.com/billcraft/billcraft/internal/invoice/service"
)

var Module = fx.Module("invoice.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)

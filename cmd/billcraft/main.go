package main

import (
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/billcraft/billcraft/internal/client"
	"github.com/billcraft/billcraft/internal/config"
	"github.com/billcraft/billcraft/internal/dashboard"
	"github.com/billcraft/billcraft/internal/invoice"
	"github.com/billcraft/billcraft/internal/logger"
	"github.com/billcraft/billcraft/internal/migration"
	"github.com/billcraft/billcraft/internal/render"
	"github.com/billcraft/billcraft/internal/settings"
	"github.com/billcraft/billcraft/pkg/db"
)

func main() {
	app := fx.New(
		// Core infrastructure
		config.Module,
		logger.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		migration.Module,

		// Functional domains
		client.Module,
		invoice.Module,
		settings.Module,
		dashboard.Module,
		render.Module,

		fx.Invoke(func(log *zap.Logger, cfg config.Config) {
			log.Info("billcraft ready",
				zap.String("version", cfg.AppVersion),
				zap.String("db", cfg.DBPath),
				zap.String("exports", cfg.ExportDir),
			)
		}),
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}

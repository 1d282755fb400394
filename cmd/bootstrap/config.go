package bootstrap

import (
	"golden-travel/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)

package bootstrap

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/yigit/college/internal/config"
	"github.com/yigit/college/internal/pkg/logger"
)

// DefaultConfigPath is where the binaries look for configuration
const DefaultConfigPath = "configs/config.yaml"

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
// Every entry written by the process carries the same run_id.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	if configPath == "" {
		configPath = DefaultConfigPath
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logCfg := logger.FromSettings(cfg.Logging.Level, cfg.Logging.Format, nil)
	logCfg.Fields = map[string]string{"run_id": uuid.NewString()}
	lgr := logger.Configure(logCfg)

	lgr.Debug().
		Str("driver", cfg.Database.Driver).
		Str("database", cfg.Database.Name).
		Str("logLevel", string(logCfg.Level)).
		Msg("Logger configured")
	return cfg, lgr, nil
}

package cmd

import (
	"context"
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"droscher.com/Mixology/configs"
	"droscher.com/Mixology/pkg/integrations"
	"droscher.com/Mixology/pkg/repository"
)

type SeedCmd struct {
	ConfigFile string `default:".Mixology.toml" help:"Path to config file" short:"c"`
}

func (s *SeedCmd) Run(_ *Context) error {
	logConfig := zap.NewDevelopmentConfig()
	logConfig.DisableStacktrace = true

	logger, _ := logConfig.Build()
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(s.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return err
	}
	defer repo.Close()

	ctx := context.Background()

	var errs error

	for _, name := range conf.Integrations.Drink {
		source := integrations.GetIntegration(name, logger)
		if source == nil {
			errs = multierr.Append(errs, fmt.Errorf("unknown drink integration %q", name))

			continue
		}

		logger.Info("importing drink catalog", zap.String("integration", name))

		seeder := integrations.NewSeeder(source, repo, logger)
		if err := seeder.Run(ctx); err != nil {
			logger.Error("catalog import finished with errors", zap.String("integration", name), zap.Error(err))
			errs = multierr.Append(errs, err)
		}
	}

	return errs
}

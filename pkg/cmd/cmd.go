package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"envlinks/internal/config"
	"envlinks/internal/database"
	"envlinks/internal/eventbus"
	"envlinks/internal/presenter"
	"envlinks/internal/service"
	"envlinks/internal/storage"
	"envlinks/logger"
	"envlinks/pkg/cmd/list"
	"envlinks/pkg/cmd/open"
	"envlinks/pkg/cmd/pick"
	"envlinks/pkg/cmd/serve"
	settingscmd "envlinks/pkg/cmd/settings"
)

var version = "0.1.0"

func New(cfg config.Config) (*cobra.Command, error) {
	source, err := newSource(cfg)
	if err != nil {
		return nil, err
	}

	store := openStore(cfg)
	bus := eventbus.New()
	resolver := service.NewConfigResolver(store, source, logger.GetLogger().Named("resolver"))
	settings := service.NewSettingsService(store, resolver, bus, logger.GetLogger().Named("settings"))
	opener := presenter.NewBrowserOpener()

	cmd := &cobra.Command{
		Use:     "envlinks",
		Short:   "envlinks - quick access to your environment URLs",
		Version: version,
	}

	cmd.AddCommand(list.NewListCmd(resolver))
	cmd.AddCommand(open.NewOpenCmd(resolver, opener))
	cmd.AddCommand(pick.NewPickCmd(resolver, opener))
	cmd.AddCommand(settingscmd.NewSettingsCmd(settings))
	cmd.AddCommand(serve.NewServeCmd(settings, bus, cfg.ServerAddr))
	return cmd, nil
}

func newSource(cfg config.Config) (storage.Source, error) {
	switch {
	case cfg.HasObjectStorage():
		oc := cfg.ObjectStorage
		return storage.NewObjectSource(storage.ObjectCredentials{
			Endpoint:    oc.Endpoint,
			AccessKeyID: oc.AccessKeyID,
			SecretKey:   oc.SecretKey,
			Region:      oc.Region,
			Secure:      oc.Secure,
			Bucket:      oc.Bucket,
			Object:      oc.Object,
		})
	case cfg.DefaultConfigPath != "":
		return storage.NewLocalSource(cfg.DefaultConfigPath), nil
	default:
		return storage.NewEmbeddedSource(), nil
	}
}

// openStore returns nil when the database cannot be opened; commands then run
// against the default configuration only.
func openStore(cfg config.Config) service.ConfigStore {
	db, err := database.Open(cfg.DatabasePath)
	if err != nil {
		logger.Warn("local storage unavailable", zap.Error(err))
		return nil
	}

	cobra.OnFinalize(func() {
		if err := database.Close(db); err != nil {
			logger.Warn("failed to close DB", zap.Error(err))
		}
	})
	return service.NewConfigStore(database.NewSettingsRepository(db), logger.GetLogger().Named("store"))
}

package service

import (
	"context"
	"encoding/json"
	"io"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"envlinks/internal/eventbus"
	"envlinks/internal/types"
	"envlinks/internal/validation"
)

const DownloadFileName = "envlinks-urls-config.json"

type (
	// SettingsService backs the settings actions. Unlike resolution, every
	// failure here is returned so the caller can report it.
	SettingsService interface {
		Load(ctx context.Context, raw []byte) (types.Configuration, error)
		Reset(ctx context.Context) error
		Current(ctx context.Context) types.Configuration
		Download(ctx context.Context, w io.Writer) error
		Status(ctx context.Context) (types.Status, error)
	}

	settingsService struct {
		store    ConfigStore
		resolver ConfigResolver
		bus      eventbus.Bus
		logger   *zap.Logger
	}
)

// NewSettingsService accepts a nil store (storage unavailable) and a nil bus.
func NewSettingsService(store ConfigStore, resolver ConfigResolver, bus eventbus.Bus, l *zap.Logger) SettingsService {
	if l == nil {
		l = zap.NewNop()
	}
	return &settingsService{store: store, resolver: resolver, bus: bus, logger: l}
}

// Load validates raw and, only if the whole document is valid, makes it the
// active configuration.
func (s *settingsService) Load(ctx context.Context, raw []byte) (types.Configuration, error) {
	cfg, err := validation.Parse(raw)
	if err != nil {
		return types.Configuration{}, err
	}

	if s.store == nil {
		return types.Configuration{}, types.ErrStorageUnavailable
	}

	if err := s.store.SetCustomConfig(ctx, cfg); err != nil {
		return types.Configuration{}, err
	}

	s.logger.Info("custom configuration loaded",
		zap.Int("environments", len(cfg.Environments)),
		zap.Int("urls", CountURLs(cfg)))
	s.publish(eventbus.Success, "custom configuration loaded")
	return cfg, nil
}

func (s *settingsService) Reset(ctx context.Context) error {
	if s.store == nil {
		return types.ErrStorageUnavailable
	}

	if err := s.store.ResetToDefault(ctx); err != nil {
		return err
	}

	s.logger.Info("default configuration restored")
	s.publish(eventbus.Success, "default configuration restored")
	return nil
}

func (s *settingsService) Current(ctx context.Context) types.Configuration {
	return s.resolver.Resolve(ctx)
}

// Download writes the active configuration as indented json.
func (s *settingsService) Download(ctx context.Context, w io.Writer) error {
	value, err := json.MarshalIndent(s.resolver.Resolve(ctx), "", "  ")
	if err != nil {
		return err
	}

	if _, err := w.Write(append(value, '\n')); err != nil {
		return errors.Wrap(err, "failed to write configuration")
	}
	return nil
}

func (s *settingsService) Status(ctx context.Context) (types.Status, error) {
	status := types.Status{StorageAvailable: s.store != nil}
	if s.store != nil {
		if _, err := s.store.GetOverrideState(ctx); err != nil {
			return status, err
		}
	}

	cfg, origin := s.resolver.ResolveWithOrigin(ctx)
	status.Origin = origin
	status.Source = sourceLabel(origin, status.StorageAvailable)
	status.Environments = len(cfg.Environments)
	status.URLs = CountURLs(cfg)
	return status, nil
}

func (s *settingsService) publish(evType eventbus.Type, message string) {
	if s.bus == nil {
		return
	}
	s.bus.Broadcast(eventbus.ConfigTopic, evType, message)
}

func CountURLs(cfg types.Configuration) int {
	return lo.SumBy(cfg.Environments, func(env types.Environment) int {
		return len(env.URLs)
	})
}

func sourceLabel(origin types.Origin, storageAvailable bool) string {
	switch {
	case origin == types.OriginCustom:
		return "Custom configuration"
	case origin == types.OriginEmpty:
		return "No configuration available"
	case !storageAvailable:
		return "Default configuration (storage unavailable)"
	default:
		return "Default configuration"
	}
}

// Example is a document showing the accepted format.
func Example() types.Configuration {
	return types.Configuration{
		Environments: []types.Environment{
			{
				Name:  "Production",
				Class: "cetacean-blue",
				URLs: []types.URLEntry{
					{Name: "Web", URL: "https://app.example.com"},
					{Name: "API Swagger", URL: "https://api.example.com/docs"},
				},
			},
			{
				Name:  "Homolog",
				Class: "midnight-blue",
				URLs: []types.URLEntry{
					{Name: "Web HML", URL: "https://hml.example.com"},
				},
			},
			{
				Name:  "Development",
				Class: "star-command-blue",
				URLs: []types.URLEntry{
					{Name: "Local Frontend", URL: "http://localhost:3000"},
				},
			},
		},
	}
}

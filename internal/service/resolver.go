package service

import (
	"context"

	"go.uber.org/zap"

	"envlinks/internal/storage"
	"envlinks/internal/types"
)

type (
	// ConfigResolver picks the authoritative configuration. It never fails:
	// every error ends in an empty configuration.
	ConfigResolver interface {
		Resolve(ctx context.Context) types.Configuration
		ResolveWithOrigin(ctx context.Context) (types.Configuration, types.Origin)
	}

	configResolver struct {
		store  ConfigStore
		source storage.Source
		logger *zap.Logger
	}
)

// NewConfigResolver accepts a nil store, meaning the host has no storage.
func NewConfigResolver(store ConfigStore, source storage.Source, l *zap.Logger) ConfigResolver {
	if l == nil {
		l = zap.NewNop()
	}
	return &configResolver{store: store, source: source, logger: l}
}

func (r *configResolver) Resolve(ctx context.Context) types.Configuration {
	cfg, _ := r.ResolveWithOrigin(ctx)
	return cfg
}

func (r *configResolver) ResolveWithOrigin(ctx context.Context) (types.Configuration, types.Origin) {
	if r.store == nil {
		r.logger.Warn("storage unavailable, loading default configuration")
		return r.loadDefault(ctx)
	}

	state, err := r.store.GetOverrideState(ctx)
	if err != nil {
		r.logger.Warn("failed to read override state", zap.Error(err))
		return r.loadDefault(ctx)
	}

	if state.UseCustomConfig && state.CustomConfig != nil {
		r.logger.Debug("using custom configuration")
		return *state.CustomConfig, types.OriginCustom
	}

	return r.loadDefault(ctx)
}

func (r *configResolver) loadDefault(ctx context.Context) (types.Configuration, types.Origin) {
	if r.source == nil {
		return types.EmptyConfiguration(), types.OriginEmpty
	}

	cfg, err := r.source.LoadDefault(ctx)
	if err != nil {
		r.logger.Warn("failed to load default configuration", zap.Error(err))
		return types.EmptyConfiguration(), types.OriginEmpty
	}
	return cfg, types.OriginDefault
}

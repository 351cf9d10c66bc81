package service

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"envlinks/internal/database"
	"envlinks/internal/types"
)

const (
	KeyUseCustomConfig = "useCustomConfig"
	KeyCustomConfig    = "customConfig"
)

type (
	// ConfigStore owns the override flag and the user supplied configuration.
	ConfigStore interface {
		GetOverrideState(ctx context.Context) (types.StoreState, error)
		SetCustomConfig(ctx context.Context, cfg types.Configuration) error
		ResetToDefault(ctx context.Context) error
	}

	configStore struct {
		kv     database.KVRepository
		logger *zap.Logger
	}
)

func NewConfigStore(kv database.KVRepository, l *zap.Logger) ConfigStore {
	if l == nil {
		l = zap.NewNop()
	}
	return &configStore{kv: kv, logger: l}
}

func (s *configStore) GetOverrideState(ctx context.Context) (types.StoreState, error) {
	state := types.StoreState{}
	values, err := s.kv.Get(ctx, KeyUseCustomConfig, KeyCustomConfig)
	if err != nil {
		return state, types.NewError(types.ErrStorageRead, "", err)
	}

	if raw, ok := values[KeyUseCustomConfig]; ok {
		if err := json.Unmarshal(raw, &state.UseCustomConfig); err != nil {
			return types.StoreState{}, types.NewError(types.ErrStorageRead, KeyUseCustomConfig, err)
		}
	}

	if raw, ok := values[KeyCustomConfig]; ok {
		var cfg *types.Configuration
		if err := json.Unmarshal(raw, &cfg); err != nil {
			return types.StoreState{}, types.NewError(types.ErrStorageRead, KeyCustomConfig, err)
		}
		if cfg != nil {
			normalized := cfg.Normalize()
			state.CustomConfig = &normalized
		}
	}

	return state, nil
}

// SetCustomConfig stores the document and raises the override flag in one write.
func (s *configStore) SetCustomConfig(ctx context.Context, cfg types.Configuration) error {
	doc, err := json.Marshal(cfg)
	if err != nil {
		return types.NewError(types.ErrStorageWrite, KeyCustomConfig, err)
	}

	err = s.kv.Set(ctx, map[string][]byte{
		KeyCustomConfig:    doc,
		KeyUseCustomConfig: []byte("true"),
	})
	if err != nil {
		return types.NewError(types.ErrStorageWrite, "", err)
	}
	return nil
}

// ResetToDefault lowers the flag first; failing to remove the stored document
// afterwards is only logged since resolution already prefers the default.
func (s *configStore) ResetToDefault(ctx context.Context) error {
	err := s.kv.Set(ctx, map[string][]byte{KeyUseCustomConfig: []byte("false")})
	if err != nil {
		return types.NewError(types.ErrStorageWrite, KeyUseCustomConfig, err)
	}

	if err := s.kv.Remove(ctx, KeyCustomConfig); err != nil {
		s.logger.Warn("failed to remove custom configuration", zap.Error(err))
	}
	return nil
}

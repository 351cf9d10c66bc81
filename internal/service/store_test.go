package service

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"envlinks/internal/types"
)

func TestConfigStore_EmptyState(t *testing.T) {
	store := NewConfigStore(newFaultyKV(), nil)
	state, err := store.GetOverrideState(context.Background())
	require.NoError(t, err)
	assert.Equal(t, types.StoreState{}, state)
}

func TestConfigStore_SetAndReset(t *testing.T) {
	ctx := context.Background()
	kv := newFaultyKV()
	store := NewConfigStore(kv, nil)
	cfg := types.Configuration{Environments: []types.Environment{
		{Name: "Dev", Class: "x", URLs: []types.URLEntry{{Name: "A", URL: "http://a"}}},
	}}

	require.NoError(t, store.SetCustomConfig(ctx, cfg))
	state, err := store.GetOverrideState(ctx)
	require.NoError(t, err)
	assert.True(t, state.UseCustomConfig)
	require.NotNil(t, state.CustomConfig)
	assert.Equal(t, cfg, *state.CustomConfig)

	require.NoError(t, store.ResetToDefault(ctx))
	state, err = store.GetOverrideState(ctx)
	require.NoError(t, err)
	assert.False(t, state.UseCustomConfig)
	assert.Nil(t, state.CustomConfig)
}

func TestConfigStore_ResetRemoveFailureIsNotFatal(t *testing.T) {
	ctx := context.Background()
	kv := newFaultyKV()
	store := NewConfigStore(kv, nil)
	require.NoError(t, store.SetCustomConfig(ctx, types.EmptyConfiguration()))

	kv.failRemove = true
	require.NoError(t, store.ResetToDefault(ctx))

	state, err := store.GetOverrideState(ctx)
	require.NoError(t, err)
	assert.False(t, state.UseCustomConfig)
	assert.NotNil(t, state.CustomConfig)
}

func TestConfigStore_Errors(t *testing.T) {
	ctx := context.Background()
	kv := newFaultyKV()
	store := NewConfigStore(kv, nil)

	kv.failGet = true
	_, err := store.GetOverrideState(ctx)
	assert.True(t, errors.Is(err, types.ErrStorageRead))

	kv.failSet = true
	err = store.SetCustomConfig(ctx, types.EmptyConfiguration())
	assert.True(t, errors.Is(err, types.ErrStorageWrite))

	err = store.ResetToDefault(ctx)
	assert.True(t, errors.Is(err, types.ErrStorageWrite))
}

func TestConfigStore_CorruptState(t *testing.T) {
	ctx := context.Background()
	kv := newFaultyKV()
	require.NoError(t, kv.Set(ctx, map[string][]byte{KeyCustomConfig: []byte("{")}))

	_, err := NewConfigStore(kv, nil).GetOverrideState(ctx)
	assert.True(t, errors.Is(err, types.ErrStorageRead))
}

package service

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"envlinks/internal/eventbus"
	"envlinks/internal/types"
	"envlinks/internal/validation"
)

func newSettings(kv *faultyKV, bus eventbus.Bus) (SettingsService, ConfigResolver) {
	store := NewConfigStore(kv, nil)
	resolver := NewConfigResolver(store, defaultSource(), nil)
	return NewSettingsService(store, resolver, bus, nil), resolver
}

func TestSettings_LoadThenResolve(t *testing.T) {
	ctx := context.Background()
	bus := eventbus.New()
	events := bus.Register(eventbus.ConfigTopic)
	settings, resolver := newSettings(newFaultyKV(), bus)

	raw := []byte(`{"environments":[{"name":"Dev","class":"x","urls":[{"name":"A","url":"http://a"}]}]}`)
	loaded, err := settings.Load(ctx, raw)
	require.NoError(t, err)

	expected, err := validation.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, expected, loaded)
	assert.Equal(t, expected, resolver.Resolve(ctx))

	ev := <-events
	assert.Equal(t, eventbus.Success, ev.Type)
}

func TestSettings_InvalidUploadLeavesStoreUnchanged(t *testing.T) {
	ctx := context.Background()
	kv := newFaultyKV()
	settings, resolver := newSettings(kv, nil)

	_, err := settings.Load(ctx, []byte(`{"environments":[{"name":"X","class":"c"}]}`))
	assert.True(t, errors.Is(err, types.ErrValidation))

	values, err := kv.Get(ctx, KeyUseCustomConfig, KeyCustomConfig)
	require.NoError(t, err)
	assert.Empty(t, values)
	assert.Equal(t, loadedDefault(t), resolver.Resolve(ctx))
}

func TestSettings_ResetRestoresDefault(t *testing.T) {
	ctx := context.Background()
	settings, resolver := newSettings(newFaultyKV(), nil)

	_, err := settings.Load(ctx, []byte(`{"environments":[]}`))
	require.NoError(t, err)
	assert.Equal(t, types.EmptyConfiguration(), resolver.Resolve(ctx))

	require.NoError(t, settings.Reset(ctx))
	assert.Equal(t, loadedDefault(t), resolver.Resolve(ctx))

	// reset without prior custom state
	require.NoError(t, settings.Reset(ctx))
	assert.Equal(t, loadedDefault(t), resolver.Resolve(ctx))
}

func TestSettings_ErrorsAreSurfaced(t *testing.T) {
	ctx := context.Background()
	kv := newFaultyKV()
	settings, _ := newSettings(kv, nil)

	kv.failSet = true
	_, err := settings.Load(ctx, []byte(`{"environments":[]}`))
	assert.True(t, errors.Is(err, types.ErrStorageWrite))
	assert.True(t, errors.Is(settings.Reset(ctx), types.ErrStorageWrite))

	kv.failGet = true
	_, err = settings.Status(ctx)
	assert.True(t, errors.Is(err, types.ErrStorageRead))

	_, err = settings.Load(ctx, []byte(`{`))
	assert.True(t, errors.Is(err, types.ErrParse))
}

func TestSettings_StorageUnavailable(t *testing.T) {
	ctx := context.Background()
	resolver := NewConfigResolver(nil, defaultSource(), nil)
	settings := NewSettingsService(nil, resolver, nil, nil)

	_, err := settings.Load(ctx, []byte(`{"environments":[]}`))
	assert.True(t, errors.Is(err, types.ErrStorageUnavailable))
	assert.True(t, errors.Is(settings.Reset(ctx), types.ErrStorageUnavailable))

	status, err := settings.Status(ctx)
	require.NoError(t, err)
	assert.False(t, status.StorageAvailable)
	assert.Equal(t, "Default configuration (storage unavailable)", status.Source)
}

func TestSettings_Status(t *testing.T) {
	ctx := context.Background()
	settings, _ := newSettings(newFaultyKV(), nil)

	status, err := settings.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, types.Status{
		Origin:           types.OriginDefault,
		Source:           "Default configuration",
		StorageAvailable: true,
		Environments:     1,
		URLs:             1,
	}, status)

	_, err = settings.Load(ctx, []byte(`{"environments":[
		{"name":"Dev","class":"x","urls":[{"name":"A","url":"http://a"},{"name":"B","url":"http://b"}]},
		{"name":"Prod","class":"y","urls":[{"name":"C","url":"http://c"}]}
	]}`))
	require.NoError(t, err)

	status, err = settings.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, types.OriginCustom, status.Origin)
	assert.Equal(t, "Custom configuration", status.Source)
	assert.Equal(t, 2, status.Environments)
	assert.Equal(t, 3, status.URLs)
}

func TestSettings_Download(t *testing.T) {
	ctx := context.Background()
	settings, _ := newSettings(newFaultyKV(), nil)

	buf := &bytes.Buffer{}
	require.NoError(t, settings.Download(ctx, buf))
	assert.JSONEq(t, defaultDoc, buf.String())
	assert.Contains(t, buf.String(), "\n  \"environments\"")

	empty := NewSettingsService(nil, NewConfigResolver(nil, missingSource(), nil), nil, nil)
	buf.Reset()
	require.NoError(t, empty.Download(ctx, buf))
	assert.JSONEq(t, `{"environments":[]}`, buf.String())
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestSettings_DownloadWriteFailure(t *testing.T) {
	settings, _ := newSettings(newFaultyKV(), nil)

	err := settings.Download(context.Background(), brokenWriter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write configuration: disk full")
	assert.EqualError(t, errors.Cause(err), "disk full")
}

func TestExampleIsValid(t *testing.T) {
	raw, err := json.Marshal(Example())
	require.NoError(t, err)
	assert.True(t, validation.Validate(raw))
}

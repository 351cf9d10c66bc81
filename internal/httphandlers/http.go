package httphandlers

import (
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"envlinks/internal/eventbus"
	"envlinks/internal/service"
)

var (
	maxUploadSize int64 = 1 << 20 // 1MB
)

type (
	ApiHandler struct {
		settings service.SettingsService
		eb       eventbus.Bus
		logger   *zap.Logger

		done     chan struct{}
		doneOnce sync.Once
	}
)

func NewApiHandler(settings service.SettingsService, eb eventbus.Bus, l *zap.Logger) *ApiHandler {
	if l == nil {
		l = zap.NewNop()
	}
	return &ApiHandler{settings: settings, eb: eb, logger: l, done: make(chan struct{})}
}

// Shutdown ends every open event stream. Register it with http.Server.RegisterOnShutdown.
func (handler *ApiHandler) Shutdown() {
	handler.doneOnce.Do(func() {
		close(handler.done)
	})
}

func (handler *ApiHandler) GetConfig(w http.ResponseWriter, r *http.Request) {
	ok(w, "active configuration", handler.settings.Current(r.Context()))
}

func (handler *ApiHandler) UploadConfig(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxUploadSize))
	if err != nil {
		badRequest(w, errors.Wrap(err, "failed to read upload"))
		return
	}

	cfg, err := handler.settings.Load(r.Context(), raw)
	if err != nil {
		handler.logger.Warn("configuration upload rejected", zap.Error(err))
		settingsError(w, err)
		return
	}

	ok(w, "configuration loaded", cfg)
}

func (handler *ApiHandler) ResetConfig(w http.ResponseWriter, r *http.Request) {
	if err := handler.settings.Reset(r.Context()); err != nil {
		handler.logger.Error("failed to reset configuration", zap.Error(err))
		settingsError(w, err)
		return
	}

	ok(w, "default configuration restored", struct{}{})
}

func (handler *ApiHandler) DownloadConfig(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", service.DownloadFileName))
	if err := handler.settings.Download(r.Context(), w); err != nil {
		handler.logger.Error("failed to write download", zap.Error(err))
	}
}

func (handler *ApiHandler) Status(w http.ResponseWriter, r *http.Request) {
	status, err := handler.settings.Status(r.Context())
	if err != nil {
		settingsError(w, err)
		return
	}

	ok(w, status.Source, status)
}

func (handler *ApiHandler) Example(w http.ResponseWriter, r *http.Request) {
	ok(w, "example configuration", service.Example())
}

// Events streams configuration changes as server-sent events until the client
// leaves or the server shuts down.
func (handler *ApiHandler) Events(w http.ResponseWriter, r *http.Request) {
	ch := handler.eb.Register(eventbus.ConfigTopic)
	defer handler.eb.Unregister(eventbus.ConfigTopic, ch)
	handler.logger.Debug("registered client for config events")

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	if flusher, ok := w.(http.Flusher); ok {
		flusher.Flush()
	}

	for {
		select {
		case ev, ok := <-ch:
			if !ok {
				return
			}
			_ = writeSSEEvent(w, ev)
		case <-r.Context().Done():
			handler.logger.Debug("client disconnected")
			return
		case <-handler.done:
			handler.logger.Debug("closing event stream")
			return
		}
	}
}

package httphandlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func Routes(h *ApiHandler) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Route("/v1", func(rr chi.Router) {
		rr.Get("/config", h.GetConfig)
		rr.Put("/config", h.UploadConfig)
		rr.Delete("/config", h.ResetConfig)
		rr.Get("/config/download", h.DownloadConfig)
		rr.Get("/status", h.Status)
		rr.Get("/example", h.Example)
		rr.Get("/events", h.Events)

		rr.Get("/h", func(writer http.ResponseWriter, request *http.Request) {
			ok(writer, "Hoi, envlinks is live!", struct{}{})
		})
	})
	return r
}

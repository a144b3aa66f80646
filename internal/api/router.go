package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewRouter(app *App) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeClientError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	r.Get("/ping", PingHandler)

	r.Post("/api/contact", app.ContactHandler)
	r.Post("/api/subscribe", app.SubscribeHandler)
	r.Get("/api/sitemap", SitemapHandler)
	r.Get("/sitemap.xml", SitemapHandler)

	r.Get("/v/{code}", app.VideoPreviewHandler)
	r.Get("/v/", app.VideoPreviewHandler)

	// Landing page assets; the preview pages link /images and /css.
	fileServer := http.FileServer(http.Dir("./web/static"))
	r.Handle("/static/*", http.StripPrefix("/static", fileServer))
	r.Handle("/images/*", fileServer)
	r.Handle("/css/*", fileServer)

	return r
}

// Package mockapi is a self-contained stand-in for the flicks catalog
// service. It serves the same routes with the same response shapes from
// an in-memory store, so the terminal client can run against localhost.
package mockapi

import (
	"net/http"

	"flickdeck/pkg/middleware"
	"flickdeck/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Server struct {
	Router *chi.Mux
}

func NewServer(store *Store, logger *zap.Logger) *Server {
	handler := NewHandler(store, logger)

	return &Server{
		Router: setupRouter(handler, logger),
	}
}

func setupRouter(handler *Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	r.Post("/search/structural", handler.StructuralSearch)
	r.Get("/search/genres", handler.Genres)
	r.Get("/search/stats", handler.Stats)
	r.Post("/search/semantic", handler.SemanticSearch)
	r.Post("/search/hybrid", handler.HybridSearch)
	r.Get("/flicks/movie/{id}", handler.MovieByID)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseNotFound(w, "Not Found")
	})

	return r
}

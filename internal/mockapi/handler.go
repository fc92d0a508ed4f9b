package mockapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"flickdeck/internal/flicks"
	"flickdeck/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	store *Store
	log   *zap.Logger
}

func NewHandler(store *Store, log *zap.Logger) *Handler {
	return &Handler{
		store: store,
		log:   log.With(zap.String("handler", "catalog")),
	}
}

// StructuralSearch handles POST /search/structural
func (h *Handler) StructuralSearch(w http.ResponseWriter, r *http.Request) {
	var req flicks.StructuralRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}
	req.Normalize()

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		h.log.Warn("structural search validation failed",
			zap.Any("errors", validationErrors))
		utils.ResponseValidationError(w, validationErrors)
		return
	}

	results, total := h.store.Search(&req)

	utils.ResponseJSON(w, http.StatusOK, flicks.SearchPage{
		Results: results,
		Total:   total,
		Skip:    req.Skip,
		Limit:   req.Limit,
		HasMore: req.Skip+len(results) < total,
	})
}

// MovieByID handles GET /flicks/movie/{id}
func (h *Handler) MovieByID(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.Atoi(raw)
	if err != nil {
		utils.ResponseValidationError(w, map[string]string{"id": "Must be an integer"})
		return
	}

	movie := h.store.MovieByID(id)
	if movie == nil {
		h.log.Warn("movie lookup missed", zap.Int("movie_id", id))
		utils.ResponseNotFound(w, fmt.Sprintf("Movie not found for ID: %d", id))
		return
	}

	utils.ResponseJSON(w, http.StatusOK, movie)
}

// Genres handles GET /search/genres
func (h *Handler) Genres(w http.ResponseWriter, r *http.Request) {
	utils.ResponseJSON(w, http.StatusOK, h.store.Genres())
}

// Stats handles GET /search/stats
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	utils.ResponseJSON(w, http.StatusOK, h.store.Stats())
}

// SemanticSearch handles POST /search/semantic
func (h *Handler) SemanticSearch(w http.ResponseWriter, r *http.Request) {
	var req flicks.SemanticRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}
	req.Normalize()

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		h.log.Warn("semantic search validation failed",
			zap.Any("errors", validationErrors))
		utils.ResponseValidationError(w, validationErrors)
		return
	}

	results, exact, message := h.store.Semantic(&req)

	utils.ResponseJSON(w, http.StatusOK, flicks.SemanticPage{
		Results:      results,
		Query:        req.Query,
		Limit:        req.Limit,
		ExactMatches: exact,
		Message:      message,
	})
}

// HybridSearch handles POST /search/hybrid
func (h *Handler) HybridSearch(w http.ResponseWriter, r *http.Request) {
	var req flicks.HybridRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}
	req.Normalize()

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		h.log.Warn("hybrid search validation failed",
			zap.Any("errors", validationErrors))
		utils.ResponseValidationError(w, validationErrors)
		return
	}

	results, exact, message := h.store.Hybrid(&req)

	utils.ResponseJSON(w, http.StatusOK, flicks.SemanticPage{
		Results:      results,
		Query:        req.Query,
		Limit:        req.Limit,
		ExactMatches: exact,
		Message:      message,
	})
}

package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sabeennayazu/Movie-Mind/internal/service"
)

type WatchlistHandler struct {
	svc *service.WatchlistService
}

func NewWatchlistHandler(s *service.WatchlistService) *WatchlistHandler {
	return &WatchlistHandler{svc: s}
}

// @Summary Agregar/quitar de la lista de pendientes
// @Tags watchlist
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body toggleRequest true "película"
// @Success 200 {object} map[string]string
// @Router /me/watchlist [post]
func (h *WatchlistHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	userID := UserIDFromContext(r.Context())

	var req toggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), 400)
		return
	}

	status, err := h.svc.Toggle(r.Context(), userID, req.MovieID)
	if err != nil {
		http.Error(w, err.Error(), 400)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]string{"status": status})
}

// @Summary Mi lista de pendientes
// @Tags watchlist
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.MovieDoc
// @Router /me/watchlist [get]
func (h *WatchlistHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	userID := UserIDFromContext(r.Context())

	movies, err := h.svc.ListWithMovies(r.Context(), userID)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(movies)
}

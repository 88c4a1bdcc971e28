package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sabeennayazu/Movie-Mind/internal/service"
)

type FavoriteHandler struct {
	svc *service.FavoriteService
}

func NewFavoriteHandler(s *service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{svc: s}
}

type toggleRequest struct {
	MovieID int `json:"movieId"`
}

// @Summary Agregar/quitar favorito
// @Tags favorites
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body toggleRequest true "película"
// @Success 200 {object} map[string]string
// @Router /me/favorites [post]
func (h *FavoriteHandler) Toggle(w http.ResponseWriter, r *http.Request) {
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

// @Summary Mis favoritos
// @Tags favorites
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.MovieDoc
// @Router /me/favorites [get]
func (h *FavoriteHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	userID := UserIDFromContext(r.Context())

	movies, err := h.svc.ListWithMovies(r.Context(), userID)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(movies)
}

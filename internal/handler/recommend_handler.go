package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/sabeennayazu/Movie-Mind/internal/recommend"
	"github.com/sabeennayazu/Movie-Mind/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

type RecommendHandler struct {
	svc *service.RecommendService
}

func NewRecommendHandler(s *service.RecommendService) *RecommendHandler {
	return &RecommendHandler{svc: s}
}

func parseRecQuery(r *http.Request) (mode recommend.Mode, k int, refresh bool) {
	m := r.URL.Query().Get("mode")
	if m == "" {
		// el frontend viejo manda "type"
		m = r.URL.Query().Get("type")
	}
	switch m {
	case "content":
		mode = recommend.ModeContent
	default:
		mode = recommend.ModeCollaborative
	}
	k, _ = strconv.Atoi(r.URL.Query().Get("k"))
	refresh = r.URL.Query().Get("refresh") == "true"
	return mode, k, refresh
}

// @Summary Mis recomendaciones
// @Tags recommend
// @Security BearerAuth
// @Produce json
// @Param movie_id query int false "si se pasa, similares a esa película (ignora mode)"
// @Param mode query string false "collaborative|content (default: collaborative)"
// @Param k query int false "cantidad de recomendaciones (máx 50)"
// @Param refresh query bool false "si true, ignora cache Redis"
// @Success 200 {object} map[string]any
// @Router /me/recommendations [get]
func (h *RecommendHandler) GetMyRecommendations(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	userID := UserIDFromContext(r.Context())
	movieID, _ := strconv.Atoi(r.URL.Query().Get("movie_id"))
	mode, k, refresh := parseRecQuery(r)

	res, err := h.svc.Recommend(r.Context(), service.RecRequest{
		UserID:  userID,
		MovieID: movieID,
		Mode:    mode,
		K:       k,
		Refresh: refresh,
	})
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(res)
}

// @Summary Películas similares a una dada
// @Tags recommend
// @Produce json
// @Param id path int true "movieId"
// @Param k query int false "cantidad de recomendaciones (máx 50)"
// @Param refresh query bool false "si true, ignora cache Redis"
// @Success 200 {object} map[string]any
// @Router /movies/{id}/similar [get]
func (h *RecommendHandler) GetSimilarMovies(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	movieID, _ := strconv.Atoi(chi.URLParam(r, "id"))
	_, k, refresh := parseRecQuery(r)

	res, err := h.svc.Recommend(r.Context(), service.RecRequest{
		MovieID: movieID,
		K:       k,
		Refresh: refresh,
	})
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(res)
}

// @Summary Mi historial de recomendaciones
// @Tags recommend
// @Security BearerAuth
// @Produce json
// @Param limit query int false "límite (default: 10, máx 50)"
// @Success 200 {array} models.Recommendation
// @Router /me/recommendations/history [get]
func (h *RecommendHandler) GetMyHistory(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	userID := UserIDFromContext(r.Context())
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	recs, err := h.svc.History(r.Context(), userID, limit)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(recs)
}

// @Summary Recomendaciones de un usuario (ADMIN)
// @Tags recommend
// @Security BearerAuth
// @Produce json
// @Param id path int true "userId"
// @Param mode query string false "collaborative|content (default: collaborative)"
// @Param k query int false "cantidad de recomendaciones (máx 50)"
// @Param refresh query bool false "si true, ignora cache Redis"
// @Success 200 {object} map[string]any
// @Router /users/{id}/recommendations [get]
func (h *RecommendHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	userID, _ := strconv.Atoi(chi.URLParam(r, "id"))
	mode, k, refresh := parseRecQuery(r)

	res, err := h.svc.Recommend(r.Context(), service.RecRequest{
		UserID:  userID,
		Mode:    mode,
		K:       k,
		Refresh: refresh,
	})
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(res)
}

// @Summary Estado del motor de recomendaciones (ADMIN)
// @Tags recommend
// @Security BearerAuth
// @Produce json
// @Success 200 {object} service.RecStatus
// @Router /admin/recommendations/status [get]
func (h *RecommendHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	st, err := h.svc.Status(r.Context())
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(st)
}

// upgrader global (no afecta a swagger)
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// @Summary Recomendaciones en tiempo real (WebSocket)
// @Tags recommend
// @Produce json
// @Param id path int true "userId"
// @Param k query int false "cantidad de recomendaciones (máx 50)"
// @Param refresh query bool false "si true, ignora cache Redis"
// @Success 200 {object} map[string]interface{}
// @Router /users/{id}/ws/recommendations [get]
func (h *RecommendHandler) GetRecommendationsWS(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "No se pudo abrir WebSocket", 400)
		return
	}
	defer conn.Close()

	userID, _ := strconv.Atoi(chi.URLParam(r, "id"))
	mode, k, refresh := parseRecQuery(r)

	// Mensaje inicial
	conn.WriteJSON(map[string]any{
		"type": "start",
		"msg":  "Conexión WS abierta, iniciando cálculo…",
	})

	res, err := h.svc.Recommend(r.Context(), service.RecRequest{
		UserID:  userID,
		Mode:    mode,
		K:       k,
		Refresh: refresh,
	})
	if err != nil {
		conn.WriteJSON(map[string]any{
			"type":  "error",
			"error": err.Error(),
		})
		return
	}

	// Mensaje final con recomendaciones
	conn.WriteJSON(map[string]any{
		"type":        "recommendations",
		"userId":      userID,
		"source":      res.Source,
		"items":       res.Movies,
		"generatedAt": time.Now(),
	})
}

package service

import (
	"context"
	"fmt"
	"log"

	"github.com/sabeennayazu/Movie-Mind/internal/cache"
	"github.com/sabeennayazu/Movie-Mind/internal/models"
	"github.com/sabeennayazu/Movie-Mind/internal/recommend"
	"github.com/sabeennayazu/Movie-Mind/internal/repository"
)

const (
	// DefaultK es la cantidad de recomendaciones por defecto.
	DefaultK = 10
	// MaxK acota el pedido para no devolver el catálogo entero.
	MaxK = 50

	recCacheTTLSeconds = 3600
)

// RecRequest describe un pedido de recomendaciones ya autenticado.
// UserID o MovieID en cero significan "ausente".
type RecRequest struct {
	UserID  int
	MovieID int
	Mode    recommend.Mode
	K       int
	Refresh bool
}

type RecResult struct {
	Source string
	Movies []models.MovieDoc
}

// RecStatus resume el estado de los datos frente a los umbrales del
// filtrado colaborativo. Lo consume el endpoint de admin.
type RecStatus struct {
	Users               int  `json:"users"`
	Movies              int  `json:"movies"`
	Ratings             int  `json:"ratings"`
	CollaborativeReady  bool `json:"collaborativeReady"`
	MinUsersRequired    int  `json:"minUsersRequired"`
	MinMoviesRequired   int  `json:"minMoviesRequired"`
	MinRatingsRequired  int  `json:"minRatingsRequired"`
	MinMoviesForContent int  `json:"minMoviesForContent"`
}

type RecommendService struct {
	movies    *repository.MovieRepository
	users     *repository.UserRepository
	ratings   *repository.RatingRepository
	favorites *repository.FavoriteRepository
	recs      *repository.RecommendationRepository
}

func NewRecommendService(
	movies *repository.MovieRepository,
	users *repository.UserRepository,
	ratings *repository.RatingRepository,
	favorites *repository.FavoriteRepository,
	recs *repository.RecommendationRepository,
) *RecommendService {
	return &RecommendService{
		movies:    movies,
		users:     users,
		ratings:   ratings,
		favorites: favorites,
		recs:      recs,
	}
}

func normalizeK(k int) int {
	if k <= 0 {
		return DefaultK
	}
	if k > MaxK {
		return MaxK
	}
	return k
}

func cacheKey(req RecRequest) string {
	return fmt.Sprintf("rec:user:%d:movie:%d:mode:%s:k:%d", req.UserID, req.MovieID, req.Mode, req.K)
}

// Recommend arma un snapshot de los datos, corre el motor y resuelve
// los ids a documentos de película. Los ids resultantes se cachean en
// Redis; Refresh fuerza un recálculo.
func (s *RecommendService) Recommend(ctx context.Context, req RecRequest) (*RecResult, error) {
	req.K = normalizeK(req.K)
	source := sourceFor(req)

	key := cacheKey(req)
	if !req.Refresh {
		var ids []int
		if found, _ := cache.GetJSON(ctx, key, &ids); found {
			movies, err := s.movies.GetByIDs(ctx, ids)
			if err != nil {
				return nil, err
			}
			return &RecResult{Source: source, Movies: movies}, nil
		}
	}

	snap, err := s.buildSnapshot(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	engine := recommend.NewEngine(snap)
	ids := engine.Recommend(recommend.Request{
		UserID:  req.UserID,
		MovieID: req.MovieID,
		Mode:    req.Mode,
		TopN:    req.K,
	})

	if err := cache.SetJSON(ctx, key, ids, recCacheTTLSeconds); err != nil {
		log.Printf("[recommend] no se pudo cachear %s: %v", key, err)
	}

	s.saveHistory(ctx, req, source, ids)

	movies, err := s.movies.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return &RecResult{Source: source, Movies: movies}, nil
}

// sourceFor replica la prioridad de despacho del motor para etiquetar
// el origen de la respuesta.
func sourceFor(req RecRequest) string {
	switch {
	case req.MovieID != 0:
		return "similar"
	case req.UserID != 0 && req.Mode == recommend.ModeContent:
		return "content"
	case req.UserID != 0:
		return "collaborative"
	default:
		return "popular"
	}
}

func (s *RecommendService) buildSnapshot(ctx context.Context, userID int) (recommend.Snapshot, error) {
	var snap recommend.Snapshot

	movieDocs, err := s.movies.GetAll(ctx)
	if err != nil {
		return snap, err
	}
	snap.Movies = make([]recommend.Movie, 0, len(movieDocs))
	for _, m := range movieDocs {
		snap.Movies = append(snap.Movies, recommend.Movie{
			ID:         m.MovieID,
			Title:      m.Title,
			Overview:   m.Overview,
			Genres:     m.Genres,
			Popularity: m.Popularity,
		})
	}

	snap.UserIDs, err = s.users.GetAllIDs(ctx)
	if err != nil {
		return snap, err
	}

	ratingDocs, err := s.ratings.GetAll(ctx)
	if err != nil {
		return snap, err
	}
	snap.Ratings = make([]recommend.Rating, 0, len(ratingDocs))
	for _, r := range ratingDocs {
		snap.Ratings = append(snap.Ratings, recommend.Rating{
			UserID:  r.UserID,
			MovieID: r.MovieID,
			Value:   r.Rating,
		})
	}

	if userID != 0 {
		snap.FavoriteIDs, err = s.favorites.MovieIDsByUser(ctx, userID)
		if err != nil {
			return snap, err
		}
	}

	return snap, nil
}

// saveHistory persiste el resultado como historial. Un fallo acá no
// corta la respuesta.
func (s *RecommendService) saveHistory(ctx context.Context, req RecRequest, source string, ids []int) {
	if req.UserID == 0 || len(ids) == 0 {
		return
	}

	items := make([]models.RecItem, 0, len(ids))
	for i, id := range ids {
		items = append(items, models.RecItem{MovieID: id, Rank: i + 1})
	}

	rec := &models.Recommendation{
		UserID: req.UserID,
		Source: source,
		Params: map[string]any{
			"movieId": req.MovieID,
			"mode":    string(req.Mode),
			"k":       req.K,
		},
		Items: items,
	}
	if err := s.recs.Insert(ctx, rec); err != nil {
		log.Printf("[recommend] no se pudo guardar historial del usuario %d: %v", req.UserID, err)
	}
}

func (s *RecommendService) History(ctx context.Context, userID, limit int) ([]models.Recommendation, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	return s.recs.FindByUser(ctx, userID, int64(limit))
}

// Status informa los conteos actuales contra los umbrales del
// filtrado colaborativo.
func (s *RecommendService) Status(ctx context.Context) (*RecStatus, error) {
	users, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	movies, err := s.movies.Count(ctx)
	if err != nil {
		return nil, err
	}
	ratings, err := s.ratings.Count(ctx)
	if err != nil {
		return nil, err
	}

	st := &RecStatus{
		Users:               int(users),
		Movies:              int(movies),
		Ratings:             int(ratings),
		MinUsersRequired:    5,
		MinMoviesRequired:   5,
		MinRatingsRequired:  10,
		MinMoviesForContent: 2,
	}
	st.CollaborativeReady = st.Users >= st.MinUsersRequired &&
		st.Movies >= st.MinMoviesRequired &&
		st.Ratings >= st.MinRatingsRequired
	return st, nil
}

package service

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/sabeennayazu/Movie-Mind/internal/cache"
	"github.com/sabeennayazu/Movie-Mind/internal/models"
	"github.com/sabeennayazu/Movie-Mind/internal/repository"
)

type MovieService struct {
	movies    *repository.MovieRepository
	favorites *repository.FavoriteRepository
}

func NewMovieService(movies *repository.MovieRepository, favorites *repository.FavoriteRepository) *MovieService {
	return &MovieService{movies: movies, favorites: favorites}
}

func (s *MovieService) GetByID(ctx context.Context, movieID int) (*models.MovieDoc, error) {
	return s.movies.GetByID(ctx, movieID)
}

func (s *MovieService) Search(ctx context.Context, q, genre string, yearFrom, yearTo, limit, offset int) ([]models.MovieDoc, error) {
	return s.movies.Search(ctx, q, genre, yearFrom, yearTo, limit, offset)
}

// Top devuelve las películas mejor puntuadas según el criterio pedido
// (popular | rating). Se cachea en Redis porque el catálogo cambia poco.
func (s *MovieService) Top(ctx context.Context, by string, limit int) ([]models.MovieDoc, error) {
	if by != "popular" && by != "rating" {
		return nil, fmt.Errorf("invalid sort criteria (must be popular|rating)")
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	cacheKey := fmt.Sprintf("movies:top:%s:%d", by, limit)
	var cached []models.MovieDoc
	if found, _ := cache.GetJSON(ctx, cacheKey, &cached); found {
		return cached, nil
	}

	movies, err := s.movies.Top(ctx, by, limit)
	if err != nil {
		return nil, err
	}

	if err := cache.SetJSON(ctx, cacheKey, movies, 600); err != nil {
		log.Printf("[movies] no se pudo cachear top %s: %v", by, err)
	}
	return movies, nil
}

// Trending ordena por cantidad de favoritos; empates se resuelven por
// popularidad del catálogo.
func (s *MovieService) Trending(ctx context.Context, limit int) ([]models.MovieDoc, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	cacheKey := fmt.Sprintf("movies:trending:%d", limit)
	var cached []models.MovieDoc
	if found, _ := cache.GetJSON(ctx, cacheKey, &cached); found {
		return cached, nil
	}

	counts, err := s.favorites.CountsByMovie(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]int, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	movies, err := s.movies.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(movies, func(i, j int) bool {
		ci, cj := counts[movies[i].MovieID], counts[movies[j].MovieID]
		if ci != cj {
			return ci > cj
		}
		return movies[i].Popularity > movies[j].Popularity
	})
	if len(movies) > limit {
		movies = movies[:limit]
	}

	if err := cache.SetJSON(ctx, cacheKey, movies, 300); err != nil {
		log.Printf("[movies] no se pudo cachear trending: %v", err)
	}
	return movies, nil
}

func (s *MovieService) Genres(ctx context.Context) ([]string, error) {
	cacheKey := "movies:genres"
	var cached []string
	if found, _ := cache.GetJSON(ctx, cacheKey, &cached); found {
		return cached, nil
	}

	genres, err := s.movies.DistinctGenres(ctx)
	if err != nil {
		return nil, err
	}
	sort.Strings(genres)

	if err := cache.SetJSON(ctx, cacheKey, genres, 3600); err != nil {
		log.Printf("[movies] no se pudo cachear géneros: %v", err)
	}
	return genres, nil
}

// Create da de alta una película en el catálogo (solo admin).
func (s *MovieService) Create(ctx context.Context, req models.MovieCreateRequest) (*models.MovieDoc, error) {
	if req.Title == "" {
		return nil, fmt.Errorf("title is required")
	}

	nextID, err := s.movies.GetNextMovieID(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	m := &models.MovieDoc{
		MovieID:      nextID,
		Title:        req.Title,
		Overview:     req.Overview,
		ReleaseDate:  req.ReleaseDate,
		Genres:       req.Genres,
		Popularity:   req.Popularity,
		VoteAverage:  req.VoteAverage,
		VoteCount:    req.VoteCount,
		PosterPath:   req.PosterPath,
		BackdropPath: req.BackdropPath,
		TMDBID:       req.TMDBID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.movies.Insert(ctx, m); err != nil {
		return nil, err
	}
	s.invalidateCatalogCache(ctx)
	return m, nil
}

// Update aplica cambios parciales sobre una película existente.
func (s *MovieService) Update(ctx context.Context, movieID int, req models.MovieUpdateRequest) (*models.MovieDoc, error) {
	m, err := s.movies.GetByID(ctx, movieID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, fmt.Errorf("movie not found")
	}

	if req.Title != nil {
		if *req.Title == "" {
			return nil, fmt.Errorf("title cannot be empty")
		}
		m.Title = *req.Title
	}
	if req.Overview != nil {
		m.Overview = *req.Overview
	}
	if req.ReleaseDate != nil {
		m.ReleaseDate = *req.ReleaseDate
	}
	if req.Genres != nil {
		m.Genres = *req.Genres
	}
	if req.Popularity != nil {
		m.Popularity = *req.Popularity
	}
	if req.VoteAverage != nil {
		m.VoteAverage = *req.VoteAverage
	}
	if req.VoteCount != nil {
		m.VoteCount = *req.VoteCount
	}
	if req.PosterPath != nil {
		m.PosterPath = *req.PosterPath
	}
	if req.BackdropPath != nil {
		m.BackdropPath = *req.BackdropPath
	}
	m.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := s.movies.Update(ctx, m); err != nil {
		return nil, err
	}
	s.invalidateCatalogCache(ctx)
	return m, nil
}

func (s *MovieService) invalidateCatalogCache(ctx context.Context) {
	if err := cache.Del(ctx, "movies:genres"); err != nil {
		log.Printf("[movies] no se pudo invalidar cache: %v", err)
	}
}

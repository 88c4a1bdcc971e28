package service

import (
	"context"
	"fmt"

	"github.com/sabeennayazu/Movie-Mind/internal/models"
	"github.com/sabeennayazu/Movie-Mind/internal/repository"
)

type WatchlistService struct {
	watchlist *repository.WatchlistRepository
	movies    *repository.MovieRepository
}

func NewWatchlistService(watchlist *repository.WatchlistRepository, movies *repository.MovieRepository) *WatchlistService {
	return &WatchlistService{watchlist: watchlist, movies: movies}
}

// Toggle agrega o quita una película de la lista de pendientes.
func (s *WatchlistService) Toggle(ctx context.Context, userID, movieID int) (string, error) {
	m, err := s.movies.GetByID(ctx, movieID)
	if err != nil {
		return "", err
	}
	if m == nil {
		return "", fmt.Errorf("movie not found")
	}

	existing, err := s.watchlist.GetOne(ctx, userID, movieID)
	if err != nil {
		return "", err
	}

	if existing != nil {
		if err := s.watchlist.Delete(ctx, userID, movieID); err != nil {
			return "", err
		}
		return "removed", nil
	}

	if err := s.watchlist.Insert(ctx, userID, movieID); err != nil {
		return "", err
	}
	return "added", nil
}

func (s *WatchlistService) ListWithMovies(ctx context.Context, userID int) ([]models.MovieDoc, error) {
	entries, err := s.watchlist.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	ids := make([]int, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.MovieID)
	}
	return s.movies.GetByIDs(ctx, ids)
}

package service

import (
	"context"
	"fmt"

	"github.com/sabeennayazu/Movie-Mind/internal/models"
	"github.com/sabeennayazu/Movie-Mind/internal/repository"
)

type FavoriteService struct {
	favorites *repository.FavoriteRepository
	movies    *repository.MovieRepository
}

func NewFavoriteService(favorites *repository.FavoriteRepository, movies *repository.MovieRepository) *FavoriteService {
	return &FavoriteService{favorites: favorites, movies: movies}
}

// Toggle agrega o quita una película de favoritos. Devuelve el estado
// resultante ("added" | "removed").
func (s *FavoriteService) Toggle(ctx context.Context, userID, movieID int) (string, error) {
	m, err := s.movies.GetByID(ctx, movieID)
	if err != nil {
		return "", err
	}
	if m == nil {
		return "", fmt.Errorf("movie not found")
	}

	existing, err := s.favorites.GetOne(ctx, userID, movieID)
	if err != nil {
		return "", err
	}

	if existing != nil {
		if err := s.favorites.Delete(ctx, userID, movieID); err != nil {
			return "", err
		}
		return "removed", nil
	}

	if err := s.favorites.Insert(ctx, userID, movieID); err != nil {
		return "", err
	}
	return "added", nil
}

// ListWithMovies devuelve los favoritos del usuario resueltos a
// documentos de película, más recientes primero.
func (s *FavoriteService) ListWithMovies(ctx context.Context, userID int) ([]models.MovieDoc, error) {
	favs, err := s.favorites.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	ids := make([]int, 0, len(favs))
	for _, f := range favs {
		ids = append(ids, f.MovieID)
	}
	return s.movies.GetByIDs(ctx, ids)
}

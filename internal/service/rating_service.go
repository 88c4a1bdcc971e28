package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/sabeennayazu/Movie-Mind/internal/models"
	"github.com/sabeennayazu/Movie-Mind/internal/repository"
)

type RatingService struct {
	ratings *repository.RatingRepository
	movies  *repository.MovieRepository
}

func NewRatingService(ratings *repository.RatingRepository, movies *repository.MovieRepository) *RatingService {
	return &RatingService{ratings: ratings, movies: movies}
}

// AddOrUpdate guarda la puntuación de un usuario para una película y
// mantiene el promedio incremental en el documento de la película.
func (s *RatingService) AddOrUpdate(ctx context.Context, userID, movieID, rating int, comment string) error {
	if rating < 1 || rating > 10 {
		return fmt.Errorf("rating must be between 1 and 10")
	}

	m, err := s.movies.GetByID(ctx, movieID)
	if err != nil {
		return err
	}
	if m == nil {
		return fmt.Errorf("movie not found")
	}

	prev, err := s.ratings.GetOne(ctx, userID, movieID)
	if err != nil {
		return err
	}

	if err := s.ratings.UpsertRating(ctx, userID, movieID, rating, comment); err != nil {
		return err
	}

	// Promedio incremental: se descuenta la puntuación anterior si la
	// hubo y se suma la nueva, sin recorrer toda la colección.
	stats := m.RatingStats
	if stats == nil {
		stats = &models.RatingStats{}
	}
	total := stats.Average * float64(stats.Count)
	if prev != nil {
		total -= float64(prev.Rating)
	} else {
		stats.Count++
	}
	total += float64(rating)
	if stats.Count > 0 {
		stats.Average = total / float64(stats.Count)
	}
	stats.LastRatedAt = time.Now().UTC().Format(time.RFC3339)

	m.RatingStats = stats
	if err := s.movies.Update(ctx, m); err != nil {
		log.Printf("[ratings] no se pudo actualizar ratingStats de %d: %v", movieID, err)
	}
	return nil
}

func (s *RatingService) GetByUser(ctx context.Context, userID int) ([]models.RatingDoc, error) {
	return s.ratings.GetAllByUser(ctx, userID)
}

func (s *RatingService) GetByMovie(ctx context.Context, movieID int) ([]models.RatingDoc, error) {
	return s.ratings.GetByMovie(ctx, movieID)
}

func (s *RatingService) GetOne(ctx context.Context, userID, movieID int) (*models.RatingDoc, error) {
	return s.ratings.GetOne(ctx, userID, movieID)
}

package repository

import (
	"context"
	"time"

	"github.com/sabeennayazu/Movie-Mind/internal/db"
	"github.com/sabeennayazu/Movie-Mind/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type WatchlistRepository struct {
	col *mongo.Collection
}

func NewWatchlistRepository() *WatchlistRepository {
	return &WatchlistRepository{col: db.DB().Collection("watchlist")}
}

func (r *WatchlistRepository) GetOne(ctx context.Context, userID, movieID int) (*models.WatchlistDoc, error) {
	var w models.WatchlistDoc
	err := r.col.FindOne(ctx, bson.M{"userId": userID, "movieId": movieID}).Decode(&w)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &w, err
}

func (r *WatchlistRepository) Insert(ctx context.Context, userID, movieID int) error {
	_, err := r.col.InsertOne(ctx, models.WatchlistDoc{
		UserID:  userID,
		MovieID: movieID,
		AddedAt: time.Now().UTC().Format(time.RFC3339),
	})
	return err
}

func (r *WatchlistRepository) Delete(ctx context.Context, userID, movieID int) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"userId": userID, "movieId": movieID})
	return err
}

func (r *WatchlistRepository) ListByUser(ctx context.Context, userID int) ([]models.WatchlistDoc, error) {
	cur, err := r.col.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.WatchlistDoc
	for cur.Next(ctx) {
		var w models.WatchlistDoc
		if err := cur.Decode(&w); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, cur.Err()
}

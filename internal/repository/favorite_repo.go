package repository

import (
	"context"
	"time"

	"github.com/sabeennayazu/Movie-Mind/internal/db"
	"github.com/sabeennayazu/Movie-Mind/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type FavoriteRepository struct {
	col *mongo.Collection
}

func NewFavoriteRepository() *FavoriteRepository {
	return &FavoriteRepository{col: db.DB().Collection("favorites")}
}

func (r *FavoriteRepository) GetOne(ctx context.Context, userID, movieID int) (*models.FavoriteDoc, error) {
	var f models.FavoriteDoc
	err := r.col.FindOne(ctx, bson.M{"userId": userID, "movieId": movieID}).Decode(&f)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &f, err
}

func (r *FavoriteRepository) Insert(ctx context.Context, userID, movieID int) error {
	_, err := r.col.InsertOne(ctx, models.FavoriteDoc{
		UserID:    userID,
		MovieID:   movieID,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	})
	return err
}

func (r *FavoriteRepository) Delete(ctx context.Context, userID, movieID int) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"userId": userID, "movieId": movieID})
	return err
}

func (r *FavoriteRepository) ListByUser(ctx context.Context, userID int) ([]models.FavoriteDoc, error) {
	cur, err := r.col.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.FavoriteDoc
	for cur.Next(ctx) {
		var f models.FavoriteDoc
		if err := cur.Decode(&f); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, cur.Err()
}

// MovieIDsByUser devuelve solo los ids: son las semillas del filtrado por contenido.
func (r *FavoriteRepository) MovieIDsByUser(ctx context.Context, userID int) ([]int, error) {
	favs, err := r.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	ids := make([]int, 0, len(favs))
	for _, f := range favs {
		ids = append(ids, f.MovieID)
	}
	return ids, nil
}

// CountsByMovie agrupa favoritos por película, para el ranking "trending".
func (r *FavoriteRepository) CountsByMovie(ctx context.Context) (map[int]int64, error) {
	pipeline := []bson.M{
		{"$group": bson.M{"_id": "$movieId", "count": bson.M{"$sum": 1}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make(map[int]int64)
	for cur.Next(ctx) {
		var row struct {
			MovieID int   `bson:"_id"`
			Count   int64 `bson:"count"`
		}
		if err := cur.Decode(&row); err != nil {
			return nil, err
		}
		out[row.MovieID] = row.Count
	}
	return out, cur.Err()
}

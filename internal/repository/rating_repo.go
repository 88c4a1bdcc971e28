package repository

import (
	"context"
	"time"

	"github.com/sabeennayazu/Movie-Mind/internal/db"
	"github.com/sabeennayazu/Movie-Mind/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type RatingRepository struct {
	col *mongo.Collection
}

func NewRatingRepository() *RatingRepository {
	return &RatingRepository{col: db.DB().Collection("ratings")}
}

func (r *RatingRepository) UpsertRating(ctx context.Context, userID, movieID, rating int, comment string) error {
	set := bson.M{
		"rating": rating,
		// guardamos epoch (int64)
		"timestamp": time.Now().Unix(),
	}
	if comment != "" {
		set["comment"] = comment
	}

	_, err := r.col.UpdateOne(ctx,
		bson.M{"userId": userID, "movieId": movieID},
		bson.M{"$set": set},
		options.Update().SetUpsert(true),
	)
	return err
}

func (r *RatingRepository) GetOne(ctx context.Context, userID, movieID int) (*models.RatingDoc, error) {
	var rd models.RatingDoc
	err := r.col.FindOne(ctx, bson.M{"userId": userID, "movieId": movieID}).Decode(&rd)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &rd, err
}

func (r *RatingRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.RatingDoc, error) {
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.RatingDoc
	for cur.Next(ctx) {
		var rd models.RatingDoc
		if err := cur.Decode(&rd); err != nil {
			return nil, err
		}
		out = append(out, rd)
	}
	return out, cur.Err()
}

func (r *RatingRepository) GetByUser(ctx context.Context, userID, limit, offset int) ([]models.RatingDoc, error) {
	return r.find(ctx,
		bson.M{"userId": userID},
		options.Find().SetLimit(int64(limit)).SetSkip(int64(offset)),
	)
}

func (r *RatingRepository) GetAllByUser(ctx context.Context, userID int) ([]models.RatingDoc, error) {
	return r.GetByUser(ctx, userID, 10000, 0)
}

func (r *RatingRepository) GetByMovie(ctx context.Context, movieID int) ([]models.RatingDoc, error) {
	return r.find(ctx, bson.M{"movieId": movieID}, options.Find())
}

// GetAll trae todos los ratings: es el snapshot que usa el filtrado colaborativo.
func (r *RatingRepository) GetAll(ctx context.Context) ([]models.RatingDoc, error) {
	return r.find(ctx, bson.M{}, options.Find())
}

func (r *RatingRepository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

package repository

import (
	"context"
	"fmt"

	"github.com/sabeennayazu/Movie-Mind/internal/db"
	"github.com/sabeennayazu/Movie-Mind/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MovieRepository struct {
	col *mongo.Collection
}

func NewMovieRepository() *MovieRepository {
	return &MovieRepository{col: db.DB().Collection("movies")}
}

func (r *MovieRepository) GetByID(ctx context.Context, movieID int) (*models.MovieDoc, error) {
	var m models.MovieDoc
	err := r.col.FindOne(ctx, bson.M{"movieId": movieID}).Decode(&m)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &m, err
}

// GetAll devuelve el catálogo completo ordenado por popularidad descendente.
// Este es el snapshot que consume el motor de recomendaciones: el orden
// define los índices internos, así que siempre se pide igual.
func (r *MovieRepository) GetAll(ctx context.Context) ([]models.MovieDoc, error) {
	opts := options.Find().SetSort(bson.D{{Key: "popularity", Value: -1}})

	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.MovieDoc
	for cur.Next(ctx) {
		var m models.MovieDoc
		if err := cur.Decode(&m); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, cur.Err()
}

func (r *MovieRepository) Search(
	ctx context.Context,
	q string,
	genre string,
	yearFrom, yearTo int,
	limit, offset int,
) ([]models.MovieDoc, error) {

	filter := bson.M{}

	if q != "" {
		// título u overview, como el buscador del frontend
		filter["$or"] = []bson.M{
			{"title": bson.M{"$regex": q, "$options": "i"}},
			{"overview": bson.M{"$regex": q, "$options": "i"}},
		}
	}
	if genre != "" {
		// genres es un array, esto busca que contenga ese género
		filter["genres"] = genre
	}
	if yearFrom > 0 || yearTo > 0 {
		// releaseDate es "YYYY-MM-DD", la comparación lexicográfica
		// alcanza para acotar por año
		dateCond := bson.M{}
		if yearFrom > 0 {
			dateCond["$gte"] = fmt.Sprintf("%04d-01-01", yearFrom)
		}
		if yearTo > 0 {
			dateCond["$lte"] = fmt.Sprintf("%04d-12-31", yearTo)
		}
		filter["releaseDate"] = dateCond
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "popularity", Value: -1}}).
		SetLimit(int64(limit)).
		SetSkip(int64(offset))

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.MovieDoc
	for cur.Next(ctx) {
		var m models.MovieDoc
		if err := cur.Decode(&m); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, cur.Err()
}

// Top por popularidad o rating promedio.
func (r *MovieRepository) Top(ctx context.Context, metric string, limit int) ([]models.MovieDoc, error) {
	sortField := "popularity"
	if metric == "rating" {
		sortField = "ratingStats.average"
	}

	opts := options.Find().
		SetSort(bson.D{{Key: sortField, Value: -1}}).
		SetLimit(int64(limit))

	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.MovieDoc
	for cur.Next(ctx) {
		var m models.MovieDoc
		if err := cur.Decode(&m); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, cur.Err()
}

// DistinctGenres lista los nombres de género que existen en el catálogo.
func (r *MovieRepository) DistinctGenres(ctx context.Context) ([]string, error) {
	raw, err := r.col.Distinct(ctx, "genres", bson.M{})
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out, nil
}

// GetByIDs resuelve una lista de ids preservando el orden pedido
// (el orden viene del motor y es significativo).
func (r *MovieRepository) GetByIDs(ctx context.Context, ids []int) ([]models.MovieDoc, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	cur, err := r.col.Find(ctx, bson.M{"movieId": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	byID := make(map[int]models.MovieDoc, len(ids))
	for cur.Next(ctx) {
		var m models.MovieDoc
		if err := cur.Decode(&m); err != nil {
			return nil, err
		}
		byID[m.MovieID] = m
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}

	out := make([]models.MovieDoc, 0, len(ids))
	for _, id := range ids {
		if m, ok := byID[id]; ok {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *MovieRepository) GetNextMovieID(ctx context.Context) (int, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "movieId", Value: -1}})
	var m models.MovieDoc
	err := r.col.FindOne(ctx, bson.M{}, opts).Decode(&m)
	if err == mongo.ErrNoDocuments {
		return 1, nil
	}
	if err != nil {
		return 0, err
	}
	return m.MovieID + 1, nil
}

func (r *MovieRepository) Insert(ctx context.Context, m *models.MovieDoc) error {
	_, err := r.col.InsertOne(ctx, m)
	return err
}

func (r *MovieRepository) Update(ctx context.Context, m *models.MovieDoc) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"movieId": m.MovieID}, m)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Upsert reemplaza la película por movieId, o la crea si no existe.
// Lo usa el seeder para poder correrse más de una vez.
func (r *MovieRepository) Upsert(ctx context.Context, m *models.MovieDoc) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.col.ReplaceOne(ctx, bson.M{"movieId": m.MovieID}, m, opts)
	return err
}

func (r *MovieRepository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

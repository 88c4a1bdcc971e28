package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RecItem struct {
	MovieID int `bson:"movieId" json:"movieId"`
	Rank    int `bson:"rank"    json:"rank"`
}

// Recommendation es el historial que guardamos en Mongo por cada cálculo.
type Recommendation struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    int                `bson:"userId"        json:"userId"`
	Source    string             `bson:"source"        json:"source"` // similar|collaborative|content|popular
	Params    any                `bson:"params"        json:"params"`
	Items     []RecItem          `bson:"items"         json:"items"`
	CreatedAt time.Time          `bson:"createdAt"     json:"createdAt"`
}

package models

// Lo que está en Mongo. El rating es entero en [1,10], único por (user, movie).
type RatingDoc struct {
	UserID    int    `json:"userId" bson:"userId"`
	MovieID   int    `json:"movieId" bson:"movieId"`
	Rating    int    `json:"rating" bson:"rating"`
	Comment   string `json:"comment,omitempty" bson:"comment,omitempty"`
	Timestamp int64  `json:"timestamp" bson:"timestamp"`
}

package models

type FavoriteDoc struct {
	UserID    int    `json:"userId" bson:"userId"`
	MovieID   int    `json:"movieId" bson:"movieId"`
	CreatedAt string `json:"createdAt" bson:"createdAt"`
}

type WatchlistDoc struct {
	UserID  int    `json:"userId" bson:"userId"`
	MovieID int    `json:"movieId" bson:"movieId"`
	AddedAt string `json:"addedAt" bson:"addedAt"`
}

package models

// RatingStats se mantiene incrementalmente cada vez que llega un rating.
type RatingStats struct {
	Average     float64 `json:"average" bson:"average"`
	Count       int     `json:"count" bson:"count"`
	LastRatedAt string  `json:"lastRatedAt,omitempty" bson:"lastRatedAt,omitempty"`
}

type MovieDoc struct {
	MovieID      int          `json:"movieId" bson:"movieId"`
	Title        string       `json:"title" bson:"title"`
	Overview     string       `json:"overview" bson:"overview"`
	ReleaseDate  string       `json:"releaseDate,omitempty" bson:"releaseDate,omitempty"`
	Genres       []string     `json:"genres" bson:"genres"`
	Popularity   float64      `json:"popularity" bson:"popularity"`
	VoteAverage  float64      `json:"voteAverage" bson:"voteAverage"`
	VoteCount    int          `json:"voteCount" bson:"voteCount"`
	PosterPath   string       `json:"posterPath,omitempty" bson:"posterPath,omitempty"`
	BackdropPath string       `json:"backdropPath,omitempty" bson:"backdropPath,omitempty"`
	TMDBID       *int         `json:"tmdbId,omitempty" bson:"tmdbId,omitempty"`
	RatingStats  *RatingStats `json:"ratingStats,omitempty" bson:"ratingStats,omitempty"`
	CreatedAt    string       `json:"createdAt" bson:"createdAt"`
	UpdatedAt    string       `json:"updatedAt" bson:"updatedAt"`
}

// Payload para crear una película (solo admin).
type MovieCreateRequest struct {
	Title        string   `json:"title"` // obligatorio
	Overview     string   `json:"overview,omitempty"`
	ReleaseDate  string   `json:"releaseDate,omitempty"`
	Genres       []string `json:"genres,omitempty"`
	Popularity   float64  `json:"popularity,omitempty"`
	VoteAverage  float64  `json:"voteAverage,omitempty"`
	VoteCount    int      `json:"voteCount,omitempty"`
	PosterPath   string   `json:"posterPath,omitempty"`
	BackdropPath string   `json:"backdropPath,omitempty"`
	TMDBID       *int     `json:"tmdbId,omitempty"`
}

// Payload para actualización parcial de película.
type MovieUpdateRequest struct {
	Title        *string   `json:"title,omitempty"`
	Overview     *string   `json:"overview,omitempty"`
	ReleaseDate  *string   `json:"releaseDate,omitempty"`
	Genres       *[]string `json:"genres,omitempty"`
	Popularity   *float64  `json:"popularity,omitempty"`
	VoteAverage  *float64  `json:"voteAverage,omitempty"`
	VoteCount    *int      `json:"voteCount,omitempty"`
	PosterPath   *string   `json:"posterPath,omitempty"`
	BackdropPath *string   `json:"backdropPath,omitempty"`
}

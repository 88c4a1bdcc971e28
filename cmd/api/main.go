package main

import (
	"log"
	"net/http"

	"github.com/sabeennayazu/Movie-Mind/internal/cache"
	"github.com/sabeennayazu/Movie-Mind/internal/config"
	"github.com/sabeennayazu/Movie-Mind/internal/db"
	"github.com/sabeennayazu/Movie-Mind/internal/handler"
	"github.com/sabeennayazu/Movie-Mind/internal/repository"
	"github.com/sabeennayazu/Movie-Mind/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title Movie Mind API
// @version 1.0
// @description API de recomendación de películas (TF-IDF + filtrado colaborativo, Mongo, Redis)
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	// Mongo y Redis
	db.InitMongo(cfg)
	cache.InitRedis(cfg)

	// repos
	userRepo := repository.NewUserRepository()
	movieRepo := repository.NewMovieRepository()
	ratingRepo := repository.NewRatingRepository()
	favoriteRepo := repository.NewFavoriteRepository()
	watchlistRepo := repository.NewWatchlistRepository()
	recRepo := repository.NewRecommendationRepository()

	// services
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret)
	movieSvc := service.NewMovieService(movieRepo, favoriteRepo)
	ratingSvc := service.NewRatingService(ratingRepo, movieRepo)
	favoriteSvc := service.NewFavoriteService(favoriteRepo, movieRepo)
	watchlistSvc := service.NewWatchlistService(watchlistRepo, movieRepo)
	// el motor corre en el proceso, sobre un snapshot por request
	recSvc := service.NewRecommendService(movieRepo, userRepo, ratingRepo, favoriteRepo, recRepo)

	// handlers
	authH := handler.NewAuthHandler(authSvc)
	movieH := handler.NewMovieHandler(movieSvc)
	ratingH := handler.NewRatingHandler(ratingSvc)
	favoriteH := handler.NewFavoriteHandler(favoriteSvc)
	watchlistH := handler.NewWatchlistHandler(watchlistSvc)
	recH := handler.NewRecommendHandler(recSvc)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// =============
	// Rutas públicas
	// =============
	r.Get("/health", handler.Health)

	r.Post("/auth/register", authH.Register)
	r.Post("/auth/login", authH.Login)

	// Películas (públicas)
	r.Get("/movies/search", movieH.Search)
	r.Get("/movies/top", movieH.Top)
	r.Get("/movies/trending", movieH.Trending)
	r.Get("/movies/{id}", movieH.GetMovie)
	r.Get("/movies/{id}/ratings", ratingH.GetMovieRatings)
	r.Get("/movies/{id}/similar", recH.GetSimilarMovies)
	r.Get("/genres", movieH.Genres)

	// ===========================
	// Rutas protegidas con JWT
	// ===========================
	authMw := handler.JWTAuth(cfg.JWTSecret)

	r.Group(func(r chi.Router) {
		r.Use(authMw)

		// ---- Endpoints /me (USER normal) ----
		r.Route("/me", func(r chi.Router) {
			r.Get("/ratings", ratingH.GetMyRatings)
			r.Post("/ratings", ratingH.PostMyRating)

			r.Get("/favorites", favoriteH.List)
			r.Post("/favorites", favoriteH.Toggle)

			r.Get("/watchlist", watchlistH.List)
			r.Post("/watchlist", watchlistH.Toggle)

			r.Get("/recommendations", recH.GetMyRecommendations)
			r.Get("/recommendations/history", recH.GetMyHistory)
		})

		// ---- Endpoints solo ADMIN ----
		r.Group(func(r chi.Router) {
			r.Use(handler.AdminOnly())

			// edición de usuario
			r.Put("/users/{id}/update", authH.UpdateUser)

			// gestión de películas
			r.Post("/admin/movies", movieH.CreateMovie)
			r.Put("/admin/movies/{id}", movieH.UpdateMovie)
			r.Get("/users", authH.ListUsers)

			// ratings y recomendaciones de cualquier usuario
			r.Route("/users/{id}", func(r chi.Router) {
				// obtener info del usuario por id
				r.Get("/", authH.GetUserByID)

				r.Get("/ratings", ratingH.GetRatings)
				r.Post("/ratings", ratingH.PostRating)

				// HTTP normal
				r.Get("/recommendations", recH.GetRecommendations)

				// WebSocket
				r.Get("/ws/recommendations", recH.GetRecommendationsWS)
			})

			// estado del motor frente a los umbrales del colaborativo
			r.Get("/admin/recommendations/status", recH.GetStatus)
		})
	})

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	log.Printf("HTTP escuchando en :%s", cfg.HTTPPort)
	log.Fatal(http.ListenAndServe(":"+cfg.HTTPPort, r))
}

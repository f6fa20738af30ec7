package routes

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/rubickshop/rubick-cup/handlers"
	"github.com/rubickshop/rubick-cup/middleware"
)

func SetupRoutes(
	router *chi.Mux,
	jwtSecret []byte,
	webhookHandler *handlers.WebhookHandler,
	authHandler *handlers.AuthHandler,
	tournamentHandler *handlers.TournamentHandler,
	webSocketHandler *handlers.WebSocketHandler,
) {
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	router.Post("/webhook/{token}", webhookHandler.Receive)

	router.Post("/auth/login", authHandler.Login)

	// Публичные маршруты дашборда
	router.Get("/teams", tournamentHandler.ListTeams)
	router.Get("/bracket", tournamentHandler.GetBracket)
	router.Get("/results", tournamentHandler.GetResults)
	router.Get("/ws", webSocketHandler.ServeWs)

	// Только для организатора
	router.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(jwtSecret))
		r.Use(middleware.RequireOrganizer)

		r.Post("/bracket/generate", tournamentHandler.GenerateBracket)
	})
}

package routes

import (
	"github.com/Dosada05/league-management/handlers"
	"github.com/Dosada05/league-management/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func SetupRoutes(
	router *chi.Mux,
	jwtSecret string,
	authHandler *handlers.AuthHandler,
	teamHandler *handlers.TeamHandler,
	playerHandler *handlers.PlayerHandler,
	gameHandler *handlers.GameHandler,
	statsHandler *handlers.StatsHandler,
	webSocketHandler *handlers.WebSocketHandler,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	router.Post("/login", authHandler.Login)

	router.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate([]byte(jwtSecret)))

		r.Post("/logout", authHandler.Logout)
		r.Get("/scoreboard", gameHandler.GetScoreboard)
		r.Get("/stats", statsHandler.GetSystemUserStats)

		r.Route("/teams", func(r chi.Router) {
			r.Post("/", teamHandler.CreateTeam)
			r.Get("/{teamID}", teamHandler.GetTeamDetails)
			r.Put("/{teamID}/logo", teamHandler.UploadTeamLogo)
		})

		r.Get("/players/{playerID}", playerHandler.GetPlayerDetails)

		r.Route("/games", func(r chi.Router) {
			r.Post("/", gameHandler.RecordGame)
			r.Post("/{gameID}/players", gameHandler.RecordPlayerScore)
		})
	})

	router.Get("/ws/scoreboard", webSocketHandler.ServeScoreboard)
}

package routes

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/placarjuarez/placar-api/handlers"
	"github.com/placarjuarez/placar-api/middleware"
	"github.com/placarjuarez/placar-api/models"
)

// SetupRoutes wires the HTTP surface. Reads are public so scoreboard
// clients need no account; writes require an authenticated staff or
// admin token.
func SetupRoutes(
	router *chi.Mux,
	allowedOrigins []string,
	jwtSecret string,
	authHandler *handlers.AuthHandler,
	tournamentHandler *handlers.TournamentHandler,
	modalityHandler *handlers.ModalityHandler,
	teamHandler *handlers.TeamHandler,
	matchHandler *handlers.MatchHandler,
	danceHandler *handlers.DanceHandler,
	extraHandler *handlers.ExtraHandler,
	rankingHandler *handlers.RankingHandler,
	webSocketHandler *handlers.WebSocketHandler,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	staffOnly := func(r chi.Router) chi.Router {
		r.Use(middleware.Authenticate(jwtSecret))
		r.Use(middleware.Authorize(string(models.RoleAdmin), string(models.RoleStaff)))
		return r
	}

	router.Post("/auth/login", authHandler.LoginHandler)

	router.Route("/tournaments", func(r chi.Router) {
		r.Get("/", tournamentHandler.ListHandler)
		r.Get("/{tournamentID}", tournamentHandler.GetHandler)
		r.Get("/{tournamentID}/matches", matchHandler.ListByTournamentHandler)
		r.Get("/{tournamentID}/dances", danceHandler.ListByTournamentHandler)
		r.Get("/{tournamentID}/extras", extraHandler.ListByTournamentHandler)
		r.Get("/{tournamentID}/standings", rankingHandler.StandingsHandler)
		r.Get("/{tournamentID}/standings/modality/{modalityID}", rankingHandler.ModalityStandingsHandler)
		r.Get("/{tournamentID}/teams/{teamID}/score-breakdown", rankingHandler.TeamBreakdownHandler)

		r.Group(func(r chi.Router) {
			staffOnly(r)
			r.Post("/", tournamentHandler.CreateHandler)
			r.Put("/{tournamentID}", tournamentHandler.UpdateHandler)
			r.Delete("/{tournamentID}", tournamentHandler.DeleteHandler)
		})
	})

	router.Route("/modalities", func(r chi.Router) {
		r.Get("/", modalityHandler.ListHandler)
		r.Get("/{modalityID}", modalityHandler.GetHandler)

		r.Group(func(r chi.Router) {
			staffOnly(r)
			r.Post("/", modalityHandler.CreateHandler)
			r.Put("/{modalityID}", modalityHandler.UpdateHandler)
			r.Delete("/{modalityID}", modalityHandler.DeleteHandler)
		})
	})

	router.Route("/teams", func(r chi.Router) {
		r.Get("/", teamHandler.ListHandler)
		r.Get("/{teamID}", teamHandler.GetHandler)

		r.Group(func(r chi.Router) {
			staffOnly(r)
			r.Post("/", teamHandler.CreateHandler)
			r.Put("/{teamID}", teamHandler.UpdateHandler)
			r.Delete("/{teamID}", teamHandler.DeleteHandler)
		})
	})

	router.Route("/matches", func(r chi.Router) {
		r.Get("/{matchID}", matchHandler.GetHandler)

		r.Group(func(r chi.Router) {
			staffOnly(r)
			r.Post("/", matchHandler.CreateHandler)
			r.Put("/{matchID}", matchHandler.UpdateHandler)
			r.Post("/{matchID}/close", matchHandler.CloseHandler)
			r.Post("/{matchID}/reopen", matchHandler.ReopenHandler)
			r.Delete("/{matchID}", matchHandler.DeleteHandler)
		})
	})

	router.Route("/dances", func(r chi.Router) {
		r.Get("/{danceID}", danceHandler.GetHandler)

		r.Group(func(r chi.Router) {
			staffOnly(r)
			r.Post("/", danceHandler.CreateHandler)
			r.Put("/{danceID}", danceHandler.UpdateHandler)
			r.Delete("/{danceID}", danceHandler.DeleteHandler)
		})
	})

	router.Route("/extras", func(r chi.Router) {
		r.Get("/{extraID}", extraHandler.GetHandler)

		r.Group(func(r chi.Router) {
			staffOnly(r)
			r.Post("/", extraHandler.CreateHandler)
			r.Put("/{extraID}", extraHandler.UpdateHandler)
			r.Delete("/{extraID}", extraHandler.DeleteHandler)
		})
	})

	router.Get("/ws/tournaments/{tournamentID}", webSocketHandler.ServeWs)
}

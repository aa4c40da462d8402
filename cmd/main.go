package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"

	"github.com/placarjuarez/placar-api/brackets"
	"github.com/placarjuarez/placar-api/config"
	"github.com/placarjuarez/placar-api/db"
	"github.com/placarjuarez/placar-api/handlers"
	"github.com/placarjuarez/placar-api/repositories"
	api "github.com/placarjuarez/placar-api/routes"
	"github.com/placarjuarez/placar-api/services"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		} else {
			logger.Info("database connection closed")
		}
	}()
	logger.Info("database connection established")

	if err := db.Migrate(dbConn); err != nil {
		logger.Error("failed to run migrations", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("database migrations applied")

	wsHub := brackets.NewHub()
	go wsHub.Run()
	logger.Info("websocket hub started")

	tournamentRepo := repositories.NewPostgresTournamentRepository(dbConn)
	modalityRepo := repositories.NewPostgresModalityRepository(dbConn)
	teamRepo := repositories.NewPostgresTeamRepository(dbConn)
	matchRepo := repositories.NewPostgresMatchRepository(dbConn)
	danceRepo := repositories.NewPostgresDanceRepository(dbConn)
	extraRepo := repositories.NewPostgresExtraRepository(dbConn)
	staffRepo := repositories.NewPostgresStaffRepository(dbConn)
	logger.Info("repositories initialized")

	txRunner := db.NewRunner(dbConn)

	authService := services.NewAuthService(staffRepo, cfg.JWTSecretKey)
	tournamentService := services.NewTournamentService(tournamentRepo)
	modalityService := services.NewModalityService(modalityRepo)
	teamService := services.NewTeamService(teamRepo)
	matchService := services.NewMatchService(
		txRunner,
		matchRepo,
		modalityRepo,
		teamRepo,
		brackets.DefaultTopology(),
		wsHub,
		logger,
	)
	danceService := services.NewDanceService(danceRepo, teamRepo)
	extraService := services.NewExtraService(extraRepo, teamRepo)
	rankingService := services.NewRankingService(matchRepo, danceRepo, extraRepo, teamRepo, tournamentRepo)
	logger.Info("services initialized")

	authHandler := handlers.NewAuthHandler(authService)
	tournamentHandler := handlers.NewTournamentHandler(tournamentService)
	modalityHandler := handlers.NewModalityHandler(modalityService)
	teamHandler := handlers.NewTeamHandler(teamService)
	matchHandler := handlers.NewMatchHandler(matchService)
	danceHandler := handlers.NewDanceHandler(danceService)
	extraHandler := handlers.NewExtraHandler(extraService)
	rankingHandler := handlers.NewRankingHandler(rankingService)
	webSocketHandler := handlers.NewWebSocketHandler(wsHub)
	logger.Info("HTTP handlers initialized")

	router := chi.NewRouter()
	api.SetupRoutes(
		router,
		cfg.CORSAllowedOrigins,
		cfg.JWTSecretKey,
		authHandler,
		tournamentHandler,
		modalityHandler,
		teamHandler,
		matchHandler,
		danceHandler,
		extraHandler,
		rankingHandler,
		webSocketHandler,
	)
	logger.Info("routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("server stopped gracefully")
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		logger.Info("shutting down server", slog.Duration("timeout", 15*time.Second))
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		}
		logger.Info("server shutdown complete")
	}
	logger.Info("application exited")
}

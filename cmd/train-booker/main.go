package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"trainBooker/internal/auth"
	"trainBooker/internal/config"
	"trainBooker/internal/http-server/handlers/booking/createBooking"
	"trainBooker/internal/http-server/handlers/booking/getBooking"
	"trainBooker/internal/http-server/handlers/train/createTrain"
	"trainBooker/internal/http-server/handlers/train/searchTrains"
	"trainBooker/internal/http-server/handlers/user/login"
	"trainBooker/internal/http-server/handlers/user/register"
	"trainBooker/internal/http-server/middleware/mwauth"
	"trainBooker/internal/http-server/middleware/mwlogger"
	"trainBooker/internal/lib/logger/handlers/slogpretty"
	"trainBooker/internal/lib/logger/sl"
	"trainBooker/internal/notifier/rabbitmq"
	"trainBooker/internal/storage/postgres"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting train booker", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	authService := auth.New(log, storage, cfg.Auth)

	var notifier createBooking.BookingNotifier
	if cfg.AMQP.URL != "" {
		amqpNotifier, err := rabbitmq.New(log, cfg.AMQP.URL)
		if err != nil {
			log.Error("failed to init rabbitmq notifier", sl.Err(err))
			os.Exit(1)
		}
		defer amqpNotifier.Close()

		notifier = amqpNotifier

		log.Info("booking event publishing enabled")
	}

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Post("/register", register.New(log, authService))
	router.Post("/login", login.New(log, authService))
	router.Post("/trains", createTrain.New(log, storage, authService))
	router.Get("/trains", searchTrains.New(log, storage))

	router.Group(func(r chi.Router) {
		r.Use(mwauth.New(log, authService))

		r.Post("/trains/{id}/book", createBooking.New(log, storage, notifier))
		r.Get("/bookings/{id}", getBooking.New(log, storage))
	})

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		if err = srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = storage.Close(); err != nil {
		log.Error("failed to close postgres connection", sl.Err(err))
	}

	log.Info("postgres connection closed")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}

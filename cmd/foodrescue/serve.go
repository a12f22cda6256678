package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"foodrescue/internal/auth"
	"foodrescue/internal/db"
	"foodrescue/internal/server"
	"foodrescue/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var serveCommand = &cli.Command{
	Name:   "serve",
	Usage:  "Start the HTTP server",
	Action: serve,
}

func serve(cCtx *cli.Context) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	config, err := loadConfig()
	if err != nil {
		return err
	}

	pool, err := db.Connect(ctx, config)
	if err != nil {
		return err
	}
	defer pool.Close()

	userRepo := store.NewUserRepository(pool)
	donationRepo := store.NewDonationRepository(pool)
	requestRepo := store.NewRequestRepository(pool)
	volunteerRepo := store.NewVolunteerRepository(pool)

	credentials := auth.NewCredentialStore(userRepo)
	tokens := auth.NewTokenService(
		[]byte(config.JWTSecret),
		time.Duration(config.TokenTTLMin)*time.Minute,
	)

	srv, err := server.New(
		config,
		logger,
		credentials,
		tokens,
		donationRepo,
		requestRepo,
		volunteerRepo,
	)
	if err != nil {
		return err
	}

	go func() {
		logger.WithField("port", config.ServerPort).Infof("server starting http://localhost:%d", config.ServerPort)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("server failed")
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Stop(shutdownCtx)
}

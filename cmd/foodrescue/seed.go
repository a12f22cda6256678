package main

import (
	"context"
	"fmt"

	"foodrescue/internal/auth"
	"foodrescue/internal/db"
	"foodrescue/internal/seed"
	"foodrescue/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var seedCommand = &cli.Command{
	Name:  "seed",
	Usage: "Seed the database with demo users, donations, and requests",
	Action: func(c *cli.Context) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		ctx := context.Background()

		pool, err := db.Connect(ctx, cfg)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer pool.Close()

		logrus.Info("Connected to database")

		userRepo := store.NewUserRepository(pool)
		credentials := auth.NewCredentialStore(userRepo)
		donationRepo := store.NewDonationRepository(pool)
		requestRepo := store.NewRequestRepository(pool)

		logrus.Info("Seeding demo data...")
		if err := seed.SeedDemoData(ctx, credentials, donationRepo, requestRepo); err != nil {
			return fmt.Errorf("failed to seed demo data: %w", err)
		}

		logrus.Info("Demo data seeded successfully")

		return nil
	},
}

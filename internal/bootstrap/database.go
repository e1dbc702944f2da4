package bootstrap

import (
	"context"
	"fmt"
	"log"

	"github.com/go-authgate/riskgate/internal/config"
	"github.com/go-authgate/riskgate/internal/store"
)

// initializeDatabase creates and initializes the database connection
func initializeDatabase(ctx context.Context, cfg *config.Config) (*store.Store, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.DBInitTimeout)
	defer cancel()

	db, err := store.New(ctx, store.DriverSQLite, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return db, nil
}

// seedUsers loads the demo accounts and the optional users file.
func seedUsers(ctx context.Context, cfg *config.Config, db *store.Store) error {
	var users []store.SeedUser
	if cfg.SeedDemoUsers {
		users = append(users, store.DemoUsers()...)
	}
	if cfg.UsersFile != "" {
		fromFile, err := store.LoadSeedFile(cfg.UsersFile)
		if err != nil {
			return err
		}
		users = append(users, fromFile...)
	}
	if len(users) == 0 {
		log.Println("WARNING: no users seeded; every login will fail")
		return nil
	}

	created, err := db.SeedUsers(ctx, users)
	if err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}
	log.Printf("Seeded %d users", created)
	return nil
}

// Command seedadmin bootstraps the initial SuperAdmin record. Record
// validation never accepts the SuperAdmin role, so this writes straight
// through the repository.
package main

import (
	"context"
	"flag"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/academia/users-service/internal/core/domain"
	"github.com/academia/users-service/internal/core/domain/rules"
	"github.com/academia/users-service/internal/infrastructure/config"
	mongodb "github.com/academia/users-service/internal/infrastructure/db/mongo"
	"github.com/academia/users-service/pkg/logger"
)

func main() {
	name := flag.String("name", "Root", "display name")
	lastname := flag.String("lastname", "Admin", "first surname")
	ci := flag.String("ci", "000000", "identity code")
	email := flag.String("email", "", "account email (required)")
	password := flag.String("password", "", "initial password (required)")
	flag.Parse()

	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	if *email == "" || *password == "" {
		log.Fatal().Msg("both -email and -password are required")
	}
	if r := rules.ValidatePassword(*password); r.IsFailure() {
		log.Fatal().Str("reason", r.Message()).Msg("password rejected")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer client.Disconnect(ctx)

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hash failed")
	}

	birth := time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)
	repo := mongodb.NewUserRepository(db)
	if err := repo.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("index creation failed")
	}

	created, err := repo.Insert(ctx, &domain.User{
		Name:               *name,
		FirstLastname:      *lastname,
		DateBirth:          &birth,
		CI:                 *ci,
		Role:               domain.RoleSuperAdmin,
		Email:              *email,
		PasswordHash:       string(hash),
		MustChangePassword: true,
		IsActive:           true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("seed insert failed")
	}

	log.Info().Str("user_id", created.ID).Str("email", created.Email).Msg("SuperAdmin seeded")
}

// Seed loads demo data: one account per role plus a handful of animals and
// habitats, mirroring the fixtures the front-end team develops against.
package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/joho/godotenv"

	"github.com/arcadia-zoo/zoo-api/internal/core/domain"
	"github.com/arcadia-zoo/zoo-api/internal/core/ports"
	"github.com/arcadia-zoo/zoo-api/internal/core/service"
	"github.com/arcadia-zoo/zoo-api/internal/infrastructure/db/postgres"
	"github.com/arcadia-zoo/zoo-api/internal/pkg/config"
	"github.com/arcadia-zoo/zoo-api/pkg/logger"
)

// noThrottle disables login throttling for the seeder; it never logs in.
type noThrottle struct{}

func (noThrottle) Allow(context.Context, string, string) (bool, error) { return true, nil }
func (noThrottle) Failure(context.Context, string, string) error       { return nil }
func (noThrottle) Reset(context.Context, string, string) error         { return nil }

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	pg, err := postgres.Connect(postgres.Config{
		Host:     cfg.Postgres.Host,
		Port:     cfg.Postgres.Port,
		User:     cfg.Postgres.User,
		Password: cfg.Postgres.Password,
		Database: cfg.Postgres.Database,
		SSLMode:  cfg.Postgres.SSLMode,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("postgres connection failed")
	}
	if err := postgres.Migrate(pg); err != nil {
		log.Fatal().Err(err).Msg("schema migration failed")
	}

	ctx := context.Background()
	auth := service.NewAuthService(postgres.NewUserRepository(pg), noThrottle{}, log)

	for i, role := range []string{domain.RoleUser, domain.RoleAdmin, domain.RoleVeterinaire, domain.RoleEmployee} {
		email := fmt.Sprintf("email.%d@studi.fr", i+1)
		user, err := auth.Register(ctx, ports.RegisterInput{
			FirstName: "Demo",
			LastName:  fmt.Sprintf("Account%d", i+1),
			Email:     email,
			Password:  fmt.Sprintf("password%d", i+1),
			Role:      role,
		})
		if err != nil {
			if errors.Is(err, domain.ErrUserExists) {
				log.Info().Str("email", email).Msg("user already seeded")
				continue
			}
			log.Fatal().Err(err).Str("email", email).Msg("seeding user failed")
		}
		log.Info().Str("email", user.Email).Str("role", role).Str("api_token", user.APIToken).Msg("user seeded")
	}

	habitats := postgres.NewCrudRepository[domain.Habitat](pg)
	for _, h := range []domain.Habitat{
		{Nom: "Savane", Description: "Plaine aride abritant les grands herbivores.", Animaux: "Lions, girafes, zèbres"},
		{Nom: "Jungle", Description: "Forêt tropicale dense et humide.", Animaux: "Singes, perroquets, panthères"},
		{Nom: "Marais", Description: "Zone humide aux eaux dormantes.", Animaux: "Crocodiles, hérons, tortues"},
	} {
		if err := habitats.Create(ctx, &h); err != nil {
			log.Fatal().Err(err).Str("habitat", h.Nom).Msg("seeding habitat failed")
		}
	}

	animals := postgres.NewCrudRepository[domain.Animal](pg)
	for _, a := range []domain.Animal{
		{Nom: "Simba", Race: "Lion d'Afrique", Habitat: "Savane", Etat: "En bonne santé"},
		{Nom: "Rafiki", Race: "Mandrill", Habitat: "Jungle", Etat: "En observation"},
		{Nom: "Kaa", Race: "Python birman", Habitat: "Marais", Etat: "En bonne santé"},
	} {
		if err := animals.Create(ctx, &a); err != nil {
			log.Fatal().Err(err).Str("animal", a.Nom).Msg("seeding animal failed")
		}
	}

	log.Info().Msg("seed complete")
}

// Comando de provisión: crea el usuario admin por defecto en la base configurada.
// Equivale a llamar GET /api/setup pero sin levantar el servidor.
package main

import (
	"context"

	"github.com/jhoicas/pos-gadget-api/internal/application/auth"
	"github.com/jhoicas/pos-gadget-api/internal/infrastructure/postgres"
	"github.com/jhoicas/pos-gadget-api/pkg/config"
	"github.com/jhoicas/pos-gadget-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info", Service: cfg.App.Name})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("bootstrap de schema")
	}

	authUC := auth.NewAuthUseCase(postgres.NewUserRepository(pool), auth.JWTConfig{
		Secret:   cfg.JWT.Secret,
		ExpHours: cfg.JWT.Expiration,
		Issuer:   cfg.JWT.Issuer,
	})
	user, err := authUC.ProvisionAdmin(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("provisionar admin")
	}
	log.Info().Int64("user_id", user.ID).Str("username", user.Username).Msg("usuario admin provisionado")
}

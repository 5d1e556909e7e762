package app

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/invtrack/inventory-ledger-api/internal/api"
	"github.com/invtrack/inventory-ledger-api/internal/config"
	"github.com/invtrack/inventory-ledger-api/internal/db"
	"github.com/invtrack/inventory-ledger-api/internal/logger"
	"github.com/invtrack/inventory-ledger-api/internal/pkg/idgen"
	"github.com/invtrack/inventory-ledger-api/internal/repository"
	"github.com/invtrack/inventory-ledger-api/internal/repository/dao"
	"github.com/invtrack/inventory-ledger-api/internal/service"
)

func Start() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	dbURL := os.Getenv("DATABASE_URL")
	var postgresDB *gorm.DB
	if dbURL != "" {
		postgresDB, err = db.OpenPostgresWithURL(dbURL)
	} else {
		postgresDB, err = db.OpenPostgres(conf.Postgres)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	if err = seedAdmin(conf, postgresDB); err != nil {
		return fmt.Errorf("failed to seed admin user -> %w", err)
	}

	s := api.NewServer(conf, postgresDB)

	addr := ":" + s.Config.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}

// seedAdmin makes sure a fresh database has a usable admin account.
func seedAdmin(conf *config.AppConfig, postgresDB *gorm.DB) error {
	if conf.API.AdminUsername == "" || conf.API.AdminPassword == "" {
		return nil
	}

	repo := repository.NewUserRepository(dao.NewUserDAO(postgresDB))
	svc := service.NewAuthService(repo, idgen.UUID{})

	return svc.EnsureAdmin(context.Background(), conf.API.AdminUsername, conf.API.AdminPassword, "System Admin")
}

package app

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/wushufed/tournament-backend/internal/api"
	"github.com/wushufed/tournament-backend/internal/config"
	"github.com/wushufed/tournament-backend/internal/db"
	"github.com/wushufed/tournament-backend/internal/logger"
	"github.com/wushufed/tournament-backend/internal/repository"
	"github.com/wushufed/tournament-backend/internal/repository/dao"
	"github.com/wushufed/tournament-backend/internal/scheduler"
	"github.com/wushufed/tournament-backend/internal/storage"
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

	photos, err := storage.NewPhotoStore(context.Background(), conf.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize photo storage -> %w", err)
	}

	tournamentRepo := repository.NewTournamentRepository(dao.NewTournamentDAO(postgresDB))
	auditor, err := scheduler.NewTournamentAuditor(conf.Scheduler.AuditInterval, tournamentRepo)
	if err != nil {
		return fmt.Errorf("failed to initialize tournament auditor -> %w", err)
	}
	auditor.Start()
	defer func() {
		if err := auditor.Stop(); err != nil {
			zap.L().Error("failed to stop tournament auditor", zap.Error(err))
		}
	}()

	s := api.NewServer(conf, postgresDB, photos)

	addr := ":" + s.Config.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}

// Package app assembles the storage, model backend and views shared by the
// HTTP server and the CLI.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/fadilmartias/bid-analyzer/internal/config"
	"github.com/fadilmartias/bid-analyzer/internal/model"
	"github.com/fadilmartias/bid-analyzer/internal/repository"
	"github.com/fadilmartias/bid-analyzer/internal/service"
	"github.com/fadilmartias/bid-analyzer/internal/store"
	"github.com/fadilmartias/bid-analyzer/internal/usecase"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type App struct {
	Store     *store.ResultStore
	Analyzer  *usecase.AnalyzerUsecase
	Monitor   *usecase.MonitorUsecase
	Checklist *usecase.ChecklistUsecase
	History   *usecase.HistoryUsecase

	closers []func() error
}

// New opens storage, loads the persisted history and wires the four views.
func New(ctx context.Context, log *zap.Logger) (*App, error) {
	modelCfg := config.LoadModelConfig()
	dbCfg := config.LoadDBConfig()

	gen, err := service.NewStructuredGenerator(modelCfg.Provider, log)
	if err != nil {
		return nil, err
	}
	log.Info("model backend selected", zap.String("provider", gen.Name()))

	a := &App{}
	var (
		repo  repository.StorageRepository
		index usecase.AnalysisIndex
	)
	switch dbCfg.Driver {
	case config.DriverPostgres:
		db, err := ConnectDB(dbCfg)
		if err != nil {
			return nil, err
		}
		if sqlDB, err := db.DB(); err == nil {
			a.closers = append(a.closers, sqlDB.Close)
		}
		repo = repository.NewGormStorageRepository(db)
		if embedder, ok := gen.(service.Embedder); ok {
			if err := migrateIndex(db); err != nil {
				log.Warn("similarity index disabled", zap.Error(err))
			} else {
				index = service.NewAnalysisIndexService(embedder, repository.NewAnalysisIndexRepository(db))
			}
		}
	case config.DriverSQLite, "":
		sqliteRepo, err := repository.NewSQLiteStorageRepository(dbCfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, sqliteRepo.Close)
		repo = sqliteRepo
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q", dbCfg.Driver)
	}

	a.Store = store.NewResultStore(repo, log)
	a.Store.Load(ctx)

	gateway := service.NewModelGateway(gen, log)
	opts := usecase.Options{
		TargetLanguage: modelCfg.TargetLanguage,
		Timeout:        modelCfg.Timeout,
	}
	a.Analyzer = usecase.NewAnalyzerUsecase(gateway, a.Store, index, opts, log)
	a.Monitor = usecase.NewMonitorUsecase(gateway, a.Store, opts, log)
	a.Checklist = usecase.NewChecklistUsecase(gateway, opts, log)
	a.History = usecase.NewHistoryUsecase(a.Store, index, log)
	return a, nil
}

func (a *App) Close() error {
	var first error
	for _, c := range a.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// ConnectDB opens the postgres database and migrates the storage table.
func ConnectDB(cfg *config.DBConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.PostgresDSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("could not connect to database: %w", err)
	}
	pgDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("could not get database instance: %w", err)
	}
	pgDB.SetMaxIdleConns(2)
	pgDB.SetMaxOpenConns(5)
	pgDB.SetConnMaxLifetime(30 * time.Minute)

	if err := db.AutoMigrate(&model.StorageEntry{}); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}
	return db, nil
}

func migrateIndex(db *gorm.DB) error {
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
		return err
	}
	return db.AutoMigrate(&model.AnalysisEmbedding{})
}

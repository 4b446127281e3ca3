package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/imovead/imovead/internal/config"
	"github.com/imovead/imovead/internal/db"
	"github.com/imovead/imovead/internal/repository"
	"github.com/imovead/imovead/internal/service"
	"github.com/imovead/imovead/internal/storage"
)

type App struct {
	Cfg             *config.Config
	DB              *sqlx.DB
	AuthService     *service.AuthService
	PropertyService *service.PropertyService
	UploadService   *service.UploadService
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	propertyRepository := repository.NewPropertyRepository(database)

	// Storage
	photoStorage, err := storage.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %v", err)
	}

	// Services
	authService := service.NewAuthService(cfg.JWTSecret, cfg.JWTExpiry)
	propertyService := service.NewPropertyService(propertyRepository)
	uploadService := service.NewUploadService(photoStorage)

	return &App{
		Cfg:             cfg,
		DB:              database,
		AuthService:     authService,
		PropertyService: propertyService,
		UploadService:   uploadService,
	}, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}

package app

import (
	"fmt"
	"sync"
	"time"

	"github.com/tams-cso/tams-club-cal-sub000/internal/dao"
	"github.com/tams-cso/tams-club-cal-sub000/internal/domain"
	"github.com/tams-cso/tams-club-cal-sub000/internal/service"
	pkgapp "github.com/tams-cso/tams-club-cal-sub000/pkg/app"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App is the application container. It owns every repository and service
// and is injected into the HTTP handlers and background tasks.
type App struct {
	config *AppConfig
	logger *zap.Logger
	DB     *gorm.DB
	Dao    *dao.Dao

	EventRepo        domain.EventRepository
	ClubRepo         domain.ClubRepository
	VolunteeringRepo domain.VolunteeringRepository
	ReservationRepo  domain.ReservationRepository
	HistoryRepo      domain.HistoryRepository
	UserRepo         domain.UserRepository

	EventService        service.EventService
	ClubService         service.ClubService
	VolunteeringService service.VolunteeringService
	ReservationService  service.ReservationService
	HistoryService      service.HistoryService
	UserService         service.UserService

	TokenManager pkgapp.TokenManager

	StartTime  time.Time
	shutdownCh chan struct{}
	once       sync.Once
}

// NewApp wires the container. cfg, logger and db are all required.
func NewApp(cfg *AppConfig, logger *zap.Logger, db *gorm.DB) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if db == nil {
		return nil, fmt.Errorf("database is required")
	}

	a := &App{
		config:     cfg,
		logger:     logger,
		DB:         db,
		StartTime:  time.Now(),
		shutdownCh: make(chan struct{}),
	}

	a.Dao = dao.New(db, logger)

	a.TokenManager = pkgapp.NewTokenManager(pkgapp.TokenConfig{
		SecretKey: cfg.Security.AuthTokenKey,
		Issuer:    pkgapp.DefaultTokenIssuer,
		Expiry:    cfg.GetTokenExpiry(),
	})

	a.EventRepo = dao.NewEventRepository(a.Dao)
	a.ClubRepo = dao.NewClubRepository(a.Dao)
	a.VolunteeringRepo = dao.NewVolunteeringRepository(a.Dao)
	a.ReservationRepo = dao.NewReservationRepository(a.Dao)
	a.HistoryRepo = dao.NewHistoryRepository(a.Dao)
	a.UserRepo = dao.NewUserRepository(a.Dao)

	a.HistoryService = service.NewHistoryService(a.HistoryRepo, a.EventRepo, a.ClubRepo, a.VolunteeringRepo, a.UserRepo)
	a.EventService = service.NewEventService(a.EventRepo, a.HistoryService)
	a.ClubService = service.NewClubService(a.ClubRepo, a.HistoryService)
	a.VolunteeringService = service.NewVolunteeringService(a.VolunteeringRepo, a.HistoryService)
	a.ReservationService = service.NewReservationService(a.ReservationRepo, a.HistoryService)
	a.UserService = service.NewUserService(a.UserRepo, a.TokenManager)

	return a, nil
}

func (a *App) Config() *AppConfig {
	return a.config
}

func (a *App) Logger() *zap.Logger {
	return a.logger
}

// ShutdownCh closes when Shutdown is called, signalling background work to
// stop.
func (a *App) ShutdownCh() <-chan struct{} {
	return a.shutdownCh
}

func (a *App) Shutdown() {
	a.once.Do(func() {
		close(a.shutdownCh)
	})
}

package bootstrap

import (
	"database/sql"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	httpapi "github.com/harshydv24/event-nexus-backend/internal/api/http"
	apimiddleware "github.com/harshydv24/event-nexus-backend/internal/api/http/middleware"
	authhttp "github.com/harshydv24/event-nexus-backend/internal/auth/http"
	authmw "github.com/harshydv24/event-nexus-backend/internal/auth/middleware"
	authrepo "github.com/harshydv24/event-nexus-backend/internal/auth/repository"
	authservice "github.com/harshydv24/event-nexus-backend/internal/auth/service"
	clubhttp "github.com/harshydv24/event-nexus-backend/internal/clubs/http"
	clubrepo "github.com/harshydv24/event-nexus-backend/internal/clubs/repository"
	clubservice "github.com/harshydv24/event-nexus-backend/internal/clubs/service"
	eventhttp "github.com/harshydv24/event-nexus-backend/internal/events/http"
	eventrepo "github.com/harshydv24/event-nexus-backend/internal/events/repository"
	eventservice "github.com/harshydv24/event-nexus-backend/internal/events/service"
	venuehttp "github.com/harshydv24/event-nexus-backend/internal/venues/http"
	venuerepo "github.com/harshydv24/event-nexus-backend/internal/venues/repository"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	JWTSecret   string
	SessionTTL  time.Duration
	Redis       *redis.Client
	DB          *sql.DB      // venue catalog
	Pool        *pgxpool.Pool // decision log
}

// Services is the wired service layer, shared by the router and the
// cron scheduler.
type Services struct {
	Auth   *authservice.AuthService
	Events *eventservice.EventService
	Clubs  *clubservice.ClubService
}

// BuildServices wires repositories and services from the open
// connections. DB and Pool may be nil; the event service then runs
// without the venue catalog and decision log.
func BuildServices(dep RouterDeps) *Services {
	userRepo := authrepo.NewUserRepository(dep.Redis)
	sessionRepo := authrepo.NewSessionRepository(dep.Redis)
	clubRepo := clubrepo.NewClubRepository(dep.Redis)
	eventRepo := eventrepo.NewEventRepository(dep.Redis)

	var decisions eventservice.DecisionLog
	if dep.Pool != nil {
		decisions = eventrepo.NewDecisionRepository(dep.Pool)
	}

	var venues eventservice.VenueCatalog
	if dep.DB != nil {
		venues = venuerepo.NewVenueRepository(dep.DB)
	}

	clubService := clubservice.NewClubService(clubRepo)

	return &Services{
		Auth:   authservice.NewAuthService(userRepo, sessionRepo, dep.JWTSecret, dep.SessionTTL),
		Events: eventservice.NewEventServiceWithAudit(eventRepo, decisions, venues, clubService),
		Clubs:  clubService,
	}
}

// BuildRouter assembles the full HTTP surface.
func BuildRouter(dep RouterDeps, svc *Services) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(apimiddleware.RequestID())
	r.Use(cors.Default())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Redis, dep.DB)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api/v1")

	public := api.Group("/auth")
	public.Use(authmw.LoginRateLimit(rate.Every(time.Second), 10))

	authed := api.Group("")
	authed.Use(authmw.RequireAuth(svc.Auth))

	authhttp.New(svc.Auth).Register(public, authed.Group("/auth"))
	eventhttp.New(svc.Events).RegisterRoutes(authed)
	clubhttp.New(svc.Clubs).Register(authed)

	if dep.DB != nil {
		venuehttp.New(venuerepo.NewVenueRepository(dep.DB)).Register(authed)
	}

	return r
}

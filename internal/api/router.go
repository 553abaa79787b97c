package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"

	_ "github.com/arcadia-zoo/zoo-api/docs"
	"github.com/arcadia-zoo/zoo-api/internal/api/handler"
	"github.com/arcadia-zoo/zoo-api/internal/api/middleware"
	"github.com/arcadia-zoo/zoo-api/internal/core/domain"
	"github.com/arcadia-zoo/zoo-api/internal/core/service"
	mongodb "github.com/arcadia-zoo/zoo-api/internal/infrastructure/db/mongo"
	"github.com/arcadia-zoo/zoo-api/internal/infrastructure/db/postgres"
	redisdb "github.com/arcadia-zoo/zoo-api/internal/infrastructure/db/redis"
)

// ThrottleSettings tunes the Redis-backed login throttle.
type ThrottleSettings struct {
	MaxAttempts int
	Window      time.Duration
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(pg *gorm.DB, mdb *mongo.Database, rdb *redis.Client, throttle ThrottleSettings, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("zoo"))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization, middleware.TokenHeader},
		MaxAge:       3600,
	}))

	// --- Dependencies ---
	users := postgres.NewUserRepository(pg)
	loginThrottle := redisdb.NewLoginThrottle(rdb, throttle.MaxAttempts, throttle.Window)
	authService := service.NewAuthService(users, loginThrottle, log)
	authHandler := handler.NewAuthHandler(authService)

	likeService := service.NewLikeService(mongodb.NewLikeRepository(mdb), log)
	likeHandler := handler.NewLikeHandler(likeService)

	animals := handler.NewResourceHandler(postgres.NewCrudRepository[domain.Animal](pg), "/api/animal")
	habitats := handler.NewResourceHandler(postgres.NewCrudRepository[domain.Habitat](pg), "/api/habitat")
	avis := handler.NewResourceHandler(postgres.NewCrudRepository[domain.Avis](pg), "/api/avis")
	horaires := handler.NewResourceHandler(postgres.NewCrudRepository[domain.Horaire](pg), "/api/horaire")
	contacts := handler.NewResourceHandler(postgres.NewCrudRepository[domain.Contact](pg), "/api/contact")
	passages := handler.NewResourceHandler(postgres.NewCrudRepository[domain.Passage](pg), "/api/passage")
	comptesRendus := handler.NewResourceHandler(postgres.NewCrudRepository[domain.CompteRendu](pg), "/api/compteRendu")
	services := handler.NewResourceHandler(postgres.NewCrudRepository[domain.Service](pg), "/api/service")

	admin := middleware.RequireRole(domain.RoleAdmin)
	employee := middleware.RequireRole(domain.RoleEmployee)
	veterinaire := middleware.RequireRole(domain.RoleVeterinaire)

	// Every /api route passes through the token authenticator; requests
	// without the header continue anonymously and the per-route gates
	// decide what anonymous may reach.
	apiGroup := e.Group("/api", middleware.TokenAuth(authService))

	// --- Auth surface ---
	apiGroup.POST("/registration", authHandler.Register)
	apiGroup.POST("/login", authHandler.Login)
	apiGroup.GET("/account/me", authHandler.Me, middleware.RequireAuth())
	apiGroup.PUT("/account/edit", authHandler.Edit, middleware.RequireAuth())

	// --- Catalog resources ---
	registerCrud(apiGroup, "/animal", animals, routeGates{Create: admin, Update: admin, Delete: admin})
	registerCrud(apiGroup, "/habitat", habitats, routeGates{Create: admin, Update: admin, Delete: admin})
	registerCrud(apiGroup, "/avis", avis, routeGates{Update: employee, Delete: employee})
	registerCrud(apiGroup, "/horaire", horaires, routeGates{Create: admin, Update: admin, Delete: admin})
	registerCrud(apiGroup, "/service", services, routeGates{Create: admin, Update: admin, Delete: admin})
	registerCrud(apiGroup, "/passage", passages, routeGates{Create: employee, Update: employee, Delete: employee})
	registerCrud(apiGroup, "/compteRendu", comptesRendus, routeGates{Create: veterinaire, Update: veterinaire, Delete: veterinaire})

	// Contact requests: anyone may submit, only staff may read or purge.
	apiGroup.POST("/contact", contacts.Create)
	apiGroup.GET("/contact", contacts.List, employee)
	apiGroup.GET("/contact/:id", contacts.Get, employee)
	apiGroup.DELETE("/contact/:id", contacts.Delete, employee)

	// --- Like counter ---
	apiGroup.POST("/like/:animalId", likeHandler.Like)
	apiGroup.GET("/like/:animalId", likeHandler.Likes)

	// --- Health probes, metrics, docs (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(pg, mdb, rdb)

	e.GET("/health", healthHandler.Liveness)          // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}

// routeGates names the optional role gate per mutating route. A nil gate
// leaves the route open.
type routeGates struct {
	Create echo.MiddlewareFunc
	Update echo.MiddlewareFunc
	Delete echo.MiddlewareFunc
}

type crudRoutes interface {
	Create(echo.Context) error
	List(echo.Context) error
	Get(echo.Context) error
	Update(echo.Context) error
	Delete(echo.Context) error
}

// registerCrud wires the uniform CRUD routes for one resource. Reads stay
// public; mutations take whatever gate the caller declared.
func registerCrud(g *echo.Group, base string, h crudRoutes, gates routeGates) {
	g.POST(base, h.Create, gatesOf(gates.Create)...)
	g.GET(base, h.List)
	g.GET(base+"/:id", h.Get)
	g.PUT(base+"/:id", h.Update, gatesOf(gates.Update)...)
	g.DELETE(base+"/:id", h.Delete, gatesOf(gates.Delete)...)
}

func gatesOf(gate echo.MiddlewareFunc) []echo.MiddlewareFunc {
	if gate == nil {
		return nil
	}
	return []echo.MiddlewareFunc{gate}
}

package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/avargas/shoplist-backend/api/controllers"
	"github.com/avargas/shoplist-backend/api/middleware"
	authsvc "github.com/avargas/shoplist-backend/internal/auth"
	productsvc "github.com/avargas/shoplist-backend/internal/products"
	wishsvc "github.com/avargas/shoplist-backend/internal/wishlist"
	"github.com/avargas/shoplist-backend/pkg/auth/session"
	"github.com/avargas/shoplist-backend/pkg/config"
	"github.com/avargas/shoplist-backend/pkg/db/models"
	"github.com/avargas/shoplist-backend/pkg/logger"
)

// Params bundles everything the router needs.
type Params struct {
	Config   *config.Config
	Logger   *logger.Logger
	DB       controllers.Pinger
	Redis    controllers.Pinger
	Sessions session.AccessSessionChecker

	AuthService     authsvc.Service
	ProductService  productsvc.Service
	WishlistService wishsvc.Service
}

// NewRouter assembles the HTTP surface. Auth-protected groups share one
// bearer-token middleware; admin catalog writes additionally require
// the admin role claim.
func NewRouter(p Params) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(p.Logger),
		middleware.RequestID(p.Logger),
		middleware.Logging(p.Logger),
	)

	requireAuth := middleware.Auth(p.Config.JWT, p.Sessions, p.Logger)
	requireAdmin := middleware.RequireRole(models.RoleAdmin, p.Logger)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(p.Config))
		r.Get("/ready", controllers.HealthReady(p.Config, p.Logger,
			controllers.Dependency{Name: "database", Pinger: p.DB},
			controllers.Dependency{Name: "redis", Pinger: p.Redis},
		))
	})

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Post("/register", controllers.Register(p.AuthService, p.Logger))
		r.Post("/login", controllers.Login(p.AuthService, p.Logger))
		r.With(requireAuth).Post("/logout", controllers.Logout(p.AuthService, p.Logger))
	})

	r.Route("/api/v1/products", func(r chi.Router) {
		r.Get("/", controllers.ProductsList(p.ProductService, p.Logger))
		r.Get("/{id}", controllers.ProductGet(p.ProductService, p.Logger))
	})

	r.Route("/api/v1/wishlist", func(r chi.Router) {
		r.Use(requireAuth)
		r.Post("/", controllers.WishlistAdd(p.WishlistService, p.Logger))
		r.Get("/", controllers.WishlistList(p.WishlistService, p.Logger))
		r.Get("/{id}", controllers.WishlistGet(p.WishlistService, p.Logger))
		r.Put("/{id}", controllers.WishlistUpdate(p.WishlistService, p.Logger))
		r.Delete("/{id}", controllers.WishlistRemove(p.WishlistService, p.Logger))
	})

	r.Route("/api/admin/v1/products", func(r chi.Router) {
		r.Use(requireAuth, requireAdmin)
		r.Post("/", controllers.ProductCreate(p.ProductService, p.Logger))
		r.Put("/{id}", controllers.ProductUpdate(p.ProductService, p.Logger))
		r.Delete("/{id}", controllers.ProductDelete(p.ProductService, p.Logger))
	})

	return r
}

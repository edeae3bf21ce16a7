package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/rabbinur71/quickbite-frontend/internal/auth"
	"github.com/rabbinur71/quickbite-frontend/internal/cart"
	"github.com/rabbinur71/quickbite-frontend/internal/catalog"
	"github.com/rabbinur71/quickbite-frontend/internal/checkout"
	"github.com/rabbinur71/quickbite-frontend/internal/middleware"
)

// Deps are the wired handlers and the auth session the router assembles.
type Deps struct {
	JWTSecret []byte
	Session   *auth.Session

	Auth     *auth.Handler
	Cart     *cart.Handler
	Catalog  *catalog.Handler
	Admin    *catalog.AdminHandler
	Checkout *checkout.Handler
}

func New(deps Deps) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── STOREFRONT ─────────────────────────
	public := r.Group("/api")
	public.Use(middleware.Session(deps.JWTSecret))
	{
		public.GET("/menu", deps.Catalog.ListMenu)
		public.GET("/specials", deps.Catalog.ListSpecials)

		public.GET("/cart", deps.Cart.Get)
		public.POST("/cart/items", deps.Cart.Add)
		public.PUT("/cart/items", deps.Cart.UpdateQuantity)
		public.DELETE("/cart/items/:type/:id", deps.Cart.Remove)
		public.DELETE("/cart", deps.Cart.Clear)
		public.POST("/cart/toggle", deps.Cart.Toggle)
		public.PUT("/cart/open", deps.Cart.SetOpen)

		public.POST("/checkout", deps.Checkout.Confirm)
	}

	// ───────────────────────── ADMIN ─────────────────────────
	admin := r.Group("/admin")
	{
		admin.POST("/login", deps.Auth.Login)
		admin.POST("/logout", deps.Auth.Logout)

		guarded := admin.Group("")
		guarded.Use(middleware.RequireAdmin(deps.Session))
		{
			guarded.GET("/me", deps.Auth.Me)

			guarded.GET("/menu-items", deps.Admin.ListMenuItems)
			guarded.POST("/menu-items", deps.Admin.CreateMenuItem)
			guarded.PUT("/menu-items/:id", deps.Admin.UpdateMenuItem)
			guarded.DELETE("/menu-items/:id", deps.Admin.DeleteMenuItem)

			guarded.GET("/special-orders", deps.Admin.ListSpecialOrders)
			guarded.POST("/special-orders", deps.Admin.CreateSpecialOrder)
			guarded.PUT("/special-orders/:id", deps.Admin.UpdateSpecialOrder)
			guarded.DELETE("/special-orders/:id", deps.Admin.DeleteSpecialOrder)
		}
	}

	return r
}

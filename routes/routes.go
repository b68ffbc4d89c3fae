package routes

import (
	"net/http"
	"time"

	"utflykt/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCatalogRoutes registers the excursion and article catalog endpoints.
func RegisterCatalogRoutes(r *gin.Engine, ch *handlers.CatalogHandler) {
	excursions := r.Group("/api/excursions")
	{
		excursions.GET("", ch.ListExcursionsHandler)
		excursions.GET("/durations", ch.GetDurationsHandler)
		excursions.GET("/:id", ch.GetExcursionByIDHandler)
	}

	articles := r.Group("/api/articles")
	{
		articles.GET("", ch.ListArticlesHandler)
		articles.GET("/excursion/:id", ch.GetArticlesByExcursionHandler)
		articles.GET("/:id", ch.GetArticleByIDHandler)
	}
}

// RegisterCartRoutes registers the cart endpoints. Carts are addressed by the
// visitor's cart ID; there is no authentication on the storefront.
func RegisterCartRoutes(r *gin.Engine, ch *handlers.CartHandler) {
	carts := r.Group("/api/cart")
	{
		carts.GET("/:cartID", ch.GetCartHandler)
		carts.PUT("/:cartID/items", ch.UpsertCartItemHandler)
		carts.DELETE("/:cartID/items", ch.RemoveCartItemHandler)
		carts.DELETE("/:cartID", ch.ClearCartHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Utflykt"})
	})
}

// RegisterRoutes wires CORS and all endpoint groups onto the router.
func RegisterRoutes(r *gin.Engine, catalogHandler *handlers.CatalogHandler, cartHandler *handlers.CartHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterCatalogRoutes(r, catalogHandler)
	RegisterCartRoutes(r, cartHandler)
}

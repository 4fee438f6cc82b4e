package httpserver

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:    []string{"Authorization", "Content-Type"},
	}))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	router.POST("/auth/register", registerHandler(deps.Users))
	router.POST("/auth/login", loginHandler(deps.Users))

	authed := router.Group("/", authMiddleware(deps.Tokens))

	authed.GET("/books", listBooksHandler(deps.Books))
	authed.GET("/books/search", searchBooksHandler(deps.Books))
	authed.GET("/books/:id", getBookHandler(deps.Books))
	authed.POST("/books", requireRole(roleAdmin), createBookHandler(deps.Books))
	authed.PUT("/books/:id", requireRole(roleAdmin), updateBookHandler(deps.Books))
	authed.DELETE("/books/:id", requireRole(roleAdmin), deleteBookHandler(deps.Books))

	authed.GET("/categories", listCategoriesHandler(deps.Categories))
	authed.GET("/categories/:id", getCategoryHandler(deps.Categories))
	authed.GET("/categories/:id/books", categoryBooksHandler(deps.Categories))
	authed.POST("/categories", requireRole(roleAdmin), createCategoryHandler(deps.Categories))
	authed.PUT("/categories/:id", requireRole(roleAdmin), updateCategoryHandler(deps.Categories))
	authed.DELETE("/categories/:id", requireRole(roleAdmin), deleteCategoryHandler(deps.Categories))

	authed.GET("/cart", getCartHandler(deps.Carts))
	authed.POST("/cart/items", addCartItemHandler(deps.Carts))
	authed.PUT("/cart/items/:id", updateCartItemHandler(deps.Carts))
	authed.DELETE("/cart/items/:id", removeCartItemHandler(deps.Carts))

	authed.POST("/orders", placeOrderHandler(deps.Orders))
	authed.GET("/orders", listOrdersHandler(deps.Orders))
	authed.GET("/orders/:orderId/items", orderItemsHandler(deps.Orders))
	authed.GET("/orders/:orderId/items/:itemId", orderItemInfoHandler(deps.Orders))
	authed.PATCH("/orders/:orderId", requireRole(roleAdmin), updateOrderStatusHandler(deps.Orders))

	return router
}

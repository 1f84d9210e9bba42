package http

import (
	"github.com/gin-gonic/gin"

	"github.com/mrlokans/literalura/internal/database"
	"github.com/mrlokans/literalura/internal/services"
)

// RouterConfig holds the dependencies of the reporting API.
type RouterConfig struct {
	Reader   services.CatalogReader
	Database *database.Database
	Version  string
}

// NewRouter builds the read-only reporting API. There are no write routes:
// imports only happen through the CLI.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(RequestLogger())
	router.Use(gin.Recovery())

	healthController := NewHealthController(cfg.Database, cfg.Version)
	booksController := NewBooksController(cfg.Reader)
	authorsController := NewAuthorsController(cfg.Reader)

	router.GET("/health", healthController.Status)

	api := router.Group("/api")
	{
		api.GET("/books", booksController.GetAllBooks)
		api.GET("/books/top", booksController.GetTopBooks)
		api.GET("/books/stats", booksController.GetBookStats)
		api.GET("/authors", authorsController.GetAllAuthors)
		api.GET("/authors/alive", authorsController.GetAliveInYear)
	}

	return router
}

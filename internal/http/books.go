package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/literalura/internal/entities"
	"github.com/mrlokans/literalura/internal/services"
)

type BooksController struct {
	reader services.CatalogReader
}

func NewBooksController(reader services.CatalogReader) *BooksController {
	return &BooksController{
		reader: reader,
	}
}

// GetAllBooks lists every book, or only those in ?language= when given.
func (controller *BooksController) GetAllBooks(c *gin.Context) {
	var (
		books []entities.Book
		err   error
	)
	if language := strings.TrimSpace(c.Query("language")); language != "" {
		books, err = controller.reader.BooksByLanguage(strings.ToLower(language))
	} else {
		books, err = controller.reader.AllBooks()
	}
	if err != nil {
		respondInternalError(c, err, "list books")
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"books": books, "count": len(books)})
}

func (controller *BooksController) GetTopBooks(c *gin.Context) {
	books, err := controller.reader.Top10ByDownloads()
	if err != nil {
		respondInternalError(c, err, "list top downloads")
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"books": books, "count": len(books)})
}

func (controller *BooksController) GetBookStats(c *gin.Context) {
	stats, err := controller.reader.DownloadStats()
	if err != nil {
		respondInternalError(c, err, "compute statistics")
		return
	}
	c.IndentedJSON(http.StatusOK, stats)
}

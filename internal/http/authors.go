package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/mrlokans/literalura/internal/services"
)

type AuthorsController struct {
	reader services.CatalogReader
}

func NewAuthorsController(reader services.CatalogReader) *AuthorsController {
	return &AuthorsController{
		reader: reader,
	}
}

func (controller *AuthorsController) GetAllAuthors(c *gin.Context) {
	authors, err := controller.reader.AllAuthors()
	if err != nil {
		respondInternalError(c, err, "list authors")
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"authors": authors, "count": len(authors)})
}

// GetAliveInYear lists authors alive in ?year=.
func (controller *AuthorsController) GetAliveInYear(c *gin.Context) {
	raw := strings.TrimSpace(c.Query("year"))
	if err := validation.Validate(raw, validation.Required, is.Int); err != nil {
		respondBadRequest(c, "year: "+err.Error())
		return
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		respondBadRequest(c, "year: must be an integer")
		return
	}

	authors, err := controller.reader.AuthorsAliveInYear(year)
	if err != nil {
		respondInternalError(c, err, "list living authors")
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"year": year, "authors": authors, "count": len(authors)})
}

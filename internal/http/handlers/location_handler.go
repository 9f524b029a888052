// README: Location handlers for catalog search and remote autocomplete.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hogicar/internal/modules/location"
)

type LocationHandler struct {
	location *location.Service
}

func NewLocationHandler(svc *location.Service) *LocationHandler {
	return &LocationHandler{location: svc}
}

func (h *LocationHandler) Search(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		// The web client historically sends "keyword".
		query = c.Query("keyword")
	}
	writeJSON(c, http.StatusOK, h.location.Search(query))
}

func (h *LocationHandler) Suggest(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		query = c.Query("keyword")
	}
	writeJSON(c, http.StatusOK, h.location.Suggest(c.Request.Context(), query))
}

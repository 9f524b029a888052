// README: Car handler serving the search inventory.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hogicar/internal/modules/car"
)

type CarHandler struct {
	car *car.Service
}

func NewCarHandler(svc *car.Service) *CarHandler {
	return &CarHandler{car: svc}
}

func (h *CarHandler) Search(c *gin.Context) {
	writeJSON(c, http.StatusOK, h.car.Search())
}

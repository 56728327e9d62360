package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/menucraft/restaurant-backend/internal/httperr"
	"github.com/menucraft/restaurant-backend/internal/httpresp"
	ucMenu "github.com/menucraft/restaurant-backend/internal/usecase/menu"
)

// PublicHandler serves the unauthenticated customer surface.
type PublicHandler struct {
	menuUC *ucMenu.PublicMenu
}

func NewPublicHandler(menuUC *ucMenu.PublicMenu) *PublicHandler {
	return &PublicHandler{menuUC: menuUC}
}

func (h *PublicHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Customer API is working"})
}

func (h *PublicHandler) Menu(c *gin.Context) {
	items, err := h.menuUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_menu", "Could not load the menu.")
		return
	}

	httpresp.OK(c, items)
}

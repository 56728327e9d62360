package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/menucraft/restaurant-backend/internal/httperr"
	"github.com/menucraft/restaurant-backend/internal/httpresp"
	ucMenu "github.com/menucraft/restaurant-backend/internal/usecase/menu"
)

// MenuHandler serves the back-office menu overview.
type MenuHandler struct {
	listUC *ucMenu.ListMenu
}

func NewMenuHandler(listUC *ucMenu.ListMenu) *MenuHandler {
	return &MenuHandler{listUC: listUC}
}

func (h *MenuHandler) List(c *gin.Context) {
	out, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_menu", "Could not load the menu.")
		return
	}

	httpresp.OK(c, out)
}

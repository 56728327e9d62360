package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/menucraft/restaurant-backend/internal/audit"
	domain "github.com/menucraft/restaurant-backend/internal/domain/menu"
	"github.com/menucraft/restaurant-backend/internal/dto"
	"github.com/menucraft/restaurant-backend/internal/httperr"
	"github.com/menucraft/restaurant-backend/internal/httpresp"
	"github.com/menucraft/restaurant-backend/internal/models"
)

type MenuItemHandler struct {
	items      domain.MenuItemRepository
	categories domain.CategoryRepository
	audit      *audit.Dispatcher
}

func NewMenuItemHandler(
	items domain.MenuItemRepository,
	categories domain.CategoryRepository,
	audit *audit.Dispatcher,
) *MenuItemHandler {
	return &MenuItemHandler{
		items:      items,
		categories: categories,
		audit:      audit,
	}
}

// --------- Requests ---------

// Price is a pointer so "price absent" and "price zero" stay distinct.
type CreateMenuItemRequest struct {
	Name       string   `json:"name"`
	Price      *float64 `json:"price"`
	CategoryID string   `json:"categoryId"`
}

type UpdateMenuItemRequest struct {
	Name       *string  `json:"name,omitempty"`
	Price      *float64 `json:"price,omitempty"`
	CategoryID *string  `json:"categoryId,omitempty"`
	Available  *bool    `json:"available,omitempty"`
}

// --------- Handlers ---------

func (h *MenuItemHandler) Create(c *gin.Context) {
	var req CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed request body.")
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" || req.Price == nil || req.CategoryID == "" {
		httperr.BadRequest(c, "missing_fields", "Name, price and categoryId are required.")
		return
	}

	if _, err := h.categories.GetByID(c.Request.Context(), req.CategoryID); err != nil {
		if httperr.KindOf(err) == httperr.KindNotFound {
			httperr.BadRequest(c, "invalid_category_id", "Category does not exist.")
			return
		}
		httperr.Respond(c, err)
		return
	}

	item := models.NewMenuItem(name, *req.Price, req.CategoryID)
	if err := h.items.Create(c.Request.Context(), item); err != nil {
		httperr.Internal(c, "failed_to_create_item", "Could not create item.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "item_created",
		Entity:   "item",
		EntityID: item.ID,
	})

	httpresp.Created(c, dto.NewMenuItemDTO(item))
}

func (h *MenuItemHandler) Update(c *gin.Context) {
	id := c.Param("id")

	item, err := h.items.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	var req UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed request body.")
		return
	}

	// A category reassignment is re-validated before it is applied.
	if req.CategoryID != nil {
		if _, err := h.categories.GetByID(c.Request.Context(), *req.CategoryID); err != nil {
			if httperr.KindOf(err) == httperr.KindNotFound {
				httperr.BadRequest(c, "invalid_category_id", "Category does not exist.")
				return
			}
			httperr.Respond(c, err)
			return
		}
		item.CategoryID = *req.CategoryID
	}

	if req.Name != nil {
		item.Name = strings.TrimSpace(*req.Name)
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.Available != nil {
		item.Available = *req.Available
	}

	if err := h.items.Update(c.Request.Context(), item); err != nil {
		httperr.Internal(c, "failed_to_update_item", "Could not update item.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "item_updated",
		Entity:   "item",
		EntityID: item.ID,
	})

	httpresp.OK(c, dto.NewMenuItemDTO(item))
}

func (h *MenuItemHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	item, err := h.items.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	if err := h.items.Delete(c.Request.Context(), item.ID); err != nil {
		httperr.Internal(c, "failed_to_delete_item", "Could not delete item.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "item_deleted",
		Entity:   "item",
		EntityID: item.ID,
	})

	httpresp.NoContent(c)
}

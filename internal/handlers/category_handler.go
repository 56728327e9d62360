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
	ucMenu "github.com/menucraft/restaurant-backend/internal/usecase/menu"
)

type CategoryHandler struct {
	categories domain.CategoryRepository
	deleteUC   *ucMenu.DeleteCategory
	audit      *audit.Dispatcher
}

func NewCategoryHandler(
	categories domain.CategoryRepository,
	deleteUC *ucMenu.DeleteCategory,
	audit *audit.Dispatcher,
) *CategoryHandler {
	return &CategoryHandler{
		categories: categories,
		deleteUC:   deleteUC,
		audit:      audit,
	}
}

// --------- Requests ---------

type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

// --------- Handlers ---------

func (h *CategoryHandler) Create(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed request body.")
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		httperr.BadRequest(c, "name_required", "Category name is required.")
		return
	}

	// Read-then-write: no compare-and-swap, concurrent duplicates can
	// both land (accepted limitation).
	if _, err := h.categories.GetByName(c.Request.Context(), name); err == nil {
		httperr.BadRequest(c, "category_already_exists", "A category with this name already exists.")
		return
	} else if httperr.KindOf(err) != httperr.KindNotFound {
		httperr.Respond(c, err)
		return
	}

	cat := models.NewCategory(name, req.Description)
	if err := h.categories.Create(c.Request.Context(), cat); err != nil {
		httperr.Internal(c, "failed_to_create_category", "Could not create category.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "category_created",
		Entity:   "category",
		EntityID: cat.ID,
	})

	httpresp.Created(c, dto.NewCategoryDTO(cat))
}

func (h *CategoryHandler) Update(c *gin.Context) {
	id := c.Param("id")

	cat, err := h.categories.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed request body.")
		return
	}

	if req.Name != nil {
		cat.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		cat.Description = *req.Description
	}
	if req.IsActive != nil {
		cat.IsActive = *req.IsActive
	}

	if err := h.categories.Update(c.Request.Context(), cat); err != nil {
		httperr.Internal(c, "failed_to_update_category", "Could not update category.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "category_updated",
		Entity:   "category",
		EntityID: cat.ID,
	})

	httpresp.OK(c, dto.NewCategoryDTO(cat))
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	if err := h.deleteUC.Execute(c.Request.Context(), c.Param("id")); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.NoContent(c)
}

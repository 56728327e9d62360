package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/menucraft/restaurant-backend/internal/audit"
	"github.com/menucraft/restaurant-backend/internal/domain/account"
	"github.com/menucraft/restaurant-backend/internal/dto"
	"github.com/menucraft/restaurant-backend/internal/httperr"
	"github.com/menucraft/restaurant-backend/internal/httpresp"
	"github.com/menucraft/restaurant-backend/internal/models"
	"github.com/menucraft/restaurant-backend/internal/validators"
)

type UserHandler struct {
	users account.UserRepository
	audit *audit.Dispatcher
}

func NewUserHandler(users account.UserRepository, audit *audit.Dispatcher) *UserHandler {
	return &UserHandler{
		users: users,
		audit: audit,
	}
}

// --------- Requests ---------

type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Password is a plain string: an empty value means "keep the current one".
type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password string  `json:"password,omitempty"`
	Role     *string `json:"role,omitempty"`
}

// --------- Handlers ---------

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_users", "Could not list users.")
		return
	}

	httpresp.OK(c, dto.NewUserDTOs(users))
}

func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed request body.")
		return
	}

	name := strings.TrimSpace(req.Name)
	email := validators.NormalizeEmail(req.Email)

	if name == "" || email == "" || req.Password == "" {
		httperr.BadRequest(c, "missing_fields", "Name, email and password are required.")
		return
	}

	if req.Role != "" && !models.IsValidRole(req.Role) {
		httperr.BadRequest(c, "invalid_role", "Role must be customer, employee or admin.")
		return
	}

	// Read-then-write uniqueness check (accepted race, same as categories).
	if _, err := h.users.GetByEmail(c.Request.Context(), email); err == nil {
		httperr.BadRequest(c, "email_already_exists", "A user with this email already exists.")
		return
	} else if httperr.KindOf(err) != httperr.KindNotFound {
		httperr.Respond(c, err)
		return
	}

	u := models.NewUser(name, email, req.Password, req.Role)
	if err := h.users.Create(c.Request.Context(), u); err != nil {
		httperr.Internal(c, "failed_to_create_user", "Could not create user.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "user_created",
		Entity:   "user",
		EntityID: u.ID,
	})

	httpresp.Created(c, dto.NewUserDTO(u))
}

func (h *UserHandler) Update(c *gin.Context) {
	id := c.Param("id")

	u, err := h.users.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed request body.")
		return
	}

	if req.Role != nil && !models.IsValidRole(*req.Role) {
		httperr.BadRequest(c, "invalid_role", "Role must be customer, employee or admin.")
		return
	}

	if req.Name != nil {
		u.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		u.Email = validators.NormalizeEmail(*req.Email)
	}
	if req.Role != nil {
		u.Role = *req.Role
	}
	if req.Password != "" {
		u.Password = req.Password // re-hashed by the save hook
	}

	if err := h.users.Update(c.Request.Context(), u); err != nil {
		httperr.Internal(c, "failed_to_update_user", "Could not update user.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "user_updated",
		Entity:   "user",
		EntityID: u.ID,
	})

	httpresp.OK(c, dto.NewUserDTO(u))
}

func (h *UserHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	u, err := h.users.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	if err := h.users.Delete(c.Request.Context(), u.ID); err != nil {
		httperr.Internal(c, "failed_to_delete_user", "Could not delete user.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "user_deleted",
		Entity:   "user",
		EntityID: u.ID,
	})

	httpresp.NoContent(c)
}

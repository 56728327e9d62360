package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/menucraft/restaurant-backend/internal/audit"
	domain "github.com/menucraft/restaurant-backend/internal/domain/restaurant"
	"github.com/menucraft/restaurant-backend/internal/httperr"
	"github.com/menucraft/restaurant-backend/internal/httpresp"
	"github.com/menucraft/restaurant-backend/internal/models"
	"github.com/menucraft/restaurant-backend/internal/validators"
)

type RestaurantHandler struct {
	restaurants domain.Repository
	audit       *audit.Dispatcher
}

func NewRestaurantHandler(restaurants domain.Repository, audit *audit.Dispatcher) *RestaurantHandler {
	return &RestaurantHandler{
		restaurants: restaurants,
		audit:       audit,
	}
}

// --------- Requests ---------

type ProvisionRestaurantRequest struct {
	Name      string `json:"name"`
	Subdomain string `json:"subdomain"`
}

// Subscription plan and status are read-only over HTTP; billing manages them.
type UpdateRestaurantRequest struct {
	Name                     *string `json:"name,omitempty"`
	Subdomain                *string `json:"subdomain,omitempty"`
	IsPublic                 *bool   `json:"isPublic,omitempty"`
	LogoURL                  *string `json:"logoUrl,omitempty"`
	BannerURL                *string `json:"bannerUrl,omitempty"`
	Description              *string `json:"description,omitempty"`
	ContactPhone             *string `json:"contactPhone,omitempty"`
	ContactEmail             *string `json:"contactEmail,omitempty"`
	Address                  *string `json:"address,omitempty"`
	AllowOrderWhenOutOfStock *bool   `json:"allowOrderWhenOutOfStock,omitempty"`
}

// --------- Handlers ---------

func (h *RestaurantHandler) Get(c *gin.Context) {
	rest, err := h.restaurants.Get(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, rest)
}

func (h *RestaurantHandler) Provision(c *gin.Context) {
	var req ProvisionRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed request body.")
		return
	}

	name := strings.TrimSpace(req.Name)
	subdomain := validators.NormalizeSubdomain(req.Subdomain)

	if name == "" || subdomain == "" {
		httperr.BadRequest(c, "missing_fields", "Name and subdomain are required.")
		return
	}

	// One record per tenant.
	if _, err := h.restaurants.Get(c.Request.Context()); err == nil {
		httperr.BadRequest(c, "restaurant_already_exists", "The restaurant is already provisioned.")
		return
	} else if httperr.KindOf(err) != httperr.KindNotFound {
		httperr.Respond(c, err)
		return
	}

	rest := models.NewRestaurant(name, subdomain)
	if err := h.restaurants.Create(c.Request.Context(), rest); err != nil {
		httperr.Internal(c, "failed_to_create_restaurant", "Could not provision restaurant.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "restaurant_provisioned",
		Entity:   "restaurant",
		EntityID: rest.ID,
	})

	httpresp.Created(c, rest)
}

func (h *RestaurantHandler) Update(c *gin.Context) {
	rest, err := h.restaurants.Get(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	var req UpdateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed request body.")
		return
	}

	if req.Subdomain != nil {
		subdomain := validators.NormalizeSubdomain(*req.Subdomain)
		if subdomain == "" {
			httperr.BadRequest(c, "invalid_subdomain", "Subdomain cannot be blank.")
			return
		}

		if other, err := h.restaurants.GetBySubdomain(c.Request.Context(), subdomain); err == nil && other.ID != rest.ID {
			httperr.BadRequest(c, "subdomain_already_exists", "This subdomain is taken.")
			return
		} else if err != nil && httperr.KindOf(err) != httperr.KindNotFound {
			httperr.Respond(c, err)
			return
		}

		rest.Website.Subdomain = subdomain
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			httperr.BadRequest(c, "invalid_name", "Display name cannot be blank.")
			return
		}
		rest.Website.Name = name
	}
	if req.IsPublic != nil {
		rest.Website.IsPublic = *req.IsPublic
	}
	if req.LogoURL != nil {
		rest.Website.LogoURL = *req.LogoURL
	}
	if req.BannerURL != nil {
		rest.Website.BannerURL = *req.BannerURL
	}
	if req.Description != nil {
		rest.Website.Description = *req.Description
	}
	if req.ContactPhone != nil {
		rest.Website.ContactPhone = *req.ContactPhone
	}
	if req.ContactEmail != nil {
		rest.Website.ContactEmail = validators.NormalizeEmail(*req.ContactEmail)
	}
	if req.Address != nil {
		rest.Website.Address = *req.Address
	}
	if req.AllowOrderWhenOutOfStock != nil {
		rest.Settings.AllowOrderWhenOutOfStock = *req.AllowOrderWhenOutOfStock
	}

	if err := h.restaurants.Update(c.Request.Context(), rest); err != nil {
		httperr.Internal(c, "failed_to_update_restaurant", "Could not update restaurant.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "restaurant_updated",
		Entity:   "restaurant",
		EntityID: rest.ID,
	})

	httpresp.OK(c, rest)
}

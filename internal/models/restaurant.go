package models

import (
	"time"

	"github.com/google/uuid"
)

// ===============================
// Subscription enums
// ===============================

const (
	PlanEssential    = "ESSENTIAL"
	PlanProfessional = "PROFESSIONAL"
	PlanEnterprise   = "ENTERPRISE"
)

const (
	SubscriptionTrial     = "TRIAL"
	SubscriptionActive    = "ACTIVE"
	SubscriptionSuspended = "SUSPENDED"
)

type Website struct {
	Subdomain    string `gorm:"size:100;uniqueIndex;not null" json:"subdomain"`
	IsPublic     bool   `json:"is_public"`
	Name         string `gorm:"size:100;not null" json:"name"`
	LogoURL      string `gorm:"size:255" json:"logo_url"`
	BannerURL    string `gorm:"size:255" json:"banner_url"`
	Description  string `gorm:"size:255" json:"description"`
	ContactPhone string `gorm:"size:20" json:"contact_phone"`
	ContactEmail string `gorm:"size:100" json:"contact_email"`
	Address      string `gorm:"size:255" json:"address"`
}

type Subscription struct {
	Plan        string     `gorm:"size:20" json:"plan"`
	Status      string     `gorm:"size:20" json:"status"`
	TrialEndsAt *time.Time `json:"trial_ends_at"`
	ExpiresAt   *time.Time `json:"expires_at"`
}

type Settings struct {
	AllowOrderWhenOutOfStock bool `json:"allow_order_when_out_of_stock"`
}

// Restaurant is a singleton-per-tenant record; a deployment carries one.
type Restaurant struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Website      Website      `gorm:"embedded;embeddedPrefix:website_" json:"website"`
	Subscription Subscription `gorm:"embedded;embeddedPrefix:subscription_" json:"subscription"`
	Settings     Settings     `gorm:"embedded;embeddedPrefix:settings_" json:"settings"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewRestaurant fills every default explicitly: new tenants start public,
// on the ESSENTIAL plan, in TRIAL, with out-of-stock ordering disabled.
func NewRestaurant(name, subdomain string) *Restaurant {
	return &Restaurant{
		ID: uuid.NewString(),
		Website: Website{
			Subdomain: subdomain,
			IsPublic:  true,
			Name:      name,
		},
		Subscription: Subscription{
			Plan:   PlanEssential,
			Status: SubscriptionTrial,
		},
		Settings: Settings{
			AllowOrderWhenOutOfStock: false,
		},
	}
}

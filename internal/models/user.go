package models

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	RoleCustomer = "customer"
	RoleEmployee = "employee"
	RoleAdmin    = "admin"
)

func IsValidRole(role string) bool {
	switch role {
	case RoleCustomer, RoleEmployee, RoleAdmin:
		return true
	}
	return false
}

// User is a back-office or customer account. Email uniqueness is checked
// with a lookup before insert, not with a database index.
type User struct {
	ID    string `gorm:"primaryKey;size:36" json:"id"`
	Name  string `gorm:"size:100;not null" json:"name"`
	Email string `gorm:"size:100;not null" json:"email"`
	Role  string `gorm:"size:20;not null" json:"role"`

	// Password holds a pending plaintext password; it is consumed and
	// hashed by the BeforeSave hook and never persisted or serialized.
	Password     string `gorm:"-" json:"-"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// NewUser fills defaults explicitly: a missing role means customer.
func NewUser(name, email, password, role string) *User {
	if role == "" {
		role = RoleCustomer
	}
	return &User{
		ID:       uuid.NewString(),
		Name:     name,
		Email:    email,
		Role:     role,
		Password: password,
	}
}

// BeforeSave hashes a pending plaintext password as a side effect of the
// save operation. Callers never hash; an empty Password leaves the stored
// hash untouched.
func (u *User) BeforeSave(tx *gorm.DB) error {
	if u.Password == "" {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	u.PasswordHash = string(hashed)
	u.Password = ""
	return nil
}

package entity

import (
	"github.com/google/uuid"
)

// User is the "current user" record. The mock identity layer gates account
// pages with it; it is not a security boundary.
type User struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Phone   string    `json:"phone,omitempty"`
	Address string    `json:"address,omitempty"`
	City    string    `json:"city,omitempty"`
	ZipCode string    `json:"zipCode,omitempty"`
}

// Credential is one entry in the registered-user roster. Email is the
// uniqueness key. The password hash never leaves the identity store.
type Credential struct {
	User
	PasswordHash string `json:"passwordHash"`
}

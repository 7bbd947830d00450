package domain

import (
	"strings"
	"time"
)

type UserStatus string

const (
	UserActive   UserStatus = "active"
	UserInactive UserStatus = "inactive"
)

// User is a guest account. Email is the natural key and is stored lowercased.
type User struct {
	ID             string     `json:"id"`
	Name           string     `json:"name" validate:"required"`
	Surname        string     `json:"surname" validate:"required"`
	Email          string     `json:"email" validate:"required,email"`
	PhoneNumber    string     `json:"phone_number"`
	Status         UserStatus `json:"status" validate:"required,oneof=active inactive"`
	CreatedAt      time.Time  `json:"created_at"`
	LastModifiedAt time.Time  `json:"last_modified_at"`
}

// NormalizeEmail lowercases and trims the address before validation, so two
// spellings of the same mailbox cannot register twice.
func (u *User) NormalizeEmail() {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
}

type UserPatch struct {
	Name        *string     `json:"name,omitempty"`
	Surname     *string     `json:"surname,omitempty"`
	PhoneNumber *string     `json:"phone_number,omitempty"`
	Status      *UserStatus `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
}

func (p UserPatch) Empty() bool {
	return p.Name == nil && p.Surname == nil && p.PhoneNumber == nil && p.Status == nil
}

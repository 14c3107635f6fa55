package models

import "time"

// Role determines a user's authorization scope.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User represents a registered guest or administrator.
type User struct {
	ID           string    `bson:"id" json:"userId"`
	FirstName    string    `bson:"firstName" json:"firstName"`
	LastName     string    `bson:"lastName" json:"lastName"`
	Email        string    `bson:"email" json:"email"`
	ContactPhone string    `bson:"contactPhone,omitempty" json:"contactPhone,omitempty"`
	Address      string    `bson:"address,omitempty" json:"address,omitempty"`
	Role         Role      `bson:"role" json:"role"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// UserSummary is the guest context embedded in booking detail responses.
type UserSummary struct {
	ID           string `bson:"id" json:"userId"`
	FirstName    string `bson:"firstName" json:"firstName"`
	LastName     string `bson:"lastName" json:"lastName"`
	Email        string `bson:"email" json:"email"`
	ContactPhone string `bson:"contactPhone,omitempty" json:"contactPhone,omitempty"`
}

// Summary returns the embeddable summary of the user.
func (u *User) Summary() *UserSummary {
	return &UserSummary{
		ID:           u.ID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Email:        u.Email,
		ContactPhone: u.ContactPhone,
	}
}

package models

import "time"

// Role names used in JWT claims and route guards.
const (
	RoleUser   = "user"
	RoleLawyer = "lawyer"
)

type User struct {
	ID             string    `bson:"id" json:"id"`
	FirstName      string    `bson:"firstName" json:"firstName"`
	Surname        string    `bson:"surname,omitempty" json:"surname,omitempty"`
	LastName       string    `bson:"lastName" json:"lastName"`
	Email          string    `bson:"email" json:"email"`
	Phone          string    `bson:"phone" json:"phone"`
	CityID         int       `bson:"cityId" json:"cityId"`
	Role           string    `bson:"role" json:"role"`
	LawyerIDNumber string    `bson:"lawyerIdNumber,omitempty" json:"lawyerIdNumber,omitempty"`
	EmailConfirmed bool      `bson:"emailConfirmed" json:"emailConfirmed"`
	PasswordHash   string    `bson:"passwordHash" json:"-"`
	TokenHash      string    `bson:"tokenHash,omitempty" json:"-"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time `bson:"updatedAt" json:"updatedAt"`
}

// UserInfo is the payload returned after login or email confirmation.
type UserInfo struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	IDToken string `json:"idToken"`
}

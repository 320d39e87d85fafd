package models

import "time"

// User is a registered account. The username doubles as the tenant key every
// other collection is partitioned by.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"-"`
	Username     string    `gorm:"uniqueIndex;size:64" json:"username"`
	PasswordHash string    `gorm:"size:60" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName overrides the table name.
func (User) TableName() string {
	return "users"
}

// RegisterRequest is the registration form payload.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest is the login form payload.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the issued session token.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

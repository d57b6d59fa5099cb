package models

import "time"

type Role string

const (
	RoleClient Role = "client"
	RoleAdmin  Role = "admin"
)

type User struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	LastName     string    `gorm:"not null" json:"last_name"`
	FirstName    string    `gorm:"not null" json:"first_name"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Role         Role      `gorm:"type:VARCHAR(10);default:'client'" json:"role"`
	Active       bool      `gorm:"default:true" json:"active"`
	Orders       []Order   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"orders,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserView is the shape returned to clients. The password hash never leaves
// the server, not even for admins.
type UserView struct {
	ID        string    `json:"id"`
	LastName  string    `json:"last_name"`
	FirstName string    `json:"first_name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) View() UserView {
	return UserView{
		ID:        u.ID,
		LastName:  u.LastName,
		FirstName: u.FirstName,
		Email:     u.Email,
		Role:      u.Role,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
	}
}

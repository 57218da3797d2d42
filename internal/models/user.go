package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	DefaultLocation  = "Delhi"
	DefaultTotalLand = 10.0
)

type User struct {
	ID          uuid.UUID  `db:"id"`
	Username    string     `db:"username"`
	Email       string     `db:"email"`
	Phone       string     `db:"phone"`
	Password    string     `db:"password"`
	FullName    string     `db:"full_name"`
	FarmName    string     `db:"farm_name"`
	Location    string     `db:"location"`
	TotalLand   float64    `db:"total_land"`
	ResetToken  *string    `db:"reset_token"`
	TokenExpiry *time.Time `db:"token_expiry"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

// MemberSince is the registration date.
func (u *User) MemberSince() time.Time {
	return u.CreatedAt
}

package users

import "time"

// Roles form a closed set. A user's role is resolved once at login and
// carried in the JWT, so policy checks never go back to the database.
const (
	RoleUser      = "user"
	RoleModerator = "moderator"
	RoleStaff     = "staff"
)

type User struct {
	ID           uint    `gorm:"primaryKey"`
	Email        string  `gorm:"not null;uniqueIndex:idx_users_email"`
	Password     *string `gorm:""`
	Phone        string
	City         string
	AvatarURL    string
	AuthProvider string  `gorm:"type:varchar(20);not null;default:'local'"`
	GoogleSub    *string `gorm:"uniqueIndex:idx_users_google_sub"`
	Role         string  `gorm:"type:varchar(20);not null;default:'user'"`

	// Deactivated accounts keep their rows; the sweep job flips IsActive.
	IsActive    bool `gorm:"not null;default:true"`
	LastLoginAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (u User) IsModerator() bool { return u.Role == RoleModerator }

func (u User) IsStaff() bool { return u.Role == RoleStaff }

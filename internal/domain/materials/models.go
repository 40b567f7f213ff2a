package materials

import (
	"time"

	"eduplatform/internal/domain/users"
)

type Course struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:150;not null"`
	Description string
	Price       uint // major currency units

	// Deleting the owning user keeps the course and nulls the reference.
	OwnerID *uint
	Owner   *users.User `gorm:"constraint:OnDelete:SET NULL"`

	Lessons []Lesson

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Lesson struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:150;not null"`
	Description string
	VideoLink   string `gorm:"not null"`

	CourseID uint   `gorm:"not null"`
	Course   Course `gorm:"constraint:OnDelete:CASCADE"`

	OwnerID *uint
	Owner   *users.User `gorm:"constraint:OnDelete:SET NULL"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Subscription existence is the subscribed state. The pair index keeps
// concurrent toggles down to a single row.
type Subscription struct {
	ID       uint `gorm:"primaryKey"`
	UserID   uint `gorm:"not null;uniqueIndex:idx_subscriptions_user_course"`
	User     users.User
	CourseID uint   `gorm:"not null;uniqueIndex:idx_subscriptions_user_course"`
	Course   Course `gorm:"constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
}

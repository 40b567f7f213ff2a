package billing

import (
	"time"

	"eduplatform/internal/domain/materials"
	"eduplatform/internal/domain/users"
)

const (
	MethodCash     = "cash"
	MethodTransfer = "transfer"
	MethodCard     = "card"
)

// Payment is a ledger row. A row created by checkout initiation is NOT proof
// of collected funds; there is no reconciliation step linking it to money.
type Payment struct {
	ID     uint `gorm:"primaryKey"`
	UserID uint `gorm:"not null"`
	User   users.User

	// At most one of the two targets is set; both nil for manual entries.
	PaidCourseID *uint
	PaidCourse   *materials.Course `gorm:"constraint:OnDelete:SET NULL"`
	PaidLessonID *uint
	PaidLesson   *materials.Lesson `gorm:"constraint:OnDelete:SET NULL"`

	Amount uint   `gorm:"not null"`
	Method string `gorm:"type:varchar(20);not null"`

	StripeProductID *string
	StripePriceID   *string
	StripeSessionID *string `gorm:"uniqueIndex:idx_payments_stripe_session_id"`
	PaymentLink     *string
	IdempotencyKey  *string

	CreatedAt time.Time
}

package access

import (
	"eduplatform/internal/domain/users"

	"gorm.io/gorm"
)

// PaymentScope narrows payment queries instead of denying them: non-staff
// actors get a filtered set, never a 403.
func PaymentScope(actor users.User) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if actor.IsStaff() {
			return db
		}
		return db.Where("payments.user_id = ?", actor.ID)
	}
}

// UserListScope: staff and moderators see everyone, everyone else sees
// only themselves.
func UserListScope(actor users.User) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if actor.IsStaff() || actor.IsModerator() {
			return db
		}
		return db.Where("users.id = ?", actor.ID)
	}
}

package access

import (
	"testing"

	"eduplatform/internal/domain/billing"
	"eduplatform/internal/domain/users"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func scopeTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&users.User{}, &billing.Payment{}))
	return db
}

func TestPaymentScope(t *testing.T) {
	db := scopeTestDB(t)

	alice := users.User{Email: "alice@test.com", Role: users.RoleUser}
	bob := users.User{Email: "bob@test.com", Role: users.RoleUser}
	admin := users.User{Email: "admin@test.com", Role: users.RoleStaff}
	require.NoError(t, db.Create(&alice).Error)
	require.NoError(t, db.Create(&bob).Error)
	require.NoError(t, db.Create(&admin).Error)

	require.NoError(t, db.Create(&billing.Payment{UserID: alice.ID, Amount: 100, Method: billing.MethodCash}).Error)
	require.NoError(t, db.Create(&billing.Payment{UserID: bob.ID, Amount: 200, Method: billing.MethodTransfer}).Error)
	require.NoError(t, db.Create(&billing.Payment{UserID: bob.ID, Amount: 300, Method: billing.MethodCard}).Error)

	var mine []billing.Payment
	require.NoError(t, db.Scopes(PaymentScope(alice)).Find(&mine).Error)
	require.Len(t, mine, 1)
	for _, p := range mine {
		require.Equal(t, alice.ID, p.UserID)
	}

	var all []billing.Payment
	require.NoError(t, db.Scopes(PaymentScope(admin)).Find(&all).Error)
	require.Len(t, all, 3)
}

func TestUserListScope(t *testing.T) {
	db := scopeTestDB(t)

	alice := users.User{Email: "alice@test.com", Role: users.RoleUser}
	moder := users.User{Email: "moder@test.com", Role: users.RoleModerator}
	admin := users.User{Email: "admin@test.com", Role: users.RoleStaff}
	require.NoError(t, db.Create(&alice).Error)
	require.NoError(t, db.Create(&moder).Error)
	require.NoError(t, db.Create(&admin).Error)

	var onlySelf []users.User
	require.NoError(t, db.Scopes(UserListScope(alice)).Find(&onlySelf).Error)
	require.Len(t, onlySelf, 1)
	require.Equal(t, alice.ID, onlySelf[0].ID)

	var seenByModer []users.User
	require.NoError(t, db.Scopes(UserListScope(moder)).Find(&seenByModer).Error)
	require.Len(t, seenByModer, 3)

	var seenByStaff []users.User
	require.NoError(t, db.Scopes(UserListScope(admin)).Find(&seenByStaff).Error)
	require.Len(t, seenByStaff, 3)
}

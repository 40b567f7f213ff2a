package materials

import (
	"net/http"
	"testing"
	"time"

	"eduplatform/database"
	"eduplatform/internal/domain/materials"
	"eduplatform/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func subscriptionRouter(u users.User) *gin.Engine {
	r := gin.New()
	r.POST("/subscriptions", authAs(u), ToggleSubscription)
	return r
}

func subscriptionExists(t *testing.T, userID, courseID uint) bool {
	t.Helper()
	var count int64
	require.NoError(t, database.DB.Model(&materials.Subscription{}).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Count(&count).Error)
	return count > 0
}

func TestToggleSubscription(t *testing.T) {
	setupTestDB(t)
	user := createUser(t, "user@test.com", users.RoleUser)
	course := materials.Course{Name: "Test Course", Price: 100}
	require.NoError(t, database.DB.Create(&course).Error)

	r := subscriptionRouter(user)

	// first call subscribes
	w := perform(r, http.MethodPost, "/subscriptions", gin.H{"course_id": course.ID})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Подписка добавлена", decodeBody(t, w)["message"])
	assert.True(t, subscriptionExists(t, user.ID, course.ID))

	// second call unsubscribes
	w = perform(r, http.MethodPost, "/subscriptions", gin.H{"course_id": course.ID})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Подписка удалена", decodeBody(t, w)["message"])
	assert.False(t, subscriptionExists(t, user.ID, course.ID))
}

func TestToggleSubscriptionAlternates(t *testing.T) {
	setupTestDB(t)
	user := createUser(t, "user@test.com", users.RoleUser)
	course := materials.Course{Name: "Test Course"}
	require.NoError(t, database.DB.Create(&course).Error)

	r := subscriptionRouter(user)

	// an odd number of calls leaves the pair present, an even number absent
	for i := 1; i <= 7; i++ {
		w := perform(r, http.MethodPost, "/subscriptions", gin.H{"course_id": course.ID})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, i%2 == 1, subscriptionExists(t, user.ID, course.ID), "after %d calls", i)
	}
}

func TestToggleSubscriptionConcurrentInsert(t *testing.T) {
	db := setupTestDB(t)
	user := createUser(t, "user@test.com", users.RoleUser)
	course := materials.Course{Name: "Test Course"}
	require.NoError(t, db.Create(&course).Error)

	// a second writer claims the pair between the handler's lookup and its
	// insert; the callback fires before the insert's transaction begins, so
	// the claimed row survives the handler's rollback
	injected := false
	require.NoError(t, db.Callback().Create().Before("gorm:begin_transaction").
		Register("toggle_test:first_writer", func(tx *gorm.DB) {
			if injected || tx.Statement.Schema == nil || tx.Statement.Schema.Table != "subscriptions" {
				return
			}
			injected = true
			if err := database.DB.Exec(
				"INSERT INTO subscriptions (user_id, course_id, created_at) VALUES (?, ?, ?)",
				user.ID, course.ID, time.Now(),
			).Error; err != nil {
				t.Errorf("competing insert failed: %v", err)
			}
		}))
	defer db.Callback().Create().Remove("toggle_test:first_writer")

	w := perform(subscriptionRouter(user), http.MethodPost, "/subscriptions",
		gin.H{"course_id": course.ID})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, msgSubscribed, decodeBody(t, w)["message"])
	require.True(t, injected)

	var count int64
	require.NoError(t, database.DB.Model(&materials.Subscription{}).
		Where("user_id = ? AND course_id = ?", user.ID, course.ID).
		Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestToggleSubscriptionCourseMissing(t *testing.T) {
	setupTestDB(t)
	user := createUser(t, "user@test.com", users.RoleUser)

	r := subscriptionRouter(user)
	w := perform(r, http.MethodPost, "/subscriptions", gin.H{"course_id": 9999})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Курс не найден", decodeBody(t, w)["error"])
}

func TestToggleSubscriptionAnonymous(t *testing.T) {
	setupTestDB(t)
	course := materials.Course{Name: "Test Course"}
	require.NoError(t, database.DB.Create(&course).Error)

	// no auth middleware: the request carries no identity
	r := gin.New()
	r.POST("/subscriptions", ToggleSubscription)

	w := perform(r, http.MethodPost, "/subscriptions", gin.H{"course_id": course.ID})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, subscriptionExists(t, 0, course.ID))
}

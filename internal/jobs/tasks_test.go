package jobs

import (
	"testing"
	"time"

	"eduplatform/database"
	"eduplatform/internal/domain/materials"
	"eduplatform/internal/domain/users"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	database.DB = db
	return db
}

func createUser(t *testing.T, email string, lastLogin *time.Time) users.User {
	t.Helper()
	u := users.User{Email: email, Role: users.RoleUser, IsActive: true, LastLoginAt: lastLogin}
	require.NoError(t, database.DB.Create(&u).Error)
	return u
}

type recorderMailer struct {
	to      []string
	subject string
	body    string
	calls   int
	err     error
}

func (r *recorderMailer) Send(to []string, subject, body string) error {
	r.calls++
	r.to = to
	r.subject = subject
	r.body = body
	return r.err
}

func TestCourseUpdateNotification(t *testing.T) {
	setupTestDB(t)
	course := materials.Course{Name: "Go Basics", Price: 500}
	require.NoError(t, database.DB.Create(&course).Error)

	alice := createUser(t, "alice@test.com", nil)
	bob := createUser(t, "bob@test.com", nil)
	createUser(t, "carol@test.com", nil) // not subscribed

	for _, uid := range []uint{alice.ID, bob.ID} {
		sub := materials.Subscription{UserID: uid, CourseID: course.ID}
		require.NoError(t, database.DB.Create(&sub).Error)
	}

	rec := &recorderMailer{}
	SetMailer(rec)
	defer SetMailer(SMTPMailer{})

	outcome := CourseUpdateNotification(course.ID)()

	assert.Equal(t, "Уведомления отправлены 2 подписчикам", outcome)
	assert.Equal(t, 1, rec.calls)
	assert.ElementsMatch(t, []string{"alice@test.com", "bob@test.com"}, rec.to)
	assert.Contains(t, rec.subject, "Go Basics")
}

func TestCourseUpdateNotificationNoSubscribers(t *testing.T) {
	setupTestDB(t)
	course := materials.Course{Name: "Go Basics", Price: 500}
	require.NoError(t, database.DB.Create(&course).Error)

	rec := &recorderMailer{}
	SetMailer(rec)
	defer SetMailer(SMTPMailer{})

	outcome := CourseUpdateNotification(course.ID)()

	assert.Equal(t, "Нет подписчиков для рассылки", outcome)
	assert.Zero(t, rec.calls)
}

func TestCourseUpdateNotificationMissingCourse(t *testing.T) {
	setupTestDB(t)

	rec := &recorderMailer{}
	SetMailer(rec)
	defer SetMailer(SMTPMailer{})

	outcome := CourseUpdateNotification(9999)()

	assert.Contains(t, outcome, "Ошибка")
	assert.Zero(t, rec.calls)
}

func TestDeactivateInactiveUsers(t *testing.T) {
	setupTestDB(t)

	old := time.Now().AddDate(0, 0, -45)
	recent := time.Now().AddDate(0, 0, -5)

	stale := createUser(t, "stale@test.com", &old)
	fresh := createUser(t, "fresh@test.com", &recent)
	never := createUser(t, "never@test.com", nil)

	outcome := DeactivateInactiveUsers()
	assert.Equal(t, "Заблокировано 1 неактивных пользователей", outcome)

	var u users.User
	require.NoError(t, database.DB.First(&u, stale.ID).Error)
	assert.False(t, u.IsActive)
	u = users.User{}
	require.NoError(t, database.DB.First(&u, fresh.ID).Error)
	assert.True(t, u.IsActive)
	// users with no recorded login are left alone
	u = users.User{}
	require.NoError(t, database.DB.First(&u, never.ID).Error)
	assert.True(t, u.IsActive)

	// second sweep matches nothing
	outcome = DeactivateInactiveUsers()
	assert.Equal(t, "Заблокировано 0 неактивных пользователей", outcome)
}

func TestPoolRunsSubmittedTasks(t *testing.T) {
	p := NewPool(2)
	done := make(chan string, 1)
	p.Submit(func() string {
		done <- "ran"
		return "ran"
	})
	select {
	case got := <-done:
		assert.Equal(t, "ran", got)
	case <-time.After(2 * time.Second):
		t.Fatal("task was not executed")
	}
}

func TestSyncDispatcherRunsInline(t *testing.T) {
	var ran bool
	Sync{}.Submit(func() string {
		ran = true
		return "done"
	})
	assert.True(t, ran)
}

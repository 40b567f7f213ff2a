package jobs

import (
	"fmt"
	"log"
	"time"

	"eduplatform/database"
	"eduplatform/internal/domain/materials"
	"eduplatform/internal/domain/users"
)

const inactiveAfterDays = 30

// CourseUpdateNotification fans an update notice out to every subscriber of
// the course. Safe to re-run: it reads current state and sends one message.
func CourseUpdateNotification(courseID uint) Task {
	return func() string {
		var course materials.Course
		if err := database.DB.First(&course, courseID).Error; err != nil {
			log.Printf("[jobs] course %d lookup failed: %v", courseID, err)
			return fmt.Sprintf("Ошибка: курс %d не найден", courseID)
		}

		var emails []string
		if err := database.DB.Model(&materials.Subscription{}).
			Joins("JOIN users ON users.id = subscriptions.user_id").
			Where("subscriptions.course_id = ?", courseID).
			Distinct().
			Pluck("users.email", &emails).Error; err != nil {
			log.Printf("[jobs] subscriber lookup failed: %v", err)
			return fmt.Sprintf("Ошибка: %v", err)
		}

		if len(emails) == 0 {
			return "Нет подписчиков для рассылки"
		}

		subject := fmt.Sprintf("Обновление курса: %s", course.Name)
		body := fmt.Sprintf("Курс '%s' был обновлен", course.Name)
		if err := mailer.Send(emails, subject, body); err != nil {
			log.Printf("[jobs] notification send failed: %v", err)
			return fmt.Sprintf("Ошибка при отправке: %v", err)
		}
		return fmt.Sprintf("Уведомления отправлены %d подписчикам", len(emails))
	}
}

// DeactivateInactiveUsers flips users who have not logged in for a month to
// inactive. Re-running matches zero rows, so the job is idempotent.
func DeactivateInactiveUsers() string {
	cutoff := time.Now().AddDate(0, 0, -inactiveAfterDays)

	result := database.DB.Model(&users.User{}).
		Where("is_active = ? AND last_login_at < ?", true, cutoff).
		Update("is_active", false)
	if result.Error != nil {
		log.Printf("[jobs] inactive sweep failed: %v", result.Error)
		return fmt.Sprintf("Ошибка: %v", result.Error)
	}
	return fmt.Sprintf("Заблокировано %d неактивных пользователей", result.RowsAffected)
}

package materials

import (
	"errors"
	"net/http"

	"eduplatform/database"
	"eduplatform/internal/domain/materials"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	msgSubscribed   = "Подписка добавлена"
	msgUnsubscribed = "Подписка удалена"
)

// POST /subscriptions is a strict toggle: the (user, course) pair gets
// created if absent, deleted if present. The unique pair index settles
// concurrent calls: a lost insert reads as "added", a lost delete as
// "removed".
func ToggleSubscription(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	var body struct {
		CourseID uint `json:"course_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var course materials.Course
	if err := database.DB.First(&course, body.CourseID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Курс не найден"})
		return
	}

	var message string
	var sub materials.Subscription
	err := database.DB.
		Where("user_id = ? AND course_id = ?", actor.ID, course.ID).
		First(&sub).Error

	switch {
	case err == nil:
		// delete of an already-deleted row is a no-op, still "removed"
		if err := database.DB.Delete(&sub).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove subscription"})
			return
		}
		message = msgUnsubscribed

	case errors.Is(err, gorm.ErrRecordNotFound):
		sub = materials.Subscription{UserID: actor.ID, CourseID: course.ID}
		if err := database.DB.Create(&sub).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// concurrent toggle won the insert; the pair exists
				message = msgSubscribed
				break
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add subscription"})
			return
		}
		message = msgSubscribed

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load subscription"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": message})
}

package billing

import (
	"net/http"

	"eduplatform/database"
	"eduplatform/internal/app/http/middleware"
	"eduplatform/internal/domain/access"
	"eduplatform/internal/domain/billing"

	"github.com/gin-gonic/gin"
)

// GET /payments is scoped, never forbidden: non-staff get their own rows.
// Optional filters: paid_course, paid_lesson, payment_method.
func GetPaymentHistory(c *gin.Context) {
	actor := middleware.Actor(c)
	if actor.ID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	q := database.DB.Scopes(access.PaymentScope(actor))

	if course := c.Query("paid_course"); course != "" {
		q = q.Where("paid_course_id = ?", course)
	}
	if lesson := c.Query("paid_lesson"); lesson != "" {
		q = q.Where("paid_lesson_id = ?", lesson)
	}
	if method := c.Query("payment_method"); method != "" {
		q = q.Where("method = ?", method)
	}

	var payments []billing.Payment
	if err := q.
		Preload("PaidCourse").
		Preload("PaidLesson").
		Order("created_at DESC").
		Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payments"})
		return
	}

	c.JSON(http.StatusOK, payments)
}

// GET /payments/:id uses the same scope as the list, so another user's
// payment reads as not found rather than leaking its existence.
func GetPayment(c *gin.Context) {
	actor := middleware.Actor(c)
	if actor.ID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var payment billing.Payment
	if err := database.DB.
		Scopes(access.PaymentScope(actor)).
		Preload("PaidCourse").
		Preload("PaidLesson").
		First(&payment, "payments.id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
		return
	}

	c.JSON(http.StatusOK, payment)
}

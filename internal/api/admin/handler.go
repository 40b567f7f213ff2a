package admin

import (
	"net/http"
	"time"

	"eduplatform/database"
	"eduplatform/internal/domain/billing"
	"eduplatform/internal/domain/users"

	"github.com/gin-gonic/gin"
)

type AdminUser struct {
	ID          uint       `json:"id"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone,omitempty"`
	City        string     `json:"city,omitempty"`
	Role        string     `json:"role"`
	IsActive    bool       `json:"is_active"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   string     `json:"created_at"`
}

type AdminPayment struct {
	ID          uint    `json:"id"`
	Email       string  `json:"email"`
	CourseName  *string `json:"course_name,omitempty"`
	LessonName  *string `json:"lesson_name,omitempty"`
	Amount      uint    `json:"amount"`
	Method      string  `json:"method"`
	SessionID   *string `json:"stripe_session_id,omitempty"`
	PaymentLink *string `json:"payment_link,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

type AdminStats struct {
	TotalUsers    int  `json:"total_users"`
	ActiveUsers   int  `json:"active_users"`
	TotalRevenue  uint `json:"total_revenue"`
	RecentRevenue uint `json:"recent_revenue"`
}

func ListAllUsers(c *gin.Context) {
	var list []users.User
	if err := database.DB.Order("created_at DESC").Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}

	out := make([]AdminUser, 0, len(list))
	for _, u := range list {
		out = append(out, AdminUser{
			ID:          u.ID,
			Email:       u.Email,
			Phone:       u.Phone,
			City:        u.City,
			Role:        u.Role,
			IsActive:    u.IsActive,
			LastLoginAt: u.LastLoginAt,
			CreatedAt:   u.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	c.JSON(http.StatusOK, out)
}

func ListAllPayments(c *gin.Context) {
	var payments []billing.Payment
	err := database.DB.
		Preload("User").
		Preload("PaidCourse").
		Preload("PaidLesson").
		Order("created_at DESC").
		Find(&payments).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payments"})
		return
	}

	out := make([]AdminPayment, 0, len(payments))
	for _, p := range payments {
		row := AdminPayment{
			ID:          p.ID,
			Email:       p.User.Email,
			Amount:      p.Amount,
			Method:      p.Method,
			SessionID:   p.StripeSessionID,
			PaymentLink: p.PaymentLink,
			CreatedAt:   p.CreatedAt.Format("2006-01-02 15:04"),
		}
		if p.PaidCourse != nil {
			row.CourseName = &p.PaidCourse.Name
		}
		if p.PaidLesson != nil {
			row.LessonName = &p.PaidLesson.Name
		}
		out = append(out, row)
	}
	c.JSON(http.StatusOK, out)
}

// POST /admin/payments: manual ledger entry for payments that happened
// outside the provider (cash or bank transfer).
func CreateManualPayment(c *gin.Context) {
	var req struct {
		UserID       uint   `json:"user_id" binding:"required"`
		PaidCourseID *uint  `json:"paid_course_id"`
		PaidLessonID *uint  `json:"paid_lesson_id"`
		Amount       uint   `json:"amount" binding:"required"`
		Method       string `json:"method" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Method != billing.MethodCash && req.Method != billing.MethodTransfer {
		c.JSON(http.StatusBadRequest, gin.H{"method": "must be cash or transfer"})
		return
	}
	if req.PaidCourseID != nil && req.PaidLessonID != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A payment targets a course or a lesson, not both"})
		return
	}

	var user users.User
	if err := database.DB.First(&user, req.UserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	payment := billing.Payment{
		UserID:       req.UserID,
		PaidCourseID: req.PaidCourseID,
		PaidLessonID: req.PaidLessonID,
		Amount:       req.Amount,
		Method:       req.Method,
	}
	if err := database.DB.Create(&payment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store payment"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": payment.ID})
}

func GetAdminStats(c *gin.Context) {
	var stats AdminStats

	var totalUsers, activeUsers int64
	database.DB.Model(&users.User{}).Count(&totalUsers)
	database.DB.Model(&users.User{}).Where("is_active = ?", true).Count(&activeUsers)

	var totalRevenue, recentRevenue int64
	database.DB.Model(&billing.Payment{}).
		Select("COALESCE(SUM(amount), 0)").Scan(&totalRevenue)

	thirtyDaysAgo := time.Now().AddDate(0, 0, -30)
	database.DB.Model(&billing.Payment{}).
		Where("created_at >= ?", thirtyDaysAgo).
		Select("COALESCE(SUM(amount), 0)").Scan(&recentRevenue)

	stats.TotalUsers = int(totalUsers)
	stats.ActiveUsers = int(activeUsers)
	stats.TotalRevenue = uint(totalRevenue)
	stats.RecentRevenue = uint(recentRevenue)

	c.JSON(http.StatusOK, stats)
}

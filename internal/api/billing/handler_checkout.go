package billing

import (
	"net/http"

	"eduplatform/config"
	"eduplatform/database"
	"eduplatform/internal/app/http/middleware"
	"eduplatform/internal/domain/billing"
	"eduplatform/internal/domain/materials"
	"eduplatform/internal/infra/stripe"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// POST /courses/:id/pay creates the remote product, price and checkout
// session in order, then records a pending ledger row. There is no
// compensation when a later step fails: orphaned remote objects carry the
// idempotency key and the error propagates to the caller. The row's
// existence does not mean money changed hands.
func PayCourse(c *gin.Context) {
	actor := middleware.Actor(c)
	if actor.ID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var course materials.Course
	if err := database.DB.First(&course, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		return
	}

	gateway := stripe.Default
	idemKey := uuid.NewString()

	productID, err := gateway.CreateProduct(course.Name, course.Description, idemKey)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Payment provider error", "details": err.Error()})
		return
	}

	priceID, err := gateway.CreatePrice(productID, course.Price)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Payment provider error", "details": err.Error()})
		return
	}

	successURL := config.APP_URL + "/payments/success"
	cancelURL := config.APP_URL + "/payments/cancel"
	session, err := gateway.CreateSession(priceID, successURL, cancelURL, idemKey)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Payment provider error", "details": err.Error()})
		return
	}

	payment := billing.Payment{
		UserID:          actor.ID,
		PaidCourseID:    &course.ID,
		Amount:          course.Price,
		Method:          billing.MethodCard,
		StripeProductID: &productID,
		StripePriceID:   &priceID,
		StripeSessionID: &session.ID,
		PaymentLink:     &session.URL,
		IdempotencyKey:  &idemKey,
	}
	if err := database.DB.Create(&payment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store payment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"payment_link": session.URL})
}

package users

import (
	"net/http"
	"time"

	"eduplatform/database"
	"eduplatform/internal/app/http/middleware"
	"eduplatform/internal/domain/access"
	"eduplatform/internal/domain/users"

	"github.com/gin-gonic/gin"
)

type ProfileDTO struct {
	ID          uint       `json:"id"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone,omitempty"`
	City        string     `json:"city,omitempty"`
	AvatarURL   string     `json:"avatar_url,omitempty"`
	Role        string     `json:"role"`
	IsActive    bool       `json:"is_active"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func toProfileDTO(u users.User) ProfileDTO {
	return ProfileDTO{
		ID:          u.ID,
		Email:       u.Email,
		Phone:       u.Phone,
		City:        u.City,
		AvatarURL:   u.AvatarURL,
		Role:        u.Role,
		IsActive:    u.IsActive,
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
	}
}

// GET /profile is the self-resource; the acting user is the resource.
func GetProfile(c *gin.Context) {
	actor := middleware.Actor(c)
	if actor.ID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var user users.User
	if err := database.DB.First(&user, actor.ID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if !access.Profile(actor, user.ID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	c.JSON(http.StatusOK, toProfileDTO(user))
}

// PUT/PATCH /profile
func UpdateProfile(c *gin.Context) {
	actor := middleware.Actor(c)
	if actor.ID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var body struct {
		Phone     *string `json:"phone"`
		City      *string `json:"city"`
		AvatarURL *string `json:"avatar_url"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user users.User
	if err := database.DB.First(&user, actor.ID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if !access.Profile(actor, user.ID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	updates := map[string]interface{}{}
	if body.Phone != nil {
		updates["phone"] = *body.Phone
	}
	if body.City != nil {
		updates["city"] = *body.City
	}
	if body.AvatarURL != nil {
		updates["avatar_url"] = *body.AvatarURL
	}
	if len(updates) > 0 {
		if err := database.DB.Model(&user).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
			return
		}
	}

	c.JSON(http.StatusOK, toProfileDTO(user))
}

// DELETE /profile
func DeleteProfile(c *gin.Context) {
	actor := middleware.Actor(c)
	if actor.ID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var user users.User
	if err := database.DB.First(&user, actor.ID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if !access.Profile(actor, user.ID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	if err := database.DB.Delete(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}

	c.Status(http.StatusNoContent)
}

// GET /users is a scoped list: staff and moderators see everyone, others
// only themselves.
func ListUsers(c *gin.Context) {
	actor := middleware.Actor(c)
	if actor.ID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var list []users.User
	if err := database.DB.
		Scopes(access.UserListScope(actor)).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}

	out := make([]ProfileDTO, 0, len(list))
	for _, u := range list {
		out = append(out, toProfileDTO(u))
	}
	c.JSON(http.StatusOK, out)
}

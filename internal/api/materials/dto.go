package materials

import (
	"net/http"
	"strconv"

	"eduplatform/internal/app/http/middleware"
	"eduplatform/internal/domain/materials"
	"eduplatform/internal/domain/users"

	"github.com/gin-gonic/gin"
)

type LessonDTO struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	VideoLink   string `json:"video_link"`
	CourseID    uint   `json:"course_id"`
	OwnerID     *uint  `json:"owner_id,omitempty"`
}

type CourseDTO struct {
	ID          uint        `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Price       uint        `json:"price"`
	OwnerID     *uint       `json:"owner_id,omitempty"`
	LessonCount int         `json:"lesson_count"`
	Lessons     []LessonDTO `json:"lessons,omitempty"`
}

func toLessonDTO(l materials.Lesson) LessonDTO {
	return LessonDTO{
		ID:          l.ID,
		Name:        l.Name,
		Description: l.Description,
		VideoLink:   l.VideoLink,
		CourseID:    l.CourseID,
		OwnerID:     l.OwnerID,
	}
}

func toCourseDTO(course materials.Course) CourseDTO {
	return CourseDTO{
		ID:          course.ID,
		Name:        course.Name,
		Description: course.Description,
		Price:       course.Price,
		OwnerID:     course.OwnerID,
		LessonCount: len(course.Lessons),
	}
}

func mustActor(c *gin.Context) (users.User, bool) {
	actor := middleware.Actor(c)
	if actor.ID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return users.User{}, false
	}
	return actor, true
}

// limit/offset pagination with a capped page size.
func pagination(c *gin.Context) (limit int, offset int) {
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

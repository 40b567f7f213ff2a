package materials

import (
	"net/http"

	"eduplatform/database"
	"eduplatform/internal/domain/access"
	"eduplatform/internal/domain/materials"

	"github.com/gin-gonic/gin"
)

// GET /lessons
func ListLessons(c *gin.Context) {
	if _, ok := mustActor(c); !ok {
		return
	}

	limit, offset := pagination(c)

	var lessons []materials.Lesson
	if err := database.DB.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&lessons).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load lessons"})
		return
	}

	out := make([]LessonDTO, 0, len(lessons))
	for _, l := range lessons {
		out = append(out, toLessonDTO(l))
	}
	c.JSON(http.StatusOK, out)
}

// GET /lessons/:id
func GetLesson(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	var lesson materials.Lesson
	if err := database.DB.First(&lesson, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lesson not found"})
		return
	}

	if !access.Lesson(actor, access.ActionRetrieve, lesson.OwnerID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	c.JSON(http.StatusOK, toLessonDTO(lesson))
}

// POST /lessons
func CreateLesson(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	if !access.Lesson(actor, access.ActionCreate, nil) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Moderators cannot create lessons"})
		return
	}

	var req struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
		VideoLink   string `json:"video_link" binding:"required"`
		CourseID    uint   `json:"course_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := materials.ValidateVideoLink(req.VideoLink); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"video_link": err.Error()})
		return
	}

	var course materials.Course
	if err := database.DB.First(&course, req.CourseID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		return
	}

	ownerID := actor.ID
	lesson := materials.Lesson{
		Name:        req.Name,
		Description: req.Description,
		VideoLink:   req.VideoLink,
		CourseID:    course.ID,
		OwnerID:     &ownerID,
	}
	if err := database.DB.Create(&lesson).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create lesson"})
		return
	}

	c.JSON(http.StatusCreated, toLessonDTO(lesson))
}

// PUT/PATCH /lessons/:id
func UpdateLesson(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	var lesson materials.Lesson
	if err := database.DB.First(&lesson, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lesson not found"})
		return
	}

	if !access.Lesson(actor, access.ActionUpdate, lesson.OwnerID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	var req struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
		VideoLink   *string `json:"video_link"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.VideoLink != nil {
		if err := materials.ValidateVideoLink(*req.VideoLink); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"video_link": err.Error()})
			return
		}
		updates["video_link"] = *req.VideoLink
	}
	if len(updates) > 0 {
		if err := database.DB.Model(&lesson).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update lesson"})
			return
		}
	}

	c.JSON(http.StatusOK, toLessonDTO(lesson))
}

// DELETE /lessons/:id
func DeleteLesson(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	var lesson materials.Lesson
	if err := database.DB.First(&lesson, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lesson not found"})
		return
	}

	if !access.Lesson(actor, access.ActionDestroy, lesson.OwnerID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	if err := database.DB.Delete(&lesson).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete lesson"})
		return
	}

	c.Status(http.StatusNoContent)
}

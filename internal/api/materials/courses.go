package materials

import (
	"net/http"

	"eduplatform/database"
	"eduplatform/internal/domain/access"
	"eduplatform/internal/domain/materials"
	"eduplatform/internal/jobs"

	"github.com/gin-gonic/gin"
)

// GET /courses
func ListCourses(c *gin.Context) {
	if _, ok := mustActor(c); !ok {
		return
	}

	limit, offset := pagination(c)

	var courses []materials.Course
	if err := database.DB.
		Preload("Lessons").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&courses).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load courses"})
		return
	}

	out := make([]CourseDTO, 0, len(courses))
	for _, course := range courses {
		out = append(out, toCourseDTO(course))
	}
	c.JSON(http.StatusOK, out)
}

// GET /courses/:id
func GetCourse(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	var course materials.Course
	if err := database.DB.Preload("Lessons").First(&course, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		return
	}

	if !access.Course(actor, access.ActionRetrieve, course.OwnerID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	// everyone gets the lesson count; lesson content itself follows the
	// lesson retrieve policy
	dto := toCourseDTO(course)
	for _, l := range course.Lessons {
		if access.Lesson(actor, access.ActionRetrieve, l.OwnerID) {
			dto.Lessons = append(dto.Lessons, toLessonDTO(l))
		}
	}

	c.JSON(http.StatusOK, dto)
}

// POST /courses
func CreateCourse(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	if !access.Course(actor, access.ActionCreate, nil) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Moderators cannot create courses"})
		return
	}

	var req struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
		Price       uint   `json:"price"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ownerID := actor.ID
	course := materials.Course{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		OwnerID:     &ownerID,
	}
	if err := database.DB.Create(&course).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create course"})
		return
	}

	c.JSON(http.StatusCreated, toCourseDTO(course))
}

// PUT/PATCH /courses/:id
func UpdateCourse(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	var course materials.Course
	if err := database.DB.First(&course, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		return
	}

	if !access.Course(actor, access.ActionUpdate, course.OwnerID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	var req struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
		Price       *uint   `json:"price"`
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
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if len(updates) > 0 {
		if err := database.DB.Model(&course).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update course"})
			return
		}
		// subscribers hear about the update asynchronously
		jobs.Submit(jobs.CourseUpdateNotification(course.ID))
	}

	c.JSON(http.StatusOK, toCourseDTO(course))
}

// DELETE /courses/:id
func DeleteCourse(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	var course materials.Course
	if err := database.DB.First(&course, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		return
	}

	if !access.Course(actor, access.ActionDestroy, course.OwnerID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	if err := database.DB.Delete(&course).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete course"})
		return
	}

	c.Status(http.StatusNoContent)
}

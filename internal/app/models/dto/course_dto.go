package dto

import "github.com/yigit/learnsphere/internal/app/models"

// CourseResponse represents course information with its categories
type CourseResponse struct {
	ID            int64              `json:"id"`
	Name          string             `json:"name"`
	Instructor    string             `json:"instructor"`
	DurationHours int                `json:"durationHours"`
	Categories    []CategoryResponse `json:"categories,omitempty"`
}

// CreateCourseRequest represents course creation data
type CreateCourseRequest struct {
	Name          string   `json:"name" binding:"required"`
	Instructor    string   `json:"instructor" binding:"required"`
	DurationHours int      `json:"durationHours" binding:"required,gt=0"`
	Categories    []string `json:"categories"`
}

// UpdateCourseRequest represents a partial course update; omitted fields are
// left unchanged
type UpdateCourseRequest struct {
	Name          *string `json:"name,omitempty"`
	Instructor    *string `json:"instructor,omitempty"`
	DurationHours *int    `json:"durationHours,omitempty" binding:"omitempty,gt=0"`
}

// CourseListResponse represents a list of courses
type CourseListResponse struct {
	Courses []CourseResponse `json:"courses"`
}

// NewCourseResponse maps a course model to its response form
func NewCourseResponse(course *models.Course) CourseResponse {
	resp := CourseResponse{
		ID:            course.ID,
		Name:          course.Name,
		Instructor:    course.Instructor,
		DurationHours: course.DurationHours,
	}
	for _, category := range course.Categories {
		resp.Categories = append(resp.Categories, NewCategoryResponse(category))
	}
	return resp
}

// NewCourseListResponse maps course models to a list response
func NewCourseListResponse(courses []*models.Course) CourseListResponse {
	out := CourseListResponse{Courses: make([]CourseResponse, 0, len(courses))}
	for _, course := range courses {
		out.Courses = append(out.Courses, NewCourseResponse(course))
	}
	return out
}

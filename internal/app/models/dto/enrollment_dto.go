package dto

import (
	"time"

	"github.com/yigit/learnsphere/internal/app/models"
)

// EnrollmentResponse represents an enrollment record
type EnrollmentResponse struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"userId"`
	CourseID   int64     `json:"courseId"`
	EnrolledAt time.Time `json:"enrolledAt"`
}

// EnrollRequest represents enrollment creation data
type EnrollRequest struct {
	UserID   int64 `json:"userId" binding:"required,gt=0"`
	CourseID int64 `json:"courseId" binding:"required,gt=0"`
}

// UserWithCoursesResponse pairs a user with the courses they are enrolled in
type UserWithCoursesResponse struct {
	User    UserResponse     `json:"user"`
	Courses []CourseResponse `json:"courses"`
}

// RosterResponse represents the admin listing of all users and their courses
type RosterResponse struct {
	Users []UserWithCoursesResponse `json:"users"`
}

// NewEnrollmentResponse maps an enrollment model to its response form
func NewEnrollmentResponse(enrollment *models.Enrollment) EnrollmentResponse {
	return EnrollmentResponse{
		ID:         enrollment.ID,
		UserID:     enrollment.UserID,
		CourseID:   enrollment.CourseID,
		EnrolledAt: enrollment.EnrolledAt,
	}
}

// NewRosterResponse maps the admin roster to its response form. Users without
// enrollments keep an empty course list.
func NewRosterResponse(roster []*models.UserWithCourses) RosterResponse {
	out := RosterResponse{Users: make([]UserWithCoursesResponse, 0, len(roster))}
	for _, entry := range roster {
		item := UserWithCoursesResponse{
			User:    NewUserResponse(entry.User),
			Courses: make([]CourseResponse, 0, len(entry.Courses)),
		}
		for _, course := range entry.Courses {
			item.Courses = append(item.Courses, NewCourseResponse(course))
		}
		out.Users = append(out.Users, item)
	}
	return out
}

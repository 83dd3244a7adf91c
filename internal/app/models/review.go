package models

import (
	"time"
)

// Review holds a user's rating and text feedback for a course, at most one per
// (user, course) pair. Ratings run 0..10 inclusive.
type Review struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	CourseID  int64     `json:"courseId" db:"course_id"`
	Rating    int       `json:"rating" db:"rating"`
	Text      string    `json:"text" db:"review_text"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	// Relations (populated when needed)
	User   *User   `json:"user,omitempty"`
	Course *Course `json:"course,omitempty"`
}

package models

// User defines the user model based on the 'users' table. Emails are stored
// lower-cased and are unique case-insensitively. Deleting a user cascades to
// their enrollments and reviews at the schema level.
type User struct {
	ID    int64  `json:"id" db:"id"`
	Name  string `json:"name" db:"name"`
	Email string `json:"email" db:"email"`
}

// UserWithCourses pairs a user with the courses they are enrolled in. Used by
// the admin roster listing.
type UserWithCourses struct {
	User    *User     `json:"user"`
	Courses []*Course `json:"courses"`
}

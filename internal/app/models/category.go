package models

// Category groups courses by topic. Names are unique under case-insensitive
// comparison; the many-to-many relation to courses lives in the
// course_categories join table.
type Category struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`

	// Relations (populated when needed)
	Courses []*Course `json:"courses,omitempty"`
}

package models

// Course represents a course in the catalog.
type Course struct {
	ID            int64  `json:"id" db:"id"`
	Name          string `json:"name" db:"name"`
	Instructor    string `json:"instructor" db:"instructor"`
	DurationHours int    `json:"durationHours" db:"duration_hours"`

	// Relations (populated when needed)
	Categories []*Category `json:"categories,omitempty"`
}

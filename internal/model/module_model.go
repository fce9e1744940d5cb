package model

import "time"

type Module struct {
	ModuleID  string     `json:"module_id"`
	CourseID  string     `json:"course_id"`
	Title     string     `json:"title"`
	Position  int        `json:"position,omitempty"`
	Duration  string     `json:"duration,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// Material is a piece of content attached to a module
type Material struct {
	MaterialID string     `json:"material_id"`
	ModuleID   string     `json:"module_id"`
	Title      string     `json:"title"`
	Type       string     `json:"type"` // video | pdf | link
	URL        string     `json:"url,omitempty"`
	Position   int        `json:"position,omitempty"`
	CreatedAt  *time.Time `json:"created_at,omitempty"`
}

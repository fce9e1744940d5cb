package model

import "time"

type Course struct {
	CourseID    string     `json:"course_id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Image       string     `json:"image,omitempty"`
	Category    string     `json:"category,omitempty"`
	Price       float64    `json:"price"`
	ModuleCount int        `json:"module_count,omitempty"`
	Duration    string     `json:"duration,omitempty"`
	Language    string     `json:"language,omitempty"`
	Rating      float64    `json:"rating,omitempty"`
	Enrollments int        `json:"enrollments,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}

// CategoryCourses pairs a category with a sample of its courses, for navigation
type CategoryCourses struct {
	Category Category `json:"category"`
	Courses  []Course `json:"courses"`
}

// Dashboard is the aggregate returned by GET /courses/dashboard
type Dashboard struct {
	Categories []CategoryCourses `json:"categories"`
	TopCourses []Course          `json:"top_courses"`
}

// CourseList is a paginated course listing
type CourseList struct {
	Courses    []Course `json:"courses"`
	Total      int      `json:"total"`
	Page       int      `json:"page"`
	TotalPages int      `json:"total_pages"`
}

package model

import "time"

type Blog struct {
	BlogID    string     `json:"blog_id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Author    string     `json:"author,omitempty"`
	Image     string     `json:"image,omitempty"`
	Tags      []string   `json:"tags,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// BlogList is a paginated blog listing
type BlogList struct {
	Blogs      []Blog `json:"blogs"`
	Total      int    `json:"total"`
	Page       int    `json:"page"`
	TotalPages int    `json:"total_pages"`
}

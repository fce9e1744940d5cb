package model

import "time"

type Subscription struct {
	SubscriptionID string     `json:"subscription_id"`
	UserID         string     `json:"user_id"`
	PlanName       string     `json:"plan_name"`
	AccessType     string     `json:"access_type,omitempty"`
	Status         string     `json:"status"` // active | expired | cancelled
	SeatLimit      *int       `json:"seat_limit,omitempty"`
	StartedAt      *time.Time `json:"started_at,omitempty"`
	ExpiresAt      *time.Time `json:"expires_at,omitempty"`
}

// SubscriptionCourse is one course granted by a subscription
type SubscriptionCourse struct {
	CourseID  string     `json:"course_id"`
	Name      string     `json:"name"`
	Image     string     `json:"image,omitempty"`
	Progress  float64    `json:"progress,omitempty"`
	GrantedAt *time.Time `json:"granted_at,omitempty"`
}

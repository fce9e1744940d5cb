package services

import (
	"context"

	"github.com/aniketraut16/edulike-sub001/external/backendapi"
	"github.com/aniketraut16/edulike-sub001/internal/model"
)

type SubscriptionService struct {
	API *backendapi.Client
}

func NewSubscriptionService(api *backendapi.Client) *SubscriptionService {
	return &SubscriptionService{API: api}
}

func (s *SubscriptionService) ListForUser(ctx context.Context, bearer string) ([]model.Subscription, error) {
	return s.API.ListSubscriptions(ctx, bearer)
}

func (s *SubscriptionService) Courses(ctx context.Context, subscriptionID, bearer string) ([]model.SubscriptionCourse, error) {
	return s.API.ListSubscriptionCourses(ctx, subscriptionID, bearer)
}

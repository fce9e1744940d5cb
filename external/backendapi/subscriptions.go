package backendapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/aniketraut16/edulike-sub001/internal/model"
)

// ListSubscriptions returns the authenticated user's subscriptions.
func (c *Client) ListSubscriptions(ctx context.Context, bearer string) ([]model.Subscription, error) {
	if bearer == "" {
		return nil, errors.New("bearer token is required")
	}
	var out []model.Subscription
	if err := c.doJSON(ctx, http.MethodGet, "/subscriptions", nil, nil, bearer, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []model.Subscription{}
	}
	return out, nil
}

// ListSubscriptionCourses returns the courses granted by one subscription.
func (c *Client) ListSubscriptionCourses(ctx context.Context, subscriptionID, bearer string) ([]model.SubscriptionCourse, error) {
	if bearer == "" {
		return nil, errors.New("bearer token is required")
	}
	var out []model.SubscriptionCourse
	if err := c.doJSON(ctx, http.MethodGet, "/subscriptions/"+subscriptionID+"/courses", nil, nil, bearer, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []model.SubscriptionCourse{}
	}
	return out, nil
}

package backendapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/aniketraut16/edulike-sub001/internal/model"
)

// GetDashboard fetches the aggregate used to populate navigation: categories
// with sample courses plus top courses.
func (c *Client) GetDashboard(ctx context.Context) (*model.Dashboard, error) {
	var out model.Dashboard
	if err := c.doJSON(ctx, http.MethodGet, "/courses/dashboard", nil, nil, "", &out); err != nil {
		return nil, err
	}
	if out.Categories == nil {
		out.Categories = []model.CategoryCourses{}
	}
	if out.TopCourses == nil {
		out.TopCourses = []model.Course{}
	}
	return &out, nil
}

// GetCourse fetches a single course by id.
func (c *Client) GetCourse(ctx context.Context, courseID string) (*model.Course, error) {
	var out model.Course
	if err := c.doJSON(ctx, http.MethodGet, "/courses/"+courseID, nil, nil, "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListCourses returns a paginated catalog page, optionally filtered by category.
func (c *Client) ListCourses(ctx context.Context, page int, category, query string) (*model.CourseList, error) {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if category != "" {
		q.Set("category", category)
	}
	if query != "" {
		q.Set("query", query)
	}
	var out model.CourseList
	if err := c.doJSON(ctx, http.MethodGet, "/courses", q, nil, "", &out); err != nil {
		return nil, err
	}
	if out.Courses == nil {
		out.Courses = []model.Course{}
	}
	return &out, nil
}

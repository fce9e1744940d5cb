package backendapi

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/aniketraut16/edulike-sub001/internal/model"
)

type AddCartItemRequest struct {
	CartID     string `json:"cart_id"`
	CourseID   string `json:"course_id"`
	Quantity   int    `json:"quantity"`
	AccessType string `json:"access_type"`
	MaxSeats   *int   `json:"max_seats,omitempty"`
}

type updateCartItemRequest struct {
	CartID   string `json:"cart_id"`
	CourseID string `json:"course_id"`
	Quantity int    `json:"quantity"`
}

// AddCartItem puts a course into the cart via POST /cart/add.
func (c *Client) AddCartItem(ctx context.Context, req AddCartItemRequest) error {
	if req.CartID == "" {
		return errors.New("cart id is required")
	}
	if req.AccessType == "" {
		req.AccessType = model.AccessIndividual
	}
	return c.doJSON(ctx, http.MethodPost, "/cart/add", nil, req, "", nil)
}

// GetCartItems fetches the authoritative line-item list. A missing cart id is
// not an error: the caller simply has no cart yet.
func (c *Client) GetCartItems(ctx context.Context, cartID string) (*model.CartItemsResponse, error) {
	if cartID == "" {
		return &model.CartItemsResponse{Items: []model.CartItem{}}, nil
	}
	q := url.Values{}
	q.Set("cartId", cartID)
	var out model.CartItemsResponse
	if err := c.doJSON(ctx, http.MethodGet, "/cart/items", q, nil, "", &out); err != nil {
		return nil, err
	}
	if out.Items == nil {
		out.Items = []model.CartItem{}
	}
	return &out, nil
}

// UpdateCartItem sets the exact quantity for a line item via PUT /cart/update.
// Quantity 0 is the removal path; the backend has no separate delete verb.
func (c *Client) UpdateCartItem(ctx context.Context, cartID, courseID string, qty int) error {
	if cartID == "" {
		return errors.New("cart id is required")
	}
	if qty < 0 {
		return errors.New("quantity must be >= 0")
	}
	body := updateCartItemRequest{CartID: cartID, CourseID: courseID, Quantity: qty}
	return c.doJSON(ctx, http.MethodPut, "/cart/update", nil, body, "", nil)
}

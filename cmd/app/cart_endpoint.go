package main

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/aniketraut16/edulike-sub001/external/backendapi"
	"github.com/aniketraut16/edulike-sub001/internal/content"
	"github.com/aniketraut16/edulike-sub001/internal/middleware"
	"github.com/aniketraut16/edulike-sub001/internal/model"
)

type addCartItemRequest struct {
	CourseID   string `json:"course_id"`
	Quantity   int    `json:"quantity"`
	AccessType string `json:"access_type"`
	MaxSeats   *int   `json:"max_seats,omitempty"`
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

type cartResponse struct {
	CartID string           `json:"cart_id"`
	Items  []model.CartItem `json:"items"`
	Count  int              `json:"count"`
	Totals model.CartTotals `json:"totals"`
}

func registerCartRoutes(g *echo.Group, api *backendapi.Client, cookieName string, logger *zap.Logger) {
	p := g.Group("/cart")

	// loadCart builds the session store for this request: identity from the
	// bearer token when present, the anonymous cookie otherwise (set on first
	// use), then one authoritative fetch.
	loadCart := func(c echo.Context) (*content.Store, error) {
		st := content.NewStore(api, cookieTokenStore{c: c, name: cookieName}, logger)
		if claims := middleware.TryGetClaimsFromAuthHeader(c); claims != nil {
			return st, st.SetIdentity(c.Request().Context(), claims.UserID)
		}
		return st, st.Refresh(c.Request().Context())
	}

	render := func(st *content.Store) cartResponse {
		return cartResponse{
			CartID: st.CartID(),
			Items:  st.Items(),
			Count:  st.Count(),
			Totals: st.Totals(),
		}
	}

	// GET cart
	p.GET("", func(c echo.Context) error {
		st, err := loadCart(c)
		if err != nil {
			return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, render(st))
	})

	// GET derived totals only
	p.GET("/totals", func(c echo.Context) error {
		st, err := loadCart(c)
		if err != nil {
			return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, st.Totals())
	})

	// ADD item
	p.POST("/items", func(c echo.Context) error {
		req := new(addCartItemRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		if req.CourseID == "" {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "course_id is required"})
		}
		if req.Quantity == 0 {
			req.Quantity = 1
		}
		st, err := loadCart(c)
		if err != nil {
			return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
		}
		if err := st.AddItem(c.Request().Context(), req.CourseID, req.Quantity, req.AccessType, req.MaxSeats); err != nil {
			if errors.Is(err, content.ErrQuantityTooLow) {
				return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
			}
			return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, render(st))
	})

	// UPDATE quantity
	p.PUT("/items/:courseid", func(c echo.Context) error {
		req := new(updateCartItemRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		st, err := loadCart(c)
		if err != nil {
			return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
		}
		if err := st.UpdateQuantity(c.Request().Context(), c.Param("courseid"), req.Quantity); err != nil {
			if errors.Is(err, content.ErrQuantityTooLow) {
				return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
			}
			return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, render(st))
	})

	// REMOVE item (quantity-0 update upstream)
	p.DELETE("/items/:courseid", func(c echo.Context) error {
		st, err := loadCart(c)
		if err != nil {
			return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
		}
		if err := st.RemoveItem(c.Request().Context(), c.Param("courseid")); err != nil {
			return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, render(st))
	})
}

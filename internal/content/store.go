// Package content owns the client-side cart and navigation state. It is the
// explicit-store rendition of the front end's content context: one instance per
// session, constructed with its API client and token store, no ambient state.
package content

import (
	"context"
	"errors"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/aniketraut16/edulike-sub001/external/backendapi"
	"github.com/aniketraut16/edulike-sub001/internal/model"
)

// ErrQuantityTooLow is returned by UpdateQuantity for quantities below 1;
// removal goes through RemoveItem.
var ErrQuantityTooLow = errors.New("quantity must be at least 1")

// API is the slice of the backend the store depends on.
type API interface {
	GetDashboard(ctx context.Context) (*model.Dashboard, error)
	AddCartItem(ctx context.Context, req backendapi.AddCartItemRequest) error
	GetCartItems(ctx context.Context, cartID string) (*model.CartItemsResponse, error)
	UpdateCartItem(ctx context.Context, cartID, courseID string, qty int) error
}

// Store synchronizes a locally identified cart with the remote cart service and
// holds the navigation data fetched on bootstrap. All mutations follow
// mutate-then-refetch: the server stays the single source of truth, the store
// never applies a local diff. A failed mutation leaves prior state untouched.
type Store struct {
	mu     sync.Mutex
	api    API
	tokens TokenStore
	log    *zap.Logger

	userID string
	cartID string

	items []model.CartItem
	count int

	navCategories []model.CategoryCourses
	topCourses    []model.Course

	// pending holds stable operation keys (op:courseID) so distinct concurrent
	// operations don't collide in the view layer.
	pending map[string]struct{}
}

// NewStore builds a store for an anonymous session; call SetIdentity when the
// authentication signal changes.
func NewStore(api API, tokens TokenStore, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{
		api:     api,
		tokens:  tokens,
		log:     log,
		items:   []model.CartItem{},
		pending: make(map[string]struct{}),
	}
}

// Bootstrap performs the one-time mount fetches: the dashboard aggregate for
// navigation plus a cart refresh. Both are independent; a failure leaves the
// corresponding slice empty and is only logged, since this data is
// presentational and the user can re-trigger by reloading.
func (s *Store) Bootstrap(ctx context.Context) {
	dash, err := s.api.GetDashboard(ctx)
	if err != nil {
		s.log.Error("dashboard fetch failed", zap.Error(err))
	} else {
		s.mu.Lock()
		s.navCategories = dash.Categories
		s.topCourses = dash.TopCourses
		s.mu.Unlock()
	}

	if err := s.Refresh(ctx); err != nil {
		s.log.Error("cart refresh failed", zap.Error(err), zap.String("cart_id", s.CartID()))
	}
}

// SetIdentity reacts to the login/logout signal: it re-resolves the cart
// identifier and re-fetches cart state, exactly once per identity change. The
// anonymous token stays persisted so a later logout reattaches to it.
func (s *Store) SetIdentity(ctx context.Context, userID string) error {
	s.mu.Lock()
	if userID == s.userID {
		s.mu.Unlock()
		return nil
	}
	s.userID = userID
	s.cartID = ResolveCartID(userID, s.tokens)
	s.mu.Unlock()

	return s.Refresh(ctx)
}

// Refresh replaces the line items with the authoritative list from the cart
// service. On error the previous state is kept.
func (s *Store) Refresh(ctx context.Context) error {
	resp, err := s.api.GetCartItems(ctx, s.CartID())
	if err != nil {
		return err
	}
	count := resp.Count
	if count == 0 {
		count = len(resp.Items)
	}

	s.mu.Lock()
	s.items = resp.Items
	s.count = count
	s.mu.Unlock()
	return nil
}

// AddItem puts a course into the cart, then re-fetches.
func (s *Store) AddItem(ctx context.Context, courseID string, qty int, accessType string, maxSeats *int) error {
	if qty < 1 {
		return ErrQuantityTooLow
	}
	done := s.markPending("add:" + courseID)
	defer done()

	err := s.api.AddCartItem(ctx, backendapi.AddCartItemRequest{
		CartID:     s.CartID(),
		CourseID:   courseID,
		Quantity:   qty,
		AccessType: accessType,
		MaxSeats:   maxSeats,
	})
	if err != nil {
		return err
	}
	return s.Refresh(ctx)
}

// UpdateQuantity sets the exact quantity for a line item, then re-fetches.
// Quantities below 1 are rejected; use RemoveItem for removal.
func (s *Store) UpdateQuantity(ctx context.Context, courseID string, qty int) error {
	if qty < 1 {
		return ErrQuantityTooLow
	}
	done := s.markPending("update:" + courseID)
	defer done()

	if err := s.api.UpdateCartItem(ctx, s.CartID(), courseID, qty); err != nil {
		return err
	}
	return s.Refresh(ctx)
}

// RemoveItem drops a line item. The cart service has no delete verb; removal is
// a quantity-0 update.
func (s *Store) RemoveItem(ctx context.Context, courseID string) error {
	done := s.markPending("remove:" + courseID)
	defer done()

	if err := s.api.UpdateCartItem(ctx, s.CartID(), courseID, 0); err != nil {
		return err
	}
	return s.Refresh(ctx)
}

// CartID returns the resolved cart identifier, resolving it on first use so an
// authenticated session never mints an anonymous token it does not need.
func (s *Store) CartID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cartID == "" {
		s.cartID = ResolveCartID(s.userID, s.tokens)
	}
	return s.cartID
}

// Items returns a copy of the last fetched line items.
func (s *Store) Items() []model.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// Count returns the authoritative item count from the last fetch.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}

// Totals derives subtotal, discount, tax and total from the current items.
func (s *Store) Totals() model.CartTotals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ComputeTotals(s.items)
}

// NavCategories returns the navigation categories fetched on bootstrap.
func (s *Store) NavCategories() []model.CategoryCourses {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.CategoryCourses, len(s.navCategories))
	copy(out, s.navCategories)
	return out
}

// TopCourses returns the top courses fetched on bootstrap.
func (s *Store) TopCourses() []model.Course {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Course, len(s.topCourses))
	copy(out, s.topCourses)
	return out
}

// Pending returns the keys of in-flight operations, sorted.
func (s *Store) Pending() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.pending))
	for k := range s.pending {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func (s *Store) markPending(key string) func() {
	s.mu.Lock()
	s.pending[key] = struct{}{}
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.pending, key)
		s.mu.Unlock()
	}
}

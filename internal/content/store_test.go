package content

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aniketraut16/edulike-sub001/external/backendapi"
	"github.com/aniketraut16/edulike-sub001/internal/model"
)

// fakeAPI is an in-memory stand-in for the remote cart/dashboard service. It
// keys carts by cart id so identity switches are observable.
type fakeAPI struct {
	mu sync.Mutex

	carts map[string][]model.CartItem
	dash  *model.Dashboard

	dashErr   error
	updateErr error

	getCalls    int
	updateCalls int
	lastCartID  string
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{carts: make(map[string][]model.CartItem)}
}

func (f *fakeAPI) seed(cartID string, items ...model.CartItem) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.carts[cartID] = append([]model.CartItem{}, items...)
}

func (f *fakeAPI) GetDashboard(ctx context.Context) (*model.Dashboard, error) {
	if f.dashErr != nil {
		return nil, f.dashErr
	}
	if f.dash != nil {
		return f.dash, nil
	}
	return &model.Dashboard{Categories: []model.CategoryCourses{}, TopCourses: []model.Course{}}, nil
}

func (f *fakeAPI) AddCartItem(ctx context.Context, req backendapi.AddCartItemRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.carts[req.CartID] = append(f.carts[req.CartID], model.CartItem{
		CourseID:   req.CourseID,
		Quantity:   req.Quantity,
		AccessType: req.AccessType,
		MaxSeats:   req.MaxSeats,
	})
	return nil
}

func (f *fakeAPI) GetCartItems(ctx context.Context, cartID string) (*model.CartItemsResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getCalls++
	f.lastCartID = cartID
	items := append([]model.CartItem{}, f.carts[cartID]...)
	return &model.CartItemsResponse{Items: items, Count: len(items)}, nil
}

func (f *fakeAPI) UpdateCartItem(ctx context.Context, cartID, courseID string, qty int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updateCalls++
	if f.updateErr != nil {
		return f.updateErr
	}
	items := f.carts[cartID]
	out := items[:0]
	for _, it := range items {
		if it.CourseID == courseID {
			if qty == 0 {
				continue // quantity 0 removes the line
			}
			it.Quantity = qty
		}
		out = append(out, it)
	}
	f.carts[cartID] = out
	return nil
}

func newTestStore(t *testing.T, api *fakeAPI) (*Store, *MemoryTokenStore) {
	t.Helper()
	tokens := NewMemoryTokenStore()
	return NewStore(api, tokens, nil), tokens
}

func TestUpdateQuantityRejectsBelowOne(t *testing.T) {
	api := newFakeAPI()
	st, _ := newTestStore(t, api)
	api.seed(st.CartID(), model.CartItem{CourseID: "c1", Price: 10, Quantity: 1})
	require.NoError(t, st.Refresh(context.Background()))

	err := st.UpdateQuantity(context.Background(), "c1", 0)

	assert.ErrorIs(t, err, ErrQuantityTooLow)
	assert.Equal(t, 0, api.updateCalls, "rejected update must not reach the network")
	assert.Len(t, st.Items(), 1)
}

func TestRemoveItemIssuesQuantityZeroUpdate(t *testing.T) {
	api := newFakeAPI()
	st, _ := newTestStore(t, api)
	api.seed(st.CartID(),
		model.CartItem{CourseID: "c1", Price: 10, Quantity: 2},
		model.CartItem{CourseID: "c2", Price: 20, Quantity: 1},
	)
	require.NoError(t, st.Refresh(context.Background()))

	require.NoError(t, st.RemoveItem(context.Background(), "c1"))

	assert.Equal(t, 1, api.updateCalls)
	items := st.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "c2", items[0].CourseID)
	assert.Equal(t, 1, st.Count())
}

func TestMutationRefetchesAuthoritativeState(t *testing.T) {
	api := newFakeAPI()
	st, _ := newTestStore(t, api)
	api.seed(st.CartID(), model.CartItem{CourseID: "c1", Price: 10, Quantity: 1})
	require.NoError(t, st.Refresh(context.Background()))

	// server-side price change becomes visible only through the refetch
	api.mu.Lock()
	api.carts[st.CartID()][0].Price = 15
	api.mu.Unlock()

	require.NoError(t, st.UpdateQuantity(context.Background(), "c1", 3))

	items := st.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, 15.0, items[0].Price)
}

func TestFailedMutationLeavesStateUntouched(t *testing.T) {
	api := newFakeAPI()
	st, _ := newTestStore(t, api)
	api.seed(st.CartID(), model.CartItem{CourseID: "c1", Price: 10, Quantity: 2})
	require.NoError(t, st.Refresh(context.Background()))
	before := st.Items()

	api.updateErr = errors.New("cart service unavailable")
	err := st.UpdateQuantity(context.Background(), "c1", 5)

	assert.Error(t, err)
	assert.Equal(t, before, st.Items())
	assert.Equal(t, 1, st.Count())
}

func TestBootstrapEmptyDashboard(t *testing.T) {
	api := newFakeAPI()
	st, _ := newTestStore(t, api)

	st.Bootstrap(context.Background())

	assert.Empty(t, st.NavCategories())
	assert.Empty(t, st.TopCourses())
	assert.Empty(t, st.Items())
}

func TestBootstrapDashboardFailureStillRefreshesCart(t *testing.T) {
	api := newFakeAPI()
	api.dashErr = errors.New("dashboard unavailable")
	st, _ := newTestStore(t, api)
	api.seed(st.CartID(), model.CartItem{CourseID: "c1", Price: 10, Quantity: 1})

	st.Bootstrap(context.Background())

	assert.Empty(t, st.NavCategories())
	assert.Len(t, st.Items(), 1)
}

func TestSetIdentitySwitchesCartOnce(t *testing.T) {
	api := newFakeAPI()
	st, tokens := newTestStore(t, api)
	anonID := st.CartID()
	api.seed("cart_u1", model.CartItem{CourseID: "c9", Price: 99, Quantity: 1})
	require.NoError(t, st.Refresh(context.Background()))
	callsBefore := api.getCalls

	require.NoError(t, st.SetIdentity(context.Background(), "u1"))

	assert.Equal(t, "cart_u1", st.CartID())
	assert.Equal(t, callsBefore+1, api.getCalls, "identity switch triggers exactly one re-fetch")
	require.Len(t, st.Items(), 1)
	assert.Equal(t, "c9", st.Items()[0].CourseID)

	// anonymous token stays persisted
	persisted, ok := tokens.Get(AnonTokenKey)
	require.True(t, ok)
	assert.Equal(t, anonID, persisted)

	// same identity again is a no-op
	require.NoError(t, st.SetIdentity(context.Background(), "u1"))
	assert.Equal(t, callsBefore+1, api.getCalls)
}

func TestAddItemDefaultsAndRefetches(t *testing.T) {
	api := newFakeAPI()
	st, _ := newTestStore(t, api)

	require.NoError(t, st.AddItem(context.Background(), "c1", 2, model.AccessIndividual, nil))

	items := st.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Empty(t, st.Pending(), "no operation may stay pending after completion")
}

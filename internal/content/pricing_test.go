package content

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aniketraut16/edulike-sub001/internal/model"
)

func TestComputeTotals(t *testing.T) {
	items := []model.CartItem{
		{CourseID: "c1", Price: 100, Quantity: 2},
		{CourseID: "c2", Price: 50, Quantity: 1},
	}

	got := ComputeTotals(items)

	assert.Equal(t, 250.0, got.Subtotal)
	assert.Equal(t, 50.0, got.Discount)
	assert.Equal(t, 45.0, got.Tax)
	assert.Equal(t, 245.0, got.Total)
}

func TestComputeTotalsEmptyCart(t *testing.T) {
	got := ComputeTotals(nil)
	assert.Equal(t, model.CartTotals{}, got)
}

func TestComputeTotalsIsPure(t *testing.T) {
	items := []model.CartItem{{CourseID: "c1", Price: 33.5, Quantity: 3}}

	first := ComputeTotals(items)
	second := ComputeTotals(items)

	assert.Equal(t, first, second)
	assert.Equal(t, 33.5, items[0].Price, "input must not be mutated")
}

func TestComputeTotalsDiscountRounding(t *testing.T) {
	// 0.20 * 12.30 = 2.46 -> rounds to 2
	items := []model.CartItem{{CourseID: "c1", Price: 12.30, Quantity: 1}}

	got := ComputeTotals(items)

	assert.Equal(t, 2.0, got.Discount)
	assert.InDelta(t, 12.30-2.0+12.30*0.18, got.Total, 1e-9)
}

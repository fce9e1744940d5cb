package content

import (
	"math"

	"github.com/aniketraut16/edulike-sub001/internal/model"
)

// Promotional discount and tax rates. Fixed client-side for now; should move to
// backend pricing config once one exists.
const (
	promoDiscountRate = 0.20
	taxRate           = 0.18
)

// ComputeTotals derives cart totals from line items. Pure: recomputed on every
// call, never persisted. The discount is rounded to the nearest whole unit.
func ComputeTotals(items []model.CartItem) model.CartTotals {
	var subtotal float64
	for _, it := range items {
		subtotal += it.Price * float64(it.Quantity)
	}
	discount := math.Round(subtotal * promoDiscountRate)
	tax := subtotal * taxRate
	return model.CartTotals{
		Subtotal: subtotal,
		Discount: discount,
		Tax:      tax,
		Total:    subtotal - discount + tax,
	}
}

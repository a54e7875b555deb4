package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sparkbazaar/storefront-backend/internal/entity"
)

func item(id string, original, discounted int64, qty int) entity.CartItem {
	return entity.CartItem{
		ProductID: id,
		Quantity:  qty,
		Product: entity.Product{
			ID:              id,
			OriginalPrice:   original,
			DiscountedPrice: discounted,
		},
	}
}

func TestCalculateTotals_EmptyCart(t *testing.T) {
	totals := CalculateTotals(nil, "")
	assert.Equal(t, Totals{}, totals)
}

func TestCalculateTotals_SubtotalAndDiscount(t *testing.T) {
	items := []entity.CartItem{
		item("p1", 2000, 200, 2),
		item("p2", 500, 50, 3),
	}

	totals := CalculateTotals(items, "")

	assert.Equal(t, int64(550), totals.Subtotal) // 200*2 + 50*3
	assert.Equal(t, int64(4950), totals.Discount) // 1800*2 + 450*3
	assert.Equal(t, int64(0), totals.CouponDiscount)
	assert.Equal(t, totals.Subtotal, totals.Total)
	assert.Equal(t, totals.Discount, totals.Savings)
}

func TestCalculateTotals_CouponScenario(t *testing.T) {
	// One item: discounted 200, original 2000, quantity 2.
	items := []entity.CartItem{item("p1", 2000, 200, 2)}

	totals := CalculateTotals(items, "DEMO50")

	assert.Equal(t, int64(400), totals.Subtotal)
	assert.Equal(t, int64(3600), totals.Discount)
	assert.Equal(t, int64(200), totals.CouponDiscount)
	assert.Equal(t, int64(200), totals.Total)
	assert.Equal(t, int64(3800), totals.Savings)
}

func TestCalculateTotals_CouponCaseInsensitive(t *testing.T) {
	items := []entity.CartItem{item("p1", 100, 100, 1)}

	for _, code := range []string{"demo50", "Demo50", "DEMO50"} {
		totals := CalculateTotals(items, code)
		assert.Equal(t, int64(50), totals.CouponDiscount, "code %q", code)
	}
}

func TestCalculateTotals_InvalidCoupon(t *testing.T) {
	items := []entity.CartItem{item("p1", 100, 80, 1)}

	for _, code := range []string{"", "NOPE", "DEMO5", "DEMO500"} {
		totals := CalculateTotals(items, code)
		assert.Equal(t, int64(0), totals.CouponDiscount, "code %q", code)
		assert.Equal(t, totals.Subtotal, totals.Total, "code %q", code)
	}
}

func TestCalculateTotals_OddSubtotalRoundsHalfUp(t *testing.T) {
	items := []entity.CartItem{item("p1", 401, 401, 1)}

	totals := CalculateTotals(items, "DEMO50")

	assert.Equal(t, int64(201), totals.CouponDiscount)
	assert.Equal(t, int64(200), totals.Total)
	assert.GreaterOrEqual(t, totals.Total, int64(0))
}

func TestCalculateTotals_Idempotent(t *testing.T) {
	items := []entity.CartItem{
		item("p1", 2000, 200, 2),
		item("p2", 999, 99, 5),
	}

	first := CalculateTotals(items, "DEMO50")
	second := CalculateTotals(items, "DEMO50")

	assert.Equal(t, first, second)
}

func TestValidCoupon(t *testing.T) {
	assert.True(t, ValidCoupon("DEMO50"))
	assert.True(t, ValidCoupon("demo50"))
	assert.False(t, ValidCoupon(""))
	assert.False(t, ValidCoupon("SAVE10"))
}

func TestQualifiesForFreeShipping(t *testing.T) {
	assert.False(t, QualifiesForFreeShipping(998))
	assert.True(t, QualifiesForFreeShipping(999))
	assert.True(t, QualifiesForFreeShipping(10000))
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "₹0", FormatPrice(0))
	assert.Equal(t, "₹999", FormatPrice(999))
	assert.Equal(t, "₹1,234", FormatPrice(1234))
	assert.Equal(t, "₹1,23,456", FormatPrice(123456))
	assert.Equal(t, "₹12,34,567", FormatPrice(1234567))
	assert.Equal(t, "-₹1,234", FormatPrice(-1234))
}

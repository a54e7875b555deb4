// Package pricing computes cart totals. All prices are integer amounts in
// minor-unit-free rupees.
package pricing

import (
	"math"
	"strings"

	"github.com/sparkbazaar/storefront-backend/internal/entity"
)

const (
	// CouponCode is the single promotional code accepted at checkout.
	// Matching is a case-insensitive exact match.
	CouponCode = "DEMO50"

	// CouponRate is the fraction of the subtotal taken off when the
	// coupon applies.
	CouponRate = 0.5

	// FreeShippingThreshold is the subtotal at or above which shipping
	// is free.
	FreeShippingThreshold = 999
)

// Totals is the breakdown derived from a cart. Invariants: Total =
// Subtotal - CouponDiscount, and Savings = Discount + CouponDiscount.
type Totals struct {
	Subtotal       int64 `json:"subtotal"`
	Discount       int64 `json:"discount"`
	CouponDiscount int64 `json:"couponDiscount"`
	Total          int64 `json:"total"`
	Savings        int64 `json:"savings"`
}

// CalculateTotals derives the pricing breakdown for a cart. The per-item
// discount (original minus discounted price) always applies; a valid coupon
// then reduces the already-discounted subtotal, never the original price.
// An empty cart yields all zeros. An unknown coupon code is not an error
// here: it simply contributes no discount, and it is the caller's job to
// report it.
func CalculateTotals(items []entity.CartItem, couponCode string) Totals {
	var subtotal, discount int64
	for _, item := range items {
		qty := int64(item.Quantity)
		subtotal += item.Product.DiscountedPrice * qty
		discount += (item.Product.OriginalPrice - item.Product.DiscountedPrice) * qty
	}

	var couponDiscount int64
	if ValidCoupon(couponCode) {
		// Half-up rounding to the nearest whole rupee.
		couponDiscount = int64(math.Round(float64(subtotal) * CouponRate))
	}

	total := subtotal - couponDiscount

	return Totals{
		Subtotal:       subtotal,
		Discount:       discount,
		CouponDiscount: couponDiscount,
		Total:          total,
		Savings:        discount + couponDiscount,
	}
}

// ValidCoupon reports whether code matches the promotional coupon.
func ValidCoupon(code string) bool {
	return code != "" && strings.EqualFold(code, CouponCode)
}

// QualifiesForFreeShipping reports whether a subtotal earns free shipping.
func QualifiesForFreeShipping(subtotal int64) bool {
	return subtotal >= FreeShippingThreshold
}

// FormatPrice renders an amount as a rupee string with Indian-style digit
// grouping, e.g. 1234567 -> "₹12,34,567".
func FormatPrice(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	digits := []byte{}
	for d := amount; ; d /= 10 {
		digits = append(digits, byte('0'+d%10))
		if d < 10 {
			break
		}
	}

	// Indian grouping: rightmost group of three, then groups of two.
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString("₹")
	for i := len(digits) - 1; i >= 0; i-- {
		b.WriteByte(digits[i])
		if i >= 3 && (i-3)%2 == 0 {
			b.WriteByte(',')
		}
	}
	return b.String()
}

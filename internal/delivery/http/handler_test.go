package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparkbazaar/storefront-backend/internal/cart"
	"github.com/sparkbazaar/storefront-backend/internal/catalog"
	"github.com/sparkbazaar/storefront-backend/internal/checkout"
	"github.com/sparkbazaar/storefront-backend/internal/entity"
	"github.com/sparkbazaar/storefront-backend/internal/repository"
)

type memOrderRepo struct {
	saved []*entity.Order
}

func (m *memOrderRepo) Save(_ context.Context, order *entity.Order) error {
	m.saved = append(m.saved, order)
	return nil
}

func (m *memOrderRepo) Confirm(_ context.Context, _ string) error { return nil }

func (m *memOrderRepo) FindRecent(_ context.Context, limit int) ([]entity.Order, error) {
	var orders []entity.Order
	for i := len(m.saved) - 1; i >= 0 && len(orders) < limit; i-- {
		orders = append(orders, *m.saved[i])
	}
	return orders, nil
}

type memSlot struct {
	order *entity.Order
}

func (m *memSlot) Put(_ context.Context, order *entity.Order) error {
	m.order = order
	return nil
}

func (m *memSlot) Get(_ context.Context) (*entity.Order, error) {
	if m.order == nil {
		return nil, repository.ErrNoOrder
	}
	return m.order, nil
}

func newTestMux(t *testing.T) (*http.ServeMux, *cart.Store) {
	t.Helper()

	catalogStore := catalog.NewStore(catalog.SeedProducts())
	view := catalog.NewView(catalogStore, catalog.DefaultPageSize)
	cartStore := cart.NewStore()
	svc := checkout.NewService(cartStore, &memOrderRepo{}, &memSlot{}, nil)

	mux := http.NewServeMux()
	NewHandler(catalogStore, view, cartStore, svc).RegisterRoutes(mux)
	return mux, cartStore
}

func doJSON(t *testing.T, mux *http.ServeMux, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestGetProducts_DefaultPage(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := doJSON(t, mux, http.MethodGet, "/api/products", "")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[productsResponse](t, rec)
	assert.Equal(t, 14, resp.Total)
	assert.Len(t, resp.Products, 12)
	assert.True(t, resp.HasMore)
}

func TestGetProducts_LoadMoreThenFilterResets(t *testing.T) {
	mux, _ := newTestMux(t)

	doJSON(t, mux, http.MethodGet, "/api/products", "")
	rec := doJSON(t, mux, http.MethodPost, "/api/products/more", "")
	resp := decode[productsResponse](t, rec)
	assert.Len(t, resp.Products, 14)
	assert.False(t, resp.HasMore)

	// New criteria reset the cursor.
	rec = doJSON(t, mux, http.MethodGet, "/api/products?category=Sparklers", "")
	resp = decode[productsResponse](t, rec)
	assert.Equal(t, 3, resp.Total)
	assert.Len(t, resp.Products, 3)
	for _, p := range resp.Products {
		assert.Equal(t, "Sparklers", p.Category)
	}
}

func TestGetProducts_Search(t *testing.T) {
	mux, _ := newTestMux(t)

	// "rocket" hits the two rockets by name and the premium gift box
	// by description, in catalog order.
	rec := doJSON(t, mux, http.MethodGet, "/api/products?search=rocket", "")
	resp := decode[productsResponse](t, rec)
	require.Len(t, resp.Products, 3)
	assert.Equal(t, "fw-011", resp.Products[0].ID)
	assert.Equal(t, "fw-012", resp.Products[1].ID)
	assert.Equal(t, "fw-014", resp.Products[2].ID)
}

func TestGetFeatured(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := doJSON(t, mux, http.MethodGet, "/api/products/featured", "")
	require.Equal(t, http.StatusOK, rec.Code)

	featured := decode[[]entity.Product](t, rec)
	require.Len(t, featured, 4)
	assert.Equal(t, "fw-001", featured[0].ID)
	for _, p := range featured {
		assert.True(t, p.Featured, "product %s", p.ID)
	}
}

func TestGetCategories(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := doJSON(t, mux, http.MethodGet, "/api/categories", "")
	categories := decode[[]string](t, rec)
	assert.Equal(t, []string{"Sparklers", "Aerial Shots", "Ground Spinners", "Flower Pots", "Rockets", "Gift Boxes"}, categories)
}

func TestCartFlow(t *testing.T) {
	mux, _ := newTestMux(t)

	// Add twice: one entry, summed quantity.
	rec := doJSON(t, mux, http.MethodPost, "/api/cart/items", `{"productId":"fw-001","quantity":2}`)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(t, mux, http.MethodPost, "/api/cart/items", `{"productId":"fw-001"}`)
	resp := decode[cartResponse](t, rec)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 3, resp.TotalItems)
	assert.Equal(t, int64(150), resp.Totals.Subtotal) // 50 * 3

	// Update quantity.
	rec = doJSON(t, mux, http.MethodPut, "/api/cart/items/fw-001", `{"quantity":1}`)
	resp = decode[cartResponse](t, rec)
	assert.Equal(t, 1, resp.TotalItems)

	// Quantity below 1 is rejected.
	rec = doJSON(t, mux, http.MethodPut, "/api/cart/items/fw-001", `{"quantity":0}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Remove, then clear on an already empty cart is still fine.
	rec = doJSON(t, mux, http.MethodDelete, "/api/cart/items/fw-001", "")
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(t, mux, http.MethodDelete, "/api/cart", "")
	resp = decode[cartResponse](t, rec)
	assert.Empty(t, resp.Items)
}

func TestAddCartItem_UnknownProduct(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := doJSON(t, mux, http.MethodPost, "/api/cart/items", `{"productId":"nope"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetCart_CouponFlag(t *testing.T) {
	mux, cartStore := newTestMux(t)
	require.NoError(t, cartStore.Add(catalog.SeedProducts()[0], 2))

	rec := doJSON(t, mux, http.MethodGet, "/api/cart?coupon=demo50", "")
	resp := decode[cartResponse](t, rec)
	assert.True(t, resp.CouponValid)
	assert.Equal(t, int64(50), resp.Totals.CouponDiscount) // half of 100

	rec = doJSON(t, mux, http.MethodGet, "/api/cart?coupon=WRONG", "")
	resp = decode[cartResponse](t, rec)
	assert.True(t, resp.CouponInvalid)
	assert.Equal(t, int64(0), resp.Totals.CouponDiscount)
	assert.Equal(t, resp.Totals.Subtotal, resp.Totals.Total)
}

const validShipping = `{
	"name": "Asha Rao",
	"email": "asha@example.com",
	"phone": "9876543210",
	"address": "14 MG Road, Apartment 3B",
	"city": "Bengaluru",
	"zipCode": "560001"
}`

func TestCheckout_Success(t *testing.T) {
	mux, cartStore := newTestMux(t)
	require.NoError(t, cartStore.Add(catalog.SeedProducts()[0], 2))

	rec := doJSON(t, mux, http.MethodPost, "/api/checkout", validShipping)
	require.Equal(t, http.StatusCreated, rec.Code)

	order := decode[entity.Order](t, rec)
	assert.True(t, strings.HasPrefix(order.ID, "ORD-"))
	assert.Equal(t, int64(100), order.Total)
	assert.Equal(t, "placed", order.Status)
	assert.Equal(t, 0, cartStore.Len())

	// Confirmation page reads the slot.
	rec = doJSON(t, mux, http.MethodGet, "/api/orders/last", "")
	require.Equal(t, http.StatusOK, rec.Code)
	last := decode[entity.Order](t, rec)
	assert.Equal(t, order.ID, last.ID)
}

func TestCheckout_EmptyCart(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := doJSON(t, mux, http.MethodPost, "/api/checkout", validShipping)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckout_ValidationErrors(t *testing.T) {
	mux, cartStore := newTestMux(t)
	require.NoError(t, cartStore.Add(catalog.SeedProducts()[0], 1))

	rec := doJSON(t, mux, http.MethodPost, "/api/checkout",
		`{"name":"A","email":"not-an-email","phone":"12345","address":"short","city":"","zipCode":"1"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	for _, field := range []string{"name", "email", "phone", "address", "city", "zipCode"} {
		assert.Contains(t, resp.Errors, field)
	}

	// Nothing was placed.
	assert.Equal(t, 1, cartStore.TotalItemCount())
}

func TestGetLastOrder_Empty(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := doJSON(t, mux, http.MethodGet, "/api/orders/last", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

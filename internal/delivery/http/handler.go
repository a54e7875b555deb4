package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/mail"
	"strings"
	"unicode"

	"github.com/sparkbazaar/storefront-backend/internal/cart"
	"github.com/sparkbazaar/storefront-backend/internal/catalog"
	"github.com/sparkbazaar/storefront-backend/internal/checkout"
	"github.com/sparkbazaar/storefront-backend/internal/entity"
	"github.com/sparkbazaar/storefront-backend/internal/pricing"
	"github.com/sparkbazaar/storefront-backend/internal/repository"
)

// Handler handles HTTP requests for the storefront.
type Handler struct {
	catalog     *catalog.Store
	view        *catalog.View
	cart        *cart.Store
	checkoutSvc *checkout.Service
}

func NewHandler(catalogStore *catalog.Store, view *catalog.View, cartStore *cart.Store, checkoutSvc *checkout.Service) *Handler {
	return &Handler{
		catalog:     catalogStore,
		view:        view,
		cart:        cartStore,
		checkoutSvc: checkoutSvc,
	}
}

func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/products", h.handleGetProducts)
	mux.HandleFunc("POST /api/products/more", h.handleLoadMore)
	mux.HandleFunc("GET /api/products/featured", h.handleGetFeatured)
	mux.HandleFunc("GET /api/products/{id}", h.handleGetProduct)
	mux.HandleFunc("GET /api/categories", h.handleGetCategories)

	mux.HandleFunc("GET /api/cart", h.handleGetCart)
	mux.HandleFunc("POST /api/cart/items", h.handleAddCartItem)
	mux.HandleFunc("PUT /api/cart/items/{id}", h.handleSetCartQuantity)
	mux.HandleFunc("DELETE /api/cart/items/{id}", h.handleRemoveCartItem)
	mux.HandleFunc("DELETE /api/cart", h.handleClearCart)

	mux.HandleFunc("POST /api/checkout", h.handleCheckout)
	mux.HandleFunc("GET /api/orders/last", h.handleGetLastOrder)
	mux.HandleFunc("GET /api/orders", h.handleGetOrders)
}

// productsResponse is the visible window of the current browse view.
type productsResponse struct {
	Products []entity.Product `json:"products"`
	Total    int              `json:"total"`
	HasMore  bool             `json:"hasMore"`
}

func (h *Handler) handleGetProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	h.view.SetCriteria(query.Get("search"), query["category"])

	visible, total, hasMore := h.view.Page()
	writeJSON(w, http.StatusOK, productsResponse{
		Products: visible,
		Total:    total,
		HasMore:  hasMore,
	})
}

func (h *Handler) handleLoadMore(w http.ResponseWriter, r *http.Request) {
	h.view.LoadMore()

	visible, total, hasMore := h.view.Page()
	writeJSON(w, http.StatusOK, productsResponse{
		Products: visible,
		Total:    total,
		HasMore:  hasMore,
	})
}

// handleGetFeatured returns the products highlighted on the home page.
func (h *Handler) handleGetFeatured(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.Featured())
}

func (h *Handler) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.catalog.Get(r.PathValue("id"))
	if errors.Is(err, catalog.ErrNotFound) {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}
	writeJSON(w, http.StatusOK, product)
}

func (h *Handler) handleGetCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Categories(h.catalog.Products()))
}

// cartResponse is the cart with its derived totals. Totals are
// recomputed on every read; an invalid coupon flips CouponValid without
// affecting them.
type cartResponse struct {
	Items         []entity.CartItem `json:"items"`
	TotalItems    int               `json:"totalItems"`
	Totals        pricing.Totals    `json:"totals"`
	TotalDisplay  string            `json:"totalDisplay"`
	CouponValid   bool              `json:"couponValid,omitempty"`
	CouponInvalid bool              `json:"couponInvalid,omitempty"`
	FreeShipping  bool              `json:"freeShipping"`
}

func (h *Handler) handleGetCart(w http.ResponseWriter, r *http.Request) {
	coupon := r.URL.Query().Get("coupon")
	writeJSON(w, http.StatusOK, h.cartSnapshot(coupon))
}

func (h *Handler) cartSnapshot(coupon string) cartResponse {
	items := h.cart.Items()
	totals := pricing.CalculateTotals(items, coupon)
	return cartResponse{
		Items:         items,
		TotalItems:    h.cart.TotalItemCount(),
		Totals:        totals,
		TotalDisplay:  pricing.FormatPrice(totals.Total),
		CouponValid:   coupon != "" && pricing.ValidCoupon(coupon),
		CouponInvalid: coupon != "" && !pricing.ValidCoupon(coupon),
		FreeShipping:  pricing.QualifiesForFreeShipping(totals.Subtotal),
	}
}

type addCartItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

func (h *Handler) handleAddCartItem(w http.ResponseWriter, r *http.Request) {
	var req addCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	product, err := h.catalog.Get(req.ProductID)
	if errors.Is(err, catalog.ErrNotFound) {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}

	if err := h.cart.Add(product, req.Quantity); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, h.cartSnapshot(""))
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *Handler) handleSetCartQuantity(w http.ResponseWriter, r *http.Request) {
	var req setQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.cart.SetQuantity(r.PathValue("id"), req.Quantity)
	switch {
	case errors.Is(err, cart.ErrInvalidQuantity):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, cart.ErrNotFound):
		writeError(w, http.StatusNotFound, "item not in cart")
		return
	}
	writeJSON(w, http.StatusOK, h.cartSnapshot(""))
}

func (h *Handler) handleRemoveCartItem(w http.ResponseWriter, r *http.Request) {
	if err := h.cart.Remove(r.PathValue("id")); errors.Is(err, cart.ErrNotFound) {
		writeError(w, http.StatusNotFound, "item not in cart")
		return
	}
	writeJSON(w, http.StatusOK, h.cartSnapshot(""))
}

func (h *Handler) handleClearCart(w http.ResponseWriter, r *http.Request) {
	h.cart.Clear()
	writeJSON(w, http.StatusOK, h.cartSnapshot(""))
}

type checkoutRequest struct {
	entity.ShippingDetails
	CouponCode string `json:"couponCode"`
}

func (h *Handler) handleCheckout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if fieldErrors := validateShipping(req.ShippingDetails); len(fieldErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, map[string]any{"errors": fieldErrors})
		return
	}

	order, err := h.checkoutSvc.PlaceOrder(r.Context(), req.ShippingDetails, req.CouponCode)
	if errors.Is(err, checkout.ErrEmptyCart) {
		writeError(w, http.StatusBadRequest, "cart is empty")
		return
	}
	if err != nil {
		slog.Error("Failed to place order", "err", err)
		writeError(w, http.StatusInternalServerError, "failed to place order")
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) handleGetLastOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.checkoutSvc.LastOrder(r.Context())
	if errors.Is(err, repository.ErrNoOrder) {
		// Empty/fallback view, not an exception.
		writeJSON(w, http.StatusNotFound, map[string]any{"order": nil})
		return
	}
	if err != nil {
		slog.Error("Failed to load last order", "err", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) handleGetOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.checkoutSvc.RecentOrders(r.Context(), 50)
	if err != nil {
		slog.Error("Failed to get orders", "err", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

// validateShipping mirrors the storefront's checkout form rules.
func validateShipping(s entity.ShippingDetails) map[string]string {
	errs := make(map[string]string)
	if len(strings.TrimSpace(s.Name)) < 2 {
		errs["name"] = "Name must be at least 2 characters"
	}
	if _, err := mail.ParseAddress(s.Email); err != nil {
		errs["email"] = "Invalid email address"
	}
	if digitCount(s.Phone) < 10 {
		errs["phone"] = "Phone number must be at least 10 digits"
	}
	if len(strings.TrimSpace(s.Address)) < 10 {
		errs["address"] = "Address must be at least 10 characters"
	}
	if len(strings.TrimSpace(s.City)) < 2 {
		errs["city"] = "City is required"
	}
	if len(strings.TrimSpace(s.ZipCode)) < 5 {
		errs["zipCode"] = "ZIP code is required"
	}
	return errs
}

func digitCount(s string) int {
	var n int
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// EnableCORS is a middleware to allow the storefront frontend to connect.
func EnableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

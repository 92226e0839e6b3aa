package httphandler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/nvoronin/storefront/internal/core/domain"
	"github.com/nvoronin/storefront/internal/core/port"
)

// GET  /v1/products?search=&category= (200 OK)
// GET  /v1/products/{id} (200 OK, 404 Not found)
// GET  /v1/categories (200 OK)
// POST /v1/catalog/refresh (204 No content, 502 Bad gateway)

type CatalogHandler struct {
	browser port.CatalogBrowser
}

func RegisterCatalog(mux *http.ServeMux, browser port.CatalogBrowser) {
	h := CatalogHandler{browser}
	mux.HandleFunc("GET /v1/products", h.GetProducts)
	mux.HandleFunc("GET /v1/products/{id}", h.GetProduct)
	mux.HandleFunc("GET /v1/categories", h.GetCategories)
	mux.HandleFunc("POST /v1/catalog/refresh", h.PostRefresh)
}

func (h CatalogHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	criteria := domain.FilterCriteria{
		SearchTerm: r.URL.Query().Get("search"),
		Category:   r.URL.Query().Get("category"),
	}

	ps := h.browser.Search(criteria)
	writeJSON(w, http.StatusOK, ProductList{
		Products: toProducts(ps),
		Total:    len(ps),
	})
}

func (h CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	p, ok := h.browser.Product(id)
	if !ok {
		http.Error(w, domain.ErrProductNotFound.Error(), http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, toProduct(p))
}

func (h CatalogHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	cs := h.browser.Categories()
	categories := make([]Category, 0, len(cs))
	for _, c := range cs {
		categories = append(categories, Category{Slug: c.Slug, Label: c.Label})
	}
	writeJSON(w, http.StatusOK, categories)
}

func (h CatalogHandler) PostRefresh(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.PostRefresh"
	log := slog.With("op", op)

	if err := h.browser.Refresh(r.Context()); err != nil {
		http.Error(w, "catalog unavailable", http.StatusBadGateway)
		log.Error("failed to refresh catalog", "err", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GET    /v1/cart (200 OK)
// POST   /v1/cart/items JSON {"product_id"} (201 Created, 404 Not found, 409 Conflict)
// PATCH  /v1/cart/items/{id} JSON {"quantity"} (204 No content, 404 Not found, 422 Unprocessable)
// DELETE /v1/cart/items/{id} (204 No content)
// DELETE /v1/cart (204 No content)

type CartHandler struct {
	cart    port.CartKeeper
	browser port.CatalogBrowser
}

func RegisterCart(
	mux *http.ServeMux, cart port.CartKeeper, browser port.CatalogBrowser,
) {
	h := CartHandler{cart, browser}
	mux.HandleFunc("GET /v1/cart", h.GetCart)
	mux.HandleFunc("POST /v1/cart/items", h.PostItem)
	mux.HandleFunc("PATCH /v1/cart/items/{id}", h.PatchItem)
	mux.HandleFunc("DELETE /v1/cart/items/{id}", h.DeleteItem)
	mux.HandleFunc("DELETE /v1/cart", h.DeleteCart)
}

func (h CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.cartView())
}

func (h CartHandler) PostItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.PostItem"
	log := slog.With("op", op)

	var body AddCartItem
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	p, ok := h.browser.Product(body.ProductID)
	if !ok {
		http.Error(w, domain.ErrProductNotFound.Error(), http.StatusNotFound)
		return
	}

	if !h.cart.Add(p) {
		http.Error(w, "product already in cart", http.StatusConflict)
		return
	}

	writeJSON(w, http.StatusCreated, h.cartView())
	log.Info("added to cart", "productID", p.ID)
}

func (h CartHandler) PatchItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.PatchItem"
	log := slog.With("op", op)

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	var body UpdateCartItem
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	// Advisory guard only: the store rejects quantities below 1 on its own.
	if body.Quantity < 1 {
		http.Error(w, "quantity must be at least 1", http.StatusUnprocessableEntity)
		return
	}

	if !h.inCart(id) {
		http.Error(w, "not in cart", http.StatusNotFound)
		return
	}

	h.cart.UpdateQuantity(id, body.Quantity)
	w.WriteHeader(http.StatusNoContent)
}

func (h CartHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	h.cart.Remove(id)
	w.WriteHeader(http.StatusNoContent)
}

func (h CartHandler) DeleteCart(w http.ResponseWriter, r *http.Request) {
	h.cart.Clear()
	w.WriteHeader(http.StatusNoContent)
}

func (h CartHandler) inCart(id int64) bool {
	for _, it := range h.cart.Items() {
		if it.ID == id {
			return true
		}
	}
	return false
}

func (h CartHandler) cartView() Cart {
	items := h.cart.Items()
	summary := h.cart.Summary()

	view := Cart{
		Items:      make([]CartItem, 0, len(items)),
		TotalItems: summary.TotalItems,
		TotalPrice: summary.TotalPrice.StringFixed(2),
	}
	for _, it := range items {
		view.Items = append(view.Items, CartItem{
			ID:       it.ID,
			Title:    it.Title,
			Price:    it.Price.String(),
			Image:    it.Image,
			Category: it.Category,
			Quantity: it.Quantity,
		})
	}
	return view
}

// POST /v1/checkout (200 OK, 409 Conflict)

// CheckoutHandler is a stub for the external checkout flow: it reports
// what would be ordered and mutates nothing.
type CheckoutHandler struct {
	cart port.CartKeeper
}

func RegisterCheckout(mux *http.ServeMux, cart port.CartKeeper) {
	h := CheckoutHandler{cart}
	mux.HandleFunc("POST /v1/checkout", h.PostCheckout)
}

func (h CheckoutHandler) PostCheckout(w http.ResponseWriter, r *http.Request) {
	const op = "CheckoutHandler.PostCheckout"
	log := slog.With("op", op)

	summary := h.cart.Summary()
	if summary.TotalItems == 0 {
		http.Error(w, domain.ErrEmptyCart.Error(), http.StatusConflict)
		return
	}

	order := Order{
		OrderID:    uuid.NewString(),
		TotalItems: summary.TotalItems,
		TotalPrice: summary.TotalPrice.StringFixed(2),
	}
	writeJSON(w, http.StatusOK, order)
	log.Info("checkout requested",
		"orderID", order.OrderID, "totalPrice", order.TotalPrice)
}

func toProducts(ps []domain.Product) []Product {
	view := make([]Product, 0, len(ps))
	for _, p := range ps {
		view = append(view, toProduct(p))
	}
	return view
}

func toProduct(p domain.Product) Product {
	v := Product{
		ID:          p.ID,
		Title:       p.Title,
		Price:       p.Price.String(),
		Image:       p.Image,
		Category:    p.Category,
		Description: p.Description,
		Rating:      Rating{Rate: p.Rating.Rate, Count: p.Rating.Count},
		Stock:       p.Stock,
		Brand:       p.Brand,
	}
	if !p.Discount.IsZero() {
		v.Discount = p.Discount.String()
	}
	return v
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write response body", "err", err)
	}
}

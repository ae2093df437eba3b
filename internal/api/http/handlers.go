package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"buntudelice/internal/auth"
	"buntudelice/internal/domain"
	"buntudelice/internal/service"
)

type Handler struct {
	Restaurants     service.RestaurantServiceInterface
	Menu            service.MenuServiceInterface
	Cart            service.CartServiceInterface
	Orders          service.OrderServiceInterface
	Payments        service.PaymentServiceInterface
	Recommendations service.RecommendationServiceInterface
	Users           service.UserRepository
	Sessions        *auth.Manager
}

func NewHandler(
	restaurants service.RestaurantServiceInterface,
	menu service.MenuServiceInterface,
	cart service.CartServiceInterface,
	orders service.OrderServiceInterface,
	payments service.PaymentServiceInterface,
	recommendations service.RecommendationServiceInterface,
	users service.UserRepository,
	sessions *auth.Manager,
) *Handler {
	return &Handler{
		Restaurants:     restaurants,
		Menu:            menu,
		Cart:            cart,
		Orders:          orders,
		Payments:        payments,
		Recommendations: recommendations,
		Users:           users,
		Sessions:        sessions,
	}
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"service":   "marketplace",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) listRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.Restaurants.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, restaurants)
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["restaurantId"])
	if err != nil {
		http.Error(w, "invalid restaurant id", http.StatusBadRequest)
		return
	}
	restaurant, err := h.Restaurants.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, restaurant)
}

// getMenu returns the normalized items plus the derived category tabs.
// ?category= narrows to an exact match; "all" and absent mean everything.
func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["restaurantId"])
	if err != nil {
		http.Error(w, "invalid restaurant id", http.StatusBadRequest)
		return
	}
	items, err := h.Menu.List(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	category := r.URL.Query().Get("category")
	if category == "" {
		category = "all"
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"categories": domain.Categories(items),
		"items":      domain.FilterByCategory(items, category),
	})
}

func (h *Handler) getRecommendations(w http.ResponseWriter, r *http.Request) {
	limit := domain.DefaultRecommendTop
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	picks, err := h.Recommendations.TopPicks(r.Context(), limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, picks)
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.FromContext(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	lines, total := h.Cart.Snapshot(claims.UserID)
	writeJSON(w, http.StatusOK, map[string]any{"items": lines, "total": total})
}

func (h *Handler) addToCart(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.FromContext(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	var item domain.CartItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "invalid cart item: "+err.Error(), http.StatusBadRequest)
		return
	}
	if item.MenuItemID == uuid.Nil {
		http.Error(w, "menu_item_id is required", http.StatusBadRequest)
		return
	}
	if item.Quantity == 0 {
		item.Quantity = 1
	}
	h.Cart.Add(claims.UserID, item)
	lines, total := h.Cart.Snapshot(claims.UserID)
	writeJSON(w, http.StatusOK, map[string]any{"items": lines, "total": total})
}

func (h *Handler) setCartQuantity(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.FromContext(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	var req struct {
		MenuItemID uuid.UUID `json:"menu_item_id"`
		Quantity   int       `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid payload: "+err.Error(), http.StatusBadRequest)
		return
	}
	h.Cart.SetQuantity(claims.UserID, req.MenuItemID, req.Quantity)
	lines, total := h.Cart.Snapshot(claims.UserID)
	writeJSON(w, http.StatusOK, map[string]any{"items": lines, "total": total})
}

func (h *Handler) removeFromCart(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.FromContext(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	id, err := uuid.Parse(mux.Vars(r)["menuItemId"])
	if err != nil {
		http.Error(w, "invalid menu item id", http.StatusBadRequest)
		return
	}
	h.Cart.Remove(claims.UserID, id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.FromContext(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	var req service.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid payload: "+err.Error(), http.StatusBadRequest)
		return
	}
	order, err := h.Orders.Checkout(r.Context(), claims.UserID, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.FromContext(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	orders, err := h.Orders.ListByUser(r.Context(), claims.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.FromContext(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	id, err := uuid.Parse(mux.Vars(r)["orderId"])
	if err != nil {
		http.Error(w, "invalid order id", http.StatusBadRequest)
		return
	}
	order, err := h.Orders.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if order.UserID != claims.UserID && claims.Role != domain.RoleAdmin {
		http.Error(w, "order not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.FromContext(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	id, err := uuid.Parse(mux.Vars(r)["orderId"])
	if err != nil {
		http.Error(w, "invalid order id", http.StatusBadRequest)
		return
	}
	var req service.StatusUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid payload: "+err.Error(), http.StatusBadRequest)
		return
	}
	existing, err := h.Orders.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if existing.UserID != claims.UserID && claims.Role != domain.RoleAdmin {
		http.Error(w, "order not found", http.StatusNotFound)
		return
	}
	order, err := h.Orders.UpdateStatus(r.Context(), id, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.FromContext(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	id, err := uuid.Parse(mux.Vars(r)["orderId"])
	if err != nil {
		http.Error(w, "invalid order id", http.StatusBadRequest)
		return
	}
	existing, err := h.Orders.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if existing.UserID != claims.UserID && claims.Role != domain.RoleAdmin {
		http.Error(w, "order not found", http.StatusNotFound)
		return
	}
	qr, err := h.Orders.QRCode(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if len(qr) == 0 {
		http.Error(w, "QR code not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qr)
}

func (h *Handler) initiatePayment(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.FromContext(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	var req service.PaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid payload: "+err.Error(), http.StatusBadRequest)
		return
	}
	req.UserID = claims.UserID
	payment, err := h.Payments.Initiate(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, payment)
}

func (h *Handler) settlePayment(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["paymentId"])
	if err != nil {
		http.Error(w, "invalid payment id", http.StatusBadRequest)
		return
	}
	var req struct {
		Status domain.PaymentStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid payload: "+err.Error(), http.StatusBadRequest)
		return
	}
	payment, err := h.Payments.Settle(r.Context(), id, req.Status)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, payment)
}

func (h *Handler) getWallet(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.FromContext(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	wallet, err := h.Payments.Wallet(r.Context(), claims.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, wallet)
}

func (h *Handler) getPaymentMethods(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, []map[string]string{
		{"id": "mobile_mtn", "operator": string(domain.OperatorMTN), "label": "MTN Mobile Money"},
		{"id": "mobile_airtel", "operator": string(domain.OperatorAirtel), "label": "Airtel Money"},
	})
}

func (h *Handler) adminDashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Orders.AdminStats(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeServiceError(w http.ResponseWriter, err error) {
	var vErr *service.ValidationError
	switch {
	case errors.As(err, &vErr):
		http.Error(w, vErr.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrEmptyCart):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrRestaurantNotFound),
		errors.Is(err, service.ErrOrderNotFound),
		errors.Is(err, service.ErrPaymentNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrPaymentSettled),
		errors.Is(err, service.ErrInvalidTransition):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		logrus.WithError(err).Error("request failed")
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

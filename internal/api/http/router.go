package httpapi

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"buntudelice/internal/auth"
	"buntudelice/internal/domain"
)

func NewRouter(handler *Handler, sessions *auth.Manager) http.Handler {
	r := mux.NewRouter()
	handler.RegisterRoutes(r, sessions)
	return cors.Default().Handler(r)
}

func (h *Handler) RegisterRoutes(r *mux.Router, sessions *auth.Manager) {
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	})

	r.HandleFunc("/health", h.healthCheck).Methods("GET")
	r.HandleFunc("/", h.home).Methods("GET")
	r.HandleFunc("/api/home", h.home).Methods("GET")
	r.HandleFunc("/api/order-demo", h.orderDemo).Methods("GET")

	r.HandleFunc("/api/auth/register", h.register).Methods("POST")
	r.HandleFunc("/api/auth/login", h.login).Methods("POST")
	r.HandleFunc("/api/auth/refresh", h.refresh).Methods("POST")

	r.HandleFunc("/api/restaurants", h.listRestaurants).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}", h.getRestaurant).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/menu", h.getMenu).Methods("GET")
	r.HandleFunc("/api/recommendations", h.getRecommendations).Methods("GET")

	r.HandleFunc("/api/taxi", h.vertical("taxi")).Methods("GET")
	r.HandleFunc("/api/taxi/rides/{rideId}", h.taxiRide).Methods("GET")
	r.HandleFunc("/api/covoiturage", h.vertical("covoiturage")).Methods("GET")
	r.HandleFunc("/api/explorer", h.vertical("explorer")).Methods("GET")

	// session-gated surface
	gated := r.PathPrefix("/api").Subrouter()
	gated.Use(sessions.Middleware)

	gated.HandleFunc("/cart", h.getCart).Methods("GET")
	gated.HandleFunc("/cart", h.addToCart).Methods("POST")
	gated.HandleFunc("/cart", h.setCartQuantity).Methods("PATCH")
	gated.HandleFunc("/cart/{menuItemId}", h.removeFromCart).Methods("DELETE")

	gated.HandleFunc("/orders", h.checkout).Methods("POST")
	gated.HandleFunc("/orders", h.listOrders).Methods("GET")
	gated.HandleFunc("/orders/{orderId}", h.getOrder).Methods("GET")
	gated.HandleFunc("/orders/{orderId}/status", h.updateOrderStatus).Methods("PATCH")
	gated.HandleFunc("/orders/{orderId}/qrcode", h.getOrderQRCode).Methods("GET")

	gated.HandleFunc("/payments", h.initiatePayment).Methods("POST")
	gated.HandleFunc("/payments/{paymentId}/settle", h.settlePayment).Methods("POST")

	gated.HandleFunc("/wallet", h.getWallet).Methods("GET")
	gated.HandleFunc("/wallet/payment-methods", h.getPaymentMethods).Methods("GET")
	gated.HandleFunc("/messages", h.vertical("messages")).Methods("GET")

	// admin-gated surface
	admin := r.PathPrefix("/api/admin").Subrouter()
	admin.Use(sessions.Middleware, auth.RequireRole(domain.RoleAdmin))
	admin.HandleFunc("", h.adminDashboard).Methods("GET")
	admin.HandleFunc("/", h.adminDashboard).Methods("GET")

	// Unknown non-API paths go home. API paths are excluded so a wrong
	// method on a known route surfaces as 405 and an unknown route as 404
	// instead of a redirect.
	r.MatcherFunc(func(req *http.Request, _ *mux.RouteMatch) bool {
		return !strings.HasPrefix(req.URL.Path, "/api/")
	}).HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.WithField("path", r.URL.Path).Debug("redirecting unknown path")
		http.Redirect(w, r, "/", http.StatusTemporaryRedirect)
	})
}

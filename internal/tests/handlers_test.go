package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "buntudelice/internal/api/http"
	"buntudelice/internal/auth"
	"buntudelice/internal/domain"
	"buntudelice/internal/mocks"
	"buntudelice/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type handlerFixture struct {
	restaurants     *mocks.RestaurantServiceInterface
	menu            *mocks.MenuServiceInterface
	cart            *service.CartStore
	orders          *mocks.OrderServiceInterface
	payments        *mocks.PaymentServiceInterface
	recommendations *mocks.RecommendationServiceInterface
	users           *mocks.UserRepository
	sessions        *auth.Manager
	server          http.Handler
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	f := &handlerFixture{
		restaurants:     mocks.NewRestaurantServiceInterface(t),
		menu:            mocks.NewMenuServiceInterface(t),
		cart:            service.NewCartStore(),
		orders:          mocks.NewOrderServiceInterface(t),
		payments:        mocks.NewPaymentServiceInterface(t),
		recommendations: mocks.NewRecommendationServiceInterface(t),
		users:           mocks.NewUserRepository(t),
		sessions:        auth.NewManager([]byte("test-secret")),
	}
	handler := httpapi.NewHandler(
		f.restaurants, f.menu, f.cart, f.orders, f.payments,
		f.recommendations, f.users, f.sessions,
	)
	f.server = httpapi.NewRouter(handler, f.sessions)
	return f
}

func (f *handlerFixture) token(t *testing.T, userID uuid.UUID, role domain.Role) string {
	access, err := f.sessions.GenerateAccessToken(userID, role)
	assert.NoError(t, err)
	return access
}

func (f *handlerFixture) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	recorder := httptest.NewRecorder()
	f.server.ServeHTTP(recorder, req)
	return recorder
}

func TestHealthCheck(t *testing.T) {
	f := newHandlerFixture(t)

	recorder := f.do("GET", "/health", "", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}

func TestGatedRoutesRequireSession(t *testing.T) {
	f := newHandlerFixture(t)

	for _, path := range []string{"/api/wallet", "/api/cart", "/api/orders"} {
		recorder := f.do("GET", path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code, path)
	}

	recorder := f.do("GET", "/api/wallet", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestAdminRouteRejectsRegularUser(t *testing.T) {
	f := newHandlerFixture(t)

	userToken := f.token(t, uuid.New(), domain.RoleUser)
	recorder := f.do("GET", "/api/admin", userToken, nil)
	assert.Equal(t, http.StatusForbidden, recorder.Code)

	f.orders.On("AdminStats", mock.Anything).Return(service.AdminStats{TotalRevenue: 1000}, nil).Once()
	adminToken := f.token(t, uuid.New(), domain.RoleAdmin)
	recorder = f.do("GET", "/api/admin", adminToken, nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestGetMenuReturnsCategoriesAndFilters(t *testing.T) {
	f := newHandlerFixture(t)
	restaurantID := uuid.New()

	items := []domain.MenuItem{
		{ID: uuid.New(), Name: "Poulet", Category: "plats"},
		{ID: uuid.New(), Name: "Jus", Category: "boissons"},
		{ID: uuid.New(), Name: "Moambe", Category: "plats"},
	}
	f.menu.On("List", mock.Anything, restaurantID).Return(items, nil).Twice()

	recorder := f.do("GET", "/api/restaurants/"+restaurantID.String()+"/menu", "", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Categories []string          `json:"categories"`
		Items      []domain.MenuItem `json:"items"`
	}
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, []string{"all", "plats", "boissons"}, body.Categories)
	assert.Len(t, body.Items, 3)

	recorder = f.do("GET", "/api/restaurants/"+restaurantID.String()+"/menu?category=plats", "", nil)
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Len(t, body.Items, 2)
}

func TestGetRestaurantBadID(t *testing.T) {
	f := newHandlerFixture(t)

	recorder := f.do("GET", "/api/restaurants/not-a-uuid", "", nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestGetRestaurantNotFound(t *testing.T) {
	f := newHandlerFixture(t)
	id := uuid.New()

	f.restaurants.On("Get", mock.Anything, id).
		Return(domain.Restaurant{}, service.ErrRestaurantNotFound).Once()

	recorder := f.do("GET", "/api/restaurants/"+id.String(), "", nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestCartFlow(t *testing.T) {
	f := newHandlerFixture(t)
	userID := uuid.New()
	token := f.token(t, userID, domain.RoleUser)
	itemID := uuid.New()

	// Quantity omitted defaults to 1.
	recorder := f.do("POST", "/api/cart", token, map[string]any{
		"menu_item_id": itemID,
		"name":         "Poulet",
		"price":        5500,
	})
	assert.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Items []domain.CartLine `json:"items"`
		Total float64           `json:"total"`
	}
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Len(t, body.Items, 1)
	assert.Equal(t, 1, body.Items[0].Quantity)
	assert.Equal(t, 5500.0, body.Total)

	recorder = f.do("PATCH", "/api/cart", token, map[string]any{
		"menu_item_id": itemID,
		"quantity":     0,
	})
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Empty(t, body.Items, "setting quantity to zero removes the line")

	recorder = f.do("POST", "/api/cart", token, map[string]any{"name": "no id"})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = f.do("DELETE", "/api/cart/"+itemID.String(), token, nil)
	assert.Equal(t, http.StatusNoContent, recorder.Code)
}

func TestCheckoutEmptyCart(t *testing.T) {
	f := newHandlerFixture(t)
	token := f.token(t, uuid.New(), domain.RoleUser)

	f.orders.On("Checkout", mock.Anything, mock.Anything, mock.Anything).
		Return(domain.Order{}, service.ErrEmptyCart).Once()

	recorder := f.do("POST", "/api/orders", token, map[string]any{
		"restaurant_id":    uuid.New(),
		"delivery_address": "somewhere",
	})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestGetOrderHidesOtherUsersOrders(t *testing.T) {
	f := newHandlerFixture(t)
	owner := uuid.New()
	stranger := uuid.New()
	orderID := uuid.New()

	f.orders.On("Get", mock.Anything, orderID).
		Return(domain.Order{ID: orderID, UserID: owner}, nil).Twice()

	recorder := f.do("GET", "/api/orders/"+orderID.String(), f.token(t, stranger, domain.RoleUser), nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code, "foreign orders look like missing orders")

	recorder = f.do("GET", "/api/orders/"+orderID.String(), f.token(t, stranger, domain.RoleAdmin), nil)
	assert.Equal(t, http.StatusOK, recorder.Code, "admins see every order")
}

func TestUpdateOrderStatusHidesOtherUsersOrders(t *testing.T) {
	f := newHandlerFixture(t)
	owner := uuid.New()
	stranger := uuid.New()
	orderID := uuid.New()
	body := map[string]any{"status": "accepted"}

	f.orders.On("Get", mock.Anything, orderID).
		Return(domain.Order{ID: orderID, UserID: owner}, nil).Twice()

	recorder := f.do("PATCH", "/api/orders/"+orderID.String()+"/status", f.token(t, stranger, domain.RoleUser), body)
	assert.Equal(t, http.StatusNotFound, recorder.Code, "foreign orders look like missing orders")
	f.orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)

	accepted := domain.OrderAccepted
	f.orders.On("UpdateStatus", mock.Anything, orderID, service.StatusUpdate{Status: &accepted}).
		Return(domain.Order{ID: orderID, UserID: owner, Status: domain.OrderAccepted}, nil).Once()

	recorder = f.do("PATCH", "/api/orders/"+orderID.String()+"/status", f.token(t, stranger, domain.RoleAdmin), body)
	assert.Equal(t, http.StatusOK, recorder.Code, "admins update any order")
}

func TestOrderQRCodeHidesOtherUsersOrders(t *testing.T) {
	f := newHandlerFixture(t)
	owner := uuid.New()
	stranger := uuid.New()
	orderID := uuid.New()

	f.orders.On("Get", mock.Anything, orderID).
		Return(domain.Order{ID: orderID, UserID: owner}, nil).Twice()

	recorder := f.do("GET", "/api/orders/"+orderID.String()+"/qrcode", f.token(t, stranger, domain.RoleUser), nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	f.orders.AssertNotCalled(t, "QRCode", mock.Anything, mock.Anything)

	f.orders.On("QRCode", mock.Anything, orderID).
		Return([]byte{0x89, 0x50, 0x4e, 0x47}, nil).Once()

	recorder = f.do("GET", "/api/orders/"+orderID.String()+"/qrcode", f.token(t, owner, domain.RoleUser), nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "image/png", recorder.Header().Get("Content-Type"))
}

func TestInitiatePaymentRejectsBadPhone(t *testing.T) {
	f := newHandlerFixture(t)
	token := f.token(t, uuid.New(), domain.RoleUser)

	f.payments.On("Initiate", mock.Anything, mock.Anything).
		Return(domain.Payment{}, &service.ValidationError{
			Field:   "phone_number",
			Message: "phone number must be exactly 9 digits",
		}).Once()

	recorder := f.do("POST", "/api/payments", token, map[string]any{
		"amount":       5000,
		"phone_number": "06123456",
		"operator":     "mtn",
	})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "phone_number")
}

func TestSettlePaymentConflict(t *testing.T) {
	f := newHandlerFixture(t)
	token := f.token(t, uuid.New(), domain.RoleUser)
	paymentID := uuid.New()

	f.payments.On("Settle", mock.Anything, paymentID, domain.PaymentCompleted).
		Return(domain.Payment{}, service.ErrPaymentSettled).Once()

	recorder := f.do("POST", "/api/payments/"+paymentID.String()+"/settle", token, map[string]any{
		"status": "completed",
	})
	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func TestWallet(t *testing.T) {
	f := newHandlerFixture(t)
	userID := uuid.New()
	token := f.token(t, userID, domain.RoleUser)

	f.payments.On("Wallet", mock.Anything, userID).
		Return(service.Wallet{Balance: 9500}, nil).Once()

	recorder := f.do("GET", "/api/wallet", token, nil)
	assert.Equal(t, http.StatusOK, recorder.Code)

	var wallet service.Wallet
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &wallet))
	assert.Equal(t, 9500.0, wallet.Balance)
}

func TestPaymentMethodsAreStatic(t *testing.T) {
	f := newHandlerFixture(t)
	token := f.token(t, uuid.New(), domain.RoleUser)

	recorder := f.do("GET", "/api/wallet/payment-methods", token, nil)
	assert.Equal(t, http.StatusOK, recorder.Code)

	var methods []map[string]string
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &methods))
	assert.Len(t, methods, 2)
	assert.Equal(t, "mobile_mtn", methods[0]["id"])
	assert.Equal(t, "mobile_airtel", methods[1]["id"])
}

func TestRecommendationsLimit(t *testing.T) {
	f := newHandlerFixture(t)

	f.recommendations.On("TopPicks", mock.Anything, 3).
		Return([]domain.Recommendation{}, nil).Once()
	recorder := f.do("GET", "/api/recommendations?limit=3", "", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)

	f.recommendations.On("TopPicks", mock.Anything, domain.DefaultRecommendTop).
		Return([]domain.Recommendation{}, nil).Twice()
	recorder = f.do("GET", "/api/recommendations", "", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
	recorder = f.do("GET", "/api/recommendations?limit=-2", "", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestUnknownPathRedirectsHome(t *testing.T) {
	f := newHandlerFixture(t)

	recorder := f.do("GET", "/totally/unknown", "", nil)
	assert.Equal(t, http.StatusTemporaryRedirect, recorder.Code)
	assert.Equal(t, "/", recorder.Header().Get("Location"))
}

func TestAPIPathsNeverRedirect(t *testing.T) {
	f := newHandlerFixture(t)
	token := f.token(t, uuid.New(), domain.RoleUser)

	recorder := f.do("GET", "/api/payments", token, nil)
	assert.Equal(t, http.StatusMethodNotAllowed, recorder.Code, "wrong method on a known route")

	recorder = f.do("GET", "/api/no-such-thing", token, nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code, "unknown API route")
}

func TestVerticalDescriptors(t *testing.T) {
	f := newHandlerFixture(t)

	for _, path := range []string{"/api/taxi", "/api/covoiturage", "/api/explorer"} {
		recorder := f.do("GET", path, "", nil)
		assert.Equal(t, http.StatusOK, recorder.Code, path)

		var info map[string]string
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &info))
		assert.Equal(t, "coming_soon", info["status"])
	}

	recorder := f.do("GET", "/api/taxi/rides/abc123", "", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
	var ride map[string]string
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &ride))
	assert.Equal(t, "abc123", ride["ride_id"])
}

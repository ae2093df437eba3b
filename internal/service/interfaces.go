package service

import (
	"context"

	"github.com/google/uuid"

	"buntudelice/internal/domain"
)

type RestaurantRepository interface {
	GetRestaurant(ctx context.Context, id uuid.UUID) (domain.RestaurantRow, error)
	ListRestaurants(ctx context.Context) ([]domain.RestaurantRow, error)
}

type MenuRepository interface {
	ListMenuItems(ctx context.Context, restaurantID uuid.UUID) ([]domain.MenuItemRow, error)
	TopMenuItemsByPopularity(ctx context.Context, limit int) ([]domain.MenuItemRow, error)
}

type RatingRepository interface {
	ListRatings(ctx context.Context, menuItemIDs []uuid.UUID) (map[uuid.UUID][]int, error)
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *domain.Order) error
	GetOrder(ctx context.Context, id uuid.UUID) (domain.Order, error)
	ListOrdersByUser(ctx context.Context, userID uuid.UUID) ([]domain.Order, error)
	UpdateOrderStatuses(ctx context.Context, order domain.Order) error
	SaveOrderQRCode(ctx context.Context, orderID uuid.UUID, qr []byte) error
	GetOrderQRCode(ctx context.Context, orderID uuid.UUID) ([]byte, error)
	CountOrdersByStatus(ctx context.Context) (map[domain.OrderStatus]int, error)
}

type PaymentRepository interface {
	InsertPayment(ctx context.Context, payment *domain.Payment) error
	GetPayment(ctx context.Context, id uuid.UUID) (domain.Payment, error)
	SettlePayment(ctx context.Context, id uuid.UUID, status domain.PaymentStatus) (bool, error)
	ListPaymentsByUser(ctx context.Context, userID uuid.UUID) ([]domain.Payment, error)
	TotalCompletedByUser(ctx context.Context, userID uuid.UUID) (float64, error)
	TotalCompleted(ctx context.Context) (float64, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *domain.User) error
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (domain.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

// QueryCache is the explicit, injectable replacement for an ambient shared
// fetch cache: TTL is owned by the implementation, invalidation by callers.
type QueryCache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Invalidate(ctx context.Context, keys ...string) error
}

type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
}

type QRGenerator interface {
	Generate(orderID uuid.UUID) ([]byte, error)
}

type RestaurantServiceInterface interface {
	Get(ctx context.Context, id uuid.UUID) (domain.Restaurant, error)
	List(ctx context.Context) ([]domain.Restaurant, error)
	Invalidate(ctx context.Context, id uuid.UUID) error
}

type MenuServiceInterface interface {
	List(ctx context.Context, restaurantID uuid.UUID) ([]domain.MenuItem, error)
}

type CartServiceInterface interface {
	Add(userID uuid.UUID, item domain.CartItem)
	Remove(userID, menuItemID uuid.UUID)
	SetQuantity(userID, menuItemID uuid.UUID, quantity int)
	Snapshot(userID uuid.UUID) ([]domain.CartLine, float64)
	Clear(userID uuid.UUID)
}

type OrderServiceInterface interface {
	Checkout(ctx context.Context, userID uuid.UUID, req CheckoutRequest) (domain.Order, error)
	Get(ctx context.Context, id uuid.UUID) (domain.Order, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, req StatusUpdate) (domain.Order, error)
	QRCode(ctx context.Context, id uuid.UUID) ([]byte, error)
	AdminStats(ctx context.Context) (AdminStats, error)
}

type PaymentServiceInterface interface {
	Initiate(ctx context.Context, req PaymentRequest) (domain.Payment, error)
	Settle(ctx context.Context, id uuid.UUID, outcome domain.PaymentStatus) (domain.Payment, error)
	Wallet(ctx context.Context, userID uuid.UUID) (Wallet, error)
}

type RecommendationServiceInterface interface {
	TopPicks(ctx context.Context, limit int) ([]domain.Recommendation, error)
}

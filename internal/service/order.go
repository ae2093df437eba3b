package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"buntudelice/internal/domain"
)

type CheckoutRequest struct {
	RestaurantID        uuid.UUID `json:"restaurant_id"`
	DeliveryAddress     string    `json:"delivery_address"`
	SpecialInstructions string    `json:"special_instructions"`
}

// StatusUpdate carries the requested values per axis; nil means leave the
// axis alone.
type StatusUpdate struct {
	Status         *domain.OrderStatus    `json:"status,omitempty"`
	PaymentStatus  *domain.PaymentStatus  `json:"payment_status,omitempty"`
	DeliveryStatus *domain.DeliveryStatus `json:"delivery_status,omitempty"`
}

type AdminStats struct {
	OrdersByStatus map[domain.OrderStatus]int `json:"orders_by_status"`
	TotalRevenue   float64                    `json:"total_revenue"`
}

type OrderService struct {
	repo      OrderRepository
	payments  PaymentRepository
	cart      CartServiceInterface
	qr        QRGenerator
	publisher EventPublisher
}

func NewOrderService(repo OrderRepository, payments PaymentRepository, cart CartServiceInterface, qr QRGenerator, publisher EventPublisher) *OrderService {
	return &OrderService{repo: repo, payments: payments, cart: cart, qr: qr, publisher: publisher}
}

// Checkout snapshots the session's cart into a new order, clears the cart,
// and generates the pickup QR code. QR or event failures never fail the
// order once it is committed. Never retried.
func (s *OrderService) Checkout(ctx context.Context, userID uuid.UUID, req CheckoutRequest) (domain.Order, error) {
	if req.RestaurantID == uuid.Nil {
		return domain.Order{}, invalidField("restaurant_id", "restaurant is required")
	}
	if req.DeliveryAddress == "" {
		return domain.Order{}, invalidField("delivery_address", "delivery address is required")
	}

	lines, total := s.cart.Snapshot(userID)
	if len(lines) == 0 {
		return domain.Order{}, ErrEmptyCart
	}

	order := domain.Order{
		UserID:              userID,
		RestaurantID:        req.RestaurantID,
		Status:              domain.OrderPending,
		PaymentStatus:       domain.PaymentPending,
		DeliveryStatus:      domain.DeliveryPending,
		TotalAmount:         total,
		DeliveryAddress:     req.DeliveryAddress,
		SpecialInstructions: req.SpecialInstructions,
		Items:               make([]domain.OrderItem, 0, len(lines)),
	}
	for _, line := range lines {
		order.Items = append(order.Items, domain.OrderItem{
			MenuItemID:     line.MenuItemID,
			Name:           line.Name,
			Quantity:       line.Quantity,
			Price:          line.Price,
			Customizations: line.Customizations,
		})
	}

	if err := s.repo.CreateOrder(ctx, &order); err != nil {
		return domain.Order{}, fmt.Errorf("create order: %w", err)
	}

	s.cart.Clear(userID)

	if s.qr != nil {
		if qr, err := s.qr.Generate(order.ID); err == nil {
			if err := s.repo.SaveOrderQRCode(ctx, order.ID, qr); err != nil {
				logrus.WithError(err).Warn("failed to store order QR code")
			}
		} else {
			logrus.WithError(err).Warn("failed to generate order QR code")
		}
	}
	order.QRCode = fmt.Sprintf("/api/orders/%s/qrcode", order.ID)

	if s.publisher != nil {
		_ = s.publisher.Publish(ctx, domain.Event{
			Type:         "order_created",
			OrderID:      order.ID,
			UserID:       userID,
			RestaurantID: order.RestaurantID,
			Amount:       order.TotalAmount,
			Status:       string(order.Status),
			Timestamp:    time.Now(),
		})
	}

	return order, nil
}

func (s *OrderService) Get(ctx context.Context, id uuid.UUID) (domain.Order, error) {
	var order domain.Order
	err := retryRead(ctx, func() error {
		var err error
		order, err = s.repo.GetOrder(ctx, id)
		return err
	})
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Order{}, ErrOrderNotFound
	}
	if err != nil {
		return domain.Order{}, fmt.Errorf("fetch order: %w", err)
	}
	order.QRCode = fmt.Sprintf("/api/orders/%s/qrcode", order.ID)
	return order, nil
}

func (s *OrderService) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Order, error) {
	var orders []domain.Order
	err := retryRead(ctx, func() error {
		var err error
		orders, err = s.repo.ListOrdersByUser(ctx, userID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// UpdateStatus validates each requested axis against its own monotonic
// order before persisting; a single invalid axis rejects the whole update.
func (s *OrderService) UpdateStatus(ctx context.Context, id uuid.UUID, req StatusUpdate) (domain.Order, error) {
	order, err := s.Get(ctx, id)
	if err != nil {
		return domain.Order{}, err
	}

	if req.Status != nil {
		if !req.Status.Valid() || !order.Status.CanTransitionTo(*req.Status) {
			return domain.Order{}, fmt.Errorf("%w: status %s -> %s", ErrInvalidTransition, order.Status, *req.Status)
		}
		order.Status = *req.Status
	}
	if req.PaymentStatus != nil {
		if !req.PaymentStatus.Valid() || !order.PaymentStatus.CanTransitionTo(*req.PaymentStatus) {
			return domain.Order{}, fmt.Errorf("%w: payment_status %s -> %s", ErrInvalidTransition, order.PaymentStatus, *req.PaymentStatus)
		}
		order.PaymentStatus = *req.PaymentStatus
	}
	if req.DeliveryStatus != nil {
		if !req.DeliveryStatus.Valid() || !order.DeliveryStatus.CanTransitionTo(*req.DeliveryStatus) {
			return domain.Order{}, fmt.Errorf("%w: delivery_status %s -> %s", ErrInvalidTransition, order.DeliveryStatus, *req.DeliveryStatus)
		}
		order.DeliveryStatus = *req.DeliveryStatus
	}

	if err := s.repo.UpdateOrderStatuses(ctx, order); err != nil {
		return domain.Order{}, fmt.Errorf("update order status: %w", err)
	}

	if s.publisher != nil {
		_ = s.publisher.Publish(ctx, domain.Event{
			Type:         "order_status_changed",
			OrderID:      order.ID,
			UserID:       order.UserID,
			RestaurantID: order.RestaurantID,
			Status:       string(order.Status),
			Timestamp:    time.Now(),
		})
	}

	return order, nil
}

func (s *OrderService) QRCode(ctx context.Context, id uuid.UUID) ([]byte, error) {
	qr, err := s.repo.GetOrderQRCode(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	if len(qr) == 0 && s.qr != nil {
		regenerated, err := s.qr.Generate(id)
		if err != nil {
			return nil, err
		}
		if err := s.repo.SaveOrderQRCode(ctx, id, regenerated); err != nil {
			logrus.WithError(err).Warn("failed to cache regenerated QR code")
		}
		return regenerated, nil
	}
	return qr, nil
}

func (s *OrderService) AdminStats(ctx context.Context) (AdminStats, error) {
	counts, err := s.repo.CountOrdersByStatus(ctx)
	if err != nil {
		return AdminStats{}, fmt.Errorf("count orders: %w", err)
	}
	revenue, err := s.payments.TotalCompleted(ctx)
	if err != nil {
		return AdminStats{}, fmt.Errorf("total revenue: %w", err)
	}
	return AdminStats{OrdersByStatus: counts, TotalRevenue: revenue}, nil
}

var _ OrderServiceInterface = (*OrderService)(nil)

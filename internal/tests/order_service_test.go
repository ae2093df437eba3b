package tests

import (
	"context"
	"database/sql"
	"testing"

	"buntudelice/internal/domain"
	"buntudelice/internal/mocks"
	"buntudelice/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestOrderService_Checkout(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	restaurantID := uuid.New()
	orderID := uuid.New()

	repo := mocks.NewOrderRepository(t)
	publisher := mocks.NewEventPublisher(t)
	qr := mocks.NewQRGenerator(t)
	cart := service.NewCartStore()

	cart.Add(userID, domain.CartItem{MenuItemID: uuid.New(), Name: "Poulet", Price: 5500, Quantity: 2})
	cart.Add(userID, domain.CartItem{MenuItemID: uuid.New(), Name: "Jus", Price: 1000, Quantity: 1})

	repo.On("CreateOrder", ctx, mock.MatchedBy(func(order *domain.Order) bool {
		return order.UserID == userID &&
			order.RestaurantID == restaurantID &&
			order.TotalAmount == 12000 &&
			len(order.Items) == 2 &&
			order.Status == domain.OrderPending &&
			order.PaymentStatus == domain.PaymentPending &&
			order.DeliveryStatus == domain.DeliveryPending
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Order).ID = orderID
	}).Return(nil).Once()
	qr.On("Generate", orderID).Return([]byte("png-bytes"), nil).Once()
	repo.On("SaveOrderQRCode", ctx, orderID, []byte("png-bytes")).Return(nil).Once()
	publisher.On("Publish", ctx, mock.MatchedBy(func(event domain.Event) bool {
		return event.Type == "order_created" && event.OrderID == orderID
	})).Return(nil).Once()

	svc := service.NewOrderService(repo, mocks.NewPaymentRepository(t), cart, qr, publisher)
	order, err := svc.Checkout(ctx, userID, service.CheckoutRequest{
		RestaurantID:    restaurantID,
		DeliveryAddress: "12 Avenue de la Paix, Brazzaville",
	})

	assert.NoError(t, err)
	assert.Equal(t, orderID, order.ID)
	assert.Equal(t, "/api/orders/"+orderID.String()+"/qrcode", order.QRCode)

	lines, _ := cart.Snapshot(userID)
	assert.Empty(t, lines, "checkout clears the cart")
}

func TestOrderService_CheckoutValidation(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	svc := service.NewOrderService(
		mocks.NewOrderRepository(t),
		mocks.NewPaymentRepository(t),
		service.NewCartStore(),
		nil, nil,
	)

	_, err := svc.Checkout(ctx, userID, service.CheckoutRequest{DeliveryAddress: "somewhere"})
	var vErr *service.ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, "restaurant_id", vErr.Field)

	_, err = svc.Checkout(ctx, userID, service.CheckoutRequest{RestaurantID: uuid.New()})
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, "delivery_address", vErr.Field)

	_, err = svc.Checkout(ctx, userID, service.CheckoutRequest{
		RestaurantID:    uuid.New(),
		DeliveryAddress: "somewhere",
	})
	assert.ErrorIs(t, err, service.ErrEmptyCart)
}

func TestOrderService_CheckoutSurvivesQRFailure(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()

	repo := mocks.NewOrderRepository(t)
	qr := mocks.NewQRGenerator(t)
	cart := service.NewCartStore()
	cart.Add(userID, domain.CartItem{MenuItemID: uuid.New(), Price: 1000, Quantity: 1})

	repo.On("CreateOrder", ctx, mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Order).ID = orderID
	}).Return(nil).Once()
	qr.On("Generate", orderID).Return(nil, assert.AnError).Once()

	svc := service.NewOrderService(repo, mocks.NewPaymentRepository(t), cart, qr, nil)
	order, err := svc.Checkout(ctx, userID, service.CheckoutRequest{
		RestaurantID:    uuid.New(),
		DeliveryAddress: "somewhere",
	})

	assert.NoError(t, err, "QR failure never fails a committed order")
	assert.Equal(t, orderID, order.ID)
}

func TestOrderService_Get(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	repo := mocks.NewOrderRepository(t)
	repo.On("GetOrder", ctx, id).Return(domain.Order{}, sql.ErrNoRows).Once()

	svc := service.NewOrderService(repo, mocks.NewPaymentRepository(t), service.NewCartStore(), nil, nil)
	_, err := svc.Get(ctx, id)
	assert.ErrorIs(t, err, service.ErrOrderNotFound)
}

func TestOrderService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	accepted := domain.OrderAccepted
	pending := domain.OrderPending
	refunded := domain.PaymentRefunded
	completed := domain.PaymentCompleted
	delivering := domain.DeliveryDelivering

	tests := []struct {
		name          string
		current       domain.Order
		update        service.StatusUpdate
		expectPersist bool
		expectedError error
	}{
		{
			name:          "forward_status_is_accepted",
			current:       domain.Order{ID: id, Status: domain.OrderPending, PaymentStatus: domain.PaymentPending, DeliveryStatus: domain.DeliveryPending},
			update:        service.StatusUpdate{Status: &accepted},
			expectPersist: true,
		},
		{
			name:          "backward_status_is_rejected",
			current:       domain.Order{ID: id, Status: domain.OrderAccepted, PaymentStatus: domain.PaymentPending, DeliveryStatus: domain.DeliveryPending},
			update:        service.StatusUpdate{Status: &pending},
			expectedError: service.ErrInvalidTransition,
		},
		{
			name:          "pending_payment_cannot_jump_to_refunded",
			current:       domain.Order{ID: id, Status: domain.OrderPending, PaymentStatus: domain.PaymentPending, DeliveryStatus: domain.DeliveryPending},
			update:        service.StatusUpdate{PaymentStatus: &refunded},
			expectedError: service.ErrInvalidTransition,
		},
		{
			name:          "one_bad_axis_rejects_the_whole_update",
			current:       domain.Order{ID: id, Status: domain.OrderPending, PaymentStatus: domain.PaymentPending, DeliveryStatus: domain.DeliveryDelivered},
			update:        service.StatusUpdate{PaymentStatus: &completed, DeliveryStatus: &delivering},
			expectedError: service.ErrInvalidTransition,
		},
		{
			name:          "independent_axes_move_together",
			current:       domain.Order{ID: id, Status: domain.OrderPending, PaymentStatus: domain.PaymentPending, DeliveryStatus: domain.DeliveryPending},
			update:        service.StatusUpdate{Status: &accepted, PaymentStatus: &completed, DeliveryStatus: &delivering},
			expectPersist: true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewOrderRepository(t)
			publisher := mocks.NewEventPublisher(t)

			repo.On("GetOrder", ctx, id).Return(testCase.current, nil).Once()
			if testCase.expectPersist {
				repo.On("UpdateOrderStatuses", ctx, mock.Anything).Return(nil).Once()
				publisher.On("Publish", ctx, mock.MatchedBy(func(event domain.Event) bool {
					return event.Type == "order_status_changed"
				})).Return(nil).Once()
			}

			svc := service.NewOrderService(repo, mocks.NewPaymentRepository(t), service.NewCartStore(), nil, publisher)
			order, err := svc.UpdateStatus(ctx, id, testCase.update)

			if testCase.expectedError != nil {
				assert.ErrorIs(t, err, testCase.expectedError)
				return
			}
			assert.NoError(t, err)
			if testCase.update.Status != nil {
				assert.Equal(t, *testCase.update.Status, order.Status)
			}
		})
	}
}

func TestOrderService_QRCodeRegeneratesWhenEmpty(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	repo := mocks.NewOrderRepository(t)
	qr := mocks.NewQRGenerator(t)

	repo.On("GetOrderQRCode", ctx, id).Return([]byte{}, nil).Once()
	qr.On("Generate", id).Return([]byte("fresh"), nil).Once()
	repo.On("SaveOrderQRCode", ctx, id, []byte("fresh")).Return(nil).Once()

	svc := service.NewOrderService(repo, mocks.NewPaymentRepository(t), service.NewCartStore(), qr, nil)
	code, err := svc.QRCode(ctx, id)

	assert.NoError(t, err)
	assert.Equal(t, []byte("fresh"), code)
}

func TestOrderService_AdminStats(t *testing.T) {
	ctx := context.Background()

	repo := mocks.NewOrderRepository(t)
	payments := mocks.NewPaymentRepository(t)

	repo.On("CountOrdersByStatus", ctx).Return(map[domain.OrderStatus]int{
		domain.OrderPending:   3,
		domain.OrderDelivered: 7,
	}, nil).Once()
	payments.On("TotalCompleted", ctx).Return(125000.0, nil).Once()

	svc := service.NewOrderService(repo, payments, service.NewCartStore(), nil, nil)
	stats, err := svc.AdminStats(ctx)

	assert.NoError(t, err)
	assert.Equal(t, 125000.0, stats.TotalRevenue)
	assert.Equal(t, 7, stats.OrdersByStatus[domain.OrderDelivered])
}

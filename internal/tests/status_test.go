package tests

import (
	"testing"

	"buntudelice/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    domain.OrderStatus
		to      domain.OrderStatus
		allowed bool
	}{
		{name: "pending_to_accepted", from: domain.OrderPending, to: domain.OrderAccepted, allowed: true},
		{name: "pending_to_delivered_skips_ahead", from: domain.OrderPending, to: domain.OrderDelivered, allowed: true},
		{name: "accepted_back_to_pending", from: domain.OrderAccepted, to: domain.OrderPending, allowed: false},
		{name: "preparing_to_cancelled", from: domain.OrderPreparing, to: domain.OrderCancelled, allowed: true},
		{name: "delivered_is_terminal", from: domain.OrderDelivered, to: domain.OrderCancelled, allowed: false},
		{name: "cancelled_is_terminal", from: domain.OrderCancelled, to: domain.OrderAccepted, allowed: false},
		{name: "same_state_is_not_forward", from: domain.OrderPreparing, to: domain.OrderPreparing, allowed: false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.allowed, testCase.from.CanTransitionTo(testCase.to))
		})
	}
}

func TestPaymentStatusTransitions(t *testing.T) {
	assert.True(t, domain.PaymentPending.CanTransitionTo(domain.PaymentCompleted))
	assert.True(t, domain.PaymentPending.CanTransitionTo(domain.PaymentFailed))
	assert.True(t, domain.PaymentCompleted.CanTransitionTo(domain.PaymentRefunded))

	assert.False(t, domain.PaymentPending.CanTransitionTo(domain.PaymentRefunded))
	assert.False(t, domain.PaymentCompleted.CanTransitionTo(domain.PaymentPending))
	assert.False(t, domain.PaymentFailed.CanTransitionTo(domain.PaymentCompleted))
	assert.False(t, domain.PaymentRefunded.CanTransitionTo(domain.PaymentPending))
}

func TestDeliveryStatusTransitions(t *testing.T) {
	assert.True(t, domain.DeliveryPending.CanTransitionTo(domain.DeliveryAssigned))
	assert.True(t, domain.DeliveryAssigned.CanTransitionTo(domain.DeliveryDelivering))
	assert.True(t, domain.DeliveryPickedUp.CanTransitionTo(domain.DeliveryFailed))

	assert.False(t, domain.DeliveryDelivered.CanTransitionTo(domain.DeliveryFailed))
	assert.False(t, domain.DeliveryFailed.CanTransitionTo(domain.DeliveryPending))
	assert.False(t, domain.DeliveryDelivering.CanTransitionTo(domain.DeliveryAssigned))
}

func TestStatusValid(t *testing.T) {
	assert.True(t, domain.OrderCancelled.Valid())
	assert.True(t, domain.DeliveryFailed.Valid())
	assert.False(t, domain.OrderStatus("teleported").Valid())
	assert.False(t, domain.PaymentStatus("maybe").Valid())
	assert.False(t, domain.DeliveryStatus("lost").Valid())
}

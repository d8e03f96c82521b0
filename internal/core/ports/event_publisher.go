package ports

import (
	"context"

	"onlineshop/internal/core/domain/model/kernel"
)

// OrderEventType identifies a lifecycle transition of an order.
type OrderEventType string

const (
	// OrderCreatedEvent is published after an order is placed and stock reserved.
	OrderCreatedEvent OrderEventType = "order.created"
	// OrderDeliveredEvent is published after an order is delivered.
	OrderDeliveredEvent OrderEventType = "order.delivered"
	// OrderCanceledEvent is published after an order is canceled.
	OrderCanceledEvent OrderEventType = "order.canceled"
	// OrderReturnedEvent is published after an order is returned and stock released.
	OrderReturnedEvent OrderEventType = "order.returned"
)

// OrderEvent carries the facts of a lifecycle transition for downstream
// consumers (notifications, audit). It is not required for correctness.
type OrderEvent struct {
	Type    OrderEventType
	OrderID kernel.UUID
	// ActingUserID is the user who triggered the transition; for a freshly
	// placed order this is the customer.
	ActingUserID kernel.UUID
}

// OrderEventPublisher delivers lifecycle events to interested collaborators.
// Publishing is fire-and-forget: commands emit events after a successful
// commit and ignore publish failures, which implementations log themselves.
type OrderEventPublisher interface {
	Publish(ctx context.Context, event OrderEvent) error
}

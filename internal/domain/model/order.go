package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusDelivery  OrderStatus = "delivery"
	OrderStatusCompleted OrderStatus = "completed"
)

// Valid reports whether the status is a known order status.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing,
		OrderStatusDelivery, OrderStatusCompleted:
		return true
	}
	return false
}

// CanTransitionTo reports whether the status may advance to next.
// The lifecycle is strictly forward:
// pending → confirmed → preparing → delivery → completed.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	switch s {
	case OrderStatusPending:
		return next == OrderStatusConfirmed
	case OrderStatusConfirmed:
		return next == OrderStatusPreparing
	case OrderStatusPreparing:
		return next == OrderStatusDelivery
	case OrderStatusDelivery:
		return next == OrderStatusCompleted
	}
	return false
}

// Address is a structured delivery address.
type Address struct {
	Street       string `json:"street" bson:"street"`
	Number       string `json:"number" bson:"number"`
	Neighborhood string `json:"neighborhood" bson:"neighborhood"`
	Complement   string `json:"complement,omitempty" bson:"complement,omitempty"`
	ZipCode      string `json:"zip_code,omitempty" bson:"zip_code,omitempty"`
}

// Customer holds the checkout contact and delivery data for one order.
type Customer struct {
	Name    string  `json:"name" bson:"name"`
	Phone   string  `json:"phone" bson:"phone"`
	Address Address `json:"address" bson:"address"`
}

// Order is an immutable snapshot of a completed checkout. Items are deep
// copies of the cart lines; later catalog price changes never alter a
// historical order.
//
// @Description Materialized order with totals and delivery estimate
type Order struct {
	ID                string      `json:"id" bson:"id"`
	Customer          Customer    `json:"customer" bson:"customer"`
	Items             []CartItem  `json:"items" bson:"items"`
	Subtotal          float64     `json:"subtotal" bson:"subtotal"`
	DeliveryFee       float64     `json:"delivery_fee" bson:"delivery_fee"`
	Total             float64     `json:"total" bson:"total"`
	Status            OrderStatus `json:"status" bson:"status"`
	CreatedAt         time.Time   `json:"created_at" bson:"created_at"`
	EstimatedDelivery time.Time   `json:"estimated_delivery" bson:"estimated_delivery"`
}

// OrderDraft is the pre-materialization order content submitted by checkout.
type OrderDraft struct {
	Customer    Customer
	Items       []CartItem
	Subtotal    float64
	DeliveryFee float64
	Total       float64
}

// Materialize turns a draft into a confirmed order: assigns the id and
// timestamps and advances the status from pending to confirmed.
func (d OrderDraft) Materialize(now time.Time, leadTime time.Duration) Order {
	return Order{
		ID:                uuid.New().String(),
		Customer:          d.Customer,
		Items:             d.Items,
		Subtotal:          d.Subtotal,
		DeliveryFee:       d.DeliveryFee,
		Total:             d.Total,
		Status:            OrderStatusConfirmed,
		CreatedAt:         now,
		EstimatedDelivery: now.Add(leadTime),
	}
}

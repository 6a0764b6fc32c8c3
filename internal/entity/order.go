package entity

import "time"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

func IsValidOrderStatus(status string) bool {
	switch OrderStatus(status) {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

type Order struct {
	ID                int64       `json:"id"`
	UserID            int64       `json:"user_id"`
	OrderNumber       string      `json:"order_number"`
	Status            OrderStatus `json:"status"`
	OrderDate         time.Time   `json:"order_date"`
	TotalAmount       float64     `json:"total_amount"`
	ShippingAddress   string      `json:"shipping_address"`
	TrackingNumber    string      `json:"tracking_number"`
	EstimatedDelivery time.Time   `json:"estimated_delivery"`
	CustomerName      string      `json:"customer_name"`
	CustomerEmail     string      `json:"customer_email"`
}

package chatRepository

import (
	"ShopAssist/internal/api/chat"
	"ShopAssist/internal/entity"
	contextPkg "ShopAssist/pkg/context"
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type OrderDB struct {
	ID                sql.NullInt64   `db:"order_id"`
	UserID            sql.NullInt64   `db:"user_id"`
	OrderNumber       sql.NullString  `db:"order_number"`
	Status            sql.NullString  `db:"status"`
	OrderDate         time.Time       `db:"order_date"`
	TotalAmount       sql.NullFloat64 `db:"total_amount"`
	ShippingAddress   sql.NullString  `db:"shipping_address"`
	TrackingNumber    sql.NullString  `db:"tracking_number"`
	EstimatedDelivery sql.NullTime    `db:"estimated_delivery"`
	CustomerName      sql.NullString  `db:"full_name"`
	CustomerEmail     sql.NullString  `db:"email"`
}

func (r *orderRepository) GetOrderByNumber(ctx context.Context, orderNumber string) (entity.Order, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var orderDB OrderDB

	argsKV := map[string]interface{}{
		"order_number": orderNumber,
	}

	query, args, err := sqlx.Named(queryGetOrderByNumber, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetOrderByNumber named query preparation err")
		return entity.Order{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&orderDB); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id":   requestID,
				"order_number": orderNumber,
			}).Debug("GetOrderByNumber no order found")
			return entity.Order{}, chat.ErrOrderNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetOrderByNumber execution err")
		return entity.Order{}, err
	}

	return r.makeOrder(orderDB), nil
}

func (r *orderRepository) makeOrder(orderDB OrderDB) entity.Order {
	order := entity.Order{
		ID:              orderDB.ID.Int64,
		UserID:          orderDB.UserID.Int64,
		OrderNumber:     orderDB.OrderNumber.String,
		Status:          entity.OrderStatus(orderDB.Status.String),
		OrderDate:       orderDB.OrderDate,
		TotalAmount:     orderDB.TotalAmount.Float64,
		ShippingAddress: orderDB.ShippingAddress.String,
		TrackingNumber:  orderDB.TrackingNumber.String,
		CustomerName:    orderDB.CustomerName.String,
		CustomerEmail:   orderDB.CustomerEmail.String,
	}

	if orderDB.EstimatedDelivery.Valid {
		order.EstimatedDelivery = orderDB.EstimatedDelivery.Time
	}

	return order
}

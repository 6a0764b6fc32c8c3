package chatRepository

import (
	"ShopAssist/internal/entity"
	contextPkg "ShopAssist/pkg/context"
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ProductDB struct {
	ID            sql.NullInt64   `db:"product_id"`
	Name          sql.NullString  `db:"product_name"`
	Category      sql.NullString  `db:"category"`
	Price         sql.NullFloat64 `db:"price"`
	Rating        sql.NullFloat64 `db:"rating"`
	Description   sql.NullString  `db:"description"`
	StockQuantity sql.NullInt64   `db:"stock_quantity"`
	ReviewsCount  sql.NullInt64   `db:"reviews_count"`
}

func (r *productRepository) SearchProducts(ctx context.Context, searchQuery, category string, limit int) ([]entity.Product, error) {
	requestID := contextPkg.GetRequestID(ctx)

	argsKV := map[string]interface{}{
		"pattern": "%" + searchQuery + "%",
		"limit":   limit,
	}

	namedQuery := querySearchProducts
	if category != "" {
		namedQuery = querySearchProductsByCategory
		argsKV["category"] = category
	}

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("SearchProducts named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	var productsDB []ProductDB
	if err := r.q.SelectContext(ctx, &productsDB, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("SearchProducts execution err")
		return nil, err
	}

	products := make([]entity.Product, 0, len(productsDB))
	for _, productDB := range productsDB {
		products = append(products, r.makeProduct(productDB))
	}

	return products, nil
}

func (r *productRepository) GetPopularProducts(ctx context.Context, limit int) ([]entity.Product, error) {
	requestID := contextPkg.GetRequestID(ctx)

	argsKV := map[string]interface{}{
		"limit": limit,
	}

	query, args, err := sqlx.Named(queryGetPopularProducts, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetPopularProducts named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	var productsDB []ProductDB
	if err := r.q.SelectContext(ctx, &productsDB, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetPopularProducts execution err")
		return nil, err
	}

	products := make([]entity.Product, 0, len(productsDB))
	for _, productDB := range productsDB {
		products = append(products, r.makeProduct(productDB))
	}

	return products, nil
}

func (r *productRepository) makeProduct(productDB ProductDB) entity.Product {
	return entity.Product{
		ID:            productDB.ID.Int64,
		Name:          productDB.Name.String,
		Category:      productDB.Category.String,
		Price:         productDB.Price.Float64,
		Rating:        productDB.Rating.Float64,
		Description:   productDB.Description.String,
		StockQuantity: int(productDB.StockQuantity.Int64),
		ReviewsCount:  int(productDB.ReviewsCount.Int64),
	}
}

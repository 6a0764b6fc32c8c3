package chatService

import (
	"ShopAssist/internal/api/chat"
	"ShopAssist/internal/entity"
	contextPkg "ShopAssist/pkg/context"
	"ShopAssist/pkg/intent"
	"ShopAssist/pkg/metrics"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

const searchResultLimit = 3

// Checked in order, first hit wins.
var categoryKeywords = []struct {
	keyword  string
	category string
}{
	{"laptop", "Laptops"},
	{"computer", "Laptops"},
	{"phone", "Smartphones"},
	{"smartphone", "Smartphones"},
	{"headphone", "Accessories"},
	{"mouse", "Accessories"},
	{"book", "Books"},
	{"appliance", "Appliances"},
}

// A dispatcher fault never escapes the turn; the user gets the apology
// template instead.
func (s *chatService) safeDispatch(ctx context.Context, result *intent.Result, message, userID string) (reply string) {
	defer func() {
		if r := recover(); r != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": contextPkg.GetRequestID(ctx),
				"intent":     result.Intent,
				"panic":      fmt.Sprintf("%v", r),
			}).Error("Dispatch fault recovered")
			reply = s.formatter.Error()
		}
	}()

	return s.dispatch(ctx, result, message, userID)
}

func (s *chatService) dispatch(ctx context.Context, result *intent.Result, message, userID string) string {
	switch result.Intent {
	case intent.TrackOrder:
		orderNumber, ok := result.Entities[intent.EntityOrderNumber]
		if !ok {
			return "I'd be happy to help you track your order! Could you please provide your order number? It should look like ORD-2026-00001."
		}
		return s.handleOrderTracking(ctx, orderNumber)

	case intent.ProductSearch:
		searchQuery, ok := result.Entities[intent.EntitySearchQuery]
		if !ok {
			searchQuery = message
		}
		return s.handleProductSearch(ctx, searchQuery)

	case intent.ProductRecommendation:
		return s.handleProductRecommendation(ctx, userID, result.Entities[intent.EntityCategory])

	case intent.ReturnPolicy:
		return s.formatter.ReturnPolicy()

	case intent.ShippingInfo:
		return s.formatter.ShippingInfo()

	case intent.PaymentMethods:
		return s.formatter.PaymentMethods()

	case intent.CancelOrder:
		return "I can help you cancel your order. Please provide your order number, and I'll process the cancellation for you."

	case intent.Greeting:
		return s.formatter.Welcome()

	case intent.Goodbye:
		return "Thank you for chatting with us! Have a wonderful day! Feel free to return if you need any assistance. 😊"

	case intent.Help:
		return s.formatter.Help()

	default:
		return s.handleUnknown(ctx, message)
	}
}

func (s *chatService) handleOrderTracking(ctx context.Context, orderNumber string) string {
	requestID := contextPkg.GetRequestID(ctx)

	orderNumber = strings.ToUpper(strings.TrimSpace(orderNumber))
	if !strings.HasPrefix(orderNumber, "ORD-") && isAllDigits(strings.ReplaceAll(orderNumber, "-", "")) {
		orderNumber = "ORD-" + orderNumber
	}

	repo, err := s.chatRepo.NewClient(false)
	if err != nil {
		return s.orderNotFoundReply(orderNumber)
	}

	order, err := repo.Orders.GetOrderByNumber(ctx, orderNumber)
	if err != nil {
		if !errors.Is(err, chat.ErrOrderNotFound) {
			metrics.CollaboratorFailures.WithLabelValues("orders").Inc()
			s.log.WithFields(logrus.Fields{
				"request_id":   requestID,
				"order_number": orderNumber,
				"error":        err.Error(),
			}).Error("Order lookup failed")
		}
		return s.orderNotFoundReply(orderNumber)
	}

	return s.formatter.OrderStatus(order)
}

func (s *chatService) orderNotFoundReply(orderNumber string) string {
	return fmt.Sprintf("I couldn't find an order with number %s. Please check the order number and try again, or contact customer service if you need assistance.", orderNumber)
}

func (s *chatService) handleProductSearch(ctx context.Context, searchQuery string) string {
	requestID := contextPkg.GetRequestID(ctx)

	var category string
	queryLower := strings.ToLower(searchQuery)
	for _, kw := range categoryKeywords {
		if strings.Contains(queryLower, kw.keyword) {
			category = kw.category
			break
		}
	}

	var products []entity.Product
	repo, err := s.chatRepo.NewClient(false)
	if err == nil {
		products, err = repo.Products.SearchProducts(ctx, searchQuery, category, searchResultLimit)
	}
	if err != nil {
		metrics.CollaboratorFailures.WithLabelValues("products").Inc()
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Product search failed")
		products = nil
	}

	if len(products) == 0 {
		return fmt.Sprintf("I couldn't find any products matching '%s'. Could you try a different search term, or let me know what category you're interested in?", searchQuery)
	}

	return s.formatter.ProductList(products, searchQuery)
}

func (s *chatService) handleProductRecommendation(ctx context.Context, userID, category string) string {
	recommendations := s.recommender.GetRecommendations(userID, category, searchResultLimit)
	if len(recommendations) > 0 {
		return s.formatter.ProductRecommendations(recommendations, category)
	}

	popular := s.popularProducts(ctx)
	return s.formatter.ProductList(popular, "our most popular items")
}

func (s *chatService) popularProducts(ctx context.Context) []entity.Product {
	requestID := contextPkg.GetRequestID(ctx)

	if cached, err := s.redis.GetPopularProducts(ctx); err == nil {
		return cached
	}

	repo, err := s.chatRepo.NewClient(false)
	if err != nil {
		return nil
	}

	popular, err := repo.Products.GetPopularProducts(ctx, searchResultLimit)
	if err != nil {
		metrics.CollaboratorFailures.WithLabelValues("products").Inc()
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Popular products lookup failed")
		return nil
	}

	if cacheErr := s.redis.SetPopularProducts(ctx, popular); cacheErr != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Debug("Failed to cache popular products")
	}

	return popular
}

func (s *chatService) handleUnknown(ctx context.Context, message string) string {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.chatRepo.NewClient(false)
	if err != nil {
		return s.formatter.Fallback()
	}

	faq, err := repo.Faq.SearchFaq(ctx, message)
	if err != nil {
		if !errors.Is(err, chat.ErrFaqNotFound) {
			metrics.CollaboratorFailures.WithLabelValues("faq").Inc()
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("FAQ search failed")
		}
		return s.formatter.Fallback()
	}

	if err := repo.Faq.IncrementTimesAsked(ctx, faq.ID); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"faq_id":     faq.ID,
		}).Debug("Failed to bump faq counter")
	}

	return faq.Answer
}

func isAllDigits(value string) bool {
	if value == "" {
		return false
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

package formatter

import (
	"fmt"
	"strings"

	"ShopAssist/internal/entity"
)

const descriptionLimit = 80

type IFormatter interface {
	Welcome() string
	Help() string
	OrderStatus(order entity.Order) string
	ProductList(products []entity.Product, context string) string
	ProductRecommendations(products []entity.Product, category string) string
	ReturnPolicy() string
	ShippingInfo() string
	PaymentMethods() string
	Fallback() string
	Error() string
}

type formatter struct{}

func New() IFormatter {
	return &formatter{}
}

func (f *formatter) Welcome() string {
	return "👋 Hello! Welcome to our e-commerce store! I'm your virtual assistant.\n\n" +
		"I can help you with:\n" +
		"• 📦 Track your orders\n" +
		"• 🔍 Find products\n" +
		"• 💡 Get product recommendations\n" +
		"• ❓ Answer questions about shipping, returns, and more\n\n" +
		"How can I assist you today?"
}

func (f *formatter) Help() string {
	return "I'm here to help! Here's what I can do:\n\n" +
		"**Order Management:**\n" +
		"• Track orders - Just say 'track my order' or provide your order number\n" +
		"• Cancel orders - Say 'cancel my order'\n\n" +
		"**Product Discovery:**\n" +
		"• Search products - Tell me what you're looking for\n" +
		"• Get recommendations - Ask 'recommend me a laptop'\n\n" +
		"**Customer Service:**\n" +
		"• Shipping information\n" +
		"• Return policy\n" +
		"• Payment methods\n" +
		"• General FAQs\n\n" +
		"Just type your question or request, and I'll do my best to help!"
}

func (f *formatter) OrderStatus(order entity.Order) string {
	emoji := statusEmoji(order.Status)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s **Order Status: %s**\n\n", emoji, order.Status))
	b.WriteString(fmt.Sprintf("**Order Number:** %s\n", order.OrderNumber))
	b.WriteString(fmt.Sprintf("**Order Date:** %s\n", order.OrderDate.Format("January 02, 2006")))
	b.WriteString(fmt.Sprintf("**Total Amount:** $%.2f\n", order.TotalAmount))

	if order.TrackingNumber != "" {
		b.WriteString(fmt.Sprintf("**Tracking Number:** %s\n", order.TrackingNumber))
	}

	if !order.EstimatedDelivery.IsZero() {
		b.WriteString(fmt.Sprintf("**Estimated Delivery:** %s\n", order.EstimatedDelivery.Format("January 02, 2006")))
	}

	switch order.Status {
	case entity.OrderStatusShipped:
		b.WriteString("\n📍 Your order is on its way!")
	case entity.OrderStatusDelivered:
		b.WriteString("\n🎉 Your order has been delivered! We hope you enjoy your purchase!")
	case entity.OrderStatusProcessing:
		b.WriteString("\n⚙️ Your order is being prepared for shipment.")
	}

	b.WriteString("\n\nIs there anything else I can help you with?")

	return b.String()
}

func (f *formatter) ProductList(products []entity.Product, context string) string {
	if len(products) == 0 {
		return fmt.Sprintf("I couldn't find any products %s. Please try a different search.", context)
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("I found %d great product%s", len(products), pluralSuffix(len(products))))
	if context != "" {
		b.WriteString(fmt.Sprintf(" for %s", context))
	}
	b.WriteString(":\n\n")

	for i, product := range products {
		b.WriteString(fmt.Sprintf("**%d. %s**\n", i+1, product.Name))
		b.WriteString(fmt.Sprintf("   💰 $%.2f\n", product.Price))
		b.WriteString(fmt.Sprintf("   %s %.1f/5.0\n", ratingStars(product.Rating), product.Rating))

		if product.Description != "" {
			b.WriteString(fmt.Sprintf("   📝 %s\n", truncate(product.Description, descriptionLimit)))
		}

		b.WriteString("\n")
	}

	b.WriteString("Would you like more details about any of these products?")

	return b.String()
}

func (f *formatter) ProductRecommendations(products []entity.Product, category string) string {
	intro := "Based on your preferences, I recommend these products"
	if category != "" {
		intro += fmt.Sprintf(" in the %s category", category)
	}
	intro += ":\n\n"

	return f.ProductList(products, intro)
}

func (f *formatter) ReturnPolicy() string {
	return "**📦 Our Return Policy**\n\n" +
		"We want you to be completely satisfied with your purchase!\n\n" +
		"• ✅ **30-day money-back guarantee** on all products\n" +
		"• ✅ Items must be in **original condition** with tags attached\n" +
		"• ✅ Free return shipping on defective items\n" +
		"• ✅ Refunds processed within **5-7 business days**\n\n" +
		"**To initiate a return:**\n" +
		"1. Go to 'My Orders' in your account\n" +
		"2. Select the order and click 'Return Item'\n" +
		"3. Choose your reason and print the return label\n" +
		"4. Ship the item back to us\n\n" +
		"Or contact our customer service team, and we'll help you through the process!\n\n" +
		"Do you need help with a specific return?"
}

func (f *formatter) ShippingInfo() string {
	return "**🚚 Shipping Information**\n\n" +
		"**Standard Shipping (5-7 business days):**\n" +
		"• FREE on orders over $50\n" +
		"• $5.99 on orders under $50\n\n" +
		"**Express Shipping (2-3 business days):**\n" +
		"• $15.00 flat rate\n\n" +
		"**Overnight Shipping (1 business day):**\n" +
		"• $25.00 flat rate\n\n" +
		"**International Shipping:**\n" +
		"• Available to 50+ countries\n" +
		"• Rates vary by destination\n" +
		"• Estimated delivery: 7-14 business days\n\n" +
		"📦 All orders come with tracking information sent to your email!\n\n" +
		"Need help with a specific order?"
}

func (f *formatter) PaymentMethods() string {
	return "**💳 Accepted Payment Methods**\n\n" +
		"We accept the following payment options:\n\n" +
		"**Credit/Debit Cards:**\n" +
		"• Visa\n" +
		"• Mastercard\n" +
		"• American Express\n" +
		"• Discover\n\n" +
		"**Digital Wallets:**\n" +
		"• PayPal\n" +
		"• Apple Pay\n" +
		"• Google Pay\n\n" +
		"🔒 All transactions are **secure and encrypted** for your protection.\n\n" +
		"We do NOT store your full credit card information.\n\n" +
		"Ready to make a purchase?"
}

func (f *formatter) Fallback() string {
	return "I'm not quite sure I understand. Could you rephrase that?\n\n" +
		"I can help you with:\n" +
		"• Tracking orders\n" +
		"• Finding products\n" +
		"• Shipping & return information\n" +
		"• General questions\n\n" +
		"Or type 'help' to see all my capabilities!"
}

func (f *formatter) Error() string {
	return "😓 I apologize, but I encountered an issue processing your request.\n\n" +
		"Please try again, or contact our customer service team at:\n" +
		"📧 support@ecommerce.com\n" +
		"📞 1-800-555-0123 (Mon-Fri, 8 AM - 8 PM EST)"
}

func statusEmoji(status entity.OrderStatus) string {
	switch status {
	case entity.OrderStatusPending:
		return "⏳"
	case entity.OrderStatusProcessing:
		return "⚙️"
	case entity.OrderStatusShipped:
		return "🚚"
	case entity.OrderStatusDelivered:
		return "✅"
	case entity.OrderStatusCancelled:
		return "❌"
	default:
		return "📦"
	}
}

func pluralSuffix(count int) string {
	if count > 1 {
		return "s"
	}
	return ""
}

func ratingStars(rating float64) string {
	count := int(rating)
	if count < 0 {
		count = 0
	}
	return strings.Repeat("⭐", count)
}

func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}

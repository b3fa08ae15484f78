// Package assistant implements the shopping assistant reply engine as a
// rule-based intent classifier over the catalog and order history.
package assistant

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Intent labels returned alongside each reply.
const (
	IntentGreeting   = "greeting"
	IntentTrack      = "track"
	IntentShipping   = "shipping"
	IntentReturn     = "return"
	IntentPayment    = "payment"
	IntentAbout      = "about"
	IntentSearch     = "search"
	IntentRecommend  = "recommend"
	IntentCategories = "categories"
	IntentOffers     = "offers"
	IntentGeneral    = "general"
)

const (
	defaultMaxResults = 5
	trackOrderLimit   = 3
)

var greetingPattern = regexp.MustCompile(`^(hi|hello|hey|namaste|hola|greetings)`)

// searchKeywords are stripped from the message to isolate the search term.
var searchKeywords = []string{"search", "find", "looking for", "show me", "need", "want"}

type ruleEngine struct {
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	maxResults  int
}

// NewRuleEngine creates the rule-based assistant.
func NewRuleEngine(productRepo repository.ProductRepository, orderRepo repository.OrderRepository, maxResults int) service.Assistant {
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	return &ruleEngine{
		productRepo: productRepo,
		orderRepo:   orderRepo,
		maxResults:  maxResults,
	}
}

// Reply classifies the message into an intent and produces the reply text.
func (e *ruleEngine) Reply(ctx context.Context, message string, userID *uuid.UUID, _ []entity.ChatMessage) (*service.AssistantReply, error) {
	intent := detectIntent(message)

	var content string
	var err error
	switch intent {
	case IntentGreeting:
		content = greetingReply
	case IntentTrack:
		content, err = e.trackReply(ctx, userID)
	case IntentShipping:
		content = shippingReply
	case IntentReturn:
		content = returnReply
	case IntentPayment:
		content = paymentReply
	case IntentAbout:
		content = aboutReply
	case IntentSearch:
		content, err = e.searchReply(ctx, message)
	case IntentRecommend:
		content, err = e.recommendReply(ctx)
	case IntentCategories:
		content = categoriesReply()
	case IntentOffers:
		content = offersReply
	default:
		content = generalReply
	}
	if err != nil {
		return nil, err
	}

	return &service.AssistantReply{Intent: intent, Content: content}, nil
}

// detectIntent maps a free-form message to one of the known intents.
// Order matters: earlier rules win.
func detectIntent(message string) string {
	lower := strings.ToLower(message)

	switch {
	case greetingPattern.MatchString(lower):
		return IntentGreeting
	case containsAny(lower, "track", "order status", "my order"):
		return IntentTrack
	case containsAny(lower, "ship", "deliver", "courier"):
		return IntentShipping
	case containsAny(lower, "return", "refund", "exchange"):
		return IntentReturn
	case containsAny(lower, "payment", "pay", "cod", "upi"):
		return IntentPayment
	case containsAny(lower, "about", "who are you"):
		return IntentAbout
	case containsAny(lower, "search", "find", "product", "looking for", "show me", "need"):
		return IntentSearch
	case containsAny(lower, "recommend", "bestseller", "trending", "popular", "suggest", "top"):
		return IntentRecommend
	case containsAny(lower, "categor", "type"):
		return IntentCategories
	case containsAny(lower, "offer", "discount", "sale", "deal"):
		return IntentOffers
	default:
		return IntentGeneral
	}
}

func containsAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}

	return false
}

// extractCategory returns the catalog category mentioned in the message, if any.
func extractCategory(message string) entity.Category {
	lower := strings.ToLower(message)
	for _, cat := range entity.Categories() {
		if strings.Contains(lower, strings.ToLower(cat.String())) {
			return cat
		}
	}
	// "home decor" without the accent should still match.
	if strings.Contains(lower, "home decor") {
		return entity.CategoryHomeDecor
	}

	return ""
}

// extractSearchTerm strips the leading search keyword from the message.
func extractSearchTerm(message string) string {
	lower := strings.ToLower(message)
	for _, keyword := range searchKeywords {
		if idx := strings.Index(lower, keyword); idx != -1 {
			return strings.TrimSpace(message[idx+len(keyword):])
		}
	}

	return strings.TrimSpace(message)
}

func (e *ruleEngine) trackReply(ctx context.Context, userID *uuid.UUID) (string, error) {
	if userID == nil {
		return "To track your orders, please log in to your account. You can view all order details on your profile page.", nil
	}

	orders, err := e.orderRepo.ListByUser(ctx, *userID)
	if err != nil {
		return "", errors.Wrap(err, "assistant failed to load orders")
	}
	if len(orders) == 0 {
		return "You don't have any orders yet. Start shopping and I'll help you track them!", nil
	}

	if len(orders) > trackOrderLimit {
		orders = orders[:trackOrderLimit]
	}

	var b strings.Builder
	b.WriteString("Here are your recent orders:\n\n")
	for i, order := range orders {
		shortID := order.ID.String()
		if len(shortID) > 6 {
			shortID = shortID[len(shortID)-6:]
		}
		fmt.Fprintf(&b, "%d. Order #%s\n", i+1, shortID)
		fmt.Fprintf(&b, "   Status: %s\n", order.Status)
		fmt.Fprintf(&b, "   Total: ₹%.2f\n", order.TotalPrice)
		fmt.Fprintf(&b, "   Date: %s\n\n", order.CreatedAt.Format("02/01/2006"))
	}
	b.WriteString("View all orders on your profile page!")

	return b.String(), nil
}

func (e *ruleEngine) searchReply(ctx context.Context, message string) (string, error) {
	filter := repository.ProductFilter{ApprovedOnly: true}
	if category := extractCategory(message); category != "" {
		filter.Category = category
	} else if term := extractSearchTerm(message); term != "" {
		filter.Search = term
	}

	products, err := e.productRepo.Search(ctx, filter)
	if err != nil {
		return "", errors.Wrap(err, "assistant failed to search products")
	}
	if len(products) > e.maxResults {
		products = products[:e.maxResults]
	}

	if len(products) == 0 {
		var b strings.Builder
		b.WriteString("Couldn't find products matching your search.\n\n")
		b.WriteString("Try browsing these categories:\n")
		b.WriteString("Handicrafts | Apparel | Jewelry | Home Décor | Accessories\n\n")
		b.WriteString("Or try searching with different keywords!")

		return b.String(), nil
	}

	plural := ""
	if len(products) > 1 {
		plural = "s"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d product%s for you!\n\n", len(products), plural)
	for i, p := range products {
		desc := p.Description
		if len(desc) > 100 {
			desc = desc[:100] + "..."
		}
		fmt.Fprintf(&b, "%d. %s\n", i+1, p.Name)
		fmt.Fprintf(&b, "   ₹%.2f\n", p.Price)
		fmt.Fprintf(&b, "   %s\n", desc)
		fmt.Fprintf(&b, "   %.1f stars | Stock: %d\n\n", p.Rating, p.Stock)
	}
	b.WriteString("Visit our shop page to see more details and add to cart!")

	return b.String(), nil
}

func (e *ruleEngine) recommendReply(ctx context.Context) (string, error) {
	featured, err := e.productRepo.Search(ctx, repository.ProductFilter{ApprovedOnly: true, FeaturedOnly: true})
	if err != nil {
		return "", errors.Wrap(err, "assistant failed to load featured products")
	}
	if len(featured) > e.maxResults {
		featured = featured[:e.maxResults]
	}

	if len(featured) == 0 {
		return "Check out our shop page for all our products!\n\nClick on any product to view details and add to cart!", nil
	}

	var b strings.Builder
	b.WriteString("Here are our top trending products:\n\n")
	for i, p := range featured {
		desc := p.Description
		if len(desc) > 80 {
			desc = desc[:80] + "..."
		}
		fmt.Fprintf(&b, "%d. %s\n", i+1, p.Name)
		fmt.Fprintf(&b, "   ₹%.2f | %.1f stars\n", p.Price, p.Rating)
		fmt.Fprintf(&b, "   %s\n\n", desc)
	}
	b.WriteString("Click on any product to view details and add to cart!")

	return b.String(), nil
}

func categoriesReply() string {
	var b strings.Builder
	b.WriteString("Browse our categories:\n\n")
	b.WriteString("Handicrafts - Traditional art pieces\n")
	b.WriteString("Apparel - Sarees, kurtas, and ethnic wear\n")
	b.WriteString("Jewelry - Beautiful traditional ornaments\n")
	b.WriteString("Home Décor - Enhance your living space\n")
	b.WriteString("Accessories - Complete your look\n\n")
	b.WriteString("Visit our shop page to explore each category!")

	return b.String()
}

const greetingReply = "Namaste! Welcome to Bazaar!\n\n" +
	"I'm your personal shopping assistant. I can help you:\n\n" +
	"- Search products\n- Get recommendations\n- Track orders\n- Learn about offers\n- Answer questions\n\n" +
	"What would you like to explore today?"

const shippingReply = "We offer FREE shipping across India for orders above ₹999!\n\n" +
	"Standard delivery: 5-7 business days\n" +
	"Express delivery: 2-3 days (₹99)\n\n" +
	"Track your order anytime from your profile page!"

const returnReply = "Easy returns policy:\n\n" +
	"7-day hassle-free returns\n" +
	"Items must be unused with original packaging\n" +
	"Refunds processed in 5-7 business days\n" +
	"Need help? Contact our support team!"

const paymentReply = "Payment options:\n\n" +
	"- UPI (PhonePe, GPay, Paytm)\n- Credit/Debit cards\n- Net banking\n- Cash on Delivery (COD)\n\n" +
	"All transactions are 100% secure!"

const aboutReply = "Welcome to Bazaar!\n\n" +
	"We celebrate India's finest artisans and craftspeople, bringing you:\n\n" +
	"- Authentic handicrafts\n- Traditional jewelry\n- Beautiful apparel\n- Exquisite home décor\n\n" +
	"Direct from local creators to your doorstep!"

const offersReply = "Current offers:\n\n" +
	"- Free shipping on orders above ₹999!\n" +
	"- Featured products have special prices\n" +
	"- Bulk discounts available on selected items\n\n" +
	"Shop now and save big!"

const generalReply = "I'm not sure about that, but I'm here to help!\n\n" +
	"I can assist you with:\n" +
	"- Searching products\n- Product recommendations\n- Shipping information\n- Return policy\n- Payment options\n- Order tracking\n\n" +
	"What would you like to know?"

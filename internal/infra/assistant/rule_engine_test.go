package assistant

import (
	"context"
	"testing"

	"bazaar/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectIntent(t *testing.T) {
	tests := []struct {
		message string
		want    string
	}{
		{"Hello there", IntentGreeting},
		{"namaste", IntentGreeting},
		{"hey, what's up", IntentGreeting},
		{"where is my order", IntentTrack},
		{"track my package", IntentTrack},
		{"what is the order status", IntentTrack},
		{"how long does delivery take", IntentShipping},
		{"do you ship to Mumbai", IntentShipping},
		{"I want a refund", IntentReturn},
		{"can I exchange this", IntentReturn},
		{"do you accept UPI", IntentPayment},
		{"is cod available", IntentPayment},
		{"tell me about this site", IntentAbout},
		{"who are you", IntentAbout},
		{"show me jewelry", IntentSearch},
		{"looking for a gift", IntentSearch},
		{"recommend something", IntentRecommend},
		{"what's trending", IntentRecommend},
		{"what categories do you have", IntentCategories},
		{"any discounts today", IntentOffers},
		{"xyzzy", IntentGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			assert.Equal(t, tt.want, detectIntent(tt.message))
		})
	}
}

func TestExtractCategory(t *testing.T) {
	assert.Equal(t, entity.CategoryJewelry, extractCategory("show me some Jewelry please"))
	assert.Equal(t, entity.CategoryHomeDecor, extractCategory("need home decor items"))
	assert.Equal(t, entity.CategoryApparel, extractCategory("looking for apparel"))
	assert.Equal(t, entity.Category(""), extractCategory("something else entirely"))
}

func TestExtractSearchTerm(t *testing.T) {
	assert.Equal(t, "blue saree", extractSearchTerm("show me blue saree"))
	assert.Equal(t, "a wooden elephant", extractSearchTerm("I am looking for a wooden elephant"))
	assert.Equal(t, "plain text", extractSearchTerm("plain text"))
}

func TestRuleEngine_StaticReplies(t *testing.T) {
	engine := NewRuleEngine(nil, nil, 5)

	tests := []struct {
		message    string
		wantIntent string
	}{
		{"hello", IntentGreeting},
		{"shipping cost?", IntentShipping},
		{"return policy", IntentReturn},
		{"payment methods", IntentPayment},
		{"categories please", IntentCategories},
		{"any offers", IntentOffers},
		{"qwerty", IntentGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			reply, err := engine.Reply(context.Background(), tt.message, nil, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.wantIntent, reply.Intent)
			assert.NotEmpty(t, reply.Content)
		})
	}
}

func TestRuleEngine_TrackWithoutLogin(t *testing.T) {
	engine := NewRuleEngine(nil, nil, 5)

	reply, err := engine.Reply(context.Background(), "track my order", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, IntentTrack, reply.Intent)
	assert.Contains(t, reply.Content, "log in")
}

package intent

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/juggernaut7777/kofa/internal/bot/model"
)

func TestRecognizeClassification(t *testing.T) {
	r := NewRecognizer()

	tests := []struct {
		text   string
		intent model.Intent
	}{
		{"hi", model.IntentGreeting},
		{"Hello!", model.IntentGreeting},
		{"good morning", model.IntentGreeting},
		{"how far", model.IntentGreeting},
		{"help", model.IntentHelp},
		{"what can you do", model.IntentHelp},
		{"how much is red shoes", model.IntentPriceInquiry},
		{"price of the leather bag", model.IntentPriceInquiry},
		{"do you have sneakers", model.IntentAvailabilityCheck},
		{"is the gold chain still available", model.IntentAvailabilityCheck},
		{"any shirts in stock?", model.IntentAvailabilityCheck},
		{"I want to buy the white canvas", model.IntentPurchase},
		{"yes", model.IntentPurchase},
		{"proceed", model.IntentPurchase},
		{"order 2 sneakers", model.IntentPurchase},
		{"where is my order", model.IntentOrderStatus},
		{"order status please", model.IntentOrderStatus},
		{"the weather is nice today", model.IntentUnknown},
		{"", model.IntentUnknown},
	}

	for _, tc := range tests {
		got, _ := r.Recognize(tc.text)
		require.Equal(t, tc.intent, got, "text %q", tc.text)
	}
}

// Every input maps to exactly one member of the closed intent set.
func TestRecognizeTotality(t *testing.T) {
	r := NewRecognizer()

	known := map[model.Intent]struct{}{}
	for _, it := range model.Intents() {
		known[it] = struct{}{}
	}

	inputs := []string{
		"", "   ", "!!!", "asdf qwerty", "ja mata ne", "12345",
		"buy buy buy", "hello help buy price stock order",
		"\t\nweird\x00input", "😀🔥",
	}
	for _, in := range inputs {
		got, _ := r.Recognize(in)
		_, ok := known[got]
		require.True(t, ok, "input %q produced unknown intent %q", in, got)
	}
}

// When multiple keyword sets match, the documented priority order wins:
// PURCHASE > AVAILABILITY_CHECK > PRICE_INQUIRY > ORDER_STATUS > HELP > GREETING.
func TestRecognizePriority(t *testing.T) {
	r := NewRecognizer()

	tests := []struct {
		text   string
		intent model.Intent
	}{
		{"hello I want to buy shoes, how much?", model.IntentPurchase},
		{"do you have shoes and how much is it", model.IntentAvailabilityCheck},
		{"hi, how much is the bag", model.IntentPriceInquiry},
		{"hello, where is my order", model.IntentOrderStatus},
		{"hi, I need help", model.IntentHelp},
	}
	for _, tc := range tests {
		got, _ := r.Recognize(tc.text)
		require.Equal(t, tc.intent, got, "text %q", tc.text)
	}
}

func TestExtractProductPhrase(t *testing.T) {
	r := NewRecognizer()

	tests := []struct {
		text   string
		phrase string
	}{
		{"how much is red shoes", "red shoes"},
		{"do you have black leather bag in stock", "black leather bag"},
		{"I want to buy the gold chain", "gold chain"},
		{"buy", ""},
		{"yes proceed", ""},
		{"hello", ""},
	}
	for _, tc := range tests {
		_, got := r.Recognize(tc.text)
		require.Equal(t, tc.phrase, got, "text %q", tc.text)
	}
}

// Package intent classifies raw customer messages into a closed set of
// intents using keyword and phrase matching, and extracts the candidate
// product phrase left over once trigger words are removed.
package intent

import (
	"strings"
	"unicode"

	"github.com/juggernaut7777/kofa/internal/bot/model"
)

// Keyword sets. Single words match whole tokens, phrases match with word
// boundaries against the normalized message.
var (
	greetingTokens  = []string{"hi", "hello", "hey", "howdy", "hiya", "greetings"}
	greetingPhrases = []string{"good morning", "good afternoon", "good evening", "how far"}

	helpTokens  = []string{"help", "menu", "options"}
	helpPhrases = []string{"what can you do", "how does this work", "what do you sell"}

	purchaseTokens  = []string{"buy", "purchase", "pay", "checkout", "proceed", "yes", "want", "take"}
	purchasePhrases = []string{"i want", "i'll take", "add to cart", "send payment link"}

	priceTokens  = []string{"price", "prices", "cost", "costs"}
	pricePhrases = []string{"how much"}

	availabilityTokens  = []string{"available", "availability", "stock"}
	availabilityPhrases = []string{"in stock", "do you have", "do u have", "have you got", "still available"}

	orderStatusPhrases = []string{"order status", "my order", "where is my order", "track my order", "status of my order"}
)

// stopwords are dropped during product-phrase extraction alongside the
// intent trigger words above.
var stopwords = map[string]struct{}{}

func init() {
	fillers := []string{
		"a", "an", "the", "i", "im", "i'm", "ill", "i'll", "is", "are", "am", "was", "do", "does", "did",
		"you", "u", "your", "my", "me", "we", "it", "its", "this", "that", "these",
		"those", "there", "what", "whats", "when", "where", "which", "who", "how",
		"much", "many", "can", "could", "would", "should", "will", "please", "abeg",
		"to", "for", "of", "in", "on", "at", "with", "and", "or", "some", "any",
		"still", "have", "has", "got", "get", "need", "needs", "looking", "look",
		"find", "show", "give", "sell", "selling", "like", "one", "no", "not",
		"good", "morning", "afternoon", "evening", "far", "status", "track",
		"order", "thanks", "thank",
	}
	for _, w := range fillers {
		stopwords[w] = struct{}{}
	}
	for _, set := range [][]string{greetingTokens, helpTokens, purchaseTokens, priceTokens, availabilityTokens} {
		for _, w := range set {
			stopwords[w] = struct{}{}
		}
	}
}

// Recognizer is a stateless keyword classifier.
type Recognizer struct{}

func NewRecognizer() *Recognizer {
	return &Recognizer{}
}

// Recognize classifies the message and extracts the remaining product
// phrase (empty when nothing is left after stripping trigger words).
//
// When several keyword sets match, a fixed priority order applies:
// PURCHASE > AVAILABILITY_CHECK > PRICE_INQUIRY > ORDER_STATUS > HELP >
// GREETING. The lone exception is the bare word "order", which only counts
// as a purchase verb when the message is not an order-status phrase.
func (r *Recognizer) Recognize(text string) (model.Intent, string) {
	norm := normalize(text)
	tokens := strings.Fields(norm)
	tokenSet := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		tokenSet[t] = struct{}{}
	}

	hasToken := func(words []string) bool {
		for _, w := range words {
			if _, ok := tokenSet[w]; ok {
				return true
			}
		}
		return false
	}
	padded := " " + norm + " "
	hasPhrase := func(phrases []string) bool {
		for _, p := range phrases {
			if strings.Contains(padded, " "+p+" ") {
				return true
			}
		}
		return false
	}

	orderStatus := hasPhrase(orderStatusPhrases)
	_, hasOrder := tokenSet["order"]

	var it model.Intent
	switch {
	case hasToken(purchaseTokens) || hasPhrase(purchasePhrases) || (hasOrder && !orderStatus):
		it = model.IntentPurchase
	case hasToken(availabilityTokens) || hasPhrase(availabilityPhrases):
		it = model.IntentAvailabilityCheck
	case hasToken(priceTokens) || hasPhrase(pricePhrases):
		it = model.IntentPriceInquiry
	case orderStatus:
		it = model.IntentOrderStatus
	case hasToken(helpTokens) || hasPhrase(helpPhrases):
		it = model.IntentHelp
	case hasToken(greetingTokens) || hasPhrase(greetingPhrases):
		it = model.IntentGreeting
	default:
		it = model.IntentUnknown
	}

	return it, extractPhrase(tokens)
}

// extractPhrase drops stopwords and trigger words, returning whatever
// remains as the candidate product description.
func extractPhrase(tokens []string) string {
	var kept []string
	for _, t := range tokens {
		if _, drop := stopwords[t]; drop {
			continue
		}
		kept = append(kept, t)
	}
	return strings.Join(kept, " ")
}

// normalize lower-cases the input and maps punctuation to spaces, keeping
// hyphens and apostrophes so tokens like "t-shirt" and "i'll" survive.
func normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '\'':
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

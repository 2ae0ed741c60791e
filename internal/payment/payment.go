// Package payment generates checkout links and formats naira amounts.
// The real gateway lives behind LinkGenerator; the bot only ever sees an
// opaque link or a failure.
package payment

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// LinkExpiryMinutes is how long a generated checkout link stays valid.
const LinkExpiryMinutes = 15

// LinkGenerator produces a payment link for an order, or an error when the
// gateway rejects or is unreachable.
type LinkGenerator interface {
	GenerateLink(ctx context.Context, orderID string, amountNGN float64, customerPhone, description string) (string, error)
}

// MockGenerator is a stand-in gateway that mints deterministic links.
type MockGenerator struct {
	BaseURL string
}

func NewMockGenerator(baseURL string) *MockGenerator {
	if baseURL == "" {
		baseURL = "https://pay.kofa.shop"
	}
	return &MockGenerator{BaseURL: strings.TrimRight(baseURL, "/")}
}

func (g *MockGenerator) GenerateLink(_ context.Context, orderID string, amountNGN float64, _ string, _ string) (string, error) {
	if orderID == "" {
		return "", fmt.Errorf("order id is required")
	}
	if amountNGN <= 0 {
		return "", fmt.Errorf("amount must be positive")
	}
	return fmt.Sprintf("%s/checkout/%s?amount=%d", g.BaseURL, orderID, int64(amountNGN)), nil
}

var _ LinkGenerator = (*MockGenerator)(nil)

// ChatOrderID builds the short order reference used for in-chat purchases:
// the last four characters of the customer id plus the first four of the
// product id.
func ChatOrderID(userID, productID string) string {
	return fmt.Sprintf("ORD-%s-%s", tail(userID, 4), head(productID, 4))
}

// NewOrderID mints a unique order id for API-created orders.
func NewOrderID() string {
	return "order-" + uuid.NewString()
}

// FormatNaira renders an amount like ₦45,000 (kobo shown only when present).
func FormatNaira(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	whole := int64(amount)
	frac := amount - float64(whole)

	digits := strconv.FormatInt(whole, 10)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}

	out := "₦" + b.String()
	if frac > 0.004 {
		out += strings.TrimPrefix(strconv.FormatFloat(frac, 'f', 2, 64), "0")
	}
	if neg {
		out = "-" + out
	}
	return out
}

func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}

func head(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

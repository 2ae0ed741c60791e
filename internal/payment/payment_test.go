package payment

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatNaira(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "₦0"},
		{500, "₦500"},
		{5000, "₦5,000"},
		{45000, "₦45,000"},
		{1234567, "₦1,234,567"},
		{1500.5, "₦1,500.50"},
		{-8000, "-₦8,000"},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, FormatNaira(tc.amount), "amount %v", tc.amount)
	}
}

func TestChatOrderID(t *testing.T) {
	require.Equal(t, "ORD-5678-prod", ChatOrderID("+2348012345678", "prod-001"))
	require.Equal(t, "ORD-u1-pr", ChatOrderID("u1", "pr"))
}

func TestMockGeneratorLink(t *testing.T) {
	g := NewMockGenerator("")

	link, err := g.GenerateLink(context.Background(), "ORD-1234-prod", 45000, "+2348012345678", "Purchase Nike Air Max Red")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(link, "https://pay.kofa.shop/checkout/ORD-1234-prod"))
	require.Contains(t, link, "amount=45000")
}

func TestMockGeneratorRejectsBadInput(t *testing.T) {
	g := NewMockGenerator("https://pay.example.com/")

	_, err := g.GenerateLink(context.Background(), "", 100, "u", "d")
	require.Error(t, err)

	_, err = g.GenerateLink(context.Background(), "ord", 0, "u", "d")
	require.Error(t, err)
}

func TestNewOrderIDUnique(t *testing.T) {
	a := NewOrderID()
	b := NewOrderID()
	require.NotEqual(t, a, b)
	require.True(t, strings.HasPrefix(a, "order-"))
}

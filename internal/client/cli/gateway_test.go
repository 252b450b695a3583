package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvpwelfare/portal/internal/client/services"
)

func order() services.OrderParams {
	return services.OrderParams{
		OrderID:     "order_123",
		Amount:      50050,
		Currency:    "INR",
		Merchant:    "NVP Welfare Foundation",
		Description: "Donation",
		Prefill:     services.Prefill{Name: "Asha", Email: "asha@example.org", Contact: "78776"},
	}
}

func TestTerminalGateway_Paid(t *testing.T) {
	var out bytes.Buffer
	g := NewTerminalGateway(bufio.NewReader(strings.NewReader("pay_9\nsig_9\n")), &out, "https://checkout.razorpay.com/v1/checkout.js", "rzp_test")

	res, err := g.Open(context.Background(), order())
	require.NoError(t, err)
	assert.Equal(t, services.PaymentResult{OrderID: "order_123", PaymentID: "pay_9", Signature: "sig_9"}, res)
	assert.Contains(t, out.String(), `Pay 500.50 INR to NVP Welfare Foundation for "Donation"`)
	assert.Contains(t, out.String(), "rzp_test")
}

func TestTerminalGateway_EmptyIDCancels(t *testing.T) {
	var out bytes.Buffer
	g := NewTerminalGateway(bufio.NewReader(strings.NewReader("\n")), &out, "", "")

	_, err := g.Open(context.Background(), order())
	assert.ErrorIs(t, err, services.ErrPaymentCancelled)
}

func TestTerminalGateway_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := NewTerminalGateway(bufio.NewReader(strings.NewReader("pay_1\n")), &bytes.Buffer{}, "", "")

	_, err := g.Open(ctx, order())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFormatPaise(t *testing.T) {
	assert.Equal(t, "500.50", formatPaise(50050))
	assert.Equal(t, "100.00", formatPaise(10000))
	assert.Equal(t, "0.05", formatPaise(5))
}

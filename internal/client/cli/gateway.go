package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/nvpwelfare/portal/internal/client/services"
)

// TerminalGateway is a services.PaymentGateway for the console: it shows
// the order to pay on the hosted checkout and reads back the payment id and
// signature. An empty payment id cancels.
type TerminalGateway struct {
	reader      *bufio.Reader
	out         io.Writer
	checkoutURL string
	keyID       string
}

// NewTerminalGateway reads from r, which should be the reader the REPL uses
// so no buffered input is lost between them.
func NewTerminalGateway(r *bufio.Reader, w io.Writer, checkoutURL, keyID string) *TerminalGateway {
	return &TerminalGateway{reader: r, out: w, checkoutURL: checkoutURL, keyID: keyID}
}

func (g *TerminalGateway) Open(ctx context.Context, p services.OrderParams) (services.PaymentResult, error) {
	if err := ctx.Err(); err != nil {
		return services.PaymentResult{}, err
	}

	fmt.Fprintf(g.out, "Pay %s %s to %s for %q\n", formatPaise(p.Amount), p.Currency, p.Merchant, p.Description)
	fmt.Fprintf(g.out, "  order:    %s\n", p.OrderID)
	if g.keyID != "" {
		fmt.Fprintf(g.out, "  key:      %s\n", g.keyID)
	}
	if g.checkoutURL != "" {
		fmt.Fprintf(g.out, "  checkout: %s\n", g.checkoutURL)
	}
	fmt.Fprintf(g.out, "  prefill:  %s <%s> %s\n", p.Prefill.Name, p.Prefill.Email, p.Prefill.Contact)

	paymentID, err := getSimpleText(g.reader, "Payment id (leave empty to cancel)", g.out)
	if err != nil {
		return services.PaymentResult{}, err
	}
	if paymentID == "" {
		return services.PaymentResult{}, services.ErrPaymentCancelled
	}
	signature, err := getSimpleText(g.reader, "Payment signature (optional)", g.out)
	if err != nil {
		return services.PaymentResult{}, err
	}
	return services.PaymentResult{OrderID: p.OrderID, PaymentID: paymentID, Signature: signature}, nil
}

// formatPaise prints an amount in paise as rupees, e.g. 50050 -> "500.50".
func formatPaise(paise int64) string {
	rupees, rest := paise/100, paise%100
	if rest < 0 {
		rest = -rest
	}
	return strconv.FormatInt(rupees, 10) + "." + fmt.Sprintf("%02d", rest)
}

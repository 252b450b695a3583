package services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/nvpwelfare/portal/internal/client/client"
	"github.com/nvpwelfare/portal/internal/client/models"
	"github.com/nvpwelfare/portal/internal/logging"
)

// MinDonationAmount is the smallest accepted donation in rupees.
const MinDonationAmount = 100

var (
	ErrInvalidDonation  = errors.New("invalid donation")
	ErrPaymentCancelled = errors.New("payment cancelled")
)

// DonationForm is what the donor fills in. Amount is in rupees.
type DonationForm struct {
	Name       string
	Email      string
	Phone      string
	Amount     float64
	Purpose    string
	CampaignID string
}

// Validate checks the form before any network call.
func (f DonationForm) Validate() error {
	switch {
	case strings.TrimSpace(f.Name) == "":
		return fmt.Errorf("%w: name is required", ErrInvalidDonation)
	case strings.TrimSpace(f.Email) == "":
		return fmt.Errorf("%w: email is required", ErrInvalidDonation)
	case strings.TrimSpace(f.Phone) == "":
		return fmt.Errorf("%w: phone is required", ErrInvalidDonation)
	case f.Amount < MinDonationAmount:
		return fmt.Errorf("%w: minimum amount is %d", ErrInvalidDonation, MinDonationAmount)
	}
	if _, err := mail.ParseAddress(f.Email); err != nil {
		return fmt.Errorf("%w: email %q is not valid", ErrInvalidDonation, f.Email)
	}
	return nil
}

// Prefill is handed to the checkout so the donor does not retype contact
// details.
type Prefill struct {
	Name    string
	Email   string
	Contact string
}

// OrderParams opens a checkout for one backend order. Amount is in paise.
type OrderParams struct {
	OrderID     string
	Amount      int64
	Currency    string
	Merchant    string
	Description string
	Prefill     Prefill
}

// PaymentResult is what the checkout reports once the donor has paid.
type PaymentResult struct {
	OrderID   string
	PaymentID string
	Signature string
}

// PaymentGateway is the hosted checkout. Open blocks until the donor pays or
// gives up; giving up is reported as ErrPaymentCancelled.
type PaymentGateway interface {
	Open(ctx context.Context, p OrderParams) (PaymentResult, error)
}

// DonationService runs the checkout flow and lists past donations.
type DonationService interface {
	Donate(ctx context.Context, form DonationForm) (models.PaymentReceipt, error)
	History(ctx context.Context) ([]models.Donation, error)
}

type donationService struct {
	client   client.Client
	gateway  PaymentGateway
	merchant string
	log      logging.Logger
}

// NewDonationService wires the backend client to a checkout gateway. merchant
// is the name shown on the checkout page.
func NewDonationService(c client.Client, gw PaymentGateway, merchant string, log logging.Logger) DonationService {
	return &donationService{client: c, gateway: gw, merchant: merchant, log: log.With("component", "donation")}
}

// Donate validates the form, opens a backend order, hands it to the gateway
// and confirms the payment with the backend.
func (d *donationService) Donate(ctx context.Context, form DonationForm) (models.PaymentReceipt, error) {
	if err := form.Validate(); err != nil {
		return models.PaymentReceipt{}, err
	}

	order, err := d.client.CreateDonationOrder(ctx, models.DonationRequest{
		DonorName:  form.Name,
		DonorEmail: form.Email,
		DonorPhone: form.Phone,
		Amount:     form.Amount,
		Purpose:    form.Purpose,
		CampaignID: form.CampaignID,
	})
	if err != nil {
		return models.PaymentReceipt{}, fmt.Errorf("create order: %w", err)
	}
	d.log.Info(ctx, "donation order created", "order_id", order.OrderID, "donation_id", order.DonationID)

	description := form.Purpose
	if description == "" {
		description = "General Donation"
	}
	res, err := d.gateway.Open(ctx, OrderParams{
		OrderID:     order.OrderID,
		Amount:      order.Amount,
		Currency:    order.Currency,
		Merchant:    d.merchant,
		Description: description,
		Prefill:     Prefill{Name: form.Name, Email: form.Email, Contact: form.Phone},
	})
	if err != nil {
		if errors.Is(err, ErrPaymentCancelled) {
			d.log.Info(ctx, "checkout dismissed", "order_id", order.OrderID)
			return models.PaymentReceipt{}, err
		}
		return models.PaymentReceipt{}, fmt.Errorf("checkout: %w", err)
	}
	if res.PaymentID == "" {
		return models.PaymentReceipt{}, fmt.Errorf("checkout: %w", ErrPaymentCancelled)
	}

	receipt, err := d.client.VerifyPayment(ctx, models.PaymentConfirmation{OrderID: order.OrderID, PaymentID: res.PaymentID})
	if err != nil {
		d.log.Error(ctx, "payment verification failed", "order_id", order.OrderID, "payment_id", res.PaymentID, "error", err)
		return models.PaymentReceipt{}, fmt.Errorf("verify payment: %w", err)
	}
	d.log.Info(ctx, "donation completed", "order_id", order.OrderID, "receipt_number", receipt.ReceiptNumber)
	return receipt, nil
}

func (d *donationService) History(ctx context.Context) ([]models.Donation, error) {
	return d.client.ListDonations(ctx)
}

package client

import (
	"context"

	"github.com/nvpwelfare/portal/internal/client/models"
)

// Client is the backend contract used by the services.
type Client interface {
	// SetToken attaches the bearer credential to subsequent requests.
	SetToken(token string)
	// ClearToken detaches the bearer credential.
	ClearToken()

	Login(ctx context.Context, email, password string) (models.Session, error)
	Register(ctx context.Context, req models.RegisterRequest) (models.Session, error)
	Me(ctx context.Context) (models.Principal, error)

	Stats(ctx context.Context) (models.Stats, error)

	ListDonations(ctx context.Context) ([]models.Donation, error)
	CreateDonationOrder(ctx context.Context, req models.DonationRequest) (models.DonationOrder, error)
	VerifyPayment(ctx context.Context, c models.PaymentConfirmation) (models.PaymentReceipt, error)

	ListCertificates(ctx context.Context) ([]models.Certificate, error)
	CreateCertificate(ctx context.Context, req models.NewCertificate) (string, error)
	ListReceipts(ctx context.Context) ([]models.Receipt, error)
	CreateReceipt(ctx context.Context, req models.NewReceipt) (string, error)

	ListMemberUsers(ctx context.Context) ([]models.Principal, error)
	ApproveUser(ctx context.Context, userID string) error
	RejectUser(ctx context.Context, userID string) error

	ListCampaigns(ctx context.Context) ([]models.Campaign, error)
	ListEvents(ctx context.Context) ([]models.Event, error)
	ListNews(ctx context.Context) ([]models.News, error)
	ListActivities(ctx context.Context) ([]models.Activity, error)
	// SubmitEnquiry returns the backend's acknowledgement message.
	SubmitEnquiry(ctx context.Context, e models.Enquiry) (string, error)
}

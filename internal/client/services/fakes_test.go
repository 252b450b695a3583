package services

import (
	"context"
	"database/sql"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nvpwelfare/portal/internal/client/client"
	"github.com/nvpwelfare/portal/internal/client/models"
	"github.com/nvpwelfare/portal/internal/client/repositories/metadata"
)

// ---- helpers ----

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := client.OpenState(context.Background(), filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func storeToken(t *testing.T, db *sql.DB, token string) {
	t.Helper()
	require.NoError(t, metadata.NewSQLiteRepository(db).Set(context.Background(), metadata.KeyToken, []byte(token)))
}

func storedToken(t *testing.T, db *sql.DB) []byte {
	t.Helper()
	v, err := metadata.NewSQLiteRepository(db).Get(context.Background(), metadata.KeyToken)
	require.NoError(t, err)
	return v
}

// ---- fake client ----

// fakeClient implements client.Client for service tests. Methods a test does
// not configure fall through to the embedded nil interface and panic.
type fakeClient struct {
	client.Client

	mu    sync.Mutex
	token string

	LoginSession models.Session
	LoginErr     error
	LoginCalls   int

	RegisterSession models.Session
	RegisterErr     error
	LastRegister    models.RegisterRequest

	MePrincipal models.Principal
	MeErr       error
	MeGate      chan struct{}
	MeCalls     int
	MeToken     string

	Order        models.DonationOrder
	OrderErr     error
	LastOrderReq models.DonationRequest

	PaymentReceipt   models.PaymentReceipt
	VerifyErr        error
	LastConfirmation *models.PaymentConfirmation

	Certificates []models.Certificate
	CertErr      error
	Receipts     []models.Receipt
	ReceiptErr   error
	Donations    []models.Donation
	DonationsErr error

	IssuedNumber  string
	IssueErr      error
	LastNewCert   *models.NewCertificate
	LastNewRcpt   *models.NewReceipt
	StatsResult   models.Stats
	StatsErr      error
	Members       []models.Principal
	MembersErr    error
	UserActionErr error
	Approved      []string
	Rejected      []string

	Campaigns   []models.Campaign
	Events      []models.Event
	NewsItems   []models.News
	Activities  []models.Activity
	ContentErr  error
	EnquiryAck  string
	EnquiryErr  error
	LastEnquiry *models.Enquiry
}

func (f *fakeClient) SetToken(token string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.token = token
}

func (f *fakeClient) ClearToken() { f.SetToken("") }

func (f *fakeClient) Token() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.token
}

func (f *fakeClient) Login(_ context.Context, _, _ string) (models.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LoginCalls++
	return f.LoginSession, f.LoginErr
}

func (f *fakeClient) Register(_ context.Context, req models.RegisterRequest) (models.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LastRegister = req
	return f.RegisterSession, f.RegisterErr
}

func (f *fakeClient) Me(ctx context.Context) (models.Principal, error) {
	f.mu.Lock()
	f.MeCalls++
	f.MeToken = f.token
	gate := f.MeGate
	f.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return models.Principal{}, ctx.Err()
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	return f.MePrincipal, f.MeErr
}

func (f *fakeClient) meCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.MeCalls
}

func (f *fakeClient) CreateDonationOrder(_ context.Context, req models.DonationRequest) (models.DonationOrder, error) {
	f.LastOrderReq = req
	return f.Order, f.OrderErr
}

func (f *fakeClient) VerifyPayment(_ context.Context, c models.PaymentConfirmation) (models.PaymentReceipt, error) {
	f.LastConfirmation = &c
	return f.PaymentReceipt, f.VerifyErr
}

func (f *fakeClient) ListCertificates(context.Context) ([]models.Certificate, error) {
	return f.Certificates, f.CertErr
}

func (f *fakeClient) ListReceipts(context.Context) ([]models.Receipt, error) {
	return f.Receipts, f.ReceiptErr
}

func (f *fakeClient) ListDonations(context.Context) ([]models.Donation, error) {
	return f.Donations, f.DonationsErr
}

func (f *fakeClient) CreateCertificate(_ context.Context, req models.NewCertificate) (string, error) {
	f.LastNewCert = &req
	return f.IssuedNumber, f.IssueErr
}

func (f *fakeClient) CreateReceipt(_ context.Context, req models.NewReceipt) (string, error) {
	f.LastNewRcpt = &req
	return f.IssuedNumber, f.IssueErr
}

func (f *fakeClient) Stats(context.Context) (models.Stats, error) {
	return f.StatsResult, f.StatsErr
}

func (f *fakeClient) ListMemberUsers(context.Context) ([]models.Principal, error) {
	return f.Members, f.MembersErr
}

func (f *fakeClient) ApproveUser(_ context.Context, id string) error {
	if f.UserActionErr != nil {
		return f.UserActionErr
	}
	f.Approved = append(f.Approved, id)
	return nil
}

func (f *fakeClient) RejectUser(_ context.Context, id string) error {
	if f.UserActionErr != nil {
		return f.UserActionErr
	}
	f.Rejected = append(f.Rejected, id)
	return nil
}

func (f *fakeClient) ListCampaigns(context.Context) ([]models.Campaign, error) {
	return f.Campaigns, f.ContentErr
}

func (f *fakeClient) ListEvents(context.Context) ([]models.Event, error) {
	return f.Events, f.ContentErr
}

func (f *fakeClient) ListNews(context.Context) ([]models.News, error) {
	return f.NewsItems, f.ContentErr
}

func (f *fakeClient) ListActivities(context.Context) ([]models.Activity, error) {
	return f.Activities, f.ContentErr
}

func (f *fakeClient) SubmitEnquiry(_ context.Context, e models.Enquiry) (string, error) {
	f.LastEnquiry = &e
	return f.EnquiryAck, f.EnquiryErr
}

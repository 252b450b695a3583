package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nvpwelfare/portal/internal/client/models"
	"github.com/nvpwelfare/portal/internal/timex"
)

// RequestIDHeader is sent with every outgoing request.
const RequestIDHeader = "X-Request-ID"

const defaultTimeout = 15 * time.Second

// HTTPClient implements Client over the backend's REST/JSON API. It is safe
// for concurrent use.
type HTTPClient struct {
	baseURL string
	http    *http.Client

	mu    sync.RWMutex
	token string
}

type Option func(*HTTPClient)

// WithTimeout sets the per-request timeout of the default *http.Client.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// NewHTTPClient builds a client for baseURL, e.g. "https://nvpwelfare.in/api".
func NewHTTPClient(baseURL string, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse backend url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("backend url %q: scheme must be http or https", baseURL)
	}

	c := &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *HTTPClient) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *HTTPClient) ClearToken() {
	c.SetToken("")
}

func (c *HTTPClient) bearer() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// userPayload is the user object as the backend serialises it. Login and
// register responses omit is_active, so it stays a pointer until the caller
// picks the default.
type userPayload struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Phone     string          `json:"phone"`
	Role      string          `json:"role"`
	IsActive  *bool           `json:"is_active"`
	CreatedAt timex.Timestamp `json:"created_at"`
}

func (u userPayload) principal(activeByDefault bool) models.Principal {
	active := activeByDefault
	if u.IsActive != nil {
		active = *u.IsActive
	}
	return models.Principal{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Role:      models.NormalizeRole(u.Role),
		IsActive:  active,
		CreatedAt: u.CreatedAt,
	}
}

type authPayload struct {
	Token string      `json:"token"`
	User  userPayload `json:"user"`
}

func (a authPayload) session(activeByDefault bool) (models.Session, error) {
	if a.Token == "" || a.User.ID == "" {
		return models.Session{}, fmt.Errorf("%w: auth response without token or user", ErrMalformedResponse)
	}
	return models.Session{Token: a.Token, Principal: a.User.principal(activeByDefault)}, nil
}

// Login exchanges credentials for a session. The backend refuses inactive
// accounts with 403, so a user object without is_active is active.
func (c *HTTPClient) Login(ctx context.Context, email, password string) (models.Session, error) {
	var resp authPayload
	err := c.do(ctx, http.MethodPost, "/auth/login", models.Credentials{Email: email, Password: password}, &resp)
	if err != nil {
		return models.Session{}, err
	}
	return resp.session(true)
}

// Register creates a member account. New accounts await approval, so a user
// object without is_active is inactive.
func (c *HTTPClient) Register(ctx context.Context, req models.RegisterRequest) (models.Session, error) {
	var resp authPayload
	if err := c.do(ctx, http.MethodPost, "/auth/register", req, &resp); err != nil {
		return models.Session{}, err
	}
	return resp.session(false)
}

func (c *HTTPClient) Me(ctx context.Context) (models.Principal, error) {
	var u userPayload
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &u); err != nil {
		return models.Principal{}, err
	}
	if u.ID == "" {
		return models.Principal{}, fmt.Errorf("%w: identity without id", ErrMalformedResponse)
	}
	return u.principal(true), nil
}

func (c *HTTPClient) Stats(ctx context.Context) (models.Stats, error) {
	var s models.Stats
	err := c.do(ctx, http.MethodGet, "/stats", nil, &s)
	return s, err
}

func (c *HTTPClient) ListDonations(ctx context.Context) ([]models.Donation, error) {
	var out []models.Donation
	if err := c.do(ctx, http.MethodGet, "/donations", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) CreateDonationOrder(ctx context.Context, req models.DonationRequest) (models.DonationOrder, error) {
	var o models.DonationOrder
	if err := c.do(ctx, http.MethodPost, "/donations/create-order", req, &o); err != nil {
		return models.DonationOrder{}, err
	}
	if o.OrderID == "" {
		return models.DonationOrder{}, fmt.Errorf("%w: order without id", ErrMalformedResponse)
	}
	return o, nil
}

func (c *HTTPClient) VerifyPayment(ctx context.Context, pc models.PaymentConfirmation) (models.PaymentReceipt, error) {
	var r models.PaymentReceipt
	err := c.do(ctx, http.MethodPost, "/donations/verify-payment", pc, &r)
	return r, err
}

func (c *HTTPClient) ListCertificates(ctx context.Context) ([]models.Certificate, error) {
	var out []models.Certificate
	if err := c.do(ctx, http.MethodGet, "/certificates", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) CreateCertificate(ctx context.Context, req models.NewCertificate) (string, error) {
	var resp struct {
		CertificateNumber string `json:"certificate_number"`
	}
	if err := c.do(ctx, http.MethodPost, "/certificates", req, &resp); err != nil {
		return "", err
	}
	return resp.CertificateNumber, nil
}

func (c *HTTPClient) ListReceipts(ctx context.Context) ([]models.Receipt, error) {
	var out []models.Receipt
	if err := c.do(ctx, http.MethodGet, "/receipts", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) CreateReceipt(ctx context.Context, req models.NewReceipt) (string, error) {
	var resp struct {
		ReceiptNumber string `json:"receipt_number"`
	}
	if err := c.do(ctx, http.MethodPost, "/receipts", req, &resp); err != nil {
		return "", err
	}
	return resp.ReceiptNumber, nil
}

func (c *HTTPClient) ListMemberUsers(ctx context.Context) ([]models.Principal, error) {
	var users []userPayload
	if err := c.do(ctx, http.MethodGet, "/users/members", nil, &users); err != nil {
		return nil, err
	}
	out := make([]models.Principal, 0, len(users))
	for _, u := range users {
		out = append(out, u.principal(true))
	}
	return out, nil
}

func (c *HTTPClient) ApproveUser(ctx context.Context, userID string) error {
	return c.do(ctx, http.MethodPatch, "/users/"+url.PathEscape(userID)+"/approve", nil, nil)
}

func (c *HTTPClient) RejectUser(ctx context.Context, userID string) error {
	return c.do(ctx, http.MethodPatch, "/users/"+url.PathEscape(userID)+"/reject", nil, nil)
}

func (c *HTTPClient) ListCampaigns(ctx context.Context) ([]models.Campaign, error) {
	var out []models.Campaign
	if err := c.do(ctx, http.MethodGet, "/campaigns", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) ListEvents(ctx context.Context) ([]models.Event, error) {
	var out []models.Event
	if err := c.do(ctx, http.MethodGet, "/events", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) ListNews(ctx context.Context) ([]models.News, error) {
	var out []models.News
	if err := c.do(ctx, http.MethodGet, "/news", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) ListActivities(ctx context.Context) ([]models.Activity, error) {
	var out []models.Activity
	if err := c.do(ctx, http.MethodGet, "/activities", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) SubmitEnquiry(ctx context.Context, e models.Enquiry) (string, error) {
	var resp struct {
		Message string `json:"message"`
	}
	if err := c.do(ctx, http.MethodPost, "/enquiries", e, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// do sends one request and decodes a 2xx JSON body into out (if non-nil).
func (c *HTTPClient) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, uuid.NewString())
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok := c.bearer(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return c.mapError(ctx, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Detail: readDetail(resp.Body)}
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode %s %s: %v", ErrMalformedResponse, method, path, err)
	}
	return nil
}

// mapError turns a transport failure into ErrUnavailable unless the caller's
// context ended first.
func (c *HTTPClient) mapError(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return fmt.Errorf("%w: timeout: %v", ErrUnavailable, err)
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}

// readDetail extracts FastAPI-style {"detail": ...} from an error body. A
// string detail is returned as is, anything else as raw JSON, and a non-JSON
// body as trimmed text.
func readDetail(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, 64<<10))
	if err != nil || len(raw) == 0 {
		return ""
	}
	var env struct {
		Detail json.RawMessage `json:"detail"`
	}
	if json.Unmarshal(raw, &env) != nil || len(env.Detail) == 0 {
		return strings.TrimSpace(string(raw))
	}
	var s string
	if json.Unmarshal(env.Detail, &s) == nil {
		return s
	}
	return string(env.Detail)
}

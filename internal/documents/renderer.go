package documents

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

var (
	ErrMissingField  = errors.New("missing required field")
	ErrInvalidAmount = errors.New("amount must be positive")
)

// placeholder stands in for optional fields that are absent.
const placeholder = "N/A"

// Certificate is the rendering input for a certificate.
type Certificate struct {
	Type          string // free text, e.g. "member" or "achievement"
	RecipientName string
	Number        string
	IssueDate     time.Time
}

// Receipt is the rendering input for a receipt.
type Receipt struct {
	Number        string
	Type          string // donation, membership, event or other
	RecipientName string
	Amount        float64
	Description   string
	CreatedAt     time.Time
}

// IsDonation reports whether the receipt gets the 80G banner.
func (r Receipt) IsDonation() bool {
	return r.Type == "donation"
}

// Document is a rendered file ready to be saved.
type Document struct {
	FileName string
	Data     []byte
}

func CertificateFileName(number string) string {
	return "Certificate-" + number + ".pdf"
}

func ReceiptFileName(number string) string {
	return "Receipt-" + number + ".pdf"
}

// Renderer lays out and draws documents. It is safe for concurrent use.
type Renderer struct {
	org        Organization
	fonts      Fonts
	dateLayout string
	loc        *time.Location
	measure    Measurer
	now        func() time.Time
	compress   bool
}

type Option func(*Renderer)

func WithOrganization(o Organization) Option {
	return func(r *Renderer) { r.org = o }
}

func WithFonts(f Fonts) Option {
	return func(r *Renderer) { r.fonts = f }
}

// WithLocale picks the short-date format, e.g. "en-IN" or "en-US".
func WithLocale(locale string) Option {
	return func(r *Renderer) { r.dateLayout = ShortDateLayout(locale) }
}

// WithLocation sets the zone dates are shown in.
func WithLocation(loc *time.Location) Option {
	return func(r *Renderer) { r.loc = loc }
}

// WithMeasurer replaces the fpdf font metrics, mainly for tests.
func WithMeasurer(m Measurer) Option {
	return func(r *Renderer) { r.measure = m }
}

// WithClock sets the creation date stamped into PDF metadata.
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) { r.now = now }
}

// WithCompression toggles PDF stream compression (on by default).
func WithCompression(on bool) Option {
	return func(r *Renderer) { r.compress = on }
}

func NewRenderer(opts ...Option) (*Renderer, error) {
	r := &Renderer{
		org:        NVPWelfare,
		dateLayout: ShortDateLayout(DefaultLocale),
		loc:        time.Local,
		now:        time.Now,
		compress:   true,
	}
	for _, opt := range opts {
		opt(r)
	}
	if err := r.fonts.validate(); err != nil {
		return nil, err
	}
	if r.measure == nil {
		m, err := newPDFMeasurer(r.fonts)
		if err != nil {
			return nil, err
		}
		r.measure = m
	}
	return r, nil
}

// RenderCertificate lays out and draws c.
func (r *Renderer) RenderCertificate(c Certificate) (Document, error) {
	l, err := r.CertificateLayout(c)
	if err != nil {
		return Document{}, err
	}
	data, err := r.Draw(l, "Certificate "+c.Number)
	if err != nil {
		return Document{}, err
	}
	return Document{FileName: CertificateFileName(c.Number), Data: data}, nil
}

// RenderReceipt lays out and draws rc.
func (r *Renderer) RenderReceipt(rc Receipt) (Document, error) {
	l, err := r.ReceiptLayout(rc)
	if err != nil {
		return Document{}, err
	}
	data, err := r.Draw(l, "Receipt "+rc.Number)
	if err != nil {
		return Document{}, err
	}
	return Document{FileName: ReceiptFileName(rc.Number), Data: data}, nil
}

func (r *Renderer) address() string {
	if r.fonts.Unicode() || r.org.AddressLatin == "" {
		return r.org.Address
	}
	return r.org.AddressLatin
}

func (r *Renderer) date(t time.Time) string {
	return FormatDate(t, r.dateLayout, r.loc)
}

func (r *Renderer) wrap(text string, maxWidth float64, f Font) []string {
	return Wrap(text, maxWidth, func(s string) float64 { return r.measure.Width(s, f) })
}

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s", ErrMissingField, field)
	}
	return nil
}

func validAmount(a float64) error {
	if math.IsNaN(a) || math.IsInf(a, 0) || a <= 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidAmount, a)
	}
	return nil
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nvpwelfare/portal/internal/client/client"
	"github.com/nvpwelfare/portal/internal/client/models"
	"github.com/nvpwelfare/portal/internal/documents"
	"github.com/nvpwelfare/portal/internal/documents/sink"
	"github.com/nvpwelfare/portal/internal/logging"
)

var ErrInvalidDocument = errors.New("invalid document request")

// Renderer draws documents; *documents.Renderer implements it.
type Renderer interface {
	RenderCertificate(c documents.Certificate) (documents.Document, error)
	RenderReceipt(rc documents.Receipt) (documents.Document, error)
}

// DocumentService lists, issues and renders certificates and receipts.
//
// Render* look a record up by its number among those the backend lets the
// current user see and return the PDF. Download* additionally hand the PDF
// to the sink and return its location. Sink errors are returned unchanged.
type DocumentService interface {
	Certificates(ctx context.Context) ([]models.Certificate, error)
	Receipts(ctx context.Context) ([]models.Receipt, error)

	RenderCertificate(ctx context.Context, number string) (documents.Document, error)
	RenderReceipt(ctx context.Context, number string) (documents.Document, error)
	DownloadCertificate(ctx context.Context, number string) (string, error)
	DownloadReceipt(ctx context.Context, number string) (string, error)

	IssueCertificate(ctx context.Context, req models.NewCertificate) (string, error)
	IssueReceipt(ctx context.Context, req models.NewReceipt) (string, error)
}

type documentService struct {
	client   client.Client
	renderer Renderer
	sink     sink.Sink
	log      logging.Logger
}

func NewDocumentService(c client.Client, r Renderer, s sink.Sink, log logging.Logger) DocumentService {
	return &documentService{client: c, renderer: r, sink: s, log: log.With("component", "documents")}
}

func (d *documentService) Certificates(ctx context.Context) ([]models.Certificate, error) {
	return d.client.ListCertificates(ctx)
}

func (d *documentService) Receipts(ctx context.Context) ([]models.Receipt, error) {
	return d.client.ListReceipts(ctx)
}

func (d *documentService) findCertificate(ctx context.Context, number string) (models.Certificate, error) {
	list, err := d.client.ListCertificates(ctx)
	if err != nil {
		return models.Certificate{}, fmt.Errorf("list certificates: %w", err)
	}
	for _, c := range list {
		if c.CertificateNumber == number {
			return c, nil
		}
	}
	return models.Certificate{}, fmt.Errorf("certificate %q: %w", number, client.ErrNotFound)
}

func (d *documentService) findReceipt(ctx context.Context, number string) (models.Receipt, error) {
	list, err := d.client.ListReceipts(ctx)
	if err != nil {
		return models.Receipt{}, fmt.Errorf("list receipts: %w", err)
	}
	for _, r := range list {
		if r.ReceiptNumber == number {
			return r, nil
		}
	}
	return models.Receipt{}, fmt.Errorf("receipt %q: %w", number, client.ErrNotFound)
}

func (d *documentService) RenderCertificate(ctx context.Context, number string) (documents.Document, error) {
	c, err := d.findCertificate(ctx, number)
	if err != nil {
		return documents.Document{}, err
	}
	return d.renderer.RenderCertificate(certificateInput(c))
}

func (d *documentService) RenderReceipt(ctx context.Context, number string) (documents.Document, error) {
	r, err := d.findReceipt(ctx, number)
	if err != nil {
		return documents.Document{}, err
	}
	return d.renderer.RenderReceipt(receiptInput(r))
}

func (d *documentService) DownloadCertificate(ctx context.Context, number string) (string, error) {
	doc, err := d.RenderCertificate(ctx, number)
	if err != nil {
		return "", err
	}
	return d.save(ctx, doc)
}

func (d *documentService) DownloadReceipt(ctx context.Context, number string) (string, error) {
	doc, err := d.RenderReceipt(ctx, number)
	if err != nil {
		return "", err
	}
	return d.save(ctx, doc)
}

func (d *documentService) save(ctx context.Context, doc documents.Document) (string, error) {
	loc, err := d.sink.Put(ctx, doc)
	if err != nil {
		return "", err
	}
	d.log.Info(ctx, "document saved", "file", doc.FileName, "location", loc, "bytes", len(doc.Data))
	return loc, nil
}

func (d *documentService) IssueCertificate(ctx context.Context, req models.NewCertificate) (string, error) {
	if strings.TrimSpace(req.RecipientName) == "" || strings.TrimSpace(req.RecipientEmail) == "" {
		return "", fmt.Errorf("%w: recipient name and email are required", ErrInvalidDocument)
	}
	if strings.TrimSpace(req.CertificateType) == "" {
		return "", fmt.Errorf("%w: certificate type is required", ErrInvalidDocument)
	}
	number, err := d.client.CreateCertificate(ctx, req)
	if err != nil {
		return "", err
	}
	d.log.Info(ctx, "certificate issued", "number", number, "type", req.CertificateType)
	return number, nil
}

func (d *documentService) IssueReceipt(ctx context.Context, req models.NewReceipt) (string, error) {
	if strings.TrimSpace(req.RecipientName) == "" || strings.TrimSpace(req.RecipientEmail) == "" {
		return "", fmt.Errorf("%w: recipient name and email are required", ErrInvalidDocument)
	}
	if !(req.Amount > 0) {
		return "", fmt.Errorf("%w: amount must be positive", ErrInvalidDocument)
	}
	if req.ReceiptType == "" {
		req.ReceiptType = models.ReceiptDonation
	}
	number, err := d.client.CreateReceipt(ctx, req)
	if err != nil {
		return "", err
	}
	d.log.Info(ctx, "receipt issued", "number", number, "type", req.ReceiptType)
	return number, nil
}

func certificateInput(c models.Certificate) documents.Certificate {
	return documents.Certificate{
		Type:          c.CertificateType,
		RecipientName: c.RecipientName,
		Number:        c.CertificateNumber,
		IssueDate:     c.IssueDate.Time,
	}
}

func receiptInput(r models.Receipt) documents.Receipt {
	return documents.Receipt{
		Number:        r.ReceiptNumber,
		Type:          string(r.ReceiptType),
		RecipientName: r.RecipientName,
		Amount:        r.Amount,
		Description:   r.Description,
		CreatedAt:     r.CreatedAt.Time,
	}
}

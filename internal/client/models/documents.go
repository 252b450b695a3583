package models

import "github.com/nvpwelfare/portal/internal/timex"

// ReceiptType classifies a receipt. Donation receipts carry the 80G banner.
type ReceiptType string

const (
	ReceiptDonation   ReceiptType = "donation"
	ReceiptMembership ReceiptType = "membership"
	ReceiptEvent      ReceiptType = "event"
	ReceiptOther      ReceiptType = "other"
)

type Certificate struct {
	ID                string          `json:"id"`
	CertificateType   string          `json:"certificate_type"`
	RecipientName     string          `json:"recipient_name"`
	RecipientEmail    string          `json:"recipient_email"`
	TemplateID        string          `json:"template_id,omitempty"`
	CertificateNumber string          `json:"certificate_number"`
	IssueDate         timex.Timestamp `json:"issue_date"`
	QRData            string          `json:"qr_data,omitempty"`
	IssuedBy          string          `json:"issued_by,omitempty"`
}

type Receipt struct {
	ID             string          `json:"id"`
	ReceiptNumber  string          `json:"receipt_number"`
	ReceiptType    ReceiptType     `json:"receipt_type"`
	RecipientName  string          `json:"recipient_name"`
	RecipientEmail string          `json:"recipient_email"`
	Amount         float64         `json:"amount"`
	Description    string          `json:"description"`
	QRData         string          `json:"qr_data,omitempty"`
	CreatedAt      timex.Timestamp `json:"created_at"`
	CreatedBy      string          `json:"created_by,omitempty"`
}

// NewCertificate is the admin request to issue a certificate.
type NewCertificate struct {
	CertificateType string `json:"certificate_type"`
	RecipientName   string `json:"recipient_name"`
	RecipientEmail  string `json:"recipient_email"`
	TemplateID      string `json:"template_id,omitempty"`
}

// NewReceipt is the admin request to issue a receipt.
type NewReceipt struct {
	ReceiptType    ReceiptType `json:"receipt_type"`
	RecipientName  string      `json:"recipient_name"`
	RecipientEmail string      `json:"recipient_email"`
	Amount         float64     `json:"amount"`
	Description    string      `json:"description,omitempty"`
}

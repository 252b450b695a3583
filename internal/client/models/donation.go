package models

import "github.com/nvpwelfare/portal/internal/timex"

type Donation struct {
	ID            string          `json:"id"`
	DonorName     string          `json:"donor_name"`
	DonorEmail    string          `json:"donor_email"`
	DonorPhone    string          `json:"donor_phone"`
	Amount        float64         `json:"amount"`
	PaymentMethod string          `json:"payment_method"`
	PaymentID     string          `json:"payment_id,omitempty"`
	OrderID       string          `json:"order_id,omitempty"`
	Status        string          `json:"status"`
	ReceiptNumber string          `json:"receipt_number"`
	Purpose       string          `json:"purpose,omitempty"`
	CreatedAt     timex.Timestamp `json:"created_at"`
	Is80GEligible bool            `json:"is_80g_eligible"`
}

// DonationRequest opens a checkout order. Amount is in rupees.
type DonationRequest struct {
	DonorName  string  `json:"donor_name"`
	DonorEmail string  `json:"donor_email"`
	DonorPhone string  `json:"donor_phone"`
	Amount     float64 `json:"amount"`
	Purpose    string  `json:"purpose,omitempty"`
	CampaignID string  `json:"campaign_id,omitempty"`
}

// DonationOrder is the backend's answer to a checkout request. Amount is in
// paise.
type DonationOrder struct {
	OrderID    string `json:"order_id"`
	Amount     int64  `json:"amount"`
	Currency   string `json:"currency"`
	DonationID string `json:"donation_id"`
}

type PaymentConfirmation struct {
	OrderID   string `json:"order_id"`
	PaymentID string `json:"payment_id"`
}

type PaymentReceipt struct {
	Message       string `json:"message"`
	ReceiptNumber string `json:"receipt_number"`
}

// Stats is the public dashboard summary.
type Stats struct {
	TotalMembers       int     `json:"total_members"`
	TotalDonations     int     `json:"total_donations"`
	TotalAmount        float64 `json:"total_amount"`
	TotalBeneficiaries int     `json:"total_beneficiaries"`
	TotalCampaigns     int     `json:"total_campaigns"`
}

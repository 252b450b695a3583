package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/nvpwelfare/portal/internal/client/models"
	"github.com/nvpwelfare/portal/internal/documents"
)

func (a *App) Certificates(ctx context.Context) error {
	if !a.allow(memberView) {
		return nil
	}
	list, err := a.documents.Certificates(ctx)
	if err != nil {
		a.log.Warn(ctx, "list certificates", "error", err)
		list = nil
	}
	if len(list) == 0 {
		printlnFn("No certificates yet.")
		return nil
	}
	for _, c := range list {
		printlnFn(fmt.Sprintf("%-16s %-14s %-24s %s", c.CertificateNumber, c.CertificateType, c.RecipientName,
			documents.FormatDate(c.IssueDate.Time, a.dateLayout, nil)))
	}
	return nil
}

// Certificate renders one certificate and saves it.
func (a *App) Certificate(ctx context.Context, number string) error {
	if !a.allow(memberView) {
		return nil
	}
	number, err := a.orPrompt(number, "Certificate number")
	if err != nil {
		return err
	}
	loc, err := a.documents.DownloadCertificate(ctx, number)
	if err != nil {
		return err
	}
	printlnFn("Saved", loc)
	return nil
}

func (a *App) Receipts(ctx context.Context) error {
	if !a.allow(adminView) {
		return nil
	}
	list, err := a.documents.Receipts(ctx)
	if err != nil {
		a.log.Warn(ctx, "list receipts", "error", err)
		list = nil
	}
	if len(list) == 0 {
		printlnFn("No receipts yet.")
		return nil
	}
	for _, r := range list {
		printlnFn(fmt.Sprintf("%-22s %-11s %-24s %s", r.ReceiptNumber, r.ReceiptType, r.RecipientName,
			documents.FormatAmount(r.Amount)))
	}
	return nil
}

// Receipt renders one receipt and saves it.
func (a *App) Receipt(ctx context.Context, number string) error {
	if !a.allow(adminView) {
		return nil
	}
	number, err := a.orPrompt(number, "Receipt number")
	if err != nil {
		return err
	}
	loc, err := a.documents.DownloadReceipt(ctx, number)
	if err != nil {
		return err
	}
	printlnFn("Saved", loc)
	return nil
}

func (a *App) IssueCertificate(ctx context.Context) error {
	if !a.allow(adminView) {
		return nil
	}
	var req models.NewCertificate
	var err error
	if req.CertificateType, err = getSimpleText(a.reader, "Certificate type (e.g. member, volunteer, achievement)", a.out); err != nil {
		return err
	}
	if req.RecipientName, err = getSimpleText(a.reader, "Recipient name", a.out); err != nil {
		return err
	}
	if req.RecipientEmail, err = getSimpleText(a.reader, "Recipient email", a.out); err != nil {
		return err
	}

	number, err := a.documents.IssueCertificate(ctx, req)
	if err != nil {
		return err
	}
	printlnFn("Issued certificate", number)
	return nil
}

func (a *App) IssueReceipt(ctx context.Context) error {
	if !a.allow(adminView) {
		return nil
	}
	var req models.NewReceipt
	kind, err := getSimpleText(a.reader, "Receipt type (donation, membership, event, other)", a.out)
	if err != nil {
		return err
	}
	req.ReceiptType = models.ReceiptType(strings.ToLower(kind))
	if req.RecipientName, err = getSimpleText(a.reader, "Recipient name", a.out); err != nil {
		return err
	}
	if req.RecipientEmail, err = getSimpleText(a.reader, "Recipient email", a.out); err != nil {
		return err
	}
	if req.Amount, err = GetAmount(a.reader, "Amount in rupees", a.out); err != nil {
		return err
	}
	if req.Description, err = getSimpleText(a.reader, "Description (optional)", a.out); err != nil {
		return err
	}

	number, err := a.documents.IssueReceipt(ctx, req)
	if err != nil {
		return err
	}
	printlnFn("Issued receipt", number)
	return nil
}

func (a *App) orPrompt(value, prompt string) (string, error) {
	if value != "" {
		return value, nil
	}
	return getSimpleText(a.reader, prompt, a.out)
}

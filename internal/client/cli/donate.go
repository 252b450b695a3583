package cli

import (
	"context"
	"fmt"

	"github.com/nvpwelfare/portal/internal/client/services"
	"github.com/nvpwelfare/portal/internal/documents"
)

// Donate is open to everyone. Logged-in users get their details prefilled.
func (a *App) Donate(ctx context.Context) error {
	var f services.DonationForm
	var name, email, phone string
	if p := a.session.Principal(); p != nil {
		name, email, phone = p.Name, p.Email, p.Phone
	}

	var err error
	if f.Name, err = a.prefilled("Full name", name); err != nil {
		return err
	}
	if f.Email, err = a.prefilled("Email", email); err != nil {
		return err
	}
	if f.Phone, err = a.prefilled("Phone", phone); err != nil {
		return err
	}
	if f.Amount, err = GetAmount(a.reader, fmt.Sprintf("Amount in rupees (minimum %d)", services.MinDonationAmount), a.out); err != nil {
		return err
	}
	if f.Purpose, err = getSimpleText(a.reader, "Purpose (optional)", a.out); err != nil {
		return err
	}
	receipt, err := a.donations.Donate(ctx, f)
	if err != nil {
		return err
	}
	if receipt.Message != "" {
		printlnFn(receipt.Message)
	}
	printlnFn("Thank you! Receipt number:", receipt.ReceiptNumber)
	return nil
}

func (a *App) prefilled(prompt, current string) (string, error) {
	if current != "" {
		prompt = fmt.Sprintf("%s [%s]", prompt, current)
	}
	v, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return "", err
	}
	if v == "" {
		return current, nil
	}
	return v, nil
}

func (a *App) Donations(ctx context.Context) error {
	if !a.allow(memberView) {
		return nil
	}
	list, err := a.donations.History(ctx)
	if err != nil {
		a.log.Warn(ctx, "list donations", "error", err)
		list = nil
	}
	if len(list) == 0 {
		printlnFn("No donations yet.")
		return nil
	}
	for _, d := range list {
		printlnFn(fmt.Sprintf("%-22s %-12s %-10s %s", d.ReceiptNumber, documents.FormatAmount(d.Amount), d.Status, d.Purpose))
	}
	return nil
}

package cli

import (
	"context"
	"fmt"

	"github.com/nvpwelfare/portal/internal/client/models"
	"github.com/nvpwelfare/portal/internal/documents"
)

// The public pages need no session, so none of these consult the guard.

func (a *App) Campaigns(ctx context.Context) error {
	list, err := a.content.Campaigns(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		printlnFn("No active campaigns.")
		return nil
	}
	for _, c := range list {
		printlnFn(fmt.Sprintf("%-30s %s of %s (%.0f%%)", c.Title,
			documents.FormatAmount(c.CurrentAmount), documents.FormatAmount(c.GoalAmount), c.Progress()))
	}
	return nil
}

func (a *App) Events(ctx context.Context) error {
	list, err := a.content.Events(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		printlnFn("No upcoming events.")
		return nil
	}
	for _, e := range list {
		line := fmt.Sprintf("%-12s %-30s %s", documents.FormatDate(e.EventDate.Time, a.dateLayout, nil), e.Title, e.Location)
		if e.IsPaid {
			line += "  fee " + documents.FormatAmount(e.RegistrationFee)
		}
		if left, ok := e.SeatsLeft(); ok {
			line += fmt.Sprintf("  %d seats left", left)
		}
		printlnFn(line)
	}
	return nil
}

func (a *App) News(ctx context.Context) error {
	list, err := a.content.News(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		printlnFn("No news yet.")
		return nil
	}
	for _, n := range list {
		printlnFn(fmt.Sprintf("%-12s %s", documents.FormatDate(n.CreatedAt.Time, a.dateLayout, nil), n.Title))
	}
	return nil
}

// Contact shows the foundation's contact details and sends an enquiry.
func (a *App) Contact(ctx context.Context) error {
	org := documents.NVPWelfare
	printlnFn(org.Name)
	printlnFn(org.Address)
	printlnFn(fmt.Sprintf("Phone: %s  Email: %s", org.Phone, org.Email))

	var e models.Enquiry
	var name, email, phone string
	if p := a.session.Principal(); p != nil {
		name, email, phone = p.Name, p.Email, p.Phone
	}
	var err error
	if e.Name, err = a.prefilled("Your name", name); err != nil {
		return err
	}
	if e.Email, err = a.prefilled("Email", email); err != nil {
		return err
	}
	if e.Phone, err = a.prefilled("Phone", phone); err != nil {
		return err
	}
	if e.Message, err = getSimpleText(a.reader, "Message", a.out); err != nil {
		return err
	}

	msg, err := a.content.Enquire(ctx, e)
	if err != nil {
		return err
	}
	if msg == "" {
		msg = "Thank you, we will get back to you soon."
	}
	printlnFn(msg)
	return nil
}

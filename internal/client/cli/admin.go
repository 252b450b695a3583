package cli

import (
	"context"
	"fmt"

	"github.com/nvpwelfare/portal/internal/client/models"
	"github.com/nvpwelfare/portal/internal/documents"
)

func (a *App) Stats(ctx context.Context) error {
	if !a.allow(adminView) {
		return nil
	}
	s, err := a.admin.Stats(ctx)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Members: %d  Donations: %d (%s)  Beneficiaries: %d  Campaigns: %d",
		s.TotalMembers, s.TotalDonations, documents.FormatAmount(s.TotalAmount), s.TotalBeneficiaries, s.TotalCampaigns))
	return nil
}

func (a *App) Members(ctx context.Context) error {
	if !a.allow(adminView) {
		return nil
	}
	list, err := a.admin.Members(ctx)
	if err != nil {
		a.log.Warn(ctx, "list members", "error", err)
		list = nil
	}
	if len(list) == 0 {
		printlnFn("No members yet.")
		return nil
	}
	printMembers(list)
	return nil
}

// Pending lists the members waiting for approval.
func (a *App) Pending(ctx context.Context) error {
	if !a.allow(adminView) {
		return nil
	}
	list, err := a.admin.PendingMembers(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		printlnFn("No members awaiting approval.")
		return nil
	}
	printMembers(list)
	return nil
}

func printMembers(list []models.Principal) {
	for _, m := range list {
		status := "active"
		if m.IsPending() {
			status = "pending"
		}
		printlnFn(fmt.Sprintf("%-26s %-8s %-24s %s", m.ID, status, m.Name, m.Email))
	}
}

func (a *App) Approve(ctx context.Context, userID string) error {
	if !a.allow(adminView) {
		return nil
	}
	if err := a.admin.Approve(ctx, userID); err != nil {
		return err
	}
	printlnFn("Approved", userID)
	return nil
}

func (a *App) Reject(ctx context.Context, userID string) error {
	if !a.allow(adminView) {
		return nil
	}
	if err := a.admin.Reject(ctx, userID); err != nil {
		return err
	}
	printlnFn("Rejected", userID)
	return nil
}

package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/nvpwelfare/portal/internal/client/client"
	"github.com/nvpwelfare/portal/internal/client/models"
	"github.com/nvpwelfare/portal/internal/logging"
)

// AdminService is the back office: statistics and member approval.
type AdminService interface {
	Stats(ctx context.Context) (models.Stats, error)
	Members(ctx context.Context) ([]models.Principal, error)
	PendingMembers(ctx context.Context) ([]models.Principal, error)
	Approve(ctx context.Context, userID string) error
	Reject(ctx context.Context, userID string) error
}

type adminService struct {
	client client.Client
	log    logging.Logger
}

func NewAdminService(c client.Client, log logging.Logger) AdminService {
	return &adminService{client: c, log: log.With("component", "admin")}
}

func (a *adminService) Stats(ctx context.Context) (models.Stats, error) {
	return a.client.Stats(ctx)
}

func (a *adminService) Members(ctx context.Context) ([]models.Principal, error) {
	return a.client.ListMemberUsers(ctx)
}

func (a *adminService) PendingMembers(ctx context.Context) ([]models.Principal, error) {
	all, err := a.client.ListMemberUsers(ctx)
	if err != nil {
		return nil, err
	}
	var pending []models.Principal
	for _, p := range all {
		if p.IsPending() {
			pending = append(pending, p)
		}
	}
	return pending, nil
}

func (a *adminService) Approve(ctx context.Context, userID string) error {
	if strings.TrimSpace(userID) == "" {
		return fmt.Errorf("%w: user id is required", client.ErrBadRequest)
	}
	if err := a.client.ApproveUser(ctx, userID); err != nil {
		return err
	}
	a.log.Info(ctx, "member approved", "user_id", userID)
	return nil
}

func (a *adminService) Reject(ctx context.Context, userID string) error {
	if strings.TrimSpace(userID) == "" {
		return fmt.Errorf("%w: user id is required", client.ErrBadRequest)
	}
	if err := a.client.RejectUser(ctx, userID); err != nil {
		return err
	}
	a.log.Info(ctx, "member rejected", "user_id", userID)
	return nil
}

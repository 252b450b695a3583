package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/nvpwelfare/portal/internal/client/access"
	"github.com/nvpwelfare/portal/internal/client/client"
	"github.com/nvpwelfare/portal/internal/client/models"
	"github.com/nvpwelfare/portal/internal/client/services"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for the member details and creates an account. New
// accounts wait for approval, which the landing message says.
func (a *App) Register(ctx context.Context) error {
	var req models.RegisterRequest
	var err error
	if req.Name, err = getSimpleText(a.reader, "Full name", a.out); err != nil {
		return err
	}
	if req.Email, err = getSimpleText(a.reader, "Email", a.out); err != nil {
		return err
	}
	if req.Phone, err = getSimpleText(a.reader, "Phone", a.out); err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer wipe(password)
	req.Password = string(password)

	p, err := a.session.Register(ctx, req)
	if err != nil {
		return err
	}
	printlnFn(landingMessage(&p))
	return nil
}

// Login prompts for credentials and signs in.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer wipe(password)

	p, err := a.session.Login(ctx, email, string(password))
	if err != nil {
		return err
	}
	printlnFn(landingMessage(&p))
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	printlnFn("Logged out.")
	return nil
}

func (a *App) WhoAmI(context.Context) error {
	p := a.session.Principal()
	if p == nil {
		printlnFn("Not logged in.")
		return nil
	}
	status := "active"
	if p.IsPending() {
		status = "pending approval"
	}
	printlnFn(fmt.Sprintf("%s <%s> role=%s status=%s", p.Name, p.Email, p.Role, status))
	return nil
}

func landingMessage(p *models.Principal) string {
	switch access.LandingPath(p) {
	case access.PathAdminDashboard:
		return fmt.Sprintf("Welcome, %s. You are signed in as administrator.", p.Name)
	case access.PathMemberDashboard:
		return fmt.Sprintf("Welcome, %s.", p.Name)
	default:
		return fmt.Sprintf("Thank you, %s. Your membership is awaiting approval.", p.Name)
	}
}

// userMessage turns an error into something a member can act on.
func userMessage(err error) string {
	var apiErr *client.APIError
	switch {
	case errors.As(err, &apiErr) && apiErr.Detail != "":
		return apiErr.Detail
	case errors.Is(err, client.ErrUnavailable):
		return "the server is not reachable, please try again later"
	case errors.Is(err, client.ErrUnauthorized):
		return "not authorized"
	case errors.Is(err, client.ErrNotFound):
		return "not found"
	case errors.Is(err, services.ErrPaymentCancelled):
		return "payment cancelled"
	default:
		return err.Error()
	}
}

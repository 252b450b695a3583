package services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"sort"
	"strings"

	"github.com/nvpwelfare/portal/internal/client/client"
	"github.com/nvpwelfare/portal/internal/client/models"
	"github.com/nvpwelfare/portal/internal/logging"
)

var ErrInvalidEnquiry = errors.New("invalid enquiry")

// Programme is one of the foundation's standing services.
type Programme struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Programmes lists what the foundation does, as shown on the services page.
var Programmes = []Programme{
	{Title: "शिक्षा", Description: "गरीब बच्चों को मुफ्त शिक्षा, पुस्तकें और यूनिफॉर्म प्रदान करते हैं।"},
	{Title: "स्वास्थ्य", Description: "मुफ्त चिकित्सा शिविर, दवाइयां और स्वास्थ्य जागरूकता कार्यक्रम।"},
	{Title: "महिला सशक्तिकरण", Description: "महिलाओं के लिए कौशल प्रशिक्षण और रोजगार के अवसर।"},
	{Title: "भोजन वितरण", Description: "जरूरतमंद परिवारों को मुफ्त भोजन और राशन वितरण।"},
	{Title: "वस्त्र वितरण", Description: "गरीब लोगों को मुफ्त कपड़े और जरूरी सामान वितरण।"},
	{Title: "पर्यावरण संरक्षण", Description: "वृक्षारोपण, स्वच्छता अभियान और पर्यावरण जागरूकता।"},
}

// About is the foundation's public profile.
var About = struct {
	Summary string `json:"summary"`
	Vision  string `json:"vision"`
	Mission string `json:"mission"`
}{
	Summary: "NVP Welfare Foundation India एक पंजीकृत गैर-सरकारी संगठन है जो समाज के विकास के लिए काम कर रहा है।",
	Vision:  "एक ऐसा समाज बनाना जहां हर व्यक्ति को शिक्षा, स्वास्थ्य और अवसरों तक समान पहुंच मिले।",
	Mission: "समाज के वंचित वर्गों को शिक्षा, स्वास्थ्य, और सशक्तिकरण के माध्यम से आत्मनिर्भर बनाना।",
}

// ContentService serves the public pages: campaigns, events, news,
// activities and the contact form. None of it needs a session.
type ContentService interface {
	// Stats are the public headline figures shown on the home page.
	Stats(ctx context.Context) (models.Stats, error)
	Campaigns(ctx context.Context) ([]models.Campaign, error)
	// Events come back ordered by date, earliest first.
	Events(ctx context.Context) ([]models.Event, error)
	News(ctx context.Context) ([]models.News, error)
	Activities(ctx context.Context) ([]models.Activity, error)
	// Enquire validates and submits a contact message and returns the
	// backend's acknowledgement.
	Enquire(ctx context.Context, e models.Enquiry) (string, error)
}

type contentService struct {
	client client.Client
	log    logging.Logger
}

func NewContentService(c client.Client, log logging.Logger) ContentService {
	return &contentService{client: c, log: log.With("component", "content")}
}

func (c *contentService) Stats(ctx context.Context) (models.Stats, error) {
	return c.client.Stats(ctx)
}

func (c *contentService) Campaigns(ctx context.Context) ([]models.Campaign, error) {
	return c.client.ListCampaigns(ctx)
}

func (c *contentService) Events(ctx context.Context) ([]models.Event, error) {
	events, err := c.client.ListEvents(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].EventDate.Before(events[j].EventDate.Time)
	})
	return events, nil
}

func (c *contentService) News(ctx context.Context) ([]models.News, error) {
	return c.client.ListNews(ctx)
}

func (c *contentService) Activities(ctx context.Context) ([]models.Activity, error) {
	return c.client.ListActivities(ctx)
}

func validateEnquiry(e models.Enquiry) error {
	switch {
	case strings.TrimSpace(e.Name) == "":
		return fmt.Errorf("%w: name is required", ErrInvalidEnquiry)
	case strings.TrimSpace(e.Email) == "":
		return fmt.Errorf("%w: email is required", ErrInvalidEnquiry)
	case strings.TrimSpace(e.Phone) == "":
		return fmt.Errorf("%w: phone is required", ErrInvalidEnquiry)
	case strings.TrimSpace(e.Message) == "":
		return fmt.Errorf("%w: message is required", ErrInvalidEnquiry)
	}
	if _, err := mail.ParseAddress(e.Email); err != nil {
		return fmt.Errorf("%w: email %q is not valid", ErrInvalidEnquiry, e.Email)
	}
	return nil
}

func (c *contentService) Enquire(ctx context.Context, e models.Enquiry) (string, error) {
	if err := validateEnquiry(e); err != nil {
		return "", err
	}
	msg, err := c.client.SubmitEnquiry(ctx, e)
	if err != nil {
		return "", fmt.Errorf("submit enquiry: %w", err)
	}
	c.log.Info(ctx, "enquiry submitted", "email", e.Email)
	return msg, nil
}

package web

import (
	"context"
	"net/http"

	"github.com/nvpwelfare/portal/internal/client/access"
	"github.com/nvpwelfare/portal/internal/client/models"
	"github.com/nvpwelfare/portal/internal/client/services"
	"github.com/nvpwelfare/portal/internal/documents"
)

// Content is the part of services.ContentService the public pages use.
type Content interface {
	Stats(ctx context.Context) (models.Stats, error)
	Campaigns(ctx context.Context) ([]models.Campaign, error)
	Events(ctx context.Context) ([]models.Event, error)
	News(ctx context.Context) ([]models.News, error)
	Activities(ctx context.Context) ([]models.Activity, error)
	Enquire(ctx context.Context, e models.Enquiry) (string, error)
}

type contactInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

func orgContact() contactInfo {
	org := documents.NVPWelfare
	return contactInfo{Name: org.Name, Address: org.Address, Phone: org.Phone, Email: org.Email}
}

type homePage struct {
	Stats      models.Stats      `json:"stats"`
	News       []models.News     `json:"news"`
	Activities []models.Activity `json:"activities"`
}

// Public pages degrade like the dashboards: a failed fetch leaves its
// section empty.
func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := homePage{News: []models.News{}, Activities: []models.Activity{}}
	if st, err := s.content.Stats(ctx); err != nil {
		s.log.Warn(ctx, "fetch stats", "error", err)
	} else {
		v.Stats = st
	}
	if n, err := s.content.News(ctx); err != nil {
		s.log.Warn(ctx, "fetch news", "error", err)
	} else if n != nil {
		v.News = n
	}
	if a, err := s.content.Activities(ctx); err != nil {
		s.log.Warn(ctx, "fetch activities", "error", err)
	} else if a != nil {
		v.Activities = a
	}
	writeJSON(w, http.StatusOK, v)
}

func (s *Server) handleAbout(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"about": services.About, "contact": orgContact()})
}

func (s *Server) handleServices(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"programmes": services.Programmes})
}

type campaignView struct {
	models.Campaign
	Progress float64 `json:"progress"`
}

func (s *Server) handleCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := s.content.Campaigns(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]campaignView, 0, len(campaigns))
	for _, c := range campaigns {
		out = append(out, campaignView{Campaign: c, Progress: c.Progress()})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	events, err := s.content.Events(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if events == nil {
		events = []models.Event{}
	}
	writeJSON(w, http.StatusOK, events)
}

func (s *Server) handleContact(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, orgContact())
}

func (s *Server) handleEnquiry(w http.ResponseWriter, r *http.Request) {
	var e models.Enquiry
	if err := decodeJSON(w, r, &e); err != nil {
		writeError(w, err)
		return
	}
	msg, err := s.content.Enquire(r.Context(), e)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"message": msg})
}

type donatePage struct {
	MinimumAmount int               `json:"minimum_amount"`
	Campaigns     []models.Campaign `json:"campaigns"`
}

func (s *Server) handleDonate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := donatePage{MinimumAmount: services.MinDonationAmount, Campaigns: []models.Campaign{}}
	if c, err := s.content.Campaigns(ctx); err != nil {
		s.log.Warn(ctx, "fetch campaigns", "error", err)
	} else if c != nil {
		v.Campaigns = c
	}
	writeJSON(w, http.StatusOK, v)
}

type formPage struct {
	Action string   `json:"action"`
	Fields []string `json:"fields"`
}

// authForm describes a sign-in form. A settled session skips the form and
// goes to its landing page.
func (s *Server) authForm(action string, fields ...string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st := s.sess.State()
		if !st.Loading && st.Principal != nil {
			http.Redirect(w, r, access.LandingPath(st.Principal), http.StatusSeeOther)
			return
		}
		writeJSON(w, http.StatusOK, formPage{Action: action, Fields: fields})
	}
}

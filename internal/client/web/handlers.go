package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nvpwelfare/portal/internal/client/access"
	"github.com/nvpwelfare/portal/internal/client/models"
)

type sessionView struct {
	Loading    bool              `json:"loading"`
	Principal  *models.Principal `json:"principal"`
	Landing    string            `json:"landing,omitempty"`
	Navigation []access.NavItem  `json:"navigation"`
}

func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	st := s.sess.State()
	v := sessionView{Loading: st.Loading, Principal: st.Principal, Navigation: access.Navigation(st.Principal)}
	if !st.Loading {
		v.Landing = access.LandingPath(st.Principal)
	}
	writeJSON(w, http.StatusOK, v)
}

type authResponse struct {
	Principal models.Principal `json:"principal"`
	Redirect  string           `json:"redirect"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if err := decodeJSON(w, r, &creds); err != nil {
		writeError(w, err)
		return
	}
	p, err := s.sess.Login(r.Context(), creds.Email, creds.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, authResponse{Principal: p, Redirect: access.LandingPath(&p)})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	p, err := s.sess.Register(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, authResponse{Principal: p, Redirect: access.LandingPath(&p)})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.sess.Logout(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handlePending(w http.ResponseWriter, r *http.Request) {
	p := s.sess.State().Principal
	status := "active"
	if p != nil && p.IsPending() {
		status = "pending"
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": status, "principal": p})
}

type memberDashboard struct {
	Principal    *models.Principal    `json:"principal"`
	Certificates []models.Certificate `json:"certificates"`
	Donations    []models.Donation    `json:"donations"`
}

// Dashboards show whatever could be fetched; a failed fetch is logged and
// leaves its section empty.
func (s *Server) handleMemberDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := memberDashboard{
		Principal:    s.sess.State().Principal,
		Certificates: []models.Certificate{},
		Donations:    []models.Donation{},
	}
	if certs, err := s.docs.Certificates(ctx); err != nil {
		s.log.Warn(ctx, "fetch certificates", "error", err)
	} else if certs != nil {
		v.Certificates = certs
	}
	if dons, err := s.donations.History(ctx); err != nil {
		s.log.Warn(ctx, "fetch donations", "error", err)
	} else if dons != nil {
		v.Donations = dons
	}
	writeJSON(w, http.StatusOK, v)
}

type adminDashboard struct {
	Stats        models.Stats         `json:"stats"`
	Members      []models.Principal   `json:"members"`
	Pending      []models.Principal   `json:"pending"`
	Certificates []models.Certificate `json:"certificates"`
	Receipts     []models.Receipt     `json:"receipts"`
}

func (s *Server) handleAdminDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := adminDashboard{
		Members:      []models.Principal{},
		Pending:      []models.Principal{},
		Certificates: []models.Certificate{},
		Receipts:     []models.Receipt{},
	}
	if st, err := s.admin.Stats(ctx); err != nil {
		s.log.Warn(ctx, "fetch stats", "error", err)
	} else {
		v.Stats = st
	}
	if m, err := s.admin.Members(ctx); err != nil {
		s.log.Warn(ctx, "fetch members", "error", err)
	} else if m != nil {
		v.Members = m
	}
	if p, err := s.admin.PendingMembers(ctx); err != nil {
		s.log.Warn(ctx, "fetch pending members", "error", err)
	} else if p != nil {
		v.Pending = p
	}
	if c, err := s.docs.Certificates(ctx); err != nil {
		s.log.Warn(ctx, "fetch certificates", "error", err)
	} else if c != nil {
		v.Certificates = c
	}
	if rc, err := s.docs.Receipts(ctx); err != nil {
		s.log.Warn(ctx, "fetch receipts", "error", err)
	} else if rc != nil {
		v.Receipts = rc
	}
	writeJSON(w, http.StatusOK, v)
}

func (s *Server) handleCertificatePDF(w http.ResponseWriter, r *http.Request) {
	doc, err := s.docs.RenderCertificate(r.Context(), chi.URLParam(r, "number"))
	if err != nil {
		s.log.Warn(r.Context(), "render certificate", "error", err)
		writeError(w, err)
		return
	}
	sendPDF(w, doc)
}

func (s *Server) handleReceiptPDF(w http.ResponseWriter, r *http.Request) {
	doc, err := s.docs.RenderReceipt(r.Context(), chi.URLParam(r, "number"))
	if err != nil {
		s.log.Warn(r.Context(), "render receipt", "error", err)
		writeError(w, err)
		return
	}
	sendPDF(w, doc)
}

func (s *Server) handleIssueCertificate(w http.ResponseWriter, r *http.Request) {
	var req models.NewCertificate
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	n, err := s.docs.IssueCertificate(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"certificate_number": n})
}

func (s *Server) handleIssueReceipt(w http.ResponseWriter, r *http.Request) {
	var req models.NewReceipt
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	n, err := s.docs.IssueReceipt(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"receipt_number": n})
}

func (s *Server) handleApprove(w http.ResponseWriter, r *http.Request) {
	if err := s.admin.Approve(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleReject(w http.ResponseWriter, r *http.Request) {
	if err := s.admin.Reject(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

package web

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/nvpwelfare/portal/internal/client/access"
	"github.com/nvpwelfare/portal/internal/client/models"
	"github.com/nvpwelfare/portal/internal/documents"
	"github.com/nvpwelfare/portal/internal/logging"
)

// Session is the part of services.SessionService the web layer uses.
type Session interface {
	StateSource
	Login(ctx context.Context, email, password string) (models.Principal, error)
	Register(ctx context.Context, req models.RegisterRequest) (models.Principal, error)
	Logout(ctx context.Context)
}

type Documents interface {
	Certificates(ctx context.Context) ([]models.Certificate, error)
	Receipts(ctx context.Context) ([]models.Receipt, error)
	RenderCertificate(ctx context.Context, number string) (documents.Document, error)
	RenderReceipt(ctx context.Context, number string) (documents.Document, error)
	IssueCertificate(ctx context.Context, req models.NewCertificate) (string, error)
	IssueReceipt(ctx context.Context, req models.NewReceipt) (string, error)
}

type Donations interface {
	History(ctx context.Context) ([]models.Donation, error)
}

type Admin interface {
	Stats(ctx context.Context) (models.Stats, error)
	Members(ctx context.Context) ([]models.Principal, error)
	PendingMembers(ctx context.Context) ([]models.Principal, error)
	Approve(ctx context.Context, userID string) error
	Reject(ctx context.Context, userID string) error
}

type Server struct {
	sess      Session
	docs      Documents
	donations Donations
	admin     Admin
	content   Content
	log       logging.Logger
}

func NewServer(sess Session, docs Documents, donations Donations, admin Admin, content Content, log logging.Logger) *Server {
	return &Server{
		sess:      sess,
		docs:      docs,
		donations: donations,
		admin:     admin,
		content:   content,
		log:       log.With("component", "web"),
	}
}

// Routes builds the router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(AccessLog(s.log))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/session", s.handleSession)

	r.Get(access.PathHome, s.handleHome)
	r.Get(access.PathAbout, s.handleAbout)
	r.Get(access.PathServices, s.handleServices)
	r.Get(access.PathCampaigns, s.handleCampaigns)
	r.Get(access.PathEvents, s.handleEvents)
	r.Get(access.PathContact, s.handleContact)
	r.Post(access.PathContact, s.handleEnquiry)
	r.Get(access.PathDonate, s.handleDonate)
	r.Get(access.PathLogin, s.authForm("/auth/login", "email", "password"))
	r.Get(access.PathRegister, s.authForm("/auth/register", "name", "email", "phone", "password"))

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", s.handleLogin)
		r.Post("/register", s.handleRegister)
		r.Post("/logout", s.handleLogout)
	})

	// signed-in users, pending ones included
	r.Group(func(r chi.Router) {
		r.Use(RequireSession(s.sess, false))
		r.Get(access.PathPending, s.handlePending)
		r.Get(access.PathMemberDashboard, s.handleMemberDashboard)
		r.Get("/certificates/{number}/pdf", s.handleCertificatePDF)
	})

	r.Group(func(r chi.Router) {
		r.Use(RequireSession(s.sess, true))
		r.Get(access.PathAdminDashboard, s.handleAdminDashboard)
		r.Get("/receipts/{number}/pdf", s.handleReceiptPDF)
		r.Post("/admin/certificates", s.handleIssueCertificate)
		r.Post("/admin/receipts", s.handleIssueReceipt)
		r.Post("/admin/users/{id}/approve", s.handleApprove)
		r.Post("/admin/users/{id}/reject", s.handleReject)
	})

	return r
}

func sendPDF(w http.ResponseWriter, doc documents.Document) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+doc.FileName+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(doc.Data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc.Data)
}

// ListenAndServe serves h on addr until ctx ends, then shuts down gracefully.
func ListenAndServe(ctx context.Context, addr string, h http.Handler, log logging.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info(ctx, "portal listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		log.Info(ctx, "portal stopped")
		return nil
	}
}

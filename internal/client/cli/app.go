package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/nvpwelfare/portal/internal/client/access"
	"github.com/nvpwelfare/portal/internal/client/services"
	"github.com/nvpwelfare/portal/internal/documents"
	"github.com/nvpwelfare/portal/internal/logging"
)

// Deps are the services the CLI drives. Serve starts the local web portal
// and blocks until its context ends; it may be nil. DateLayout formats dates
// in listings and defaults to the short layout of documents.DefaultLocale.
type Deps struct {
	Session    services.SessionService
	Donations  services.DonationService
	Documents  services.DocumentService
	Admin      services.AdminService
	Content    services.ContentService
	Serve      func(ctx context.Context) error
	DateLayout string
	Log        logging.Logger

	// In and Out default to the process's stdin and stdout. In is shared
	// with prompts from other components such as TerminalGateway.
	In  *bufio.Reader
	Out io.Writer
}

type App struct {
	session    services.SessionService
	donations  services.DonationService
	documents  services.DocumentService
	admin      services.AdminService
	content    services.ContentService
	serve      func(ctx context.Context) error
	dateLayout string
	log        logging.Logger

	reader *bufio.Reader
	out    io.Writer

	stopServe context.CancelFunc
}

func NewApp(d Deps) *App {
	if d.In == nil {
		d.In = bufio.NewReader(os.Stdin)
	}
	if d.Out == nil {
		d.Out = os.Stdout
	}
	if d.DateLayout == "" {
		d.DateLayout = documents.ShortDateLayout(documents.DefaultLocale)
	}
	return &App{
		session:    d.Session,
		donations:  d.Donations,
		documents:  d.Documents,
		admin:      d.Admin,
		content:    d.Content,
		serve:      d.Serve,
		dateLayout: d.DateLayout,
		log:        d.Log,
		reader:     d.In,
		out:        d.Out,
	}
}

// Run restores the session and runs the REPL until the user exits or ctx
// ends.
func (a *App) Run(ctx context.Context) error {
	if err := a.session.Init(ctx); err != nil {
		a.log.Warn(ctx, "session restore failed", "error", err)
	}
	defer a.stopPortal()

	printlnFn("NVP Welfare Foundation portal (type 'help' for commands)")
	if err := a.session.Wait(ctx); err != nil {
		return err
	}
	if p := a.session.Principal(); p != nil {
		printlnFn(fmt.Sprintf("Welcome back, %s.", p.Name))
	}

	runREPL(ctx, a, a.status, &readerLines{r: a.reader})
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.session.Principal() != nil
}

func (a *App) isAdmin() bool {
	p := a.session.Principal()
	return p != nil && p.IsAdmin()
}

func (a *App) status() string {
	st := a.session.State()
	switch {
	case st.Loading:
		return "(loading)"
	case st.Principal == nil:
		return ""
	case st.Principal.IsPending():
		return fmt.Sprintf("(%s pending)", st.Principal.Email)
	default:
		return fmt.Sprintf("(%s %s)", st.Principal.Email, st.Principal.Role)
	}
}

// allow runs the route guard for the view a command belongs to and explains
// a refusal.
func (a *App) allow(r access.Route) bool {
	d := access.Guard(a.session.State(), r)
	switch d.Outcome {
	case access.Render:
		return true
	case access.Wait:
		printlnFn("Still restoring your session, try again in a moment.")
	default:
		switch d.Target {
		case access.PathLogin:
			printlnFn("Please log in first.")
		case access.PathPending:
			printlnFn("Your membership is awaiting approval by an administrator.")
		default:
			printlnFn("This command needs administrator access.")
		}
	}
	return false
}

var (
	memberView = access.Route{Path: access.PathMemberDashboard}
	adminView  = access.Route{Path: access.PathAdminDashboard, RequireAdmin: true}
)

// Serve starts the local web portal in the background.
func (a *App) Serve(ctx context.Context) error {
	if a.serve == nil {
		printlnFn("The web portal is not configured.")
		return nil
	}
	if a.stopServe != nil {
		printlnFn("The web portal is already running.")
		return nil
	}
	ctx, cancel := context.WithCancel(ctx)
	a.stopServe = cancel
	go func() {
		if err := a.serve(ctx); err != nil {
			a.log.Error(ctx, "web portal stopped", "error", err)
		}
	}()
	printlnFn("Web portal started.")
	return nil
}

func (a *App) stopPortal() {
	if a.stopServe != nil {
		a.stopServe()
		a.stopServe = nil
	}
}

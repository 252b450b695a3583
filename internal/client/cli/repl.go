package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	isAdmin() bool

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error

	Certificates(ctx context.Context) error
	Certificate(ctx context.Context, number string) error
	Receipts(ctx context.Context) error
	Receipt(ctx context.Context, number string) error
	Donate(ctx context.Context) error
	Donations(ctx context.Context) error

	Stats(ctx context.Context) error
	Members(ctx context.Context) error
	Pending(ctx context.Context) error
	Approve(ctx context.Context, userID string) error
	Reject(ctx context.Context, userID string) error
	IssueCertificate(ctx context.Context) error
	IssueReceipt(ctx context.Context) error

	Campaigns(ctx context.Context) error
	Events(ctx context.Context) error
	News(ctx context.Context) error
	Contact(ctx context.Context) error

	Serve(ctx context.Context) error
}

// lineSource yields input lines; *bufio.Scanner satisfies it.
type lineSource interface {
	Scan() bool
	Text() string
}

// readerLines reads lines from a *bufio.Reader that prompts share, so the
// REPL never buffers input meant for them.
type readerLines struct {
	r    *bufio.Reader
	line string
}

func (l *readerLines) Scan() bool {
	line, err := l.r.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	l.line = strings.TrimRight(line, "\r\n")
	return true
}

func (l *readerLines) Text() string {
	return l.line
}

const (
	helpGuest  = "Available commands: register, login, campaigns, events, news, contact, donate, serve, exit"
	helpMember = "Available commands: whoami, certificates, certificate <no>, donations, campaigns, events, news, contact, " +
		"donate, serve, logout, exit"
	helpAdmin = "Available commands: whoami, stats, members, pending, approve <id>, reject <id>, certificates, certificate <no>, " +
		"receipts, receipt <no>, issue-certificate, issue-receipt, donations, campaigns, events, news, contact, donate, " +
		"serve, logout, exit"
)

// runREPL reads commands line by line and dispatches them to a. The loop
// ends on scanner EOF, on "exit" or "quit", or when ctx is cancelled.
//
// Command handlers report their own failures; their errors are printed here
// and never stop the loop.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner lineSource) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("nvp %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]
		arg := ""
		if len(args) > 0 {
			arg = args[0]
		}

		var err error
		switch cmd {
		case "help":
			switch {
			case a.isAdmin():
				printlnFn(helpAdmin)
			case a.isLoggedIn():
				printlnFn(helpMember)
			default:
				printlnFn(helpGuest)
			}

		case "register":
			err = a.Register(ctx)
		case "login":
			err = a.Login(ctx)
		case "logout":
			err = a.Logout(ctx)
		case "whoami":
			err = a.WhoAmI(ctx)

		case "certificates":
			err = a.Certificates(ctx)
		case "certificate":
			err = a.Certificate(ctx, arg)
		case "receipts":
			err = a.Receipts(ctx)
		case "receipt":
			err = a.Receipt(ctx, arg)
		case "donate":
			err = a.Donate(ctx)
		case "donations":
			err = a.Donations(ctx)

		case "stats":
			err = a.Stats(ctx)
		case "members":
			err = a.Members(ctx)
		case "pending":
			err = a.Pending(ctx)
		case "approve", "reject":
			if arg == "" {
				printlnFn(fmt.Sprintf("Usage: %s <user id>", cmd))
				continue
			}
			if cmd == "approve" {
				err = a.Approve(ctx, arg)
			} else {
				err = a.Reject(ctx, arg)
			}
		case "issue-certificate":
			err = a.IssueCertificate(ctx)
		case "issue-receipt":
			err = a.IssueReceipt(ctx)

		case "campaigns":
			err = a.Campaigns(ctx)
		case "events":
			err = a.Events(ctx)
		case "news":
			err = a.News(ctx)
		case "contact":
			err = a.Contact(ctx)

		case "serve":
			err = a.Serve(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", userMessage(err))
		}
	}
}

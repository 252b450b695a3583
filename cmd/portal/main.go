// Command portal is the NVP Welfare Foundation member portal client.
//
// Without arguments it starts an interactive console. "portal serve" runs
// only the local web portal.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/nvpwelfare/portal/internal/client/cli"
	"github.com/nvpwelfare/portal/internal/client/client"
	"github.com/nvpwelfare/portal/internal/client/config"
	"github.com/nvpwelfare/portal/internal/client/services"
	"github.com/nvpwelfare/portal/internal/client/web"
	"github.com/nvpwelfare/portal/internal/documents"
	"github.com/nvpwelfare/portal/internal/documents/sink"
	"github.com/nvpwelfare/portal/internal/flagx"
	"github.com/nvpwelfare/portal/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:]); err != nil {
		log.Printf("%v", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	cfg, err := config.Load(args)
	if err != nil {
		return err
	}

	logger, flush, err := logging.New(cfg.LogBackend)
	if err != nil {
		return err
	}
	defer flush()

	db, err := client.OpenState(ctx, cfg.StateDSN)
	if err != nil {
		return err
	}
	defer db.Close()

	api, err := client.NewHTTPClient(cfg.BackendURL, client.WithTimeout(cfg.HTTPTimeout))
	if err != nil {
		return err
	}

	renderer, err := documents.NewRenderer(
		documents.WithLocale(cfg.Locale),
		documents.WithFonts(documents.Fonts{Regular: cfg.FontPath, Bold: cfg.FontBoldPath}),
	)
	if err != nil {
		return err
	}

	store, err := newSink(ctx, cfg)
	if err != nil {
		return err
	}

	in := bufio.NewReader(os.Stdin)
	gateway := cli.NewTerminalGateway(in, os.Stdout, cfg.CheckoutURL, cfg.RazorpayKeyID)

	session := services.NewSessionService(api, db, logger)
	donations := services.NewDonationService(api, gateway, cfg.MerchantName, logger)
	docs := services.NewDocumentService(api, renderer, store, logger)
	admin := services.NewAdminService(api, logger)
	content := services.NewContentService(api, logger)

	handler := web.NewServer(session, docs, donations, admin, content, logger).Routes()
	serve := func(ctx context.Context) error {
		return web.ListenAndServe(ctx, cfg.ListenAddr, handler, logger)
	}

	if pos := flagx.Positional(args, config.FlagNames); len(pos) > 0 {
		switch pos[0] {
		case "serve":
			return serveOnly(ctx, session, serve, logger)
		default:
			return fmt.Errorf("unknown command %q", pos[0])
		}
	}

	app := cli.NewApp(cli.Deps{
		Session:    session,
		Donations:  donations,
		Documents:  docs,
		Admin:      admin,
		Content:    content,
		Serve:      serve,
		DateLayout: documents.ShortDateLayout(cfg.Locale),
		Log:        logger,
		In:         in,
		Out:        os.Stdout,
	})
	return app.Run(ctx)
}

// newSink always saves to the output directory and mirrors to S3 when a
// bucket is configured.
func newSink(ctx context.Context, cfg *config.Config) (sink.Sink, error) {
	local := sink.NewFileSink(cfg.OutputDir)
	if !cfg.S3Enabled() {
		return local, nil
	}
	remote, err := sink.NewS3Sink(ctx, sink.S3Config{
		Region:    cfg.S3Region,
		Endpoint:  cfg.S3Endpoint,
		AccessKey: cfg.S3User,
		SecretKey: cfg.S3Password,
		Bucket:    cfg.S3Bucket,
		Prefix:    cfg.S3Prefix,
	})
	if err != nil {
		return nil, err
	}
	return sink.Tee{local, remote}, nil
}

func serveOnly(ctx context.Context, session services.SessionService, serve func(context.Context) error, logger logging.Logger) error {
	if err := session.Init(ctx); err != nil {
		logger.Warn(ctx, "session restore failed", "error", err)
	}
	return serve(ctx)
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/evgeniy-krivenko/smart-notes/internal/api/health"
	"github.com/evgeniy-krivenko/smart-notes/internal/api/web"
	"github.com/evgeniy-krivenko/smart-notes/internal/config"
	"github.com/evgeniy-krivenko/smart-notes/internal/identity"
	"github.com/evgeniy-krivenko/smart-notes/internal/usecase/notes"
	"github.com/evgeniy-krivenko/smart-notes/pkg/grpcx"
	"github.com/evgeniy-krivenko/smart-notes/pkg/gwserver"
	"github.com/evgeniy-krivenko/smart-notes/pkg/logger/slogx"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run app: %v", err)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Parse()
	if err != nil {
		return fmt.Errorf("parse cfg: %v", err)
	}

	if err := slogx.InitGlobal(os.Stdout, cfg.App.LogLevel, cfg.App.Pretty, slogx.ContextHandler); err != nil {
		return fmt.Errorf("init logger: %v", err)
	}

	st, err := openStorage(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.close()

	notesUC, err := notes.New(notes.NewOptions(
		st.repo,
		st.tx,
		notes.WithStrictOwnership(cfg.App.StrictOwnership),
	))
	if err != nil {
		return fmt.Errorf("init notes usecase: %v", err)
	}

	ident, err := identity.New(identity.NewOptions(
		st.repo,
		[]byte(cfg.Auth.Secret),
		identity.WithSessionTTL(cfg.Auth.SessionTTL),
	))
	if err != nil {
		return fmt.Errorf("init identity: %v", err)
	}

	if err := bootstrapUser(ctx, ident, cfg.Auth); err != nil {
		return err
	}

	webHandler, err := web.New(web.NewOptions(
		notesUC,
		ident,
		web.WithNotesPath(cfg.Web.NotesPath),
		web.WithLoginURL(cfg.Web.LoginURL),
		web.WithCookieName(cfg.Auth.CookieName),
		web.WithCookieSecure(cfg.Auth.CookieSecure),
		web.WithLogger(slogx.Default()),
	))
	if err != nil {
		return fmt.Errorf("init web handler: %v", err)
	}

	httpSrv, err := gwserver.New(gwserver.NewOptions(
		cfg.HTTP.Addr,
		webHandler,
		gwserver.WithLogger(slogx.Default()),
	))
	if err != nil {
		return fmt.Errorf("init http server: %v", err)
	}

	healthSvc := health.New(st.pinger, cfg.GRPC.HealthInterval)

	grpcSrv, err := grpcx.New(grpcx.NewOptions(
		cfg.GRPC.Addr,
		grpcx.WithServices(healthSvc),
		grpcx.WithLogger(slogx.Default()),
		grpcx.WithUnaryInterceptors(slogx.LoggingInterceptor(slogx.Default())),
		grpcx.WithTime(cfg.GRPC.KeepaliveTime),
		grpcx.WithTimeout(cfg.GRPC.KeepaliveTimeout),
		grpcx.WithMaxConcurrentStreams(cfg.GRPC.MaxConcurrentStreams),
	))
	if err != nil {
		return fmt.Errorf("init grpc server: %v", err)
	}

	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error { return httpSrv.Run(ctx) })
	eg.Go(func() error { return grpcSrv.Run(ctx) })
	eg.Go(func() error { return healthSvc.Run(ctx) })

	if err := eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("wait app stop: %v", err)
	}

	return nil
}

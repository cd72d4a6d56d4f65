package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/goliatone/go-formwidgets/components/locales"
	"github.com/goliatone/go-formwidgets/internal/appconfig"
	"github.com/goliatone/go-formwidgets/internal/demo"
	"github.com/goliatone/go-formwidgets/internal/logging"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "widgets-demo: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := pflag.NewFlagSet("widgets-demo", pflag.ContinueOnError)
	appconfig.RegisterFlags(flags)
	if err := flags.Parse(args); err != nil {
		return err
	}
	path, _ := flags.GetString("config")

	cfg, err := appconfig.Load(path, flags)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Verbose)
	if err != nil {
		return err
	}
	defer logging.Sync(logger)

	pickerConfig, err := cfg.Datepicker.Build()
	if err != nil {
		return err
	}

	handler, err := demo.NewHandler(demo.Options{
		Title:      cfg.Page.Title,
		Language:   cfg.Page.Language,
		Config:     pickerConfig,
		References: cfg.Assets.References(),
		Sanitize:   cfg.Page.Sanitize,
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	mux := http.NewServeMux()
	mux.Handle("/", handler)
	pattern, err := locales.New().RegisterRoutes(mux, "/")
	if err != nil {
		return err
	}
	logger.Debug("locale search mounted", zap.String("pattern", pattern))
	if dir := strings.TrimSpace(cfg.Assets.Dir); dir != "" {
		prefix := cfg.Assets.Prefix
		mux.Handle(prefix+"/", http.StripPrefix(prefix, http.FileServer(http.Dir(dir))))
		logger.Info("serving assets", zap.String("prefix", prefix), zap.String("dir", dir))
	}

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Debug("datepicker options", zap.String("config", pickerConfig.JSON()))
	return demo.Serve(ctx, srv, logger)
}

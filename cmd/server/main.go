// Command server serves the pronoun dataset as HTML pages and a JSON API.
//
// Endpoints:
//
//	GET /api/all                         every set (JSON, or CBOR on request)
//	GET /api/lookup/{pronoun...}         sets matching a partial path
//	GET /api/exact/{nom}/{acc}/{det}/{pos}/{ref}
//	GET /api/docs                        API documentation
//	GET /pronoun-list                    every set as links
//	GET /{pronoun...}                    one set with example sentences
//	GET /.within/health
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/datatrails/go-datatrails-common/logger"

	"github.com/within/pronouns"
)

const shutdownTimeout = 10 * time.Second

type config struct {
	dataPath  string
	addr      string
	domain    string
	staticDir string
	logLevel  string
}

func envOr(name, fallback string) string {
	if v, ok := os.LookupEnv(name); ok && v != "" {
		return v
	}
	return fallback
}

func parseFlags() config {
	var c config
	flag.StringVar(&c.dataPath, "data", envOr("PRONOUNS_DATA", "data/pronouns.json"), "path to the pronoun dataset (.json or .tab)")
	flag.StringVar(&c.addr, "addr", envOr("PRONOUNS_ADDR", ":3000"), "listen address")
	flag.StringVar(&c.domain, "domain", envOr("PRONOUNS_DOMAIN", "pronouns.within.lgbt"), "public domain shown in examples")
	flag.StringVar(&c.staticDir, "static", os.Getenv("XESS_PATH"), "directory served under /static/css/")
	flag.StringVar(&c.logLevel, "log-level", envOr("PRONOUNS_LOG_LEVEL", "INFO"), "log level")
	flag.Parse()
	return c
}

func main() {
	cfg := parseFlags()

	logger.New(cfg.logLevel)
	log := logger.Sugar.WithServiceName("pronouns")

	if err := run(cfg, log); err != nil {
		log.Errorf("%v", err)
		logger.OnExit()
		os.Exit(1)
	}
	logger.OnExit()
}

func run(cfg config, log logger.Logger) error {
	log.Infof("loading pronouns from %s", cfg.dataPath)
	trie, err := pronouns.New(cfg.dataPath)
	if err != nil {
		return fmt.Errorf("load data: %w", err)
	}
	log.Infof("loaded %d pronoun sets", trie.Len())

	s, err := newServer(trie, cfg.domain, log)
	if err != nil {
		return err
	}
	srv := &http.Server{
		Addr:              cfg.addr,
		Handler:           s.routes(cfg.staticDir),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		log.Infof("listening on %s", cfg.addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	log.Infof("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

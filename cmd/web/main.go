// cmd/web/main.go
//
// Summit site – HTTP entry point.
//
// Boot sequence
// -------------
//
//  1. Load env vars (jail-wide file → conf/.env fallback).
//
//  2. Load config (YAML + SUMMIT_ env overlay), optionally resolving
//     `vault:` references through the Vault client.
//
//  3. Start the rotating logger (tees to console when running in a TTY).
//
//  4. Open the two store pools: restricted (public reads) and elevated
//     (admin writes, notification listener).
//
//  5. Build repositories, the admin dashboard, the fan-out hub, and the
//     LISTEN/NOTIFY consumer.
//
//  6. Mount routes:
//     /metrics              – Prometheus
//     /api/…                – public read API + /api/stream/{table} SSE
//     /admin/api/…          – key-gated editor API
//
//  7. Run server, hub, and listener under one errgroup; SIGINT/SIGTERM
//     drains everything gracefully.
//
// Large comment blocks are framed by blank "//" lines; inline comments
// use a single "//".
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/primenumber-jp/datasummit-site/internal/admin"
	"github.com/primenumber-jp/datasummit-site/internal/config"
	"github.com/primenumber-jp/datasummit-site/internal/content/download"
	"github.com/primenumber-jp/datasummit-site/internal/content/faq"
	"github.com/primenumber-jp/datasummit-site/internal/content/form"
	"github.com/primenumber-jp/datasummit-site/internal/database"
	"github.com/primenumber-jp/datasummit-site/internal/livesync"
	"github.com/primenumber-jp/datasummit-site/internal/logger"
	"github.com/primenumber-jp/datasummit-site/internal/middleware"
	"github.com/primenumber-jp/datasummit-site/internal/public"
	"github.com/primenumber-jp/datasummit-site/internal/server"
	"github.com/primenumber-jp/datasummit-site/internal/vault"
)

const serverEnvPath = "/usr/local/etc/datasummit-site/global.env"

// loadEnv prefers the jail-wide env file; on dev it falls back to .env.
func loadEnv() {
	if _, err := os.Stat(serverEnvPath); err == nil {
		_ = godotenv.Load(serverEnvPath)
		return
	}
	_ = godotenv.Load()
}

// runningInTTY returns true when stdout is a character device.
func runningInTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

func init() { loadEnv() }

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	//
	// ── 1.  Config + logger ─────────────────────────────────────────────
	//
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logOut, err := logger.New(cfg.Paths.Root, cfg.Log.Level, cfg.Log.Tee || runningInTTY())
	if err != nil {
		log.Fatalf("start logger: %v", err)
	}
	defer func() { _ = logOut.Sync() }()

	// Vault is optional: only dial it when some value references it.
	if usesVault(cfg) {
		vc, err := vault.New(ctx, logOut)
		if err != nil {
			logOut.Fatalw("vault client", "err", err)
		}
		if err := config.ResolveSecrets(ctx, cfg, vc); err != nil {
			logOut.Fatalw("resolve secrets", "err", err)
		}
	}

	//
	// ── 2.  Store pools ─────────────────────────────────────────────────
	//
	logOut.Infow("connecting to store")
	publicDB, err := database.Open(cfg.Store.DSN)
	if err != nil {
		logOut.Fatalw("connect public pool", "err", err)
	}
	defer publicDB.Close()

	adminDB, err := database.OpenWithOptions(cfg.Store.AdminDSN, 5, 2)
	if err != nil {
		logOut.Fatalw("connect admin pool", "err", err)
	}
	defer adminDB.Close()
	logOut.Infow("store online")

	//
	// ── 3.  Repositories, dashboard, live sync ──────────────────────────
	//
	pubDownloads := download.NewRepository(publicDB)
	pubFaqs := faq.NewRepository(publicDB)
	pubForms := form.NewRepository(publicDB)

	dash := admin.New(logOut,
		admin.DownloadResource{Repo: download.NewRepository(adminDB)},
		admin.FormResource{Repo: form.NewRepository(adminDB)},
		admin.FAQResource{Repo: faq.NewRepository(adminDB)},
	)

	hub := livesync.NewHub()
	listener, err := livesync.NewListener(cfg.Store.AdminDSN, dash, hub, logOut)
	if err != nil {
		logOut.Fatalw("start listener", "err", err)
	}

	//
	// ── 4.  Routes ──────────────────────────────────────────────────────
	//
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLog(logOut))
	r.Use(middleware.Security)

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Mount("/", public.NewHandler(pubDownloads, pubFaqs, pubForms, logOut).Routes())
		r.Get("/stream/{table}", livesync.StreamHandler(hub))
	})

	r.Route("/admin/api", func(r chi.Router) {
		r.Use(admin.RequireKey(cfg.Admin.Key))
		r.Mount("/", admin.NewHandler(dash).Routes())
	})

	srv := server.New(cfg.HTTP.ListenAddr, r)

	//
	// ── 5.  Run until signalled ─────────────────────────────────────────
	//
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error { hub.Run(ctx); return nil })
	g.Go(func() error {
		err := listener.Run(ctx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		logOut.Infow("listening", "addr", cfg.HTTP.ListenAddr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutCtx)
	})

	if err := g.Wait(); err != nil {
		logOut.Fatalw("shutdown", "err", err)
	}
	logOut.Infow("bye")
}

// usesVault reports whether any secret-bearing value is a vault
// reference.
func usesVault(cfg *config.Config) bool {
	for _, v := range []string{cfg.Store.DSN, cfg.Store.AdminDSN, cfg.Admin.Key} {
		if strings.HasPrefix(v, "vault:") {
			return true
		}
	}
	return false
}

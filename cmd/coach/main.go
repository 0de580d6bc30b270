package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"SmartSaver/internal/agent"
	"SmartSaver/internal/config"
	"SmartSaver/internal/scheduler"
	"SmartSaver/internal/server"
	"SmartSaver/internal/session"
	"SmartSaver/internal/store"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] SmartSaver starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init transaction store
	var st store.Store
	if cfg.Database.SQLitePath != "" {
		ss, err := store.NewSQLiteStore(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite store failed, using noop: %v", err)
			st = store.NewNoopStore()
		} else {
			st = ss
			defer ss.Close()
		}
	} else {
		st = store.NewNoopStore()
	}

	// Seed demo data when the ledger is empty
	if cfg.Seed.OnStart {
		txns, err := st.RecentTransactions(cfg.Seed.UserID, 1)
		if err != nil {
			log.Printf("[WARN] seed check: %v", err)
		} else if len(txns) == 0 {
			n, err := store.Seed(st, cfg.Seed.UserID, cfg.Seed.Days, time.Now().UnixNano())
			if err != nil {
				log.Printf("[WARN] seed transactions: %v", err)
			} else {
				log.Printf("[INFO] seeded %d demo transactions", n)
			}
		}
	}

	// Init sessions and agent registry
	sessions, err := session.NewManager(cfg.Session.Dir)
	if err != nil {
		log.Fatalf("[FATAL] init session manager: %v", err)
	}
	sessions.Ensure(cfg.Session.DefaultID)
	registry := agent.NewRegistry(cfg.HeuristicPolicy())

	// Init scheduler
	sched := scheduler.NewScheduler(sessions, registry, st, cfg.Session.DefaultID, cfg.Seed.UserID)
	if err := sched.RegisterAll(cfg.Schedule.WeeklyCron, cfg.Schedule.MonthlyCron); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Optional: run the pipeline immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing weekly task now")
		go sched.RunWeeklyNow()
	}

	// Init HTTP dashboard API
	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: server.New(sessions, registry, st, cfg.Seed.Days).Handler(),
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Printf("[INFO] dashboard API listening on %s", srv.Addr)
		serverErrors <- srv.ListenAndServe()
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		log.Fatalf("[FATAL] server error: %v", err)
	case sig := <-sigCh:
		log.Printf("[INFO] shutdown signal received (%v), stopping...", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("[ERROR] graceful shutdown: %v", err)
			srv.Close()
		}
	}

	log.Println("[INFO] SmartSaver stopped")
}

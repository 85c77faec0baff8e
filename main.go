package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/pquinn/scrumdeck/cliparse"
	"github.com/pquinn/scrumdeck/db"
	"github.com/pquinn/scrumdeck/gateway"
	"github.com/pquinn/scrumdeck/round"
	"github.com/pquinn/scrumdeck/router"
	"github.com/pquinn/scrumdeck/store"
)

func main() {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Open the session store
	st, err := openStore(cfg)
	if err != nil {
		slog.Error("store initialization failed", "error", err)
		os.Exit(1)
	}
	defer st.Close()
	slog.Info("Session store ready", "backend", cfg.DatabaseType)

	// One state machine and one gateway per process
	machine := round.NewMachine(st)
	gw := gateway.New(st, machine)

	// Idle-session sweeper
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sweeper := store.NewSweeper(st,
		time.Duration(cfg.CleanupIntervalMinutes)*time.Minute,
		time.Duration(cfg.SessionMaxAgeHours)*time.Hour,
	)
	go sweeper.Run(ctx)

	// Create server
	server := http.Server{
		Handler: router.NewRouter(st, machine, gw, cfg),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		cancel()
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

// openStore picks the store backend from config: the in-memory map by
// default, or a SQL database (sqlite file or postgres) for deployments
// that want sessions to outlive the process.
func openStore(cfg cliparse.Config) (store.Store, error) {
	if cfg.DatabaseType == "memory" {
		return store.NewMemoryStore(), nil
	}

	// Driver names line up with the config values: "sqlite" (modernc)
	// and "postgres" (lib/pq).
	conn, err := sql.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, err
	}
	if err := db.CreateSchema(conn); err != nil {
		conn.Close()
		return nil, err
	}
	return store.NewSQLStore(conn), nil
}

package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/danielhkuo/nutrilog/client"
	"github.com/danielhkuo/nutrilog/cliparse"
	"github.com/danielhkuo/nutrilog/db"
	"github.com/danielhkuo/nutrilog/middleware"
	"github.com/danielhkuo/nutrilog/router"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		return 1
	}

	logger, closeLog := newLogger(cfg)
	defer closeLog()
	slog.SetDefault(logger)

	// Open storage and bring the schema up to date
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	c, err := client.New(ctx, cfg.DatabaseURL,
		client.WithDriver(cfg.DatabaseType),
		client.WithLogger(logger),
		client.WithRegisterer(prometheus.DefaultRegisterer),
	)
	cancel()
	if err != nil {
		var me *db.MigrationError
		if errors.As(err, &me) {
			slog.Error("schema migration failed", "version", me.Version, "error", err)
		} else {
			slog.Error("storage open failed", "error", err)
		}
		return 1
	}
	defer c.Close()

	// Create router
	mux := router.NewRouter(c)

	// Create server
	server := http.Server{
		Handler:           middleware.WithRequestID(middleware.CORS(mux)),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "dialect", c.Storage.Dialect)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
		return 1
	}
	slog.Info("Server closed")
	return 0
}

// newLogger builds the process logger. With a log file configured, output
// goes to stderr and to a rotated file.
func newLogger(cfg cliparse.Config) (*slog.Logger, func()) {
	var out io.Writer = os.Stderr
	closeLog := func() {}
	if cfg.LogFile != "" {
		rotated := &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
		out = io.MultiWriter(os.Stderr, rotated)
		closeLog = func() { rotated.Close() }
	}

	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}
	return slog.New(handler), closeLog
}

package server

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/openpersona/console/internal/pubsub"
)

// Start runs the HTTP server until an interrupt or terminate signal,
// then shuts everything down with a timeout.
func (s *Server) Start() {
	// Fold in snapshot rewrites from other processes (the CLI, a second
	// console) for as long as the server runs.
	watchCtx, cancelWatch := context.WithCancel(context.Background())

	for _, topic := range []string{pubsub.TopicSessionSignedIn, pubsub.TopicSessionCleared, pubsub.TopicToast} {
		if err := s.Bridge.Subscribe(watchCtx, topic, func(ctx context.Context, msg pubsub.Message) error {
			slog.Debug("Console event", "topic", msg.Topic, "user_id", msg.UserID)
			return nil
		}); err != nil {
			slog.Warn("Failed to subscribe to console events", "topic", topic, "error", err)
		}
	}

	go func() {
		if err := s.Store.WatchSnapshot(watchCtx); err != nil {
			slog.Warn("Session snapshot watcher stopped", "error", err)
		}
	}()

	go func() {
		if err := s.E.Start(s.Cfg.GetAddr()); err != nil && err != http.ErrServerClosed {
			s.E.Logger.Fatalf("shutting down the server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	cancelWatch()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.Bridge.Close(); err != nil {
		slog.Error("Failed to close event bridge", "error", err)
	}
	s.Store.Close()

	if err := s.E.Shutdown(ctx); err != nil {
		s.E.Logger.Fatal(err)
	}
}

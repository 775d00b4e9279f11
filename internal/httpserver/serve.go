package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/linuxserver/docker-webtop/internal/logutil"
)

const (
	shutdownTimeout = time.Minute
)

// Serve listens on bind and serves handler until ctx is cancelled.
func Serve(ctx context.Context, bind string, handler http.Handler) error {
	lst, err := net.Listen("tcp", bind)
	if err != nil {
		return fmt.Errorf("httpserver: unable to listen on %v, cause %w", bind, err)
	}
	return ServeListener(ctx, lst, handler)
}

// ServeListener is like Serve but takes ownership of an already open
// listener. A cancelled ctx results in a graceful shutdown and a nil error.
func ServeListener(ctx context.Context, lst net.Listener, handler http.Handler) error {
	server := &http.Server{
		Handler:           handler,
		ReadTimeout:       time.Minute * 5,
		ReadHeaderTimeout: time.Minute,
		IdleTimeout:       time.Minute * 5,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}
	log := logutil.GetOrDefault(ctx).With().Str("server.addr", lst.Addr().String()).Logger()

	serveErr := make(chan error, 1)
	go func() {
		defer close(serveErr)
		log.Info().Msg("Starting HTTP server")
		err := server.Serve(lst)
		if !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}
	log.Info().Msg("Initiating shutdown process")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("httpserver: shutdown did not complete, cause %w", err)
	}
	log.Info().Msg("Shutdown completed")
	return <-serveErr
}

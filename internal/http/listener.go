package http

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"
)

// Timeouts shared by the API and metrics listeners.
const (
	readHeaderTimeout = 5 * time.Second
	readTimeout       = 15 * time.Second
	writeTimeout      = 15 * time.Second
	idleTimeout       = 60 * time.Second
)

// newHTTPServer returns an http.Server for host:port with the shared timeouts.
func newHTTPServer(host string, port int) *http.Server {
	return &http.Server{
		Addr:              net.JoinHostPort(host, fmt.Sprint(port)),
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}
}

// serve runs srv with handler until it is shut down. Request contexts derive from ctx, so
// cancelling ctx aborts in-flight database work. A clean shutdown returns nil.
func serve(ctx context.Context, srv *http.Server, handler http.Handler) error {
	srv.Handler = handler
	srv.BaseContext = func(net.Listener) context.Context { return ctx }

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

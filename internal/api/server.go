package api

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"
)

// NewServer creates and returns a configured *http.Server for the escrow API.
// Request contexts are cancelled when Shutdown starts so open event streams
// end instead of holding the drain until its deadline.
func NewServer(port uint16, h *HandlerProvider) *http.Server {
	base, cancel := context.WithCancel(context.Background())

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           NewRouter(h),
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return base },
	}
	srv.RegisterOnShutdown(cancel)

	return srv
}

// Package foodserver is a development REST server for the /foods resource,
// backed by an in-memory store.
package foodserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

// DefaultAddr is where the dashboard looks for the API by default.
const DefaultAddr = ":3333"

// Server serves the food API over HTTP.
type Server struct {
	server *http.Server
	log    log.FieldLogger
	addr   string
}

// NewServer creates a server for store listening on addr.
func NewServer(addr string, store *Store, logger log.FieldLogger) *Server {
	if addr == "" {
		addr = DefaultAddr
	}
	return &Server{
		server: &http.Server{
			Addr:              addr,
			Handler:           NewRouter(store, logger),
			ReadHeaderTimeout: 10 * time.Second,
		},
		log:  logger,
		addr: addr,
	}
}

// Start binds the listener and serves in a background goroutine.
// Bind errors are returned; later serve errors are logged.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	s.addr = ln.Addr().String()
	go func() {
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.WithError(err).Error("food server stopped")
		}
	}()
	return nil
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Addr returns the listen address; after Start it is the bound address.
func (s *Server) Addr() string {
	return s.addr
}

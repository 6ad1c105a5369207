package server

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-learnly/internal/config"
	"github.com/MKhiriev/go-learnly/internal/handler"
	"github.com/MKhiriev/go-learnly/internal/logger"
	"github.com/MKhiriev/go-learnly/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, address string) *server {
	t.Helper()
	cfg := config.Server{HTTPAddress: address, ShutdownTimeout: time.Second}

	handlers, err := handler.NewHandlers(&service.Services{}, cfg, logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, cfg, logger.Nop())
	require.NoError(t, err)

	return srv.(*server)
}

func TestNewServer_NoHandlers(t *testing.T) {
	srv, err := NewServer(nil, config.Server{HTTPAddress: ":8080"}, logger.Nop())

	assert.Nil(t, srv)
	assert.ErrorIs(t, err, errNoHTTPHandler)

	srv, err = NewServer(&handler.Handlers{}, config.Server{HTTPAddress: ":8080"}, logger.Nop())

	assert.Nil(t, srv)
	assert.ErrorIs(t, err, errNoHTTPHandler)
}

func TestNewServer_NoAddress(t *testing.T) {
	handlers, err := handler.NewHandlers(&service.Services{}, config.Server{HTTPAddress: ":8080"}, logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, config.Server{}, logger.Nop())

	assert.Nil(t, srv)
	assert.ErrorIs(t, err, errNoHTTPAddress)
}

func TestNewServer_ConfiguresHTTPServer(t *testing.T) {
	s := newTestServer(t, "127.0.0.1:0")

	assert.Equal(t, "127.0.0.1:0", s.httpServer.server.Addr)
	assert.Equal(t, time.Second, s.httpServer.shutdownTimeout)
	assert.NotNil(t, s.httpServer.server.Handler)
	assert.Equal(t, readHeaderTimeout, s.httpServer.server.ReadHeaderTimeout)
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	s := newTestServer(t, "127.0.0.1:0")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.run(ctx) }()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after cancel")
	}
}

func TestRun_ReturnsListenError(t *testing.T) {
	s := newTestServer(t, "missing-port")

	err := s.run(context.Background())

	assert.Error(t, err)
}

package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/coursehub/internal/config"
)

func newTestServer(port string) *Server {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{}
	cfg.Server.Port = port
	cfg.Server.ShutdownTimeout = time.Second
	return &Server{config: cfg, router: gin.New(), logger: zerolog.Nop()}
}

func TestRunStopsWhenContextCancelled(t *testing.T) {
	srv := newTestServer("0")
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}
}

func TestRunReportsListenFailure(t *testing.T) {
	srv := newTestServer("not-a-port")

	err := srv.Run(context.Background())
	require.Error(t, err)
}

func TestShutdownWithoutListener(t *testing.T) {
	srv := newTestServer("0")
	assert.NoError(t, srv.Shutdown(context.Background()))

	srv.http = &http.Server{}
	assert.NoError(t, srv.Shutdown(context.Background()))
}

package httphandler

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPServer(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /ping", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "pong")
	})
	mux.HandleFunc("GET /slow", func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	s := NewHTTPServer("127.0.0.1:0", mux, 50*time.Millisecond)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, stop := context.WithCancel(t.Context())
	go s.Serve(ln, stop)

	base := "http://" + ln.Addr().String()

	res, err := http.Get(base + "/ping")
	require.NoError(t, err)
	body, _ := io.ReadAll(res.Body)
	res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "pong", string(body))

	res, err = http.Get(base + "/slow")
	require.NoError(t, err)
	body, _ = io.ReadAll(res.Body)
	res.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, res.StatusCode)
	assert.JSONEq(t, timeoutBody, string(body))

	closeCtx, cancel := context.WithTimeout(t.Context(), time.Second)
	defer cancel()
	s.Close(closeCtx)

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("stopFn is not called after Close")
	}
}

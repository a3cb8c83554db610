package httpbase

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGracefulServer_Addr(t *testing.T) {
	s := NewGracefulServer(GraceServerOpt{Host: "127.0.0.1", Port: 8080}, http.NotFoundHandler())
	require.Equal(t, "127.0.0.1:8080", s.Addr())
	require.Equal(t, defaultShutdownTimeout, s.shutdownTimeout)

	s = NewGracefulServer(GraceServerOpt{Port: 9090, ShutdownTimeout: time.Second}, http.NotFoundHandler())
	require.Equal(t, ":9090", s.Addr())
	require.Equal(t, time.Second, s.shutdownTimeout)
}

func TestGracefulServer_RunContextStops(t *testing.T) {
	s := NewGracefulServer(GraceServerOpt{Host: "127.0.0.1", Port: 0}, http.NotFoundHandler())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- s.RunContext(ctx)
	}()
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestGracefulServer_ListenFailure(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()
	port := ln.Addr().(*net.TCPAddr).Port

	s := NewGracefulServer(GraceServerOpt{Host: "127.0.0.1", Port: port}, http.NotFoundHandler())
	err = s.RunContext(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to listen")
}

func TestGracefulServer_ReleasesSignalsBeforeShutdown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())

	entered := make(chan struct{})
	released := make(chan struct{})
	// the in-flight request only finishes once release ran, so Shutdown
	// times out if it is waited on first
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(entered)
		<-released
		w.WriteHeader(http.StatusNoContent)
	})
	s := NewGracefulServer(GraceServerOpt{Host: "127.0.0.1", Port: port, ShutdownTimeout: 5 * time.Second}, handler)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var releaseCalls int
	done := make(chan error, 1)
	go func() {
		done <- s.runUntil(ctx, func() {
			releaseCalls++
			close(released)
		})
	}()

	reqDone := make(chan int, 1)
	go func() {
		var resp *http.Response
		var err error
		for i := 0; i < 50; i++ {
			resp, err = http.Get("http://" + s.Addr() + "/")
			if err == nil {
				break
			}
			time.Sleep(20 * time.Millisecond)
		}
		if err != nil {
			reqDone <- 0
			return
		}
		resp.Body.Close()
		reqDone <- resp.StatusCode
	}()

	select {
	case <-entered:
	case <-time.After(10 * time.Second):
		t.Fatal("request never reached the handler")
	}
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not stop")
	}
	require.Equal(t, 1, releaseCalls)
	require.Equal(t, http.StatusNoContent, <-reqDone)
}

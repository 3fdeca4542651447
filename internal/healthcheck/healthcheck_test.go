package healthcheck

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type recordedPing struct {
	path string
	body string
}

func pingServer(t *testing.T, status int) (*httptest.Server, *recordedPing) {
	t.Helper()
	rec := &recordedPing{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		rec.path = r.URL.Path
		rec.body = string(body)
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)
	return srv, rec
}

func TestPingSuccess(t *testing.T) {
	srv, rec := pingServer(t, http.StatusOK)
	n := &Notifier{URL: srv.URL, HTTPClient: srv.Client(), Logger: zap.NewNop().Sugar()}

	n.Ping(context.Background(), true, 5, 5)

	if strings.HasSuffix(rec.path, "/fail") {
		t.Fatalf("success ping must not hit the fail endpoint, got %s", rec.path)
	}
	if rec.body != "5/5 domains passed" {
		t.Fatalf("unexpected ping body %q", rec.body)
	}
}

func TestPingFailureHitsFailEndpoint(t *testing.T) {
	srv, rec := pingServer(t, http.StatusOK)
	n := &Notifier{URL: srv.URL, HTTPClient: srv.Client(), Logger: zap.NewNop().Sugar()}

	n.Ping(context.Background(), false, 3, 5)

	if !strings.HasSuffix(rec.path, "/fail") {
		t.Fatalf("failure ping must hit the fail endpoint, got %s", rec.path)
	}
	if rec.body != "3/5 domains passed" {
		t.Fatalf("unexpected ping body %q", rec.body)
	}
}

func TestPingMissingURLWarnsAndSkips(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	var requests int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
	}))
	t.Cleanup(srv.Close)

	n := &Notifier{URL: "", HTTPClient: srv.Client(), Logger: zap.New(core).Sugar()}
	n.Ping(context.Background(), true, 1, 1)

	if atomic.LoadInt32(&requests) != 0 {
		t.Fatal("no outbound call may be attempted without a URL")
	}
	if logs.FilterMessageSnippet(EnvURL).Len() == 0 {
		t.Fatal("expected a warning naming the missing environment variable")
	}
}

func TestPingServerErrorIsSwallowed(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	srv, _ := pingServer(t, http.StatusInternalServerError)

	n := &Notifier{URL: srv.URL, HTTPClient: srv.Client(), Logger: zap.New(core).Sugar()}
	n.Ping(context.Background(), true, 1, 1)

	if logs.FilterMessageSnippet("rejected").Len() == 0 {
		t.Fatal("expected a warning for the non-200 response")
	}
}

func TestPingNetworkErrorIsSwallowed(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	srv, _ := pingServer(t, http.StatusOK)
	url := srv.URL
	srv.Close()

	n := &Notifier{URL: url, Logger: zap.New(core).Sugar()}
	n.Ping(context.Background(), false, 0, 1)

	if logs.FilterMessageSnippet("failed").Len() == 0 {
		t.Fatal("expected a warning for the transport failure")
	}
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv(EnvURL, "https://hc.example/ping/abc")

	n := NewFromEnv(zap.NewNop().Sugar())
	if n.URL != "https://hc.example/ping/abc" {
		t.Fatalf("unexpected URL %q", n.URL)
	}
	if n.HTTPClient == nil || n.HTTPClient.Timeout != defaultTimeout {
		t.Fatal("expected a client with the default timeout")
	}
}

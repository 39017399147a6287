package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"league-hub/internal/config"
	"league-hub/internal/domain/playoffs"
	"league-hub/internal/metrics"
	"league-hub/internal/poller"
)

func testConfig() config.Config {
	return config.Config{
		Port:         "0",
		PollInterval: time.Minute,
		Provider:     "fixture",
		CurrentWeek:  12,
		AdminToken:   "test-token",
		CORSOrigins:  []string{"*"},
		Metrics:      config.MetricsConfig{Enabled: false},
		Snapshots:    config.SnapshotConfig{Dir: "", RetentionWeeks: 4},
	}
}

func TestNewWiresRoutes(t *testing.T) {
	cfg := testConfig()
	cfg.Snapshots.Dir = t.TempDir()
	srv := New(cfg, nil)
	handler := srv.Handler()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from /health, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/playoffs", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from /playoffs, got %d", rec.Code)
	}
	var view playoffs.Bracket
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if view.Configured() {
		t.Fatal("expected unseeded bracket on boot")
	}
}

func TestAdminRoutesNeedConfiguredToken(t *testing.T) {
	cfg := testConfig()
	cfg.Snapshots.Dir = t.TempDir()
	srv := New(cfg, nil)

	req := httptest.NewRequest(http.MethodPost, "/playoffs/setup", nil)
	req.Header.Set("Authorization", "Bearer test-token")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	// without a configured token no bearer value can mutate
	cfg.AdminToken = ""
	unsecured := New(cfg, nil)
	req = httptest.NewRequest(http.MethodPost, "/playoffs/setup", nil)
	req.Header.Set("Authorization", "Bearer anything")
	rec = httptest.NewRecorder()
	unsecured.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestBuildMetricsFallsBackOnError(t *testing.T) {
	original := metricsSetup
	metricsSetup = func(ctx context.Context, cfg metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
		return nil, nil, nil, errors.New("exporter down")
	}
	defer func() { metricsSetup = original }()

	rec, srv, stop := buildMetrics(testConfig(), nil, nil)
	if rec == nil {
		t.Fatal("expected fallback recorder")
	}
	if srv != nil || stop != nil {
		t.Fatal("expected no metrics server on setup failure")
	}
}

type stubHTTPServer struct {
	shutdowns int
}

func (s *stubHTTPServer) ListenAndServe() error              { return http.ErrServerClosed }
func (s *stubHTTPServer) Shutdown(ctx context.Context) error { s.shutdowns++; return nil }
func (s *stubHTTPServer) Addr() string                       { return ":0" }
func (s *stubHTTPServer) Handler() http.Handler              { return nil }

type stubPoller struct {
	started  bool
	stopped  bool
	statusFn func() poller.Status
}

func (p *stubPoller) Start(ctx context.Context)            { p.started = true }
func (p *stubPoller) Stop(ctx context.Context) error       { p.stopped = true; return nil }
func (p *stubPoller) RefreshNow(ctx context.Context) error { return nil }
func (p *stubPoller) Status() poller.Status {
	if p.statusFn != nil {
		return p.statusFn()
	}
	return poller.Status{}
}

func TestRunShutsDownGracefully(t *testing.T) {
	httpSrv := &stubHTTPServer{}
	plr := &stubPoller{}
	srv := newServerWithDeps(testConfig(), nil, nil, httpSrv, plr)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		srv.Run(ctx, cancel)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down in time")
	}

	if !plr.started || !plr.stopped {
		t.Fatalf("expected poller started and stopped: %+v", plr)
	}
	if httpSrv.shutdowns != 1 {
		t.Fatalf("expected 1 shutdown, got %d", httpSrv.shutdowns)
	}
}

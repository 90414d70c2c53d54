package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"mlb-apple-service/internal/config"
	"mlb-apple-service/internal/domain"
	"mlb-apple-service/internal/teststubs"
	"mlb-apple-service/internal/watcher"
)

type notifyProvider struct {
	teststubs.StubProvider
	notify    chan struct{}
	notifyOnc sync.Once
}

func (p *notifyProvider) Schedule(ctx context.Context, teamID int, startDate, endDate string) ([]domain.ScheduledGame, error) {
	p.notifyOnc.Do(func() { close(p.notify) })
	return p.StubProvider.Schedule(ctx, teamID, startDate, endDate)
}

type stubWatcher struct {
	startCalls int
	stopCalls  int
	err        error
	status     watcher.Status
}

func (w *stubWatcher) Start(ctx context.Context) {
	_ = ctx
	w.startCalls++
}

func (w *stubWatcher) Stop(ctx context.Context) error {
	_ = ctx
	w.stopCalls++
	return w.err
}

func (w *stubWatcher) Status() watcher.Status {
	return w.status
}

type stubHTTPServer struct {
	addr          string
	handler       http.Handler
	listenCalls   int
	shutdownCalls int
	listenErr     error
	shutdownErr   error
}

func (s *stubHTTPServer) ListenAndServe() error {
	s.listenCalls++
	return s.listenErr
}

func (s *stubHTTPServer) Shutdown(ctx context.Context) error {
	_ = ctx
	s.shutdownCalls++
	return s.shutdownErr
}

func (s *stubHTTPServer) Addr() string {
	return s.addr
}

func (s *stubHTTPServer) Handler() http.Handler {
	return s.handler
}

type blockingHTTPServer struct {
	addr          string
	handler       http.Handler
	shutdownCalls int
	unblock       chan struct{}
}

func (s *blockingHTTPServer) ListenAndServe() error {
	return nil
}

func (s *blockingHTTPServer) Shutdown(ctx context.Context) error {
	s.shutdownCalls++
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.unblock:
		return nil
	}
}

func (s *blockingHTTPServer) Addr() string {
	return s.addr
}

func (s *blockingHTTPServer) Handler() http.Handler {
	return s.handler
}

func testConfig() config.Config {
	return config.Config{
		Port:         "0",
		PollInterval: 5 * time.Millisecond,
		TeamID:       121,
		Detection: config.DetectionConfig{
			ScoringTerms: []string{"singles?", "doubles?", "triples?", "homers?"},
			PlayWindow:   2,
		},
	}
}

func TestServerDeliversTriggerAfterScore(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	provider := &notifyProvider{
		StubProvider: teststubs.StubProvider{
			ScheduleGames: []domain.ScheduledGame{{GamePk: 601, Status: domain.StatusInProgress}},
			Details: map[int]domain.GameDetail{
				601: {GamePk: 601, Status: domain.StatusInProgress, HomeID: 121, AwayID: 143},
			},
			Plays: []domain.Play{{
				Index:       0,
				Description: "Francisco Lindor homers (30) on a fly ball to right field.",
				HalfInning:  "bottom",
				StartTime:   time.Now().UTC().Format(time.RFC3339),
			}},
		},
		notify: make(chan struct{}),
	}

	srv, err := newServerWithProvider(testConfig(), nil, provider)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	srv.watcher.Start(ctx)
	defer srv.watcher.Stop(context.Background())

	select {
	case <-provider.notify:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timed out waiting for watcher to fetch")
	}

	router := srv.Handler()

	deadline := time.Now().Add(time.Second)
	for {
		req := httptest.NewRequest(http.MethodGet, "/trigger", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200 from /trigger, got %d", rec.Code)
		}
		if rec.Body.String() == "TRIGGER" {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("timed out waiting for trigger delivery")
		}
		time.Sleep(5 * time.Millisecond)
	}

	healthReq := httptest.NewRequest(http.MethodGet, "/health", nil)
	healthRec := httptest.NewRecorder()
	router.ServeHTTP(healthRec, healthReq)
	if healthRec.Code != http.StatusOK {
		t.Fatalf("expected 200 from /health, got %d", healthRec.Code)
	}
}

func TestServerHandlesProviderErrorGracefully(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	provider := &notifyProvider{
		StubProvider: teststubs.StubProvider{ScheduleErr: context.DeadlineExceeded},
		notify:       make(chan struct{}),
	}

	srv, err := newServerWithProvider(testConfig(), nil, provider)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	srv.watcher.Start(ctx)
	defer srv.watcher.Stop(context.Background())

	select {
	case <-provider.notify:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timed out waiting for watcher to fetch")
	}

	router := srv.Handler()
	req := httptest.NewRequest(http.MethodGet, "/trigger", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from /trigger, got %d", rec.Code)
	}
	if rec.Body.String() != "NONE" {
		t.Fatalf("expected NONE when provider errors, got %q", rec.Body.String())
	}
}

func TestNewConstructsServer(t *testing.T) {
	cfg := testConfig()
	cfg.Provider = "fixture"

	srv, err := New(cfg, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if srv == nil || srv.Handler() == nil {
		t.Fatalf("expected server with handler")
	}
}

func TestNewRejectsBadVocabulary(t *testing.T) {
	cfg := testConfig()
	cfg.Detection.ScoringTerms = []string{"(unclosed"}

	if _, err := New(cfg, nil); err == nil {
		t.Fatal("expected error for invalid vocabulary")
	}
}

func TestSelectProviderDefaultsToStatsAPI(t *testing.T) {
	provider := selectProvider(testConfig())
	if provider == nil {
		t.Fatalf("expected provider")
	}
}

func TestSelectProviderChoosesFixture(t *testing.T) {
	cfg := testConfig()
	cfg.Provider = "fixture"
	if provider := selectProvider(cfg); provider == nil {
		t.Fatalf("expected fixture provider")
	}
}

func TestGracefulShutdownCallsStopAndShutdown(t *testing.T) {
	w := &stubWatcher{}
	httpSrv := &stubHTTPServer{}

	srv := newServerWithDeps(config.Config{}, nil, httpSrv, w)
	srv.gracefulShutdown()

	if w.stopCalls != 1 {
		t.Fatalf("expected watcher Stop to be called once, got %d", w.stopCalls)
	}
	if httpSrv.shutdownCalls != 1 {
		t.Fatalf("expected server Shutdown to be called once, got %d", httpSrv.shutdownCalls)
	}
}

func TestGracefulShutdownTimesOutLongRunningShutdown(t *testing.T) {
	w := &stubWatcher{}
	blocking := &blockingHTTPServer{
		addr:    ":0",
		handler: http.NewServeMux(),
		unblock: make(chan struct{}),
	}

	original := shutdownTimeout
	shutdownTimeout = 5 * time.Millisecond
	defer func() { shutdownTimeout = original }()

	srv := newServerWithDeps(config.Config{}, nil, blocking, w)

	start := time.Now()
	srv.gracefulShutdown()
	elapsed := time.Since(start)

	if blocking.shutdownCalls != 1 {
		t.Fatalf("expected server Shutdown to be called once, got %d", blocking.shutdownCalls)
	}
	if w.stopCalls != 1 {
		t.Fatalf("expected watcher Stop to be called once, got %d", w.stopCalls)
	}
	if elapsed > 200*time.Millisecond {
		t.Fatalf("shutdown took too long: %s", elapsed)
	}
}

func TestGracefulShutdownContinuesWhenWatcherStopErrors(t *testing.T) {
	w := &stubWatcher{err: errors.New("stop failure")}
	httpSrv := &stubHTTPServer{}

	srv := newServerWithDeps(config.Config{}, nil, httpSrv, w)
	srv.gracefulShutdown()

	if w.stopCalls != 1 {
		t.Fatalf("expected watcher Stop to be called once, got %d", w.stopCalls)
	}
	if httpSrv.shutdownCalls != 1 {
		t.Fatalf("expected server Shutdown to be called once, got %d", httpSrv.shutdownCalls)
	}
}

type errHTTPServer struct {
	shutdownCalls int
}

func (e *errHTTPServer) ListenAndServe() error {
	return errors.New("listen failure")
}

func (e *errHTTPServer) Shutdown(ctx context.Context) error {
	_ = ctx
	e.shutdownCalls++
	return nil
}

func (e *errHTTPServer) Addr() string {
	return ":0"
}

func (e *errHTTPServer) Handler() http.Handler {
	return http.NewServeMux()
}

func TestServerStartHandlesListenErrorAndStops(t *testing.T) {
	srv := newServerWithDeps(config.Config{}, nil, &errHTTPServer{}, &stubWatcher{})

	stopCalled := make(chan struct{})
	srv.startServer(func() { close(stopCalled) })

	select {
	case <-stopCalled:
	case <-time.After(200 * time.Millisecond):
		t.Fatal("expected stop to be called on listen failure")
	}
}

type closeableHTTPServer struct {
	shutdownCalls int
}

func (c *closeableHTTPServer) ListenAndServe() error {
	return http.ErrServerClosed
}

func (c *closeableHTTPServer) Shutdown(ctx context.Context) error {
	_ = ctx
	c.shutdownCalls++
	return nil
}

func (c *closeableHTTPServer) Addr() string {
	return ":0"
}

func (c *closeableHTTPServer) Handler() http.Handler {
	return http.NewServeMux()
}

func TestRunCancelsAndStopsComponents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := &stubWatcher{}
	httpSrv := &closeableHTTPServer{}

	srv := newServerWithDeps(config.Config{}, nil, httpSrv, w)

	done := make(chan struct{})
	go func() {
		srv.Run(ctx, cancel)
		close(done)
	}()

	// Let Start be invoked.
	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("run did not return after cancel")
	}

	if w.startCalls != 1 {
		t.Fatalf("expected watcher Start called once, got %d", w.startCalls)
	}
	if w.stopCalls != 1 {
		t.Fatalf("expected watcher Stop called once, got %d", w.stopCalls)
	}
	if httpSrv.shutdownCalls != 1 {
		t.Fatalf("expected server Shutdown called once, got %d", httpSrv.shutdownCalls)
	}
}

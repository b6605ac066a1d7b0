package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"callscreen_backend/internal/directory"
	"callscreen_backend/platform/logger"

	"github.com/gin-gonic/gin"
)

type testConfig struct{}

func (testConfig) GetHTTPAddr() string      { return ":8080" }
func (testConfig) GetCORSAllowAll() bool    { return true }
func (testConfig) GetCORSOrigins() []string { return nil }
func (testConfig) GetTelegramToken() string { return "" }
func (testConfig) GetTelegramChatID() int64 { return 0 }
func (testConfig) IsTelegramEnabled() bool  { return false }
func (testConfig) GetLineNumber() string    { return "0033185093039" }

type stubNotifier struct {
	configured bool
}

func (n stubNotifier) Configured() bool { return n.configured }

func newTestApp() *App {
	gin.SetMode(gin.TestMode)
	return &App{
		Config:    testConfig{},
		Logger:    logger.New("development"),
		Directory: directory.New(),
		Notifier:  stubNotifier{},
	}
}

func serve(engine *gin.Engine, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestHomeRoute(t *testing.T) {
	engine := NewRouter(newTestApp())

	rec := serve(engine, http.MethodGet, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body["service"] != "callscreen" || body["line"] != "0033185093039" {
		t.Fatalf("unexpected body %v", body)
	}
	if body["webhook_url"] != "/webhook/ovh?caller=*CALLING*&callee=*CALLED*&type=*EVENT*" {
		t.Fatalf("unexpected webhook template %v", body["webhook_url"])
	}
}

func TestHealthReportsNotifierState(t *testing.T) {
	app := newTestApp()
	engine := NewRouter(app)

	rec := serve(engine, http.MethodGet, "/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body["status"] != "healthy" || body["config_valid"] != false {
		t.Fatalf("unexpected body %v", body)
	}
	detector := body["iban_detector"].(map[string]any)
	if detector["total_banks"] != float64(106) {
		t.Fatalf("unexpected detector %v", detector)
	}

	app.Notifier = stubNotifier{configured: true}
	rec = serve(NewRouter(app), http.MethodGet, "/health")
	body = map[string]any{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body["config_valid"] != true {
		t.Fatalf("expected config_valid true, got %v", body)
	}
}

func TestPingRoute(t *testing.T) {
	engine := NewRouter(newTestApp())

	rec := serve(engine, http.MethodGet, "/ping")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body["status"] != "alive" {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestUnknownRouteListsAvailableRoutes(t *testing.T) {
	engine := NewRouter(newTestApp())

	rec := serve(engine, http.MethodGet, "/nothing-here")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	routes, ok := body["available_routes"].([]any)
	if !ok || len(routes) != len(availableRoutes) {
		t.Fatalf("unexpected routes %v", body["available_routes"])
	}
}

func TestSecurityHeadersApplied(t *testing.T) {
	engine := NewRouter(newTestApp())

	rec := serve(engine, http.MethodGet, "/ping")
	if rec.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Fatalf("expected security headers, got %v", rec.Header())
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatal("expected request id header")
	}
}

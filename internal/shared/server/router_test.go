package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"logo-backend/internal/shared/config"
)

func TestAddr(t *testing.T) {
	for in, want := range map[string]string{"": ":8080", "9000": ":9000", ":7000": ":7000"} {
		if got := Addr(in); got != want {
			t.Fatalf("Addr(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRateLimitGroup(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var got string
	r := gin.New()
	capture := func(c *gin.Context) { got = rateLimitGroup(c) }
	r.POST("/api/v1/logos/preview", capture)
	r.POST("/api/v1/logos", capture)
	r.GET("/api/v1/logos", capture)
	r.GET("/api/v1/logos/:id/variants/:index/png", capture)
	r.GET("/api/v1/logos/:id/variants/:index/svg", capture)

	tests := []struct {
		method, path, want string
	}{
		{http.MethodPost, "/api/v1/logos/preview", rateGroupRender},
		{http.MethodPost, "/api/v1/logos", rateGroupRender},
		{http.MethodGet, "/api/v1/logos", rateGroupDefault},
		{http.MethodGet, "/api/v1/logos/x/variants/0/png", rateGroupRender},
		{http.MethodGet, "/api/v1/logos/x/variants/0/svg", rateGroupDefault},
	}
	for _, tt := range tests {
		got = ""
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(tt.method, tt.path, nil))
		if got != tt.want {
			t.Fatalf("%s %s: got %q, want %q", tt.method, tt.path, got, tt.want)
		}
	}
}

func TestRouterRateLimitsRenderRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(RouterDeps{Config: config.Config{Env: "dev", RateLimitRPS: 0.001, RateLimitBurst: 1}})

	req := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		rq := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
		rq.Header.Set("X-Guest-Id", "g1")
		r.ServeHTTP(w, rq)
		return w
	}
	// DEFAULT group gets four times the render burst.
	for i := 0; i < 4; i++ {
		if w := req(); w.Code != http.StatusOK {
			t.Fatalf("request %d expected 200, got %d", i+1, w.Code)
		}
	}
	if w := req(); w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", w.Code)
	}
}

func TestMeReturnsGuestIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(RouterDeps{Config: config.Config{Env: "dev"}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	req.Header.Set("X-Guest-Id", "abc")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["userId"] != "guest:abc" || body["isGuest"] != true {
		t.Fatalf("unexpected body %v", body)
	}
}

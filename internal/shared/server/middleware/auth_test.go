package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"logo-backend/internal/shared/auth"
)

func TestAuthAllowsOptionsWithoutIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Auth("dev"))
	router.OPTIONS("/api/v1/logos", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/logos", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.Code)
	}
}

func TestAuthIdentities(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "mw-secret")
	t.Setenv("ENV", "dev")

	token, err := auth.SignJWT(auth.Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "user-9"}})
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	router := gin.New()
	router.Use(Auth("dev", "/healthz"))
	router.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": UserIDFromContext(c), "guest": IsGuest(c)})
	})
	router.GET("/healthz", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	cases := []struct {
		name   string
		header map[string]string
		path   string
		code   int
		body   string
	}{
		{"bearer", map[string]string{"Authorization": "Bearer " + token}, "/whoami", 200, `{"guest":false,"id":"user-9"}`},
		{"guest", map[string]string{"X-Guest-Id": "g1"}, "/whoami", 200, `{"guest":true,"id":"guest:g1"}`},
		{"bad scheme", map[string]string{"Authorization": "Basic abc"}, "/whoami", 401, ""},
		{"bad token", map[string]string{"Authorization": "Bearer nope"}, "/whoami", 401, ""},
		{"anonymous", nil, "/whoami", 401, ""},
		{"public", nil, "/healthz", 200, ""},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, tc.path, nil)
		for k, v := range tc.header {
			req.Header.Set(k, v)
		}
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != tc.code {
			t.Fatalf("%s: expected %d, got %d", tc.name, tc.code, resp.Code)
		}
		if tc.body != "" && resp.Body.String() != tc.body {
			t.Fatalf("%s: unexpected body %s", tc.name, resp.Body.String())
		}
	}
}

package logos_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"logo-backend/internal/bootstrap"
	"logo-backend/internal/shared/auth"
	"logo-backend/internal/shared/config"
)

func newRouter(t *testing.T) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "handler-test-secret")
	t.Setenv("ENV", "dev")

	cfg := config.Config{
		Port:            "0",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		LocalStoreDir:   t.TempDir(),
		Env:             "dev",
		ObjectStoreType: "local",
	}
	app, err := bootstrap.Build(cfg)
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	t.Cleanup(func() { _ = app.Close() })
	return app.Router
}

func addUserToken(t *testing.T, req *http.Request, sub string) {
	t.Helper()
	token, err := auth.SignJWT(auth.Claims{Email: sub + "@example.test", RegisteredClaims: jwt.RegisteredClaims{Subject: sub}})
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
}

func addGuestHeader(req *http.Request) {
	req.Header.Set("X-Guest-Id", "guest-123")
}

func do(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func jsonRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

const zenithBody = `{"companyName":"Zenith","tagline":"Reach Higher","industry":"technology startup","colorPrimary":"#4f46e5","colorSecondary":"#06b6d4"}`

func TestPreviewReturnsFourDocuments(t *testing.T) {
	router := newRouter(t)

	req := jsonRequest(http.MethodPost, "/api/v1/logos/preview", zenithBody)
	addGuestHeader(req)
	resp := do(router, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var preview struct {
		Industry string   `json:"industry"`
		Variants []string `json:"variants"`
		SVGs     []string `json:"svgs"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&preview); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if preview.Industry != "technology" || len(preview.SVGs) != 4 || len(preview.Variants) != 4 {
		t.Fatalf("unexpected preview %+v", preview.Variants)
	}
	for i, doc := range preview.SVGs {
		for _, want := range []string{"ZENITH", "Reach Higher", "Inter, system-ui, -apple-system, sans-serif", "decoration-hexagon"} {
			if !strings.Contains(doc, want) {
				t.Fatalf("doc %d missing %q", i, want)
			}
		}
	}
}

func TestPreviewValidation(t *testing.T) {
	router := newRouter(t)

	tests := []struct {
		name string
		body string
	}{
		{name: "missing name", body: `{"industry":"tech"}`},
		{name: "name too long", body: `{"companyName":"` + strings.Repeat("x", 81) + `"}`},
		{name: "tagline too long", body: `{"companyName":"A","tagline":"` + strings.Repeat("t", 121) + `"}`},
		{name: "not json", body: `companyName=A`},
		{name: "bad image", body: `{"companyName":"A","imageBase64":"data:image/png;base64,@@@"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := jsonRequest(http.MethodPost, "/api/v1/logos/preview", tt.body)
			addGuestHeader(req)
			resp := do(router, req)
			if resp.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", resp.Code, resp.Body.String())
			}
			var body struct {
				Error struct {
					Code string `json:"code"`
				} `json:"error"`
			}
			_ = json.Unmarshal(resp.Body.Bytes(), &body)
			if body.Error.Code != "validation_error" {
				t.Fatalf("expected validation_error, got %q", body.Error.Code)
			}
		})
	}
}

func TestLogoSetLifecycle(t *testing.T) {
	router := newRouter(t)

	req := jsonRequest(http.MethodPost, "/api/v1/logos", zenithBody)
	addUserToken(t, req, "user-1")
	resp := do(router, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	var created struct {
		ID           string   `json:"id"`
		IndustryName string   `json:"industryName"`
		SVGs         []string `json:"svgs"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode create: %v", err)
	}
	if created.ID == "" || created.IndustryName != "technology" || len(created.SVGs) != 4 {
		t.Fatalf("unexpected create response %+v", created)
	}

	// Another user cannot see it.
	req = httptest.NewRequest(http.MethodGet, "/api/v1/logos/"+created.ID, nil)
	addUserToken(t, req, "user-2")
	if resp := do(router, req); resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for other user, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/logos/"+created.ID, nil)
	addUserToken(t, req, "user-1")
	if resp := do(router, req); resp.Code != http.StatusOK {
		t.Fatalf("expected 200 on get, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/logos?limit=500", nil)
	addUserToken(t, req, "user-1")
	resp = do(router, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 on list, got %d", resp.Code)
	}
	var list []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list) != 1 || list[0]["id"] != created.ID {
		t.Fatalf("unexpected list %v", list)
	}
	if _, ok := list[0]["svgs"]; ok {
		t.Fatalf("list entries should omit documents")
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/logos/"+created.ID+"/variants/1/svg?namespace=1", nil)
	addUserToken(t, req, "user-1")
	resp = do(router, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 on svg, got %d", resp.Code)
	}
	if ct := resp.Header().Get("Content-Type"); !strings.HasPrefix(ct, "image/svg+xml") {
		t.Fatalf("unexpected content type %q", ct)
	}
	if cd := resp.Header().Get("Content-Disposition"); cd != `inline; filename="zenith-2.svg"` {
		t.Fatalf("unexpected content disposition %q", cd)
	}
	if !strings.Contains(resp.Body.String(), `id="letterGrad-1"`) {
		t.Fatalf("expected namespaced ids")
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/logos/"+created.ID+"/variants/0/png?size=64", nil)
	addUserToken(t, req, "user-1")
	resp = do(router, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 on png, got %d: %s", resp.Code, resp.Body.String())
	}
	if !bytes.HasPrefix(resp.Body.Bytes(), []byte("\x89PNG")) {
		t.Fatalf("expected png body")
	}

	for _, path := range []string{
		"/api/v1/logos/" + created.ID + "/variants/4/svg",
		"/api/v1/logos/" + created.ID + "/variants/-1/png",
	} {
		req = httptest.NewRequest(http.MethodGet, path, nil)
		addUserToken(t, req, "user-1")
		if resp := do(router, req); resp.Code != http.StatusNotFound {
			t.Fatalf("%s: expected 404, got %d", path, resp.Code)
		}
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/logos/"+created.ID+"/variants/x/svg", nil)
	addUserToken(t, req, "user-1")
	if resp := do(router, req); resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-numeric index, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodDelete, "/api/v1/logos/"+created.ID, nil)
	addUserToken(t, req, "user-1")
	if resp := do(router, req); resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204 on delete, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodDelete, "/api/v1/logos/"+created.ID, nil)
	addUserToken(t, req, "user-1")
	if resp := do(router, req); resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", resp.Code)
	}
}

func TestListRequiresLogin(t *testing.T) {
	router := newRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/logos", nil)
	addGuestHeader(req)
	resp := do(router, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "login_required") {
		t.Fatalf("expected login_required, got %s", resp.Body.String())
	}
}

func TestIndustriesIsPublic(t *testing.T) {
	router := newRouter(t)

	resp := do(router, httptest.NewRequest(http.MethodGet, "/api/v1/industries", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var industries []struct {
		Name            string   `json:"name"`
		Keywords        []string `json:"keywords"`
		StyleVariations []string `json:"styleVariations"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&industries); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(industries) != 14 || industries[0].Name != "technology" {
		t.Fatalf("unexpected industries %+v", industries)
	}
	if industries[13].Name != "general" || len(industries[13].Keywords) != 0 {
		t.Fatalf("expected default last, got %+v", industries[13])
	}
}

func TestHealthAndMetricsArePublic(t *testing.T) {
	router := newRouter(t)

	resp := do(router, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	if resp.Code != http.StatusOK || !strings.Contains(resp.Body.String(), `"ok":true`) {
		t.Fatalf("unexpected health %d %s", resp.Code, resp.Body.String())
	}

	resp = do(router, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 on metrics, got %d", resp.Code)
	}
}

func TestMissingIdentity(t *testing.T) {
	router := newRouter(t)
	resp := do(router, jsonRequest(http.MethodPost, "/api/v1/logos/preview", zenithBody))
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}

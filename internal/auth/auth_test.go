package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"salesboard/internal/config"
)

func guardedEngine(cfg config.AuthConfig, roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/guarded", RequireRole(FromConfig(cfg), cfg.Disabled, roles...), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"role": c.GetString("role")})
	})
	return engine
}

func get(engine *gin.Engine, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	engine.ServeHTTP(w, req)
	return w
}

func TestRequireRole_Disabled(t *testing.T) {
	engine := guardedEngine(config.AuthConfig{Disabled: true}, RoleManager)
	if w := get(engine, ""); w.Code != http.StatusOK {
		t.Fatalf("status=%d want 200", w.Code)
	}
}

func TestRequireRole_MissingToken(t *testing.T) {
	engine := guardedEngine(config.AuthConfig{Tokens: map[string]string{"tok": RoleManager}}, RoleManager)
	if w := get(engine, ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("status=%d want 401", w.Code)
	}
}

func TestRequireRole_UnknownToken(t *testing.T) {
	engine := guardedEngine(config.AuthConfig{Tokens: map[string]string{"tok": RoleManager}}, RoleManager)
	if w := get(engine, "other"); w.Code != http.StatusUnauthorized {
		t.Fatalf("status=%d want 401", w.Code)
	}
}

func TestRequireRole_WrongRole(t *testing.T) {
	engine := guardedEngine(config.AuthConfig{Tokens: map[string]string{"tok": RoleEmployee}}, RoleManager)
	if w := get(engine, "tok"); w.Code != http.StatusForbidden {
		t.Fatalf("status=%d want 403", w.Code)
	}
}

func TestRequireRole_Allowed(t *testing.T) {
	engine := guardedEngine(config.AuthConfig{Tokens: map[string]string{"tok": RoleEmployee}}, RoleEmployee, RoleManager)
	if w := get(engine, "tok"); w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
}

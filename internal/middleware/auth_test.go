package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"biocatalog_backend/internal/config"
	"biocatalog_backend/internal/model"
	"biocatalog_backend/internal/util"

	"github.com/gin-gonic/gin"
)

const testSecret = "clave-de-firma-solo-para-tests-0123456789"

func testRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protegida", AuthMiddleware(cfg), func(c *gin.Context) {
		claims := util.GetUserFromContext(c)
		c.JSON(http.StatusOK, gin.H{"usuario_id": claims.UserID})
	})
	return router
}

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:     testSecret,
			ExpireTime: time.Hour,
		},
	}
}

func TestAuthMiddlewareSinToken(t *testing.T) {
	router := testRouter(testConfig())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protegida", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, se esperaba 401", rec.Code)
	}
}

func TestAuthMiddlewareTokenInvalido(t *testing.T) {
	router := testRouter(testConfig())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protegida", nil)
	req.Header.Set("Authorization", "Bearer no-es-un-jwt")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, se esperaba 403", rec.Code)
	}
}

func TestAuthMiddlewareTokenExpirado(t *testing.T) {
	cfg := testConfig()
	router := testRouter(cfg)

	usuario := &model.Usuario{UsuarioID: 7, Email: "docente@ejemplo.edu", RolID: 2}
	token, err := util.GenerateJWT(usuario, cfg.JWT.Secret, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protegida", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, se esperaba 403 para token expirado", rec.Code)
	}
}

func TestAuthMiddlewareTokenValido(t *testing.T) {
	cfg := testConfig()
	router := testRouter(cfg)

	usuario := &model.Usuario{UsuarioID: 7, Email: "docente@ejemplo.edu", RolID: 2}
	token, err := util.GenerateJWT(usuario, cfg.JWT.Secret, cfg.JWT.ExpireTime)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protegida", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
}

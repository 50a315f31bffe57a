package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/woedy/weekend-chef-backend/entity"
	"github.com/woedy/weekend-chef-backend/utils"
)

func pingRequest(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")

	r := gin.New()
	r.GET("/ping", AuthMiddleware(entity.RoleAdmin), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userId": utils.CurrentUserID(c),
			"role":   utils.CurrentRole(c),
		})
	})

	if w := pingRequest(r, ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("missing token: status %d, want 401", w.Code)
	}

	token, err := utils.GenerateToken(7, entity.RoleAdmin, "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if w := pingRequest(r, token); w.Code != http.StatusOK {
		t.Fatalf("valid token: status %d, want 200 (%s)", w.Code, w.Body.String())
	}

	clientToken, err := utils.GenerateToken(8, entity.RoleClient, "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if w := pingRequest(r, clientToken); w.Code != http.StatusForbidden {
		t.Fatalf("wrong role: status %d, want 403", w.Code)
	}

	forged, err := utils.GenerateToken(7, entity.RoleAdmin, "other-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if w := pingRequest(r, forged); w.Code != http.StatusUnauthorized {
		t.Fatalf("forged token: status %d, want 401", w.Code)
	}

	expired, err := utils.GenerateToken(7, entity.RoleAdmin, "test-secret", -time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if w := pingRequest(r, expired); w.Code != http.StatusUnauthorized {
		t.Fatalf("expired token: status %d, want 401", w.Code)
	}
}

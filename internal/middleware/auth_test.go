package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gymdesk/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestJWTAuth_ValidToken(t *testing.T) {
	jwtService := jwt.New("test-secret-123", time.Hour)
	validToken, _ := jwtService.GenerateToken(42, "frontdesk")

	router := gin.New()
	router.Use(JWTAuth(jwtService))
	router.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":  c.GetInt64("user_id"),
			"username": c.GetString("username"),
		})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+validToken)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "42")
	assert.Contains(t, w.Body.String(), "frontdesk")
}

func TestJWTAuth_InvalidToken(t *testing.T) {
	jwtService := jwt.New("right-secret", time.Hour)
	otherService := jwt.New("wrong-secret", time.Hour)
	foreignToken, _ := otherService.GenerateToken(42, "frontdesk")

	router := gin.New()
	router.Use(JWTAuth(jwtService))
	router.GET("/protected", func(c *gin.Context) {
		t.Fatal("handler should not be reached")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+foreignToken)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	jwtService := jwt.New("test-secret-123", time.Hour)

	router := gin.New()
	router.Use(JWTAuth(jwtService))
	router.GET("/protected", func(c *gin.Context) {
		t.Fatal("handler should not be reached")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

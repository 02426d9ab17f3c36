package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func requestIDRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())
	router.GET("/test", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	return router
}

func TestRequestID_Generated(t *testing.T) {
	router := requestIDRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	router.ServeHTTP(w, req)

	if id := w.Header().Get("X-Request-ID"); id == "" {
		t.Error("X-Request-ID should be generated when absent")
	}
}

func TestRequestID_PropagatesInbound(t *testing.T) {
	router := requestIDRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	req.Header.Set("X-Request-ID", "client-id-123")
	router.ServeHTTP(w, req)

	if id := w.Header().Get("X-Request-ID"); id != "client-id-123" {
		t.Errorf("X-Request-ID = %q, expected the inbound value", id)
	}
}

func TestRequestID_UniquePerRequest(t *testing.T) {
	router := requestIDRouter()

	ids := make(map[string]bool)
	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/test", nil)
		router.ServeHTTP(w, req)
		ids[w.Header().Get("X-Request-ID")] = true
	}

	if len(ids) != 5 {
		t.Errorf("expected 5 distinct request ids, got %d", len(ids))
	}
}

package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupTestRouter(handled *bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	api := r.Group("/api")
	api.Use(APIKeyMiddleware("X-API-Key", "secret-key"))
	api.GET("/health", func(c *gin.Context) {
		*handled = true
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}

func TestMissingAPIKey(t *testing.T) {
	var handled bool
	router := setupTestRouter(&handled)

	req, _ := http.NewRequest("GET", "/api/health", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", resp.Code)
	}
	if handled {
		t.Error("Expected handler not to run without an API key")
	}

	var envelope map[string]string
	json.Unmarshal(resp.Body.Bytes(), &envelope)
	if envelope["error"] != "UNAUTHORIZED" {
		t.Errorf("Expected error UNAUTHORIZED, got %s", envelope["error"])
	}
	if envelope["message"] == "" {
		t.Error("Expected a message in the error envelope")
	}
}

func TestWrongAPIKey(t *testing.T) {
	var handled bool
	router := setupTestRouter(&handled)

	req, _ := http.NewRequest("GET", "/api/health", nil)
	req.Header.Set("X-API-Key", "wrong-key")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", resp.Code)
	}
	if handled {
		t.Error("Expected handler not to run with a wrong API key")
	}
}

func TestValidAPIKey(t *testing.T) {
	var handled bool
	router := setupTestRouter(&handled)

	req, _ := http.NewRequest("GET", "/api/health", nil)
	req.Header.Set("X-API-Key", "secret-key")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if !handled {
		t.Error("Expected handler to run with the correct API key")
	}
}

func TestCustomHeaderName(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ping", APIKeyMiddleware("X-Service-Token", "secret-key"), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	req, _ := http.NewRequest("GET", "/ping", nil)
	req.Header.Set("X-API-Key", "secret-key")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 when key sent on the wrong header, got %d", resp.Code)
	}

	req, _ = http.NewRequest("GET", "/ping", nil)
	req.Header.Set("X-Service-Token", "secret-key")
	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusNoContent {
		t.Errorf("Expected 204 with the configured header, got %d", resp.Code)
	}
}

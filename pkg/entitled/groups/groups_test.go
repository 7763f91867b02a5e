package groups

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/mikepea/entitled/pkg/entitled/models"
	"github.com/mikepea/entitled/pkg/entitled/store"
)

func setupTestStore(t *testing.T) *store.Store {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	models.AutoMigrate(db)
	return store.New(db)
}

func setupTestRouter(s *store.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := NewHandler(s)
	handler.RegisterRoutes(r.Group("/api/groups"))
	return r
}

func TestListGroupsEmpty(t *testing.T) {
	s := setupTestStore(t)
	router := setupTestRouter(s)

	req, _ := http.NewRequest("GET", "/api/groups", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if resp.Body.String() != "[]" {
		t.Errorf("Expected empty JSON array, got %s", resp.Body.String())
	}
}

func TestListSeededGroupsSorted(t *testing.T) {
	s := setupTestStore(t)
	router := setupTestRouter(s)

	if err := s.SeedDefaultGroups(); err != nil {
		t.Fatalf("SeedDefaultGroups failed: %v", err)
	}

	req, _ := http.NewRequest("GET", "/api/groups", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var gs []GroupResponse
	json.Unmarshal(resp.Body.Bytes(), &gs)

	expected := []string{"ADMIN", "EDITOR", "SUPER ADMIN", "USER"}
	if len(gs) != len(expected) {
		t.Fatalf("Expected %d groups, got %d", len(expected), len(gs))
	}
	for i, g := range gs {
		if g.Name != expected[i] {
			t.Errorf("Position %d: expected %s, got %s", i, expected[i], g.Name)
		}
		if g.ID == "" {
			t.Errorf("Expected group %s to have an id", g.Name)
		}
	}
}

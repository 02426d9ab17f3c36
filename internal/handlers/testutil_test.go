package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/frctlprdx/community-sub000/internal/config"
	"github.com/frctlprdx/community-sub000/internal/models"
	"github.com/frctlprdx/community-sub000/internal/utils"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
	utils.SetBcryptCost(bcrypt.MinCost)
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Community{},
		&models.CommunityMember{},
		&models.Event{},
		&models.Gallery{},
		&models.LoginHistory{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Auth.BcryptCost = bcrypt.MinCost
	return cfg
}

// newTestRouter wires the API routes against a fresh database.
func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db := setupTestDB(t)
	cfg := testConfig()

	authHandler := NewAuthHandler(db, cfg)
	communityHandler := NewCommunityHandler(db, cfg)
	eventHandler := NewEventHandler(db)
	galleryHandler := NewGalleryHandler(db)

	r := gin.New()
	api := r.Group("/api")
	{
		api.POST("/auth/registermember", authHandler.RegisterMember)
		api.POST("/auth/registercommunity", authHandler.RegisterCommunity)
		api.POST("/auth/login", authHandler.Login)

		api.POST("/community/create", communityHandler.Create)
		api.GET("/community/get", communityHandler.List)
		api.GET("/community/get/:id", communityHandler.Members)
		api.POST("/community/join", communityHandler.Join)
		api.DELETE("/community/member/:id", communityHandler.RemoveMember)
		api.PUT("/community/update/:id", communityHandler.Update)
		api.DELETE("/community/delete/:id", communityHandler.Delete)

		api.POST("/event/post", eventHandler.Create)
		api.GET("/event/get", eventHandler.List)
		api.GET("/event/get/:id", eventHandler.ListByCreator)
		api.PUT("/event/update/:id", eventHandler.Update)
		api.DELETE("/event/delete/:id", eventHandler.Delete)

		api.POST("/gallery/post", galleryHandler.Create)
		api.GET("/gallery/get/:communityId", galleryHandler.ListByCommunity)
	}

	return r, db
}

// doJSON performs a request with a JSON body and returns the recorder.
func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// decodeBody unmarshals a response body into a generic map.
func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response body: %v (body: %s)", err, w.Body.String())
	}
	return body
}

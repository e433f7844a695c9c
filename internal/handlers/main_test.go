package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"taskpay_backend/database"
	"taskpay_backend/internal/app"
	"taskpay_backend/internal/config"
	"taskpay_backend/internal/logger"
	"taskpay_backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type envelope struct {
	Message string          `json:"message"`
	Status  bool            `json:"status"`
	Data    json.RawMessage `json:"data"`
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Server.Env = "production"
	cfg.Billing.ProPlan = "Pro"
	cfg.Billing.PlanCacheTTLSeconds = 60
	// JSON log output keeps the request log one line per test request.
	logger.Init(cfg.Server.Env)
	return cfg
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A named in-memory database with a shared cache, so every pooled
	// connection sees the same data. The name keeps tests isolated.
	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "failed to open test database")

	require.NoError(t, database.AutoMigrate(db))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	return db
}

// newTestServer builds the fully wired router over a fresh in-memory
// database with the static plans seeded.
func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := openTestDB(t)
	require.NoError(t, database.SeedPlans(db))

	return app.SetupRouter(testConfig(), db), db
}

// newTestServerNoPlans skips plan seeding, for the plan-not-configured
// paths.
func newTestServerNoPlans(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := openTestDB(t)
	return app.SetupRouter(testConfig(), db), db
}

func sendRequest(t *testing.T, router *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, string) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err, "failed to encode request body")
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req := httptest.NewRequest(method, path, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w, w.Body.String()
}

func parseEnvelope(t *testing.T, bodyStr string) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &env), "failed to parse response envelope: %s", bodyStr)
	return env
}

func createTestUser(t *testing.T, db *gorm.DB, email, fullName string) *models.User {
	t.Helper()
	user := &models.User{Email: email, FullName: fullName}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestTask(t *testing.T, db *gorm.DB, userID uint, name string, description *string, status models.TaskStatus) *models.Task {
	t.Helper()
	task := &models.Task{
		UserID:      userID,
		Name:        name,
		Description: description,
		Status:      status,
	}
	require.NoError(t, db.Create(task).Error)
	return task
}

func strPtr(s string) *string {
	return &s
}

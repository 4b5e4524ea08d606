package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/Luisi123/budget-tracking-test/db"
	"github.com/Luisi123/budget-tracking-test/internal/auth"
	"github.com/Luisi123/budget-tracking-test/internal/models"
	"github.com/Luisi123/budget-tracking-test/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// testEnvelope mirrors the response envelope with raw data so each test can
// decode into its own type.
type testEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Code  string          `json:"code"`
	Error string          `json:"error"`
}

// HandlerSuite runs every request through the real router against an
// in-memory database, one fresh database per test.
type HandlerSuite struct {
	suite.Suite
	router     *gin.Engine
	aliceToken string
	bobToken   string
}

func (s *HandlerSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	var err error
	db.DB, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(s.T(), err, "failed to open test database")

	// A pooled second connection would get its own empty in-memory database.
	sqlDB, err := db.DB.DB()
	require.NoError(s.T(), err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(s.T(), db.MigrateDatabase())
	require.NoError(s.T(), auth.Init("handler-test-secret", time.Hour))

	s.router = router.NewRouter()
	s.aliceToken = s.registerUser("Alice", "alice@example.com")
	s.bobToken = s.registerUser("Bob", "bob@example.com")
}

func (s *HandlerSuite) registerUser(name, email string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(s.T(), err)

	user := models.User{Name: name, Email: email, PasswordHash: string(hash)}
	require.NoError(s.T(), db.DB.Create(&user).Error)

	token, err := auth.GenerateJWT(user.ID, user.Email)
	require.NoError(s.T(), err)

	return token
}

func (s *HandlerSuite) request(method, path, token string, body interface{}) (int, testEnvelope) {
	var reader *bytes.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(s.T(), err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	var env testEnvelope
	if rec.Body.Len() > 0 {
		require.NoError(s.T(), json.Unmarshal(rec.Body.Bytes(), &env), "body: %s", rec.Body.String())
	}

	return rec.Code, env
}

func (s *HandlerSuite) createProject(token, name string, budget float64) models.Project {
	status, env := s.request(http.MethodPost, "/api/project", token, gin.H{
		"name":   name,
		"budget": budget,
	})
	require.Equal(s.T(), http.StatusOK, status)
	require.True(s.T(), env.Ok)

	var project models.Project
	require.NoError(s.T(), json.Unmarshal(env.Data, &project))
	return project
}

func (s *HandlerSuite) createExpense(token string, body gin.H) models.Expense {
	status, env := s.request(http.MethodPost, "/api/expense", token, body)
	require.Equal(s.T(), http.StatusOK, status)
	require.True(s.T(), env.Ok)

	var expense models.Expense
	require.NoError(s.T(), json.Unmarshal(env.Data, &expense))
	return expense
}

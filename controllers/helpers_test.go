package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"smartpocket-ai/backend/ai"
	"smartpocket-ai/backend/config"
	"smartpocket-ai/backend/controllers"
	"smartpocket-ai/backend/models"
	"smartpocket-ai/backend/routes"
	"smartpocket-ai/backend/store"
	"smartpocket-ai/backend/utils"
)

// fakeStore mirrors the store's semantics in memory, including the
// upsert-keeps-identity behavior the handlers rely on.
type fakeStore struct {
	usersByID     map[int64]models.User
	usersByEmail  map[string]models.User
	profiles      map[int64]models.FinancialProfile
	nextUserID    int64
	nextProfileID int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		usersByID:    map[int64]models.User{},
		usersByEmail: map[string]models.User{},
		profiles:     map[int64]models.FinancialProfile{},
	}
}

func (f *fakeStore) CreateUser(_ context.Context, fullName, email, passwordHash string) (models.User, error) {
	if _, ok := f.usersByEmail[email]; ok {
		return models.User{}, store.ErrEmailTaken
	}
	f.nextUserID++
	u := models.User{
		ID:           f.nextUserID,
		FullName:     fullName,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	f.usersByID[u.ID] = u
	f.usersByEmail[u.Email] = u
	return u, nil
}

func (f *fakeStore) UserByEmail(_ context.Context, email string) (models.User, error) {
	u, ok := f.usersByEmail[email]
	if !ok {
		return models.User{}, store.ErrNotFound
	}
	return u, nil
}

func (f *fakeStore) UserByID(_ context.Context, id int64) (models.User, error) {
	u, ok := f.usersByID[id]
	if !ok {
		return models.User{}, store.ErrNotFound
	}
	return u, nil
}

func (f *fakeStore) UpsertProfile(_ context.Context, p models.FinancialProfile) (models.FinancialProfile, bool, error) {
	if existing, ok := f.profiles[p.UserID]; ok {
		p.ID = existing.ID
		p.CreatedAt = existing.CreatedAt
		p.UpdatedAt = time.Now().UTC()
		f.profiles[p.UserID] = p
		return p, false, nil
	}
	f.nextProfileID++
	p.ID = f.nextProfileID
	p.CreatedAt = time.Now().UTC()
	p.UpdatedAt = p.CreatedAt
	f.profiles[p.UserID] = p
	return p, true, nil
}

func (f *fakeStore) ProfileByUserID(_ context.Context, userID int64) (models.FinancialProfile, error) {
	p, ok := f.profiles[userID]
	if !ok {
		return models.FinancialProfile{}, store.ErrNotFound
	}
	return p, nil
}

type fakeGen struct {
	res ai.Result
}

func (g fakeGen) GenerateInsights(context.Context, models.FinancialProfile) ai.Result {
	return g.res
}

func newRouter(st controllers.Store, gen controllers.InsightGenerator) (*gin.Engine, config.Config) {
	gin.SetMode(gin.TestMode)
	cfg := config.Config{JWTSecret: "test-secret"}
	r := gin.New()
	routes.Register(r, cfg, st, gen)
	return r, cfg
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m))
	return m
}

// registerUser registers through the API and returns a valid session token.
func registerUser(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()
	w := doJSON(t, r, "POST", "/api/auth/register", "", map[string]any{
		"fullName": "Test User",
		"email":    email,
		"password": "password123",
	})
	require.Equal(t, 201, w.Code)
	return decode(t, w)["token"].(string)
}

func tokenFor(t *testing.T, cfg config.Config, uid int64) string {
	t.Helper()
	token, err := utils.GenerateToken(cfg.JWTSecret, uid, utils.SessionTTL)
	require.NoError(t, err)
	return token
}

func samplePayload() map[string]any {
	return map[string]any{
		"salary":      50000,
		"rent":        15000,
		"food":        8000,
		"travel":      3000,
		"others":      5000,
		"savingsGoal": 500000,
		"jobType":     "Software Engineer",
		"city":        "Bangalore",
		"area":        "HSR Layout",
		"rentBudget":  12000,
	}
}

package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"portfolio/internal/config"
	"portfolio/internal/db"
	"portfolio/internal/service"
)

func newRouter(store *stubStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestLogger(zap.NewNop()))
	portfolio := &service.PortfolioService{Store: store}
	(&PortfolioHandler{Service: portfolio}).Register(r)
	(&AnalyticsHandler{Service: &service.AnalyticsService{Portfolio: portfolio}}).Register(r)
	(&HealthHandler{Store: store}).Register(r)
	return r
}

func do(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out map[string]any
	if strings.HasPrefix(strings.TrimSpace(w.Body.String()), "{") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	}
	return w, out
}

func TestListReturnsRawRows(t *testing.T) {
	r := newRouter(sampleStore())
	w, _ := do(t, r, http.MethodGet, "/api/portfolio", "")
	require.Equal(t, http.StatusOK, w.Code)

	var rows []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "AAA", rows[0]["Symbol"])
	assert.Equal(t, 100.0, rows[0]["Value ₹"])
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}

func TestListEmptyIsArray(t *testing.T) {
	r := newRouter(&stubStore{})
	w, _ := do(t, r, http.MethodGet, "/api/portfolio", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestListStoreFailure(t *testing.T) {
	r := newRouter(&stubStore{fail: true})
	w, body := do(t, r, http.MethodGet, "/api/portfolio", "")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to fetch portfolio.", body["error"])
	assert.Contains(t, body["details"], "store unavailable")
}

func TestCreateAppends(t *testing.T) {
	store := sampleStore()
	r := newRouter(store)
	w, body := do(t, r, http.MethodPost, "/api/portfolio", `{"Symbol":"CCC","Value ₹":50}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Entry created.", body["message"])
	entry := body["entry"].(map[string]any)
	assert.Equal(t, "CCC", entry["Symbol"])

	require.Len(t, store.set.Rows, 3)
	assert.Equal(t, "CCC", store.set.Rows[2]["Symbol"])
	assert.Equal(t, 1, store.saves)
}

func TestCreateEmptyObjectEchoesEntry(t *testing.T) {
	store := sampleStore()
	r := newRouter(store)
	w, body := do(t, r, http.MethodPost, "/api/portfolio", `{}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]any{"message": "Entry created.", "entry": map[string]any{}}, body)
	assert.Len(t, store.set.Rows, 3)
}

func TestCreateRejectsMalformedBody(t *testing.T) {
	store := sampleStore()
	r := newRouter(store)
	w, body := do(t, r, http.MethodPost, "/api/portfolio", `{"Symbol":`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid request body.", body["error"])
	assert.Zero(t, store.saves)
}

func TestUpdateMerges(t *testing.T) {
	store := sampleStore()
	r := newRouter(store)
	w, body := do(t, r, http.MethodPut, "/api/portfolio/symbol/aaa", `{"Value ₹":150}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Entry updated.", body["message"])
	entry := body["entry"].(map[string]any)
	assert.Equal(t, 150.0, entry["Value ₹"])
	assert.Equal(t, "Alpha", entry["Name"])
	assert.Equal(t, 150.0, store.set.Rows[0]["Value ₹"])
}

func TestUpdateEmptyBodyIsNoop(t *testing.T) {
	store := sampleStore()
	r := newRouter(store)
	w, body := do(t, r, http.MethodPut, "/api/portfolio/symbol/BBB", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Entry updated.", body["message"])
	assert.Zero(t, store.saves)
}

func TestUpdateMissing(t *testing.T) {
	r := newRouter(sampleStore())
	w, body := do(t, r, http.MethodPut, "/api/portfolio/symbol/ZZZ", `{"Name":"x"}`)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, map[string]any{"error": "Entry not found."}, body)
}

func TestDeleteRemoves(t *testing.T) {
	store := sampleStore()
	r := newRouter(store)
	w, body := do(t, r, http.MethodDelete, "/api/portfolio/symbol/%20aaa%20", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]any{"message": "Entry deleted."}, body)
	require.Len(t, store.set.Rows, 1)
	assert.Equal(t, "BBB", store.set.Rows[0]["Symbol"])
}

func TestDeleteMissingDoesNotSave(t *testing.T) {
	store := sampleStore()
	r := newRouter(store)
	w, body := do(t, r, http.MethodDelete, "/api/portfolio/symbol/ZZZ", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Entry not found.", body["error"])
	assert.Zero(t, store.saves)
}

func TestDeleteStoreFailure(t *testing.T) {
	r := newRouter(&stubStore{fail: true})
	w, body := do(t, r, http.MethodDelete, "/api/portfolio/symbol/AAA", "")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to delete entry.", body["error"])
}

func TestHealthAndReady(t *testing.T) {
	r := newRouter(sampleStore())
	w, body := do(t, r, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", body["status"])

	w, body = do(t, r, http.MethodGet, "/readyz", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ready", body["status"])

	r = newRouter(&stubStore{fail: true})
	w, body = do(t, r, http.MethodGet, "/readyz", "")
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "store_unreachable", body["status"])
}

func TestReadyPingsDatabase(t *testing.T) {
	gin.SetMode(gin.TestMode)
	conn, err := db.Open(config.DBConfig{Driver: config.DriverSQLite, DSN: filepath.Join(t.TempDir(), "ready.db")})
	require.NoError(t, err)

	r := gin.New()
	(&HealthHandler{Store: sampleStore(), DB: conn}).Register(r)

	w, body := do(t, r, http.MethodGet, "/readyz", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ready", body["status"])

	require.NoError(t, db.Close(conn))
	w, body = do(t, r, http.MethodGet, "/readyz", "")
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "db_unreachable", body["status"])
}

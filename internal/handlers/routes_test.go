package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"db-console-api/internal/services"
	"db-console-api/internal/testdb"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type healthFunc func(ctx context.Context) error

func (f healthFunc) HealthCheck(ctx context.Context) error { return f(ctx) }

func newTestRouter(t *testing.T, health HealthChecker) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testdb.New(t)
	svcs := services.NewServiceContainer()
	logger := testdb.Logger()

	router := gin.New()
	SetupRoutes(router, &RouterConfig{
		Records: NewRecordsDispatcher(db, svcs, logger),
		Catalog: NewCatalogDispatcher(db, svcs, false, logger),
		Health:  health,
		Version: "test",
	})
	return router
}

func serve(router *gin.Engine, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRoutes_RecordsOverHTTP(t *testing.T) {
	router := newTestRouter(t, nil)

	w := serve(router, http.MethodPost, "/records", `{"title":"Widget"}`, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = serve(router, http.MethodGet, "/records?search=Widg", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listed []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, created["id"], listed[0]["id"])

	w = serve(router, http.MethodDelete, "/records/9999999", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Record not found"}`, w.Body.String())

	w = serve(router, http.MethodPatch, "/records/1", "", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)

	w = serve(router, http.MethodOptions, "/records", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Content-Type, X-User-Id", w.Header().Get("Access-Control-Allow-Headers"))
}

func TestRoutes_CatalogOverHTTP(t *testing.T) {
	router := newTestRouter(t, nil)

	w := serve(router, http.MethodPost, "/catalog", `{"customer_name":"Acme"}`, map[string]string{"X-Table-Name": "orders"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var order map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.Equal(t, "pending", order["status"])

	w = serve(router, http.MethodGet, "/catalog", "", map[string]string{"X-Table-Name": "users"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Unknown table: users"}`, w.Body.String())
}

func TestRoutes_Health(t *testing.T) {
	router := newTestRouter(t, healthFunc(func(context.Context) error { return nil }))
	w := serve(router, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"healthy"`)

	router = newTestRouter(t, healthFunc(func(context.Context) error { return errors.New("ping failed") }))
	w = serve(router, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "ping failed")
}

func TestRequestFromHTTP(t *testing.T) {
	req := httptest.NewRequest(http.MethodPut, "/records/7?search=a&search=b", strings.NewReader(`{"title":"x"}`))
	req.Header.Set("X-Table-Name", "orders")

	converted, err := RequestFromHTTP(req, "7")
	require.NoError(t, err)

	assert.Equal(t, "PUT", converted.Method())
	assert.Equal(t, "7", converted.PathParam("id"))
	assert.Equal(t, "a", converted.QueryParam("search"))
	assert.Equal(t, "orders", converted.Header("x-table-name"))
	assert.Equal(t, `{"title":"x"}`, converted.Body)
}

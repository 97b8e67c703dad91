package main

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"doccatalog/docs"
	"doccatalog/internal/http/middleware"
	"doccatalog/internal/model"
	serviceMocks "doccatalog/internal/service/mocks"
)

func TestNewApp(t *testing.T) {
	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	svc := new(serviceMocks.MockCatalogService)
	svc.On("ByEngineer", mock.Anything).Return([]model.Document{{ID: "1", Title: "CAD Guidelines", Category: model.CategoryEngineer}}, nil)
	svc.On("ByHR", mock.Anything).Return(nil, errors.New("store unavailable"))

	app, err := newApp(appDeps{
		DB:       db,
		Catalog:  svc,
		Logger:   zap.NewNop(),
		Registry: prometheus.NewRegistry(),
	})
	require.NoError(t, err)

	t.Run("catalog route with request id and cors", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/engineer", nil)
		req.Header.Set("Origin", "http://intranet.local")
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.NotEmpty(t, resp.Header.Get(middleware.RequestIDHeader))
		assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	})

	t.Run("store failure", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/hr", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		body, _ := io.ReadAll(resp.Body)
		assert.JSONEq(t, `{"error":"Server error"}`, string(body))
	})

	t.Run("health", func(t *testing.T) {
		dbMock.ExpectPing()
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("metrics", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		body, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(body), `http_requests_total{method="GET",path="/api/engineer",status="200"} 1`)
	})

	t.Run("file links disabled", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/documents/0b6f3c1e-7a39-4b55-8f0d-2f8a8d1f6c11/file", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func newDocsApp(t *testing.T, publicURL string) *fiber.App {
	t.Helper()
	t.Cleanup(func() { _ = configureSwagger("") })

	app, err := newApp(appDeps{
		Catalog:   new(serviceMocks.MockCatalogService),
		Logger:    zap.NewNop(),
		Registry:  prometheus.NewRegistry(),
		PublicURL: publicURL,
	})
	require.NoError(t, err)
	return app
}

func fetchSwaggerDoc(t *testing.T, app *fiber.App) map[string]any {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var doc map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&doc))
	return doc
}

func TestSwaggerDoc(t *testing.T) {
	t.Run("public url pins host and scheme", func(t *testing.T) {
		app := newDocsApp(t, "https://catalog.example.com:8443")

		doc := fetchSwaggerDoc(t, app)
		assert.Equal(t, "catalog.example.com:8443", doc["host"])
		assert.Equal(t, []any{"https"}, doc["schemes"])
		assert.Contains(t, doc["paths"], "/api/documents")
	})

	t.Run("no public url leaves host relative", func(t *testing.T) {
		app := newDocsApp(t, "")

		doc := fetchSwaggerDoc(t, app)
		assert.Equal(t, "", doc["host"])
		assert.Empty(t, doc["schemes"])
	})

	t.Run("request headers do not change the document", func(t *testing.T) {
		app := newDocsApp(t, "http://docs.internal")

		var wg sync.WaitGroup
		for _, host := range []string{"a.example", "b.example", "c.example", "d.example"} {
			wg.Add(1)
			go func() {
				defer wg.Done()
				req := httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil)
				req.Host = host
				req.Header.Set("X-Forwarded-Proto", "https")
				resp, err := app.Test(req)
				if assert.NoError(t, err) {
					assert.Equal(t, http.StatusOK, resp.StatusCode)
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, "docs.internal", docs.SwaggerInfo.Host)
		assert.Equal(t, "docs.internal", fetchSwaggerDoc(t, app)["host"])
	})

	t.Run("rejects a url without scheme", func(t *testing.T) {
		t.Cleanup(func() { _ = configureSwagger("") })

		_, err := newApp(appDeps{
			Catalog:   new(serviceMocks.MockCatalogService),
			Logger:    zap.NewNop(),
			Registry:  prometheus.NewRegistry(),
			PublicURL: "catalog.example.com",
		})
		assert.ErrorContains(t, err, "invalid APP_PUBLIC_URL")
	})
}

package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"portfolio-backend/internal/domains/siteconfig"
	"portfolio-backend/internal/domains/siteconfig/repository"
	"portfolio-backend/internal/domains/siteconfig/service"
	"portfolio-backend/internal/infrastructure/storage"
	"portfolio-backend/internal/shared/middleware"
	"portfolio-backend/pkg/cache"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	OK    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
}

func newConfigRouter(store *storage.MemoryStore) *gin.Engine {
	gin.SetMode(gin.TestMode)

	svc := service.NewConfigService(repository.NewBlobRepository(store), cache.NewMemoryCache(), 2*time.Second)
	h := NewConfigHandler(svc)

	router := gin.New()
	router.Use(middleware.CORS())
	router.GET("/config", h.Get)
	router.PUT("/config", h.Put)
	router.GET("/config/versions", h.Versions)
	router.POST("/config/versions/:ts/restore", h.Restore)
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func TestPutThenGet_MergeFillsTheGaps(t *testing.T) {
	router := newConfigRouter(storage.NewMemoryStore())

	w, env := doRequest(t, router, http.MethodPut, "/config", `{"about":{"title":"Hi"}}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.OK)

	w, env = doRequest(t, router, http.MethodGet, "/config", "")
	require.Equal(t, http.StatusOK, w.Code)

	var cfg siteconfig.SiteConfig
	require.NoError(t, json.Unmarshal(env.Data, &cfg))
	assert.Equal(t, "Hi", cfg.About.Title)
	assert.Equal(t, siteconfig.DefaultConfig().About.Intro, cfg.About.Intro, "merge fills the gap")
}

func TestPutConfig_NonJSONBody(t *testing.T) {
	store := storage.NewMemoryStore()
	router := newConfigRouter(store)

	// establish a baseline
	_, _ = doRequest(t, router, http.MethodPut, "/config", `{"about":{"title":"Before","intro":"x"}}`)

	w, env := doRequest(t, router, http.MethodPut, "/config", "not json")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.OK)
	assert.Equal(t, "invalid_json", env.Error)

	// the rejected write changed nothing
	_, env = doRequest(t, router, http.MethodGet, "/config", "")
	var cfg siteconfig.SiteConfig
	require.NoError(t, json.Unmarshal(env.Data, &cfg))
	assert.Equal(t, "Before", cfg.About.Title)
}

func TestPutConfig_StoreDown(t *testing.T) {
	store := storage.NewMemoryStore()
	store.Fail = true
	router := newConfigRouter(store)

	w, env := doRequest(t, router, http.MethodPut, "/config", `{"about":{"title":"Hi"}}`)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "blob_unavailable", env.Error)
}

func TestGetConfig_StoreDown_StillServes(t *testing.T) {
	store := storage.NewMemoryStore()
	store.Fail = true
	router := newConfigRouter(store)

	w, env := doRequest(t, router, http.MethodGet, "/config", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.OK)

	var cfg siteconfig.SiteConfig
	require.NoError(t, json.Unmarshal(env.Data, &cfg))
	assert.Equal(t, siteconfig.DefaultConfig().About.Title, cfg.About.Title)
}

func TestOptionsPreflight(t *testing.T) {
	router := newConfigRouter(storage.NewMemoryStore())

	req := httptest.NewRequest(http.MethodOptions, "/config", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, w.Body.Bytes())
}

func TestVersionsEndpoint(t *testing.T) {
	router := newConfigRouter(storage.NewMemoryStore())

	_, _ = doRequest(t, router, http.MethodPut, "/config", `{"about":{"title":"a","intro":"x"}}`)
	_, _ = doRequest(t, router, http.MethodPut, "/config", `{"about":{"title":"b","intro":"y"}}`)

	w, env := doRequest(t, router, http.MethodGet, "/config/versions", "")
	require.Equal(t, http.StatusOK, w.Code)

	var versions []siteconfig.ConfigVersion
	require.NoError(t, json.Unmarshal(env.Data, &versions))
	assert.GreaterOrEqual(t, len(versions), 2)
}

func TestRestoreEndpoint_UnknownVersion(t *testing.T) {
	router := newConfigRouter(storage.NewMemoryStore())

	w, env := doRequest(t, router, http.MethodPost, "/config/versions/42/restore", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "not_found", env.Error)
}

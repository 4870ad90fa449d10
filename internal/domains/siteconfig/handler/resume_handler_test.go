package handler

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"portfolio-backend/internal/domains/siteconfig/repository"
	"portfolio-backend/internal/domains/siteconfig/service"
	uploadService "portfolio-backend/internal/domains/upload/service"
	"portfolio-backend/internal/infrastructure/storage"
	"portfolio-backend/pkg/cache"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResumeRouter(store *storage.MemoryStore) *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfgSvc := service.NewConfigService(repository.NewBlobRepository(store), cache.NewMemoryCache(), 2*time.Second)
	upSvc := uploadService.NewUploadService(store, 2*time.Second)
	h := NewResumeHandler(cfgSvc, upSvc, "uploads/")

	router := gin.New()
	router.GET("/resume/download", h.Download)
	return router
}

func getResume(router *gin.Engine) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/resume/download", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestResumeDownload_FromDataURL(t *testing.T) {
	store := storage.NewMemoryStore()
	ctx := context.Background()

	pdf := []byte("%PDF-1.4 fake")
	dataURL := "data:application/pdf;base64," + base64.StdEncoding.EncodeToString(pdf)
	cfg := fmt.Sprintf(`{"resume":{"fileDataUrl":%q,"fileName":"cv.pdf"}}`, dataURL)
	_, err := store.Put(ctx, "config/current.json", []byte(cfg), "application/json")
	require.NoError(t, err)

	w := getResume(newResumeRouter(store))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, pdf, w.Body.Bytes())
	assert.Contains(t, w.Header().Get("Content-Disposition"), "cv.pdf")
}

func TestResumeDownload_FromStoredUpload(t *testing.T) {
	store := storage.NewMemoryStore()
	ctx := context.Background()

	pdf := []byte("%PDF-1.4 stored")
	_, err := store.Put(ctx, "uploads/1700000000000_cv.pdf", pdf, "application/pdf")
	require.NoError(t, err)
	_, err = store.Put(ctx, "config/current.json",
		[]byte(`{"resume":{"fileName":"cv.pdf"}}`), "application/json")
	require.NoError(t, err)

	w := getResume(newResumeRouter(store))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, pdf, w.Body.Bytes())
}

func TestResumeDownload_ByExactKey(t *testing.T) {
	store := storage.NewMemoryStore()
	ctx := context.Background()

	pdf := []byte("%PDF-1.4 keyed")
	_, err := store.Put(ctx, "uploads/1700000000000_cv.pdf", pdf, "application/pdf")
	require.NoError(t, err)
	// fileUrl holds the object key, so no name scan is needed
	_, err = store.Put(ctx, "config/current.json",
		[]byte(`{"resume":{"fileUrl":"uploads/1700000000000_cv.pdf"}}`), "application/json")
	require.NoError(t, err)

	w := getResume(newResumeRouter(store))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, pdf, w.Body.Bytes())
}

func TestResumeDownload_PicksNewestUpload(t *testing.T) {
	store := storage.NewMemoryStore()
	ctx := context.Background()

	_, err := store.Put(ctx, "uploads/1700000000000_cv.pdf", []byte("old"), "application/pdf")
	require.NoError(t, err)
	_, err = store.Put(ctx, "uploads/1800000000000_cv.pdf", []byte("new"), "application/pdf")
	require.NoError(t, err)
	_, err = store.Put(ctx, "config/current.json",
		[]byte(`{"resume":{"fileName":"cv.pdf"}}`), "application/json")
	require.NoError(t, err)

	w := getResume(newResumeRouter(store))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "new", w.Body.String())
}

func TestResumeDownload_NothingStored(t *testing.T) {
	w := getResume(newResumeRouter(storage.NewMemoryStore()))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "not_found")
}

package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/study-planner-api/internal/service"
	appErrors "github.com/noah-isme/study-planner-api/pkg/errors"
)

type exporterMock struct {
	planID string
	format string
	err    error
}

func (m *exporterMock) Export(ctx context.Context, planID, format string) (*service.ExportFile, error) {
	m.planID, m.format = planID, format
	if m.err != nil {
		return nil, m.err
	}
	return &service.ExportFile{
		ContentType: "text/csv",
		Filename:    "study-plan.csv",
		Body:        []byte("Date,Phase\n"),
	}, nil
}

func newExportRouter(mock *exporterMock) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := &ExportHandler{service: mock}
	router := gin.New()
	router.GET("/plans/:id/export", h.Export)
	return router
}

func TestExportDownloadHeaders(t *testing.T) {
	mock := &exporterMock{}
	router := newExportRouter(mock)
	req, _ := http.NewRequest(http.MethodGet, "/plans/plan-1/export?format=csv", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "csv", mock.format)
	require.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	require.Equal(t, "attachment; filename=study-plan.csv", w.Header().Get("Content-Disposition"))
	require.Equal(t, "Date,Phase\n", w.Body.String())
}

func TestExportDefaultsToJSON(t *testing.T) {
	mock := &exporterMock{}
	router := newExportRouter(mock)
	req, _ := http.NewRequest(http.MethodGet, "/plans/plan-1/export", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "json", mock.format)
}

func TestExportUnsupportedFormat(t *testing.T) {
	mock := &exporterMock{err: appErrors.Clone(appErrors.ErrUnsupportedFormat, "format xml is not supported")}
	router := newExportRouter(mock)
	req, _ := http.NewRequest(http.MethodGet, "/plans/plan-1/export?format=xml", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), appErrors.ErrUnsupportedFormat.Code)
}

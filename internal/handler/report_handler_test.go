package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andeshr/asistencia-api/internal/report"
	"github.com/andeshr/asistencia-api/internal/service"
	appErrors "github.com/andeshr/asistencia-api/pkg/errors"
)

type fakeReportSrv struct {
	report  *report.Report
	hit     bool
	err     error
	lastReq service.BuildReportRequest
}

func (f *fakeReportSrv) Build(_ context.Context, req service.BuildReportRequest) (*report.Report, bool, error) {
	f.lastReq = req
	return f.report, f.hit, f.err
}

type fakeExporter struct {
	payload  []byte
	filename string
	err      error
}

func (f *fakeExporter) RenderCSV(*report.Report) ([]byte, string, error) {
	return f.payload, f.filename, f.err
}

func TestReportHandlerRequiresRange(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewReportHandler(&fakeReportSrv{}, &fakeExporter{})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/reports/markings", nil)

	handler.Markings(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReportHandlerWeeklyAttendanceSuccess(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := &fakeReportSrv{
		report: &report.Report{Title: "Reporte", Variant: report.VariantWeeklyAttendance},
		hit:    true,
	}
	handler := NewReportHandler(srv, &fakeExporter{})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet,
		"/reports/weekly-attendance?start=2024-11-04&end=2024-11-10&area=PRODUCCION", nil)

	handler.WeeklyAttendance(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "weekly-attendance", srv.lastReq.Variant)
	assert.Equal(t, "2024-11-04", srv.lastReq.Start)
	assert.Equal(t, "PRODUCCION", srv.lastReq.Area)

	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, true, envelope.Meta["cache_hit"])
	assert.Equal(t, "Reporte", envelope.Data["title"])
}

func TestReportHandlerServiceError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := &fakeReportSrv{err: appErrors.Clone(appErrors.ErrInvalidRange, "")}
	handler := NewReportHandler(srv, &fakeExporter{})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet,
		"/reports/cost-center?start=2024-11-10&end=2024-11-04", nil)

	handler.CostCenter(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.NotNil(t, envelope.Error)
}

func TestReportHandlerExportCSV(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := &fakeReportSrv{report: &report.Report{Variant: report.VariantMarkings}}
	exporter := &fakeExporter{
		payload:  []byte("Item,NroDoc\n1,40112233\n"),
		filename: "markings_2024-11-04_2024-11-10_20241111_090000.csv",
	}
	handler := NewReportHandler(srv, exporter)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet,
		"/reports/markings/export.csv?start=2024-11-04&end=2024-11-10", nil)
	c.Params = gin.Params{{Key: "variant", Value: "markings"}}

	handler.ExportCSV(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "markings", srv.lastReq.Variant)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "markings_2024-11-04")
	assert.Equal(t, exporter.payload, rec.Body.Bytes())
}

type responseEnvelope struct {
	Data  map[string]interface{} `json:"data"`
	Meta  map[string]interface{} `json:"meta"`
	Error map[string]interface{} `json:"error"`
}

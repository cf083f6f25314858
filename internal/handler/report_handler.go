package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/andeshr/asistencia-api/internal/dto"
	"github.com/andeshr/asistencia-api/internal/report"
	"github.com/andeshr/asistencia-api/internal/service"
	appErrors "github.com/andeshr/asistencia-api/pkg/errors"
	"github.com/andeshr/asistencia-api/pkg/response"
)

type reportBuilder interface {
	Build(ctx context.Context, req service.BuildReportRequest) (*report.Report, bool, error)
}

type csvExporter interface {
	RenderCSV(rep *report.Report) ([]byte, string, error)
}

// ReportHandler exposes the pivot report endpoints.
type ReportHandler struct {
	reports reportBuilder
	exports csvExporter
}

// NewReportHandler constructs handler.
func NewReportHandler(reports reportBuilder, exports csvExporter) *ReportHandler {
	return &ReportHandler{reports: reports, exports: exports}
}

// WeeklyAttendance godoc
// @Summary Weekly attendance pivot report
// @Tags Reports
// @Produce json
// @Param start query string true "Range start (YYYY-MM-DD)"
// @Param end query string true "Range end (YYYY-MM-DD)"
// @Param area query string false "Filter by area"
// @Param planilla query string false "Filter by planilla"
// @Success 200 {object} response.Envelope
// @Router /reports/weekly-attendance [get]
func (h *ReportHandler) WeeklyAttendance(c *gin.Context) {
	h.build(c, report.VariantWeeklyAttendance)
}

// Markings godoc
// @Summary Markings pivot report
// @Tags Reports
// @Produce json
// @Param start query string true "Range start (YYYY-MM-DD)"
// @Param end query string true "Range end (YYYY-MM-DD)"
// @Param area query string false "Filter by area"
// @Param planilla query string false "Filter by planilla"
// @Success 200 {object} response.Envelope
// @Router /reports/markings [get]
func (h *ReportHandler) Markings(c *gin.Context) {
	h.build(c, report.VariantMarkings)
}

// CostCenter godoc
// @Summary Cost center pivot report
// @Tags Reports
// @Produce json
// @Param start query string true "Range start (YYYY-MM-DD)"
// @Param end query string true "Range end (YYYY-MM-DD)"
// @Param area query string false "Filter by area"
// @Param planilla query string false "Filter by planilla"
// @Success 200 {object} response.Envelope
// @Router /reports/cost-center [get]
func (h *ReportHandler) CostCenter(c *gin.Context) {
	h.build(c, report.VariantCostCenter)
}

// ExportCSV godoc
// @Summary Download a pivot report as CSV
// @Tags Reports
// @Produce text/csv
// @Param variant path string true "Report variant" Enums(weekly-attendance, markings, cost-center)
// @Param start query string true "Range start (YYYY-MM-DD)"
// @Param end query string true "Range end (YYYY-MM-DD)"
// @Param area query string false "Filter by area"
// @Param planilla query string false "Filter by planilla"
// @Success 200 {file} file
// @Router /reports/{variant}/export.csv [get]
func (h *ReportHandler) ExportCSV(c *gin.Context) {
	query, err := bindReportQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	rep, _, err := h.reports.Build(c.Request.Context(), service.BuildReportRequest{
		Variant:  c.Param("variant"),
		Start:    query.Start,
		End:      query.End,
		Area:     query.Area,
		Planilla: query.Planilla,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	payload, filename, err := h.exports.RenderCSV(rep)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", payload)
}

func (h *ReportHandler) build(c *gin.Context, variant report.Variant) {
	query, err := bindReportQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	rep, cacheHit, err := h.reports.Build(c.Request.Context(), service.BuildReportRequest{
		Variant:  string(variant),
		Start:    query.Start,
		End:      query.End,
		Area:     query.Area,
		Planilla: query.Planilla,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, rep, nil, map[string]interface{}{"cache_hit": cacheHit})
}

func bindReportQuery(c *gin.Context) (dto.ReportQuery, error) {
	var query dto.ReportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		return query, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid query parameters")
	}
	if query.Start == "" || query.End == "" {
		return query, appErrors.Clone(appErrors.ErrValidation, "start and end required")
	}
	return query, nil
}

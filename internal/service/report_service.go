package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/andeshr/asistencia-api/internal/models"
	"github.com/andeshr/asistencia-api/internal/report"
	appErrors "github.com/andeshr/asistencia-api/pkg/errors"
)

type employeeLister interface {
	List(ctx context.Context, filter models.EmployeeFilter) ([]models.Employee, error)
}

type attendanceLister interface {
	ListRange(ctx context.Context, from, to time.Time) ([]models.AttendanceRecord, error)
}

type holidayLister interface {
	ListRange(ctx context.Context, from, to time.Time) ([]models.Holiday, error)
}

// ReportServiceConfig tunes the build pipeline.
type ReportServiceConfig struct {
	WeekStart    time.Weekday
	CacheTTL     time.Duration
	MaxRangeDays int
}

// ReportServiceParams groups the report service dependencies.
type ReportServiceParams struct {
	Employees  employeeLister
	Attendance attendanceLister
	Holidays   holidayLister
	Cache      *CacheService
	Metrics    *MetricsService
	Validator  *validator.Validate
	Logger     *zap.Logger
	Config     ReportServiceConfig
}

// ReportService orchestrates pivot report builds. It snapshots the backend
// inputs, runs the aggregation pipeline and publishes the result to cache.
// Concurrent builds for the same key share nothing but the generation
// counter that decides which result gets published; a stale build's output
// is discarded, never merged.
type ReportService struct {
	employees   employeeLister
	attendance  attendanceLister
	holidays    holidayLister
	cache       *CacheService
	metrics     *MetricsService
	validator   *validator.Validate
	logger      *zap.Logger
	cfg         ReportServiceConfig
	aggregators map[report.Variant]*report.Aggregator

	mu          sync.Mutex
	generations map[string]uint64
}

// NewReportService constructs a report service.
func NewReportService(params ReportServiceParams) *ReportService {
	cfg := params.Config
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 10 * time.Minute
	}
	if cfg.MaxRangeDays <= 0 {
		cfg.MaxRangeDays = 92
	}
	v := params.Validator
	if v == nil {
		v = validator.New()
	}
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportService{
		employees:  params.Employees,
		attendance: params.Attendance,
		holidays:   params.Holidays,
		cache:      params.Cache,
		metrics:    params.Metrics,
		validator:  v,
		logger:     logger,
		cfg:        cfg,
		aggregators: map[report.Variant]*report.Aggregator{
			report.VariantWeeklyAttendance: report.NewAggregator(report.VariantWeeklyAttendance),
			report.VariantMarkings:         report.NewAggregator(report.VariantMarkings),
			report.VariantCostCenter:       report.NewAggregator(report.VariantCostCenter),
		},
		generations: map[string]uint64{},
	}
}

// BuildReportRequest describes one report build.
type BuildReportRequest struct {
	Variant  string `json:"variant" validate:"required"`
	Start    string `json:"start" validate:"required"`
	End      string `json:"end" validate:"required"`
	Area     string `json:"area"`
	Planilla string `json:"planilla"`
}

// Build returns the pivot report for the request and whether it came from
// cache. Any change of scope triggers a full rebuild; cached payloads are
// never patched incrementally.
func (s *ReportService) Build(ctx context.Context, req BuildReportRequest) (*report.Report, bool, error) {
	variant, start, end, err := s.validateRequest(req)
	if err != nil {
		return nil, false, err
	}

	cacheKey := fmt.Sprintf("report:%s:%s:%s:%s:%s", variant, req.Start, req.End, req.Area, req.Planilla)
	if cached, hit, err := s.tryCache(ctx, cacheKey); err != nil {
		return nil, false, err
	} else if hit {
		return cached, true, nil
	}

	generation := s.nextGeneration(cacheKey)
	buildID := uuid.NewString()

	snapshot, err := s.loadSnapshot(ctx, start, end, req)
	if err != nil {
		return nil, false, err
	}
	snapshot.Title = titleFor(variant, req.Start, req.End)
	snapshot.WeekStart = s.cfg.WeekStart

	buildStart := time.Now()
	result, err := s.aggregators[variant].Aggregate(snapshot)
	if s.metrics != nil {
		s.metrics.ObserveReportBuild(string(variant), time.Since(buildStart))
	}
	if err != nil {
		if isEmptyScope(err) {
			s.logger.Warn("report scope has no employees",
				zap.String("build_id", buildID),
				zap.String("variant", string(variant)),
				zap.String("area", req.Area),
				zap.String("planilla", req.Planilla))
			empty, emptyErr := report.EmptyReport(variant, snapshot)
			return empty, false, emptyErr
		}
		return nil, false, err
	}

	if s.isCurrent(cacheKey, generation) {
		s.persistCache(ctx, cacheKey, result)
	} else {
		// A newer build for the same key started while this one ran.
		s.logger.Debug("discarding stale report build",
			zap.String("build_id", buildID),
			zap.String("key", cacheKey))
	}

	s.logger.Info("report built",
		zap.String("build_id", buildID),
		zap.String("variant", string(variant)),
		zap.Int("employees", result.Summary.TotalEmployees),
		zap.Int("weeks", len(result.WeekGroups)),
		zap.Duration("took", time.Since(buildStart)))
	return result, false, nil
}

// Invalidate drops every cached report for the given variant.
func (s *ReportService) Invalidate(ctx context.Context, variant string) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Invalidate(ctx, fmt.Sprintf("report:%s:*", variant))
}

func (s *ReportService) validateRequest(req BuildReportRequest) (report.Variant, time.Time, time.Time, error) {
	var zero time.Time
	if err := s.validator.Struct(req); err != nil {
		return "", zero, zero, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid report request")
	}
	variant := report.Variant(req.Variant)
	if !variant.Valid() {
		return "", zero, zero, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown report variant %q", req.Variant))
	}
	start, err := time.Parse("2006-01-02", req.Start)
	if err != nil {
		return "", zero, zero, appErrors.Clone(appErrors.ErrValidation, "invalid start date, expected YYYY-MM-DD")
	}
	end, err := time.Parse("2006-01-02", req.End)
	if err != nil {
		return "", zero, zero, appErrors.Clone(appErrors.ErrValidation, "invalid end date, expected YYYY-MM-DD")
	}
	if end.Before(start) {
		return "", zero, zero, appErrors.Clone(appErrors.ErrInvalidRange, "")
	}
	if days := int(end.Sub(start).Hours()/24) + 1; days > s.cfg.MaxRangeDays {
		return "", zero, zero, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("range exceeds %d days", s.cfg.MaxRangeDays))
	}
	return variant, start, end, nil
}

func (s *ReportService) loadSnapshot(ctx context.Context, start, end time.Time, req BuildReportRequest) (report.Input, error) {
	in := report.Input{Start: start, End: end}

	queryStart := time.Now()
	employees, err := s.employees.List(ctx, models.EmployeeFilter{Area: req.Area, Planilla: req.Planilla})
	if err != nil {
		return in, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load roster")
	}
	if s.metrics != nil {
		s.metrics.ObserveDBQuery("employees_list", time.Since(queryStart))
	}

	queryStart = time.Now()
	records, err := s.attendance.ListRange(ctx, start, end)
	if err != nil {
		return in, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load attendance records")
	}
	if s.metrics != nil {
		s.metrics.ObserveDBQuery("attendance_range", time.Since(queryStart))
	}

	queryStart = time.Now()
	holidays, err := s.holidays.ListRange(ctx, start, end)
	if err != nil {
		return in, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load holiday calendar")
	}
	if s.metrics != nil {
		s.metrics.ObserveDBQuery("holidays_range", time.Since(queryStart))
	}

	in.Employees = employees
	in.Records = groupRecords(records)
	in.Holidays = holidaySet(holidays)
	return in, nil
}

func (s *ReportService) tryCache(ctx context.Context, key string) (*report.Report, bool, error) {
	if s.cache == nil {
		return nil, false, nil
	}
	var cached report.Report
	hit, err := s.cache.Get(ctx, key, &cached)
	if err != nil || !hit {
		return nil, false, err
	}
	return &cached, true, nil
}

func (s *ReportService) persistCache(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, value, s.cfg.CacheTTL); err != nil {
		s.logger.Warn("report cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func (s *ReportService) nextGeneration(key string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generations[key]++
	return s.generations[key]
}

func (s *ReportService) isCurrent(key string, generation uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generations[key] == generation
}

func isEmptyScope(err error) bool {
	var appErr *appErrors.Error
	return errors.As(err, &appErr) && appErr.Code == appErrors.ErrEmptyEmployeeSet.Code
}

func groupRecords(records []models.AttendanceRecord) map[string]map[string]*models.AttendanceRecord {
	grouped := map[string]map[string]*models.AttendanceRecord{}
	for i := range records {
		byDate, ok := grouped[records[i].EmployeeID]
		if !ok {
			byDate = map[string]*models.AttendanceRecord{}
			grouped[records[i].EmployeeID] = byDate
		}
		byDate[report.DateKey(records[i].Date)] = &records[i]
	}
	return grouped
}

func holidaySet(holidays []models.Holiday) map[string]struct{} {
	set := make(map[string]struct{}, len(holidays))
	for _, holiday := range holidays {
		set[report.DateKey(holiday.Date)] = struct{}{}
	}
	return set
}

func titleFor(variant report.Variant, start, end string) string {
	switch variant {
	case report.VariantMarkings:
		return fmt.Sprintf("Reporte de Marcaciones %s - %s", start, end)
	case report.VariantCostCenter:
		return fmt.Sprintf("Reporte por Centro de Costo %s - %s", start, end)
	default:
		return fmt.Sprintf("Reporte de Asistencia Semanal %s - %s", start, end)
	}
}

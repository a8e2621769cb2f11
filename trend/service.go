package trend

import (
	"context"
	"errors"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/uber-go/tally"

	"github.com/bitmark-inc/vitals-api/consts"
	"github.com/bitmark-inc/vitals-api/schema"
	"github.com/bitmark-inc/vitals-api/store"
)

const (
	trendLogPrefix = "trend"
)

var (
	ErrInvalidLookback = errors.New("lookback days must be positive")
	ErrEmptyBiomarker  = errors.New("biomarker name is empty")
)

// Service answers trend queries for a patient. It keeps no state between
// calls; every query reads the record store again.
type Service struct {
	reports store.Report
	tracked store.TrackedMetric
	policy  Policy
	advisor *Advisor
	scope   tally.Scope
	now     func() time.Time
}

func NewService(reports store.Report, tracked store.TrackedMetric, policy Policy, advisor *Advisor, scope tally.Scope) *Service {
	if scope == nil {
		scope = tally.NoopScope
	}

	return &Service{
		reports: reports,
		tracked: tracked,
		policy:  policy,
		advisor: advisor,
		scope:   scope.SubScope(trendLogPrefix),
		now:     time.Now,
	}
}

// TimeSeries returns the observations of a biomarker within the last
// `lookbackDays` days, oldest first
func (s *Service) TimeSeries(ctx context.Context, patientID, biomarkerName string, lookbackDays int) ([]schema.Observation, error) {
	series, err := s.extract(ctx, patientID, biomarkerName, lookbackDays)
	if err != nil {
		return nil, err
	}
	return series.Observations, nil
}

// Trend analyzes a biomarker within the last `lookbackDays` days
func (s *Service) Trend(ctx context.Context, patientID, biomarkerName string, lookbackDays int) (*schema.TrendResult, error) {
	series, err := s.extract(ctx, patientID, biomarkerName, lookbackDays)
	if err != nil {
		return nil, err
	}

	result := s.analyze(series)
	return &result, nil
}

// Dashboard analyzes every biomarker a patient tracks. A failing store read
// fails the whole dashboard.
func (s *Service) Dashboard(ctx context.Context, patientID string, lookbackDays int) (*schema.DashboardView, error) {
	if lookbackDays <= 0 {
		return nil, ErrInvalidLookback
	}

	sw := s.scope.Timer("dashboard").Start()
	defer sw.Stop()

	tracked, err := s.tracked.GetTrackedMetrics(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if tracked == nil {
		tracked = []string{}
	}

	view := &schema.DashboardView{
		PatientID:      patientID,
		TrackedMetrics: tracked,
		Trends:         make(map[string]schema.TrendResult, len(tracked)),
		TimeSeries:     make(map[string][]schema.Observation, len(tracked)),
		Summary: schema.DashboardSummary{
			TotalTracked: len(tracked),
		},
	}

	if len(tracked) == 0 {
		return view, nil
	}

	reports, err := s.reports.GetReportsByPatient(ctx, patientID, consts.MaxReportsPerPatient)
	if err != nil {
		return nil, err
	}

	since := s.since(lookbackDays)
	for _, name := range tracked {
		series := ExtractFromReports(reports, name, since)
		result := s.analyze(series)

		view.Trends[name] = result
		view.TimeSeries[name] = series.Observations
		addToSummary(&view.Summary, result)
	}

	log.WithFields(log.Fields{
		"prefix":     trendLogPrefix,
		"patient_id": patientID,
		"summary":    view.Summary,
	}).Debug("dashboard aggregated")

	return view, nil
}

// addToSummary adds a trend to the trajectory buckets of a summary
func addToSummary(summary *schema.DashboardSummary, r schema.TrendResult) {
	switch r.ShortTermTrajectory {
	case schema.TrajectoryImproving:
		summary.Improving++
	case schema.TrajectoryWorsening:
		summary.Worsening++
	default:
		summary.Stable++
	}

	if r.Direction == schema.DirectionNoData || r.Direction == schema.DirectionInsufficientData {
		summary.NoData++
	}
}

// Advice returns at most `limit` advice lines for the tracked biomarkers in
// tracking order, or a single generic line when none applies
func (s *Service) Advice(ctx context.Context, patientID string, limit int, lang string) ([]string, error) {
	if limit <= 0 {
		limit = consts.DefaultAdviceLimit
	}

	tracked, err := s.tracked.GetTrackedMetrics(ctx, patientID)
	if err != nil {
		return nil, err
	}

	advice := make([]string, 0, limit)
	if len(tracked) > 0 {
		reports, err := s.reports.GetReportsByPatient(ctx, patientID, consts.MaxReportsPerPatient)
		if err != nil {
			return nil, err
		}

		since := s.since(consts.AdviceLookbackDays)
		for _, name := range tracked {
			result := s.analyze(ExtractFromReports(reports, name, since))
			if line, ok := s.advisor.Advise(result, lang); ok {
				advice = append(advice, line)
			}
			if len(advice) >= limit {
				break
			}
		}
	}

	if len(advice) == 0 {
		s.scope.Counter("advice_fallback").Inc(1)
		return []string{s.advisor.Fallback(lang)}, nil
	}

	return advice, nil
}

// TrackedMetrics returns the biomarkers a patient follows
func (s *Service) TrackedMetrics(ctx context.Context, patientID string) ([]string, error) {
	return s.tracked.GetTrackedMetrics(ctx, patientID)
}

// AddTracked starts tracking a biomarker. Adding a tracked name is a no-op.
func (s *Service) AddTracked(ctx context.Context, patientID, biomarkerName string) (bool, error) {
	name := strings.TrimSpace(biomarkerName)
	if name == "" {
		return false, ErrEmptyBiomarker
	}
	return s.tracked.AddTrackedMetric(ctx, patientID, name)
}

// RemoveTracked stops tracking a biomarker. Removing an untracked name is a
// no-op.
func (s *Service) RemoveTracked(ctx context.Context, patientID, biomarkerName string) (bool, error) {
	name := strings.TrimSpace(biomarkerName)
	if name == "" {
		return false, ErrEmptyBiomarker
	}
	return s.tracked.RemoveTrackedMetric(ctx, patientID, name)
}

// ReplaceTracked sets the whole tracked list, keeping the first occurrence
// of repeated names
func (s *Service) ReplaceTracked(ctx context.Context, patientID string, names []string) (bool, error) {
	seen := make(map[string]bool, len(names))
	cleaned := make([]string, 0, len(names))
	for _, n := range names {
		name := strings.TrimSpace(n)
		if name == "" {
			return false, ErrEmptyBiomarker
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		cleaned = append(cleaned, name)
	}

	return s.tracked.SetTrackedMetrics(ctx, patientID, cleaned)
}

func (s *Service) extract(ctx context.Context, patientID, biomarkerName string, lookbackDays int) (schema.TimeSeries, error) {
	if lookbackDays <= 0 {
		return schema.TimeSeries{}, ErrInvalidLookback
	}
	if strings.TrimSpace(biomarkerName) == "" {
		return schema.TimeSeries{}, ErrEmptyBiomarker
	}

	reports, err := s.reports.GetReportsByPatient(ctx, patientID, consts.MaxReportsPerPatient)
	if err != nil {
		return schema.TimeSeries{}, err
	}

	return ExtractFromReports(reports, biomarkerName, s.since(lookbackDays)), nil
}

func (s *Service) analyze(series schema.TimeSeries) schema.TrendResult {
	result := Analyze(series, s.policy)
	s.scope.Tagged(map[string]string{
		"direction": string(result.Direction),
	}).Counter("analyzed").Inc(1)
	return result
}

func (s *Service) since(lookbackDays int) time.Time {
	return s.now().Add(-time.Duration(lookbackDays) * 24 * time.Hour)
}

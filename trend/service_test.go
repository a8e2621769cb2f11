package trend

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
	"github.com/uber-go/tally"

	"github.com/bitmark-inc/vitals-api/consts"
	"github.com/bitmark-inc/vitals-api/mocks"
	"github.com/bitmark-inc/vitals-api/schema"
	"github.com/bitmark-inc/vitals-api/utils"
)

var errStoreDown = errors.New("store is down")

type ServiceTestSuite struct {
	suite.Suite
	ctl   *gomock.Controller
	store *mocks.MockMongoStore
	scope tally.TestScope
	svc   *Service
}

func (s *ServiceTestSuite) SetupTest() {
	bundle, err := utils.NewI18NBundle("", AdviceMessages...)
	s.Require().NoError(err)

	s.ctl = gomock.NewController(s.T())
	s.store = mocks.NewMockMongoStore(s.ctl)
	s.scope = tally.NewTestScope("", nil)
	s.svc = NewService(s.store, s.store, DefaultPolicy(), NewAdvisor(bundle), s.scope)
	s.svc.now = func() time.Time { return now }
}

func (s *ServiceTestSuite) TearDownTest() {
	s.ctl.Finish()
}

func (s *ServiceTestSuite) expectReports(reports []schema.Report) {
	s.store.EXPECT().
		GetReportsByPatient(gomock.Any(), "patient-1", consts.MaxReportsPerPatient).
		Return(reports, nil).
		Times(1)
}

func (s *ServiceTestSuite) TestTimeSeries() {
	s.expectReports(patientReports)

	observations, err := s.svc.TimeSeries(context.Background(), "patient-1", "Fasting Glucose", 90)
	s.NoError(err)
	s.Len(observations, 3)
}

func (s *ServiceTestSuite) TestTimeSeriesRejectsBadInput() {
	_, err := s.svc.TimeSeries(context.Background(), "patient-1", "Fasting Glucose", 0)
	s.Equal(ErrInvalidLookback, err)

	_, err = s.svc.TimeSeries(context.Background(), "patient-1", "  ", 30)
	s.Equal(ErrEmptyBiomarker, err)
}

func (s *ServiceTestSuite) TestTimeSeriesStoreError() {
	s.store.EXPECT().GetReportsByPatient(gomock.Any(), "patient-1", gomock.Any()).Return(nil, errStoreDown)

	observations, err := s.svc.TimeSeries(context.Background(), "patient-1", "Fasting Glucose", 90)
	s.Equal(errStoreDown, err)
	s.Nil(observations)
}

func (s *ServiceTestSuite) TestTrend() {
	s.expectReports(patientReports)

	r, err := s.svc.Trend(context.Background(), "patient-1", "Fasting Glucose", 90)
	s.NoError(err)
	s.Equal(schema.DirectionIncreasing, r.Direction)
	s.Equal(3, r.DataPoints)
	s.Equal(2, r.NumericDataPoints)
	s.Equal(13.46, r.ChangePercentage)
	s.Equal(schema.VerdictHigh, r.LatestVerdict)

	counters := s.scope.Snapshot().Counters()
	s.Contains(counters, "trend.analyzed+direction=increasing")
}

func (s *ServiceTestSuite) TestTrendWithoutReports() {
	s.expectReports([]schema.Report{})

	r, err := s.svc.Trend(context.Background(), "patient-1", "Fasting Glucose", 90)
	s.NoError(err)
	s.Equal(schema.DirectionNoData, r.Direction)
	s.Equal(0, r.DataPoints)
}

func (s *ServiceTestSuite) TestDashboardWithoutTrackedMetrics() {
	s.store.EXPECT().GetTrackedMetrics(gomock.Any(), "patient-1").Return([]string{}, nil)

	view, err := s.svc.Dashboard(context.Background(), "patient-1", 365)
	s.NoError(err)
	s.Equal("patient-1", view.PatientID)
	s.Equal([]string{}, view.TrackedMetrics)
	s.Empty(view.Trends)
	s.Empty(view.TimeSeries)
	s.Equal(schema.DashboardSummary{}, view.Summary)
}

func (s *ServiceTestSuite) TestDashboard() {
	s.store.EXPECT().GetTrackedMetrics(gomock.Any(), "patient-1").
		Return([]string{"Fasting Glucose", "Sodium", "Ferritin"}, nil)
	s.expectReports(patientReports)

	view, err := s.svc.Dashboard(context.Background(), "patient-1", 365)
	s.NoError(err)
	s.Len(view.Trends, 3)
	s.Len(view.TimeSeries, 3)

	s.Equal(schema.TrajectoryImproving, view.Trends["Fasting Glucose"].ShortTermTrajectory)
	s.Equal(schema.DirectionStable, view.Trends["Sodium"].Direction)
	s.Equal(schema.DirectionNoData, view.Trends["Ferritin"].Direction)
	s.Empty(view.TimeSeries["Ferritin"])
	s.Len(view.TimeSeries["Sodium"], 4)

	s.Equal(schema.DashboardSummary{
		TotalTracked: 3,
		Improving:    1,
		Worsening:    0,
		Stable:       2,
		NoData:       1,
	}, view.Summary)
}

func (s *ServiceTestSuite) TestDashboardFailsAsAWhole() {
	s.store.EXPECT().GetTrackedMetrics(gomock.Any(), "patient-1").Return([]string{"Sodium"}, nil)
	s.store.EXPECT().GetReportsByPatient(gomock.Any(), "patient-1", gomock.Any()).Return(nil, errStoreDown)

	view, err := s.svc.Dashboard(context.Background(), "patient-1", 365)
	s.Equal(errStoreDown, err)
	s.Nil(view)
}

func (s *ServiceTestSuite) TestDashboardUnknownPatient() {
	s.store.EXPECT().GetTrackedMetrics(gomock.Any(), "nobody").Return(nil, errStoreDown)

	_, err := s.svc.Dashboard(context.Background(), "nobody", 365)
	s.Equal(errStoreDown, err)
}

func (s *ServiceTestSuite) TestAdviceForImprovingBiomarker() {
	reports := []schema.Report{
		glucoseReport("r3", 0, "72", schema.VerdictHigh),
		glucoseReport("r2", 30, "65", schema.VerdictNormal),
		glucoseReport("r1", 60, "60", schema.VerdictNormal),
	}
	s.store.EXPECT().GetTrackedMetrics(gomock.Any(), "patient-1").Return([]string{"Fasting Glucose"}, nil)
	s.expectReports(reports)

	advice, err := s.svc.Advice(context.Background(), "patient-1", 5, "en")
	s.NoError(err)
	if s.Len(advice, 1) {
		s.Contains(advice[0], "Fasting Glucose")
		s.Contains(advice[0], "20.0%")
		s.Contains(advice[0], "Keep up your current routine")
	}
}

func (s *ServiceTestSuite) TestAdviceIsCapped() {
	s.store.EXPECT().GetTrackedMetrics(gomock.Any(), "patient-1").
		Return([]string{"Sodium", "Fasting Glucose", "Sodium"}, nil)
	s.expectReports(patientReports)

	advice, err := s.svc.Advice(context.Background(), "patient-1", 1, "en")
	s.NoError(err)
	if s.Len(advice, 1) {
		s.True(strings.HasPrefix(advice[0], "Your Sodium is within the normal range"))
	}
}

func (s *ServiceTestSuite) TestAdviceFallback() {
	s.store.EXPECT().GetTrackedMetrics(gomock.Any(), "patient-1").Return([]string{}, nil)

	advice, err := s.svc.Advice(context.Background(), "patient-1", 0, "en")
	s.NoError(err)
	s.Equal([]string{defaultMessage(adviceFallbackID).Other}, advice)
}

func (s *ServiceTestSuite) TestAdviceStoreError() {
	s.store.EXPECT().GetTrackedMetrics(gomock.Any(), "patient-1").Return([]string{"Sodium"}, nil)
	s.store.EXPECT().GetReportsByPatient(gomock.Any(), "patient-1", gomock.Any()).Return(nil, errStoreDown)

	advice, err := s.svc.Advice(context.Background(), "patient-1", 5, "en")
	s.Equal(errStoreDown, err)
	s.Nil(advice)
}

func (s *ServiceTestSuite) TestAddTrackedTrimsName() {
	s.store.EXPECT().AddTrackedMetric(gomock.Any(), "patient-1", "HbA1c").Return(true, nil)

	ok, err := s.svc.AddTracked(context.Background(), "patient-1", "  HbA1c ")
	s.NoError(err)
	s.True(ok)

	_, err = s.svc.AddTracked(context.Background(), "patient-1", "")
	s.Equal(ErrEmptyBiomarker, err)
}

func (s *ServiceTestSuite) TestRemoveTracked() {
	s.store.EXPECT().RemoveTrackedMetric(gomock.Any(), "patient-1", "HbA1c").Return(true, nil)

	ok, err := s.svc.RemoveTracked(context.Background(), "patient-1", "HbA1c")
	s.NoError(err)
	s.True(ok)

	_, err = s.svc.RemoveTracked(context.Background(), "patient-1", " ")
	s.Equal(ErrEmptyBiomarker, err)
}

func (s *ServiceTestSuite) TestReplaceTrackedDropsDuplicates() {
	s.store.EXPECT().
		SetTrackedMetrics(gomock.Any(), "patient-1", []string{"HbA1c", "LDL"}).
		Return(true, nil)

	ok, err := s.svc.ReplaceTracked(context.Background(), "patient-1", []string{"HbA1c", " LDL", "HbA1c"})
	s.NoError(err)
	s.True(ok)
}

func (s *ServiceTestSuite) TestReplaceTrackedRejectsEmptyName() {
	_, err := s.svc.ReplaceTracked(context.Background(), "patient-1", []string{"HbA1c", ""})
	s.Equal(ErrEmptyBiomarker, err)
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/vitals-api/mocks"
	"github.com/bitmark-inc/vitals-api/schema"
	"github.com/bitmark-inc/vitals-api/store"
)

func TestCachedReportReadsThrough(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	reports := []schema.Report{{ReportID: "r1", PatientID: "patient-a"}}
	m.EXPECT().GetReportsByPatient(gomock.Any(), "patient-a", int64(10)).Return(reports, nil).Times(1)
	m.EXPECT().GetReportsByPatient(gomock.Any(), "patient-a", int64(20)).Return(reports, nil).Times(1)

	cached := store.NewCachedReport(m, 16, time.Minute)

	for i := 0; i < 3; i++ {
		result, err := cached.GetReportsByPatient(context.Background(), "patient-a", 10)
		assert.NoError(t, err)
		assert.Equal(t, reports, result)
	}

	_, err := cached.GetReportsByPatient(context.Background(), "patient-a", 20)
	assert.NoError(t, err)
}

func TestCachedReportDoesNotCacheErrors(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	gomock.InOrder(
		m.EXPECT().GetReportsByPatient(gomock.Any(), "patient-a", int64(10)).Return(nil, errors.New("timeout")),
		m.EXPECT().GetReportsByPatient(gomock.Any(), "patient-a", int64(10)).Return([]schema.Report{}, nil),
	)

	cached := store.NewCachedReport(m, 16, time.Minute)

	_, err := cached.GetReportsByPatient(context.Background(), "patient-a", 10)
	assert.Error(t, err)

	result, err := cached.GetReportsByPatient(context.Background(), "patient-a", 10)
	assert.NoError(t, err)
	assert.Empty(t, result)
}

func TestCachedReportDisabled(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)

	assert.Equal(t, store.Report(m), store.NewCachedReport(m, 0, time.Minute))
	assert.Equal(t, store.Report(m), store.NewCachedReport(m, 16, 0))
}

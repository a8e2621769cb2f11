package store

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/vitals-api/schema"
)

type cachedReport struct {
	Report
	cache *expirable.LRU[string, []schema.Report]
}

// NewCachedReport puts a read-through cache in front of a report store.
// Reports become visible to readers at most `ttl` after they are written.
// A non-positive size or ttl returns the store unchanged.
func NewCachedReport(inner Report, size int, ttl time.Duration) Report {
	if size <= 0 || ttl <= 0 {
		return inner
	}

	log.WithFields(log.Fields{
		"prefix": mongoLogPrefix,
		"size":   size,
		"ttl":    ttl,
	}).Info("report cache enabled")

	return &cachedReport{
		Report: inner,
		cache:  expirable.NewLRU[string, []schema.Report](size, nil, ttl),
	}
}

func (c *cachedReport) GetReportsByPatient(ctx context.Context, patientID string, limit int64) ([]schema.Report, error) {
	key := fmt.Sprintf("%s:%d", patientID, limit)
	if reports, ok := c.cache.Get(key); ok {
		return reports, nil
	}

	reports, err := c.Report.GetReportsByPatient(ctx, patientID, limit)
	if err != nil {
		return nil, err
	}

	c.cache.Add(key, reports)
	return reports, nil
}

package store

import (
	"context"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/vitals-api/schema"
)

type Report interface {
	GetReportsByPatient(ctx context.Context, patientID string, limit int64) ([]schema.Report, error)
}

// GetReportsByPatient returns at most `limit` reports of a patient, the most
// recently processed first
func (m *mongoDB) GetReportsByPatient(ctx context.Context, patientID string, limit int64) ([]schema.Report, error) {
	result, err := m.execute(func() (interface{}, error) {
		c := m.client.Database(m.database).Collection(schema.ReportCollection)
		ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
		defer cancel()

		query, opts := reportQuery(patientID, limit)
		cur, err := c.Find(ctx, query, opts)
		if err != nil {
			return nil, err
		}
		defer cur.Close(ctx)

		reports := make([]schema.Report, 0)
		for cur.Next(ctx) {
			var r schema.Report
			if err := cur.Decode(&r); err != nil {
				return nil, err
			}
			reports = append(reports, r)
		}

		return reports, cur.Err()
	})
	if err != nil {
		log.WithFields(log.Fields{
			"prefix":     mongoLogPrefix,
			"patient_id": patientID,
			"error":      err,
		}).Error("get reports by patient")
		return nil, err
	}

	return result.([]schema.Report), nil
}

func reportQuery(patientID string, limit int64) (bson.M, *options.FindOptions) {
	query := bson.M{
		"patient_id": patientID,
	}
	opts := options.Find().SetSort(bson.M{"processed_at": -1})
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}
	return query, opts
}

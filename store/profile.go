package store

import (
	"context"
	"errors"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/vitals-api/schema"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrProfileExists   = errors.New("profile already exists")
)

type Profile interface {
	CreateProfile(ctx context.Context, accountNumber, patientID string) error
	GetProfile(ctx context.Context, patientID string) (*schema.Profile, error)
	DeleteProfile(ctx context.Context, patientID string) error
	IsInstitutionAuthorized(ctx context.Context, patientID, institutionID string) (bool, error)
	GrantInstitution(ctx context.Context, patientID, institutionID string) error
	RevokeInstitution(ctx context.Context, patientID, institutionID string) error
}

type TrackedMetric interface {
	GetTrackedMetrics(ctx context.Context, patientID string) ([]string, error)
	SetTrackedMetrics(ctx context.Context, patientID string, names []string) (bool, error)
	AddTrackedMetric(ctx context.Context, patientID, name string) (bool, error)
	RemoveTrackedMetric(ctx context.Context, patientID, name string) (bool, error)
}

// CreateProfile creates a patient profile with nothing tracked yet
func (m *mongoDB) CreateProfile(ctx context.Context, accountNumber, patientID string) error {
	_, err := m.execute(func() (interface{}, error) {
		c := m.client.Database(m.database).Collection(schema.ProfileCollection)
		ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
		defer cancel()

		_, err := c.InsertOne(ctx, schema.Profile{
			ID:                     patientID,
			AccountNumber:          accountNumber,
			TrackedMetrics:         []string{},
			AuthorizedInstitutions: []string{},
			CreatedAt:              time.Now().UTC(),
		})
		if we, ok := err.(mongo.WriteException); ok {
			if 1 == len(we.WriteErrors) && DuplicateKeyCode == we.WriteErrors[0].Code {
				return nil, ErrProfileExists
			}
		}
		return nil, err
	})

	return err
}

// GetProfile returns the profile of a patient
func (m *mongoDB) GetProfile(ctx context.Context, patientID string) (*schema.Profile, error) {
	result, err := m.execute(func() (interface{}, error) {
		c := m.client.Database(m.database).Collection(schema.ProfileCollection)
		ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
		defer cancel()

		var p schema.Profile
		if err := c.FindOne(ctx, bson.M{"id": patientID}).Decode(&p); err != nil {
			if err == mongo.ErrNoDocuments {
				return nil, ErrProfileNotFound
			}
			return nil, err
		}
		return &p, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*schema.Profile), nil
}

// DeleteProfile removes a patient profile. Reports are kept.
func (m *mongoDB) DeleteProfile(ctx context.Context, patientID string) error {
	_, err := m.execute(func() (interface{}, error) {
		c := m.client.Database(m.database).Collection(schema.ProfileCollection)
		ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
		defer cancel()

		return c.DeleteOne(ctx, bson.M{"id": patientID})
	})

	return err
}

// IsInstitutionAuthorized tells whether a patient has granted an institution
// access to their records
func (m *mongoDB) IsInstitutionAuthorized(ctx context.Context, patientID, institutionID string) (bool, error) {
	if institutionID == "" {
		return false, nil
	}

	result, err := m.execute(func() (interface{}, error) {
		c := m.client.Database(m.database).Collection(schema.ProfileCollection)
		ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
		defer cancel()

		return c.CountDocuments(ctx, bson.M{
			"id":                      patientID,
			"authorized_institutions": institutionID,
		})
	})
	if err != nil {
		return false, err
	}

	return result.(int64) > 0, nil
}

func (m *mongoDB) GrantInstitution(ctx context.Context, patientID, institutionID string) error {
	_, err := m.updateProfile(ctx, patientID, bson.M{
		"$addToSet": bson.M{"authorized_institutions": institutionID},
	})
	return err
}

func (m *mongoDB) RevokeInstitution(ctx context.Context, patientID, institutionID string) error {
	_, err := m.updateProfile(ctx, patientID, bson.M{
		"$pull": bson.M{"authorized_institutions": institutionID},
	})
	return err
}

// GetTrackedMetrics returns the ordered list of biomarkers a patient follows
func (m *mongoDB) GetTrackedMetrics(ctx context.Context, patientID string) ([]string, error) {
	result, err := m.execute(func() (interface{}, error) {
		c := m.client.Database(m.database).Collection(schema.ProfileCollection)
		ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
		defer cancel()

		var p schema.Profile
		err := c.FindOne(ctx, bson.M{"id": patientID},
			options.FindOne().SetProjection(bson.M{"tracked_metrics": 1})).Decode(&p)
		if err != nil {
			if err == mongo.ErrNoDocuments {
				return nil, ErrProfileNotFound
			}
			return nil, err
		}
		if p.TrackedMetrics == nil {
			p.TrackedMetrics = []string{}
		}
		return p.TrackedMetrics, nil
	})
	if err != nil {
		return nil, err
	}

	return result.([]string), nil
}

// SetTrackedMetrics replaces the whole tracked list of a patient
func (m *mongoDB) SetTrackedMetrics(ctx context.Context, patientID string, names []string) (bool, error) {
	if names == nil {
		names = []string{}
	}
	return m.updateProfile(ctx, patientID, bson.M{
		"$set": bson.M{"tracked_metrics": names},
	})
}

// AddTrackedMetric appends a biomarker to the tracked list unless it is
// already there
func (m *mongoDB) AddTrackedMetric(ctx context.Context, patientID, name string) (bool, error) {
	return m.updateProfile(ctx, patientID, bson.M{
		"$addToSet": bson.M{"tracked_metrics": name},
	})
}

// RemoveTrackedMetric drops a biomarker from the tracked list. Removing a
// name that is not tracked succeeds.
func (m *mongoDB) RemoveTrackedMetric(ctx context.Context, patientID, name string) (bool, error) {
	return m.updateProfile(ctx, patientID, bson.M{
		"$pull": bson.M{"tracked_metrics": name},
	})
}

func (m *mongoDB) updateProfile(ctx context.Context, patientID string, update bson.M) (bool, error) {
	_, err := m.execute(func() (interface{}, error) {
		c := m.client.Database(m.database).Collection(schema.ProfileCollection)
		ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
		defer cancel()

		result, err := c.UpdateOne(ctx, bson.M{"id": patientID}, update)
		if err != nil {
			return nil, err
		}
		if result.MatchedCount == 0 {
			return nil, ErrProfileNotFound
		}
		return result, nil
	})
	if err != nil {
		log.WithFields(log.Fields{
			"prefix":     mongoLogPrefix,
			"patient_id": patientID,
			"error":      err,
		}).Warn("update profile")
		return false, err
	}

	return true, nil
}

package store

import (
	"context"
	"errors"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	mongoLogPrefix = "mongo"
	defaultTimeout = 5 * time.Second

	DuplicateKeyCode = 11000
)

// MongoStore - interface for mongodb operations
type MongoStore interface {
	Report
	Profile
	TrackedMetric
	Closer
	Pinger
}

// Closer - close db connection
type Closer interface {
	Close()
}

// Pinger - ping database
type Pinger interface {
	Ping() error
}

// BreakerConfig tunes the circuit breaker in front of mongo. Zero values
// fall back to the gobreaker defaults.
type BreakerConfig struct {
	MaxRequests         uint32
	Interval            time.Duration
	Timeout             time.Duration
	ConsecutiveFailures uint32
}

type mongoDB struct {
	client   *mongo.Client
	database string
	breaker  *gobreaker.CircuitBreaker
}

// Ping - ping mongo db
func (m *mongoDB) Ping() error {
	return m.client.Ping(context.Background(), nil)
}

// Close - close mongo db connections
func (m *mongoDB) Close() {
	log.WithField("prefix", mongoLogPrefix).Info("closing mongo db connections")
	_ = m.client.Disconnect(context.Background())
}

// execute runs a mongo operation through the circuit breaker. Errors that
// describe the request rather than the database do not count as failures.
func (m *mongoDB) execute(fn func() (interface{}, error)) (interface{}, error) {
	return m.breaker.Execute(fn)
}

func isBreakerSuccess(err error) bool {
	switch {
	case err == nil:
		return true
	case errors.Is(err, ErrProfileNotFound),
		errors.Is(err, mongo.ErrNoDocuments),
		errors.Is(err, context.Canceled):
		return true
	default:
		return false
	}
}

func newBreaker(conf BreakerConfig) *gobreaker.CircuitBreaker {
	settings := gobreaker.Settings{
		Name:         mongoLogPrefix,
		MaxRequests:  conf.MaxRequests,
		Interval:     conf.Interval,
		Timeout:      conf.Timeout,
		IsSuccessful: isBreakerSuccess,
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			log.WithFields(log.Fields{
				"prefix": mongoLogPrefix,
				"from":   from.String(),
				"to":     to.String(),
			}).Warn("circuit breaker state changed")
		},
	}

	if conf.ConsecutiveFailures > 0 {
		failures := conf.ConsecutiveFailures
		settings.ReadyToTrip = func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		}
	}

	return gobreaker.NewCircuitBreaker(settings)
}

// NewMongoStore - return mongo db operations
func NewMongoStore(client *mongo.Client, database string, breaker BreakerConfig) MongoStore {
	return &mongoDB{
		client:   client,
		database: database,
		breaker:  newBreaker(breaker),
	}
}

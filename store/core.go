package store

import (
	"github.com/jinzhu/gorm"

	"github.com/bitmark-inc/vitals-api/schema"
)

//go:generate mockgen -destination=../mocks/mock_store.go -package=mocks github.com/bitmark-inc/vitals-api/store MongoStore,VitalsCore

// VitalsCore is the relational datastore for registered accounts
type VitalsCore interface {
	Ping() error

	// Account
	CreateAccount(accountNumber string, role schema.Role, institutionID string, metadata map[string]interface{}) (*schema.Account, error)
	GetAccount(accountNumber string) (*schema.Account, error)
	UpdateAccountMetadata(accountNumber string, metadata map[string]interface{}) error
	TouchAccount(accountNumber string) error
	DeleteAccount(accountNumber string) error
}

// VitalsStore is an implementation of VitalsCore
type VitalsStore struct {
	ormDB *gorm.DB
}

func NewVitalsStore(ormDB *gorm.DB) *VitalsStore {
	return &VitalsStore{
		ormDB: ormDB,
	}
}

// Ping is to check the storage health status
func (s *VitalsStore) Ping() error {
	return s.ormDB.DB().Ping()
}

// Close releases the underlying connection pool
func (s *VitalsStore) Close() error {
	return s.ormDB.Close()
}

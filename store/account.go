package store

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"

	"github.com/bitmark-inc/vitals-api/schema"
)

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidRole        = errors.New("invalid account role")
	ErrMissingInstitution = errors.New("hospital account requires an institution id")
)

// CreateAccount is to register an account. Patients get a freshly generated
// patient id, hospitals are bound to the given institution.
func (s *VitalsStore) CreateAccount(accountNumber string, role schema.Role, institutionID string, metadata map[string]interface{}) (*schema.Account, error) {
	if metadata == nil {
		metadata = map[string]interface{}{}
	}

	profile := schema.AccountProfile{
		ID:            uuid.New(),
		AccountNumber: accountNumber,
		State: schema.ActivityState{
			LastActiveTime: time.Now(),
		},
		Metadata: schema.AccountMetadata(metadata),
	}

	switch role {
	case schema.RolePatient:
		profile.PatientID = uuid.New().String()
	case schema.RoleHospital:
		if institutionID == "" {
			return nil, ErrMissingInstitution
		}
		profile.InstitutionID = institutionID
	default:
		return nil, ErrInvalidRole
	}

	a := schema.Account{
		AccountNumber: accountNumber,
		Role:          role,
		Profile:       profile,
		ProfileID:     profile.ID,
	}

	if err := s.ormDB.Create(&a).Error; err != nil {
		return nil, err
	}

	return &a, nil
}

// GetAccount returns an account instance of a given account number
func (s *VitalsStore) GetAccount(accountNumber string) (*schema.Account, error) {
	var a schema.Account
	if err := s.ormDB.Preload("Profile").Where("account_number = ?", accountNumber).First(&a).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &a, nil
}

// UpdateAccountMetadata is to update metadata for a specific account
func (s *VitalsStore) UpdateAccountMetadata(accountNumber string, metadata map[string]interface{}) error {
	a, err := s.GetAccount(accountNumber)
	if err != nil {
		return err
	}

	if a.Profile.Metadata == nil {
		a.Profile.Metadata = schema.AccountMetadata{}
	}
	for k, v := range metadata {
		a.Profile.Metadata[k] = v
	}

	return s.ormDB.Save(&a.Profile).Error
}

// TouchAccount records the current time as the last activity of an account
func (s *VitalsStore) TouchAccount(accountNumber string) error {
	a, err := s.GetAccount(accountNumber)
	if err != nil {
		return err
	}

	a.Profile.State.LastActiveTime = time.Now()

	return s.ormDB.Save(&a.Profile).Error
}

// DeleteAccount removes an account from our system permanently
func (s *VitalsStore) DeleteAccount(accountNumber string) error {
	if err := s.ormDB.Delete(schema.Account{}, "account_number = ?", accountNumber).Error; err != nil {
		return err
	}

	if err := s.ormDB.Delete(schema.AccountProfile{}, "account_number = ?", accountNumber).Error; err != nil {
		return err
	}

	return nil
}

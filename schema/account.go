package schema

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Role tells what kind of principal an account is. Every access decision
// switches over the complete set of roles.
type Role string

const (
	RolePatient  Role = "patient"
	RoleHospital Role = "hospital"
)

// Valid reports whether r is a known role
func (r Role) Valid() bool {
	switch r {
	case RolePatient, RoleHospital:
		return true
	default:
		return false
	}
}

type ActivityState struct {
	LastActiveTime time.Time `json:"last_active_time"`
}

func (u ActivityState) Value() (driver.Value, error) {
	return json.Marshal(u)
}

func (u *ActivityState) Scan(src interface{}) error {
	source, ok := src.([]byte)
	if !ok {
		return errors.New("Type assertion .([]byte) failed.")
	}
	return json.Unmarshal(source, u)
}

type AccountMetadata map[string]interface{}

func (u AccountMetadata) Value() (driver.Value, error) {
	return json.Marshal(u)
}

func (u *AccountMetadata) Scan(src interface{}) error {
	source, ok := src.([]byte)
	if !ok {
		return errors.New("Type assertion .([]byte) failed.")
	}

	return json.Unmarshal(source, &u)
}

// Account is a registered principal. AccountNumber is the subject issued by
// the identity provider.
type Account struct {
	AccountNumber string         `json:"account_number" gorm:"primary_key"`
	Role          Role           `json:"role" gorm:"not null"`
	Profile       AccountProfile `json:"profile" gorm:"foreignkey:ProfileID"`
	ProfileID     uuid.UUID      `json:"-"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// AccountProfile carries the role specific data of an account. PatientID is
// only set for patients and InstitutionID only for hospitals.
type AccountProfile struct {
	ID            uuid.UUID       `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	AccountNumber string          `json:"account_number"`
	PatientID     string          `json:"patient_id,omitempty"`
	InstitutionID string          `json:"institution_id,omitempty"`
	State         ActivityState   `json:"state" gorm:"type:jsonb;not null;default '{}'"`
	Metadata      AccountMetadata `json:"metadata" gorm:"type:jsonb;not null;default '{}'"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

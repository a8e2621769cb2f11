package schema

import "time"

const (
	ProfileCollection = "profile"
)

// Profile - patient profile data kept next to the reports
type Profile struct {
	ID                     string    `bson:"id" json:"id"`
	AccountNumber          string    `bson:"account_number" json:"account_number"`
	TrackedMetrics         []string  `bson:"tracked_metrics" json:"tracked_metrics"`
	AuthorizedInstitutions []string  `bson:"authorized_institutions" json:"authorized_institutions"`
	CreatedAt              time.Time `bson:"created_at" json:"created_at"`
}

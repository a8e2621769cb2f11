package schema

import (
	"fmt"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

const (
	ReportCollection = "report"
)

// Verdict is the categorical flag a lab puts on a single reading
type Verdict string

const (
	VerdictNormal   Verdict = "NORMAL"
	VerdictHigh     Verdict = "HIGH"
	VerdictLow      Verdict = "LOW"
	VerdictCritical Verdict = "CRITICAL"
)

// RawValue keeps a lab value exactly as it was recorded. Reports written by
// the ingestion pipeline store numbers and strings interchangeably, so both
// are decoded into their textual form.
type RawValue string

// UnmarshalBSONValue implements bson.ValueUnmarshaler
func (v *RawValue) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}

	switch t {
	case bsontype.String:
		*v = RawValue(raw.StringValue())
	case bsontype.Double:
		*v = RawValue(strconv.FormatFloat(raw.Double(), 'f', -1, 64))
	case bsontype.Int32:
		*v = RawValue(strconv.FormatInt(int64(raw.Int32()), 10))
	case bsontype.Int64:
		*v = RawValue(strconv.FormatInt(raw.Int64(), 10))
	case bsontype.Null, bsontype.Undefined:
		*v = ""
	default:
		return fmt.Errorf("unsupported value type %s", t)
	}

	return nil
}

// Attribute is one biomarker entry of a report
type Attribute struct {
	Name    string   `json:"name" bson:"name"`
	Value   RawValue `json:"value" bson:"value"`
	Unit    string   `json:"unit" bson:"unit"`
	Range   string   `json:"range" bson:"range"`
	Verdict Verdict  `json:"verdict" bson:"verdict"`
	Remark  string   `json:"remark" bson:"remark"`
}

// Report is a processed lab report of a patient. Attributes are keyed by
// the normalized biomarker key.
type Report struct {
	ReportID    string               `json:"report_id" bson:"report_id"`
	PatientID   string               `json:"patient_id" bson:"patient_id"`
	ProcessedAt time.Time            `json:"processed_at" bson:"processed_at"`
	Attributes  map[string]Attribute `json:"attributes" bson:"attributes"`
}

package schema

import "time"

type TrendDirection string

const (
	DirectionNoData           TrendDirection = "no_data"
	DirectionInsufficientData TrendDirection = "insufficient_data"
	DirectionIncreasing       TrendDirection = "increasing"
	DirectionDecreasing       TrendDirection = "decreasing"
	DirectionStable           TrendDirection = "stable"
)

type Trajectory string

const (
	TrajectoryImproving Trajectory = "improving"
	TrajectoryWorsening Trajectory = "worsening"
	TrajectoryStable    Trajectory = "stable"
)

type Variability string

const (
	VariabilityLow      Variability = "low"
	VariabilityModerate Variability = "moderate"
	VariabilityHigh     Variability = "high"
)

// Observation is a single reading of a biomarker taken from one report
type Observation struct {
	Date           time.Time `json:"date"`
	ReportID       string    `json:"report_id"`
	RawValue       string    `json:"raw_value"`
	NumericValue   *float64  `json:"numeric_value"`
	Unit           string    `json:"unit"`
	ReferenceRange string    `json:"reference_range"`
	Verdict        Verdict   `json:"verdict,omitempty"`
	Remark         string    `json:"remark"`
}

// IsNumeric tells whether the raw value could be read as a number
func (o Observation) IsNumeric() bool {
	return o.NumericValue != nil
}

// TimeSeries holds observations of one biomarker in ascending date order
type TimeSeries struct {
	BiomarkerName string        `json:"biomarker_name"`
	Observations  []Observation `json:"observations"`
}

// TrendResult summarizes a time series
type TrendResult struct {
	BiomarkerName       string         `json:"biomarker_name"`
	Direction           TrendDirection `json:"direction"`
	ShortTermTrajectory Trajectory     `json:"short_term_trajectory"`
	Variability         Variability    `json:"variability"`
	LatestValue         *float64       `json:"latest_value,omitempty"`
	EarliestValue       *float64       `json:"earliest_value,omitempty"`
	MeanValue           *float64       `json:"mean_value,omitempty"`
	ChangePercentage    float64        `json:"change_percentage"`
	LatestDate          *time.Time     `json:"latest_date,omitempty"`
	EarliestDate        *time.Time     `json:"earliest_date,omitempty"`
	Unit                string         `json:"unit,omitempty"`
	LatestVerdict       Verdict        `json:"latest_verdict,omitempty"`
	DataPoints          int            `json:"data_points"`
	NumericDataPoints   int            `json:"numeric_data_points"`
	Message             string         `json:"message,omitempty"`
}

// DashboardSummary counts tracked biomarkers by their short-term trajectory.
// Metrics without enough data keep the default `stable` trajectory and are
// therefore counted in Stable as well as in NoData.
type DashboardSummary struct {
	TotalTracked int `json:"total_tracked"`
	Improving    int `json:"improving"`
	Worsening    int `json:"worsening"`
	Stable       int `json:"stable"`
	NoData       int `json:"no_data"`
}

// DashboardView is the combined trend view of every tracked biomarker
type DashboardView struct {
	PatientID      string                   `json:"patient_id"`
	TrackedMetrics []string                 `json:"tracked_metrics"`
	Trends         map[string]TrendResult   `json:"trends"`
	TimeSeries     map[string][]Observation `json:"time_series"`
	Summary        DashboardSummary         `json:"summary"`
}

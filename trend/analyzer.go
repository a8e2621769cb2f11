package trend

import (
	"github.com/bitmark-inc/vitals-api/schema"
)

const (
	messageNoData           = "no data available for this biomarker in the selected period"
	messageInsufficientData = "at least two numeric readings are needed to compute a trend"
)

// Analyze summarizes a time series into its direction, short-term
// trajectory and variability. Computation runs at full precision and the
// reported numbers are rounded to two decimals.
func Analyze(series schema.TimeSeries, policy Policy) schema.TrendResult {
	observations := series.Observations

	result := schema.TrendResult{
		BiomarkerName:       series.BiomarkerName,
		ShortTermTrajectory: schema.TrajectoryStable,
		Variability:         schema.VariabilityLow,
		DataPoints:          len(observations),
	}

	if len(observations) == 0 {
		result.Direction = schema.DirectionNoData
		result.Message = messageNoData
		return result
	}

	last := observations[len(observations)-1]
	result.Unit = last.Unit
	result.LatestVerdict = last.Verdict

	numeric := numericObservations(observations)
	result.NumericDataPoints = len(numeric)

	if len(numeric) < 2 {
		result.Direction = schema.DirectionInsufficientData
		result.Message = messageInsufficientData
		if last.NumericValue != nil {
			result.LatestValue = roundedPtr(*last.NumericValue)
		}
		latestDate := last.Date
		result.LatestDate = &latestDate
		return result
	}

	values := make([]float64, len(numeric))
	for i, o := range numeric {
		values[i] = *o.NumericValue
	}

	earliest, latest := values[0], values[len(values)-1]
	change := ChangeRate(latest, earliest)
	result.Direction = direction(change, policy.DirectionBand)
	result.ChangePercentage = round2(change)

	avg := mean(values)
	if len(values) > 2 {
		result.Variability = variability(values, avg, policy)
	}

	if window := policy.trajectoryWindow(); len(values) >= window {
		result.ShortTermTrajectory = trajectory(values[len(values)-window:])
	}

	earliestDate := numeric[0].Date
	latestDate := numeric[len(numeric)-1].Date
	result.EarliestValue = roundedPtr(earliest)
	result.LatestValue = roundedPtr(latest)
	result.MeanValue = roundedPtr(avg)
	result.EarliestDate = &earliestDate
	result.LatestDate = &latestDate

	return result
}

func numericObservations(observations []schema.Observation) []schema.Observation {
	numeric := make([]schema.Observation, 0, len(observations))
	for _, o := range observations {
		if o.IsNumeric() {
			numeric = append(numeric, o)
		}
	}
	return numeric
}

func direction(change, band float64) schema.TrendDirection {
	switch {
	case change > band:
		return schema.DirectionIncreasing
	case change < -band:
		return schema.DirectionDecreasing
	default:
		return schema.DirectionStable
	}
}

// variability classifies the coefficient of variation of the values
func variability(values []float64, avg float64, policy Policy) schema.Variability {
	var coefficient float64
	if avg != 0 {
		coefficient = sampleStdDev(values, avg) / avg * 100
	}

	switch {
	case coefficient > policy.HighVariability:
		return schema.VariabilityHigh
	case coefficient > policy.ModerateVariability:
		return schema.VariabilityModerate
	default:
		return schema.VariabilityLow
	}
}

// trajectory only says whether the trailing readings went strictly up or
// strictly down. Whether that is clinically good depends on the verdict and
// is left to the advice rules.
func trajectory(window []float64) schema.Trajectory {
	increasing, decreasing := true, true
	for i := 1; i < len(window); i++ {
		if window[i] <= window[i-1] {
			increasing = false
		}
		if window[i] >= window[i-1] {
			decreasing = false
		}
	}

	switch {
	case increasing:
		return schema.TrajectoryImproving
	case decreasing:
		return schema.TrajectoryWorsening
	default:
		return schema.TrajectoryStable
	}
}

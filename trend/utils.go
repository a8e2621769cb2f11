package trend

import "math"

// ChangeRate returns the change from old to new in percent. A zero baseline
// has no meaningful rate and yields 0.
func ChangeRate(new, old float64) float64 {
	if old == 0 {
		return 0
	}

	return (new - old) / old * 100
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// sampleStdDev is the n-1 standard deviation
func sampleStdDev(values []float64, mean float64) float64 {
	if len(values) < 2 {
		return 0
	}

	var sq float64
	for _, v := range values {
		sq += (v - mean) * (v - mean)
	}
	return math.Sqrt(sq / float64(len(values)-1))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func roundedPtr(v float64) *float64 {
	r := round2(v)
	return &r
}

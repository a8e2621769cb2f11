package consts

const (
	// DefaultLookbackDays is the window used by series, trend and dashboard
	// queries when the caller gives none
	DefaultLookbackDays = 365

	// AdviceLookbackDays is the shorter window advice is computed over
	AdviceLookbackDays = 90

	// DefaultAdviceLimit caps the number of advice lines returned
	DefaultAdviceLimit = 5

	// MaxReportsPerPatient bounds a single scan of a patient's reports
	MaxReportsPerPatient = int64(1000)
)

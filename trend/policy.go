package trend

// Policy holds the thresholds used to classify a time series. They are
// policy choices rather than derived values, so they can be tuned through
// the `trend.*` configuration keys.
type Policy struct {
	// DirectionBand is the change, in percent, a series has to exceed
	// before it counts as increasing or decreasing
	DirectionBand float64

	// ModerateVariability and HighVariability are coefficient of
	// variation bounds, in percent
	ModerateVariability float64
	HighVariability     float64

	// TrajectoryWindow is the number of trailing numeric readings the
	// short-term trajectory looks at
	TrajectoryWindow int
}

const (
	DefaultDirectionBand       = 5.0
	DefaultModerateVariability = 10.0
	DefaultHighVariability     = 20.0
	DefaultTrajectoryWindow    = 3
)

// DefaultPolicy returns the thresholds the service ships with
func DefaultPolicy() Policy {
	return Policy{
		DirectionBand:       DefaultDirectionBand,
		ModerateVariability: DefaultModerateVariability,
		HighVariability:     DefaultHighVariability,
		TrajectoryWindow:    DefaultTrajectoryWindow,
	}
}

// trajectoryWindow returns a usable window. A trajectory needs at least two
// readings to have a direction at all.
func (p Policy) trajectoryWindow() int {
	if p.TrajectoryWindow < 2 {
		return DefaultTrajectoryWindow
	}
	return p.TrajectoryWindow
}

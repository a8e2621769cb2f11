package trend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type changeRateTestCase struct {
	new                float64
	old                float64
	expectedChangeRate float64
}

func TestChangeRate(t *testing.T) {
	cases := []changeRateTestCase{
		{0, 0, 0},
		{10, 10, 0},
		{0, 10, -100},
		{10, 0, 0},
		{3, 5, -40},
		{3, 2, 50},
		{72, 60, 20},
	}
	for _, c := range cases {
		assert.Equal(t, c.expectedChangeRate, ChangeRate(c.new, c.old), "change rate from %v to %v", c.old, c.new)
	}
}

func TestSampleStdDev(t *testing.T) {
	values := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	assert.InDelta(t, 2.138, sampleStdDev(values, mean(values)), 0.001)
	assert.Equal(t, 0.0, sampleStdDev([]float64{3}, 3))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 11.11, round2(11.111111))
	assert.Equal(t, 3.17, round2(3.166666))
	assert.Equal(t, -0.5, round2(-0.5))
}

func TestTrajectoryWindowFallsBackToDefault(t *testing.T) {
	assert.Equal(t, DefaultTrajectoryWindow, Policy{}.trajectoryWindow())
	assert.Equal(t, DefaultTrajectoryWindow, Policy{TrajectoryWindow: 1}.trajectoryWindow())
	assert.Equal(t, 2, Policy{TrajectoryWindow: 2}.trajectoryWindow())
}

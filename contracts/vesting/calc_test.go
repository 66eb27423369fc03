package vesting

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const day = 24 * 60 * 60 * 1000 // ms

func newSchedule(start, total int, times, percents []int) Vesting {
	return Vesting{
		Start:    start,
		Total:    total,
		Times:    times,
		Percents: percents,
		Active:   true,
	}
}

func TestCalcReleasableMilestones(t *testing.T) {
	start := 1_700_000_000_000
	v := newSchedule(start, 1000, []int{start + 30*day, start + 365*day}, []int{25, 75})

	require.Equal(t, 0, calcReleasable(v, start-1))
	require.Equal(t, 0, calcReleasable(v, start))
	require.Equal(t, 0, calcReleasable(v, start+30*day-1))
	require.Equal(t, 250, calcReleasable(v, start+30*day))
	require.Equal(t, 250, calcReleasable(v, start+364*day))
	require.Equal(t, 1000, calcReleasable(v, start+365*day))
	require.Equal(t, 1000, calcReleasable(v, start+400*day))
}

func TestCalcReleasableReleased(t *testing.T) {
	start := 1_700_000_000_000
	v := newSchedule(start, 1000, []int{start + 30*day, start + 365*day}, []int{25, 75})
	v.Released = 250

	require.Equal(t, 0, calcReleasable(v, start+30*day))
	require.Equal(t, 0, calcReleasable(v, start+364*day))
	require.Equal(t, 750, calcReleasable(v, start+365*day))

	v.Released = 1000
	require.Equal(t, 0, calcReleasable(v, start+365*day))
}

func TestCalcReleasableRounding(t *testing.T) {
	start := 1_700_000_000_000
	v := newSchedule(start, 1001, []int{start + day, start + 2*day}, []int{25, 75})

	// 1001*25/100 is truncated.
	require.Equal(t, 250, calcReleasable(v, start+day))

	// The final milestone releases the exact remainder.
	v.Released = 250
	require.Equal(t, 751, calcReleasable(v, start+2*day))
}

func TestCalcReleasableStopped(t *testing.T) {
	start := 1_700_000_000_000
	v := newSchedule(start, 1000, []int{start + day}, []int{100})
	v.Active = false

	require.Equal(t, 0, calcReleasable(v, start+day))
	require.Equal(t, 0, calcReleasable(v, start+400*day))
}

func TestCalcReleasableStartGate(t *testing.T) {
	start := 1_700_000_000_000

	// Milestones in the past still wait for the start moment.
	v := newSchedule(start, 500, []int{start - 2*day, start - day}, []int{50, 50})

	require.Equal(t, 0, calcReleasable(v, start-1))
	require.Equal(t, 500, calcReleasable(v, start))
}

func TestCalcReleasableEqualTimes(t *testing.T) {
	start := 1_700_000_000_000
	at := start + 30*day
	v := newSchedule(start, 1000, []int{at, at}, []int{40, 60})

	require.Equal(t, 0, calcReleasable(v, at-1))
	require.Equal(t, 1000, calcReleasable(v, at))
}

func TestCalcReleasableOverReleased(t *testing.T) {
	start := 1_700_000_000_000
	v := newSchedule(start, 1000, []int{start + day, start + 2*day}, []int{25, 75})
	v.Released = 300

	// Never negative even if more than the accrued part has been paid out.
	require.Equal(t, 0, calcReleasable(v, start+day))
	require.Equal(t, 700, calcReleasable(v, start+2*day))
}

func TestCalcReleasableZeroRecord(t *testing.T) {
	require.Equal(t, 0, calcReleasable(Vesting{}, 1_700_000_000_000))
}

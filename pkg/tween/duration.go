package tween

import (
	"math"

	"github.com/go-drift/tween/pkg/errors"
)

// travel returns the largest change among the properties that differ, and
// whether any property differs at all. Rotation is measured on the raw Euler
// delta in degrees. The generic scalar is not considered.
func (t *Tween) travel() (float64, bool) {
	var longest float64
	found := false
	consider := func(d float64) {
		found = true
		longest = max(longest, d)
	}
	for _, r := range []*SpatialRange{&t.Position, &t.Rotation, &t.Scale} {
		if !vecEqual(r.From, r.To) {
			consider(distance3(r.From, r.To))
		}
	}
	if !colorEqual(t.Color.From, t.Color.To) {
		consider(distance4(t.Color.From, t.Color.To))
	}
	if t.Alpha.From != t.Alpha.To {
		consider(math.Abs(t.Alpha.To - t.Alpha.From))
	}
	return longest, found
}

// resolveDuration derives Duration from Speed when Speed is positive and
// clamps invalid durations to zero, which completes on the first tick.
func (t *Tween) resolveDuration() {
	if t.Speed > 0 {
		if d, ok := t.travel(); ok {
			t.Duration = d / t.Speed
		}
	}
	if t.Duration < 0 || math.IsNaN(t.Duration) || math.IsInf(t.Duration, 0) {
		t.report("tween.resolveDuration", errors.KindConfig, errors.ErrInvalidDuration)
		t.Duration = 0
	}
}

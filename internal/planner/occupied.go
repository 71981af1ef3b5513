package planner

import "sort"

// occupiedMinutes is a sorted set of event timestamps. It replaces the
// teacher-line "200 attempts" style probing loop (spec.md §9) with
// O(log n) membership checks and insertion.
type occupiedMinutes struct {
	times []float64
}

// withinWindow reports whether any occupied timestamp falls within
// windowMin of t (used to enforce the cluster window, spec.md §3/§4.5).
func (o *occupiedMinutes) withinWindow(t, windowMin float64) bool {
	i := sort.SearchFloat64s(o.times, t-windowMin)
	for ; i < len(o.times) && o.times[i] <= t+windowMin; i++ {
		if abs(o.times[i]-t) < windowMin {
			return true
		}
	}
	return false
}

// has reports exact-minute occupancy (used by the top-up countdown,
// which works in whole minutes).
func (o *occupiedMinutes) has(t float64) bool {
	i := sort.SearchFloat64s(o.times, t)
	return i < len(o.times) && o.times[i] == t
}

func (o *occupiedMinutes) insert(t float64) {
	i := sort.SearchFloat64s(o.times, t)
	o.times = append(o.times, 0)
	copy(o.times[i+1:], o.times[i:])
	o.times[i] = t
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

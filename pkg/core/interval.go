package core

// Interval represents a closed range [Min, Max] of ray parameters
type Interval struct {
	Min, Max float64
}

// NewInterval creates a new interval
func NewInterval(min, max float64) Interval {
	return Interval{Min: min, Max: max}
}

// Clamp returns t limited to the interval bounds
func (i Interval) Clamp(t float64) float64 {
	if t < i.Min {
		return i.Min
	}
	if t > i.Max {
		return i.Max
	}
	return t
}

// Contains reports whether t lies within the closed interval.
// Implemented as clamp-equality so equal bounds still admit an exact hit.
func (i Interval) Contains(t float64) bool {
	return i.Clamp(t) == t
}

// Surrounds reports whether t lies strictly inside the interval
func (i Interval) Surrounds(t float64) bool {
	return i.Min < t && t < i.Max
}

// Width returns the extent of the interval
func (i Interval) Width() float64 {
	return i.Max - i.Min
}

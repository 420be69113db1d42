package models

import "fmt"

// TimeInterval is a half-open [From, To) time-of-day range within one day.
type TimeInterval struct {
	From Clock `bson:"from" json:"from"`
	To   Clock `bson:"to" json:"to"`
}

// NewTimeInterval builds a validated interval. The range must be strictly
// increasing; a slot cannot have zero or negative duration.
func NewTimeInterval(from, to Clock) (TimeInterval, error) {
	if !from.Valid() || !to.Valid() || from >= to {
		return TimeInterval{}, InvalidRangeError{From: from, To: to}
	}
	return TimeInterval{From: from, To: to}, nil
}

// Overlaps reports whether two half-open ranges intersect. Touching
// boundaries (one slot's To equals the next slot's From) do not overlap.
func (iv TimeInterval) Overlaps(other TimeInterval) bool {
	return iv.From < other.To && other.From < iv.To
}

func (iv TimeInterval) String() string {
	return fmt.Sprintf("[%s, %s)", iv.From, iv.To)
}

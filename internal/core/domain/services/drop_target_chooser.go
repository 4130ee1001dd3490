package services

import (
	"math"

	"routeboard/internal/pkg/errs"
)

// DefaultDropOverlapThreshold is the share of the dragged row's extent that must
// cover a candidate before the candidate can become the drop target.
const DefaultDropOverlapThreshold = 0.2

// Span is a closed interval on the drag axis, in screen units.
type Span struct {
	Start float64
	End   float64
}

// Extent returns the span length. Inverted spans have zero extent.
func (s Span) Extent() float64 {
	return math.Max(0, s.End-s.Start)
}

// overlap returns the length covered by both spans.
func (s Span) overlap(other Span) float64 {
	return math.Max(0, math.Min(s.End, other.End)-math.Max(s.Start, other.Start))
}

// distance is 0 when p lies inside the span, otherwise the gap to the nearest edge.
func (s Span) distance(p float64) float64 {
	switch {
	case p < s.Start:
		return s.Start - p
	case p > s.End:
		return p - s.End
	default:
		return 0
	}
}

// DropCandidate is a row the dragged row currently passes over.
type DropCandidate struct {
	Index int
	Span  Span
}

// DropTargetChooser decides which row a drag gesture is dropping onto.
//
// A candidate qualifies when the dragged row's projected span overlaps it by at
// least threshold times the dragged row's own extent. Among qualifying candidates
// the one nearest to the pointer wins; the first candidate wins exact ties. The
// dragged row itself never qualifies.
type DropTargetChooser struct {
	threshold float64
}

// NewDropTargetChooser validates threshold, which must lie in (0, 1].
func NewDropTargetChooser(threshold float64) (DropTargetChooser, error) {
	if math.IsNaN(threshold) || threshold <= 0 || threshold > 1 {
		return DropTargetChooser{}, errs.NewValueIsOutOfRangeError("threshold", threshold, 0, 1)
	}
	return DropTargetChooser{threshold: threshold}, nil
}

// Threshold returns the overlap share required for a candidate to qualify.
func (c DropTargetChooser) Threshold() float64 {
	return c.threshold
}

// Choose returns the index of the winning candidate, or ok == false when no
// candidate qualifies.
func (c DropTargetChooser) Choose(
	dragged Span,
	draggedIndex int,
	pointer float64,
	candidates []DropCandidate,
) (int, bool) {
	required := c.threshold * dragged.Extent()

	best, bestDistance, found := 0, math.Inf(1), false
	for _, candidate := range candidates {
		if candidate.Index == draggedIndex {
			continue
		}

		covered := dragged.overlap(candidate.Span)
		if covered <= 0 || covered < required {
			continue
		}

		if d := candidate.Span.distance(pointer); d < bestDistance {
			best, bestDistance, found = candidate.Index, d, true
		}
	}

	return best, found
}

package meet

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
)

// SynthesizeHeats seeds an event: it shuffles the full entrant roster,
// draws one Gaussian(Mean, StdDev) mark per entrant clamped to a minimum
// of 0, sorts the athlete+mark pairs event-wide (ascending for timed
// kinds, descending for measured kinds), and slices the sorted roster
// into heats. Sorting before slicing groups entrants of similar
// synthesized ability into the same heat.
//
// All randomness comes from rng; callers pass a per-event stream from
// PartitionedRNG so results are reproducible for a fixed master seed.
func SynthesizeHeats(event *EventDefinition, rng *rand.Rand) []Heat {
	entrants := make([]Entrant, len(event.Entrants))
	for i, a := range event.Entrants {
		entrants[i] = Entrant{Athlete: a}
	}
	rng.Shuffle(len(entrants), func(i, j int) {
		entrants[i], entrants[j] = entrants[j], entrants[i]
	})
	for i := range entrants {
		entrants[i].Mark = math.Max(0, rng.NormFloat64()*event.StdDev+event.Mean)
		entrants[i].Display = FormatMark(entrants[i].Mark, event)
	}
	if event.Kind.Timed() {
		sort.SliceStable(entrants, func(i, j int) bool { return entrants[i].Mark < entrants[j].Mark })
	} else {
		sort.SliceStable(entrants, func(i, j int) bool { return entrants[i].Mark > entrants[j].Mark })
	}
	return PartitionHeats(entrants, event.MaxHeatSize)
}

// FormatMark renders a synthesized mark for display. Measured kinds get
// a fixed two-decimal value with a meter suffix. Timed kinds whose event
// mean is under a minute render as plain seconds; longer events render
// minutes:seconds with the seconds truncated (not rounded) to one
// decimal and zero-padded, e.g. 187.36 -> "3:07.3".
func FormatMark(mark float64, event *EventDefinition) string {
	if !event.Kind.Timed() {
		return fmt.Sprintf("%.2fm", mark)
	}
	if event.Mean < 60 {
		return fmt.Sprintf("%.2f", mark)
	}
	minutes := int(mark) / 60
	seconds := math.Floor(math.Mod(mark, 60)*10) / 10
	return fmt.Sprintf("%d:%04.1f", minutes, seconds)
}

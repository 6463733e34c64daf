package meet

// PartitionHeats slices an ordered entrant list into contiguous heats of
// at most max entrants; the last heat may be shorter. Zero entrants
// yield zero heats, never one empty heat. Purely positional — any
// performance-based grouping happens before this via SynthesizeHeats.
func PartitionHeats(entrants []Entrant, max int) []Heat {
	if len(entrants) == 0 {
		return nil
	}
	heats := make([]Heat, 0, (len(entrants)+max-1)/max)
	for i := 0; i < len(entrants); i += max {
		end := i + max
		if end > len(entrants) {
			end = len(entrants)
		}
		heats = append(heats, Heat(entrants[i:end:end]))
	}
	return heats
}

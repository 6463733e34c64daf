package meet

import "time"

// clockLayout renders a 12-hour clock with no leading zero on the hour,
// zero-padded minutes, and an AM/PM suffix (e.g. "6:05 PM").
const clockLayout = "3:04 PM"

// BuildSchedule walks the events in configured running order and assigns
// each a clock time: the first event starts at start, and every
// subsequent event starts after the previous event's duration plus the
// fixed inter-event gap. heats[i] holds the seeded heats for events[i].
//
// The returned ScheduledEvents are the read-only projection consumed by
// the renderer; this is the one-way conversion out of the mutable
// EventDefinition phase.
func BuildSchedule(events []*EventDefinition, heats [][]Heat, start time.Time, gap time.Duration) []ScheduledEvent {
	scheduled := make([]ScheduledEvent, 0, len(events))
	clock := start
	for i, event := range events {
		scheduled = append(scheduled, ScheduledEvent{
			Name:  event.Name,
			Kind:  event.Kind,
			Clock: clock.Format(clockLayout),
			Heats: heats[i],
		})
		clock = clock.Add(time.Duration(event.DurationMinutes)*time.Minute + gap)
	}
	return scheduled
}

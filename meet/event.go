package meet

// EventKind classifies how an event is contested and scored.
type EventKind string

const (
	// KindTrack is an individual timed event (lower mark wins).
	KindTrack EventKind = "track"
	// KindField is an individual measured event (higher mark wins).
	KindField EventKind = "field"
	// KindRelay is a team timed event.
	KindRelay EventKind = "relay"
	// KindFieldRelay is a team measured event.
	KindFieldRelay EventKind = "field_relay"
)

// validEventKinds maps accepted kind strings. Checked at config load so
// downstream code never sees an unknown kind.
var validEventKinds = map[EventKind]bool{
	KindTrack: true, KindField: true, KindRelay: true, KindFieldRelay: true,
}

// IsValidEventKind reports whether kind is a recognized event kind.
func IsValidEventKind(kind string) bool {
	return validEventKinds[EventKind(kind)]
}

// Timed reports whether the event is scored by elapsed time. Timed marks
// sort ascending within a heat; measured marks sort descending.
func (k EventKind) Timed() bool {
	return k == KindTrack || k == KindRelay
}

// PositionLabel is the column header for an entrant's slot in a heat:
// track events run in lanes, everything else competes in order.
func (k EventKind) PositionLabel() string {
	if k == KindTrack {
		return "Lane"
	}
	return "Order"
}

// MarkHeader is the column header for the synthesized mark.
func (k EventKind) MarkHeader() string {
	if k.Timed() {
		return "Seed Time"
	}
	return "Mark"
}

// EventDefinition is one configured event. Entrants start empty and are
// populated exactly once by ParseEntries; after that the definition is
// read-only and heats are derived from it.
type EventDefinition struct {
	Name            string
	DurationMinutes int
	Kind            EventKind
	MaxHeatSize     int

	// Mean and StdDev parameterize the Gaussian seed-mark distribution.
	// Mean also selects the timed display format (seconds vs minutes).
	Mean   float64
	StdDev float64

	Entrants []*Athlete
}

// Entrant pairs an athlete with their synthesized mark for one event.
type Entrant struct {
	Athlete *Athlete
	Mark    float64
	Display string
}

// Heat is an ordered group of entrants competing together in one round.
// Length never exceeds the parent event's MaxHeatSize.
type Heat []Entrant

// ScheduledEvent is the read-only projection handed to the renderer:
// an event's identity plus its computed clock time and seeded heats.
// Construction via BuildSchedule is the one-way step out of the mutable
// EventDefinition phase.
type ScheduledEvent struct {
	Name  string
	Kind  EventKind
	Clock string
	Heats []Heat
}

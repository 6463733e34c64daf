package meet

// Team is the configuration key of a squad. The set of valid keys is
// closed at config load time; display names live in Meet.TeamNames.
type Team string

// Athlete is one competitor. Immutable after construction; event
// entrant lists and heats hold references into the roster, never copies.
type Athlete struct {
	Name string
	Team Team
}

package meet

import (
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Result is the output of one generation run: the scheduled events in
// running order plus the parse diagnostics.
type Result struct {
	RunID  string
	Events []ScheduledEvent
	Report *ParseReport
}

// Generate runs the full pipeline over a freshly built Meet:
// ParseEntries populates the entrant lists, SynthesizeHeats seeds and
// partitions each event, and BuildSchedule assigns clock times.
// Deterministic for a fixed seed. The Meet is consumed: its entrant
// lists are populated here and must be empty on entry.
func Generate(m *Meet, entries io.Reader, seed SeedKey) (*Result, error) {
	runID := uuid.NewString()
	logrus.Infof("generation run %s: %d athletes, %d events, seed=%d", runID, len(m.Roster), len(m.Events), seed)

	report, err := ParseEntries(entries, m)
	if err != nil {
		return nil, err
	}

	rng := NewPartitionedRNG(seed)
	heats := make([][]Heat, len(m.Events))
	for i, event := range m.Events {
		heats[i] = SynthesizeHeats(event, rng.ForEvent(event.Name))
	}

	scheduled := BuildSchedule(m.Events, heats, m.Start, m.Gap)
	logrus.Infof("generation run %s complete: %d scheduled events", runID, len(scheduled))
	return &Result{RunID: runID, Events: scheduled, Report: report}, nil
}

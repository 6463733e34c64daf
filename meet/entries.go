package meet

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// Entry CSV column names. The header row is authoritative; column order
// does not matter.
const (
	colName   = "Name"
	colEvents = "List of events"
)

// ParseReport collects the non-fatal diagnostics produced while
// resolving entry rows. Lookup failures and empty events are warnings,
// never errors: the affected pairing or event is skipped and the batch
// continues.
type ParseReport struct {
	Rows            int
	Assigned        int
	UnknownAthletes []string
	UnknownEvents   []string
	EmptyEvents     []string
}

// ParseEntries reads header-driven CSV entry rows from r and appends
// each resolvable (athlete, event) pairing to the event's entrant list,
// preserving row order and duplicates. This is the single mutation of
// the EventDefinition entrant lists.
//
// Structural problems (missing required column, ragged row) abort the
// batch; unresolvable names or labels are logged, counted in the report,
// and skipped.
func ParseEntries(r io.Reader, m *Meet) (*ParseReport, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading entries header: %w", err)
	}
	nameIdx, eventsIdx := -1, -1
	for i, field := range header {
		switch strings.TrimSpace(field) {
		case colName:
			nameIdx = i
		case colEvents:
			eventsIdx = i
		}
	}
	if nameIdx < 0 || eventsIdx < 0 {
		return nil, fmt.Errorf("entries header missing required columns %q and %q, got %v", colName, colEvents, header)
	}

	report := &ParseReport{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("entries row %d: %w", report.Rows+1, err)
		}
		report.Rows++

		athleteName := record[nameIdx]
		for _, label := range strings.Split(record[eventsIdx], ",") {
			event, ok := m.LookupEvent(label)
			if !ok {
				logrus.Warnf("event %q not found in event map", Normalize(label))
				report.UnknownEvents = append(report.UnknownEvents, Normalize(label))
				continue
			}
			athlete, ok := m.LookupAthlete(athleteName)
			if !ok {
				logrus.Warnf("athlete %q not found in name map", Normalize(athleteName))
				report.UnknownAthletes = append(report.UnknownAthletes, Normalize(athleteName))
				continue
			}
			event.Entrants = append(event.Entrants, athlete)
			report.Assigned++
		}
	}

	for _, event := range m.Events {
		if len(event.Entrants) == 0 {
			logrus.Warnf("no entries found for event %q", event.Name)
			report.EmptyEvents = append(report.EmptyEvents, event.Name)
		}
	}
	logrus.Infof("parsed %d entry rows: %d assignments, %d unknown athletes, %d unknown events",
		report.Rows, report.Assigned, len(report.UnknownAthletes), len(report.UnknownEvents))
	return report, nil
}

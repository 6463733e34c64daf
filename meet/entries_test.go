package meet

import (
	"strings"
	"testing"
)

func TestParseEntries_AssignsInRowOrder(t *testing.T) {
	m := testMeet(t)
	csv := `Name,List of events
sean,"Blind Walk, Frisbee Put"
greg,blind walk
mia,Frisbee Shotput
`
	report, err := ParseEntries(strings.NewReader(csv), m)
	if err != nil {
		t.Fatal(err)
	}
	if report.Rows != 3 || report.Assigned != 4 {
		t.Errorf("rows = %d assigned = %d, want 3 and 4", report.Rows, report.Assigned)
	}

	walk, _ := m.LookupEvent("blind walk")
	if len(walk.Entrants) != 2 || walk.Entrants[0].Name != "Sean Dutton" || walk.Entrants[1].Name != "Greg Kossuth" {
		t.Errorf("blind walk entrants wrong: %v", names(walk.Entrants))
	}
	put, _ := m.LookupEvent("frisbee put")
	if len(put.Entrants) != 2 || put.Entrants[0].Name != "Sean Dutton" || put.Entrants[1].Name != "Mia Constantin" {
		t.Errorf("frisbee put entrants wrong: %v", names(put.Entrants))
	}
}

func names(athletes []*Athlete) []string {
	out := make([]string, len(athletes))
	for i, a := range athletes {
		out[i] = a.Name
	}
	return out
}

func TestParseEntries_UnknownAthlete_DiagnosticWithoutMutation(t *testing.T) {
	m := testMeet(t)
	csv := `Name,List of events
zach,Blind Walk
`
	report, err := ParseEntries(strings.NewReader(csv), m)
	if err != nil {
		t.Fatal(err)
	}
	if len(report.UnknownAthletes) != 1 || report.UnknownAthletes[0] != "zach" {
		t.Errorf("unknown athletes = %v, want [zach]", report.UnknownAthletes)
	}
	for _, event := range m.Events {
		if len(event.Entrants) != 0 {
			t.Errorf("event %q gained entrants from an unresolvable row", event.Name)
		}
	}
}

func TestParseEntries_UnknownEvent_PairingSkipped(t *testing.T) {
	m := testMeet(t)
	csv := `Name,List of events
sean,"Pole Vault, Blind Walk"
`
	report, err := ParseEntries(strings.NewReader(csv), m)
	if err != nil {
		t.Fatal(err)
	}
	if len(report.UnknownEvents) != 1 || report.UnknownEvents[0] != "pole vault" {
		t.Errorf("unknown events = %v, want [pole vault]", report.UnknownEvents)
	}
	// The resolvable pairing on the same row still lands.
	walk, _ := m.LookupEvent("blind walk")
	if len(walk.Entrants) != 1 {
		t.Errorf("blind walk entrants = %d, want 1", len(walk.Entrants))
	}
}

func TestParseEntries_CaseInsensitiveResolution(t *testing.T) {
	m := testMeet(t)
	csv := `Name,List of events
SEAN,BLIND WALK
`
	if _, err := ParseEntries(strings.NewReader(csv), m); err != nil {
		t.Fatal(err)
	}
	walk, _ := m.LookupEvent("blind walk")
	if len(walk.Entrants) != 1 || walk.Entrants[0].Name != "Sean Dutton" {
		t.Errorf("upper-cased row did not resolve: %v", names(walk.Entrants))
	}
}

func TestParseEntries_DuplicateEntryAppendedTwice(t *testing.T) {
	m := testMeet(t)
	csv := `Name,List of events
sean,"Blind Walk, blind walk"
`
	if _, err := ParseEntries(strings.NewReader(csv), m); err != nil {
		t.Fatal(err)
	}
	walk, _ := m.LookupEvent("blind walk")
	if len(walk.Entrants) != 2 {
		t.Errorf("entrants = %d, want 2 (duplicates are not deduplicated)", len(walk.Entrants))
	}
}

func TestParseEntries_MissingRequiredColumn_Fatal(t *testing.T) {
	m := testMeet(t)
	csv := `Athlete,Events
sean,Blind Walk
`
	if _, err := ParseEntries(strings.NewReader(csv), m); err == nil {
		t.Fatal("expected error for missing required columns")
	}
}

func TestParseEntries_RaggedRow_Fatal(t *testing.T) {
	m := testMeet(t)
	csv := `Name,List of events
sean
`
	if _, err := ParseEntries(strings.NewReader(csv), m); err == nil {
		t.Fatal("expected error for row with missing field")
	}
	for _, event := range m.Events {
		if len(event.Entrants) != 0 {
			t.Errorf("event %q mutated by aborted batch", event.Name)
		}
	}
}

func TestParseEntries_ColumnsResolvedByHeaderNotPosition(t *testing.T) {
	m := testMeet(t)
	csv := `List of events,Name
Blind Walk,sean
`
	if _, err := ParseEntries(strings.NewReader(csv), m); err != nil {
		t.Fatal(err)
	}
	walk, _ := m.LookupEvent("blind walk")
	if len(walk.Entrants) != 1 {
		t.Errorf("swapped column order not handled: entrants = %d", len(walk.Entrants))
	}
}

func TestParseEntries_EmptyEventWarning(t *testing.T) {
	m := testMeet(t)
	csv := `Name,List of events
sean,Blind Walk
`
	report, err := ParseEntries(strings.NewReader(csv), m)
	if err != nil {
		t.Fatal(err)
	}
	if len(report.EmptyEvents) != 1 || report.EmptyEvents[0] != "Frisbee Put" {
		t.Errorf("empty events = %v, want [Frisbee Put]", report.EmptyEvents)
	}
}

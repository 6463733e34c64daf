package meet

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level meet configuration as it appears on disk.
// Loaded from YAML via LoadConfig(path); NewMeet validates it and builds
// the runtime lookup structures.
type Config struct {
	Meet     MetaConfig      `yaml:"meet"`
	Teams    []TeamConfig    `yaml:"teams"`
	Athletes []AthleteConfig `yaml:"athletes"`
	Events   []EventConfig   `yaml:"events"`
}

// MetaConfig holds document metadata and the schedule parameters.
type MetaConfig struct {
	Name       string `yaml:"name"`
	Date       string `yaml:"date"`
	Location   string `yaml:"location"`
	Host       string `yaml:"host"`
	StartTime  string `yaml:"start_time"` // 24h "HH:MM"
	GapMinutes int    `yaml:"gap_minutes"`
}

// TeamConfig declares one squad: a stable key referenced by athletes and
// the display name used in the rendered document.
type TeamConfig struct {
	Key  string `yaml:"key"`
	Name string `yaml:"name"`
}

// AthleteConfig declares one roster entry. The athlete's full name and
// every alias become case-insensitive lookup keys for entry parsing.
type AthleteConfig struct {
	Name    string   `yaml:"name"`
	Team    string   `yaml:"team"`
	Aliases []string `yaml:"aliases,omitempty"`
}

// EventConfig declares one event in running order.
type EventConfig struct {
	Name            string   `yaml:"name"`
	DurationMinutes int      `yaml:"duration_minutes"`
	Kind            string   `yaml:"kind"`
	MaxHeatSize     int      `yaml:"max_heat_size"`
	Mean            float64  `yaml:"mean"`
	StdDev          float64  `yaml:"std_dev"`
	Aliases         []string `yaml:"aliases,omitempty"`
}

// Meet is the validated, constructed form of a Config: the roster, the
// events in running order, and the normalized lookup tables the entry
// parser resolves against. Build one Meet per generation run; the entry
// parser mutates event entrant lists in place.
type Meet struct {
	Name     string
	Date     string
	Location string
	Host     string

	Start time.Time
	Gap   time.Duration

	TeamNames map[Team]string
	Roster    []*Athlete
	Events    []*EventDefinition

	athletesByName map[string]*Athlete
	eventsByLabel  map[string]*EventDefinition
}

// LoadConfig reads and parses a YAML meet configuration file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading meet config: %w", err)
	}
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parsing meet config: %w", err)
	}
	return &cfg, nil
}

// Normalize canonicalizes a free-text name or event label for lookup:
// surrounding whitespace stripped, lower-cased.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NewMeet validates cfg and builds the runtime Meet. All configuration
// inconsistencies (duplicate keys, non-positive durations or heat sizes,
// unknown kinds or teams, unparsable start time) fail here, before any
// entries are read.
func NewMeet(cfg *Config) (*Meet, error) {
	start, err := time.Parse("15:04", cfg.Meet.StartTime)
	if err != nil {
		return nil, fmt.Errorf("meet.start_time %q: want 24h HH:MM: %w", cfg.Meet.StartTime, err)
	}
	if cfg.Meet.GapMinutes < 0 {
		return nil, fmt.Errorf("meet.gap_minutes must be non-negative, got %d", cfg.Meet.GapMinutes)
	}

	m := &Meet{
		Name:           cfg.Meet.Name,
		Date:           cfg.Meet.Date,
		Location:       cfg.Meet.Location,
		Host:           cfg.Meet.Host,
		Start:          start,
		Gap:            time.Duration(cfg.Meet.GapMinutes) * time.Minute,
		TeamNames:      make(map[Team]string, len(cfg.Teams)),
		athletesByName: make(map[string]*Athlete),
		eventsByLabel:  make(map[string]*EventDefinition),
	}

	if len(cfg.Teams) == 0 {
		return nil, fmt.Errorf("at least one team required")
	}
	for i, t := range cfg.Teams {
		key := Team(Normalize(t.Key))
		if key == "" {
			return nil, fmt.Errorf("teams[%d]: key must not be empty", i)
		}
		if _, dup := m.TeamNames[key]; dup {
			return nil, fmt.Errorf("teams[%d]: duplicate team key %q", i, key)
		}
		if t.Name == "" {
			return nil, fmt.Errorf("teams[%d] (%s): display name must not be empty", i, key)
		}
		m.TeamNames[key] = t.Name
	}

	for i, a := range cfg.Athletes {
		if strings.TrimSpace(a.Name) == "" {
			return nil, fmt.Errorf("athletes[%d]: name must not be empty", i)
		}
		team := Team(Normalize(a.Team))
		if _, ok := m.TeamNames[team]; !ok {
			return nil, fmt.Errorf("athletes[%d] (%s): unknown team %q", i, a.Name, a.Team)
		}
		athlete := &Athlete{Name: strings.TrimSpace(a.Name), Team: team}
		m.Roster = append(m.Roster, athlete)
		for _, key := range append([]string{a.Name}, a.Aliases...) {
			if err := registerAthleteKey(m, key, athlete); err != nil {
				return nil, fmt.Errorf("athletes[%d] (%s): %w", i, a.Name, err)
			}
		}
	}

	if len(cfg.Events) == 0 {
		return nil, fmt.Errorf("at least one event required")
	}
	for i, e := range cfg.Events {
		if err := validateEventConfig(&e, i); err != nil {
			return nil, err
		}
		def := &EventDefinition{
			Name:            strings.TrimSpace(e.Name),
			DurationMinutes: e.DurationMinutes,
			Kind:            EventKind(e.Kind),
			MaxHeatSize:     e.MaxHeatSize,
			Mean:            e.Mean,
			StdDev:          e.StdDev,
		}
		m.Events = append(m.Events, def)
		for _, label := range append([]string{e.Name}, e.Aliases...) {
			if err := registerEventLabel(m, label, def); err != nil {
				return nil, fmt.Errorf("events[%d] (%s): %w", i, e.Name, err)
			}
		}
	}

	return m, nil
}

func validateEventConfig(e *EventConfig, idx int) error {
	prefix := fmt.Sprintf("events[%d] (%s)", idx, e.Name)
	if strings.TrimSpace(e.Name) == "" {
		return fmt.Errorf("events[%d]: name must not be empty", idx)
	}
	if !IsValidEventKind(e.Kind) {
		return fmt.Errorf("%s: unknown kind %q; valid: track, field, relay, field_relay", prefix, e.Kind)
	}
	if e.DurationMinutes <= 0 {
		return fmt.Errorf("%s: duration_minutes must be positive, got %d", prefix, e.DurationMinutes)
	}
	if e.MaxHeatSize <= 0 {
		return fmt.Errorf("%s: max_heat_size must be positive, got %d", prefix, e.MaxHeatSize)
	}
	if math.IsNaN(e.Mean) || math.IsInf(e.Mean, 0) || e.Mean < 0 {
		return fmt.Errorf("%s: mean must be a finite non-negative number, got %f", prefix, e.Mean)
	}
	if math.IsNaN(e.StdDev) || math.IsInf(e.StdDev, 0) || e.StdDev < 0 {
		return fmt.Errorf("%s: std_dev must be a finite non-negative number, got %f", prefix, e.StdDev)
	}
	return nil
}

func registerAthleteKey(m *Meet, key string, a *Athlete) error {
	norm := Normalize(key)
	if norm == "" {
		return fmt.Errorf("empty lookup alias")
	}
	if _, dup := m.athletesByName[norm]; dup {
		return fmt.Errorf("duplicate athlete lookup key %q", norm)
	}
	m.athletesByName[norm] = a
	return nil
}

func registerEventLabel(m *Meet, label string, def *EventDefinition) error {
	norm := Normalize(label)
	if norm == "" {
		return fmt.Errorf("empty event label")
	}
	if _, dup := m.eventsByLabel[norm]; dup {
		return fmt.Errorf("duplicate event label %q", norm)
	}
	m.eventsByLabel[norm] = def
	return nil
}

// LookupAthlete resolves a free-text athlete name. Case-insensitive.
func (m *Meet) LookupAthlete(name string) (*Athlete, bool) {
	a, ok := m.athletesByName[Normalize(name)]
	return a, ok
}

// LookupEvent resolves a free-text event label. Case-insensitive.
func (m *Meet) LookupEvent(label string) (*EventDefinition, bool) {
	def, ok := m.eventsByLabel[Normalize(label)]
	return def, ok
}

// Package meet generates seeded heat sheets for a track and field meet.
//
// # Reading Guide
//
// Start with these files to understand the pipeline:
//   - config.go: YAML meet configuration, validation, and the lookup tables
//   - entries.go: CSV entry parsing into per-event entrant lists
//   - marks.go: seed-mark synthesis and heat formation for one event
//   - schedule.go: running-order clock time assignment
//   - generator.go: the end-to-end run tying the stages together
//
// # Pipeline
//
// Data flows strictly one way, once per run:
//
//	ParseEntries -> SynthesizeHeats (per event) -> BuildSchedule -> render
//
// EventDefinition entrant lists are mutable only during ParseEntries;
// BuildSchedule converts everything into read-only ScheduledEvents,
// which are the sole input to the renderer in meet/render.
//
// # Determinism
//
// All randomness is drawn from per-event streams derived in rng.go from
// a single master seed, so a fixed seed reproduces a heat sheet exactly.
package meet
